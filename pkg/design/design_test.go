package design

import (
	"testing"

	"github.com/chazu/lathe/pkg/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndLookup(t *testing.T) {
	d := New()
	_, err := d.Add("hub", params.Parameters{OuterRadius: params.Float(1), Thickness: params.Float(0.2)})
	require.NoError(t, err)
	_, err = d.Add("ring", params.Parameters{FlangeRadius: params.Float(2), FlangeThickness: params.Float(0.5)})
	require.NoError(t, err)

	assert.Equal(t, 2, d.PartCount())
	assert.Equal(t, "hub", d.Parts[0].Name)
	assert.Equal(t, "ring", d.Parts[1].Name)

	hub := d.Lookup("hub")
	require.NotNil(t, hub)
	require.Len(t, hub.Plan.Shells, 1)
	assert.Equal(t, params.DefaultSegments, hub.Plan.Segments)
	assert.Nil(t, d.Lookup("missing"))
}

func TestAddRejectsDuplicateAndEmptyNames(t *testing.T) {
	d := New()
	_, err := d.Add("hub", params.Parameters{})
	require.NoError(t, err)

	_, err = d.Add("hub", params.Parameters{})
	assert.ErrorContains(t, err, "already defined")

	_, err = d.Add("", params.Parameters{})
	assert.ErrorContains(t, err, "must not be empty")
	assert.Equal(t, 1, d.PartCount())
}

func TestAddRejectsInvalidParameters(t *testing.T) {
	d := New()
	_, err := d.Add("hub", params.Parameters{OuterRadius: params.Float(1), Thickness: params.Float(1), Segments: params.Int(0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, params.ErrInvalidParameter)
	assert.Zero(t, d.PartCount())
	assert.Nil(t, d.Lookup("hub"))
}

func TestWarningsCarryPartName(t *testing.T) {
	d := New()
	_, err := d.Add("plain", params.Parameters{OuterRadius: params.Float(1), Thickness: params.Float(1)})
	require.NoError(t, err)
	_, err = d.Add("half-flange", params.Parameters{FlangeRadius: params.Float(2)})
	require.NoError(t, err)

	ws := d.Warnings()
	require.Len(t, ws, 1)
	assert.Equal(t, "half-flange", ws[0].Part)
	assert.Equal(t, params.WarnPartialFlange, ws[0].Code)
}

func TestMustLookupPanics(t *testing.T) {
	assert.Panics(t, func() { New().MustLookup("nope") })
}
