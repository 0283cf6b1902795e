package params

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParameter is the sentinel for every fatal parameter problem.
// Validation runs before any geometry is built.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError describes one rejected option.
type ParameterError struct {
	Option string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Option, e.Reason)
	}
	return fmt.Sprintf("%s=%v: %s", e.Option, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// ParameterErrors is every rejected option of one resolution.
type ParameterErrors []*ParameterError

func (es ParameterErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (es ParameterErrors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// WarningCode classifies an advisory.
type WarningCode string

const (
	// WarnDegenerateGeometry flags radii or thicknesses that yield
	// zero-area or self-intersecting triangles. The mesh is still built.
	WarnDegenerateGeometry WarningCode = "DEGENERATE_GEOMETRY"
	// WarnPartialFlange flags exactly one of flange_radius and
	// flange_thickness; the flange is not built.
	WarnPartialFlange WarningCode = "PARTIAL_FLANGE"
	// WarnReservedOption flags an accepted option that has no effect.
	WarnReservedOption WarningCode = "RESERVED_OPTION"
)

// Warning is a non-fatal advisory produced during resolution.
type Warning struct {
	Code    WarningCode `json:"code"`
	Option  string      `json:"option"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Code, w.Option, w.Message)
}
