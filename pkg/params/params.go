// Package params holds the option surface of the part generator and
// resolves it, once and up front, into a plan of which shells to build.
package params

// DefaultSegments is the angular resolution used when none is given.
const DefaultSegments = 100

// MaxSegments caps the angular resolution. At four vertices and eight
// faces per segment it keeps a single part well below a gigabyte.
const MaxSegments = 1 << 20

// Parameters is the full option surface. Pointer fields are optional;
// nil means the option was not supplied.
type Parameters struct {
	OuterRadius *float64 `mapstructure:"outer_radius" yaml:"outer_radius" json:"outer_radius"`
	InnerRadius *float64 `mapstructure:"inner_radius" yaml:"inner_radius,omitempty" json:"inner_radius,omitempty"`
	Thickness   *float64 `mapstructure:"thickness" yaml:"thickness,omitempty" json:"thickness,omitempty"`

	FlangeRadius     *float64 `mapstructure:"flange_radius" yaml:"flange_radius,omitempty" json:"flange_radius,omitempty"`
	FlangeThickness  *float64 `mapstructure:"flange_thickness" yaml:"flange_thickness,omitempty" json:"flange_thickness,omitempty"`
	CenterBoreRadius *float64 `mapstructure:"center_bore_radius" yaml:"center_bore_radius,omitempty" json:"center_bore_radius,omitempty"`

	// Segments is the angular resolution for every shell (default 100).
	Segments *int `mapstructure:"segments" yaml:"segments,omitempty" json:"segments,omitempty"`

	Reserved `mapstructure:",squash" yaml:",inline"`
}

// Reserved lists options that are accepted but have no effect on the
// generated mesh. They are placeholders for future shell types.
type Reserved struct {
	VentRadius        *float64 `mapstructure:"vent_radius" yaml:"vent_radius,omitempty" json:"vent_radius,omitempty"`
	NumVents          *int     `mapstructure:"num_vents" yaml:"num_vents,omitempty" json:"num_vents,omitempty"`
	BearingSeatRadius *float64 `mapstructure:"bearing_seat_radius" yaml:"bearing_seat_radius,omitempty" json:"bearing_seat_radius,omitempty"`
	BearingSeatWidth  *float64 `mapstructure:"bearing_seat_width" yaml:"bearing_seat_width,omitempty" json:"bearing_seat_width,omitempty"`
	BoltPatternRadius *float64 `mapstructure:"bolt_pattern_radius" yaml:"bolt_pattern_radius,omitempty" json:"bolt_pattern_radius,omitempty"`
	BoltHoleRadius    *float64 `mapstructure:"bolt_hole_radius" yaml:"bolt_hole_radius,omitempty" json:"bolt_hole_radius,omitempty"`
	NumBolts          *int     `mapstructure:"num_bolts" yaml:"num_bolts,omitempty" json:"num_bolts,omitempty"`
}

// supplied returns the option names of every reserved field that is set.
func (r Reserved) supplied() []string {
	var names []string
	add := func(name string, set bool) {
		if set {
			names = append(names, name)
		}
	}
	add("vent_radius", r.VentRadius != nil)
	add("num_vents", r.NumVents != nil)
	add("bearing_seat_radius", r.BearingSeatRadius != nil)
	add("bearing_seat_width", r.BearingSeatWidth != nil)
	add("bolt_pattern_radius", r.BoltPatternRadius != nil)
	add("bolt_hole_radius", r.BoltHoleRadius != nil)
	add("num_bolts", r.NumBolts != nil)
	return names
}

// Float returns a pointer to v, for building Parameters literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// segments returns the configured resolution or the default.
func (p Parameters) segments() int {
	if p.Segments == nil {
		return DefaultSegments
	}
	return *p.Segments
}

func value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// nonZero reports whether an optional number is present and non-zero.
func nonZero(f *float64) bool {
	return f != nil && *f != 0
}
