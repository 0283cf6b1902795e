// Package design holds the named parts produced by evaluating a design
// source. Parts keep their definition order; every part is resolved
// when added, so a design never contains parameters that would fail
// to build.
package design

import (
	"fmt"

	"github.com/chazu/lathe/pkg/params"
)

// Part is one named, resolved parameter set.
type Part struct {
	Name     string            `json:"name"`
	Params   params.Parameters `json:"params"`
	Plan     params.Plan       `json:"-"`
	Warnings []params.Warning  `json:"warnings,omitempty"`
}

// Design is an ordered collection of parts with a name index.
type Design struct {
	Parts     []*Part        `json:"parts"`
	NameIndex map[string]int `json:"-"`
}

// New creates an empty Design.
func New() *Design {
	return &Design{NameIndex: make(map[string]int)}
}

// Add resolves p and appends it under name. Names must be unique and
// non-empty; invalid parameters are rejected before the part is added.
func (d *Design) Add(name string, p params.Parameters) (*Part, error) {
	if name == "" {
		return nil, fmt.Errorf("design: part name must not be empty")
	}
	if _, exists := d.NameIndex[name]; exists {
		return nil, fmt.Errorf("design: part %q already defined", name)
	}
	plan, warnings, err := params.Resolve(p)
	if err != nil {
		return nil, fmt.Errorf("design: part %q: %w", name, err)
	}

	part := &Part{Name: name, Params: p, Plan: plan, Warnings: warnings}
	d.NameIndex[name] = len(d.Parts)
	d.Parts = append(d.Parts, part)
	return part, nil
}

// Lookup returns the part with the given name, or nil.
func (d *Design) Lookup(name string) *Part {
	i, ok := d.NameIndex[name]
	if !ok {
		return nil
	}
	return d.Parts[i]
}

// MustLookup returns the part with the given name, or panics.
func (d *Design) MustLookup(name string) *Part {
	p := d.Lookup(name)
	if p == nil {
		panic(fmt.Sprintf("design: no part named %q", name))
	}
	return p
}

// PartCount returns the number of parts.
func (d *Design) PartCount() int {
	return len(d.Parts)
}

// Warnings returns every part's advisories, in part order.
func (d *Design) Warnings() []PartWarning {
	var out []PartWarning
	for _, p := range d.Parts {
		for _, w := range p.Warnings {
			out = append(out, PartWarning{Part: p.Name, Warning: w})
		}
	}
	return out
}

// PartWarning ties an advisory to the part that raised it.
type PartWarning struct {
	Part string
	params.Warning
}
