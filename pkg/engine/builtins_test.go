package engine

import (
	"strings"
	"testing"

	"github.com/chazu/lathe/pkg/kernel"
	"github.com/chazu/lathe/pkg/params"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(defpart "hub" :thickness 1)`,
			expect: `(defpart "hub" "__kw_thickness" 1)`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:outer-radius 2`,
			expect: `"__kw_outer-radius" 2`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "escaped quote in string",
			input:  `"say \"hi\" :x"`,
			expect: `"say \"hi\" :x"`,
		},
		{
			name:   "backtick string preserved",
			input:  "`raw :kw some-name`",
			expect: "`raw :kw some-name`",
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def bore-radius 0.5)`,
			expect: `(def bore_radius 0.5)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative literal preserved",
			input:  `:thickness -1`,
			expect: `"__kw_thickness" -1`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
		{
			name:   "lone colon",
			input:  `: 1`,
			expect: `: 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// defpart
// ---------------------------------------------------------------------------

func TestDefpartAllOptions(t *testing.T) {
	eng := NewEngine()

	source := `
(defpart "hub"
  :outer-radius 1.0 :inner-radius 0.4 :thickness 0.2
  :flange-radius 2 :flange-thickness 0.5 :center-bore-radius 0.25
  :segments 64)
`
	d, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if d.PartCount() != 1 {
		t.Fatalf("expected 1 part, got %d", d.PartCount())
	}

	hub := d.Lookup("hub")
	if hub == nil {
		t.Fatal("expected part named 'hub'")
	}
	p := hub.Params
	if p.OuterRadius == nil || *p.OuterRadius != 1.0 {
		t.Errorf("outer_radius = %v, want 1.0", p.OuterRadius)
	}
	if p.FlangeRadius == nil || *p.FlangeRadius != 2 {
		t.Errorf("flange_radius = %v, want 2 (integer literal)", p.FlangeRadius)
	}
	if p.CenterBoreRadius == nil || *p.CenterBoreRadius != 0.25 {
		t.Errorf("center_bore_radius = %v, want 0.25", p.CenterBoreRadius)
	}
	if p.Segments == nil || *p.Segments != 64 {
		t.Errorf("segments = %v, want 64", p.Segments)
	}

	shells := hub.Plan.Shells
	if len(shells) != 2 || shells[0].Kind != kernel.ShellMain || shells[1].Kind != kernel.ShellFlange {
		t.Errorf("unexpected plan %+v", hub.Plan)
	}
}

func TestDefpartVariableReference(t *testing.T) {
	eng := NewEngine()

	source := `
(def wall-thickness 0.3)
(defpart "ring" :outer-radius 5 :thickness wall-thickness :segments (* 4 8))
`
	d, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}

	ring := d.MustLookup("ring")
	if *ring.Params.Thickness != 0.3 {
		t.Errorf("thickness = %f, want 0.3 (from variable)", *ring.Params.Thickness)
	}
	if ring.Plan.Segments != 32 {
		t.Errorf("segments = %d, want 32", ring.Plan.Segments)
	}
}

func TestDefpartKeepsDefinitionOrder(t *testing.T) {
	eng := NewEngine()

	source := `
(defpart "c" :outer-radius 1 :thickness 1)
(defpart "a" :flange-radius 2 :flange-thickness 1)
(defpart "b" :outer-radius 3 :thickness 1)
`
	d, evalErrs, err := eng.Evaluate(source)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("unexpected errors: %v %v", err, evalErrs)
	}
	var names []string
	for _, p := range d.Parts {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "c,a,b" {
		t.Errorf("part order = %v, want [c a b]", names)
	}
}

func TestDefpartWarningsRecorded(t *testing.T) {
	eng := NewEngine()

	d, evalErrs, err := eng.Evaluate(`(defpart "half" :outer-radius 1 :thickness 1 :flange-radius 2 :num-bolts 6)`)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("unexpected errors: %v %v", err, evalErrs)
	}
	ws := d.Warnings()
	if len(ws) != 2 {
		t.Fatalf("expected 2 warnings, got %v", ws)
	}
	if ws[0].Code != params.WarnPartialFlange || ws[1].Code != params.WarnReservedOption {
		t.Errorf("unexpected warnings %v", ws)
	}
}

func TestDefpartErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{
			name:    "zero segments",
			source:  `(defpart "hub" :outer-radius 1 :thickness 1 :segments 0)`,
			wantMsg: "segments",
		},
		{
			name:    "fractional segments",
			source:  `(defpart "hub" :outer-radius 1 :thickness 1 :segments 4.7)`,
			wantMsg: "segments",
		},
		{
			name:    "fractional bolt count",
			source:  `(defpart "hub" :outer-radius 1 :num-bolts 2.5)`,
			wantMsg: "num_bolts",
		},
		{
			name:    "segments above maximum",
			source:  `(defpart "hub" :outer-radius 1 :thickness 1 :segments 4611686018427387904)`,
			wantMsg: "segments",
		},
		{
			name:    "unknown option",
			source:  `(defpart "hub" :outer-radius 1 :spoke-count 5)`,
			wantMsg: "spoke_count",
		},
		{
			name:    "non-numeric value",
			source:  `(defpart "hub" :outer-radius "big")`,
			wantMsg: "outer-radius",
		},
		{
			name:    "duplicate keyword",
			source:  `(defpart "hub" :thickness 1 :thickness 2)`,
			wantMsg: "given twice",
		},
		{
			name:    "missing name",
			source:  `(defpart :thickness 1)`,
			wantMsg: "name",
		},
		{
			name:    "duplicate part",
			source:  "(defpart \"hub\" :outer-radius 1)\n(defpart \"hub\" :outer-radius 2)",
			wantMsg: "already defined",
		},
		{
			name:    "thickness without outer radius",
			source:  `(defpart "hub" :thickness 1)`,
			wantMsg: "outer_radius",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if d != nil {
				t.Fatal("expected nil design on error")
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected an eval error")
			}
			if !strings.Contains(evalErrs[0].Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", evalErrs[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestPartLookup(t *testing.T) {
	eng := NewEngine()

	_, evalErrs, err := eng.Evaluate("(defpart \"hub\" :outer-radius 1)\n(part \"hub\")")
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("unexpected errors: %v %v", err, evalErrs)
	}

	d, evalErrs, err := eng.Evaluate(`(part "ghost")`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if d != nil || len(evalErrs) == 0 {
		t.Fatal("expected eval error for unknown part")
	}
	if !strings.Contains(evalErrs[0].Message, "ghost") {
		t.Errorf("message = %q, want part name", evalErrs[0].Message)
	}
}

func TestSexpPartRefString(t *testing.T) {
	r := &sexpPartRef{name: "hub"}
	if got := r.SexpString(nil); got != `(part "hub")` {
		t.Errorf("SexpString() = %q", got)
	}
}

func TestOptionName(t *testing.T) {
	if got := optionName("center-bore-radius"); got != "center_bore_radius" {
		t.Errorf("optionName = %q", got)
	}
}
