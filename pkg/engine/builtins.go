package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/lathe/pkg/design"
	"github.com/chazu/lathe/pkg/params"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix marks string literals that were :keywords in the source.
const kwPrefix = "__kw_"

// preprocessSource rewrites lathe source into something zygomys reads:
//
//   - :keyword becomes the string literal "__kw_keyword", so keywords
//     need no global registration and never clash with user variables.
//   - kebab-case identifiers become snake_case, since zygomys parses a
//     hyphen as subtraction. Hyphens inside keywords are kept.
//   - ; and ;; line comments become // comments.
//
// String literals (double-quoted and backtick) pass through untouched.
func preprocessSource(source string) string {
	p := &preprocessor{src: []byte(source)}
	p.out = make([]byte, 0, len(source)+len(source)/4)
	for p.pos < len(p.src) {
		p.step()
	}
	return string(p.out)
}

type preprocessor struct {
	src []byte
	out []byte
	pos int
}

func (p *preprocessor) peek(off int) (byte, bool) {
	i := p.pos + off
	if i < 0 || i >= len(p.src) {
		return 0, false
	}
	return p.src[i], true
}

// copyUntil copies bytes up to and including the closing delimiter.
// With escapes set, a backslash protects the following byte.
func (p *preprocessor) copyUntil(closer byte, escapes bool) {
	p.out = append(p.out, p.src[p.pos])
	p.pos++
	for p.pos < len(p.src) && p.src[p.pos] != closer {
		if escapes && p.src[p.pos] == '\\' && p.pos+1 < len(p.src) {
			p.out = append(p.out, p.src[p.pos], p.src[p.pos+1])
			p.pos += 2
			continue
		}
		p.out = append(p.out, p.src[p.pos])
		p.pos++
	}
	if p.pos < len(p.src) {
		p.out = append(p.out, p.src[p.pos])
		p.pos++
	}
}

func (p *preprocessor) step() {
	c := p.src[p.pos]
	switch {
	case c == '"':
		p.copyUntil('"', true)
	case c == '`':
		p.copyUntil('`', false)
	case c == ';':
		p.comment()
	case c == ':':
		p.colon()
	case c == '-' && p.isKebabHyphen():
		p.out = append(p.out, '_')
		p.pos++
	default:
		p.out = append(p.out, c)
		p.pos++
	}
}

func (p *preprocessor) comment() {
	p.out = append(p.out, '/', '/')
	for p.pos < len(p.src) && p.src[p.pos] == ';' {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] != '\n' {
		p.out = append(p.out, p.src[p.pos])
		p.pos++
	}
}

func (p *preprocessor) colon() {
	next, ok := p.peek(1)
	switch {
	case ok && next == '=':
		// := is zygomys assignment.
		p.out = append(p.out, ':', '=')
		p.pos += 2
	case ok && isLetter(next):
		end := p.pos + 1
		for end < len(p.src) && isKWChar(p.src[end]) {
			end++
		}
		p.out = append(p.out, '"')
		p.out = append(p.out, kwPrefix...)
		p.out = append(p.out, p.src[p.pos+1:end]...)
		p.out = append(p.out, '"')
		p.pos = end
	default:
		p.out = append(p.out, ':')
		p.pos++
	}
}

// isKebabHyphen reports whether the hyphen at pos joins two identifier
// parts rather than acting as a minus operator.
func (p *preprocessor) isKebabHyphen() bool {
	prev, okPrev := p.peek(-1)
	next, okNext := p.peek(1)
	return okPrev && okNext && isIdentChar(prev) && isLetter(next)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isIdentChar(c) || c == '-'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpPartRef names a defined part so it can be passed between forms.
type sexpPartRef struct {
	name string
}

func (r *sexpPartRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(part %q)", r.name)
}
func (r *sexpPartRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW returns the keyword name if s is a preprocessed keyword.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	order      []string // keywords in source order
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments. A
// trailing keyword with no value maps to nil.
func parseArgs(args []zygo.Sexp) (kwArgs, error) {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if _, dup := result.kw[name]; dup {
			return kwArgs{}, fmt.Errorf("keyword :%s given twice", name)
		}
		val := zygo.Sexp(zygo.SexpNull)
		if i+1 < len(args) {
			val = args[i+1]
			i++
		}
		result.kw[name] = val
		result.order = append(result.order, name)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toOptionValue converts a keyword value into what params.FromMap
// expects: int64 or float64 for numbers, nil for an absent option.
func toOptionValue(s zygo.Sexp) (any, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return v.Val, nil
	case *zygo.SexpFloat:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// optionName maps a kebab-case keyword to its snake_case option name.
func optionName(kw string) string {
	return strings.ReplaceAll(kw, "-", "_")
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the lathe builtins into a zygomys
// environment. They populate d during evaluation.
func registerBuiltins(env *zygo.Zlisp, d *design.Design) {

	// -----------------------------------------------------------------------
	// (defpart "hub" :outer-radius 1.0 :thickness 0.2 :segments 64 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("defpart", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa, err := parseArgs(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defpart: %w", err)
		}
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("defpart requires exactly one name argument, got %d", len(pa.positional))
		}
		partName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defpart: name: %w", err)
		}

		opts := make(map[string]any, len(pa.order))
		for _, kw := range pa.order {
			v, err := toOptionValue(pa.kw[kw])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("defpart %q: %s: %w", partName, kw, err)
			}
			opts[optionName(kw)] = v
		}

		p, err := params.FromMap(opts)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defpart %q: %w", partName, err)
		}
		if _, err := d.Add(partName, p); err != nil {
			return zygo.SexpNull, fmt.Errorf("defpart: %w", err)
		}
		return &sexpPartRef{name: partName}, nil
	})

	// -----------------------------------------------------------------------
	// (part "hub")
	// -----------------------------------------------------------------------
	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("part requires a name argument")
		}
		partName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part: name: %w", err)
		}
		if d.Lookup(partName) == nil {
			return zygo.SexpNull, fmt.Errorf("part: no part named %q", partName)
		}
		return &sexpPartRef{name: partName}, nil
	})
}
