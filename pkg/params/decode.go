package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"go.yaml.in/yaml/v3"
)

// FromMap decodes an option map keyed by snake_case option names.
// A nil value leaves the option unset. Unknown names are rejected, as
// are fractional values for integer options.
func FromMap(m map[string]any) (Parameters, error) {
	var p Parameters
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  wholeNumberHook,
		ErrorUnused: true,
		Result:      &p,
	})
	if err != nil {
		return Parameters{}, fmt.Errorf("params: building decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return Parameters{}, fmt.Errorf("params: %w: %s", ErrInvalidParameter, oneLine(err))
	}
	return p, nil
}

// wholeNumberHook refuses to narrow a float with a fractional part into
// an integer option.
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Pointer {
		to = to.Elem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	var v float64
	switch f := data.(type) {
	case float64:
		v = f
	case float32:
		v = float64(f)
	default:
		return data, nil
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%g is not a whole number", v)
	}
	return data, nil
}

// oneLine collapses a multi-line decoder error so it survives
// line-oriented error reporting.
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}

// ParseYAML decodes a parameter preset. An empty document yields zero
// Parameters. The document goes through the same checks as FromMap.
func ParseYAML(data []byte) (Parameters, error) {
	var m map[string]any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Parameters{}, nil
		}
		return Parameters{}, fmt.Errorf("params: yaml: %w: %s", ErrInvalidParameter, oneLine(err))
	}
	return FromMap(m)
}
