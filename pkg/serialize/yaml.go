package serialize

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToYAML renders v as YAML. WithIndent sets the number of spaces per level
// from the length of the indent string; the default is four.
func ToYAML(v any, opts ...Option) (string, error) {
	o := newOptions(opts)

	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	if o.indent != "" {
		enc.SetIndent(len(o.indent))
	}
	if err := enc.Encode(v); err != nil {
		return "", errors.Join(ErrMarshal, err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.Join(ErrMarshal, err)
	}
	return buf.String(), nil
}

// FromYAML parses s into a new T. WithStrictFields rejects unknown keys.
func FromYAML[T any](s string, opts ...Option) (T, error) {
	var out T
	if strings.TrimSpace(s) == "" {
		return out, ErrEmptyInput
	}

	o := newOptions(opts)
	dec := yaml.NewDecoder(strings.NewReader(s))
	dec.KnownFields(o.disallowFields)
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, errors.Join(ErrUnmarshal, err)
	}
	return out, nil
}
