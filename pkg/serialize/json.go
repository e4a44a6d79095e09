package serialize

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ToJSON renders v as JSON. HTML characters are not escaped.
func ToJSON(v any, opts ...Option) (string, error) {
	o := newOptions(opts)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if o.indent != "" {
		enc.SetIndent(o.prefix, o.indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", errors.Join(ErrMarshal, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FromJSON parses s into a new T.
func FromJSON[T any](s string, opts ...Option) (T, error) {
	var out T
	if strings.TrimSpace(s) == "" {
		return out, ErrEmptyInput
	}

	o := newOptions(opts)
	dec := json.NewDecoder(strings.NewReader(s))
	if o.disallowFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, errors.Join(ErrUnmarshal, err)
	}
	return out, nil
}
