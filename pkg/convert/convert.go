package convert

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/spf13/cast"
)

// To converts v to T. Supported targets are strings, booleans, every integer
// and float kind, time.Time and time.Duration. Any other T only succeeds when
// v already holds a T.
func To[T any](v any) (T, error) {
	var out T

	v, err := unwrapValuer(v)
	if err != nil {
		return out, errors.Join(ErrConversion, err)
	}
	if v == nil {
		return out, nil
	}
	if same, ok := v.(T); ok {
		return same, nil
	}

	switch p := any(&out).(type) {
	case *string:
		*p, err = cast.ToStringE(v)
	case *bool:
		*p, err = cast.ToBoolE(v)
	case *int:
		*p, err = cast.ToIntE(v)
	case *int8:
		*p, err = cast.ToInt8E(v)
	case *int16:
		*p, err = cast.ToInt16E(v)
	case *int32:
		*p, err = cast.ToInt32E(v)
	case *int64:
		*p, err = cast.ToInt64E(v)
	case *uint:
		*p, err = cast.ToUintE(v)
	case *uint8:
		*p, err = cast.ToUint8E(v)
	case *uint16:
		*p, err = cast.ToUint16E(v)
	case *uint32:
		*p, err = cast.ToUint32E(v)
	case *uint64:
		*p, err = cast.ToUint64E(v)
	case *float32:
		*p, err = cast.ToFloat32E(v)
	case *float64:
		*p, err = cast.ToFloat64E(v)
	case *time.Time:
		*p, err = cast.ToTimeE(v)
	case *time.Duration:
		*p, err = cast.ToDurationE(v)
	case *[]string:
		*p, err = cast.ToStringSliceE(v)
	case *map[string]any:
		*p, err = cast.ToStringMapE(v)
	default:
		return out, fmt.Errorf("%w: %T from %T", ErrUnsupportedType, out, v)
	}

	if err != nil {
		var zero T
		return zero, errors.Join(ErrConversion, err)
	}
	return out, nil
}

// TryTo converts v to T and returns def when v is nil or cannot be converted.
func TryTo[T any](v any, def T) T {
	if isNil(v) {
		return def
	}
	out, err := To[T](v)
	if err != nil {
		return def
	}
	return out
}

// ToNullable converts v to *T, returning nil for nil input.
func ToNullable[T any](v any) (*T, error) {
	v, err := unwrapValuer(v)
	if err != nil {
		return nil, errors.Join(ErrConversion, err)
	}
	if v == nil {
		return nil, nil
	}

	out, err := To[T](v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// IsDefault reports whether v is the zero value of its type.
func IsDefault[T comparable](v T) bool {
	var zero T
	return v == zero
}

// In reports whether v equals any element of set.
func In[T comparable](v T, set ...T) bool {
	return slices.Contains(set, v)
}

// EqualsAny reports whether v is deeply equal to any of the candidates.
// Values of different dynamic types never match.
func EqualsAny(v any, candidates ...any) bool {
	for _, c := range candidates {
		if reflect.DeepEqual(v, c) {
			return true
		}
	}
	return false
}

func unwrapValuer(v any) (any, error) {
	if isNil(v) {
		return nil, nil
	}
	if valuer, ok := v.(driver.Valuer); ok {
		return valuer.Value()
	}
	return v, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
