// Package convert turns loosely typed values, such as database columns,
// configuration entries or decoded JSON, into concrete Go types.
//
// Conversions are delegated to github.com/spf13/cast. A nil input, or a
// driver.Valuer that yields nil, converts to the zero value without error.
//
//	n, err := convert.To[int]("42")            // 42, nil
//	d := convert.TryTo("oops", 5*time.Second)  // 5s, the conversion failed
//	p, _ := convert.ToNullable[int](nil)       // nil
//
// The comparison helpers In, EqualsAny and IsDefault replace the usual
// loops over candidate values.
package convert
