package validator

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/dlclark/regexp2"
)

// Chain evaluates rules against a set of values. Build one with That and
// finish it with ThrowOnError. A chain is not safe for concurrent use.
//
// By default the chain is fail-fast: once any failure is recorded, later
// rules are skipped and a rule stops at the first failing value. ReportAll
// switches the chain to aggregate mode where every rule runs against every value.
//
// An empty value list is a usage error rather than a failed rule: every later
// rule is skipped and the terminal call returns ErrMissingValues, which does
// not match ErrValidationFailed.
//
// Calls made after the terminal call change nothing. The terminal call cannot
// report them, so they are recorded as "Already validated" failures that show
// up in Errors and in the ErrAlreadyValidated error of a repeated terminal call.
type Chain[T any] struct {
	targets  []T
	offset   int
	failFast bool
	missing  bool
	done     bool
	errs     ValidationErrors
	misuse   ValidationErrors
	started  time.Time
	elapsed  time.Duration
}

// That starts a new chain over the given values.
func That[T any](values ...T) *Chain[T] {
	c := &Chain[T]{
		failFast: true,
		started:  time.Now(),
	}
	if len(values) == 0 {
		c.missing = true
		return c
	}
	c.targets = values
	return c
}

// That replaces the tracked values. Failures recorded so far are kept. Each
// call shifts parameter numbering by one, so the first value of the second
// That call is reported as parameter 2.
func (c *Chain[T]) That(values ...T) *Chain[T] {
	if c.validated("That") || c.missing {
		return c
	}
	if len(values) == 0 {
		c.missing = true
		c.targets = nil
		return c
	}
	if c.skip() {
		return c
	}
	c.offset++
	c.targets = values
	return c
}

// ReportAll makes the chain collect every failure instead of stopping at the first one.
func (c *Chain[T]) ReportAll() *Chain[T] {
	if c.validated("ReportAll") {
		return c
	}
	c.failFast = false
	return c
}

// IsNotNull fails for nil values, including typed nil pointers, maps, slices, funcs and channels.
func (c *Chain[T]) IsNotNull() *Chain[T] {
	if c.validated("IsNotNull") || c.skip() {
		return c
	}
	c.check("IsNotNull", func(T) bool { return true }, "")
	return c
}

// IsIn fails for values not present in the whitelist.
func (c *Chain[T]) IsIn(whitelist []T) *Chain[T] {
	if c.validated("IsIn") || c.skip() {
		return c
	}
	if len(whitelist) == 0 {
		c.errs.Add(ValidationError{Field: "IsIn", Message: fmt.Sprintf(msgMissingParameter, "whitelist")})
		return c
	}
	c.check("IsIn", func(v T) bool {
		for _, w := range whitelist {
			if equal(v, w) {
				return true
			}
		}
		return false
	}, "")
	return c
}

// Matches compiles pattern case-insensitively and matches it against the
// string form of every value.
func (c *Chain[T]) Matches(pattern string) *Chain[T] {
	if c.validated("Matches") || c.skip() {
		return c
	}
	if pattern == "" {
		c.errs.Add(ValidationError{Field: "Matches", Message: fmt.Sprintf(msgMissingParameter, "pattern")})
		return c
	}
	re, err := CompilePattern(pattern, true)
	if err != nil {
		c.errs.Add(ValidationError{Field: "Matches", Message: fmt.Sprintf(msgInvalidParameter, "pattern")})
		return c
	}
	c.match("Matches", re)
	return c
}

// MatchesRegexp matches a precompiled expression against the string form of every value.
func (c *Chain[T]) MatchesRegexp(re *regexp2.Regexp) *Chain[T] {
	if c.validated("Matches") || c.skip() {
		return c
	}
	if re == nil {
		c.errs.Add(ValidationError{Field: "Matches", Message: fmt.Sprintf(msgMissingParameter, "regex")})
		return c
	}
	c.match("Matches", re)
	return c
}

// MatchesPattern matches every value against a named pattern from the pattern table.
func (c *Chain[T]) MatchesPattern(pt PatternType) *Chain[T] {
	if c.validated("MatchesPattern") || c.skip() {
		return c
	}
	re, ok := compiled[pt]
	if !ok {
		c.errs.Add(ValidationError{Field: "MatchesPattern", Message: fmt.Sprintf(msgInvalidParameter, "patternType")})
		return c
	}
	c.match("MatchesPattern", re)
	return c
}

// Obeys fails for values rejected by pred. The optional message replaces
// the default "N parameter failed." text.
func (c *Chain[T]) Obeys(pred func(T) bool, message ...string) *Chain[T] {
	if c.validated("Obeys") || c.skip() {
		return c
	}
	if pred == nil {
		c.errs.Add(ValidationError{Field: "Obeys", Message: fmt.Sprintf(msgMissingParameter, "predicate")})
		return c
	}
	var msg string
	if len(message) > 0 {
		msg = message[0]
	}
	c.check("Obeys", pred, msg)
	return c
}

// ThrowOnError ends the chain. It returns nil when nothing failed, the
// ValidationError itself for a single failure and ValidationErrors otherwise.
// When That received no values the result is ErrMissingValues joined with
// the failures recorded before it. Calling it again yields ErrAlreadyValidated.
func (c *Chain[T]) ThrowOnError() error {
	if c.validated("ThrowOnError") {
		return errors.Join(ErrAlreadyValidated, c.misuse.clone())
	}
	c.finish()
	return c.result()
}

// ThrowOnErrorTimed behaves like ThrowOnError and reports the time spent
// between That and the terminal call to handler before returning.
func (c *Chain[T]) ThrowOnErrorTimed(handler func(time.Duration)) error {
	if c.validated("ThrowOnError") {
		return errors.Join(ErrAlreadyValidated, c.misuse.clone())
	}
	c.finish()
	if handler != nil {
		handler(c.elapsed)
	}
	return c.result()
}

// Errors returns every failure recorded so far, including usage errors.
func (c *Chain[T]) Errors() ValidationErrors {
	all := make(ValidationErrors, 0, len(c.errs)+len(c.misuse))
	all = append(all, c.errs...)
	return append(all, c.misuse...)
}

// Elapsed returns the evaluation time measured by the terminal call.
func (c *Chain[T]) Elapsed() time.Duration {
	return c.elapsed
}

// Validated reports whether the terminal call has been made.
func (c *Chain[T]) Validated() bool {
	return c.done
}

func (c *Chain[T]) validated(method string) bool {
	if !c.done {
		return false
	}
	c.misuse.Add(ValidationError{Field: method, Message: msgAlreadyValidated})
	return true
}

func (c *Chain[T]) skip() bool {
	return c.missing || (c.failFast && len(c.errs) > 0)
}

func (c *Chain[T]) finish() {
	c.done = true
	c.elapsed = time.Since(c.started)
}

func (c *Chain[T]) result() error {
	var err error
	switch len(c.errs) {
	case 0:
	case 1:
		err = c.errs[0]
	default:
		err = c.errs.clone()
	}
	if c.missing {
		return errors.Join(ErrMissingValues, err)
	}
	return err
}

func (c *Chain[T]) check(method string, pass func(T) bool, message string) {
	for i, v := range c.targets {
		if isNil(v) || !pass(v) {
			msg := message
			if msg == "" {
				msg = fmt.Sprintf(msgParameterFailed, c.offset+i+1)
			}
			c.errs.Add(ValidationError{Field: method, Message: msg})
			if c.failFast {
				return
			}
		}
	}
}

func (c *Chain[T]) match(method string, re *regexp2.Regexp) {
	c.check(method, func(v T) bool {
		ok, err := re.MatchString(fmt.Sprint(v))
		return err == nil && ok
	}, "")
}

func (ve ValidationErrors) clone() ValidationErrors {
	out := make(ValidationErrors, len(ve))
	copy(out, ve)
	return out
}

func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func equal[T any](a, b T) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	tx := reflect.TypeOf(x)
	if tx == reflect.TypeOf(y) && tx.Comparable() {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}
