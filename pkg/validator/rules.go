package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MatchesPatternRule validates value against a named entry of the pattern table.
func MatchesPatternRule(field, value string, pt PatternType, allowEmpty bool) Rule {
	return Rule{
		Check: func() bool {
			return ValidateInput(value, pt, allowEmpty)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a valid %s", pt),
		},
	}
}

// MatchesRegex validates against a custom expression. The expression is
// compiled on each call; an invalid expression fails the rule.
func MatchesRegex(field, value, pattern, description string) Rule {
	re, err := CompilePattern(pattern, false)
	return Rule{
		Check: func() bool {
			if err != nil || strings.TrimSpace(value) == "" {
				return false
			}
			ok, err := re.MatchString(value)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
		},
	}
}
