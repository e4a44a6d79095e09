package strutil

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaskCharacter replaces hidden characters in MaskAll and MaskAlphaNumeric.
const DefaultMaskCharacter = '*'

// MaskStyle selects which characters Mask hides.
type MaskStyle int

const (
	// MaskEverything hides every character.
	MaskEverything MaskStyle = iota
	// MaskAlphaNumericOnly hides letters and digits and keeps separators.
	MaskAlphaNumericOnly
)

// Mask hides all but the last exposed characters of s with maskChar.
// Strings shorter than exposed are returned unchanged.
func Mask(s string, maskChar rune, exposed int, style MaskStyle) string {
	exposed = max(exposed, 0)
	rs := []rune(s)
	if len(rs) < exposed {
		return s
	}

	hidden := len(rs) - exposed
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range rs {
		switch {
		case i >= hidden:
			b.WriteRune(r)
		case style == MaskAlphaNumericOnly && !unicode.IsLetter(r) && !unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(maskChar)
		}
	}
	return b.String()
}

// MaskAll hides every character except the last exposed ones.
func MaskAll(s string, exposed int) string {
	return Mask(s, DefaultMaskCharacter, exposed, MaskEverything)
}

// MaskAlphaNumeric hides letters and digits except the last exposed characters.
func MaskAlphaNumeric(s string, exposed int) string {
	return Mask(s, DefaultMaskCharacter, exposed, MaskAlphaNumericOnly)
}

// Resolve replaces every occurrence of each token key with its value.
// Longer tokens are replaced first so overlapping tokens resolve predictably.
func Resolve(s string, tokens map[string]string) string {
	if s == "" || len(tokens) == 0 {
		return s
	}

	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, tokens[k])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Repeat returns s repeated count times. A non-positive count yields "".
func Repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// Truncate shortens s to maxLength characters followed by "...".
// Strings within the limit are returned unchanged.
func Truncate(s string, maxLength int) string {
	maxLength = max(maxLength, 0)
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return string([]rune(s)[:maxLength]) + "..."
}

// LengthAtLeast reports whether s has at least n characters.
func LengthAtLeast(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank is the negation of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// NullIfEmpty returns nil for an empty string and a pointer to s otherwise.
func NullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the string p points to, or "" for nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Fold reports whether a and b are equal under full Unicode case folding.
func Fold(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}

// RemoveDiacritics strips combining marks, turning "é" into "e".
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
