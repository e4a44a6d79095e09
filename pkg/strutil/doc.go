// Package strutil collects small string helpers used across services:
// masking sensitive values, token substitution, truncation, blank checks and
// Unicode aware comparison.
//
//	strutil.MaskAll("4111111111111111", 4)         // "************1111"
//	strutil.MaskAlphaNumeric("123-45-6789", 4)     // "***-**-6789"
//	strutil.Resolve("Hi {name}", map[string]string{"{name}": "Ann"})
//	strutil.Truncate("A long description", 6)      // "A long..."
//	strutil.Fold("STRASSE", "straße")              // true
//	strutil.RemoveDiacritics("Crème brûlée")       // "Creme brulee"
//
// All helpers operate on runes, so multi-byte characters count as one.
package strutil
