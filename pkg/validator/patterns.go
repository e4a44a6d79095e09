package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// PatternType names an entry of the input pattern table.
type PatternType int

const (
	AccountNumber PatternType = iota
	AccountNumberBackOffice
	Address
	Alpha
	AlphaAndSpaces
	AlphaAndDigits
	AlphaAndDigitsAndSpaces
	AlphaAndDigitsAndUnderscores
	AlphaAndDigitsAndUnderscoresAndSpaces
	AlphaAndDigitsAndSpacesAndSpecialCharacters
	City
	Currency
	Date
	Email
	EquitySymbol
	EquitySymbolUSAndCanadian
	FreeFormText
	FreeFormLatinAndChineseText
	Integer
	IntegerUnsigned
	IPAddressV4
	IPAddressV6
	Name
	Number
	OptionSymbolBackOffice
	OptionSymbolDisplayable
	OptionSymbolBashwork
	OrderID
	Password
	PasswordBashworkAccountDefault
	Phone
	PhoneWithAreaCode
	SpecialCharacters
	SSN
	TaxIdentificationNumber
	URL
	ZipCode
)

// matchTimeout bounds backtracking on hostile input.
const matchTimeout = time.Second

const (
	ipv6Hex = `(?!.{47,})(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}(?:(?:%[0-9]{1,3})?|(?:%eth[0-9]{1,3})?|` +
		`(?:/(?:1[0,1]{1}\d|12[0-8]{1}|0?\d{1,2}))?)`
	ipv6HexCompressed = `(?!.{47,})(?:(?:[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*)?)::(?:(?:[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*)?)` +
		`(?:(?:%[0-9]{1,3})?|(?:%eth[0-9]{1,3})?|(?:/(?:1[0,1]{1}\d|12[0-8]{1}|0?\d{1,2}))?)`
	ipv6IPv4 = `(?!.{46,})(?:(?:[0-9A-Fa-f]{1,4}:){6,6})(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)`
	ipv6IPv4Compressed = `(?!.{46,})(?:(?:[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*)?)::(?:(?:[0-9A-Fa-f]{1,4}:)*)` +
		`(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)`
)

var patterns = map[PatternType]string{
	AccountNumber:                         `^[0-9]{8}$`,
	AccountNumberBackOffice:               `^[0-9]{10}$`,
	Address:                               `^[#0-9a-zA-Z' \n\r,\.\-&/]+$`,
	Alpha:                                 `^[A-Za-z]+$`,
	AlphaAndSpaces:                        `^[A-Za-z ]+$`,
	AlphaAndDigits:                        `^[A-Za-z0-9]+$`,
	AlphaAndDigitsAndSpaces:               `^[A-Za-z0-9 ]+$`,
	AlphaAndDigitsAndUnderscores:          `^[A-Za-z0-9_]+$`,
	AlphaAndDigitsAndUnderscoresAndSpaces: `^[A-Za-z0-9 _]+$`,
	AlphaAndDigitsAndSpacesAndSpecialCharacters: `^[A-Za-z0-9 *~!@#$%^&*()|\\?/<>=+_]+$`,
	City:     `^[#a-zA-Z' ,\.\-\&]+$`,
	Currency: `^-?\$?(0\.[0-9]{2}|[1-9]{1}[0-9]{0,2}(,[0-9]{3})*(\.[0-9]{2})?)$`,
	Date: `^(?:(?:(?:0?[13578]|1[02])(\/|-|\.)31)\1|(?:(?:0?[13-9]|1[0-2])(\/|-|\.)(?:29|30)\2))` +
		`(?:(?:1[6-9]|[2-9]\d)?\d{2})$|^(?:0?2(\/|-|\.)29\3(?:(?:(?:1[6-9]|[2-9]\d)?(?:0[48]|` +
		`[2468][048]|[13579][26])|(?:(?:16|[2468][048]|[3579][26])00))))$|^(?:(?:0?[1-9])|(?:` +
		`1[0-2]))(\/|-|\.)(?:0?[1-9]|1\d|2[0-8])\4(?:(?:1[6-9]|[2-9]\d)?\d{2})$`,
	Email: `^([a-zA-Z0-9_\-\.]+)@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.)|(([a-zA-Z0-9\-]+\.)+))` +
		`([0-9a-zA-Z]{2,6})(\]?)$`,
	EquitySymbol:              `^[A-Za-z]{1,5}$`,
	EquitySymbolUSAndCanadian: `^(\.?[A-Za-z]{1,5}((/(A{1,3}|B))|(\.CA))?)$`,
	FreeFormText:              `^[A-Za-z0-9 _.,'?!;:/\\()&*%^$#@~\-+=<>\r\n"]+$`,
	FreeFormLatinAndChineseText: `^[\x20-\x7E\u2000-\u201f\u3000-\u303F\u3200-\u32FF\u3300-\u33FF\u4e00-\u9fa5` +
		`\uFF00-\uFFEF\r\t\n]+$`,
	Integer:         `^-?\d+$`,
	IntegerUnsigned: `^\d+$`,
	IPAddressV4:     `^\b(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\b$`,
	IPAddressV6: fmt.Sprintf("(^%s$)|(^%s$)|(^%s$)|(^%s$)",
		ipv6Hex, ipv6HexCompressed, ipv6IPv4, ipv6IPv4Compressed),
	Name:                   `^[a-zA-Z' \-\.,]+$`,
	Number:                 `^[-+]?(\d+|\d*\.\d+)$`,
	OptionSymbolBackOffice: `^(?=.{5}\s\S)([A-Za-z]{1,5}\d? +\b)[0-9]{6}[CcPp][0-9]{8}$`,
	OptionSymbolDisplayable: `^[A-Za-z0-9 ]{1,6} [0-9]{1,5}\.[0-9]{2,3} [A-Za-z]{3} [0-9]{2} ((WK|Q){1}[0-9]{1} ){0,1}` +
		`(AJ{0,1}[0-9]{1} ){0,1}(NS{1} ){0,1}[CcPp]{1}$`,
	OptionSymbolBashwork: `^(?=.{6}\s\S)\.([A-Za-z]{1,5}\d? +\b)[0-9]{6}[CcPp][0-9]{8}$`,
	OrderID:              `^[a-z|A-Z][a-z|A-Z|0-9]{6}(19|20)[0-9]{2}(0[1-9]|1[012])(0[1-9]|[12][0-9]|3[01])$`,
	Password: `\A(?=.*?[A-Z])(?=.*?[a-z])(?=.*?[0-9])(?=.*?[\.\$\^\{\}\[\]\(\)\|\*\+\?\\;:,=@#%&!"' ])` +
		`[a-zA-Z0-9\.\$\^\{\}\[\]\(\)\|\*\+\?\\;:,=@#%&!"' ]{8,}\z`,
	PasswordBashworkAccountDefault: `^[A-Z]{1}[a-z]{0,3}[0-1]{1}[0-9]{1}[0-3]{1}[0-9]{1}[0-9]{4}$`,
	Phone: `^(?:(?:1(?:\.| |-|))?(?:\([2-9]\d{2}\)|[2-9]\d{2})(?:\.| |-|))?[2-9]\d{2}(?:\.| |-|)\d{4}` +
		`(?: ?[xX]\d{1,5})?$`,
	PhoneWithAreaCode: `^(?:1(?:\.| |-|))?(?:\([2-9]\d{2}\)|[2-9]\d{2})(?:\.| |-|)[2-9]\d{2}(?:\.| |-|)\d{4}` +
		`(?: ?[xX]\d{1,5})?$`,
	SpecialCharacters:       `[*~!@#$%^&*()|\\?/<>=+_]`,
	SSN:                     `^\d{3}(-\d{2}-|\d{2})\d{4}$`,
	TaxIdentificationNumber: `^\d{2}-?\d{7}$`,
	URL: `^https?://(([0-9]{1,3}\.){3}[0-9]{1,3}|([0-9a-z])+/?|([0-9a-z_!~*'()-]+\.)*([0-9a-z]` +
		`[0-9a-z-]{0,61})?[0-9a-z]\.[a-z]{2,6})(:[0-9]{1,4})?((/?)|(/[0-9a-zA-Z_!~*'().;?:@` +
		`&=+$,%#-]+)+/?)$`,
	ZipCode: `^(\d{5}-\d{4}|\d{5}|\d{9})$`,
}

var patternNames = map[PatternType]string{
	AccountNumber:                         "AccountNumber",
	AccountNumberBackOffice:               "AccountNumberBackOffice",
	Address:                               "Address",
	Alpha:                                 "Alpha",
	AlphaAndSpaces:                        "AlphaAndSpaces",
	AlphaAndDigits:                        "AlphaAndDigits",
	AlphaAndDigitsAndSpaces:               "AlphaAndDigitsAndSpaces",
	AlphaAndDigitsAndUnderscores:          "AlphaAndDigitsAndUnderscores",
	AlphaAndDigitsAndUnderscoresAndSpaces: "AlphaAndDigitsAndUnderscoresAndSpaces",
	AlphaAndDigitsAndSpacesAndSpecialCharacters: "AlphaAndDigitsAndSpacesAndSpecialCharacters",
	City:                           "City",
	Currency:                       "Currency",
	Date:                           "Date",
	Email:                          "Email",
	EquitySymbol:                   "EquitySymbol",
	EquitySymbolUSAndCanadian:      "EquitySymbolUSAndCanadian",
	FreeFormText:                   "FreeFormText",
	FreeFormLatinAndChineseText:    "FreeFormLatinAndChineseText",
	Integer:                        "Integer",
	IntegerUnsigned:                "IntegerUnsigned",
	IPAddressV4:                    "IPAddressV4",
	IPAddressV6:                    "IPAddressV6",
	Name:                           "Name",
	Number:                         "Number",
	OptionSymbolBackOffice:         "OptionSymbolBackOffice",
	OptionSymbolDisplayable:        "OptionSymbolDisplayable",
	OptionSymbolBashwork:           "OptionSymbolBashwork",
	OrderID:                        "OrderID",
	Password:                       "Password",
	PasswordBashworkAccountDefault: "PasswordBashworkAccountDefault",
	Phone:                          "Phone",
	PhoneWithAreaCode:              "PhoneWithAreaCode",
	SpecialCharacters:              "SpecialCharacters",
	SSN:                            "SSN",
	TaxIdentificationNumber:        "TaxIdentificationNumber",
	URL:                            "URL",
	ZipCode:                        "ZipCode",
}

// Compiled once at init; a broken table entry is a programming error.
var compiled = func() map[PatternType]*regexp2.Regexp {
	out := make(map[PatternType]*regexp2.Regexp, len(patterns))
	for pt, expr := range patterns {
		re := regexp2.MustCompile(expr, regexp2.None)
		re.MatchTimeout = matchTimeout
		out[pt] = re
	}
	return out
}()

var headTrailCapture = regexp2.MustCompile(`^[\^]?(?<expression>.+?)[\$]?$`, regexp2.ExplicitCapture)

func (pt PatternType) String() string {
	if name, ok := patternNames[pt]; ok {
		return name
	}
	return fmt.Sprintf("PatternType(%d)", int(pt))
}

// PatternTypes lists every entry of the pattern table in declaration order.
func PatternTypes() []PatternType {
	out := make([]PatternType, 0, len(patterns))
	for pt := AccountNumber; pt <= ZipCode; pt++ {
		out = append(out, pt)
	}
	return out
}

// Pattern returns the regular expression source for pt.
func Pattern(pt PatternType) (string, bool) {
	expr, ok := patterns[pt]
	return expr, ok
}

// ValidateInput reports whether input matches the pattern named by pt.
// An empty input is valid only when allowEmpty is set. Unknown pattern
// types never match.
func ValidateInput(input string, pt PatternType, allowEmpty bool) bool {
	if input == "" && allowEmpty {
		return true
	}
	re, ok := compiled[pt]
	if !ok {
		return false
	}
	matched, err := re.MatchString(input)
	return err == nil && matched
}

// AddHeadingTrailingSpace rewrites an anchored expression so it tolerates
// leading and trailing spaces. It returns an empty string for an empty expression.
func AddHeadingTrailingSpace(expr string) string {
	m, err := headTrailCapture.FindStringMatch(expr)
	if err != nil || m == nil {
		return ""
	}
	return fmt.Sprintf("^[ ]*%s[ ]*$", m.GroupByName("expression").String())
}

// CompilePattern compiles a custom expression with the same engine and
// limits as the pattern table.
func CompilePattern(expr string, ignoreCase bool) (*regexp2.Regexp, error) {
	opts := regexp2.None
	if ignoreCase {
		opts = regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	re.MatchTimeout = matchTimeout
	return re, nil
}
