package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/validator"
)

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern validator.PatternType
		valid   []string
		invalid []string
	}{
		{validator.AccountNumber, []string{"12345678"}, []string{"1234567", "1234567a", "123456789"}},
		{validator.AccountNumberBackOffice, []string{"1234567890"}, []string{"12345678"}},
		{validator.Address, []string{"123 Main St. Apt #4", "12 O'Hara Rd, Suite 5/B"}, []string{"123 Main St; DROP"}},
		{validator.Alpha, []string{"abcXYZ"}, []string{"abc1", "ab c"}},
		{validator.AlphaAndSpaces, []string{"hello world"}, []string{"hello_world"}},
		{validator.AlphaAndDigits, []string{"abc123"}, []string{"abc 123"}},
		{validator.AlphaAndDigitsAndSpaces, []string{"abc 123"}, []string{"abc-123"}},
		{validator.AlphaAndDigitsAndUnderscores, []string{"abc_123"}, []string{"abc 123"}},
		{validator.AlphaAndDigitsAndUnderscoresAndSpaces, []string{"abc _123"}, []string{"abc-1"}},
		{validator.AlphaAndDigitsAndSpacesAndSpecialCharacters, []string{"abc 1*~!@#"}, []string{"abc.def"}},
		{validator.City, []string{"St. Louis", "Winston-Salem"}, []string{"Boston1"}},
		{validator.Currency, []string{"$1,234.56", "-$0.99", "12.00"}, []string{"1234.5", "01.00", "$1,23"}},
		{validator.Date, []string{"12/31/2020", "02/29/2020", "1-15-99", "4.30.2021"}, []string{"02/29/2021", "13/01/2020", "04/31/2020"}},
		{validator.Email, []string{"john.doe@example.com", "a_b-c@mail.example.org"}, []string{"john@", "john.example.com"}},
		{validator.EquitySymbol, []string{"MSFT", "f"}, []string{"GOOGLE", "MS1"}},
		{validator.EquitySymbolUSAndCanadian, []string{"BRK/B", "RY.CA", ".IBM", "BF/AA"}, []string{"ABC/C", "TOOLONG"}},
		{validator.FreeFormText, []string{`Hello, world! "quoted" (ok)`, "line one\r\nline two"}, []string{"tab\there", "{braces}"}},
		{validator.FreeFormLatinAndChineseText, []string{"Hello 世界", "tab\tok"}, []string{"Привет"}},
		{validator.Integer, []string{"-42", "7"}, []string{"4.2", "+1"}},
		{validator.IntegerUnsigned, []string{"42"}, []string{"-42"}},
		{validator.IPAddressV4, []string{"192.168.0.1", "8.8.8.8"}, []string{"256.1.1.1", "1.2.3"}},
		{
			validator.IPAddressV6,
			[]string{"2001:0db8:85a3:0000:0000:8a2e:0370:7334", "::1", "fe80::1%eth0", "::ffff:192.168.0.1"},
			[]string{"2001:db8::g", "192.168.0.1", "1:2:3"},
		},
		{validator.Name, []string{"O'Brien-Smith, Jr."}, []string{"John3"}},
		{validator.Number, []string{"+3.14", ".5", "-10"}, []string{"1.", "1e5"}},
		{validator.OptionSymbolBackOffice, []string{"IBM   080119C00125000"}, []string{"IBM 080119C00125000"}},
		{validator.OptionSymbolDisplayable, []string{"IBM 125.00 JAN 08 C"}, []string{"IBM 125 JAN 08 C"}},
		{validator.OptionSymbolBashwork, []string{".IBM   080119C00125000"}, []string{"IBM   080119C00125000"}},
		{validator.OrderID, []string{"A12345620240115"}, []string{"A1234520240115", "A12345620241315"}},
		{validator.Password, []string{"Passw0rd!", "Str0ng Pass"}, []string{"password", "Password1", "Pa0!"}},
		{validator.PasswordBashworkAccountDefault, []string{"Smit01151980", "J01151980"}, []string{"smit01151980"}},
		{validator.Phone, []string{"555-234-5678", "2345678", "(555) 234-5678 x123", "1.555.234.5678"}, []string{"123-4567"}},
		{validator.PhoneWithAreaCode, []string{"(555) 234-5678", "5552345678"}, []string{"234-5678"}},
		{validator.SpecialCharacters, []string{"abc!", "a_b"}, []string{"abc"}},
		{validator.SSN, []string{"123-45-6789", "123456789"}, []string{"123-456789", "12-345-6789"}},
		{validator.TaxIdentificationNumber, []string{"12-3456789", "123456789"}, []string{"1-23456789"}},
		{validator.URL, []string{"http://www.example.com", "https://example.com/path?q=1", "http://10.0.0.1:8080/"}, []string{"ftp://example.com", "example.com"}},
		{validator.ZipCode, []string{"12345", "12345-6789", "123456789"}, []string{"1234", "12345-678"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			t.Parallel()
			for _, v := range tt.valid {
				assert.True(t, validator.ValidateInput(v, tt.pattern, false), "expected %q to be valid", v)
			}
			for _, v := range tt.invalid {
				assert.False(t, validator.ValidateInput(v, tt.pattern, false), "expected %q to be invalid", v)
			}
		})
	}
}

func TestValidateInput_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidateInput("", validator.Alpha, true))
	assert.False(t, validator.ValidateInput("", validator.Alpha, false))
	assert.False(t, validator.ValidateInput("abc", validator.PatternType(-1), false))
	assert.True(t, validator.ValidateInput("", validator.PatternType(-1), true))
}

func TestPatternTable(t *testing.T) {
	t.Parallel()

	types := validator.PatternTypes()
	require.Len(t, types, 37)

	for _, pt := range types {
		expr, ok := validator.Pattern(pt)
		assert.True(t, ok, pt.String())
		assert.NotEmpty(t, expr)
		assert.False(t, strings.HasPrefix(pt.String(), "PatternType("))
	}

	_, ok := validator.Pattern(validator.PatternType(100))
	assert.False(t, ok)
	assert.Equal(t, "PatternType(100)", validator.PatternType(100).String())
}

func TestAddHeadingTrailingSpace(t *testing.T) {
	t.Parallel()

	t.Run("wraps anchored expression", func(t *testing.T) {
		t.Parallel()
		expr, _ := validator.Pattern(validator.AccountNumber)
		padded := validator.AddHeadingTrailingSpace(expr)
		assert.Equal(t, "^[ ]*[0-9]{8}[ ]*$", padded)

		re, err := validator.CompilePattern(padded, false)
		require.NoError(t, err)
		ok, err := re.MatchString("  12345678 ")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wraps unanchored expression", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "^[ ]*[a-z]+[ ]*$", validator.AddHeadingTrailingSpace("[a-z]+"))
	})

	t.Run("empty expression", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, validator.AddHeadingTrailingSpace(""))
	})
}

func TestCompilePattern(t *testing.T) {
	t.Parallel()

	re, err := validator.CompilePattern(`^abc$`, true)
	require.NoError(t, err)
	ok, err := re.MatchString("ABC")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = validator.CompilePattern(`([`, false)
	assert.ErrorIs(t, err, validator.ErrInvalidPattern)
}
