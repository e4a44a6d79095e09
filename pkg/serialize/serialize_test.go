package serialize_test

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/serialize"
)

type order struct {
	XMLName  xml.Name `xml:"order" json:"-" yaml:"-"`
	ID       int      `xml:"id,attr" json:"id" yaml:"id"`
	Customer string   `xml:"customer" json:"customer" yaml:"customer"`
	Items    []string `xml:"items>item" json:"items" yaml:"items"`
}

func sampleOrder() order {
	return order{
		XMLName:  xml.Name{Local: "order"},
		ID:       7,
		Customer: "Ann",
		Items:    []string{"a", "b"},
	}
}

func TestXML(t *testing.T) {
	t.Parallel()

	t.Run("compact", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToXML(sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, `<order id="7"><customer>Ann</customer><items><item>a</item><item>b</item></items></order>`, s)
	})

	t.Run("indented with header", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToXML(sampleOrder(), serialize.WithXMLHeader(), serialize.WithIndent("  "))
		require.NoError(t, err)

		expected := xml.Header + strings.Join([]string{
			`<order id="7">`,
			`  <customer>Ann</customer>`,
			`  <items>`,
			`    <item>a</item>`,
			`    <item>b</item>`,
			`  </items>`,
			`</order>`,
		}, "\n")
		assert.Equal(t, expected, s)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToXML(sampleOrder(), serialize.WithIndent("\t"))
		require.NoError(t, err)

		got, err := serialize.FromXML[order](s)
		require.NoError(t, err)
		assert.Equal(t, sampleOrder(), got)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, err := serialize.FromXML[order]("")
		assert.ErrorIs(t, err, serialize.ErrEmptyInput)

		_, err = serialize.FromXML[order]("<order")
		assert.ErrorIs(t, err, serialize.ErrUnmarshal)

		_, err = serialize.ToXML(map[string]string{"a": "b"})
		assert.ErrorIs(t, err, serialize.ErrMarshal)
	})
}

func TestXMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "order.xml")
	require.NoError(t, serialize.ToXMLFile(path, sampleOrder()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), xml.Header+`<order id="7">`+"\n    <customer>"))

	got, err := serialize.FromXMLFile[order](path)
	require.NoError(t, err)
	assert.Equal(t, sampleOrder(), got)

	_, err = serialize.FromXMLFile[order](filepath.Join(t.TempDir(), "missing.xml"))
	assert.ErrorIs(t, err, serialize.ErrFile)

	err = serialize.ToXMLFile(filepath.Join(t.TempDir(), "no", "such", "dir.xml"), sampleOrder())
	assert.ErrorIs(t, err, serialize.ErrFile)
}

func TestPrettyXML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips declaration and indents",
			input:    `<?xml version="1.0" encoding="utf-8"?><a><b>x</b><c/></a>`,
			expected: "<a>\n    <b>x</b>\n    <c></c>\n</a>",
		},
		{
			name:     "normalizes existing whitespace",
			input:    "<a>\n\t\t<b>x</b>\n</a>\n",
			expected: "<a>\n    <b>x</b>\n</a>",
		},
		{
			name:     "keeps attributes and entities",
			input:    `<a id="1"><b>x &amp; y</b></a>`,
			expected: "<a id=\"1\">\n    <b>x &amp; y</b>\n</a>",
		},
		{
			name:     "keeps namespace prefixes",
			input:    `<x:root xmlns:x="urn:x"><x:item>1</x:item></x:root>`,
			expected: "<x:root xmlns:x=\"urn:x\">\n    <x:item>1</x:item>\n</x:root>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := serialize.PrettyXML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPrettyXML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := serialize.PrettyXML("   ")
	assert.ErrorIs(t, err, serialize.ErrEmptyInput)

	for _, input := range []string{"<a><b></a>", "<a>", "<a"} {
		_, err := serialize.PrettyXML(input)
		assert.ErrorIs(t, err, serialize.ErrInvalidXML, input)
	}
}

func TestWebSafeXML(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`&lt;a&nbsp;id=&quot;1&quot;&gt;<BR>x<BR>&lt;/a&gt;`,
		serialize.WebSafeXML("<a id=\"1\">\r\nx\n</a>"),
	)
	assert.Empty(t, serialize.WebSafeXML(""))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("compact", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToJSON(sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, `{"id":7,"customer":"Ann","items":["a","b"]}`, s)
	})

	t.Run("indented", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToJSON(map[string]int{"a": 1}, serialize.WithIndent("  "))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": 1\n}", s)
	})

	t.Run("does not escape html", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToJSON("<b>&</b>")
		require.NoError(t, err)
		assert.Equal(t, `"<b>&</b>"`, s)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToJSON(sampleOrder())
		require.NoError(t, err)

		got, err := serialize.FromJSON[order](s)
		require.NoError(t, err)

		want := sampleOrder()
		want.XMLName = xml.Name{}
		assert.Equal(t, want, got)
	})

	t.Run("strict fields", func(t *testing.T) {
		t.Parallel()
		input := `{"id":1,"extra":true}`

		got, err := serialize.FromJSON[order](input)
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID)

		_, err = serialize.FromJSON[order](input, serialize.WithStrictFields())
		assert.ErrorIs(t, err, serialize.ErrUnmarshal)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, err := serialize.FromJSON[order](" ")
		assert.ErrorIs(t, err, serialize.ErrEmptyInput)

		_, err = serialize.FromJSON[order]("{")
		assert.ErrorIs(t, err, serialize.ErrUnmarshal)

		_, err = serialize.ToJSON(make(chan int))
		assert.ErrorIs(t, err, serialize.ErrMarshal)
	})
}

func TestYAML(t *testing.T) {
	t.Parallel()

	t.Run("sorted map keys", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToYAML(map[string]int{"b": 2, "a": 1})
		require.NoError(t, err)
		assert.Equal(t, "a: 1\nb: 2\n", s)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		s, err := serialize.ToYAML(sampleOrder(), serialize.WithIndent("  "))
		require.NoError(t, err)
		assert.Contains(t, s, "customer: Ann\n")

		got, err := serialize.FromYAML[order](s)
		require.NoError(t, err)

		want := sampleOrder()
		want.XMLName = xml.Name{}
		assert.Equal(t, want, got)
	})

	t.Run("strict fields", func(t *testing.T) {
		t.Parallel()
		_, err := serialize.FromYAML[order]("id: 1\nunknown: x\n")
		require.NoError(t, err)

		_, err = serialize.FromYAML[order]("id: 1\nunknown: x\n", serialize.WithStrictFields())
		assert.ErrorIs(t, err, serialize.ErrUnmarshal)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, err := serialize.FromYAML[order]("")
		assert.ErrorIs(t, err, serialize.ErrEmptyInput)

		_, err = serialize.FromYAML[order]("id: [unterminated")
		assert.ErrorIs(t, err, serialize.ErrUnmarshal)
	})
}
