package serialize

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"
)

// DefaultXMLIndent is the indentation used by PrettyXML and ToXMLFile.
const DefaultXMLIndent = "    "

// ToXML renders v as XML.
func ToXML(v any, opts ...Option) (string, error) {
	o := newOptions(opts)

	var buf strings.Builder
	if o.header {
		buf.WriteString(xml.Header)
	}

	enc := xml.NewEncoder(&buf)
	if o.indent != "" {
		enc.Indent(o.prefix, o.indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", errors.Join(ErrMarshal, err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.Join(ErrMarshal, err)
	}
	return buf.String(), nil
}

// FromXML parses s into a new T.
func FromXML[T any](s string) (T, error) {
	return DecodeXML[T](strings.NewReader(s))
}

// DecodeXML parses the XML document read from r into a new T.
func DecodeXML[T any](r io.Reader) (T, error) {
	var out T
	if err := xml.NewDecoder(r).Decode(&out); err != nil {
		var zero T
		if errors.Is(err, io.EOF) {
			return zero, ErrEmptyInput
		}
		return zero, errors.Join(ErrUnmarshal, err)
	}
	return out, nil
}

// ToXMLFile writes v to path as indented XML with a declaration header.
func ToXMLFile(path string, v any) error {
	s, err := ToXML(v, WithXMLHeader(), WithIndent(DefaultXMLIndent))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s+"\n"), 0o644); err != nil {
		return errors.Join(ErrFile, err)
	}
	return nil
}

// FromXMLFile reads path and parses it into a new T.
func FromXMLFile[T any](path string) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Join(ErrFile, err)
	}
	defer f.Close()

	return DecodeXML[T](f)
}

// PrettyXML re-indents an XML document by four spaces per level.
// The <?xml ...?> declaration and whitespace-only text between elements are
// dropped. Namespace prefixes are kept as written.
func PrettyXML(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrEmptyInput
	}

	dec := xml.NewDecoder(strings.NewReader(s))
	var buf strings.Builder
	enc := xml.NewEncoder(&buf)
	enc.Indent("", DefaultXMLIndent)

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", errors.Join(ErrInvalidXML, err)
		}

		switch t := tok.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				continue
			}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
		case xml.StartElement:
			tok = flattenStart(t)
		case xml.EndElement:
			tok = xml.EndElement{Name: flattenName(t.Name)}
		}

		if err := enc.EncodeToken(xml.CopyToken(tok)); err != nil {
			return "", errors.Join(ErrInvalidXML, err)
		}
	}

	if err := enc.Close(); err != nil {
		return "", errors.Join(ErrInvalidXML, err)
	}
	return buf.String(), nil
}

var webSafeReplacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	" ", "&nbsp;",
	"\r\n", "<BR>",
	"\n", "<BR>",
)

// WebSafeXML escapes markup so an XML document can be shown verbatim in an
// HTML page. Line breaks become <BR> tags.
func WebSafeXML(s string) string {
	return webSafeReplacer.Replace(s)
}

// RawToken keeps prefixes in Name.Space. The encoder would treat them as
// namespace URLs, so they are folded back into the local name.
func flattenName(n xml.Name) xml.Name {
	if n.Space == "" {
		return n
	}
	return xml.Name{Local: n.Space + ":" + n.Local}
}

func flattenStart(t xml.StartElement) xml.StartElement {
	out := xml.StartElement{Name: flattenName(t.Name)}
	if len(t.Attr) > 0 {
		out.Attr = make([]xml.Attr, len(t.Attr))
		for i, a := range t.Attr {
			out.Attr[i] = xml.Attr{Name: flattenName(a.Name), Value: a.Value}
		}
	}
	return out
}
