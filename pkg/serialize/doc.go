// Package serialize converts values to and from XML, JSON and YAML text.
//
// Every format has the same pair of functions: To<Format> renders a value and
// From<Format> parses into a type parameter. XML additionally supports file
// round-trips, pretty printing and escaping for display inside HTML.
//
//	s, err := serialize.ToJSON(order, serialize.WithIndent("  "))
//	order, err := serialize.FromJSON[Order](s)
//
//	err := serialize.ToXMLFile("order.xml", order)
//	order, err := serialize.FromXMLFile[Order]("order.xml")
//
//	pretty, err := serialize.PrettyXML(`<a><b>x</b></a>`)
//	// <a>
//	//     <b>x</b>
//	// </a>
//
// Errors wrap ErrMarshal, ErrUnmarshal or ErrFile so callers can tell
// encoding problems from I/O problems with errors.Is.
package serialize
