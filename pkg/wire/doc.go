// Package wire implements the binary wire format of the Internet
// Printing Protocol (RFC 8010): a length-prefixed, tag-delimited
// encoding of named attributes grouped into sections and terminated by
// an end marker.
//
// # Document model
//
// An Attribute is one name/value pair; an AttributeList stores
// attributes grouped by delimiter tag and serializes them in the exact
// order the protocol requires. Three distinguished operation attributes
// (attributes-charset, attributes-natural-language, printer-uri) always
// lead the stream, in that fixed order.
//
// # Values
//
// Value is a closed tagged union: integers, booleans, the various
// string kinds, dates, resolutions, ranges, multi-valued arrays, and
// nested collections. The value tag alone determines the wire shape in
// both directions.
//
// # Decoding
//
// Parser consumes a byte stream tag by tag with no lookahead,
// reconstructing attribute boundaries, array continuations, and
// collection nesting from tag values alone. Encode and decode are
// synchronous and single-threaded; concurrent callers need independent
// instances.
package wire
