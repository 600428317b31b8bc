// Package ast defines the document model produced by parsing an IDF-3.0
// style board exchange file, along with the source position machinery used
// to report diagnostics.
//
// The model is purely structural: a document is a header section followed
// by one or more named data sections, and a section is an ordered list of
// records whose values are integers, floats, bare strings, or quoted
// strings. No semantic meaning (board outlines, placement, units) is
// attached to any of it; that is the concern of downstream interpreters.
//
// Values in this package are plain read-only data. Once a Document is
// returned by the parser it is never mutated, so documents may be shared
// freely across goroutines.
package ast
