// Package parser contains the logic for parsing IDF-3.0 style board
// exchange files into a document tree.
//
// The format is line oriented and section structured: a mandatory header
// section followed by one or more named data sections, each opened and
// closed by a matching dot-prefixed name marker and carrying one record
// per line. The parser is purely syntactic. It enforces the grammar's
// structural invariants (matching open/close names, non-empty header,
// at least one data section, no trailing content) but attaches no meaning
// to any section's records; interpreting them as board outlines or
// component placement is a downstream concern.
//
// Parsing is a pure function of the input text: no I/O beyond draining
// the supplied reader, no shared state, and independent parses may run
// concurrently. It aborts on the first grammar violation with a
// position-tagged error and never returns a partial document.
package parser
