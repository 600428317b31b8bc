package ast

// Record is one line's worth of values inside a section, in source order.
// The grammar guarantees a parsed record is never empty.
type Record []Value

// HeaderSection is the mandatory first section of a document. Its records
// carry only String and QuotedString values; bare strings in a header
// record may additionally start with a digit (version numbers, dates).
type HeaderSection struct {
	// Name is the section name without its leading dot, e.g. "HEADER".
	// The closing marker is guaranteed to have had the same text.
	Name string
	// Args are the free-form bare-string tokens that followed the name on
	// the opening line, if any.
	Args []string
	// Records holds at least one record; a header section with none is a
	// parse error.
	Records []Record
}

// Section is a named data section. A section with zero records is legal.
type Section struct {
	Name    string
	Args    []string
	Records []Record
}

// Document is the root of the model: the header section followed by the
// data sections in source order. A parsed document always has at least one
// data section.
type Document struct {
	Header   HeaderSection
	Sections []Section
}
