package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for every way a board file can fail to parse. The error
// returned from Parse wraps one of these (plus a source position), so
// callers can classify failures with errors.Is.
var (
	// ErrUnexpectedCharacter means no lexical class matches the input at
	// the current position.
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrUnterminatedQuote means a quote was opened but no matching
	// closing quote of the same kind appeared before end of input.
	ErrUnterminatedQuote = errors.New("unterminated quoted string")
	// ErrInvalidNumericLiteral means a token starting with a sign or digit
	// fits neither the integer nor the float shape.
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")
	// ErrMissingHeaderSection means the file does not begin with a valid
	// section header (this includes an empty file).
	ErrMissingHeaderSection = errors.New("missing header section")
	// ErrEmptyHeaderSection means the header section contains no records.
	ErrEmptyHeaderSection = errors.New("header section has no records")
	// ErrNoDataSections means no data sections follow the header.
	ErrNoDataSections = errors.New("no data sections after header")
	// ErrMalformedSectionHeader means a section name line is missing its
	// name or never reaches a line break.
	ErrMalformedSectionHeader = errors.New("malformed section header")
	// ErrUnterminatedHeaderSection means end of input arrived before the
	// header section's closing marker line was complete.
	ErrUnterminatedHeaderSection = errors.New("unterminated header section")
	// ErrUnterminatedSection means end of input arrived inside a data
	// section, before its closing name.
	ErrUnterminatedSection = errors.New("unterminated section")
	// ErrEmptyRecord means a record line starts with a line break, i.e. a
	// blank line appeared where a record was required to have values.
	ErrEmptyRecord = errors.New("empty record")
	// ErrUnterminatedRecord means end of input arrived before the line
	// break terminating a record.
	ErrUnterminatedRecord = errors.New("unterminated record")
	// ErrTrailingContent means input remained after the last section
	// closed.
	ErrTrailingContent = errors.New("trailing content after last section")
)

// SectionNameMismatchError reports a section whose closing name does not
// textually equal its opening name. Retrieve it with errors.As.
type SectionNameMismatchError struct {
	Expected, Found string
}

func (e *SectionNameMismatchError) Error() string {
	return fmt.Sprintf("section name mismatch: expected %q, found %q", e.Expected, e.Found)
}
