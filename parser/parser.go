package parser

import (
	"io"
	"strings"

	"github.com/ecadtools/idf30/ast"
	"github.com/ecadtools/idf30/reporter"
)

// Parse reads a board file from r and parses it into a document. The
// filename is used only in diagnostic positions. A parse either succeeds
// completely or aborts on the first error; there is no partial result.
// The returned error, when non-nil, is a reporter.ErrorWithPos wrapping
// one of the sentinel errors in this package (or a
// *SectionNameMismatchError), so errors.Is and errors.As classify it.
func Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.Document, error) {
	lx, err := newLexer(r, filename, handler)
	if err != nil {
		return nil, err
	}
	p := &idfParser{lex: lx}
	return p.parseDocument()
}

// ParseString parses text directly: the pure text-in, document-or-error-out
// form of Parse.
func ParseString(filename, text string) (*ast.Document, error) {
	return Parse(filename, strings.NewReader(text), reporter.NewHandler(nil))
}

// idfParser is a recursive-descent parser over the token stream, one parse
// procedure per grammar rule, with a single token of lookahead.
type idfParser struct {
	lex    *idfLex
	peeked *token
}

func (p *idfParser) next(numAllowed bool) (token, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, nil
	}
	return p.lex.next(numAllowed)
}

// unread pushes tok back so the next call to next returns it again.
func (p *idfParser) unread(tok token) {
	p.peeked = &tok
}

func (p *idfParser) errAt(tok token, err error) error {
	return p.lex.errAt(tok.offset, "%w", err)
}

// parseDocument parses exactly one header section followed by one or more
// data sections, consuming the entire input.
func (p *idfParser) parseDocument() (*ast.Document, error) {
	header, err := p.parseHeaderSection()
	if err != nil {
		return nil, err
	}
	var sections []ast.Section
	for {
		tok, err := p.next(false)
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			if len(sections) == 0 {
				return nil, p.errAt(tok, ErrNoDataSections)
			}
			return &ast.Document{Header: *header, Sections: sections}, nil
		}
		if tok.kind != tokenSectionName {
			if len(sections) == 0 {
				return nil, p.errAt(tok, ErrNoDataSections)
			}
			return nil, p.errAt(tok, ErrTrailingContent)
		}
		section, err := p.parseSection(tok)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
}

// parseSectionHeader parses the remainder of a section's opening line
// after its name: zero or more bare-string attribute tokens, then a line
// break.
func (p *idfParser) parseSectionHeader(open token) (name string, args []string, err error) {
	name = open.text
	for {
		tok, err := p.next(false)
		if err != nil {
			return "", nil, err
		}
		switch tok.kind {
		case tokenNewline:
			return name, args, nil
		case tokenString:
			args = append(args, tok.text)
		default:
			return "", nil, p.errAt(tok, ErrMalformedSectionHeader)
		}
	}
}

// parseHeaderSection parses the mandatory first section: its opening
// line, one or more string-only records, and a closing marker whose name
// must equal the opening name. Unlike data sections, the closing marker
// must be followed by a line break; end of input is not enough.
func (p *idfParser) parseHeaderSection() (*ast.HeaderSection, error) {
	open, err := p.next(false)
	if err != nil {
		return nil, err
	}
	if open.kind != tokenSectionName {
		return nil, p.errAt(open, ErrMissingHeaderSection)
	}
	name, args, err := p.parseSectionHeader(open)
	if err != nil {
		return nil, err
	}
	var records []ast.Record
	for {
		tok, err := p.next(true)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenSectionName:
			if len(records) == 0 {
				return nil, p.errAt(tok, ErrEmptyHeaderSection)
			}
			if tok.text != name {
				return nil, p.errAt(tok, &SectionNameMismatchError{Expected: name, Found: tok.text})
			}
			end, err := p.next(false)
			if err != nil {
				return nil, err
			}
			if end.kind == tokenEOF {
				return nil, p.errAt(end, ErrUnterminatedHeaderSection)
			}
			if end.kind != tokenNewline {
				return nil, p.errAt(end, ErrMalformedSectionHeader)
			}
			return &ast.HeaderSection{Name: name, Args: args, Records: records}, nil
		case tokenEOF:
			return nil, p.errAt(tok, ErrUnterminatedHeaderSection)
		case tokenNewline:
			return nil, p.errAt(tok, ErrEmptyRecord)
		default:
			p.unread(tok)
			record, err := p.parseStringOnlyRecord()
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}
}

// parseSection parses a data section after its opening name token. Zero
// records is legal. The closing marker may be followed by a line break or
// by end of input.
func (p *idfParser) parseSection(open token) (ast.Section, error) {
	name, args, err := p.parseSectionHeader(open)
	if err != nil {
		return ast.Section{}, err
	}
	var records []ast.Record
	for {
		tok, err := p.next(false)
		if err != nil {
			return ast.Section{}, err
		}
		switch tok.kind {
		case tokenSectionName:
			if tok.text != name {
				return ast.Section{}, p.errAt(tok, &SectionNameMismatchError{Expected: name, Found: tok.text})
			}
			end, err := p.next(false)
			if err != nil {
				return ast.Section{}, err
			}
			if end.kind != tokenNewline && end.kind != tokenEOF {
				return ast.Section{}, p.errAt(end, ErrMalformedSectionHeader)
			}
			if end.kind == tokenEOF {
				// leave the EOF for parseDocument to observe
				p.unread(end)
			}
			return ast.Section{Name: name, Args: args, Records: records}, nil
		case tokenEOF:
			return ast.Section{}, p.errAt(tok, ErrUnterminatedSection)
		case tokenNewline:
			return ast.Section{}, p.errAt(tok, ErrEmptyRecord)
		default:
			p.unread(tok)
			record, err := p.parseRecord()
			if err != nil {
				return ast.Section{}, err
			}
			records = append(records, record)
		}
	}
}

// parseRecord parses one data record: one or more values terminated by a
// line break. The caller has already established that the first token is
// a value, so a parsed record is never empty.
func (p *idfParser) parseRecord() (ast.Record, error) {
	var record ast.Record
	for {
		tok, err := p.next(false)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenInteger:
			record = append(record, ast.Integer{Val: tok.ival})
		case tokenFloat:
			record = append(record, ast.Float{Val: tok.fval})
		case tokenString:
			record = append(record, ast.String{Val: tok.text})
		case tokenQuotedString:
			record = append(record, ast.QuotedString{Val: tok.text})
		case tokenNewline:
			return record, nil
		case tokenEOF:
			return nil, p.errAt(tok, ErrUnterminatedRecord)
		default:
			// a section marker cannot appear mid-record
			return nil, p.errAt(tok, ErrUnexpectedCharacter)
		}
	}
}

// parseStringOnlyRecord parses one header record: one or more bare or
// quoted strings terminated by a line break. Bare strings here may start
// with a digit (versions, dates); numeric values are not permitted.
func (p *idfParser) parseStringOnlyRecord() (ast.Record, error) {
	var record ast.Record
	for {
		tok, err := p.next(true)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenString:
			record = append(record, ast.String{Val: tok.text})
		case tokenQuotedString:
			record = append(record, ast.QuotedString{Val: tok.text})
		case tokenNewline:
			return record, nil
		case tokenEOF:
			return nil, p.errAt(tok, ErrUnterminatedRecord)
		default:
			return nil, p.errAt(tok, ErrUnexpectedCharacter)
		}
	}
}
