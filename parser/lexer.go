package parser

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/ecadtools/idf30/ast"
	"github.com/ecadtools/idf30/reporter"
)

type byteReader struct {
	data []byte
	pos  int
	mark int
}

func (br *byteReader) readByte() (byte, bool) {
	if br.pos == len(br.data) {
		return 0, false
	}
	c := br.data[br.pos]
	br.pos++
	return c, true
}

func (br *byteReader) unreadByte() {
	if br.pos <= br.mark {
		panic("unread past mark")
	}
	br.pos--
}

func (br *byteReader) offset() int {
	return br.pos
}

func (br *byteReader) setMark() {
	br.mark = br.pos
}

func (br *byteReader) getMark() string {
	return string(br.data[br.mark:br.pos])
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNewline
	tokenSectionName
	tokenString
	tokenQuotedString
	tokenInteger
	tokenFloat
)

// token is one lexical token. text holds the token text: for section names
// it excludes the leading dot, for quoted strings it excludes the
// delimiters. offset is the byte offset of the token's first character.
type token struct {
	kind   tokenKind
	text   string
	ival   int64
	fval   float64
	offset int
}

type idfLex struct {
	input   *byteReader
	info    *ast.FileInfo
	handler *reporter.Handler
}

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

func newLexer(in io.Reader, filename string, handler *reporter.Handler) (*idfLex, error) {
	br := bufio.NewReader(in)

	// if file has UTF8 byte order marker preface, consume it
	marker, err := br.Peek(3)
	if err == nil && bytes.Equal(marker, utf8Bom) {
		_, _ = br.Discard(3)
	}

	contents, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	return &idfLex{
		input:   &byteReader{data: contents},
		info:    ast.NewFileInfo(filename, contents),
		handler: handler,
	}, nil
}

// next scans the next token, skipping space, tab, and comments first. A
// line break is a token, not whitespace: it terminates records and section
// header lines. When numAllowed is set (header string-only records), a
// token starting with a digit lexes as a bare string instead of a numeric
// literal.
func (l *idfLex) next(numAllowed bool) (token, error) {
	for {
		l.input.setMark()
		start := l.input.offset()
		c, ok := l.input.readByte()
		if !ok {
			return token{kind: tokenEOF, offset: start}, nil
		}
		switch {
		case c == ' ' || c == '\t':
			continue
		case c == '#':
			l.skipComment()
			continue
		case c == '\n':
			l.info.AddLine(l.input.offset())
			return token{kind: tokenNewline, offset: start}, nil
		case c == '\'' || c == '"':
			text, ok := l.readQuoted(c)
			if !ok {
				return token{}, l.errAt(start, "%w", ErrUnterminatedQuote)
			}
			return token{kind: tokenQuotedString, text: text, offset: start}, nil
		case c == '.':
			// a section name is a dot immediately followed by a
			// letter-first bare string
			cn, ok := l.input.readByte()
			if !ok || !isLetter(cn) {
				if ok {
					l.input.unreadByte()
				}
				return token{}, l.errAt(start, "%w %q", ErrUnexpectedCharacter, c)
			}
			l.readWord()
			return token{kind: tokenSectionName, text: l.input.getMark()[1:], offset: start}, nil
		case isLetter(c):
			l.readWord()
			return token{kind: tokenString, text: l.input.getMark(), offset: start}, nil
		case isDigit(c) || c == '-':
			l.readWord()
			word := l.input.getMark()
			if numAllowed && isDigit(c) {
				return token{kind: tokenString, text: word, offset: start}, nil
			}
			return l.numericToken(word, start)
		default:
			return token{}, l.errAt(start, "%w %q", ErrUnexpectedCharacter, c)
		}
	}
}

// numericToken classifies a sign- or digit-first word. An integer is an
// optional leading minus followed by a single 0 or a nonzero-first digit
// run; a float is an integer immediately followed by a dot and at least
// one digit. Digit-first words never fall back to the bare string class.
func (l *idfLex) numericToken(word string, start int) (token, error) {
	ipart, frac, hasFrac := strings.Cut(word, ".")
	if hasFrac && !isDigits(frac) {
		return token{}, l.errAt(start, "%w %q", ErrInvalidNumericLiteral, word)
	}
	if !isIntegerShape(strings.TrimPrefix(ipart, "-")) {
		return token{}, l.errAt(start, "%w %q", ErrInvalidNumericLiteral, word)
	}
	if hasFrac {
		f, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return token{}, l.errAt(start, "%w %q", ErrInvalidNumericLiteral, word)
		}
		return token{kind: tokenFloat, text: word, fval: f, offset: start}, nil
	}
	i, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		// out of range for int64
		return token{}, l.errAt(start, "%w %q", ErrInvalidNumericLiteral, word)
	}
	return token{kind: tokenInteger, text: word, ival: i, offset: start}, nil
}

// readQuoted consumes a quoted string after its opening delimiter. Any
// byte but the delimiter may appear inside, including line breaks; there
// are no escapes. Reports false if the input ends before the closing
// delimiter.
func (l *idfLex) readQuoted(quote byte) (string, bool) {
	start := l.input.offset()
	for {
		c, ok := l.input.readByte()
		if !ok {
			return "", false
		}
		if c == quote {
			return string(l.input.data[start : l.input.offset()-1]), true
		}
		if c == '\n' {
			l.info.AddLine(l.input.offset())
		}
	}
}

// skipComment consumes a comment through its terminating line break (or
// end of input). The whole comment, newline included, counts as
// whitespace.
func (l *idfLex) skipComment() {
	for {
		c, ok := l.input.readByte()
		if !ok {
			return
		}
		if c == '\n' {
			l.info.AddLine(l.input.offset())
			return
		}
	}
}

func (l *idfLex) readWord() {
	for {
		c, ok := l.input.readByte()
		if !ok {
			return
		}
		if !isWordByte(c) {
			l.input.unreadByte()
			return
		}
	}
}

func (l *idfLex) errAt(offset int, format string, args ...any) error {
	ewp := reporter.Errorf(l.info.SourcePos(offset), format, args...)
	return l.handler.HandleError(ewp)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWordByte reports whether c may appear in the body of a bare string.
func isWordByte(c byte) bool {
	switch c {
	case '_', '.', '/', ':', '?', '-':
		return true
	}
	return isLetter(c) || isDigit(c)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isIntegerShape(s string) bool {
	if s == "0" {
		return true
	}
	if s == "" || s[0] == '0' {
		return false
	}
	return isDigits(s)
}
