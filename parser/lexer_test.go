package parser

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecadtools/idf30/reporter"
)

func TestLexer(t *testing.T) {
	l := newTestLexer(t, strings.NewReader(
		".HEADER ECAD\n"+
			"boardfile 3.0 '2024-01-01'\t\"x y\"\n"+
			"# comment line\n"+
			"-12 0 10.5 -0.25 W/H:2?\n"))

	expected := []struct {
		kind       tokenKind
		numAllowed bool
		text       string
		ival       int64
		fval       float64
		line, col  int
	}{
		{kind: tokenSectionName, text: "HEADER", line: 1, col: 1},
		{kind: tokenString, text: "ECAD", line: 1, col: 9},
		{kind: tokenNewline, line: 1, col: 13},
		{kind: tokenString, numAllowed: true, text: "boardfile", line: 2, col: 1},
		// in a header record a digit-first token is a bare string
		{kind: tokenString, numAllowed: true, text: "3.0", line: 2, col: 11},
		{kind: tokenQuotedString, numAllowed: true, text: "2024-01-01", line: 2, col: 15},
		// the tab before this token snaps the column to a tab stop
		{kind: tokenQuotedString, numAllowed: true, text: "x y", line: 2, col: 33},
		{kind: tokenNewline, line: 2, col: 38},
		// the comment line never surfaces as tokens
		{kind: tokenInteger, text: "-12", ival: -12, line: 4, col: 1},
		{kind: tokenInteger, text: "0", ival: 0, line: 4, col: 5},
		{kind: tokenFloat, text: "10.5", fval: 10.5, line: 4, col: 7},
		{kind: tokenFloat, text: "-0.25", fval: -0.25, line: 4, col: 12},
		{kind: tokenString, text: "W/H:2?", line: 4, col: 18},
		{kind: tokenNewline, line: 4, col: 24},
	}

	for i, exp := range expected {
		tok, err := l.next(exp.numAllowed)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, exp.kind, tok.kind, "case %d: wrong token kind", i)
		assert.Equal(t, exp.text, tok.text, "case %d: wrong token text", i)
		assert.Equal(t, exp.ival, tok.ival, "case %d: wrong integer value", i)
		assert.Equal(t, exp.fval, tok.fval, "case %d: wrong float value", i)
		pos := l.info.SourcePos(tok.offset)
		assert.Equal(t, exp.line, pos.Line, "case %d: wrong line number", i)
		assert.Equal(t, exp.col, pos.Col, "case %d: wrong column number", i)
	}
	tok, err := l.next(false)
	require.NoError(t, err)
	assert.Equal(t, tokenEOF, tok.kind, "lexer should report EOF after last token")
}

func TestLexerNumericShapes(t *testing.T) {
	testCases := []struct {
		str  string
		kind tokenKind
		ival int64
		fval float64
	}{
		{str: "0", kind: tokenInteger, ival: 0},
		{str: "-0", kind: tokenInteger, ival: 0},
		{str: "42", kind: tokenInteger, ival: 42},
		{str: "-7", kind: tokenInteger, ival: -7},
		{str: "0.0", kind: tokenFloat, fval: 0},
		{str: "20.25", kind: tokenFloat, fval: 20.25},
		{str: "-0.5", kind: tokenFloat, fval: -0.5},
	}
	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			l := newTestLexer(t, strings.NewReader(tc.str))
			tok, err := l.next(false)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, tok.kind)
			assert.Equal(t, tc.ival, tok.ival)
			assert.Equal(t, tc.fval, tok.fval)
		})
	}
}

func TestLexerErrors(t *testing.T) {
	testCases := []struct {
		str  string
		want error
	}{
		{str: "^", want: ErrUnexpectedCharacter},
		{str: "\r\n", want: ErrUnexpectedCharacter},
		{str: ".5", want: ErrUnexpectedCharacter},
		{str: ". HEADER", want: ErrUnexpectedCharacter},
		{str: "'no closing quote", want: ErrUnterminatedQuote},
		{str: "\"mismatched'", want: ErrUnterminatedQuote},
		{str: "007", want: ErrInvalidNumericLiteral},
		{str: "3.", want: ErrInvalidNumericLiteral},
		{str: "1.2.3", want: ErrInvalidNumericLiteral},
		{str: "--1", want: ErrInvalidNumericLiteral},
		{str: "-", want: ErrInvalidNumericLiteral},
		{str: "12ab", want: ErrInvalidNumericLiteral},
		{str: "1:30", want: ErrInvalidNumericLiteral},
		{str: "9999999999999999999999", want: ErrInvalidNumericLiteral},
	}
	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			l := newTestLexer(t, strings.NewReader(tc.str))
			_, err := l.next(false)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			var ewp reporter.ErrorWithPos
			require.ErrorAs(t, err, &ewp)
			assert.Equal(t, 1, ewp.GetPosition().Line)
		})
	}
}

// A comment is whitespace through and including its line break, so no
// newline token surfaces between the tokens on either side of it.
func TestLexerCommentConsumesLineBreak(t *testing.T) {
	l := newTestLexer(t, strings.NewReader("1 # note\n2\n"))
	for i, want := range []tokenKind{tokenInteger, tokenInteger, tokenNewline, tokenEOF} {
		tok, err := l.next(false)
		require.NoError(t, err, "token %d", i)
		assert.Equal(t, want, tok.kind, "token %d: wrong kind", i)
	}
}

// A quoted string carries no escapes, so it may span lines; positions on
// the far side must still account for the line breaks inside it.
func TestLexerQuotedSpansLines(t *testing.T) {
	l := newTestLexer(t, strings.NewReader("'a\nb' end\n"))
	tok, err := l.next(false)
	require.NoError(t, err)
	assert.Equal(t, tokenQuotedString, tok.kind)
	assert.Equal(t, "a\nb", tok.text)

	tok, err = l.next(false)
	require.NoError(t, err)
	assert.Equal(t, tokenString, tok.kind)
	pos := l.info.SourcePos(tok.offset)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 4, pos.Col)
}

func TestLexerStripsBOM(t *testing.T) {
	l := newTestLexer(t, strings.NewReader("\xEF\xBB\xBF.HEADER\n"))
	tok, err := l.next(false)
	require.NoError(t, err)
	assert.Equal(t, tokenSectionName, tok.kind)
	assert.Equal(t, "HEADER", tok.text)
}

func TestLexerErrorIsDeliveredToHandler(t *testing.T) {
	var seen error
	handler := reporter.NewHandler(func(err reporter.ErrorWithPos) error {
		seen = err
		return nil
	})
	l, err := newLexer(strings.NewReader("^"), "test.emn", handler)
	require.NoError(t, err)
	_, err = l.next(false)
	require.Error(t, err)
	assert.Equal(t, seen, err)
	assert.Equal(t, err, handler.Err())
	assert.True(t, errors.Is(err, ErrUnexpectedCharacter))
}

func newTestLexer(t *testing.T, in io.Reader) *idfLex {
	t.Helper()
	lexer, err := newLexer(in, "test.emn", reporter.NewHandler(nil))
	require.NoError(t, err)
	return lexer
}
