package ast

import (
	"fmt"
	"strconv"
)

// Value is a single field of a record. It is a closed union: the only
// implementations are Integer, Float, String, and QuotedString.
type Value interface {
	fmt.Stringer
	value()
}

// Integer is a signed integer literal, e.g. 42 or -7.
type Integer struct {
	Val int64
}

// Float is a fractional literal, e.g. 10.5. A literal with no fractional
// digits is never a Float; it lexes as an Integer.
type Float struct {
	Val float64
}

// String is a bare (unquoted) token, e.g. BOARD_FILE or 2024-01-01.
type String struct {
	Val string
}

// QuotedString is a token that appeared between matching single or double
// quotes. Val excludes the delimiters. The format has no escape mechanism,
// so Val can never contain the delimiter that was used.
type QuotedString struct {
	Val string
}

func (Integer) value()      {}
func (Float) value()        {}
func (String) value()       {}
func (QuotedString) value() {}

func (v Integer) String() string { return strconv.FormatInt(v.Val, 10) }
func (v Float) String() string   { return strconv.FormatFloat(v.Val, 'f', -1, 64) }
func (v String) String() string  { return v.Val }

func (v QuotedString) String() string { return strconv.Quote(v.Val) }

var (
	_ Value = Integer{}
	_ Value = Float{}
	_ Value = String{}
	_ Value = QuotedString{}
)
