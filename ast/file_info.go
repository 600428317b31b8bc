package ast

import (
	"fmt"
	"sort"
)

// FileInfo records the line structure of a source file as the lexer scans
// it, so that byte offsets can be translated into line/column positions
// when a diagnostic must be reported.
type FileInfo struct {
	// The name of the source file.
	name string
	// The raw contents of the source file.
	data []byte
	// The zero-based byte offset at which each line begins. The value at
	// index 0 is always zero; the value at index 1 is the offset just past
	// the first newline, and so on.
	lines []int
}

// NewFileInfo creates a new instance for the given file.
func NewFileInfo(filename string, contents []byte) *FileInfo {
	return &FileInfo{
		name:  filename,
		data:  contents,
		lines: []int{0},
	}
}

func (f *FileInfo) Name() string {
	return f.name
}

// AddLine adds the offset representing the beginning of the "next" line in
// the file. Offsets must be reported in increasing order.
func (f *FileInfo) AddLine(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("invalid offset: %d must not be negative", offset))
	}
	if offset > len(f.data) {
		panic(fmt.Sprintf("invalid offset: %d is greater than file size %d", offset, len(f.data)))
	}

	if lastOffset := f.lines[len(f.lines)-1]; offset <= lastOffset {
		panic(fmt.Sprintf("invalid offset: %d is not greater than previously observed line offset %d", offset, lastOffset))
	}

	f.lines = append(f.lines, offset)
}

// SourcePos translates a byte offset into a position in the file.
func (f *FileInfo) SourcePos(offset int) SourcePos {
	lineNumber := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})

	// Tabs advance the column to the next 8-wide tab stop, so the column
	// cannot be derived from the offset alone.
	col := 0
	for i := f.lines[lineNumber-1]; i < offset; i++ {
		if f.data[i] == '\t' {
			col += 8 - (col % 8)
		} else {
			col++
		}
	}

	return SourcePos{
		Filename: f.name,
		Offset:   offset,
		Line:     lineNumber,
		// Columns are 1-indexed
		Col: col + 1,
	}
}

// SourcePos identifies a location in a board source file.
type SourcePos struct {
	Filename  string
	Line, Col int
	Offset    int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}
