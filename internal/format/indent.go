package format

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrIndentUnderflow is returned when indentation is decreased below zero
var ErrIndentUnderflow = errors.New("indentation decreased below zero")

// indentation tracks the indent text of the token being formatted. The base level
// comes from the column of the nearest open tag; depth counts the open
// indent-bearing constructs.
type indentation struct {
	unit  string
	base  int
	depth int
	text  string
}

func newIndentation(unit string) *indentation {
	return &indentation{unit: unit}
}

// increment opens one indentation level
func (in *indentation) increment() {
	in.depth++
	in.update()
}

// decrement closes one indentation level. The depth is left at zero on underflow.
func (in *indentation) decrement() error {
	if in.depth == 0 {
		return ErrIndentUnderflow
	}
	in.depth--
	in.update()
	return nil
}

// setBase derives the base level from the text preceding an open tag on its line
func (in *indentation) setBase(linePrefix string) {
	n := utf8.RuneCountInString(linePrefix)
	width := len(in.unit)
	if width == 0 {
		width = 1
	}
	in.base = (n + width - 1) / width
	in.update()
}

func (in *indentation) update() {
	in.text = strings.Repeat(in.unit, in.base+in.depth)
}

// String returns the current indent text
func (in *indentation) String() string {
	return in.text
}

// Depth returns the number of open indentation levels
func (in *indentation) Depth() int {
	return in.depth
}
