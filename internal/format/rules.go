package format

import (
	"strings"

	"php-ls/pkg/phrase"
)

// Rule decides the whitespace that precedes a token
type Rule uint8

const (
	// RuleNone means no rule is pending
	RuleNone Rule = iota
	NoSpaceBefore
	SingleSpaceBefore
	NewlineIndentBefore
	DoubleNewlineIndentBefore
	IndentBefore
	NoSpaceOrNewlineIndentBefore
	NoSpaceOrNewlineIndentPlusOneBefore
	SingleSpaceOrNewlineIndentBefore
	SingleSpaceOrNewlineIndentPlusOneBefore
	IndentOrNewlineIndentBefore
)

var ruleNames = [...]string{
	RuleNone:                                "None",
	NoSpaceBefore:                           "NoSpaceBefore",
	SingleSpaceBefore:                       "SingleSpaceBefore",
	NewlineIndentBefore:                     "NewlineIndentBefore",
	DoubleNewlineIndentBefore:               "DoubleNewlineIndentBefore",
	IndentBefore:                            "IndentBefore",
	NoSpaceOrNewlineIndentBefore:            "NoSpaceOrNewlineIndentBefore",
	NoSpaceOrNewlineIndentPlusOneBefore:     "NoSpaceOrNewlineIndentPlusOneBefore",
	SingleSpaceOrNewlineIndentBefore:        "SingleSpaceOrNewlineIndentBefore",
	SingleSpaceOrNewlineIndentPlusOneBefore: "SingleSpaceOrNewlineIndentPlusOneBefore",
	IndentOrNewlineIndentBefore:             "IndentOrNewlineIndentBefore",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "Rule(?)"
}

// Edit replaces the source bytes [Start, End) with NewText
type Edit struct {
	Start   int
	End     int
	NewText string
}

// Layout is the indentation a rule is evaluated against
type Layout struct {
	Indent string
	Unit   string
	EOL    string
}

// Apply evaluates r for the token that follows previous, whose source text is
// text. It returns false when the existing whitespace already conforms.
func (r Rule) Apply(previous *phrase.Token, text string, layout Layout) (Edit, bool) {
	if previous == nil {
		return Edit{}, false
	}

	breaks := 0
	if previous.Type == phrase.TokenWhitespace {
		breaks = countNewlines(text)
	}

	var expected string
	switch r {
	case NoSpaceBefore:
		expected = ""
	case SingleSpaceBefore:
		expected = " "
	case NewlineIndentBefore:
		expected = newlines(max(breaks, 1), layout.EOL) + layout.Indent
	case DoubleNewlineIndentBefore:
		expected = newlines(max(breaks, 2), layout.EOL) + layout.Indent
	case IndentBefore:
		expected = layout.Indent
	case NoSpaceOrNewlineIndentBefore:
		expected = orNewline(breaks, "", layout, "")
	case NoSpaceOrNewlineIndentPlusOneBefore:
		expected = orNewline(breaks, "", layout, layout.Unit)
	case SingleSpaceOrNewlineIndentBefore:
		expected = orNewline(breaks, " ", layout, "")
	case SingleSpaceOrNewlineIndentPlusOneBefore:
		expected = orNewline(breaks, " ", layout, layout.Unit)
	case IndentOrNewlineIndentBefore:
		expected = orNewline(breaks, layout.Indent, layout, "")
	default:
		return Edit{}, false
	}

	return replaceWhitespace(previous, text, expected)
}

// orNewline keeps the number of existing line breaks, or uses fallback on a single line
func orNewline(breaks int, fallback string, layout Layout, extra string) string {
	if breaks == 0 {
		return fallback
	}
	return newlines(breaks, layout.EOL) + layout.Indent + extra
}

// replaceWhitespace produces the edit turning the whitespace after previous into
// expected. A previous token that is not whitespace gets an insertion after it.
func replaceWhitespace(previous *phrase.Token, text, expected string) (Edit, bool) {
	if previous.Type != phrase.TokenWhitespace {
		if expected == "" {
			return Edit{}, false
		}
		return Edit{Start: previous.End(), End: previous.End(), NewText: expected}, true
	}

	if text == expected {
		return Edit{}, false
	}
	return Edit{Start: previous.Start(), End: previous.End(), NewText: expected}, true
}

// countNewlines counts line breaks, treating \r\n as one
func countNewlines(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			n++
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		case '\n':
			n++
		}
	}
	return n
}

func newlines(n int, eol string) string {
	return strings.Repeat(eol, n)
}
