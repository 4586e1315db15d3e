// Package phrasetest builds phrase trees by hand for tests.
//
// Tokens are appended to an internal source buffer in the order they are created,
// so a tree written as nested calls gets contiguous offsets:
//
//	b := phrasetest.New()
//	root := b.P(phrase.ExpressionStatement, b.Var("$a"), b.K("++"), b.K(";"))
//	src := b.Source() // "$a++;"
package phrasetest

import (
	"fmt"
	"strings"

	"php-ls/pkg/phrase"
)

// Builder accumulates source text while creating tokens
type Builder struct {
	src strings.Builder
}

// New creates an empty builder
func New() *Builder {
	return &Builder{}
}

// T appends text and returns a token of the given type covering it
func (b *Builder) T(t phrase.TokenType, text string) *phrase.Token {
	offset := b.src.Len()
	b.src.WriteString(text)
	return phrase.NewToken(t, offset, len(text))
}

// K appends a keyword, operator or punctuation token, looking its type up from the text
func (b *Builder) K(text string) *phrase.Token {
	t, ok := phrase.LookupToken(text)
	if !ok {
		panic(fmt.Sprintf("phrasetest: no fixed token spelled %q", text))
	}
	return b.T(t, text)
}

// WS appends a whitespace token
func (b *Builder) WS(text string) *phrase.Token {
	return b.T(phrase.TokenWhitespace, text)
}

// Name appends a name token
func (b *Builder) Name(text string) *phrase.Token {
	return b.T(phrase.TokenName, text)
}

// Var appends a variable name token
func (b *Builder) Var(text string) *phrase.Token {
	return b.T(phrase.TokenVariableName, text)
}

// Int appends an integer literal token
func (b *Builder) Int(text string) *phrase.Token {
	return b.T(phrase.TokenIntegerLiteral, text)
}

// OpenTag appends an open tag token
func (b *Builder) OpenTag(text string) *phrase.Token {
	return b.T(phrase.TokenOpenTag, text)
}

// P creates a phrase. It does not append any text.
func (b *Builder) P(t phrase.PhraseType, children ...phrase.Node) *phrase.Phrase {
	return phrase.NewPhrase(t, children...)
}

// SV wraps a variable name token in a SimpleVariable phrase
func (b *Builder) SV(name string) *phrase.Phrase {
	return b.P(phrase.SimpleVariable, b.Var(name))
}

// Source returns the text accumulated so far
func (b *Builder) Source() string {
	return b.src.String()
}
