package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"php-ls/pkg/phrase"
)

var testLayout = Layout{Indent: "    ", Unit: "    ", EOL: "\n"}

func TestRuleApply(t *testing.T) {
	ws := func(text string) (*phrase.Token, string) {
		return phrase.NewToken(phrase.TokenWhitespace, 10, len(text)), text
	}
	name := func() (*phrase.Token, string) {
		return phrase.NewToken(phrase.TokenName, 7, 3), "foo"
	}

	tests := []struct {
		name     string
		rule     Rule
		previous func() (*phrase.Token, string)
		want     *Edit
	}{
		{"no space deletes whitespace", NoSpaceBefore, func() (*phrase.Token, string) { return ws("  ") }, &Edit{10, 12, ""}},
		{"no space after token", NoSpaceBefore, name, nil},
		{"single space inserts", SingleSpaceBefore, name, &Edit{10, 10, " "}},
		{"single space replaces", SingleSpaceBefore, func() (*phrase.Token, string) { return ws("\t") }, &Edit{10, 11, " "}},
		{"single space already", SingleSpaceBefore, func() (*phrase.Token, string) { return ws(" ") }, nil},
		{"newline indent inserts", NewlineIndentBefore, name, &Edit{10, 10, "\n    "}},
		{"newline indent replaces space", NewlineIndentBefore, func() (*phrase.Token, string) { return ws(" ") }, &Edit{10, 11, "\n    "}},
		{"newline indent trims trailing spaces", NewlineIndentBefore, func() (*phrase.Token, string) { return ws("  \n  ") }, &Edit{10, 15, "\n    "}},
		{"double newline inserts", DoubleNewlineIndentBefore, name, &Edit{10, 10, "\n\n    "}},
		{"indent inserts", IndentBefore, name, &Edit{10, 10, "    "}},
		{"no space or newline collapses space", NoSpaceOrNewlineIndentBefore, func() (*phrase.Token, string) { return ws(" ") }, &Edit{10, 11, ""}},
		{"no space or newline keeps break", NoSpaceOrNewlineIndentBefore, func() (*phrase.Token, string) { return ws("\n    ") }, nil},
		{"no space or newline plus one", NoSpaceOrNewlineIndentPlusOneBefore, func() (*phrase.Token, string) { return ws("\n") }, &Edit{10, 11, "\n        "}},
		{"single space or newline on one line", SingleSpaceOrNewlineIndentBefore, func() (*phrase.Token, string) { return ws("   ") }, &Edit{10, 13, " "}},
		{"single space or newline reindents", SingleSpaceOrNewlineIndentBefore, func() (*phrase.Token, string) { return ws("\n\t") }, &Edit{10, 12, "\n    "}},
		{"single space or newline plus one inserts space", SingleSpaceOrNewlineIndentPlusOneBefore, name, &Edit{10, 10, " "}},
		{"single space or newline plus one conforms", SingleSpaceOrNewlineIndentPlusOneBefore, func() (*phrase.Token, string) { return ws("\n        ") }, nil},
		{"indent or newline on one line", IndentOrNewlineIndentBefore, name, &Edit{10, 10, "    "}},
		{"indent or newline keeps break", IndentOrNewlineIndentBefore, func() (*phrase.Token, string) { return ws("\n\n") }, &Edit{10, 12, "\n\n    "}},
		{"none never edits", RuleNone, name, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous, text := tt.previous()
			edit, ok := tt.rule.Apply(previous, text, testLayout)
			if tt.want == nil {
				assert.False(t, ok, "unexpected edit %+v", edit)
				return
			}
			require.True(t, ok, "expected an edit")
			assert.Equal(t, *tt.want, edit)
		})
	}
}

func TestRuleApplyWithoutPrevious(t *testing.T) {
	_, ok := NewlineIndentBefore.Apply(nil, "", testLayout)
	assert.False(t, ok)
}

func TestRulesAreIdempotent(t *testing.T) {
	rules := []Rule{
		NoSpaceBefore, SingleSpaceBefore, NewlineIndentBefore, DoubleNewlineIndentBefore, IndentBefore,
		NoSpaceOrNewlineIndentBefore, NoSpaceOrNewlineIndentPlusOneBefore, SingleSpaceOrNewlineIndentBefore,
		SingleSpaceOrNewlineIndentPlusOneBefore, IndentOrNewlineIndentBefore,
	}
	inputs := []string{" ", "\t\t", "\n", "\r\n  ", "\n\n\n   ", " \r \n"}

	for _, rule := range rules {
		for _, input := range inputs {
			previous := phrase.NewToken(phrase.TokenWhitespace, 0, len(input))
			edit, ok := rule.Apply(previous, input, testLayout)
			if !ok || edit.NewText == "" {
				continue
			}
			again := phrase.NewToken(phrase.TokenWhitespace, 0, len(edit.NewText))
			_, changed := rule.Apply(again, edit.NewText, testLayout)
			assert.False(t, changed, "%s is not idempotent on %q", rule, input)
		}
	}
}

func TestNewlineCountPreservation(t *testing.T) {
	for k := 1; k <= 3; k++ {
		text := strings.Repeat("\n", k) + "  "
		previous := phrase.NewToken(phrase.TokenWhitespace, 0, len(text))

		for _, rule := range []Rule{
			NewlineIndentBefore, NoSpaceOrNewlineIndentBefore, NoSpaceOrNewlineIndentPlusOneBefore,
			SingleSpaceOrNewlineIndentBefore, SingleSpaceOrNewlineIndentPlusOneBefore, IndentOrNewlineIndentBefore,
		} {
			edit, ok := rule.Apply(previous, text, testLayout)
			require.True(t, ok, "%s with %d breaks", rule, k)
			assert.Equal(t, k, countNewlines(edit.NewText), "%s with %d breaks", rule, k)
		}

		edit, ok := DoubleNewlineIndentBefore.Apply(previous, text, testLayout)
		require.True(t, ok)
		assert.Equal(t, max(k, 2), countNewlines(edit.NewText))
	}
}

func TestCountNewlines(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"\n", 1},
		{"\r\n", 1},
		{"\r", 1},
		{"\r\r\n\n", 3},
		{"\n\r", 2},
		{" \r\n \r\n ", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countNewlines(tt.text), "%q", tt.text)
	}
}

func TestRuleUsesLineEnding(t *testing.T) {
	previous := phrase.NewToken(phrase.TokenName, 0, 1)
	edit, ok := NewlineIndentBefore.Apply(previous, "x", Layout{Indent: "\t", Unit: "\t", EOL: "\r\n"})
	require.True(t, ok)
	assert.Equal(t, "\r\n\t", edit.NewText)
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "SingleSpaceOrNewlineIndentPlusOneBefore", SingleSpaceOrNewlineIndentPlusOneBefore.String())
	assert.Equal(t, "None", RuleNone.String())
	assert.Equal(t, "Rule(?)", Rule(200).String())
}
