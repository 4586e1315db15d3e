package phrase_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"php-ls/pkg/phrase"
	"php-ls/pkg/phrase/phrasetest"
)

func sampleTree() (*phrase.Phrase, string) {
	b := phrasetest.New()
	root := b.P(phrase.Script,
		b.OpenTag("<?php "),
		b.P(phrase.ExpressionStatement,
			b.P(phrase.FunctionCallExpression,
				b.P(phrase.QualifiedName, b.Name("f")),
				b.K("("),
				b.P(phrase.ArgumentExpressionList, b.SV("$a"), b.K(","), b.WS(" "), b.SV("$b")),
				b.K(")"),
			),
			b.K(";"),
		),
	)
	return root, b.Source()
}

func TestBuilderAssignsContiguousOffsets(t *testing.T) {
	root, src := sampleTree()
	require.Equal(t, "<?php f($a, $b);", src)

	var text strings.Builder
	prevEnd := 0
	for _, tok := range phrase.Tokens(root) {
		assert.Equal(t, prevEnd, tok.Offset, "token %s is not contiguous", tok.Type)
		text.WriteString(src[tok.Start():tok.End()])
		prevEnd = tok.End()
	}
	assert.Equal(t, src, text.String())
	assert.Equal(t, 0, root.Start())
	assert.Equal(t, len(src), root.End())
}

func TestTraverseOrderAndSpine(t *testing.T) {
	root, src := sampleTree()

	var events []string
	v := phrase.VisitorFuncs{
		Pre: func(n phrase.Node, spine []*phrase.Phrase) phrase.Action {
			if tok, ok := n.(*phrase.Token); ok {
				events = append(events, "pre:"+src[tok.Start():tok.End()]+"/"+phrase.Parent(spine).Type.String())
			}
			return phrase.Continue
		},
	}

	require.True(t, phrase.Traverse(root, v))
	assert.Equal(t, []string{
		"pre:<?php /Script",
		"pre:f/QualifiedName",
		"pre:(/FunctionCallExpression",
		"pre:$a/SimpleVariable",
		"pre:,/ArgumentExpressionList",
		"pre: /ArgumentExpressionList",
		"pre:$b/SimpleVariable",
		"pre:)/FunctionCallExpression",
		"pre:;/ExpressionStatement",
	}, events)
}

func TestTraverseStop(t *testing.T) {
	root, _ := sampleTree()

	visited := 0
	v := phrase.VisitorFuncs{
		Post: func(n phrase.Node, _ []*phrase.Phrase) phrase.Action {
			if phrase.IsToken(n, phrase.TokenOpenParenthesis) {
				return phrase.Stop
			}
			if phrase.IsToken(n) {
				visited++
			}
			return phrase.Continue
		},
	}

	assert.False(t, phrase.Traverse(root, v))
	assert.Equal(t, 2, visited)
}

func TestTraverseSkipChildrenStillRunsPostorder(t *testing.T) {
	root, _ := sampleTree()

	var post []phrase.PhraseType
	tokens := 0
	v := phrase.VisitorFuncs{
		Pre: func(n phrase.Node, _ []*phrase.Phrase) phrase.Action {
			if phrase.IsPhrase(n, phrase.ArgumentExpressionList) {
				return phrase.SkipChildren
			}
			if phrase.IsToken(n) {
				tokens++
			}
			return phrase.Continue
		},
		Post: func(n phrase.Node, _ []*phrase.Phrase) phrase.Action {
			if p, ok := n.(*phrase.Phrase); ok {
				post = append(post, p.Type)
			}
			return phrase.Continue
		},
	}

	require.True(t, phrase.Traverse(root, v))
	assert.Equal(t, 5, tokens)
	assert.Contains(t, post, phrase.ArgumentExpressionList)
	assert.NotContains(t, post, phrase.SimpleVariable)
}

func TestQueries(t *testing.T) {
	root, src := sampleTree()

	list := phrase.FindPhrase(root, phrase.ArgumentExpressionList)
	require.NotNil(t, list)
	assert.Equal(t, "$a, $b", phrase.Text(list, []byte(src)))
	assert.Nil(t, phrase.FindPhrase(root, phrase.ClassDeclaration))

	first := phrase.FirstToken(root)
	require.NotNil(t, first)
	assert.Equal(t, phrase.TokenOpenTag, first.Type)

	assert.Equal(t, phrase.UnknownPhrase, phrase.Parent(nil).Type)
	assert.True(t, phrase.IsPhrase(root, phrase.Script, phrase.StatementList))
	assert.False(t, phrase.IsToken(root))
}

func TestLookupToken(t *testing.T) {
	tests := []struct {
		text string
		want phrase.TokenType
	}{
		{"{", phrase.TokenOpenBrace},
		{"::", phrase.TokenColonColon},
		{"?->", phrase.TokenNullsafeArrow},
		{"ELSEIF", phrase.TokenElseIf},
		{"Function", phrase.TokenFunction},
		{"die", phrase.TokenExit},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := phrase.LookupToken(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := phrase.LookupToken("$foo")
	assert.False(t, ok)
}

func TestCastType(t *testing.T) {
	got, ok := phrase.CastType(" Integer ")
	require.True(t, ok)
	assert.Equal(t, phrase.TokenIntegerCast, got)
	assert.True(t, got.IsCast())

	_, ok = phrase.CastType("resource")
	assert.False(t, ok)
}

func TestDump(t *testing.T) {
	root, src := sampleTree()

	var buf bytes.Buffer
	require.NoError(t, phrase.Dump(&buf, root, []byte(src), 1))
	out := buf.String()
	assert.Contains(t, out, "Script\n")
	assert.Contains(t, out, "  OpenTag \"<?php \"\n")
	assert.Contains(t, out, "  ExpressionStatement\n")
	assert.NotContains(t, out, "FunctionCallExpression")
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "OpenBrace", phrase.TokenOpenBrace.String())
	assert.Equal(t, "FunctionDeclarationBody", phrase.FunctionDeclarationBody.String())
	assert.Equal(t, "TokenType(60000)", phrase.TokenType(60000).String())
}
