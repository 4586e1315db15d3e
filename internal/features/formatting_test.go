package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"php-ls/internal/document"
	"php-ls/internal/format"
)

func newTestProvider(t *testing.T) (*FormattingProvider, *document.Manager) {
	t.Helper()

	manager, err := document.NewManager()
	require.NoError(t, err)
	t.Cleanup(manager.Close)

	return NewFormattingProvider(manager, format.DefaultOptions()), manager
}

func open(t *testing.T, manager *document.Manager, uri, content string) *document.Document {
	t.Helper()

	doc, err := manager.DidOpen(&protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: document.LanguageID,
			Version:    1,
			Text:       content,
		},
	})
	require.NoError(t, err)
	return doc
}

func spaces(tabSize int) protocol.FormattingOptions {
	return protocol.FormattingOptions{
		protocol.FormattingOptionTabSize:      float64(tabSize),
		protocol.FormattingOptionInsertSpaces: true,
	}
}

// formatAndApply formats uri and returns the resulting text
func formatAndApply(t *testing.T, provider *FormattingProvider, doc *document.Document, options protocol.FormattingOptions) string {
	t.Helper()

	edits := provider.ProvideDocumentFormatting(doc.URI, options)
	out, err := doc.ApplyEdits(edits)
	require.NoError(t, err)
	return string(out)
}

func TestFormattingUnknownDocument(t *testing.T) {
	provider, _ := newTestProvider(t)

	edits := provider.ProvideDocumentFormatting("file:///missing.php", spaces(4))
	assert.NotNil(t, edits)
	assert.Empty(t, edits)

	edits = provider.ProvideDocumentRangeFormatting("file:///missing.php", protocol.Range{}, spaces(4))
	assert.NotNil(t, edits)
	assert.Empty(t, edits)
}

func TestFormattingUnparsedDocument(t *testing.T) {
	provider, manager := newTestProvider(t)

	_, err := manager.DidOpen(&protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///notes.txt", LanguageID: "plaintext", Text: "a  b"},
	})
	require.NoError(t, err)

	assert.Empty(t, provider.ProvideDocumentFormatting("file:///notes.txt", spaces(4)))
}

func TestFormattingExamples(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		options  protocol.FormattingOptions
		expected string
	}{
		{
			name:     "brace indentation",
			input:    "<?php\nfunction f(){echo 1;}",
			options:  spaces(4),
			expected: "<?php\nfunction f() {\n    echo 1;\n}",
		},
		{
			name:     "single line arguments",
			input:    "<?php\nf($a,$b);\n",
			options:  spaces(4),
			expected: "<?php\nf($a, $b);\n",
		},
		{
			name:     "multi line arguments",
			input:    "<?php\nf(\n$a,\n$b);\n",
			options:  spaces(4),
			expected: "<?php\nf(\n    $a,\n    $b\n);\n",
		},
		{
			name:     "class and method",
			input:    "<?php\nclass A{\npublic function m($a,$b){return $a+$b;}\n}\n",
			options:  spaces(2),
			expected: "<?php\nclass A\n{\n  public function m($a, $b) {\n    return $a + $b;\n  }\n}\n",
		},
		{
			name:     "tabs",
			input:    "<?php\nfunction f(){echo 1;}",
			options:  protocol.FormattingOptions{protocol.FormattingOptionTabSize: float64(4), protocol.FormattingOptionInsertSpaces: false},
			expected: "<?php\nfunction f() {\n\techo 1;\n}",
		},
		{
			name:     "crlf line endings",
			input:    "<?php\r\nfunction f(){echo 1;}",
			options:  spaces(4),
			expected: "<?php\r\nfunction f() {\r\n    echo 1;\r\n}",
		},
		{
			name:     "fully qualified name after new",
			input:    "<?php\nthrow new \\Foo\\Bar();\n",
			options:  spaces(4),
			expected: "<?php\nthrow new \\Foo\\Bar();\n",
		},
		{
			name:     "fully qualified names in class header",
			input:    "<?php\nclass X extends \\A\\B implements \\C\\D {}\n",
			options:  spaces(4),
			expected: "<?php\nclass X extends \\A\\B implements \\C\\D\n{\n}\n",
		},
		{
			name:     "fully qualified call after return",
			input:    "<?php\nreturn \\A\\count($a);\n",
			options:  spaces(4),
			expected: "<?php\nreturn \\A\\count($a);\n",
		},
		{
			name:     "fully qualified class constant after echo",
			input:    "<?php\necho \\A\\B::C;\n",
			options:  spaces(4),
			expected: "<?php\necho \\A\\B::C;\n",
		},
		{
			name:     "attribute before class",
			input:    "<?php\n#[Attr]\nclass A {}\n",
			options:  spaces(4),
			expected: "<?php\n#[Attr]\nclass A\n{\n}\n",
		},
		{
			name:     "attribute before function",
			input:    "<?php\n#[Attr]\nfunction g() {}\n",
			options:  spaces(4),
			expected: "<?php\n#[Attr]\nfunction g() {\n}\n",
		},
		{
			name:     "missing options fall back to defaults",
			input:    "<?php\nfunction f(){echo 1;}",
			options:  protocol.FormattingOptions{},
			expected: "<?php\nfunction f() {\n    echo 1;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, manager := newTestProvider(t)
			doc := open(t, manager, "file:///test.php", tt.input)

			assert.Equal(t, tt.expected, formatAndApply(t, provider, doc, tt.options))
		})
	}
}

func TestFormattingIsIdempotent(t *testing.T) {
	sources := []string{
		"<?php\nfunction f(){echo 1;}",
		"<?php\nf($a,$b);\n",
		"<?php\nf(\n$a,\n$b);\n",
		"<?php\nclass A{\npublic function m($a,$b){return $a+$b;}\n}\n",
		"<?php\n$a = 1;\n\n\n$b = 2;   $c = 3;\n",
	}

	for _, src := range sources {
		provider, manager := newTestProvider(t)
		doc := open(t, manager, "file:///first.php", src)

		once := formatAndApply(t, provider, doc, spaces(4))

		again := open(t, manager, "file:///second.php", once)
		assert.Empty(t, provider.ProvideDocumentFormatting(again.URI, spaces(4)), "second pass over %q", once)
	}
}

func TestFormattingEditOrder(t *testing.T) {
	provider, manager := newTestProvider(t)
	doc := open(t, manager, "file:///test.php", "<?php\nclass A{\npublic function m($a,$b){return $a+$b;}\n}\n")

	edits := provider.ProvideDocumentFormatting(doc.URI, spaces(4))
	require.Greater(t, len(edits), 1)

	// last edit in the document first, and no two edits overlap
	for i := 1; i < len(edits); i++ {
		laterStart := doc.OffsetAtPosition(edits[i-1].Range.Start)
		earlierEnd := doc.OffsetAtPosition(edits[i].Range.End)
		assert.LessOrEqual(t, earlierEnd, laterStart, "edit %d overlaps edit %d", i, i-1)
	}
}

func TestRangeFormattingContainment(t *testing.T) {
	provider, manager := newTestProvider(t)
	src := "<?php\nf($a,$b);\ng($c,$d);\nh($e,$f);\n"
	doc := open(t, manager, "file:///test.php", src)

	rng := protocol.Range{
		Start: protocol.Position{Line: 2, Character: 0},
		End:   protocol.Position{Line: 2, Character: 9},
	}
	edits := provider.ProvideDocumentRangeFormatting(doc.URI, rng, spaces(4))
	require.Len(t, edits, 1)

	start, end := doc.OffsetAtPosition(rng.Start), doc.OffsetAtPosition(rng.End)
	for _, edit := range edits {
		assert.GreaterOrEqual(t, doc.OffsetAtPosition(edit.Range.Start), start)
		assert.LessOrEqual(t, doc.OffsetAtPosition(edit.Range.End), end)
	}

	out, err := doc.ApplyEdits(edits)
	require.NoError(t, err)
	assert.Equal(t, "<?php\nf($a,$b);\ng($c, $d);\nh($e,$f);\n", string(out))
}
