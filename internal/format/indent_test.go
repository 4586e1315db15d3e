package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestIndentation(t *testing.T) {
	in := newIndentation("  ")
	assert.Equal(t, "", in.String())

	in.increment()
	in.increment()
	assert.Equal(t, "    ", in.String())
	assert.Equal(t, 2, in.Depth())

	require.NoError(t, in.decrement())
	require.NoError(t, in.decrement())
	assert.ErrorIs(t, in.decrement(), ErrIndentUnderflow)
	assert.Equal(t, 0, in.Depth())
	assert.Equal(t, "", in.String())
}

func TestIndentationBase(t *testing.T) {
	tests := []struct {
		name   string
		unit   string
		prefix string
		want   string
	}{
		{"column zero", "    ", "", ""},
		{"aligned", "    ", "    ", "    "},
		{"rounds up", "    ", "     ", "        "},
		{"tabs", "\t", "\t\t", "\t\t"},
		{"counts runes", "  ", "é", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newIndentation(tt.unit)
			in.setBase(tt.prefix)
			assert.Equal(t, tt.want, in.String())

			in.increment()
			assert.Equal(t, tt.want+tt.unit, in.String())
		})
	}
}

func TestReflowComment(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		indent  string
		want    string
		changed bool
	}{
		{
			name:    "realigns continuation lines",
			text:    "/**\n * A\n *B\n*/",
			indent:  "    ",
			want:    "/**\n     * A\n     *B\n     */",
			changed: true,
		},
		{
			name:   "already aligned",
			text:   "/**\n * A\n */",
			indent: "",
			want:   "/**\n * A\n */",
		},
		{
			name:    "keeps crlf",
			text:    "/**\r\n\t* A\r\n\t*/",
			indent:  "  ",
			want:    "/**\r\n   * A\r\n   */",
			changed: true,
		},
		{
			name:    "lines without a star are untouched",
			text:    "/*\n  text\n*/",
			indent:  "",
			want:    "/*\n  text\n */",
			changed: true,
		},
		{
			name:   "single line",
			text:   "/** x */",
			indent: "        ",
			want:   "/** x */",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := reflowComment(tt.text, tt.indent)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestOptions(t *testing.T) {
	defaults := DefaultOptions()
	assert.Equal(t, "    ", defaults.IndentUnit())

	tests := []struct {
		name    string
		options protocol.FormattingOptions
		unit    string
	}{
		{"empty uses defaults", protocol.FormattingOptions{}, "    "},
		{"json numbers", protocol.FormattingOptions{"tabSize": float64(2), "insertSpaces": true}, "  "},
		{"ints", protocol.FormattingOptions{"tabSize": 3}, "   "},
		{"tabs", protocol.FormattingOptions{"tabSize": float64(8), "insertSpaces": false}, "\t"},
		{"invalid tab size", protocol.FormattingOptions{"tabSize": float64(0)}, "    "},
		{"wrong types", protocol.FormattingOptions{"tabSize": "2", "insertSpaces": "no"}, "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unit, OptionsFromProtocol(tt.options, defaults).IndentUnit())
		})
	}

	assert.Equal(t, "    ", Options{InsertSpaces: true}.IndentUnit())
}
