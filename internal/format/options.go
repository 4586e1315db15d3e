package format

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Options controls the indentation produced by the formatter
type Options struct {
	InsertSpaces bool
	TabSize      int
}

// DefaultOptions indents with four spaces
func DefaultOptions() Options {
	return Options{InsertSpaces: true, TabSize: 4}
}

// OptionsFromProtocol reads the LSP formatting options, using defaults for
// missing or invalid values.
func OptionsFromProtocol(options protocol.FormattingOptions, defaults Options) Options {
	result := defaults

	if tabSize, ok := options[protocol.FormattingOptionTabSize]; ok {
		switch ts := tabSize.(type) {
		case float64:
			if ts >= 1 {
				result.TabSize = int(ts)
			}
		case int:
			if ts >= 1 {
				result.TabSize = ts
			}
		case uint32:
			if ts >= 1 {
				result.TabSize = int(ts)
			}
		}
	}

	if insertSpaces, ok := options[protocol.FormattingOptionInsertSpaces]; ok {
		if is, ok := insertSpaces.(bool); ok {
			result.InsertSpaces = is
		}
	}

	return result
}

// IndentUnit returns the text of one indentation level
func (o Options) IndentUnit() string {
	if !o.InsertSpaces {
		return "\t"
	}
	size := o.TabSize
	if size < 1 {
		size = DefaultOptions().TabSize
	}
	return strings.Repeat(" ", size)
}
