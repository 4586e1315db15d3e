package document

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"php-ls/internal/parser"
	"php-ls/pkg/phrase"
)

// Document is one version of an open document together with its parse result.
//
// A Document is never modified after it has been created; the Manager replaces it
// when the client sends changes, so readers may hold on to it without locking.
type Document struct {
	URI     string
	Path    string
	Content []byte
	Version int32

	// Cached parsing results, nil for documents that are not PHP
	ParseResult *parser.ParseResult

	lineStarts []int
	eol        string
}

// New creates a document snapshot
func New(uri string, content []byte, version int32, result *parser.ParseResult) *Document {
	doc := &Document{
		URI:         uri,
		Path:        pathFromURI(uri),
		Content:     content,
		Version:     version,
		ParseResult: result,
	}
	doc.lineStarts, doc.eol = indexLines(content)
	return doc
}

// indexLines records the offset at which every line starts and the first line
// break sequence seen. \r\n, \r and \n each end a line.
func indexLines(content []byte) ([]int, string) {
	starts := []int{0}
	eol := ""
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				if eol == "" {
					eol = "\r\n"
				}
				i++
			} else if eol == "" {
				eol = "\r"
			}
			starts = append(starts, i+1)
		case '\n':
			if eol == "" {
				eol = "\n"
			}
			starts = append(starts, i+1)
		}
	}
	if eol == "" {
		eol = "\n"
	}
	return starts, eol
}

// Root returns the root of the syntax tree, or nil if the document was not parsed
func (d *Document) Root() phrase.Node {
	if d.ParseResult == nil || d.ParseResult.Root == nil {
		return nil
	}
	return d.ParseResult.Root
}

// Traverse walks the syntax tree with v. It returns false if v stopped the walk.
func (d *Document) Traverse(v phrase.Visitor) bool {
	root := d.Root()
	if root == nil {
		return true
	}
	return phrase.Traverse(root, v)
}

// Text returns the document content as a string
func (d *Document) Text() string {
	return string(d.Content)
}

// TokenText returns the source text of a token
func (d *Document) TokenText(t *phrase.Token) string {
	return phrase.Text(t, d.Content)
}

// TokenRange returns the line/character range of a token
func (d *Document) TokenRange(t *phrase.Token) protocol.Range {
	return d.Range(t.Start(), t.End())
}

// Range converts a byte offset interval to a protocol range
func (d *Document) Range(start, end int) protocol.Range {
	return protocol.Range{
		Start: d.PositionAtOffset(start),
		End:   d.PositionAtOffset(end),
	}
}

// LineEnding returns the line break sequence used by the document. Documents
// without line breaks report "\n".
func (d *Document) LineEnding() string {
	return d.eol
}

// LineCount returns the number of lines in the document
func (d *Document) LineCount() int {
	return len(d.lineStarts)
}

// PositionAtOffset converts a byte offset to a protocol position. Characters are
// counted in UTF-16 code units. Offsets are clamped to the document.
func (d *Document) PositionAtOffset(offset int) protocol.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.Content) {
		offset = len(d.Content)
	}

	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1
	// an offset between \r and \n belongs to the line the \r ends
	start := d.lineStarts[line]

	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(d.Content[start:offset])),
	}
}

// OffsetAtPosition converts a protocol position to a byte offset. Positions past
// the end of a line resolve to the end of that line; lines past the end of the
// document resolve to the document length.
func (d *Document) OffsetAtPosition(pos protocol.Position) int {
	line := int(pos.Line)
	if line >= len(d.lineStarts) {
		return len(d.Content)
	}

	offset := d.lineStarts[line]
	units := 0
	for offset < len(d.Content) && units < int(pos.Character) {
		c := d.Content[offset]
		if c == '\r' || c == '\n' {
			break
		}
		r, size := utf8.DecodeRune(d.Content[offset:])
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
		offset += size
	}
	return offset
}

// LineSubstring returns the text of the line containing offset, from the start
// of the line up to offset.
func (d *Document) LineSubstring(offset int) string {
	if offset < 0 {
		return ""
	}
	if offset > len(d.Content) {
		offset = len(d.Content)
	}
	line := int(d.PositionAtOffset(offset).Line)
	return string(d.Content[d.lineStarts[line]:offset])
}

// utf16Len counts the UTF-16 code units needed to encode b
func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
		b = b[size:]
	}
	return n
}

// IsPHPFile checks if the document path has one of the given extensions
func (d *Document) IsPHPFile(extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(d.Path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// Diagnostics converts parse errors into LSP diagnostics
func (d *Document) Diagnostics() []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0)

	if d.ParseResult == nil {
		return diagnostics
	}

	for _, err := range d.ParseResult.Errors {
		start := d.PositionAtOffset(err.Offset)
		end := d.PositionAtOffset(err.Offset + max(err.Length, 1))
		diagnostic := protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: &[]protocol.DiagnosticSeverity{protocol.DiagnosticSeverityError}[0],
			Source:   &[]string{"php-ls"}[0],
			Message:  err.Message,
		}

		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}
