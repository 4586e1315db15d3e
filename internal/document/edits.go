package document

import (
	"bytes"
	"fmt"
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

type offsetEdit struct {
	start, end int
	text       string
	order      int
}

// ApplyEdits applies text edits computed against this document and returns the new
// content. The edits may be given in any order but must not overlap.
func (d *Document) ApplyEdits(edits []protocol.TextEdit) ([]byte, error) {
	resolved := make([]offsetEdit, 0, len(edits))
	for i, edit := range edits {
		start := d.OffsetAtPosition(edit.Range.Start)
		end := d.OffsetAtPosition(edit.Range.End)
		if end < start {
			return nil, fmt.Errorf("edit %d has an inverted range %v", i, edit.Range)
		}
		resolved = append(resolved, offsetEdit{start: start, end: end, text: edit.NewText, order: i})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		if resolved[i].start != resolved[j].start {
			return resolved[i].start < resolved[j].start
		}
		return resolved[i].end < resolved[j].end
	})

	var result bytes.Buffer
	result.Grow(len(d.Content))

	last := 0
	for i, edit := range resolved {
		if edit.start < last {
			return nil, fmt.Errorf("edit %d overlaps edit %d", edit.order, resolved[i-1].order)
		}
		result.Write(d.Content[last:edit.start])
		result.WriteString(edit.text)
		last = edit.end
	}
	result.Write(d.Content[last:])

	return result.Bytes(), nil
}

// applyChange replaces a range of content with text
func applyChange(content []byte, rng protocol.Range, text string) ([]byte, error) {
	doc := New("", content, 0, nil)
	return doc.ApplyEdits([]protocol.TextEdit{{Range: rng, NewText: text}})
}
