package phrase

import (
	"fmt"
	"io"
	"strings"
)

// unknownParent stands in for the parent of the root
var unknownParent = &Phrase{Type: UnknownPhrase}

// Parent returns the immediate parent recorded in a spine, or a phrase of type
// UnknownPhrase when the spine is empty.
func Parent(spine []*Phrase) *Phrase {
	if len(spine) == 0 {
		return unknownParent
	}
	return spine[len(spine)-1]
}

// Text returns the source text covered by a node
func Text(n Node, source []byte) string {
	if n == nil {
		return ""
	}
	start, end := n.Start(), n.End()
	if start < 0 || end > len(source) || start > end {
		return ""
	}
	return string(source[start:end])
}

// FindPhrase recursively searches for the first phrase of the specified type
func FindPhrase(n Node, t PhraseType) *Phrase {
	p, ok := n.(*Phrase)
	if !ok {
		return nil
	}
	if p.Type == t {
		return p
	}
	for _, child := range p.Children {
		if found := FindPhrase(child, t); found != nil {
			return found
		}
	}
	return nil
}

// Tokens returns the leaves of the tree in document order
func Tokens(n Node) []*Token {
	var tokens []*Token
	collectTokens(n, &tokens)
	return tokens
}

func collectTokens(n Node, tokens *[]*Token) {
	switch n := n.(type) {
	case *Token:
		*tokens = append(*tokens, n)
	case *Phrase:
		for _, child := range n.Children {
			collectTokens(child, tokens)
		}
	}
}

// FirstToken returns the first leaf of the tree, or nil
func FirstToken(n Node) *Token {
	switch n := n.(type) {
	case *Token:
		return n
	case *Phrase:
		for _, child := range n.Children {
			if t := FirstToken(child); t != nil {
				return t
			}
		}
	}
	return nil
}

// Dump writes an indented outline of the tree. Levels deeper than maxDepth are
// omitted; a negative maxDepth prints everything.
func Dump(w io.Writer, n Node, source []byte, maxDepth int) error {
	return dump(w, n, source, 0, maxDepth)
}

func dump(w io.Writer, n Node, source []byte, depth, maxDepth int) error {
	if n == nil || (maxDepth >= 0 && depth > maxDepth) {
		return nil
	}

	indent := strings.Repeat("  ", depth)

	switch n := n.(type) {
	case *Token:
		text := Text(n, source)
		if len(text) > 30 {
			text = text[:30] + "..."
		}
		_, err := fmt.Fprintf(w, "%s%s %q\n", indent, n.Type, text)
		return err
	case *Phrase:
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, n.Type); err != nil {
			return err
		}
		for _, child := range n.Children {
			if err := dump(w, child, source, depth+1, maxDepth); err != nil {
				return err
			}
		}
	}
	return nil
}
