// Package phrase defines the concrete syntax tree shared by the parser and the formatter.
//
// A tree is made of two kinds of node: a Token is a leaf covering a contiguous
// byte range of the source, a Phrase groups an ordered list of children. Whitespace
// and comments are explicit tokens, so the leaves of a tree cover the document
// without gaps.
package phrase

// Node is either a *Token or a *Phrase. The interface is sealed.
type Node interface {
	// Start returns the byte offset of the first byte covered by the node.
	Start() int
	// End returns the byte offset one past the last byte covered by the node.
	End() int

	node()
}

// Token is a leaf node
type Token struct {
	Type   TokenType
	Offset int
	Length int
}

// Start returns the token offset
func (t *Token) Start() int { return t.Offset }

// End returns the offset one past the token
func (t *Token) End() int { return t.Offset + t.Length }

func (*Token) node() {}

// Phrase is a syntactic grouping of tokens and phrases
type Phrase struct {
	Type     PhraseType
	Children []Node
}

// Start returns the offset of the first child, or 0 for an empty phrase
func (p *Phrase) Start() int {
	if len(p.Children) == 0 {
		return 0
	}
	return p.Children[0].Start()
}

// End returns the end offset of the last child, or 0 for an empty phrase
func (p *Phrase) End() int {
	if len(p.Children) == 0 {
		return 0
	}
	return p.Children[len(p.Children)-1].End()
}

func (*Phrase) node() {}

// NewToken creates a token
func NewToken(t TokenType, offset, length int) *Token {
	return &Token{Type: t, Offset: offset, Length: length}
}

// NewPhrase creates a phrase with the given children
func NewPhrase(t PhraseType, children ...Node) *Phrase {
	return &Phrase{Type: t, Children: children}
}

// IsToken reports whether n is a token of one of the given types. With no types
// it reports whether n is a token at all.
func IsToken(n Node, types ...TokenType) bool {
	t, ok := n.(*Token)
	if !ok || t == nil {
		return false
	}
	if len(types) == 0 {
		return true
	}
	for _, tt := range types {
		if t.Type == tt {
			return true
		}
	}
	return false
}

// IsPhrase reports whether n is a phrase of one of the given types. With no types
// it reports whether n is a phrase at all.
func IsPhrase(n Node, types ...PhraseType) bool {
	p, ok := n.(*Phrase)
	if !ok || p == nil {
		return false
	}
	if len(types) == 0 {
		return true
	}
	for _, pt := range types {
		if p.Type == pt {
			return true
		}
	}
	return false
}

// ContainsOffset reports whether offset lies inside the half-open range of t
func (t *Token) ContainsOffset(offset int) bool {
	return offset >= t.Offset && offset < t.End()
}
