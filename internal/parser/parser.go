package parser

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"php-ls/pkg/phrase"
)

// TreeSitterParser wraps the tree-sitter parser for PHP files.
// A parser must not be used from more than one goroutine at a time.
type TreeSitterParser struct {
	parser *tree_sitter.Parser
	lang   *tree_sitter.Language
}

// ParseResult contains the result of parsing a PHP file
type ParseResult struct {
	// Root is the phrase tree. Its leaves cover the whole source.
	Root   *phrase.Phrase
	Errors []ParseError
}

// ParseError represents a parsing error
type ParseError struct {
	Message string
	Line    uint
	Column  uint
	Offset  int
	Length  int
}

// NewParser creates a new TreeSitterParser instance
func NewParser() (*TreeSitterParser, error) {
	parser := tree_sitter.NewParser()
	if parser == nil {
		return nil, fmt.Errorf("failed to create tree-sitter parser")
	}

	lang := tree_sitter.NewLanguage(tree_sitter_php.LanguagePHP())
	if lang == nil {
		return nil, fmt.Errorf("failed to get PHP language")
	}

	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	return &TreeSitterParser{
		parser: parser,
		lang:   lang,
	}, nil
}

// Parse parses the given PHP source code and returns its phrase tree
func (p *TreeSitterParser) Parse(source []byte) (*ParseResult, error) {
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse source code")
	}
	defer tree.Close()

	root := tree.RootNode()
	result := &ParseResult{
		Root:   convert(root, source),
		Errors: []ParseError{},
	}

	// Check for syntax errors
	if root.HasError() {
		result.Errors = collectErrors(root)
	}

	return result, nil
}

// collectErrors walks the syntax tree and collects parsing errors
func collectErrors(node *tree_sitter.Node) []ParseError {
	var errors []ParseError

	if node.IsError() {
		point := node.StartPosition()
		errors = append(errors, ParseError{
			Message: "Syntax error",
			Line:    point.Row,
			Column:  point.Column,
			Offset:  int(node.StartByte()),
			Length:  int(node.EndByte() - node.StartByte()),
		})
		// nested errors would only repeat the same region
		return errors
	}

	if node.IsMissing() {
		point := node.StartPosition()
		errors = append(errors, ParseError{
			Message: fmt.Sprintf("Missing %s", node.Kind()),
			Line:    point.Row,
			Column:  point.Column,
			Offset:  int(node.StartByte()),
		})
	}

	// Recursively check child nodes
	childCount := node.ChildCount()
	for i := uint(0); i < childCount; i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		errors = append(errors, collectErrors(child)...)
	}

	return errors
}

// HasErrors returns true if there are parsing errors
func (r *ParseResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Close releases resources held by the parser
func (p *TreeSitterParser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}
