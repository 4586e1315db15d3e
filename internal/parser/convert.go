package parser

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"php-ls/pkg/phrase"
)

// phraseKinds maps tree-sitter-php node kinds to phrase types. Named nodes missing
// from the map are spliced into their parent.
var phraseKinds = map[string]phrase.PhraseType{
	"program":                           phrase.Script,
	"text_interpolation":                phrase.InlineText,
	"compound_statement":                phrase.CompoundStatement,
	"colon_block":                       phrase.ColonBlock,
	"expression_statement":              phrase.ExpressionStatement,
	"echo_statement":                    phrase.EchoIntrinsic,
	"return_statement":                  phrase.ReturnStatement,
	"if_statement":                      phrase.IfStatement,
	"else_if_clause":                    phrase.ElseIfClause,
	"else_clause":                       phrase.ElseClause,
	"while_statement":                   phrase.WhileStatement,
	"do_statement":                      phrase.DoStatement,
	"for_statement":                     phrase.ForStatement,
	"foreach_statement":                 phrase.ForeachStatement,
	"switch_statement":                  phrase.SwitchStatement,
	"switch_block":                      phrase.SwitchBlock,
	"case_statement":                    phrase.CaseStatement,
	"default_statement":                 phrase.DefaultStatement,
	"break_statement":                   phrase.BreakStatement,
	"continue_statement":                phrase.ContinueStatement,
	"try_statement":                     phrase.TryStatement,
	"catch_clause":                      phrase.CatchClause,
	"finally_clause":                    phrase.FinallyClause,
	"throw_expression":                  phrase.ThrowExpression,
	"declare_statement":                 phrase.DeclareStatement,
	"declare_directive":                 phrase.DeclareDirective,
	"global_declaration":                phrase.GlobalDeclaration,
	"function_static_declaration":       phrase.FunctionStaticDeclaration,
	"static_variable_declaration":       phrase.StaticVariableDeclaration,
	"unset_statement":                   phrase.UnsetIntrinsic,
	"goto_statement":                    phrase.GotoStatement,
	"named_label_statement":             phrase.NamedLabelStatement,
	"namespace_definition":              phrase.NamespaceDefinition,
	"namespace_name":                    phrase.NamespaceName,
	"qualified_name":                    phrase.QualifiedName,
	"namespace_use_declaration":         phrase.NamespaceUseDeclaration,
	"namespace_use_clause":              phrase.NamespaceUseClause,
	"function_definition":               phrase.FunctionDeclaration,
	"simple_parameter":                  phrase.ParameterDeclaration,
	"variadic_parameter":                phrase.ParameterDeclaration,
	"property_promotion_parameter":      phrase.ParameterDeclaration,
	"optional_type":                     phrase.OptionalType,
	"class_declaration":                 phrase.ClassDeclaration,
	"base_clause":                       phrase.ClassBaseClause,
	"class_interface_clause":            phrase.ClassInterfaceClause,
	"interface_declaration":             phrase.InterfaceDeclaration,
	"trait_declaration":                 phrase.TraitDeclaration,
	"enum_declaration":                  phrase.EnumDeclaration,
	"declaration_list":                  phrase.ClassDeclarationBody,
	"enum_declaration_list":             phrase.EnumDeclarationBody,
	"enum_case":                         phrase.EnumCase,
	"use_declaration":                   phrase.TraitUseClause,
	"method_declaration":                phrase.MethodDeclaration,
	"property_declaration":              phrase.PropertyDeclaration,
	"property_element":                  phrase.PropertyElement,
	"const_declaration":                 phrase.ConstDeclaration,
	"const_element":                     phrase.ConstElement,
	"attribute_group":                   phrase.AttributeGroup,
	"anonymous_function":                phrase.AnonymousFunctionCreationExpression,
	"anonymous_function_use_clause":     phrase.AnonymousFunctionUseClause,
	"arrow_function":                    phrase.ArrowFunction,
	"anonymous_class":                   phrase.AnonymousClassDeclaration,
	"function_call_expression":          phrase.FunctionCallExpression,
	"member_call_expression":            phrase.MethodCallExpression,
	"nullsafe_member_call_expression":   phrase.MethodCallExpression,
	"scoped_call_expression":            phrase.ScopedCallExpression,
	"object_creation_expression":        phrase.ObjectCreationExpression,
	"argument":                          phrase.Argument,
	"member_access_expression":          phrase.PropertyAccessExpression,
	"nullsafe_member_access_expression": phrase.PropertyAccessExpression,
	"scoped_property_access_expression": phrase.ScopedPropertyAccessExpression,
	"class_constant_access_expression":  phrase.ClassConstantAccessExpression,
	"subscript_expression":              phrase.SubscriptExpression,
	"dynamic_variable_name":             phrase.SimpleVariable,
	"array_creation_expression":         phrase.ArrayCreationExpression,
	"array_element_initializer":         phrase.ArrayElement,
	"list_literal":                      phrase.ListIntrinsic,
	"print_intrinsic":                   phrase.PrintIntrinsic,
	"exit_statement":                    phrase.ExitIntrinsic,
	"include_expression":                phrase.IncludeExpression,
	"include_once_expression":           phrase.IncludeOnceExpression,
	"require_expression":                phrase.RequireExpression,
	"require_once_expression":           phrase.RequireOnceExpression,
	"assignment_expression":             phrase.AssignmentExpression,
	"augmented_assignment_expression":   phrase.AssignmentExpression,
	"reference_assignment_expression":   phrase.AssignmentExpression,
	"binary_expression":                 phrase.BinaryExpression,
	"unary_op_expression":               phrase.UnaryOpExpression,
	"cast_expression":                   phrase.CastExpression,
	"parenthesized_expression":          phrase.ParenthesizedExpression,
	"conditional_expression":            phrase.TernaryExpression,
	"match_expression":                  phrase.MatchExpression,
	"match_conditional_expression":      phrase.MatchArm,
	"match_default_expression":          phrase.MatchArm,
	"error_suppression_expression":      phrase.ErrorControlExpression,
	"clone_expression":                  phrase.CloneExpression,
	"yield_expression":                  phrase.YieldExpression,
}

// atomicKinds are converted to a single token, whatever their inner structure
var atomicKinds = map[string]phrase.TokenType{
	"variable_name":            phrase.TokenVariableName,
	"string":                   phrase.TokenStringLiteral,
	"encapsed_string":          phrase.TokenStringLiteral,
	"nowdoc":                   phrase.TokenStringLiteral,
	"shell_command_expression": phrase.TokenStringLiteral,
	"heredoc":                  phrase.TokenHeredoc,
	"integer":                  phrase.TokenIntegerLiteral,
	"float":                    phrase.TokenFloatingLiteral,
	"text":                     phrase.TokenText,
	"ERROR":                    phrase.TokenUnknown,
}

// namedLeafKinds are named tree-sitter leaves that read as identifiers
var namedLeafKinds = map[string]bool{
	"name":           true,
	"boolean":        true,
	"null":           true,
	"primitive_type": true,
	"relative_scope": true,
	"bottom_type":    true,
}

// converter builds a phrase tree from a tree-sitter tree. Every byte of the source
// ends up in exactly one token: bytes between nodes become whitespace tokens.
type converter struct {
	source []byte
	// pos is the offset up to which tokens have been emitted
	pos    int
	last   phrase.TokenType
	tokens int
}

func convert(root *tree_sitter.Node, source []byte) *phrase.Phrase {
	c := &converter{source: source}
	children := c.children(root, 0)
	children = append(children, c.gap(len(source), false)...)
	return phrase.NewPhrase(phrase.Script, children...)
}

// children converts the children of n starting at index from
func (c *converter) children(n *tree_sitter.Node, from uint) []phrase.Node {
	var out []phrase.Node
	kind := n.Kind()

	count := n.ChildCount()
	for i := from; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		start, end := int(child.StartByte()), int(child.EndByte())
		if end <= start || end <= c.pos {
			// missing nodes and zero width scanner tokens
			continue
		}
		out = append(out, c.gap(start, child.Kind() == "text")...)
		out = append(out, c.node(child, kind)...)
	}
	return out
}

// gap emits a token for the bytes between the last token and offset
func (c *converter) gap(offset int, beforeText bool) []phrase.Node {
	if offset <= c.pos {
		return nil
	}

	typ := phrase.TokenWhitespace
	text := c.source[c.pos:offset]
	switch {
	case strings.TrimLeft(string(text), " \t\r\n") != "":
		typ = phrase.TokenUnknown
	case c.tokens == 0 || c.last == phrase.TokenCloseTag || beforeText:
		typ = phrase.TokenText
	}
	return []phrase.Node{c.emit(typ, c.pos, offset)}
}

func (c *converter) emit(typ phrase.TokenType, start, end int) *phrase.Token {
	if start < c.pos {
		start = c.pos
	}
	t := phrase.NewToken(typ, start, end-start)
	c.pos = end
	c.last = typ
	c.tokens++
	return t
}

func (c *converter) node(n *tree_sitter.Node, parentKind string) []phrase.Node {
	kind := n.Kind()
	start, end := int(n.StartByte()), int(n.EndByte())

	if typ, ok := atomicKinds[kind]; ok || n.IsError() {
		tok := c.emit(typ, start, end)
		if kind == "variable_name" {
			return []phrase.Node{phrase.NewPhrase(phrase.SimpleVariable, tok)}
		}
		return []phrase.Node{tok}
	}

	if n.ChildCount() == 0 {
		return []phrase.Node{c.leaf(n)}
	}

	switch kind {
	case "cast_expression":
		return []phrase.Node{phrase.NewPhrase(phrase.CastExpression, c.cast(n)...)}
	case "arguments":
		return wrapBetween(c.children(n, 0), phrase.ArgumentExpressionList)
	case "formal_parameters":
		return wrapBetween(c.children(n, 0), phrase.ParameterDeclarationList)
	case "update_expression":
		typ := phrase.PostfixIncrementExpression
		first := n.Child(0)
		switch {
		case first != nil && first.Kind() == "++":
			typ = phrase.PrefixIncrementExpression
		case first != nil && first.Kind() == "--":
			typ = phrase.PrefixDecrementExpression
		case strings.Contains(string(c.source[start:end]), "--"):
			typ = phrase.PostfixDecrementExpression
		}
		return []phrase.Node{phrase.NewPhrase(typ, c.children(n, 0)...)}
	}

	typ, ok := phraseKinds[kind]
	if !ok {
		return c.children(n, 0)
	}

	children := c.children(n, 0)
	switch kind {
	case "compound_statement":
		switch parentKind {
		case "function_definition", "anonymous_function":
			typ = phrase.FunctionDeclarationBody
		case "method_declaration":
			typ = phrase.MethodDeclarationBody
		}
	case "declaration_list":
		switch parentKind {
		case "interface_declaration":
			typ = phrase.InterfaceDeclarationBody
		case "trait_declaration":
			typ = phrase.TraitDeclarationBody
		}
	case "const_declaration":
		if parentKind == "declaration_list" || parentKind == "enum_declaration_list" {
			typ = phrase.ClassConstDeclaration
			children = wrapRun(children, phrase.ClassConstElementList, phrase.ConstElement)
		} else {
			children = wrapRun(children, phrase.ConstElementList, phrase.ConstElement)
		}
	case "property_declaration":
		children = wrapRun(children, phrase.PropertyElementList, phrase.PropertyElement)
	case "function_static_declaration":
		children = wrapRun(children, phrase.StaticVariableDeclarationList, phrase.StaticVariableDeclaration)
	case "global_declaration":
		children = wrapRun(children, phrase.VariableNameList, phrase.SimpleVariable)
	case "class_interface_clause", "base_clause":
		children = wrapAfterKeyword(children, phrase.QualifiedNameList)
	case "anonymous_function_use_clause":
		children = wrapBetween(children, phrase.ClosureUseList)
	case "array_creation_expression":
		children = wrapBetween(children, phrase.ArrayInitialiserList)
	}

	return []phrase.Node{phrase.NewPhrase(typ, children...)}
}

func (c *converter) leaf(n *tree_sitter.Node) *phrase.Token {
	kind := n.Kind()
	start, end := int(n.StartByte()), int(n.EndByte())
	text := string(c.source[start:end])

	switch {
	case kind == "php_tag":
		if text == "<?=" {
			return c.emit(phrase.TokenOpenTagEcho, start, end)
		}
		return c.emit(phrase.TokenOpenTag, start, c.absorbLineBreak(end))
	case kind == "comment":
		if strings.HasPrefix(text, "/**") && text != "/**/" {
			return c.emit(phrase.TokenDocumentComment, start, end)
		}
		return c.emit(phrase.TokenComment, start, end)
	case kind == "?>":
		return c.emit(phrase.TokenCloseTag, start, end)
	case n.IsNamed() && namedLeafKinds[kind]:
		return c.emit(phrase.TokenName, start, end)
	case kind == "cast_type":
		typ, _ := phrase.CastType(text)
		return c.emit(typ, start, end)
	}

	if !n.IsNamed() {
		if typ, ok := phrase.LookupToken(kind); ok {
			return c.emit(typ, start, end)
		}
	}
	if typ, ok := phrase.LookupToken(text); ok {
		return c.emit(typ, start, end)
	}
	if n.IsNamed() {
		return c.emit(phrase.TokenName, start, end)
	}
	return c.emit(phrase.TokenUnknown, start, end)
}

// absorbLineBreak extends an open tag over one following whitespace character,
// or over \r\n
func (c *converter) absorbLineBreak(end int) int {
	if end >= len(c.source) {
		return end
	}
	switch c.source[end] {
	case ' ', '\t', '\n':
		return end + 1
	case '\r':
		if end+1 < len(c.source) && c.source[end+1] == '\n' {
			return end + 2
		}
		return end + 1
	}
	return end
}

// cast folds the parenthesised type of a cast expression into a single token
func (c *converter) cast(n *tree_sitter.Node) []phrase.Node {
	var typeNode, closeNode *tree_sitter.Node
	closeIndex := uint(0)
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "cast_type":
			typeNode = child
		case ")":
			if typeNode != nil && closeNode == nil {
				closeNode = child
				closeIndex = i
			}
		}
	}
	if typeNode == nil || closeNode == nil {
		return c.children(n, 0)
	}

	typ, ok := phrase.CastType(string(c.source[typeNode.StartByte():typeNode.EndByte()]))
	if !ok {
		typ = phrase.TokenUnknown
	}
	out := []phrase.Node{c.emit(typ, int(n.StartByte()), int(closeNode.EndByte()))}
	return append(out, c.children(n, closeIndex+1)...)
}

// wrapBetween wraps the nodes between the first opening and the last closing
// parenthesis or bracket in a list phrase. Whitespace next to the delimiters stays
// outside the list.
func wrapBetween(children []phrase.Node, list phrase.PhraseType) []phrase.Node {
	open := -1
	for i, child := range children {
		if phrase.IsToken(child, phrase.TokenOpenParenthesis, phrase.TokenOpenBracket) {
			open = i
			break
		}
	}
	if open < 0 {
		return children
	}

	closing := len(children)
	for i := len(children) - 1; i > open; i-- {
		if phrase.IsToken(children[i], phrase.TokenCloseParenthesis, phrase.TokenCloseBracket) {
			closing = i
			break
		}
	}

	return wrapRange(children, open+1, closing, list)
}

// wrapRun wraps the nodes from the first to the last element phrase in a list phrase
func wrapRun(children []phrase.Node, list phrase.PhraseType, element phrase.PhraseType) []phrase.Node {
	first, last := -1, -1
	for i, child := range children {
		if phrase.IsPhrase(child, element) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return children
	}
	return wrapRange(children, first, last+1, list)
}

// wrapAfterKeyword wraps everything after the leading keyword in a list phrase
func wrapAfterKeyword(children []phrase.Node, list phrase.PhraseType) []phrase.Node {
	if len(children) < 2 {
		return children
	}
	return wrapRange(children, 1, len(children), list)
}

// wrapRange replaces children[from:to] with a list phrase holding them, leaving
// leading and trailing whitespace outside. An empty range is left alone.
func wrapRange(children []phrase.Node, from, to int, list phrase.PhraseType) []phrase.Node {
	for from < to && phrase.IsToken(children[from], phrase.TokenWhitespace) {
		from++
	}
	for to > from && phrase.IsToken(children[to-1], phrase.TokenWhitespace) {
		to--
	}
	if from == to {
		return children
	}

	items := make([]phrase.Node, to-from)
	copy(items, children[from:to])

	out := make([]phrase.Node, 0, len(children)-len(items)+1)
	out = append(out, children[:from]...)
	out = append(out, phrase.NewPhrase(list, items...))
	out = append(out, children[to:]...)
	return out
}
