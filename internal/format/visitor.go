// Package format computes whitespace edits that lay out a PHP syntax tree.
//
// A Visitor walks the phrase tree once. Before each token it picks a Rule for
// the whitespace in front of the token and records the edit the rule asks for;
// after a node it decides which rule governs the next token. Indentation,
// multi-line list state and brace kinds are tracked on the way.
package format

import (
	"strings"

	"github.com/charmbracelet/log"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"php-ls/internal/logging"
	"php-ls/pkg/phrase"
)

// Document is the view of a parsed document the formatter works on
type Document interface {
	TokenText(t *phrase.Token) string
	TokenRange(t *phrase.Token) protocol.Range
	PositionAtOffset(offset int) protocol.Position
	OffsetAtPosition(pos protocol.Position) int
	LineSubstring(offset int) string
	LineEnding() string
	Traverse(v phrase.Visitor) bool
}

// window restricts edits to the byte range [start, end]
type window struct {
	start  int
	end    int
	active bool
}

// pending is the rule that governs the whitespace before the next token
type pending struct {
	rule Rule
}

func (p *pending) set(r Rule) { p.rule = r }

func (p *pending) peek() Rule { return p.rule }

// take returns the pending rule and clears it
func (p *pending) take() Rule {
	r := p.rule
	p.rule = RuleNone
	return r
}

// Visitor formats one document. It is used for a single traversal.
type Visitor struct {
	doc    Document
	unit   string
	eol    string
	indent *indentation
	next   pending

	previous      *phrase.Token
	previousNonWS *phrase.Token
	commentAlone  bool

	// one entry per open brace: true when it opened an indented block
	braces []bool
	// one entry per open delimited list: true when the list spans lines
	lists []bool
	// phrases that currently hold an indentation level: member access chains,
	// case bodies and colon blocks
	indented map[*phrase.Phrase]struct{}

	window *window
	edits  []protocol.TextEdit
	logger *log.Logger
}

// NewVisitor creates a visitor that formats the whole document
func NewVisitor(doc Document, options Options) *Visitor {
	unit := options.IndentUnit()
	return &Visitor{
		doc:      doc,
		unit:     unit,
		eol:      doc.LineEnding(),
		indent:   newIndentation(unit),
		indented: make(map[*phrase.Phrase]struct{}),
		edits:    make([]protocol.TextEdit, 0),
		logger:   logging.Default().WithPrefix("format"),
	}
}

// SetRange limits the visitor to edits inside the byte range [start, end].
// Traversal stops once the range has been passed.
func (v *Visitor) SetRange(start, end int) {
	v.window = &window{start: start, end: end}
}

// Edits returns the edits collected so far, in document order
func (v *Visitor) Edits() []protocol.TextEdit {
	return v.edits
}

// Format returns the edits that format the whole document, in document order
func Format(doc Document, options Options) []protocol.TextEdit {
	v := NewVisitor(doc, options)
	doc.Traverse(v)
	return v.Edits()
}

// FormatRange returns the edits that format the byte range [start, end] of the
// document, in document order
func FormatRange(doc Document, options Options, start, end int) []protocol.TextEdit {
	v := NewVisitor(doc, options)
	v.SetRange(start, end)
	doc.Traverse(v)
	return v.Edits()
}

// Preorder implements phrase.Visitor
func (v *Visitor) Preorder(n phrase.Node, spine []*phrase.Phrase) phrase.Action {
	switch n := n.(type) {
	case *phrase.Phrase:
		v.enterPhrase(n, phrase.Parent(spine))
		return phrase.Continue
	case *phrase.Token:
		return v.enterToken(n, spine)
	}
	return phrase.Continue
}

// Postorder implements phrase.Visitor
func (v *Visitor) Postorder(n phrase.Node, spine []*phrase.Phrase) phrase.Action {
	switch n := n.(type) {
	case *phrase.Phrase:
		v.leavePhrase(n, phrase.Parent(spine))
	case *phrase.Token:
		v.leaveToken(n, phrase.Parent(spine))
		if v.window != nil && n.End() >= v.window.end {
			v.logger.Debug("range formatted", logging.FieldOffset, n.End(), logging.FieldEdits, len(v.edits))
			return phrase.Stop
		}
	}
	return phrase.Continue
}

func (v *Visitor) enterPhrase(p *phrase.Phrase, parent *phrase.Phrase) {
	switch p.Type {
	case phrase.FunctionDeclarationBody, phrase.MethodDeclarationBody:
		v.next.set(SingleSpaceBefore)

	case phrase.ClassDeclarationBody, phrase.InterfaceDeclarationBody,
		phrase.TraitDeclarationBody, phrase.EnumDeclarationBody:
		if parent.Type == phrase.AnonymousClassDeclaration {
			v.next.set(SingleSpaceBefore)
		} else {
			v.next.set(NewlineIndentBefore)
		}

	case phrase.ParameterDeclarationList, phrase.ArgumentExpressionList, phrase.ClosureUseList,
		phrase.ArrayInitialiserList, phrase.QualifiedNameList:
		multiline := v.isMultiline(p)
		v.lists = append(v.lists, multiline)
		if multiline {
			v.indent.increment()
			v.next.set(NewlineIndentBefore)
		} else if p.Type != phrase.QualifiedNameList {
			v.next.set(NoSpaceBefore)
		}

	case phrase.ConstElementList, phrase.ClassConstElementList, phrase.PropertyElementList,
		phrase.StaticVariableDeclarationList, phrase.VariableNameList:
		multiline := v.isMultiline(p)
		v.lists = append(v.lists, multiline)
		if multiline {
			v.indent.increment()
		}
		v.next.set(SingleSpaceOrNewlineIndentBefore)

	case phrase.EncapsulatedVariableList:
		v.next.set(NoSpaceBefore)

	case phrase.SimpleVariable:
		if parent.Type == phrase.EncapsulatedVariableList {
			v.next.set(NoSpaceBefore)
		}
	}
}

func (v *Visitor) enterToken(t *phrase.Token, spine []*phrase.Phrase) phrase.Action {
	if v.window != nil {
		if t.Offset >= v.window.end {
			return phrase.Stop
		}
		if !v.window.active && t.End() > v.window.start {
			v.window.active = true
		}
	}

	previous := v.previous
	previousNonWS := v.previousNonWS
	v.previous = t
	if t.Type != phrase.TokenWhitespace {
		v.previousNonWS = t
	}

	if previous == nil {
		switch t.Type {
		case phrase.TokenOpenTag, phrase.TokenOpenTagEcho:
			v.indent.setBase(v.doc.LineSubstring(t.Offset))
		case phrase.TokenComment:
			v.commentAlone = true
		}
		return phrase.Continue
	}

	switch t.Type {
	case phrase.TokenWhitespace:
		return phrase.Continue
	case phrase.TokenComment:
		v.commentAlone = v.endsLine(previous)
		return phrase.Continue
	}

	rule := v.tokenRule(t, spine, v.next.take(), previous, previousNonWS)
	if rule == RuleNone {
		rule = SingleSpaceOrNewlineIndentPlusOneBefore
	}
	v.apply(rule, previous)

	return phrase.Continue
}

// tokenRule overrides the pending rule where the token and its parent call for it
func (v *Visitor) tokenRule(t *phrase.Token, spine []*phrase.Phrase, rule Rule, previous, previousNonWS *phrase.Token) Rule {
	parent := phrase.Parent(spine)

	switch t.Type {
	case phrase.TokenDocumentComment:
		rule = NewlineIndentBefore

	case phrase.TokenPlusPlus, phrase.TokenMinusMinus:
		if isPhraseType(parent, phrase.PostfixIncrementExpression, phrase.PostfixDecrementExpression) {
			rule = NoSpaceBefore
		}

	case phrase.TokenBackslash:
		// a leading separator keeps its distance from a preceding keyword
		if phrase.IsToken(previousNonWS, phrase.TokenName) || phrase.IsToken(previous, phrase.TokenNamespace) {
			rule = NoSpaceBefore
		}

	case phrase.TokenSemicolon, phrase.TokenComma, phrase.TokenText, phrase.TokenEncapsulatedAndWhitespace,
		phrase.TokenDollarCurlyOpen, phrase.TokenCurlyOpen:
		rule = NoSpaceBefore

	case phrase.TokenOpenBrace:
		block := !phrase.IsToken(previousNonWS, phrase.TokenDollar) && !isInlineBraceParent(parent)
		v.braces = append(v.braces, block)
		switch {
		case !block:
			rule = NoSpaceBefore
		case rule == RuleNone:
			rule = SingleSpaceOrNewlineIndentBefore
		}

	case phrase.TokenCloseBrace:
		if v.closeBrace(t, parent) {
			rule = NewlineIndentBefore
		} else {
			rule = NoSpaceBefore
		}

	case phrase.TokenArrow, phrase.TokenNullsafeArrow, phrase.TokenColonColon:
		if v.endsLine(previous) {
			v.indentChain(spine)
			rule = NewlineIndentBefore
		} else {
			rule = NoSpaceBefore
		}

	case phrase.TokenOpenParenthesis:
		switch {
		case isCallParent(parent) || isParenKeyword(previousNonWS):
			rule = NoSpaceBefore
		case rule == RuleNone:
			rule = SingleSpaceBefore
		}

	case phrase.TokenOpenBracket:
		if parent.Type == phrase.SubscriptExpression {
			rule = NoSpaceBefore
		}

	case phrase.TokenCloseParenthesis, phrase.TokenCloseBracket:
		if rule == RuleNone || parent.Type == phrase.ForStatement {
			rule = NoSpaceBefore
		}

	case phrase.TokenCloseTag:
		switch {
		case phrase.IsToken(previous, phrase.TokenComment) && isLineComment(v.doc.TokenText(previous)):
			rule = NoSpaceBefore
		case rule != IndentOrNewlineIndentBefore:
			rule = SingleSpaceOrNewlineIndentBefore
		}

	case phrase.TokenElse, phrase.TokenElseIf, phrase.TokenFinally:
		if phrase.IsToken(previousNonWS, phrase.TokenCloseBrace) {
			rule = SingleSpaceBefore
		}

	case phrase.TokenCatch:
		rule = SingleSpaceBefore

	case phrase.TokenWhile:
		if parent.Type == phrase.DoStatement {
			rule = SingleSpaceBefore
		}

	case phrase.TokenName:
		if parent.Type == phrase.PropertyAccessExpression || phrase.IsToken(previousNonWS, phrase.TokenBackslash) {
			rule = NoSpaceBefore
		}

	case phrase.TokenOpenTag, phrase.TokenOpenTagEcho:
		v.indent.setBase(v.doc.LineSubstring(t.Offset))
		rule = NoSpaceBefore

	case phrase.TokenColon:
		switch {
		case isTightColonParent(parent):
			rule = NoSpaceBefore
		case previous.Type == phrase.TokenQuestion:
			rule = NoSpaceBefore
		}

	case phrase.TokenEndSwitch:
		v.closeIndented(parent, t)
		rule = NewlineIndentBefore

	case phrase.TokenEquals:
		if parent.Type == phrase.DeclareDirective {
			rule = NoSpaceBefore
		}
	}

	if v.followsInlineOpenTag(previous, previousNonWS) {
		rule = NoSpaceBefore
	}

	if rule == NoSpaceBefore && phrase.IsToken(previousNonWS, phrase.TokenEndHeredoc, phrase.TokenHeredoc) {
		rule = NoSpaceOrNewlineIndentBefore
	}

	return rule
}

func (v *Visitor) leaveToken(t *phrase.Token, parent *phrase.Phrase) {
	switch t.Type {
	case phrase.TokenComment:
		text := v.doc.TokenText(t)
		switch {
		case isLineComment(text):
			v.next.set(IndentOrNewlineIndentBefore)
		case v.commentAlone:
			v.next.set(NewlineIndentBefore)
			v.reflow(t, text)
		case v.next.peek() == RuleNone:
			v.next.set(SingleSpaceOrNewlineIndentBefore)
		}

	case phrase.TokenDocumentComment:
		v.next.set(NewlineIndentBefore)
		v.reflow(t, v.doc.TokenText(t))

	case phrase.TokenOpenBrace:
		if len(v.braces) > 0 && v.braces[len(v.braces)-1] {
			v.indent.increment()
			v.next.set(NewlineIndentBefore)
		} else {
			v.next.set(NoSpaceBefore)
		}

	case phrase.TokenCloseBrace:
		if !isInlineBraceParent(parent) {
			v.next.set(NewlineIndentBefore)
		}

	case phrase.TokenSemicolon:
		switch parent.Type {
		case phrase.ForStatement:
			v.next.set(SingleSpaceBefore)
		case phrase.CaseStatement, phrase.DefaultStatement:
			v.openIndented(parent)
			v.next.set(NewlineIndentBefore)
		default:
			v.next.set(NewlineIndentBefore)
		}

	case phrase.TokenColon:
		switch parent.Type {
		case phrase.ColonBlock, phrase.SwitchBlock, phrase.CaseStatement, phrase.DefaultStatement:
			v.openIndented(parent)
			v.next.set(NewlineIndentBefore)
		case phrase.NamedLabelStatement:
			v.next.set(NewlineIndentBefore)
		}

	case phrase.TokenCloseBracket:
		if parent.Type == phrase.AttributeGroup {
			v.next.set(SingleSpaceOrNewlineIndentBefore)
		}

	case phrase.TokenComma:
		switch parent.Type {
		case phrase.ConstElementList, phrase.ClassConstElementList, phrase.PropertyElementList,
			phrase.StaticVariableDeclarationList, phrase.VariableNameList, phrase.MatchExpression:
			v.next.set(SingleSpaceOrNewlineIndentBefore)
		case phrase.ParameterDeclarationList, phrase.ArgumentExpressionList, phrase.ClosureUseList,
			phrase.ArrayInitialiserList, phrase.QualifiedNameList:
			if len(v.lists) > 0 && v.lists[len(v.lists)-1] {
				v.next.set(NewlineIndentBefore)
			}
		}

	case phrase.TokenAmpersand:
		if !isPhraseType(parent, phrase.BinaryExpression, phrase.BitwiseExpression) {
			v.next.set(NoSpaceBefore)
		}

	case phrase.TokenPlus, phrase.TokenMinus:
		if parent.Type == phrase.UnaryOpExpression {
			v.next.set(NoSpaceBefore)
		}

	case phrase.TokenPlusPlus, phrase.TokenMinusMinus:
		if isPhraseType(parent, phrase.PrefixIncrementExpression, phrase.PrefixDecrementExpression) {
			v.next.set(NoSpaceBefore)
		}

	case phrase.TokenCurlyOpen, phrase.TokenDollarCurlyOpen:
		v.braces = append(v.braces, false)
		v.next.set(NoSpaceBefore)

	case phrase.TokenEllipsis, phrase.TokenExclamation, phrase.TokenAtSymbol, phrase.TokenTilde,
		phrase.TokenBackslash, phrase.TokenOpenParenthesis, phrase.TokenOpenBracket, phrase.TokenDollar,
		phrase.TokenAttributeStart, phrase.TokenArrow, phrase.TokenNullsafeArrow, phrase.TokenColonColon:
		v.next.set(NoSpaceBefore)

	case phrase.TokenQuestion:
		if parent.Type == phrase.OptionalType {
			v.next.set(NoSpaceBefore)
		}

	case phrase.TokenEquals:
		if parent.Type == phrase.DeclareDirective {
			v.next.set(NoSpaceBefore)
		}

	case phrase.TokenOpenTag:
		text := v.doc.TokenText(t)
		switch {
		case strings.ContainsAny(text, "\r\n"):
			v.next.set(IndentOrNewlineIndentBefore)
		case len(text) > len(strings.TrimRight(text, " \t")):
			v.next.set(NoSpaceOrNewlineIndentBefore)
		default:
			v.next.set(SingleSpaceOrNewlineIndentBefore)
		}

	case phrase.TokenOpenTagEcho:
		v.next.set(SingleSpaceOrNewlineIndentBefore)

	default:
		if t.Type.IsCast() {
			v.next.set(NoSpaceBefore)
		}
	}
}

func (v *Visitor) leavePhrase(p *phrase.Phrase, parent *phrase.Phrase) {
	switch p.Type {
	case phrase.NamespaceDefinition:
		v.next.set(DoubleNewlineIndentBefore)

	case phrase.NamespaceUseDeclaration:
		if !nextSiblingIs(parent, p, phrase.NamespaceUseDeclaration) {
			v.next.set(DoubleNewlineIndentBefore)
		}

	case phrase.EncapsulatedVariableList:
		v.next.set(NoSpaceBefore)

	case phrase.AnonymousFunctionCreationExpression, phrase.AnonymousClassDeclaration, phrase.MatchExpression:
		v.next.set(RuleNone)

	case phrase.CaseStatement, phrase.DefaultStatement, phrase.ColonBlock:
		v.closeIndented(p, nil)
		v.next.set(NewlineIndentBefore)

	case phrase.ParameterDeclarationList, phrase.ArgumentExpressionList, phrase.ClosureUseList,
		phrase.ArrayInitialiserList, phrase.QualifiedNameList:
		if v.popList() {
			v.decrement(p.End())
			v.next.set(NewlineIndentBefore)
		}

	case phrase.ConstElementList, phrase.ClassConstElementList, phrase.PropertyElementList,
		phrase.StaticVariableDeclarationList, phrase.VariableNameList:
		if v.popList() {
			v.decrement(p.End())
		}
	}

	// member access chains
	if _, ok := v.indented[p]; ok && isChainPhrase(p) {
		v.closeIndented(p, nil)
	}
}

// apply evaluates rule against the token before the current one and records the edit
func (v *Visitor) apply(rule Rule, previous *phrase.Token) {
	if v.window != nil && !v.window.active {
		return
	}

	edit, ok := rule.Apply(previous, v.doc.TokenText(previous), Layout{
		Indent: v.indent.String(),
		Unit:   v.unit,
		EOL:    v.eol,
	})
	if ok {
		v.add(edit)
	}
}

// reflow realigns the continuation lines of a block comment
func (v *Visitor) reflow(t *phrase.Token, text string) {
	if v.window != nil && !v.window.active {
		return
	}
	if reflowed, changed := reflowComment(text, v.indent.String()); changed {
		v.add(Edit{Start: t.Start(), End: t.End(), NewText: reflowed})
	}
}

func (v *Visitor) add(e Edit) {
	if v.window != nil && (e.Start < v.window.start || e.End > v.window.end) {
		return
	}
	v.edits = append(v.edits, protocol.TextEdit{
		Range: protocol.Range{
			Start: v.doc.PositionAtOffset(e.Start),
			End:   v.doc.PositionAtOffset(e.End),
		},
		NewText: e.NewText,
	})
}

// isMultiline reports whether a list already spans lines, judged by the
// whitespace before it and between its elements
func (v *Visitor) isMultiline(p *phrase.Phrase) bool {
	if phrase.IsToken(v.previous, phrase.TokenWhitespace) && hasNewline(v.doc.TokenText(v.previous)) {
		return true
	}
	for _, child := range p.Children {
		if t, ok := child.(*phrase.Token); ok && t.Type == phrase.TokenWhitespace && hasNewline(v.doc.TokenText(t)) {
			return true
		}
	}
	return false
}

// endsLine reports whether t is whitespace, or an open tag, that contains a line break
func (v *Visitor) endsLine(t *phrase.Token) bool {
	if !phrase.IsToken(t, phrase.TokenWhitespace, phrase.TokenOpenTag) {
		return false
	}
	return hasNewline(v.doc.TokenText(t))
}

// followsInlineOpenTag reports whether the token comes after an open tag on the
// tag's own line, separated by blanks at most. Such a token stays on that line.
func (v *Visitor) followsInlineOpenTag(previous, previousNonWS *phrase.Token) bool {
	if !phrase.IsToken(previousNonWS, phrase.TokenOpenTag) || hasNewline(v.doc.TokenText(previousNonWS)) {
		return false
	}
	return previous == previousNonWS || !v.endsLine(previous)
}

func (v *Visitor) popList() bool {
	if len(v.lists) == 0 {
		return false
	}
	multiline := v.lists[len(v.lists)-1]
	v.lists = v.lists[:len(v.lists)-1]
	return multiline
}

// closeBrace pops the brace stack and reports whether the brace closes an
// indented block
func (v *Visitor) closeBrace(t *phrase.Token, parent *phrase.Phrase) bool {
	if len(v.braces) == 0 {
		return !isInlineBraceParent(parent)
	}
	block := v.braces[len(v.braces)-1]
	v.braces = v.braces[:len(v.braces)-1]
	if block {
		v.decrement(t.Offset)
	}
	return block
}

// indentChain indents the outermost member access chain containing the token,
// once per chain
func (v *Visitor) indentChain(spine []*phrase.Phrase) {
	var outermost *phrase.Phrase
	for i := len(spine) - 1; i >= 0 && isChainPhrase(spine[i]); i-- {
		outermost = spine[i]
	}
	if outermost == nil {
		return
	}
	v.openIndented(outermost)
}

func (v *Visitor) openIndented(p *phrase.Phrase) {
	if _, ok := v.indented[p]; ok {
		return
	}
	v.indented[p] = struct{}{}
	v.indent.increment()
}

func (v *Visitor) closeIndented(p *phrase.Phrase, at *phrase.Token) {
	if _, ok := v.indented[p]; !ok {
		return
	}
	delete(v.indented, p)
	offset := p.End()
	if at != nil {
		offset = at.Offset
	}
	v.decrement(offset)
}

func (v *Visitor) decrement(offset int) {
	if err := v.indent.decrement(); err != nil {
		v.logger.Debug("unbalanced indentation", logging.FieldOffset, offset, logging.FieldError, err)
	}
}

func isPhraseType(p *phrase.Phrase, types ...phrase.PhraseType) bool {
	return phrase.IsPhrase(p, types...)
}

func isChainPhrase(p *phrase.Phrase) bool {
	return isPhraseType(p, phrase.MethodCallExpression, phrase.PropertyAccessExpression,
		phrase.ScopedCallExpression, phrase.ScopedPropertyAccessExpression, phrase.ClassConstantAccessExpression)
}

// isInlineBraceParent reports whether braces under parent delimit an expression
// rather than a block
func isInlineBraceParent(parent *phrase.Phrase) bool {
	return isPhraseType(parent, phrase.SubscriptExpression, phrase.EncapsulatedExpression,
		phrase.EncapsulatedVariable, phrase.SimpleVariable, phrase.NamespaceUseDeclaration)
}

func isCallParent(parent *phrase.Phrase) bool {
	return isPhraseType(parent,
		phrase.FunctionCallExpression, phrase.MethodCallExpression, phrase.ScopedCallExpression,
		phrase.ObjectCreationExpression, phrase.FunctionDeclaration, phrase.FunctionDeclarationHeader,
		phrase.MethodDeclaration, phrase.MethodDeclarationHeader, phrase.DeclareStatement,
		phrase.ArrayCreationExpression, phrase.AttributeGroup,
		phrase.IssetIntrinsic, phrase.EmptyIntrinsic, phrase.EvalIntrinsic, phrase.ExitIntrinsic,
		phrase.ListIntrinsic, phrase.UnsetIntrinsic,
		phrase.IncludeExpression, phrase.IncludeOnceExpression, phrase.RequireExpression, phrase.RequireOnceExpression)
}

// isParenKeyword reports whether t is a keyword written like a function call
func isParenKeyword(t *phrase.Token) bool {
	return phrase.IsToken(t,
		phrase.TokenRequire, phrase.TokenRequireOnce, phrase.TokenInclude, phrase.TokenIncludeOnce,
		phrase.TokenIsset, phrase.TokenList, phrase.TokenPrint, phrase.TokenUnset, phrase.TokenEval,
		phrase.TokenExit, phrase.TokenEmpty, phrase.TokenArray)
}

// isTightColonParent reports whether a colon under parent follows its left side directly
func isTightColonParent(parent *phrase.Phrase) bool {
	return isPhraseType(parent,
		phrase.ColonBlock, phrase.SwitchBlock, phrase.CaseStatement, phrase.DefaultStatement,
		phrase.NamedLabelStatement, phrase.Argument, phrase.EnumDeclaration,
		phrase.FunctionDeclaration, phrase.FunctionDeclarationHeader,
		phrase.MethodDeclaration, phrase.MethodDeclarationHeader,
		phrase.AnonymousFunctionCreationExpression, phrase.AnonymousFunctionHeader, phrase.ArrowFunction)
}

// nextSiblingIs reports whether the sibling after p, ignoring whitespace and
// comments, is a phrase of type t
func nextSiblingIs(parent, p *phrase.Phrase, t phrase.PhraseType) bool {
	found := false
	for _, child := range parent.Children {
		if !found {
			found = child == phrase.Node(p)
			continue
		}
		if phrase.IsToken(child, phrase.TokenWhitespace, phrase.TokenComment, phrase.TokenDocumentComment) {
			continue
		}
		return phrase.IsPhrase(child, t)
	}
	return false
}

func isLineComment(text string) bool {
	return strings.HasPrefix(text, "//") || strings.HasPrefix(text, "#")
}

func hasNewline(text string) bool {
	return strings.ContainsAny(text, "\r\n")
}
