package phrase

import "strconv"

// PhraseType tags a Phrase.
type PhraseType uint16

const (
	UnknownPhrase PhraseType = iota
	ErrorPhrase
	Script
	InlineText
	StatementList
	CompoundStatement
	ColonBlock
	ExpressionStatement
	EchoIntrinsic
	ReturnStatement
	IfStatement
	ElseIfClause
	ElseClause
	WhileStatement
	DoStatement
	ForStatement
	ForeachStatement
	SwitchStatement
	SwitchBlock
	CaseStatement
	DefaultStatement
	BreakStatement
	ContinueStatement
	TryStatement
	CatchClause
	FinallyClause
	ThrowExpression
	DeclareStatement
	DeclareDirective
	GlobalDeclaration
	FunctionStaticDeclaration
	UnsetIntrinsic
	GotoStatement
	NamedLabelStatement
	NamespaceDefinition
	NamespaceName
	QualifiedName
	NamespaceUseDeclaration
	NamespaceUseClause
	FunctionDeclaration
	FunctionDeclarationHeader
	FunctionDeclarationBody
	ParameterDeclaration
	ParameterDeclarationList
	ReturnType
	TypeDeclaration
	OptionalType
	ClassDeclaration
	ClassDeclarationHeader
	ClassDeclarationBody
	ClassBaseClause
	ClassInterfaceClause
	InterfaceDeclaration
	InterfaceDeclarationBody
	TraitDeclaration
	TraitDeclarationBody
	EnumDeclaration
	EnumDeclarationBody
	EnumCase
	TraitUseClause
	MethodDeclaration
	MethodDeclarationHeader
	MethodDeclarationBody
	PropertyDeclaration
	PropertyElement
	PropertyElementList
	ClassConstDeclaration
	ClassConstElementList
	ConstDeclaration
	ConstElement
	ConstElementList
	StaticVariableDeclaration
	StaticVariableDeclarationList
	VariableNameList
	AttributeGroup
	AnonymousFunctionCreationExpression
	AnonymousFunctionHeader
	AnonymousFunctionUseClause
	ClosureUseList
	ArrowFunction
	AnonymousClassDeclaration
	FunctionCallExpression
	MethodCallExpression
	ScopedCallExpression
	ObjectCreationExpression
	ArgumentExpressionList
	Argument
	PropertyAccessExpression
	ScopedPropertyAccessExpression
	ClassConstantAccessExpression
	SubscriptExpression
	SimpleVariable
	EncapsulatedVariableList
	EncapsulatedVariable
	EncapsulatedExpression
	DoubleQuotedStringLiteral
	HeredocStringLiteral
	ArrayCreationExpression
	ArrayInitialiserList
	ArrayElement
	ListIntrinsic
	IssetIntrinsic
	EmptyIntrinsic
	EvalIntrinsic
	ExitIntrinsic
	PrintIntrinsic
	IncludeExpression
	IncludeOnceExpression
	RequireExpression
	RequireOnceExpression
	AssignmentExpression
	BinaryExpression
	BitwiseExpression
	UnaryOpExpression
	CastExpression
	PrefixIncrementExpression
	PrefixDecrementExpression
	PostfixIncrementExpression
	PostfixDecrementExpression
	ParenthesizedExpression
	TernaryExpression
	MatchExpression
	MatchArm
	ErrorControlExpression
	CloneExpression
	InstanceOfExpression
	YieldExpression
	QualifiedNameList
)

var phraseTypeNames = [...]string{
	UnknownPhrase:                       "Unknown",
	ErrorPhrase:                         "Error",
	Script:                              "Script",
	InlineText:                          "InlineText",
	StatementList:                       "StatementList",
	CompoundStatement:                   "CompoundStatement",
	ColonBlock:                          "ColonBlock",
	ExpressionStatement:                 "ExpressionStatement",
	EchoIntrinsic:                       "EchoIntrinsic",
	ReturnStatement:                     "ReturnStatement",
	IfStatement:                         "IfStatement",
	ElseIfClause:                        "ElseIfClause",
	ElseClause:                          "ElseClause",
	WhileStatement:                      "WhileStatement",
	DoStatement:                         "DoStatement",
	ForStatement:                        "ForStatement",
	ForeachStatement:                    "ForeachStatement",
	SwitchStatement:                     "SwitchStatement",
	SwitchBlock:                         "SwitchBlock",
	CaseStatement:                       "CaseStatement",
	DefaultStatement:                    "DefaultStatement",
	BreakStatement:                      "BreakStatement",
	ContinueStatement:                   "ContinueStatement",
	TryStatement:                        "TryStatement",
	CatchClause:                         "CatchClause",
	FinallyClause:                       "FinallyClause",
	ThrowExpression:                     "ThrowExpression",
	DeclareStatement:                    "DeclareStatement",
	DeclareDirective:                    "DeclareDirective",
	GlobalDeclaration:                   "GlobalDeclaration",
	FunctionStaticDeclaration:           "FunctionStaticDeclaration",
	UnsetIntrinsic:                      "UnsetIntrinsic",
	GotoStatement:                       "GotoStatement",
	NamedLabelStatement:                 "NamedLabelStatement",
	NamespaceDefinition:                 "NamespaceDefinition",
	NamespaceName:                       "NamespaceName",
	QualifiedName:                       "QualifiedName",
	NamespaceUseDeclaration:             "NamespaceUseDeclaration",
	NamespaceUseClause:                  "NamespaceUseClause",
	FunctionDeclaration:                 "FunctionDeclaration",
	FunctionDeclarationHeader:           "FunctionDeclarationHeader",
	FunctionDeclarationBody:             "FunctionDeclarationBody",
	ParameterDeclaration:                "ParameterDeclaration",
	ParameterDeclarationList:            "ParameterDeclarationList",
	ReturnType:                          "ReturnType",
	TypeDeclaration:                     "TypeDeclaration",
	OptionalType:                        "OptionalType",
	ClassDeclaration:                    "ClassDeclaration",
	ClassDeclarationHeader:              "ClassDeclarationHeader",
	ClassDeclarationBody:                "ClassDeclarationBody",
	ClassBaseClause:                     "ClassBaseClause",
	ClassInterfaceClause:                "ClassInterfaceClause",
	InterfaceDeclaration:                "InterfaceDeclaration",
	InterfaceDeclarationBody:            "InterfaceDeclarationBody",
	TraitDeclaration:                    "TraitDeclaration",
	TraitDeclarationBody:                "TraitDeclarationBody",
	EnumDeclaration:                     "EnumDeclaration",
	EnumDeclarationBody:                 "EnumDeclarationBody",
	EnumCase:                            "EnumCase",
	TraitUseClause:                      "TraitUseClause",
	MethodDeclaration:                   "MethodDeclaration",
	MethodDeclarationHeader:             "MethodDeclarationHeader",
	MethodDeclarationBody:               "MethodDeclarationBody",
	PropertyDeclaration:                 "PropertyDeclaration",
	PropertyElement:                     "PropertyElement",
	PropertyElementList:                 "PropertyElementList",
	ClassConstDeclaration:               "ClassConstDeclaration",
	ClassConstElementList:               "ClassConstElementList",
	ConstDeclaration:                    "ConstDeclaration",
	ConstElement:                        "ConstElement",
	ConstElementList:                    "ConstElementList",
	StaticVariableDeclaration:           "StaticVariableDeclaration",
	StaticVariableDeclarationList:       "StaticVariableDeclarationList",
	VariableNameList:                    "VariableNameList",
	AttributeGroup:                      "AttributeGroup",
	AnonymousFunctionCreationExpression: "AnonymousFunctionCreationExpression",
	AnonymousFunctionHeader:             "AnonymousFunctionHeader",
	AnonymousFunctionUseClause:          "AnonymousFunctionUseClause",
	ClosureUseList:                      "ClosureUseList",
	ArrowFunction:                       "ArrowFunction",
	AnonymousClassDeclaration:           "AnonymousClassDeclaration",
	FunctionCallExpression:              "FunctionCallExpression",
	MethodCallExpression:                "MethodCallExpression",
	ScopedCallExpression:                "ScopedCallExpression",
	ObjectCreationExpression:            "ObjectCreationExpression",
	ArgumentExpressionList:              "ArgumentExpressionList",
	Argument:                            "Argument",
	PropertyAccessExpression:            "PropertyAccessExpression",
	ScopedPropertyAccessExpression:      "ScopedPropertyAccessExpression",
	ClassConstantAccessExpression:       "ClassConstantAccessExpression",
	SubscriptExpression:                 "SubscriptExpression",
	SimpleVariable:                      "SimpleVariable",
	EncapsulatedVariableList:            "EncapsulatedVariableList",
	EncapsulatedVariable:                "EncapsulatedVariable",
	EncapsulatedExpression:              "EncapsulatedExpression",
	DoubleQuotedStringLiteral:           "DoubleQuotedStringLiteral",
	HeredocStringLiteral:                "HeredocStringLiteral",
	ArrayCreationExpression:             "ArrayCreationExpression",
	ArrayInitialiserList:                "ArrayInitialiserList",
	ArrayElement:                        "ArrayElement",
	ListIntrinsic:                       "ListIntrinsic",
	IssetIntrinsic:                      "IssetIntrinsic",
	EmptyIntrinsic:                      "EmptyIntrinsic",
	EvalIntrinsic:                       "EvalIntrinsic",
	ExitIntrinsic:                       "ExitIntrinsic",
	PrintIntrinsic:                      "PrintIntrinsic",
	IncludeExpression:                   "IncludeExpression",
	IncludeOnceExpression:               "IncludeOnceExpression",
	RequireExpression:                   "RequireExpression",
	RequireOnceExpression:               "RequireOnceExpression",
	AssignmentExpression:                "AssignmentExpression",
	BinaryExpression:                    "BinaryExpression",
	BitwiseExpression:                   "BitwiseExpression",
	UnaryOpExpression:                   "UnaryOpExpression",
	CastExpression:                      "CastExpression",
	PrefixIncrementExpression:           "PrefixIncrementExpression",
	PrefixDecrementExpression:           "PrefixDecrementExpression",
	PostfixIncrementExpression:          "PostfixIncrementExpression",
	PostfixDecrementExpression:          "PostfixDecrementExpression",
	ParenthesizedExpression:             "ParenthesizedExpression",
	TernaryExpression:                   "TernaryExpression",
	MatchExpression:                     "MatchExpression",
	MatchArm:                            "MatchArm",
	ErrorControlExpression:              "ErrorControlExpression",
	CloneExpression:                     "CloneExpression",
	InstanceOfExpression:                "InstanceOfExpression",
	YieldExpression:                     "YieldExpression",
	QualifiedNameList:                   "QualifiedNameList",
}

func (t PhraseType) String() string {
	if int(t) < len(phraseTypeNames) {
		return phraseTypeNames[t]
	}
	return "PhraseType(" + strconv.Itoa(int(t)) + ")"
}
