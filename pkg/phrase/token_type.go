package phrase

import "strconv"

// TokenType tags a Token. The set is closed; parsers map every leaf onto one of these.
type TokenType uint16

const (
	TokenUnknown TokenType = iota
	TokenEndOfFile
	TokenWhitespace
	TokenComment
	TokenDocumentComment
	TokenOpenTag
	TokenOpenTagEcho
	TokenCloseTag
	TokenText
	TokenName
	TokenVariableName
	TokenIntegerLiteral
	TokenFloatingLiteral
	TokenStringLiteral
	TokenHeredoc
	TokenStartHeredoc
	TokenEndHeredoc
	TokenEncapsulatedAndWhitespace
	TokenDoubleQuote
	TokenBacktick
	TokenCurlyOpen
	TokenDollarCurlyOpen
	TokenArrayCast
	TokenBooleanCast
	TokenFloatCast
	TokenIntegerCast
	TokenObjectCast
	TokenStringCast
	TokenUnsetCast
	TokenOpenBrace
	TokenCloseBrace
	TokenOpenParenthesis
	TokenCloseParenthesis
	TokenOpenBracket
	TokenCloseBracket
	TokenSemicolon
	TokenComma
	TokenColon
	TokenColonColon
	TokenArrow
	TokenNullsafeArrow
	TokenFatArrow
	TokenBackslash
	TokenDollar
	TokenAmpersand
	TokenPlus
	TokenMinus
	TokenAsterisk
	TokenForwardSlash
	TokenPercent
	TokenAsteriskAsterisk
	TokenDot
	TokenEquals
	TokenPlusEquals
	TokenMinusEquals
	TokenAsteriskEquals
	TokenAsteriskAsteriskEquals
	TokenForwardSlashEquals
	TokenDotEquals
	TokenPercentEquals
	TokenAmpersandEquals
	TokenBarEquals
	TokenCaretEquals
	TokenLessThanLessThanEquals
	TokenGreaterThanGreaterThanEquals
	TokenQuestionQuestionEquals
	TokenEqualsEquals
	TokenEqualsEqualsEquals
	TokenExclamationEquals
	TokenExclamationEqualsEquals
	TokenLessThan
	TokenGreaterThan
	TokenLessThanEquals
	TokenGreaterThanEquals
	TokenSpaceship
	TokenAmpersandAmpersand
	TokenBarBar
	TokenQuestionQuestion
	TokenBar
	TokenCaret
	TokenLessThanLessThan
	TokenGreaterThanGreaterThan
	TokenExclamation
	TokenTilde
	TokenAtSymbol
	TokenQuestion
	TokenPlusPlus
	TokenMinusMinus
	TokenEllipsis
	TokenAttributeStart
	TokenAbstract
	TokenAnd
	TokenArray
	TokenAs
	TokenBreak
	TokenCallable
	TokenCase
	TokenCatch
	TokenClass
	TokenClone
	TokenConst
	TokenContinue
	TokenDeclare
	TokenDefault
	TokenDo
	TokenEcho
	TokenElse
	TokenElseIf
	TokenEmpty
	TokenEndDeclare
	TokenEndFor
	TokenEndForeach
	TokenEndIf
	TokenEndSwitch
	TokenEndWhile
	TokenEnum
	TokenEval
	TokenExit
	TokenExtends
	TokenFinal
	TokenFinally
	TokenFn
	TokenFor
	TokenForeach
	TokenFunction
	TokenGlobal
	TokenGoto
	TokenIf
	TokenImplements
	TokenInclude
	TokenIncludeOnce
	TokenInstanceOf
	TokenInsteadOf
	TokenInterface
	TokenIsset
	TokenList
	TokenMatch
	TokenNamespace
	TokenNew
	TokenOr
	TokenPrint
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenReadonly
	TokenRequire
	TokenRequireOnce
	TokenReturn
	TokenStatic
	TokenSwitch
	TokenThrow
	TokenTrait
	TokenTry
	TokenUnset
	TokenUse
	TokenVar
	TokenWhile
	TokenXor
	TokenYield
	TokenYieldFrom
)

var tokenTypeNames = [...]string{
	TokenUnknown:                      "Unknown",
	TokenEndOfFile:                    "EndOfFile",
	TokenWhitespace:                   "Whitespace",
	TokenComment:                      "Comment",
	TokenDocumentComment:              "DocumentComment",
	TokenOpenTag:                      "OpenTag",
	TokenOpenTagEcho:                  "OpenTagEcho",
	TokenCloseTag:                     "CloseTag",
	TokenText:                         "Text",
	TokenName:                         "Name",
	TokenVariableName:                 "VariableName",
	TokenIntegerLiteral:               "IntegerLiteral",
	TokenFloatingLiteral:              "FloatingLiteral",
	TokenStringLiteral:                "StringLiteral",
	TokenHeredoc:                      "Heredoc",
	TokenStartHeredoc:                 "StartHeredoc",
	TokenEndHeredoc:                   "EndHeredoc",
	TokenEncapsulatedAndWhitespace:    "EncapsulatedAndWhitespace",
	TokenDoubleQuote:                  "DoubleQuote",
	TokenBacktick:                     "Backtick",
	TokenCurlyOpen:                    "CurlyOpen",
	TokenDollarCurlyOpen:              "DollarCurlyOpen",
	TokenArrayCast:                    "ArrayCast",
	TokenBooleanCast:                  "BooleanCast",
	TokenFloatCast:                    "FloatCast",
	TokenIntegerCast:                  "IntegerCast",
	TokenObjectCast:                   "ObjectCast",
	TokenStringCast:                   "StringCast",
	TokenUnsetCast:                    "UnsetCast",
	TokenOpenBrace:                    "OpenBrace",
	TokenCloseBrace:                   "CloseBrace",
	TokenOpenParenthesis:              "OpenParenthesis",
	TokenCloseParenthesis:             "CloseParenthesis",
	TokenOpenBracket:                  "OpenBracket",
	TokenCloseBracket:                 "CloseBracket",
	TokenSemicolon:                    "Semicolon",
	TokenComma:                        "Comma",
	TokenColon:                        "Colon",
	TokenColonColon:                   "ColonColon",
	TokenArrow:                        "Arrow",
	TokenNullsafeArrow:                "NullsafeArrow",
	TokenFatArrow:                     "FatArrow",
	TokenBackslash:                    "Backslash",
	TokenDollar:                       "Dollar",
	TokenAmpersand:                    "Ampersand",
	TokenPlus:                         "Plus",
	TokenMinus:                        "Minus",
	TokenAsterisk:                     "Asterisk",
	TokenForwardSlash:                 "ForwardSlash",
	TokenPercent:                      "Percent",
	TokenAsteriskAsterisk:             "AsteriskAsterisk",
	TokenDot:                          "Dot",
	TokenEquals:                       "Equals",
	TokenPlusEquals:                   "PlusEquals",
	TokenMinusEquals:                  "MinusEquals",
	TokenAsteriskEquals:               "AsteriskEquals",
	TokenAsteriskAsteriskEquals:       "AsteriskAsteriskEquals",
	TokenForwardSlashEquals:           "ForwardSlashEquals",
	TokenDotEquals:                    "DotEquals",
	TokenPercentEquals:                "PercentEquals",
	TokenAmpersandEquals:              "AmpersandEquals",
	TokenBarEquals:                    "BarEquals",
	TokenCaretEquals:                  "CaretEquals",
	TokenLessThanLessThanEquals:       "LessThanLessThanEquals",
	TokenGreaterThanGreaterThanEquals: "GreaterThanGreaterThanEquals",
	TokenQuestionQuestionEquals:       "QuestionQuestionEquals",
	TokenEqualsEquals:                 "EqualsEquals",
	TokenEqualsEqualsEquals:           "EqualsEqualsEquals",
	TokenExclamationEquals:            "ExclamationEquals",
	TokenExclamationEqualsEquals:      "ExclamationEqualsEquals",
	TokenLessThan:                     "LessThan",
	TokenGreaterThan:                  "GreaterThan",
	TokenLessThanEquals:               "LessThanEquals",
	TokenGreaterThanEquals:            "GreaterThanEquals",
	TokenSpaceship:                    "Spaceship",
	TokenAmpersandAmpersand:           "AmpersandAmpersand",
	TokenBarBar:                       "BarBar",
	TokenQuestionQuestion:             "QuestionQuestion",
	TokenBar:                          "Bar",
	TokenCaret:                        "Caret",
	TokenLessThanLessThan:             "LessThanLessThan",
	TokenGreaterThanGreaterThan:       "GreaterThanGreaterThan",
	TokenExclamation:                  "Exclamation",
	TokenTilde:                        "Tilde",
	TokenAtSymbol:                     "AtSymbol",
	TokenQuestion:                     "Question",
	TokenPlusPlus:                     "PlusPlus",
	TokenMinusMinus:                   "MinusMinus",
	TokenEllipsis:                     "Ellipsis",
	TokenAttributeStart:               "AttributeStart",
	TokenAbstract:                     "Abstract",
	TokenAnd:                          "And",
	TokenArray:                        "Array",
	TokenAs:                           "As",
	TokenBreak:                        "Break",
	TokenCallable:                     "Callable",
	TokenCase:                         "Case",
	TokenCatch:                        "Catch",
	TokenClass:                        "Class",
	TokenClone:                        "Clone",
	TokenConst:                        "Const",
	TokenContinue:                     "Continue",
	TokenDeclare:                      "Declare",
	TokenDefault:                      "Default",
	TokenDo:                           "Do",
	TokenEcho:                         "Echo",
	TokenElse:                         "Else",
	TokenElseIf:                       "ElseIf",
	TokenEmpty:                        "Empty",
	TokenEndDeclare:                   "EndDeclare",
	TokenEndFor:                       "EndFor",
	TokenEndForeach:                   "EndForeach",
	TokenEndIf:                        "EndIf",
	TokenEndSwitch:                    "EndSwitch",
	TokenEndWhile:                     "EndWhile",
	TokenEnum:                         "Enum",
	TokenEval:                         "Eval",
	TokenExit:                         "Exit",
	TokenExtends:                      "Extends",
	TokenFinal:                        "Final",
	TokenFinally:                      "Finally",
	TokenFn:                           "Fn",
	TokenFor:                          "For",
	TokenForeach:                      "Foreach",
	TokenFunction:                     "Function",
	TokenGlobal:                       "Global",
	TokenGoto:                         "Goto",
	TokenIf:                           "If",
	TokenImplements:                   "Implements",
	TokenInclude:                      "Include",
	TokenIncludeOnce:                  "IncludeOnce",
	TokenInstanceOf:                   "InstanceOf",
	TokenInsteadOf:                    "InsteadOf",
	TokenInterface:                    "Interface",
	TokenIsset:                        "Isset",
	TokenList:                         "List",
	TokenMatch:                        "Match",
	TokenNamespace:                    "Namespace",
	TokenNew:                          "New",
	TokenOr:                           "Or",
	TokenPrint:                        "Print",
	TokenPrivate:                      "Private",
	TokenProtected:                    "Protected",
	TokenPublic:                       "Public",
	TokenReadonly:                     "Readonly",
	TokenRequire:                      "Require",
	TokenRequireOnce:                  "RequireOnce",
	TokenReturn:                       "Return",
	TokenStatic:                       "Static",
	TokenSwitch:                       "Switch",
	TokenThrow:                        "Throw",
	TokenTrait:                        "Trait",
	TokenTry:                          "Try",
	TokenUnset:                        "Unset",
	TokenUse:                          "Use",
	TokenVar:                          "Var",
	TokenWhile:                        "While",
	TokenXor:                          "Xor",
	TokenYield:                        "Yield",
	TokenYieldFrom:                    "YieldFrom",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}
