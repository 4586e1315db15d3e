package phrase

import "strings"

// fixedTokens maps the spelling of punctuation, operators and keywords to their type.
// Keywords are stored lower case.
var fixedTokens = map[string]TokenType{
	"{":   TokenOpenBrace,
	"}":   TokenCloseBrace,
	"(":   TokenOpenParenthesis,
	")":   TokenCloseParenthesis,
	"[":   TokenOpenBracket,
	"]":   TokenCloseBracket,
	";":   TokenSemicolon,
	",":   TokenComma,
	":":   TokenColon,
	"::":  TokenColonColon,
	"->":  TokenArrow,
	"?->": TokenNullsafeArrow,
	"=>":  TokenFatArrow,
	"\\":  TokenBackslash,
	"$":   TokenDollar,
	"&":   TokenAmpersand,
	"+":   TokenPlus,
	"-":   TokenMinus,
	"*":   TokenAsterisk,
	"/":   TokenForwardSlash,
	"%":   TokenPercent,
	"**":  TokenAsteriskAsterisk,
	".":   TokenDot,
	"=":   TokenEquals,
	"+=":  TokenPlusEquals,
	"-=":  TokenMinusEquals,
	"*=":  TokenAsteriskEquals,
	"**=": TokenAsteriskAsteriskEquals,
	"/=":  TokenForwardSlashEquals,
	".=":  TokenDotEquals,
	"%=":  TokenPercentEquals,
	"&=":  TokenAmpersandEquals,
	"|=":  TokenBarEquals,
	"^=":  TokenCaretEquals,
	"<<=": TokenLessThanLessThanEquals,
	">>=": TokenGreaterThanGreaterThanEquals,
	"??=": TokenQuestionQuestionEquals,
	"==":  TokenEqualsEquals,
	"===": TokenEqualsEqualsEquals,
	"!=":  TokenExclamationEquals,
	"<>":  TokenExclamationEquals,
	"!==": TokenExclamationEqualsEquals,
	"<":   TokenLessThan,
	">":   TokenGreaterThan,
	"<=":  TokenLessThanEquals,
	">=":  TokenGreaterThanEquals,
	"<=>": TokenSpaceship,
	"&&":  TokenAmpersandAmpersand,
	"||":  TokenBarBar,
	"??":  TokenQuestionQuestion,
	"|":   TokenBar,
	"^":   TokenCaret,
	"<<":  TokenLessThanLessThan,
	">>":  TokenGreaterThanGreaterThan,
	"!":   TokenExclamation,
	"~":   TokenTilde,
	"@":   TokenAtSymbol,
	"?":   TokenQuestion,
	"++":  TokenPlusPlus,
	"--":  TokenMinusMinus,
	"...": TokenEllipsis,
	"#[":  TokenAttributeStart,
	"?>":  TokenCloseTag,
	"<?=": TokenOpenTagEcho,
	"\"":  TokenDoubleQuote,
	"`":   TokenBacktick,
	"${":  TokenDollarCurlyOpen,

	"abstract":     TokenAbstract,
	"and":          TokenAnd,
	"array":        TokenArray,
	"as":           TokenAs,
	"break":        TokenBreak,
	"callable":     TokenCallable,
	"case":         TokenCase,
	"catch":        TokenCatch,
	"class":        TokenClass,
	"clone":        TokenClone,
	"const":        TokenConst,
	"continue":     TokenContinue,
	"declare":      TokenDeclare,
	"default":      TokenDefault,
	"do":           TokenDo,
	"echo":         TokenEcho,
	"else":         TokenElse,
	"elseif":       TokenElseIf,
	"empty":        TokenEmpty,
	"enddeclare":   TokenEndDeclare,
	"endfor":       TokenEndFor,
	"endforeach":   TokenEndForeach,
	"endif":        TokenEndIf,
	"endswitch":    TokenEndSwitch,
	"endwhile":     TokenEndWhile,
	"enum":         TokenEnum,
	"eval":         TokenEval,
	"exit":         TokenExit,
	"die":          TokenExit,
	"extends":      TokenExtends,
	"final":        TokenFinal,
	"finally":      TokenFinally,
	"fn":           TokenFn,
	"for":          TokenFor,
	"foreach":      TokenForeach,
	"function":     TokenFunction,
	"global":       TokenGlobal,
	"goto":         TokenGoto,
	"if":           TokenIf,
	"implements":   TokenImplements,
	"include":      TokenInclude,
	"include_once": TokenIncludeOnce,
	"instanceof":   TokenInstanceOf,
	"insteadof":    TokenInsteadOf,
	"interface":    TokenInterface,
	"isset":        TokenIsset,
	"list":         TokenList,
	"match":        TokenMatch,
	"namespace":    TokenNamespace,
	"new":          TokenNew,
	"or":           TokenOr,
	"print":        TokenPrint,
	"private":      TokenPrivate,
	"protected":    TokenProtected,
	"public":       TokenPublic,
	"readonly":     TokenReadonly,
	"require":      TokenRequire,
	"require_once": TokenRequireOnce,
	"return":       TokenReturn,
	"static":       TokenStatic,
	"switch":       TokenSwitch,
	"throw":        TokenThrow,
	"trait":        TokenTrait,
	"try":          TokenTry,
	"unset":        TokenUnset,
	"use":          TokenUse,
	"var":          TokenVar,
	"while":        TokenWhile,
	"xor":          TokenXor,
	"yield":        TokenYield,
	"yield from":   TokenYieldFrom,
}

// LookupToken returns the type of a punctuation, operator or keyword spelling.
// Keywords match case-insensitively.
func LookupToken(text string) (TokenType, bool) {
	if t, ok := fixedTokens[text]; ok {
		return t, true
	}
	t, ok := fixedTokens[strings.ToLower(text)]
	return t, ok
}

// IsCast reports whether t is one of the cast operators
func (t TokenType) IsCast() bool {
	switch t {
	case TokenArrayCast, TokenBooleanCast, TokenFloatCast, TokenIntegerCast,
		TokenObjectCast, TokenStringCast, TokenUnsetCast:
		return true
	}
	return false
}

// CastType returns the cast token type for the type name written inside a cast,
// such as "int" in "(int)".
func CastType(name string) (TokenType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "array":
		return TokenArrayCast, true
	case "bool", "boolean":
		return TokenBooleanCast, true
	case "float", "double", "real":
		return TokenFloatCast, true
	case "int", "integer":
		return TokenIntegerCast, true
	case "object":
		return TokenObjectCast, true
	case "string", "binary":
		return TokenStringCast, true
	case "unset":
		return TokenUnsetCast, true
	}
	return TokenUnknown, false
}
