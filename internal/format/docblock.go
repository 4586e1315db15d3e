package format

import "regexp"

// continuationLine matches a line break and the whitespace before the * that
// continues a block comment
var continuationLine = regexp.MustCompile(`(\r\n|\r|\n)[ \t]*\*`)

// reflowComment aligns the * of every continuation line in a block comment one
// space right of indent. It reports whether the text changed.
func reflowComment(text, indent string) (string, bool) {
	reflowed := continuationLine.ReplaceAllStringFunc(text, func(match string) string {
		eol := match[:1]
		if len(match) > 1 && match[0] == '\r' && match[1] == '\n' {
			eol = "\r\n"
		}
		return eol + indent + " *"
	})
	return reflowed, reflowed != text
}
