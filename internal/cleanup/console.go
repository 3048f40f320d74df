package cleanup

import (
	"regexp"
	"strings"
)

var consoleCallPattern = regexp.MustCompile(`\bconsole\.(log|error|warn|info)\s*\(`)

// StripConsoleCalls removes console.log/error/warn/info calls together with
// their argument list and a directly following semicolon. Parentheses inside
// string and template literals are ignored. A call whose closing parenthesis
// is missing is left in place.
func StripConsoleCalls(src string) (string, bool) {
	matches := consoleCallPattern.FindAllStringIndex(src, -1)
	if len(matches) == 0 {
		return src, false
	}

	var sb strings.Builder
	last := 0
	modified := false

	for _, m := range matches {
		if m[0] < last {
			// nested inside a call that was already removed
			continue
		}
		end, ok := closingParen(src, m[1])
		if !ok {
			continue
		}
		if end < len(src) && src[end] == ';' {
			end++
		}

		sb.WriteString(src[last:m[0]])
		last = end
		modified = true
	}

	if !modified {
		return src, false
	}
	sb.WriteString(src[last:])
	return sb.String(), true
}

// closingParen returns the offset just past the parenthesis that closes the
// one opened right before pos.
func closingParen(src string, pos int) (int, bool) {
	depth := 1
	for i := pos; i < len(src); i++ {
		switch c := src[i]; c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case '"', '\'', '`':
			i = skipLiteral(src, i, c)
		}
	}
	return 0, false
}

// skipLiteral returns the offset of the quote closing the literal at start
func skipLiteral(src string, start int, quote byte) int {
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i
		case '\n':
			if quote != '`' {
				return i
			}
		}
	}
	return len(src)
}
