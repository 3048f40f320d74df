package javaparser

import (
	"fmt"
	"strings"
)

// TokenKind classifies a lexical token
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenString
	TokenChar
	TokenNumber
	TokenPunct
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "IDENT"
	case TokenString:
		return "STRING"
	case TokenChar:
		return "CHAR"
	case TokenNumber:
		return "NUMBER"
	case TokenPunct:
		return "PUNCT"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit with its byte span in the source
type Token struct {
	Kind TokenKind
	Text string // Literal source text (string literals keep their quotes)
	Pos  int    // Byte offset of the first character
	End  int    // Byte offset just past the last character
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Pos)
}

// is reports whether the token is the given punctuation or identifier text
func (t Token) is(text string) bool {
	return (t.Kind == TokenPunct || t.Kind == TokenIdent) && t.Text == text
}

// Tokenize splits Java source into tokens.
// Comments and whitespace are dropped. Punctuation is always emitted one
// character at a time so ">>" closes two generic argument lists.
func Tokenize(src string) []Token {
	var tokens []Token
	i := 0
	n := len(src)

	for i < n {
		c := src[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			i++

		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < n && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				i = n
			} else {
				i += 2 + end + 2
			}

		case c == '"':
			start := i
			if strings.HasPrefix(src[i:], `"""`) {
				end := strings.Index(src[i+3:], `"""`)
				if end < 0 {
					i = n
				} else {
					i += 3 + end + 3
				}
			} else {
				i = scanQuoted(src, i, '"')
			}
			tokens = append(tokens, Token{Kind: TokenString, Text: src[start:i], Pos: start, End: i})

		case c == '\'':
			start := i
			i = scanQuoted(src, i, '\'')
			tokens = append(tokens, Token{Kind: TokenChar, Text: src[start:i], Pos: start, End: i})

		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenIdent, Text: src[start:i], Pos: start, End: i})

		case c >= '0' && c <= '9':
			start := i
			for i < n && (isIdentPart(src[i]) || src[i] == '.') {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: src[start:i], Pos: start, End: i})

		default:
			tokens = append(tokens, Token{Kind: TokenPunct, Text: src[i : i+1], Pos: i, End: i + 1})
			i++
		}
	}

	tokens = append(tokens, Token{Kind: TokenEOF, Pos: n, End: n})
	return tokens
}

// scanQuoted returns the offset just past the closing quote (or end of line)
func scanQuoted(src string, start int, quote byte) int {
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			return i
		}
		i++
	}
	return len(src)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
