// Package svgpath interprets SVG path data (the d attribute) and the basic
// shape elements into flat point sequences, one per subpath.
package svgpath

import (
	"strconv"
	"strings"
)

// TokenKind discriminates the two token flavors of path data.
type TokenKind int

const (
	// TokenCommand is a single command letter (MmLlHhVvCcSsQqTtAaZz).
	TokenCommand TokenKind = iota
	// TokenNumber is a numeric literal.
	TokenNumber
)

// Token is one lexical element of a path data string.
type Token struct {
	Kind   TokenKind
	Letter byte    // set for TokenCommand
	Value  float64 // set for TokenNumber
	Text   string  // raw fragment as it appeared in the input
}

const commandLetters = "MmLlHhVvCcSsQqTtAaZz"

// Tokenize splits path data into command letters and numeric literals.
// Literals may be separated by whitespace, commas, or nothing at all: a sign
// or a second decimal point starts the next literal, so "10-5" yields 10 and
// -5, and "1.5.5" yields 1.5 and .5. Unrecognized characters are skipped
// silently; Tokenize never fails.
func Tokenize(d string) []Token {
	var tokens []Token

	for i := 0; i < len(d); {
		c := d[i]
		switch {
		case strings.IndexByte(commandLetters, c) >= 0:
			tokens = append(tokens, Token{Kind: TokenCommand, Letter: c, Text: d[i : i+1]})
			i++
		case c == '+' || c == '-' || c == '.' || isDigit(c):
			end := scanNumber(d, i)
			text := d[i:end]
			i = end

			// a lone sign or dot is not a number; drop it
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				continue
			}

			tokens = append(tokens, Token{Kind: TokenNumber, Value: value, Text: text})
		default:
			// whitespace, commas and anything unrecognized just separate tokens
			i++
		}
	}

	return tokens
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scanNumber returns the index just past one numeric literal starting at i:
// optional sign, digits with at most one dot, optional exponent. A second dot
// or a fresh sign belongs to the next literal.
func scanNumber(d string, i int) int {
	if d[i] == '+' || d[i] == '-' {
		i++
	}

	seenDot := false
	for i < len(d) {
		c := d[i]
		switch {
		case isDigit(c):
			i++
		case c == '.' && !seenDot:
			seenDot = true
			i++
		case c == 'e' || c == 'E':
			return scanExponent(d, i)
		default:
			return i
		}
	}

	return i
}

// scanExponent consumes "e[sign]digits" starting at the e; if no digits
// follow, the e is not part of the number.
func scanExponent(d string, i int) int {
	j := i + 1
	if j < len(d) && (d[j] == '+' || d[j] == '-') {
		j++
	}

	if j >= len(d) || !isDigit(d[j]) {
		return i
	}

	for j < len(d) && isDigit(d[j]) {
		j++
	}

	return j
}
