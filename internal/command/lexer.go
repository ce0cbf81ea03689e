// ============================================================================
// lined - Zeilenorientierter Texteditor
// ============================================================================
//
// Package:     command
// Description: Tokenizer for interpreter input lines
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package command

import (
	"iter"
	"slices"
	"strconv"
)

const (
	quote     = '"'
	separator = ' '
)

// Lexer splits one input line into tokens. Tokens are separated by spaces;
// a double quote toggles a protected span in which spaces are kept. Quote
// characters stay part of the token. An unbalanced quote is not an error:
// the protected span simply runs to the end of the input.
//
// Only the ASCII space separates tokens; tabs are ordinary characters.
type Lexer struct {
	input    string
	position int // current position in input (points to current char)
	readPos  int // current reading position (after current char)
	ch       byte
	inQuotes bool
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Next returns the next token. ok is false once the input is exhausted.
func (l *Lexer) Next() (token string, ok bool) {
	var acc []byte
	for l.position < len(l.input) {
		ch := l.ch
		l.readChar()

		switch {
		case ch == quote:
			acc = append(acc, ch)
			l.inQuotes = !l.inQuotes
		case ch == separator && !l.inQuotes:
			if len(acc) > 0 {
				return string(acc), true
			}
		default:
			acc = append(acc, ch)
		}
	}
	if len(acc) > 0 {
		return string(acc), true
	}
	return "", false
}

// InQuotes reports whether the lexer is inside a quoted span, i.e. whether
// the input seen so far has an unbalanced quote.
func (l *Lexer) InQuotes() bool {
	return l.inQuotes
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// Tokens returns the tokens of input as a single-pass sequence.
func Tokens(input string) iter.Seq[string] {
	return func(yield func(string) bool) {
		l := NewLexer(input)
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize returns all tokens of input.
func Tokenize(input string) []string {
	return slices.Collect(Tokens(input))
}

// IsQuote reports whether token is a quoted argument: at least two
// characters, starting and ending with a double quote. A lone `"` is not.
func IsQuote(token string) bool {
	return len(token) >= 2 && token[0] == quote && token[len(token)-1] == quote
}

// IsNum reports whether the whole token parses as a base-10 integer.
func IsNum(token string) bool {
	_, ok := ParseNum(token)
	return ok
}

// ParseNum parses the whole token as a base-10 integer.
func ParseNum(token string) (int, bool) {
	n, err := strconv.Atoi(token)
	return n, err == nil
}

// Unquote strips the first and last character of token. Callers check
// IsQuote first.
func Unquote(token string) string {
	if len(token) < 2 {
		return ""
	}
	return token[1 : len(token)-1]
}
