package tokenizer

import (
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

const symbolChars = "+-*/:;=(){}[]<>"

// Tokenizer is a tokenizer that returns an iterator
type Tokenizer struct {
	input string
	label string
}

// NewTokenizer creates a new Tokenizer. label is only used in error messages
// and is conventionally the file name.
func NewTokenizer(input, label string) *Tokenizer {
	return &Tokenizer{
		input: input,
		label: label,
	}
}

// Tokenize converts source text into tokens in encounter order.
func Tokenize(input, label string) ([]Token, error) {
	return NewTokenizer(input, label).AllTokens()
}

// Tokens returns an iterator of tokens. Errors are fatal: after the first
// error the iterator stops.
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := newTokenizer(t.input, t.label)

		for {
			token, ok, err := tokenizer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if !ok {
				return
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice
func (t *Tokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal tokenizer implementation
type tokenizer struct {
	input   string
	label   string
	offset  int
	line    int
	column  int
	current rune
	width   int
}

func newTokenizer(input, label string) *tokenizer {
	t := &tokenizer{input: input, label: label}
	t.decode()

	return t
}

// decode loads the rune at the current offset
func (t *tokenizer) decode() {
	if t.offset >= len(t.input) {
		t.current = 0
		t.width = 0

		return
	}

	t.current, t.width = utf8.DecodeRuneInString(t.input[t.offset:])
}

// readChar consumes the current character
func (t *tokenizer) readChar() {
	if t.eof() {
		return
	}

	if t.current == '\n' {
		t.line++
		t.column = 0
	} else {
		t.column++
	}

	t.offset += t.width
	t.decode()
}

func (t *tokenizer) eof() bool {
	return t.offset >= len(t.input)
}

func (t *tokenizer) position() Position {
	return Position{Offset: t.offset, Line: t.line, Column: t.column}
}

// nextToken gets the next token. ok is false at end of input.
func (t *tokenizer) nextToken() (token Token, ok bool, err error) {
	for !t.eof() {
		switch {
		case t.current == '"':
			token, err = t.readString()
			return token, err == nil, err
		case isLetter(t.current):
			return t.readWord(), true, nil
		case isDigit(t.current):
			return t.readNumber(), true, nil
		case isWhitespace(t.current):
			t.readChar()
		case isSymbol(t.current):
			token, ok = t.readSymbol()
			if ok {
				return token, true, nil
			}
		default:
			err := newLexError(ErrUnexpectedCharacter, t.label, t.position(), t.current)
			err.Text = t.input[t.offset : t.offset+t.width]

			return Token{}, false, err
		}
	}

	return Token{}, false, nil
}

// readString reads a double quoted string literal
func (t *tokenizer) readString() (Token, error) {
	start := t.position()

	t.readChar() // opening quote
	contentStart := t.offset

	for !t.eof() && t.current != '"' {
		t.readChar()
	}

	if t.eof() {
		return Token{}, newLexError(ErrUnterminatedString, t.label, start, '"')
	}

	value := t.input[contentStart:t.offset]
	t.readChar() // closing quote

	return Token{
		Kind:     String,
		Value:    value,
		Text:     t.input[start.Offset:t.offset],
		Position: start,
	}, nil
}

// readWord reads keywords and identifiers
func (t *tokenizer) readWord() Token {
	start := t.position()

	for !t.eof() && (isLetter(t.current) || isDigit(t.current)) {
		t.readChar()
	}

	word := t.input[start.Offset:t.offset]
	kind := Identifier

	if IsKeyword(word) {
		kind = Keyword
	}

	return Token{
		Kind:     kind,
		Value:    word,
		Text:     word,
		Position: start,
	}
}

// readNumber reads digits and dots. The buffer is not validated.
func (t *tokenizer) readNumber() Token {
	start := t.position()

	for !t.eof() && (isDigit(t.current) || t.current == '.') {
		t.readChar()
	}

	text := t.input[start.Offset:t.offset]

	return Token{
		Kind:     Number,
		Value:    text,
		Number:   parseLenientFloat(text),
		Text:     text,
		Position: start,
	}
}

// readSymbol merges adjacent symbol characters into one token. When the
// buffer becomes exactly "//" the rest of the line is a comment and no token
// is produced.
func (t *tokenizer) readSymbol() (Token, bool) {
	start := t.position()

	for !t.eof() && isSymbol(t.current) {
		t.readChar()

		if t.input[start.Offset:t.offset] == "//" {
			t.skipLineComment()
			return Token{}, false
		}
	}

	text := t.input[start.Offset:t.offset]

	return Token{
		Kind:     Symbol,
		Value:    text,
		Text:     text,
		Position: start,
	}, true
}

// skipLineComment discards characters through the next newline
func (t *tokenizer) skipLineComment() {
	for !t.eof() && t.current != '\n' {
		t.readChar()
	}

	t.readChar()
}

// parseLenientFloat parses the longest numeric prefix of s, so "1.2.3" is 1.2.
// s only contains digits and dots and starts with a digit.
func parseLenientFloat(s string) float64 {
	end := 0
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}

	if end < len(s) && s[end] == '.' {
		fraction := end + 1
		for fraction < len(s) && isDigit(rune(s[fraction])) {
			fraction++
		}

		if fraction > end+1 {
			end = fraction
		}
	}

	// out of range inputs still yield ±Inf
	value, _ := strconv.ParseFloat(s[:end], 64)

	return value
}

func isLetter(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isSymbol(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune(symbolChars, r)
}
