// Package scanner implements a lexical scanner for lox source, reading the raw
// source text and producing a stream of tokens to be consumed by the parser.
//
// The scanner is a state-function based scanner similar to that described by Rob Pike
// in his talk [Lexical Scanning in Go], based on the implementation of text/template in the Go
// standard library.
//
// The scanner proceeds one utf-8 rune at a time until a particular token is recognised,
// the token is then "emitted" onto a small pending queue from which [Scanner.Scan] hands
// tokens out one at a time. The state machine is only advanced when that queue is empty
// so scanning is lazy and runs entirely on the caller's goroutine.
//
// The state of the scanner is maintained between token emits unlike a more conventional
// switch-based scanner that must determine it's current state from scratch in every loop.
//
// Scan errors never stop the scanner, they are recorded as diagnostics and
// the offending input is skipped.
//
// [Lexical Scanning in Go]: https://go.dev/talks/2011/lex.slide#1
package scanner

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"

	"go.followtheprocess.codes/lox/internal/syntax"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

const eof = rune(-1) // eof signifies we have reached the end of the input.

// scanFn represents the state of the scanner as a function that does the work
// associated with the current state, then returns the next state.
type scanFn func(*Scanner) scanFn

// Scanner is the lox source scanner.
type Scanner struct {
	state             scanFn              // The next state to run, nil once EOF has been emitted
	name              string              // Name of the file
	diagnostics       []syntax.Diagnostic // Diagnostics gathered during scanning
	pending           []token.Token       // Tokens emitted but not yet handed out by Scan
	src               []byte              // Raw source text
	eof               token.Token         // The final EOF token, returned forever once reached
	start             int                 // The start position of the current token
	pos               int                 // Current scanner position in src (bytes, 0 indexed)
	line              int                 // Current line number, 1 indexed
	startLine         int                 // Line on which the current token started
	currentLineOffset int                 // Offset at which the current line started
	startLineOffset   int                 // Offset at which the current token's line started
}

// New returns a new [Scanner] ready to scan src.
func New(name string, src []byte) *Scanner {
	return &Scanner{
		state:     scanStart,
		name:      name,
		src:       src,
		line:      1,
		startLine: 1,
	}
}

// Scan scans the input and returns the next token.
//
// Once the end of the input has been reached, every subsequent call
// returns the same [token.EOF] token.
func (s *Scanner) Scan() token.Token {
	for len(s.pending) == 0 && s.state != nil {
		s.state = s.state(s)
	}

	if len(s.pending) == 0 {
		return s.eof
	}

	tok := s.pending[0]
	s.pending = s.pending[1:]

	if tok.Is(token.EOF) {
		s.eof = tok
	}

	return tok
}

// ScanAll scans the entire input, returning every token in order. The returned
// slice always ends with exactly one [token.EOF] token.
func (s *Scanner) ScanAll() []token.Token {
	var tokens []token.Token

	for {
		tok := s.Scan()

		tokens = append(tokens, tok)
		if tok.Is(token.EOF) {
			return tokens
		}
	}
}

// Diagnostics returns the list of diagnostics gathered during scanning.
func (s *Scanner) Diagnostics() []syntax.Diagnostic {
	// Create a copy so caller can't mutate the original diagnostics slice
	diagCopy := make([]syntax.Diagnostic, 0, len(s.diagnostics))
	diagCopy = append(diagCopy, s.diagnostics...)

	return diagCopy
}

// next returns the next utf8 rune in the input, or [eof], and advances the scanner
// over that rune such that successive calls to [Scanner.next] iterate through
// src one rune at a time.
//
// Invalid utf8 is returned as [utf8.RuneError] having advanced over exactly one byte.
func (s *Scanner) next() rune {
	if s.pos >= len(s.src) {
		return eof
	}

	char, width := utf8.DecodeRune(s.src[s.pos:])

	s.pos += width

	if char == '\n' {
		s.line++
		s.currentLineOffset = s.pos
	}

	return char
}

// peek returns the next utf8 rune in the input, or [eof], but does not
// advance the scanner.
//
// Successive calls to peek simply return the same rune again and again.
func (s *Scanner) peek() rune {
	if s.pos >= len(s.src) {
		return eof
	}

	char, _ := utf8.DecodeRune(s.src[s.pos:])

	return char
}

// peekNext returns the rune after the one [Scanner.peek] would return, again
// without advancing the scanner.
func (s *Scanner) peekNext() rune {
	if s.pos >= len(s.src) {
		return eof
	}

	_, width := utf8.DecodeRune(s.src[s.pos:])
	if s.pos+width >= len(s.src) {
		return eof
	}

	char, _ := utf8.DecodeRune(s.src[s.pos+width:])

	return char
}

// rest returns the rest of the input from the current scanner position,
// or nil if the scanner is at EOF.
func (s *Scanner) rest() []byte {
	if s.pos >= len(s.src) {
		return nil
	}

	return s.src[s.pos:]
}

// restHasPrefix reports whether the remainder of the input begins with the
// provided run of characters.
func (s *Scanner) restHasPrefix(prefix string) bool {
	return bytes.HasPrefix(s.rest(), []byte(prefix))
}

// skip ignores any characters for which the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the
// first 'false' char.
//
// The scanner start position is brought up to the current position before returning, effectively
// ignoring everything it's travelled over in the meantime.
func (s *Scanner) skip(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}

	s.ignore()
}

// ignore brings the start of the current token up to the scanner's position, discarding
// everything in between.
func (s *Scanner) ignore() {
	s.start = s.pos
	s.startLine = s.line
	s.startLineOffset = s.currentLineOffset
}

// takeWhile consumes characters so long as the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the first 'false' rune.
func (s *Scanner) takeWhile(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}
}

// takeUntil consumes characters until it hits any of the specified runes.
//
// It stops before it consumes the first specified rune such that after it returns,
// the next call to [Scanner.next] returns the offending rune.
//
//	s.takeUntil('\n', eof) // Consume runes until you hit a newline or the end of the input
func (s *Scanner) takeUntil(runes ...rune) {
	for {
		next := s.peek()
		if slices.Contains(runes, next) {
			return
		}
		// Otherwise, advance the scanner
		s.next()
	}
}

// takeExact consumes exactly the provided text if it is the very next thing
// the scanner encounters, reporting whether it did so.
//
// If the next characters in src do not match, this is a no-op.
func (s *Scanner) takeExact(match string) bool {
	if !s.restHasPrefix(match) {
		return false
	}

	for range match {
		s.next()
	}

	return true
}

// emit adds a token to the pending queue, using the scanner's internal
// state to populate position information.
func (s *Scanner) emit(kind token.Kind) {
	s.emitToken(token.Token{Kind: kind})
}

// emitToken fills in the position information on tok and adds it to the
// pending queue. Literal payloads are left as the caller set them.
func (s *Scanner) emitToken(tok token.Token) {
	tok.Lexeme = string(s.src[s.start:s.pos])
	tok.Line = s.startLine
	tok.Start = s.start
	tok.End = s.pos

	s.pending = append(s.pending, tok)

	s.ignore()
}

// error records a diagnostic for the text between the start of the current token
// and the scanner's position, then discards that text.
func (s *Scanner) error(msg string) {
	// Column is the number of bytes between the last newline and the current position
	// +1 because columns are 1 indexed
	startCol := 1 + s.start - s.startLineOffset
	endCol := 1 + s.pos - s.currentLineOffset

	position := syntax.Position{
		Name:     s.name,
		Offset:   s.start,
		Line:     s.line,
		StartCol: startCol,
		EndCol:   endCol,
	}

	diag := syntax.Diagnostic{
		Position: position,
		Msg:      msg,
	}

	s.diagnostics = append(s.diagnostics, diag)

	s.ignore()
}

// errorf calls error with a formatted message.
func (s *Scanner) errorf(format string, a ...any) {
	s.error(fmt.Sprintf(format, a...))
}

// scanStart is the initial state of the scanner, and the state it returns
// to between tokens.
func scanStart(s *Scanner) scanFn {
	s.skip(isSpace)

	char := s.next()
	switch char {
	case eof:
		s.emit(token.EOF)
		return nil
	case '(':
		s.emit(token.LeftParen)
	case ')':
		s.emit(token.RightParen)
	case '{':
		s.emit(token.LeftBrace)
	case '}':
		s.emit(token.RightBrace)
	case ',':
		s.emit(token.Comma)
	case '.':
		s.emit(token.Dot)
	case '-':
		s.emit(token.Minus)
	case '+':
		s.emit(token.Plus)
	case ';':
		s.emit(token.Semicolon)
	case '*':
		s.emit(token.Star)
	case '!':
		s.emitEither("=", token.BangEqual, token.Bang)
	case '=':
		s.emitEither("=", token.EqualEqual, token.Equal)
	case '<':
		s.emitEither("=", token.LessEqual, token.Less)
	case '>':
		s.emitEither("=", token.GreaterEqual, token.Greater)
	case '/':
		if s.peek() == '/' {
			return scanComment
		}

		s.emit(token.Slash)
	case '"':
		return scanString
	default:
		switch {
		case isDigit(char):
			return scanNumber
		case isAlpha(char):
			return scanIdent
		case char == utf8.RuneError && s.pos-s.start == 1:
			s.errorf("Unexpected character: '\\x%02x'.", s.src[s.start])
		default:
			s.errorf("Unexpected character: '%c'.", char)
		}
	}

	return scanStart
}

// emitEither emits two if the next characters are exactly match, consuming them,
// and one otherwise. This is the maximal munch rule for the two character operators.
func (s *Scanner) emitEither(match string, two, one token.Kind) {
	if s.takeExact(match) {
		s.emit(two)
		return
	}

	s.emit(one)
}

// scanComment scans a '//' line comment, discarding it.
//
// The first '/' has already been consumed.
func scanComment(s *Scanner) scanFn {
	// Absorb the whole line as the comment, the newline is handled as
	// whitespace by scanStart
	s.takeUntil('\n', eof)
	s.ignore()

	return scanStart
}

// scanString scans a '"' delimited string literal, which may span multiple lines.
//
// The opening quote has already been consumed.
func scanString(s *Scanner) scanFn {
	s.takeUntil('"', eof)

	if s.peek() == eof {
		s.error("Unterminated string.")
		return scanStart
	}

	// The closing quote
	s.next()

	s.emitToken(token.Token{
		Kind: token.String,
		Text: string(s.src[s.start+1 : s.pos-1]),
	})

	return scanStart
}

// scanNumber scans a number literal, an integer part optionally followed
// by a '.' and a fractional part.
//
// A trailing '.' with no digits after it is not part of the number.
//
// The first digit has already been consumed.
func scanNumber(s *Scanner) scanFn {
	s.takeWhile(isDigit)

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.next() // The '.'
		s.takeWhile(isDigit)
	}

	// Only ever digits with an optional '.' in the middle so the only possible
	// error is out of range, in which case number is +Inf
	number, _ := strconv.ParseFloat(string(s.src[s.start:s.pos]), 64)

	s.emitToken(token.Token{Kind: token.Number, Number: number})

	return scanStart
}

// scanIdent scans an identifier or keyword.
//
// The first character has already been consumed.
func scanIdent(s *Scanner) scanFn {
	s.takeWhile(isIdent)

	kind, _ := token.Keyword(string(s.src[s.start:s.pos]))
	s.emit(kind)

	return scanStart
}

// isAlpha reports whether r is a valid first character of an identifier.
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// isIdent reports whether r is a valid identifier character.
func isIdent(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

// isDigit reports whether r is a valid ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSpace reports whether r is whitespace that separates tokens.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
