package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const eof rune = -1

const (
	TokenError TokenType = iota // lexing error occured; value is the error message
	TokenEOF
	TokenNumber
	TokenSymbol
	TokenOpenBracket
	TokenCloseBracket
)

type Token struct {
	Typ TokenType
	Val string
}

func (t *Token) String() string {
	switch t.Typ {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return t.Val
	}

	if len(t.Val) > 16 {
		return fmt.Sprintf("%.10q...", t.Val)
	}

	return fmt.Sprintf("%q", t.Val)
}

// Lexer struct

type Lexer struct {
	input  string     // text being lexed
	start  int        // starting position of current token
	pos    int        // current position in the text
	width  int        // width of last read rune
	state  stateFn    // the state function used for lexing
	level  int        // number of lists opened and not closed
	tokens chan Token // output channel of read tokens
}

type stateFn func(*Lexer) stateFn

func (l *Lexer) emit(t TokenType) {
	l.tokens <- Token{t, l.input[l.start:l.pos]}
	l.start = l.pos
}

func (l *Lexer) next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}

	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width

	return r
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFn {
	l.tokens <- Token{TokenError, fmt.Sprintf(format, args...)}
	return nil
}

// consumes the next rune if it's from the valid set
func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}

	l.backup()
	return false
}

// consumes multiple runes from the valid set
func (l *Lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		state:  lexExpr,
		tokens: make(chan Token, 2),
	}

	return l
}

// NextToken returns the next token of the input, or nil once the input is
// exhausted. After a TokenError no further tokens are produced.
func (l *Lexer) NextToken() *Token {
	for {
		select {
		case token := <-l.tokens:
			if token.Typ == TokenEOF {
				return nil
			}

			return &token
		default:
			if l.state == nil {
				return nil
			}
			l.state = l.state(l)
		}
	}
}

/// State functions

func lexExpr(l *Lexer) stateFn {
	for {
		switch r := l.next(); {
		case r == eof:
			if l.level > 0 {
				return l.errorf("unexpected end of input: expected `)` to close `(`")
			}
			l.emit(TokenEOF)
			return nil

		case unicode.IsSpace(r):
			l.ignore()

		case r == '(':
			return lexOpenBracket

		case r == ')':
			return lexCloseBracket

		case r == '-':
			// a minus glued to a digit starts a negative literal,
			// a lone minus is the subtraction symbol
			if isDigit(l.peek()) {
				l.backup()
				return lexNumber
			}
			l.emit(TokenSymbol)
			return lexExpr

		case isDigit(r):
			l.backup()
			return lexNumber

		case unicode.IsLetter(r):
			return lexSymbol

		case r == '+' || r == '*' || r == '/':
			l.emit(TokenSymbol)
			return lexExpr

		default:
			return l.errorf("unexpected character %q", r)
		}
	}
}

func lexOpenBracket(l *Lexer) stateFn {
	l.level++
	l.emit(TokenOpenBracket)
	return lexExpr
}

func lexCloseBracket(l *Lexer) stateFn {
	if l.level == 0 {
		return l.errorf("unexpected `)`")
	}

	l.level--
	l.emit(TokenCloseBracket)
	return lexExpr
}

func lexNumber(l *Lexer) stateFn {
	l.accept("-")
	l.acceptRun("0123456789")

	// digits running into letters make the whole run a symbol
	if unicode.IsLetter(l.peek()) {
		return lexSymbol
	}

	l.emit(TokenNumber)
	return lexExpr
}

func lexSymbol(l *Lexer) stateFn {
	for {
		r := l.next()
		if unicode.IsLetter(r) || isDigit(r) {
			continue
		}

		l.backup()
		l.emit(TokenSymbol)
		return lexExpr
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
