package lexer_test

import (
	"testing"

	"github.com/brycegallo/C-Lisp/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func lexAll(input string) (tokens []lexer.Token) {
	l := lexer.NewLexer(input)
	for {
		token := l.NextToken()
		if token == nil {
			return tokens
		}

		tokens = append(tokens, *token)
	}
}

func TestLexExpression(t *testing.T) {
	test := require.New(t)

	test.Equal([]lexer.Token{
		{Typ: lexer.TokenOpenBracket, Val: "("},
		{Typ: lexer.TokenSymbol, Val: "+"},
		{Typ: lexer.TokenNumber, Val: "1"},
		{Typ: lexer.TokenNumber, Val: "22"},
		{Typ: lexer.TokenCloseBracket, Val: ")"},
	}, lexAll("(+ 1 22)"))
}

func TestLexNested(t *testing.T) {
	test := require.New(t)

	test.Equal([]lexer.Token{
		{Typ: lexer.TokenOpenBracket, Val: "("},
		{Typ: lexer.TokenSymbol, Val: "*"},
		{Typ: lexer.TokenNumber, Val: "2"},
		{Typ: lexer.TokenOpenBracket, Val: "("},
		{Typ: lexer.TokenSymbol, Val: "+"},
		{Typ: lexer.TokenNumber, Val: "3"},
		{Typ: lexer.TokenNumber, Val: "4"},
		{Typ: lexer.TokenCloseBracket, Val: ")"},
		{Typ: lexer.TokenCloseBracket, Val: ")"},
	}, lexAll("(* 2 (+ 3 4))"))
}

func TestLexMinus(t *testing.T) {
	test := require.New(t)

	// glued to a digit it is a negative literal
	test.Equal([]lexer.Token{
		{Typ: lexer.TokenNumber, Val: "-5"},
	}, lexAll("-5"))

	// separated it is the subtraction symbol
	test.Equal([]lexer.Token{
		{Typ: lexer.TokenSymbol, Val: "-"},
		{Typ: lexer.TokenNumber, Val: "5"},
	}, lexAll("- 5"))
}

func TestLexIdentifier(t *testing.T) {
	test := require.New(t)

	test.Equal([]lexer.Token{
		{Typ: lexer.TokenOpenBracket, Val: "("},
		{Typ: lexer.TokenSymbol, Val: "+"},
		{Typ: lexer.TokenNumber, Val: "1"},
		{Typ: lexer.TokenSymbol, Val: "foo"},
		{Typ: lexer.TokenCloseBracket, Val: ")"},
	}, lexAll("(+ 1 foo)"))
}

func TestLexWhitespaceOnly(t *testing.T) {
	test := require.New(t)

	test.Empty(lexAll("   \t  "))
}

func TestLexUnbalancedClose(t *testing.T) {
	test := require.New(t)

	tokens := lexAll(")")
	test.Len(tokens, 1)
	test.Equal(lexer.TokenError, tokens[0].Typ)
	test.Equal("unexpected `)`", tokens[0].Val)
}

func TestLexUnterminatedOpen(t *testing.T) {
	test := require.New(t)

	tokens := lexAll("(+ 1 2")
	last := tokens[len(tokens)-1]
	test.Equal(lexer.TokenError, last.Typ)
	test.Equal("unexpected end of input: expected `)` to close `(`", last.Val)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	test := require.New(t)

	tokens := lexAll("(+ 1 #)")
	last := tokens[len(tokens)-1]
	test.Equal(lexer.TokenError, last.Typ)
	test.Equal(`unexpected character '#'`, last.Val)
}
