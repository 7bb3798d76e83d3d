package interpreter

import (
	"strconv"
	"strings"

	"github.com/brycegallo/C-Lisp/pkg/parser"
)

// Read converts a parse tree into a Value tree. The node is borrowed only for
// the duration of the call; the returned tree shares nothing with it.
func Read(node *parser.Node) *Value {
	tag := node.Tag()

	if strings.Contains(tag, "number") {
		return readNumber(node.Contents())
	}

	if strings.Contains(tag, "symbol") {
		return NewSymbol(node.Contents())
	}

	// the parse root and sexpr nodes both collect their children into an
	// expression; bracket characters and regex anchors are grammar noise
	expr := NewExpression()
	for _, child := range node.Children() {
		if child.Contents() == "(" || child.Contents() == ")" {
			continue
		}
		if child.Tag() == parser.TagRegex {
			continue
		}

		expr.Append(Read(child))
	}

	return expr
}

func readNumber(contents string) *Value {
	n, err := strconv.ParseInt(contents, 10, 64)
	if err != nil {
		return NewError("invalid number")
	}

	return NewNumber(n)
}
