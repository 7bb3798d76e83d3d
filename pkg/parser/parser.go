// Package parser turns a line of input into a generic syntax tree: each node
// carries a rule tag, the matched text and its ordered children. The tree is
// the hand-off format consumed by the interpreter's reader; its shape follows
// the output a combinator grammar gives for
//
//	number : /-?[0-9]+/ ;
//	symbol : '+' | '-' | '*' | '/' ;
//	sexpr  : '(' <expr>* ')' ;
//	expr   : <number> | <symbol> | <sexpr> ;
//	lispy  : /^/ <expr>* /$/ ;
//
// including the structural noise such grammars emit: pipe-joined tags, "char"
// nodes for the brackets and empty "regex" nodes anchoring the root.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brycegallo/C-Lisp/pkg/lexer"
)

const (
	TagRoot   = ">"
	TagNumber = "expr|number|regex"
	TagSymbol = "expr|symbol"
	TagSexpr  = "expr|sexpr|>"
	TagRegex  = "regex"
	TagChar   = "char"
)

// Node is a single syntax-tree node. Fields are unexported; consumers borrow
// the tree read-only through the accessors.
type Node struct {
	tag      string
	contents string
	children []*Node
}

// NewNode builds a node directly, bypassing the parser.
func NewNode(tag string, contents string, children ...*Node) *Node {
	return &Node{tag: tag, contents: contents, children: children}
}

func (n *Node) Tag() string { return n.tag }

func (n *Node) Contents() string { return n.contents }

func (n *Node) Children() []*Node { return n.children }

// String renders the tree one node per line, indented by depth.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.tag)
	if n.contents != "" {
		fmt.Fprintf(sb, " %q", n.contents)
	}
	sb.WriteByte('\n')

	for _, child := range n.children {
		child.dump(sb, depth+1)
	}
}

type parser struct {
	lex *lexer.Lexer
}

// Parse reads a full line of input and returns the root of its syntax tree.
// A lexing or grammar failure aborts the parse; no partial tree is returned.
func Parse(input string) (*Node, error) {
	p := &parser{lex: lexer.NewLexer(input)}

	root := &Node{tag: TagRoot}
	root.children = append(root.children, &Node{tag: TagRegex})

	for {
		token := p.lex.NextToken()
		if token == nil {
			break
		}

		child, err := p.parseExpr(token)
		if err != nil {
			return nil, err
		}

		root.children = append(root.children, child)
	}

	root.children = append(root.children, &Node{tag: TagRegex})

	return root, nil
}

func (p *parser) parseExpr(token *lexer.Token) (*Node, error) {
	switch token.Typ {

	case lexer.TokenError:
		return nil, errors.New(token.Val)

	case lexer.TokenNumber:
		return &Node{tag: TagNumber, contents: token.Val}, nil

	case lexer.TokenSymbol:
		return &Node{tag: TagSymbol, contents: token.Val}, nil

	case lexer.TokenOpenBracket:
		return p.parseSexpr()

	case lexer.TokenCloseBracket:
		// the lexer rejects unbalanced close brackets before we see them
		return nil, errors.New("unexpected `)`")
	}

	return nil, fmt.Errorf("unknown token %s", token)
}

func (p *parser) parseSexpr() (*Node, error) {
	sexpr := &Node{tag: TagSexpr}
	sexpr.children = append(sexpr.children, &Node{tag: TagChar, contents: "("})

	for {
		token := p.lex.NextToken()
		if token == nil {
			return nil, errors.New("unexpected end of input: expected `)` to close `(`")
		}

		if token.Typ == lexer.TokenCloseBracket {
			sexpr.children = append(sexpr.children, &Node{tag: TagChar, contents: ")"})
			return sexpr, nil
		}

		child, err := p.parseExpr(token)
		if err != nil {
			return nil, err
		}

		sexpr.children = append(sexpr.children, child)
	}
}
