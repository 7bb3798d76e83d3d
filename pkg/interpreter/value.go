package interpreter

import (
	"strconv"
)

// ValueType tags the variant held by a Value.
type ValueType int

const (
	TypeNumber ValueType = iota
	TypeError
	TypeSymbol
	TypeExpression
)

// Value is the result of reading or evaluating a syntax tree: a number, an
// error carrying its message, an operator symbol, or an expression owning an
// ordered list of child Values. Exactly one variant is populated; a Value
// never changes variant after construction.
type Value struct {
	typ      ValueType
	number   int64
	text     string // error message or symbol text
	children []*Value
}

func NewNumber(n int64) *Value {
	return &Value{typ: TypeNumber, number: n}
}

func NewError(msg string) *Value {
	return &Value{typ: TypeError, text: msg}
}

func NewSymbol(sym string) *Value {
	return &Value{typ: TypeSymbol, text: sym}
}

func NewExpression(children ...*Value) *Value {
	return &Value{typ: TypeExpression, children: children}
}

func (v *Value) Type() ValueType { return v.typ }

// Number returns the numeric payload of a TypeNumber value.
func (v *Value) Number() int64 { return v.number }

// Text returns the string payload: an error's message or a symbol's text.
func (v *Value) Text() string { return v.text }

func (v *Value) Children() []*Value { return v.children }

// Append takes ownership of child, adding it to the end of an expression's
// child list.
func (v *Value) Append(child *Value) {
	if v.typ != TypeExpression {
		panic("cannot append to a non-expression value")
	}

	v.children = append(v.children, child)
}

func (v *Value) String() string {
	switch v.typ {

	case TypeNumber:
		return strconv.FormatInt(v.number, 10)

	case TypeError:
		return "Error: " + v.text

	case TypeSymbol:
		return v.text

	case TypeExpression:
		res := "("
		for i, child := range v.children {
			if i != 0 {
				res += " "
			}
			res += child.String()
		}

		return res + ")"
	}

	return "unknown value"
}

// Line renders the value as a display line, with the trailing newline.
func (v *Value) Line() string {
	return v.String() + "\n"
}
