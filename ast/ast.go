// Package ast defines the statement nodes produced by the parser.
package ast

import (
	"errors"
	"fmt"

	"github.com/shibukawa/letlang/tokenizer"
)

// ErrMalformedMathOp is returned when a MathOp breaks the member/operator count invariant.
var ErrMalformedMathOp = errors.New("math operation must have exactly one more member than operators")

// Node is a top-level statement. Implemented by *Var, *Const, *MathOp and *If.
type Node interface {
	Position() tokenizer.Position
	node()
}

// Expr is the value of a binding: a Member literal or a *MathOp.
type Expr interface {
	expr()
}

// Member is an operand of a MathOp: Number or String.
type Member interface {
	Expr
	member()
}

// Number is a numeric literal
type Number float64

// String is a string literal
type String string

func (Number) expr()   {}
func (Number) member() {}
func (String) expr()   {}
func (String) member() {}

// MathOpKind is an arithmetic operator
type MathOpKind int

const (
	Addition MathOpKind = iota
	Subtraction
	Multiplication
	Division
)

var operatorSymbols = map[string]MathOpKind{
	"+": Addition,
	"-": Subtraction,
	"*": Multiplication,
	"/": Division,
}

// OperatorFromSymbol maps a symbol token value to its operator
func OperatorFromSymbol(symbol string) (MathOpKind, bool) {
	kind, ok := operatorSymbols[symbol]
	return kind, ok
}

// Symbol returns the source symbol of the operator
func (k MathOpKind) Symbol() string {
	switch k {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "*"
	case Division:
		return "/"
	default:
		return "?"
	}
}

func (k MathOpKind) String() string {
	switch k {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	default:
		return fmt.Sprintf("MathOpKind(%d)", int(k))
	}
}

// MarshalText renders the operator by name in JSON/YAML output
func (k MathOpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ConditionKind is a comparison operator of an If condition
type ConditionKind int

const (
	Equal ConditionKind = iota
	LessThan
	GreaterThan
)

// Var binds a name to an expression
type Var struct {
	Name  string
	Value Expr
	Pos   tokenizer.Position
}

// Const is reserved for constant bindings. The parser does not produce it yet.
type Const struct {
	Name  string
	Value Expr
	Pos   tokenizer.Position
}

// MathOp is a flat arithmetic expression evaluated strictly left to right:
// Members[0] Operators[0] Members[1] Operators[1] Members[2] ...
type MathOp struct {
	Members   []Member
	Operators []MathOpKind
	Pos       tokenizer.Position
}

// Condition of an If node
type Condition struct {
	Op    ConditionKind
	Left  Member
	Right Member
}

// If is reserved. The parser does not produce it yet.
type If struct {
	Condition Condition
	Then      []Node
	Pos       tokenizer.Position
}

func (v *Var) Position() tokenizer.Position    { return v.Pos }
func (c *Const) Position() tokenizer.Position  { return c.Pos }
func (m *MathOp) Position() tokenizer.Position { return m.Pos }
func (i *If) Position() tokenizer.Position     { return i.Pos }

func (*Var) node()    {}
func (*Const) node()  {}
func (*MathOp) node() {}
func (*If) node()     {}

func (*MathOp) expr() {}

// Validate checks len(Members) == len(Operators)+1
func (m *MathOp) Validate() error {
	if len(m.Members) != len(m.Operators)+1 {
		return fmt.Errorf("%w: %d members, %d operators", ErrMalformedMathOp, len(m.Members), len(m.Operators))
	}

	return nil
}

// NodeType returns the serialized type tag of a node
func NodeType(n Node) string {
	switch n.(type) {
	case *Var:
		return "var"
	case *Const:
		return "const"
	case *MathOp:
		return "math_op"
	case *If:
		return "if"
	default:
		return "unknown"
	}
}
