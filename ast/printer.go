package ast

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol returns the comparison operator as written in source
func (k ConditionKind) Symbol() string {
	switch k {
	case Equal:
		return "=="
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	default:
		return "?"
	}
}

// Print writes nodes as source text, one statement per line
func Print(w io.Writer, nodes []Node) error {
	for _, n := range nodes {
		if _, err := io.WriteString(w, printNode(n, "")); err != nil {
			return err
		}
	}

	return nil
}

// Sprint returns nodes as source text
func Sprint(nodes []Node) string {
	var sb strings.Builder
	_ = Print(&sb, nodes)

	return sb.String()
}

// FormatExpr renders an expression
func FormatExpr(e Expr) string {
	switch v := e.(type) {
	case Number:
		return formatNumber(float64(v))
	case String:
		return `"` + string(v) + `"`
	case *MathOp:
		var sb strings.Builder

		for i, m := range v.Members {
			if i > 0 {
				sb.WriteString(" ")
				if i-1 < len(v.Operators) {
					sb.WriteString(v.Operators[i-1].Symbol())
				} else {
					sb.WriteString("?")
				}
				sb.WriteString(" ")
			}

			sb.WriteString(FormatExpr(m))
		}

		return sb.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func printNode(n Node, indent string) string {
	switch v := n.(type) {
	case *Var:
		return fmt.Sprintf("%slet %s = %s;\n", indent, v.Name, FormatExpr(v.Value))
	case *Const:
		return fmt.Sprintf("%sconst %s = %s;\n", indent, v.Name, FormatExpr(v.Value))
	case *MathOp:
		return indent + FormatExpr(v) + ";\n"
	case *If:
		var sb strings.Builder

		fmt.Fprintf(&sb, "%sif (%s %s %s) {\n", indent, FormatExpr(v.Condition.Left), v.Condition.Op.Symbol(), FormatExpr(v.Condition.Right))

		for _, child := range v.Then {
			sb.WriteString(printNode(child, indent+"    "))
		}

		sb.WriteString(indent + "}\n")

		return sb.String()
	default:
		return ""
	}
}

// overflowLiteral is the smallest power of ten that lexes to +Inf
var overflowLiteral = "1" + strings.Repeat("0", 309)

// formatNumber renders floats exactly without exponent notation.
// +Inf, which the lexer produces for out of range literals, is printed as a
// literal that overflows again. NaN and -Inf have no source form.
func formatNumber(f float64) string {
	if math.IsInf(f, 1) {
		return overflowLiteral
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return decimal.NewFromFloat(f).String()
}
