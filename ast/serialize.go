package ast

import (
	"math"
	"strconv"
)

// Encode converts nodes into plain maps tagged with their node type, for
// JSON and YAML output.
func Encode(nodes []Node) []map[string]any {
	result := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, encodeNode(n))
	}

	return result
}

func encodeNode(n Node) map[string]any {
	m := map[string]any{
		"type": NodeType(n),
		"line": n.Position().Line,
		"col":  n.Position().Column,
	}

	switch v := n.(type) {
	case *Var:
		m["name"] = v.Name
		m["value"] = encodeExpr(v.Value)
	case *Const:
		m["name"] = v.Name
		m["value"] = encodeExpr(v.Value)
	case *MathOp:
		m["members"], m["operators"] = encodeMathOp(v)
	case *If:
		m["condition"] = map[string]any{
			"op":    v.Condition.Op.Symbol(),
			"left":  encodeExpr(v.Condition.Left),
			"right": encodeExpr(v.Condition.Right),
		}
		m["then"] = Encode(v.Then)
	}

	return m
}

func encodeExpr(e Expr) any {
	switch v := e.(type) {
	case Number:
		// JSON has no infinities or NaN
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			return strconv.FormatFloat(float64(v), 'g', -1, 64)
		}

		return float64(v)
	case String:
		return string(v)
	case *MathOp:
		members, operators := encodeMathOp(v)

		return map[string]any{
			"type":      "math_op",
			"members":   members,
			"operators": operators,
		}
	default:
		return nil
	}
}

func encodeMathOp(m *MathOp) ([]any, []string) {
	members := make([]any, 0, len(m.Members))
	for _, member := range m.Members {
		members = append(members, encodeExpr(member))
	}

	operators := make([]string, 0, len(m.Operators))
	for _, op := range m.Operators {
		operators = append(operators, op.String())
	}

	return members, operators
}
