// Package printer renders an ast.StatementList as indented, human-readable
// lines for the `parser` CLI subcommand. It is a debugging aid, not part
// of the evaluation contract.
package printer

import (
	"fmt"
	"strings"

	"github.com/nibscript/nib/internal/ast"
)

// Print renders prog as an indented multi-line string.
func Print(prog ast.StatementList) string {
	var sb strings.Builder
	printStatements(&sb, prog, 0)
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func printStatements(sb *strings.Builder, stmts ast.StatementList, depth int) {
	for _, s := range stmts {
		printStatement(sb, s, depth)
	}
}

func printStatement(sb *strings.Builder, s ast.Statement, depth int) {
	switch n := s.(type) {
	case *ast.Assignment:
		indent(sb, depth)
		fmt.Fprintf(sb, "Assignment %s %s =\n", n.DeclaredType, n.Name)
		printExpression(sb, n.Value, depth+1)
	case *ast.Return:
		indent(sb, depth)
		sb.WriteString("Return\n")
		printExpression(sb, n.Value, depth+1)
	case *ast.ExpressionStatement:
		indent(sb, depth)
		sb.WriteString("ExpressionStatement\n")
		printExpression(sb, n.Expr, depth+1)
	case *ast.BlockStatement:
		indent(sb, depth)
		sb.WriteString("Block\n")
		printStatements(sb, n.Body, depth+1)
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "<unknown statement %T>\n", s)
	}
}

func printExpression(sb *strings.Builder, e ast.Expression, depth int) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "Int(%d)\n", n.Value)
	case *ast.FloatLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "Float(%g)\n", n.Value)
	case *ast.BoolLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "Bool(%t)\n", n.Value)
	case *ast.StringLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "String(%q)\n", n.Value)
	case *ast.UnitLiteral:
		indent(sb, depth)
		sb.WriteString("Unit\n")
	case *ast.Identifier:
		indent(sb, depth)
		fmt.Fprintf(sb, "Identifier(%s)\n", n.Name)
	case *ast.Paren:
		indent(sb, depth)
		sb.WriteString("Paren\n")
		printExpression(sb, n.Inner, depth+1)
	case *ast.BinaryExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Binary(%s)\n", n.Operator)
		printExpression(sb, n.Left, depth+1)
		printExpression(sb, n.Right, depth+1)
	case *ast.ConsExpression:
		indent(sb, depth)
		sb.WriteString("Cons\n")
		printExpression(sb, n.Head, depth+1)
		printExpression(sb, n.Tail, depth+1)
	case *ast.ListLiteral:
		indent(sb, depth)
		sb.WriteString("List\n")
		for _, item := range n.Items {
			printExpression(sb, item, depth+1)
		}
	case *ast.CallExpression:
		indent(sb, depth)
		sb.WriteString("Call\n")
		printExpression(sb, n.Callee, depth+1)
		for _, arg := range n.Args {
			printExpression(sb, arg, depth+1)
		}
	case *ast.FunctionLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "Function(%s) ->\n", paramsString(n.Params))
		indent(sb, depth+1)
		fmt.Fprintf(sb, "returns %s\n", n.ReturnType)
		printStatements(sb, n.Body, depth+1)
	case *ast.IfExpression:
		indent(sb, depth)
		sb.WriteString("If\n")
		printExpression(sb, n.Condition, depth+1)
		printStatement(sb, n.Then, depth+1)
		if n.Else != nil {
			indent(sb, depth)
			sb.WriteString("Else\n")
			printStatement(sb, n.Else, depth+1)
		}
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "<unknown expression %T>\n", e)
	}
}

func paramsString(params []ast.Param) string {
	var parts []string
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Type))
	}
	return strings.Join(parts, ", ")
}
