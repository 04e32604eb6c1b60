package internal

import (
	"fmt"
	"strings"
)

// PrintTree renders the parsed program as one parenthesized
// expression per declaration
func (s *interpreterState) PrintTree() string {
	out := make([]string, 0, len(s.program))
	for _, d := range s.program {
		out = append(out, treeDecl(d))
	}
	return strings.Join(out, "\n")
}

// FormatSource renders the parsed program back to source text that parses
// to the same tree
func (s *interpreterState) FormatSource() string {
	out := make([]string, 0, len(s.program))
	for _, d := range s.program {
		out = append(out, sourceDecl(d))
	}
	return strings.Join(out, "\n")
}

func treeDecl(d decl) string {
	switch d := d.(type) {
	case *varDecl:
		if d.initializer == nil {
			return "(var " + d.name.lexeme + ")"
		}
		return fmt.Sprintf("(var %s %s)", d.name.lexeme, treeExpr(d.initializer))
	case *exprStmt:
		return treeExpr(d.expression)
	case *printStmt:
		return fmt.Sprintf("(print %s)", treeExpr(d.expression))
	case *blockStmt:
		out := "(block"
		for _, inner := range d.declarations {
			out += " " + treeDecl(inner)
		}
		return out + ")"
	case *ifStmt:
		if d.elseBranch == nil {
			return fmt.Sprintf("(if %s %s)", treeExpr(d.condition), treeDecl(d.thenBranch))
		}
		return fmt.Sprintf(
			"(if %s %s %s)",
			treeExpr(d.condition),
			treeDecl(d.thenBranch),
			treeDecl(d.elseBranch),
		)
	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", treeExpr(d.condition), treeDecl(d.body))
	case *forStmt:
		init, cond, inc := "_", "_", "_"
		if d.initializer != nil {
			init = treeDecl(d.initializer)
		}
		if d.condition != nil {
			cond = treeExpr(d.condition)
		}
		if d.increment != nil {
			inc = treeExpr(d.increment)
		}
		return fmt.Sprintf("(for %s %s %s %s)", init, cond, inc, treeDecl(d.body))
	}
	panic(fmt.Sprintf("unhandled declaration %T", d))
}

func treeExpr(ex expr) string {
	switch ex := ex.(type) {
	case *literalExpr:
		return literalSource(ex.value)
	case *variableExpr:
		return ex.name.lexeme
	case *groupingExpr:
		return fmt.Sprintf("(group %s)", treeExpr(ex.expression))
	case *unaryExpr:
		return fmt.Sprintf("(%s %s)", ex.operator, treeExpr(ex.right))
	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", ex.operator, treeExpr(ex.left), treeExpr(ex.right))
	case *logicalExpr:
		return fmt.Sprintf("(%v %s %s)", ex.connective, treeExpr(ex.left), treeExpr(ex.right))
	case *assignExpr:
		return fmt.Sprintf("(= %s %s)", ex.name.lexeme, treeExpr(ex.value))
	}
	panic(fmt.Sprintf("unhandled expression %T", ex))
}

func sourceDecl(d decl) string {
	switch d := d.(type) {
	case *varDecl:
		if d.initializer == nil {
			return "var " + d.name.lexeme + ";"
		}
		return fmt.Sprintf("var %s = %s;", d.name.lexeme, sourceExpr(d.initializer))
	case *exprStmt:
		return sourceExpr(d.expression) + ";"
	case *printStmt:
		return "print " + sourceExpr(d.expression) + ";"
	case *blockStmt:
		out := "{"
		for _, inner := range d.declarations {
			out += " " + sourceDecl(inner)
		}
		return out + " }"
	case *ifStmt:
		out := fmt.Sprintf("if (%s) %s", sourceExpr(d.condition), sourceDecl(d.thenBranch))
		if d.elseBranch != nil {
			out += " else " + sourceDecl(d.elseBranch)
		}
		return out
	case *whileStmt:
		return fmt.Sprintf("while (%s) %s", sourceExpr(d.condition), sourceDecl(d.body))
	case *forStmt:
		out := "for ("
		if d.initializer != nil {
			out += sourceDecl(d.initializer)
		} else {
			out += ";"
		}
		if d.condition != nil {
			out += " " + sourceExpr(d.condition)
		}
		out += ";"
		if d.increment != nil {
			out += " " + sourceExpr(d.increment)
		}
		return out + ") " + sourceDecl(d.body)
	}
	panic(fmt.Sprintf("unhandled declaration %T", d))
}

// sourceExpr adds no parentheses of its own, grouping nodes carry the ones
// that were written
func sourceExpr(ex expr) string {
	switch ex := ex.(type) {
	case *literalExpr:
		return literalSource(ex.value)
	case *variableExpr:
		return ex.name.lexeme
	case *groupingExpr:
		return "(" + sourceExpr(ex.expression) + ")"
	case *unaryExpr:
		return string(ex.operator) + sourceExpr(ex.right)
	case *binaryExpr:
		return fmt.Sprintf("%s %s %s", sourceExpr(ex.left), ex.operator, sourceExpr(ex.right))
	case *logicalExpr:
		return fmt.Sprintf("%s %v %s", sourceExpr(ex.left), ex.connective, sourceExpr(ex.right))
	case *assignExpr:
		return fmt.Sprintf("%s = %s", ex.name.lexeme, sourceExpr(ex.value))
	}
	panic(fmt.Sprintf("unhandled expression %T", ex))
}

func literalSource(v value) string {
	if s, isString := v.(loxString); isString {
		return "\"" + string(s) + "\""
	}
	return render(v)
}
