package main

import (
	"fmt"
	"go/format"
	"io/ioutil"
	"os"
	"strings"
)

// Usage: ast <Expr|Stmt|Decl> <output file>
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: ast <Expr|Stmt|Decl> <output file>")
		os.Exit(64)
	}
	var out string
	switch os.Args[1] {
	case "Decl":
		out = generateAst("Decl", nil, []string{
			"Var: name *token, initializer expr",
		})
	case "Stmt":
		out = generateAst("Stmt", []string{"decl"}, []string{
			"Expr: expression expr",
			"Print: expression expr",
			"Block: declarations []decl",
			"If: condition expr, thenBranch stmt, elseBranch stmt",
			"While: condition expr, body stmt",
			"For: initializer decl, condition expr, increment expr, body stmt",
		})
	case "Expr":
		out = generateAst("Expr", nil, []string{
			"Literal: value value",
			"Variable: name *token",
			"Grouping: expression expr",
			"Unary: operator operator, right expr",
			"Binary: left expr, operator operator, right expr",
			"Logical: left expr, connective tokenType, right expr",
			"Assign: name *token, value expr",
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown base type %q\n", os.Args[1])
		os.Exit(64)
	}
	src, err := format.Source([]byte(out))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}
	if err := ioutil.WriteFile(os.Args[2], src, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(74)
	}
}

// generateAst emits a sealed interface for baseName plus one struct per
// node kind. Consumers dispatch with a type switch over the closed set.
func generateAst(baseName string, embeds []string, types []string) string {
	base := strings.ToLower(baseName)
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + base + " interface {\n"
	for _, e := range embeds {
		out += "\t" + e + "\n"
	}
	if len(embeds) == 0 {
		out += "\tpos() (line, column int)\n"
	}
	out += "\t" + base + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, embeds, structName, structFields)
	}
	// End structs

	return strings.TrimRight(out, "\n") + "\n"
}

func generateType(baseName string, embeds []string, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	out += "\tnode\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Marker Methods
	for _, e := range embeds {
		out += "func (*" + structName + ") " + e + "Node() {}\n"
	}
	out += "func (*" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Marker Methods

	return out
}
