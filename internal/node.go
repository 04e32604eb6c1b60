package internal

//go:generate go run ../cmd/ast Expr expr.go
//go:generate go run ../cmd/ast Stmt stmt.go
//go:generate go run ../cmd/ast Decl decl.go

// node records where a declaration, statement or expression starts
type node struct {
	line   int
	column int
}

func (n node) pos() (line, column int) {
	return n.line, n.column
}

func nodeAt(tk *token) node {
	return node{line: tk.line, column: tk.column}
}
