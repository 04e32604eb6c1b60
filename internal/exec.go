package internal

import (
	"fmt"
)

type exec struct {
	state *interpreterState
	env   *env
}

func newExec(state *interpreterState) *exec {
	return &exec{
		state: state,
		env:   newEnv(state.log),
	}
}

// interpret runs every declaration of the program in order. Runtime errors
// are reported and evaluation carries on with nil in place of the failed
// expression.
func (e *exec) interpret() bool {
	for _, d := range e.state.program {
		e.execute(d)
	}
	return e.state.Valid()
}

func (e *exec) execute(d decl) {
	switch d := d.(type) {
	case *varDecl:
		e.varDecl(d)
	case *exprStmt:
		e.evaluate(d.expression)
	case *printStmt:
		e.state.printer.Println(render(e.evaluate(d.expression)))
	case *blockStmt:
		e.scoped(d.node, func() {
			for _, inner := range d.declarations {
				e.execute(inner)
			}
		})
	case *ifStmt:
		if truthy(e.evaluate(d.condition)) {
			e.execute(d.thenBranch)
		} else if d.elseBranch != nil {
			e.execute(d.elseBranch)
		}
	case *whileStmt:
		for truthy(e.evaluate(d.condition)) {
			e.execute(d.body)
		}
	case *forStmt:
		e.forLoop(d)
	default:
		panic(fmt.Sprintf("unhandled declaration %T", d))
	}
}

func (e *exec) varDecl(d *varDecl) {
	if d.initializer == nil {
		e.env.define(d.name.lexeme, binding{})
		return
	}
	e.env.define(d.name.lexeme, binding{
		value:       e.evaluate(d.initializer),
		initialized: true,
	})
}

// forLoop owns one frame for the whole loop so the initializer is scoped
// to it. A missing condition loops until the program stops it.
func (e *exec) forLoop(d *forStmt) {
	e.scoped(d.node, func() {
		if d.initializer != nil {
			e.execute(d.initializer)
		}
		for d.condition == nil || truthy(e.evaluate(d.condition)) {
			e.execute(d.body)
			if d.increment != nil {
				e.evaluate(d.increment)
			}
		}
	})
}

// scoped runs body inside a fresh frame, the frame is popped on every exit
// path including a panic unwinding through it
func (e *exec) scoped(n node, body func()) {
	e.env.push()
	defer func() {
		if err := e.env.pop(); err != nil {
			e.state.runtimeErr(err, n.line, n.column)
		}
	}()
	body()
}

func (e *exec) evaluate(ex expr) value {
	switch ex := ex.(type) {
	case *literalExpr:
		return ex.value
	case *variableExpr:
		val, err := e.env.get(ex.name.lexeme)
		if err != nil {
			e.runtimeErr(err, ex)
			return nil
		}
		return val
	case *groupingExpr:
		return e.evaluate(ex.expression)
	case *unaryExpr:
		return e.unary(ex)
	case *binaryExpr:
		return e.binary(ex)
	case *logicalExpr:
		return e.logical(ex)
	case *assignExpr:
		val := e.evaluate(ex.value)
		if err := e.env.assign(ex.name.lexeme, val); err != nil {
			e.runtimeErr(err, ex)
			return nil
		}
		return val
	default:
		panic(fmt.Sprintf("unhandled expression %T", ex))
	}
}

func (e *exec) unary(ex *unaryExpr) value {
	right := e.evaluate(ex.right)
	switch ex.operator {
	case opNot:
		return loxBool(!truthy(right))
	case opSub:
		if n, ok := right.(loxNumber); ok {
			return -n
		}
		e.runtimeErr(newError(
			errInvalidOperand,
			"Operand of '-' must be a number, got %s.",
			typeName(right),
		), ex)
	default:
		e.runtimeErr(newError(errInvalidOperand, "Unknown unary operator '%s'.", ex.operator), ex)
	}
	return nil
}

func (e *exec) binary(ex *binaryExpr) value {
	left := e.evaluate(ex.left)
	right := e.evaluate(ex.right)

	apply := getOperator(ex.operator, left, right)
	if apply != nil {
		return apply(left, right)
	}

	expected := "numbers"
	if ex.operator == opAdd {
		expected = "two numbers or two strings"
	}
	e.runtimeErr(newError(
		errInvalidOperand,
		"Operands of '%s' must be %s, got %s and %s.",
		ex.operator,
		expected,
		typeName(left),
		typeName(right),
	), ex)
	return nil
}

// logical returns the operand that decided the result, the right operand
// is only evaluated when the left one does not
func (e *exec) logical(ex *logicalExpr) value {
	left := e.evaluate(ex.left)
	switch ex.connective {
	case tkOr:
		if truthy(left) {
			return left
		}
	case tkAnd:
		if !truthy(left) {
			return left
		}
	default:
		e.runtimeErr(newError(errInvalidOperand, "Unknown logical connective '%v'.", ex.connective), ex)
		return nil
	}
	return e.evaluate(ex.right)
}

func (e *exec) runtimeErr(err error, ex expr) {
	line, column := ex.pos()
	e.state.runtimeErr(err, line, column)
}
