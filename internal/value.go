package internal

import (
	"math"
	"strconv"
)

// value is the runtime and literal representation shared by every stage.
// A nil value is Lox nil.
type value interface {
	typeName() string
}

type loxNumber float64

type loxString string

type loxBool bool

func (loxNumber) typeName() string { return "number" }
func (loxString) typeName() string { return "string" }
func (loxBool) typeName() string   { return "boolean" }

func typeName(v value) string {
	if v == nil {
		return "nil"
	}
	return v.typeName()
}

// render returns the text written by print statements
func render(v value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case loxNumber:
		return formatNumber(float64(v))
	case loxString:
		return string(v)
	case loxBool:
		return strconv.FormatBool(bool(v))
	}
	return "<unknown>"
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func truthy(v value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case loxBool:
		return bool(v)
	}
	return true
}

// equal compares tag and payload; values of different tags are never equal
func equal(a, b value) bool {
	return a == b
}

type operator string

const (
	opSub    operator = "-"
	opAdd    operator = "+"
	opDiv    operator = "/"
	opMul    operator = "*"
	opNot    operator = "!"
	opNeq    operator = "!="
	opAssign operator = "="
	opEq     operator = "=="
	opGt     operator = ">"
	opGte    operator = ">="
	opLt     operator = "<"
	opLte    operator = "<="
)

var tokenOperators = map[tokenType]operator{
	tkMinus:        opSub,
	tkPlus:         opAdd,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkBang:         opNot,
	tkBangEqual:    opNeq,
	tkEqual:        opAssign,
	tkEqualEqual:   opEq,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
	tkLess:         opLt,
	tkLessEqual:    opLte,
}

type operatorApply func(left, right value) value

var numberOperations = map[operator]func(a, b loxNumber) value{
	opAdd: func(a, b loxNumber) value { return a + b },
	opSub: func(a, b loxNumber) value { return a - b },
	opMul: func(a, b loxNumber) value { return a * b },
	opDiv: func(a, b loxNumber) value { return a / b },
	opGt:  func(a, b loxNumber) value { return loxBool(a > b) },
	opGte: func(a, b loxNumber) value { return loxBool(a >= b) },
	opLt:  func(a, b loxNumber) value { return loxBool(a < b) },
	opLte: func(a, b loxNumber) value { return loxBool(a <= b) },
}

var stringOperations = map[operator]func(a, b loxString) value{
	opAdd: func(a, b loxString) value { return a + b },
}

// getOperator resolves a binary operator for the operand tags, or nil when
// the combination is not defined
func getOperator(op operator, left, right value) operatorApply {
	switch op {
	case opEq:
		return func(l, r value) value { return loxBool(equal(l, r)) }
	case opNeq:
		return func(l, r value) value { return loxBool(!equal(l, r)) }
	}
	switch left.(type) {
	case loxNumber:
		apply, found := numberOperations[op]
		if _, ok := right.(loxNumber); !ok || !found {
			return nil
		}
		return func(l, r value) value { return apply(l.(loxNumber), r.(loxNumber)) }
	case loxString:
		apply, found := stringOperations[op]
		if _, ok := right.(loxString); !ok || !found {
			return nil
		}
		return func(l, r value) value { return apply(l.(loxString), r.(loxString)) }
	}
	return nil
}
