package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ',', ., ;
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkSemicolon

	// Operators.
	// -, +, /, *, !, !=, =, ==, >, >=, <, <=
	tkMinus
	tkPlus
	tkSlash
	tkStar
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, class, else, false, fun, for, if, nil, or,
	// print, return, super, this, true, var, while
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkLeftParen:    "(",
	tkRightParen:   ")",
	tkLeftBrace:    "{",
	tkRightBrace:   "}",
	tkComma:        ",",
	tkDot:          ".",
	tkSemicolon:    ";",
	tkMinus:        "-",
	tkPlus:         "+",
	tkSlash:        "/",
	tkStar:         "*",
	tkBang:         "!",
	tkBangEqual:    "!=",
	tkEqual:        "=",
	tkEqualEqual:   "==",
	tkGreater:      ">",
	tkGreaterEqual: ">=",
	tkLess:         "<",
	tkLessEqual:    "<=",
	tkIdentifier:   "identifier",
	tkString:       "string",
	tkNumber:       "number",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	for word, tk := range keywords {
		if tk == t {
			return word
		}
	}
	return fmt.Sprintf("token(%d)", int(t))
}

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"fun":    tkFun,
	"for":    tkFor,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

// token is produced once by the lexer and never mutated
type token struct {
	token   tokenType
	lexeme  string
	literal value
	line    int
	column  int
}

func (t token) String() string {
	if t.literal != nil {
		return fmt.Sprintf("%v %s %s", t.token, t.lexeme, render(t.literal))
	}
	return fmt.Sprintf("%v %s", t.token, t.lexeme)
}
