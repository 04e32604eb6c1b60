package internal

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

// lexer stores lexer data
type lexer struct {
	start     int
	current   int
	line      int
	lineStart int

	// position of the token being scanned
	startLine   int
	startColumn int

	state *interpreterState
}

func newLexer(state *interpreterState) *lexer {
	return &lexer{
		line:  1,
		state: state,
	}
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.startColumn = l.column()
		l.scanToken()
	}
	l.state.tokens = append(l.state.tokens, token{
		token:  tkEOF,
		lexeme: "",
		line:   l.line,
		column: l.column(),
	})
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else if l.match('*') {
			l.blockComment()
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.newline()

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			r := rune(c)
			if c >= utf8.RuneSelf {
				var size int
				r, size = utf8.DecodeRuneInString(l.source()[l.start:])
				l.current = l.start + size
			}
			l.state.lexError(
				newError(errUnexpectedChar, "Unexpected character '%c'.", r),
				l.startLine,
				l.startColumn,
			)
		}
	}
}

func (l *lexer) blockComment() {
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return
		}
		if l.advance() == '\n' {
			l.newline()
		}
	}
	l.state.lexError(
		newError(errUnterminatedComment, "Unterminated block comment."),
		l.startLine,
		l.startColumn,
	)
}

func (l *lexer) string() {
	for l.peek() != '"' && l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}

	if l.peek() != '"' {
		l.state.lexError(
			newError(errUnterminatedString, "Unterminated string."),
			l.startLine,
			l.startColumn,
		)
		// Resume on the next line, the newline itself is handled by scan
		return
	}

	// Consume ending "
	l.advance()

	l.emit(tkString, loxString(l.source()[l.start+1:l.current-1]))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A trailing dot is not part of the number
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, err := strconv.ParseFloat(l.source()[l.start:l.current], 64)
	if errors.Is(err, strconv.ErrRange) {
		l.state.lexError(
			newError(errNumberRange, "Number literal out of range."),
			l.startLine,
			l.startColumn,
		)
		return
	}

	l.emit(tkNumber, loxNumber(literal))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source()[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	var literal value
	switch tokenType {
	case tkTrue:
		literal = loxBool(true)
	case tkFalse:
		literal = loxBool(false)
	}

	l.emit(tokenType, literal)
}

func (l *lexer) source() string {
	return l.state.source
}

func (l *lexer) advance() byte {
	current := l.source()[l.current]
	l.current++
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source()[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source()[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source()) {
		return 0
	}
	return l.source()[l.current+1]
}

func (l *lexer) newline() {
	l.line++
	l.lineStart = l.current
}

func (l *lexer) column() int {
	return l.current - l.lineStart + 1
}

func (l *lexer) emit(tk tokenType, literal value) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.source()[l.start:l.current],
		literal: literal,
		line:    l.startLine,
		column:  l.startColumn,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source())
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
