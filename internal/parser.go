package internal

import "errors"

// parser stores parser data
type parser struct {
	current int
	depth   int

	state *interpreterState
}

func newParser(state *interpreterState) *parser {
	return &parser{state: state}
}

func (p *parser) parse() {
	for !p.isAtEnd() {
		d := p.declaration()
		// Declarations that failed to parse are reported and dropped
		if d != nil {
			p.state.program = append(p.state.program, d)
		}
	}
}

// declaration parses one declaration and recovers from any syntax error
// inside it, so each broken declaration yields a single diagnostic
func (p *parser) declaration() (d decl) {
	start := p.current
	nested := p.depth > 0
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			if errors.Is(pe.err, errNestingTooDeep) {
				// The whole over-deep construct is dropped by the
				// outermost declaration
				if nested {
					panic(r)
				}
				p.skipOpen(start)
			}
			p.synchronize(start, nested)
			d = nil
		}
	}()
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() decl {
	keyword := p.previous()
	name := p.consume(tkIdentifier, "Expect variable name.")

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}
	p.consume(tkSemicolon, "Expect ';' after variable declaration.")

	return &varDecl{
		node:        nodeAt(keyword),
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	p.enter()
	defer p.leave()

	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkLeftBrace) {
		return p.block()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkFor) {
		return p.forLoop()
	}
	return p.expressionStmt()
}

func (p *parser) printStmt() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, "Expect ';' after value.")
	return &printStmt{
		node:       nodeAt(keyword),
		expression: value,
	}
}

func (p *parser) block() stmt {
	brace := p.previous()
	declarations := make([]decl, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if d := p.declaration(); d != nil {
			declarations = append(declarations, d)
		}
	}
	p.consume(tkRightBrace, "Expect '}' after block.")
	return &blockStmt{
		node:         nodeAt(brace),
		declarations: declarations,
	}
}

// ifStmt binds an else to the nearest if, since the then branch is
// parsed first and consumes any else that follows it
func (p *parser) ifStmt() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(tkRightParen, "Expect ')' after if condition.")

	st := &ifStmt{
		node:       nodeAt(keyword),
		condition:  cond,
		thenBranch: p.statement(),
	}
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}
	return st
}

func (p *parser) while() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(tkRightParen, "Expect ')' after condition.")
	body := p.statement()
	return &whileStmt{
		node:      nodeAt(keyword),
		condition: cond,
		body:      body,
	}
}

func (p *parser) forLoop() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, "Expect '(' after 'for'.")

	var init decl
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, "Expect ';' after loop condition.")

	var inc expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, "Expect ')' after for clauses.")

	body := p.statement()

	return &forStmt{
		node:        nodeAt(keyword),
		initializer: init,
		condition:   cond,
		increment:   inc,
		body:        body,
	}
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, "Expect ';' after expression.")
	line, column := expr.pos()
	return &exprStmt{
		node:       node{line: line, column: column},
		expression: expr,
	}
}

func (p *parser) expression() expr {
	p.enter()
	defer p.leave()
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		p.enter()
		defer p.leave()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				node:  variable.node,
				name:  variable.name,
				value: value,
			}
		}

		// Reported but not fatal, the left side is kept as parsed
		p.state.setError(newError(errInvalidAssignTarget, "Invalid assignment target."), equal)
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		connective := p.previous()
		right := p.and()
		expr = &logicalExpr{
			node:       nodeAt(connective),
			left:       expr,
			connective: connective.token,
			right:      right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		connective := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			node:       nodeAt(connective),
			left:       expr,
			connective: connective.token,
			right:      right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = newBinary(expr, operator, right)
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.addition()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = newBinary(expr, operator, right)
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = newBinary(expr, operator, right)
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = newBinary(expr, operator, right)
	}
	return expr
}

func newBinary(left expr, operator *token, right expr) expr {
	return &binaryExpr{
		node:     nodeAt(operator),
		left:     left,
		operator: tokenOperators[operator.token],
		right:    right,
	}
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		p.enter()
		defer p.leave()
		right := p.unary()
		return &unaryExpr{
			node:     nodeAt(operator),
			operator: tokenOperators[operator.token],
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() expr {
	if p.match(tkNumber, tkString, tkTrue, tkFalse) {
		tk := p.previous()
		return &literalExpr{node: nodeAt(tk), value: tk.literal}
	}
	if p.match(tkNil) {
		return &literalExpr{node: nodeAt(p.previous()), value: nil}
	}
	if p.match(tkIdentifier) {
		tk := p.previous()
		return &variableExpr{node: nodeAt(tk), name: tk}
	}
	if p.match(tkLeftParen) {
		paren := p.previous()
		expr := p.expression()
		p.consume(tkRightParen, "Expect ')' after expression.")
		return &groupingExpr{node: nodeAt(paren), expression: expr}
	}

	tk := p.peek()
	switch tk.token {
	case tkEOF:
		p.state.fatalError(newError(errUnexpectedEOF, "Expect expression, found end of input."), tk)
	case tkClass, tkFun, tkReturn, tkThis, tkSuper:
		p.state.fatalError(newError(errUnexpectedToken, "Unsupported keyword '%s'.", tk.lexeme), tk)
	default:
		p.state.fatalError(newError(errUnexpectedToken, "Expect expression, found '%s'.", tk.lexeme), tk)
	}
	return nil
}

// enter guards the native call stack against pathological nesting
func (p *parser) enter() {
	max := p.state.options.MaxDepth
	if max > 0 && p.depth >= max {
		p.state.fatalError(newError(errNestingTooDeep, "Nesting too deep."), p.peek())
	}
	p.depth++
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) consume(tk tokenType, message string) *token {
	if p.check(tk) {
		return p.advance()
	}

	next := p.peek()
	if next.token == tkEOF {
		p.state.fatalError(newError(errUnexpectedEOF, "%s Found end of input.", message), next)
	}
	p.state.fatalError(newError(errMissingToken, "%s", message), next)
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token tokenType) bool {
	if p.isAtEnd() {
		return token == tkEOF
	}
	return p.peek().token == token
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize discards tokens until a ';' is consumed or the next token
// starts a statement. start is the index where the broken declaration began.
// Inside a block the closing '}' is left for the block to consume.
func (p *parser) synchronize(start int, nested bool) {
	if p.current == start && !p.isAtEnd() {
		if p.advance().token == tkSemicolon {
			return
		}
	}
	for !p.isAtEnd() {
		if p.match(tkSemicolon) {
			return
		}
		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkLeftBrace, tkReturn:
			return
		case tkRightBrace:
			if nested {
				return
			}
		default:
		}

		p.advance()
	}
}

// skipOpen discards tokens until every brace and parenthesis opened since
// start is closed again
func (p *parser) skipOpen(start int) {
	open := 0
	count := func(tk tokenType) {
		switch tk {
		case tkLeftBrace, tkLeftParen:
			open++
		case tkRightBrace, tkRightParen:
			open--
		}
	}
	for _, tk := range p.state.tokens[start:p.current] {
		count(tk.token)
	}
	for open > 0 && !p.isAtEnd() {
		count(p.advance().token)
	}
}
