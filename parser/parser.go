/*
File   : tamarin/parser/parser.go
Package: parser

A Pratt (top-down operator-precedence) parser. It is built from a
Lexer, keeps a two-token lookahead (curToken/peekToken), and dispatches
expression parsing through two function-pointer tables keyed by token
type: unaryFns for tokens that can start an expression, binaryFns for
tokens that can continue one.
*/
package parser

import (
	"fmt"

	"github.com/arvindr/tamarin/lexer"
)

type unaryParseFn func() *Node
type binaryParseFn func(left *Node) *Node

// Parser consumes a token stream from a Lexer and builds the AST
// defined in node.go. Errors encountered along the way are collected
// rather than raised, matching the shell's need to report every
// problem in a chunk at once.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	Errors []string

	unaryFns  map[lexer.TokenType]unaryParseFn
	binaryFns map[lexer.TokenType]binaryParseFn
}

// New builds a Parser over l and primes curToken/peekToken.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, Errors: []string{}}

	p.unaryFns = map[lexer.TokenType]unaryParseFn{
		lexer.IDENT:    p.parseIdentifier,
		lexer.INT:      p.parseIntegerLiteral,
		lexer.TRUE:     p.parseBooleanLiteral,
		lexer.FALSE:    p.parseBooleanLiteral,
		lexer.BANG:     p.parsePrefixExpression,
		lexer.MINUS:    p.parsePrefixExpression,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.IF:       p.parseIfExpression,
		lexer.FUNCTION: p.parseFunctionLiteral,
	}

	p.binaryFns = map[lexer.TokenType]binaryParseFn{
		lexer.PLUS:     p.parseInfixExpression,
		lexer.MINUS:    p.parseInfixExpression,
		lexer.SLASH:    p.parseInfixExpression,
		lexer.ASTERISK: p.parseInfixExpression,
		lexer.EQ:       p.parseInfixExpression,
		lexer.NEQ:      p.parseInfixExpression,
		lexer.LT:       p.parseInfixExpression,
		lexer.GT:       p.parseInfixExpression,
		lexer.LPAREN:   p.parseCallExpression,
	}

	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it matches t, else records an
// error and leaves the cursor in place.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()
		return true
	}
	p.addError(fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type))
	return false
}

func (p *Parser) addError(msg string) {
	p.Errors = append(p.Errors, msg)
}

func (p *Parser) peekPrecedence() int {
	return peekPrecedence(p.peekToken)
}

func (p *Parser) curPrecedence() int {
	return peekPrecedence(p.curToken)
}

// Parse runs the top-level loop: until EOF, skip stray semicolons,
// else parse one statement and advance.
func (p *Parser) Parse() []*Node {
	var nodes []*Node

	for !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMICOLON) {
			p.advance()
			continue
		}

		stmt := p.parseStatement()
		if stmt != nil {
			nodes = append(nodes, stmt)
		}
		p.advance()
	}

	return nodes
}

func (p *Parser) parseStatement() *Node {
	switch p.curToken.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() *Node {
	node := &Node{Kind: LetStatement, Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	node.Name = &Node{Kind: Identifier, Token: p.curToken}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.advance()

	node.Value = p.parseExpression(LOWEST)

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}

	return node
}

func (p *Parser) parseReturnStatement() *Node {
	node := &Node{Kind: ReturnStatement, Token: p.curToken}

	p.advance()
	node.Value = p.parseExpression(LOWEST)

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}

	return node
}

func (p *Parser) parseExpressionStatement() *Node {
	node := &Node{Kind: ExpressionStatement, Token: p.curToken}
	node.Expression = p.parseExpression(LOWEST)

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}

	return node
}

// parseExpression is the Pratt core: resolve a unary production for
// curToken, then keep absorbing binary productions while the peek
// token binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) *Node {
	unary, ok := p.unaryFns[p.curToken.Type]
	if !ok {
		p.addError(fmt.Sprintf("no prefix parse function for %s found", p.curToken.Type))
		return nil
	}
	left := unary()

	for !p.peekIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		binary, ok := p.binaryFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.advance()
		left = binary(left)
	}

	return left
}

func (p *Parser) parseIdentifier() *Node {
	return &Node{Kind: Identifier, Token: p.curToken}
}

func (p *Parser) parseIntegerLiteral() *Node {
	node := &Node{Kind: IntegerLiteral, Token: p.curToken}

	var value int64
	_, err := fmt.Sscanf(p.curToken.Literal, "%d", &value)
	if err != nil {
		p.addError(fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}
	node.IntValue = value
	return node
}

func (p *Parser) parseBooleanLiteral() *Node {
	return &Node{Kind: BooleanLiteral, Token: p.curToken, BoolValue: p.curIs(lexer.TRUE)}
}

func (p *Parser) parsePrefixExpression() *Node {
	node := &Node{Kind: PrefixExpression, Token: p.curToken, Operator: p.curToken.Literal}
	p.advance()
	node.Right = p.parseExpression(PREFIX)
	return node
}

func (p *Parser) parseInfixExpression(left *Node) *Node {
	node := &Node{Kind: InfixExpression, Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := p.curPrecedence()
	p.advance()
	node.Right = p.parseExpression(precedence)
	return node
}

func (p *Parser) parseGroupedExpression() *Node {
	p.advance()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseIfExpression() *Node {
	node := &Node{Kind: IfExpression, Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.advance()
	node.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	node.Consequence = p.parseBlockStatement()

	if p.peekIs(lexer.ELSE) {
		p.advance()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		node.Alternative = p.parseBlockStatement()
	}

	return node
}

func (p *Parser) parseBlockStatement() *Node {
	node := &Node{Kind: BlockStatement, Token: p.curToken}

	p.advance()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMICOLON) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			node.Statements = append(node.Statements, stmt)
		}
		p.advance()
	}

	return node
}

func (p *Parser) parseFunctionLiteral() *Node {
	node := &Node{Kind: FunctionLiteral, Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	node.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	node.Body = p.parseBlockStatement()

	return node
}

func (p *Parser) parseFunctionParameters() []*Node {
	var params []*Node

	if p.peekIs(lexer.RPAREN) {
		p.advance()
		return params
	}

	p.advance()
	params = append(params, &Node{Kind: Identifier, Token: p.curToken})

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		params = append(params, &Node{Kind: Identifier, Token: p.curToken})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return params
}

func (p *Parser) parseCallExpression(function *Node) *Node {
	node := &Node{Kind: CallExpression, Token: p.curToken, Function: function}
	node.Arguments = p.parseCallArguments()
	return node
}

func (p *Parser) parseCallArguments() []*Node {
	var args []*Node

	if p.peekIs(lexer.RPAREN) {
		p.advance()
		return args
	}

	p.advance()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return args
}
