/*
File   : tamarin/parser/precedence.go
Package: parser

Binding-power table for the Pratt expression parser.
*/
package parser

import "github.com/arvindr/tamarin/lexer"

// Precedence levels, lowest to highest.
const (
	LOWEST int = iota
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
)

// precedences maps an infix-capable token to its binding power. A
// token absent from this table has precedence LOWEST, which ends the
// Pratt loop rather than entering an infix production for it.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NEQ:      EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
}

func peekPrecedence(t lexer.Token) int {
	if p, ok := precedences[t.Type]; ok {
		return p
	}
	return LOWEST
}
