package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken_Operators(t *testing.T) {
	input := `=+(){},;`

	expected := []Token{
		{Type: ASSIGN, Literal: "="},
		{Type: PLUS, Literal: "+"},
		{Type: LPAREN, Literal: "("},
		{Type: RPAREN, Literal: ")"},
		{Type: LBRACE, Literal: "{"},
		{Type: RBRACE, Literal: "}"},
		{Type: COMMA, Literal: ","},
		{Type: SEMICOLON, Literal: ";"},
		{Type: EOF, Literal: ""},
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equal(t, want.Type, got.Type, "token %d type", i)
		assert.Equal(t, want.Literal, got.Literal, "token %d literal", i)
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `
let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	expected := []Token{
		{Type: LET, Literal: "let"},
		{Type: IDENT, Literal: "five"},
		{Type: ASSIGN, Literal: "="},
		{Type: INT, Literal: "5"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: LET, Literal: "let"},
		{Type: IDENT, Literal: "ten"},
		{Type: ASSIGN, Literal: "="},
		{Type: INT, Literal: "10"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: LET, Literal: "let"},
		{Type: IDENT, Literal: "add"},
		{Type: ASSIGN, Literal: "="},
		{Type: FUNCTION, Literal: "fn"},
		{Type: LPAREN, Literal: "("},
		{Type: IDENT, Literal: "x"},
		{Type: COMMA, Literal: ","},
		{Type: IDENT, Literal: "y"},
		{Type: RPAREN, Literal: ")"},
		{Type: LBRACE, Literal: "{"},
		{Type: IDENT, Literal: "x"},
		{Type: PLUS, Literal: "+"},
		{Type: IDENT, Literal: "y"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: RBRACE, Literal: "}"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: LET, Literal: "let"},
		{Type: IDENT, Literal: "result"},
		{Type: ASSIGN, Literal: "="},
		{Type: IDENT, Literal: "add"},
		{Type: LPAREN, Literal: "("},
		{Type: IDENT, Literal: "five"},
		{Type: COMMA, Literal: ","},
		{Type: IDENT, Literal: "ten"},
		{Type: RPAREN, Literal: ")"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: BANG, Literal: "!"},
		{Type: MINUS, Literal: "-"},
		{Type: SLASH, Literal: "/"},
		{Type: ASTERISK, Literal: "*"},
		{Type: INT, Literal: "5"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: INT, Literal: "5"},
		{Type: LT, Literal: "<"},
		{Type: INT, Literal: "10"},
		{Type: GT, Literal: ">"},
		{Type: INT, Literal: "5"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: IF, Literal: "if"},
		{Type: LPAREN, Literal: "("},
		{Type: INT, Literal: "5"},
		{Type: LT, Literal: "<"},
		{Type: INT, Literal: "10"},
		{Type: RPAREN, Literal: ")"},
		{Type: LBRACE, Literal: "{"},
		{Type: RETURN, Literal: "return"},
		{Type: TRUE, Literal: "true"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: RBRACE, Literal: "}"},
		{Type: ELSE, Literal: "else"},
		{Type: LBRACE, Literal: "{"},
		{Type: RETURN, Literal: "return"},
		{Type: FALSE, Literal: "false"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: RBRACE, Literal: "}"},
		{Type: INT, Literal: "10"},
		{Type: EQ, Literal: "=="},
		{Type: INT, Literal: "10"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: INT, Literal: "10"},
		{Type: NEQ, Literal: "!="},
		{Type: INT, Literal: "9"},
		{Type: SEMICOLON, Literal: ";"},
		{Type: EOF, Literal: ""},
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equal(t, want.Type, got.Type, "token %d (%q) type", i, got.Literal)
		assert.Equal(t, want.Literal, got.Literal, "token %d literal", i)
	}
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New("5 @ 3")
	assert.Equal(t, INT, l.NextToken().Type)
	assert.Equal(t, ILLEGAL, l.NextToken().Type)
	assert.Equal(t, INT, l.NextToken().Type)
}

func TestNextToken_TracksLineAndColumn(t *testing.T) {
	l := New("5\n+ 6")
	tok := l.NextToken()
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 1, tok.Column)

	plus := l.NextToken()
	assert.Equal(t, 2, plus.Line)
	assert.Equal(t, 1, plus.Column)
}
