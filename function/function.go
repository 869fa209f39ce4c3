/*
File   : tamarin/function/function.go
Package: function

Function lives outside objects so that it can hold a captured
Environment and an AST body/parameter list without objects importing
either environment or parser — objects stays a leaf package.
*/
package function

import (
	"bytes"

	"github.com/arvindr/tamarin/environment"
	"github.com/arvindr/tamarin/objects"
	"github.com/arvindr/tamarin/parser"
)

// Function is a first-class function value: its parameter list and
// body from the AST, plus the environment snapshotted at the moment
// the function literal was evaluated.
type Function struct {
	Parameters []*parser.Node
	Body       *parser.Node
	Env        *environment.Environment
}

func (f *Function) Type() objects.ObjectType { return objects.FUNCTION_OBJ }

func (f *Function) Inspect() string {
	var out bytes.Buffer

	out.WriteString("fn(")
	for i, p := range f.Parameters {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.TokenLiteral())
	}
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}
