/*
File   : tamarin/eval/eval_statements.go
Package: eval

Statement-level evaluation: blocks and let bindings.
*/
package eval

import (
	"github.com/arvindr/tamarin/environment"
	"github.com/arvindr/tamarin/objects"
	"github.com/arvindr/tamarin/parser"
)

// evalBlockStatement evaluates statements in order. Unlike
// EvalProgram, it does NOT unwrap a ReturnValue — it propagates the
// wrapper unchanged so an enclosing block (or the call boundary)
// keeps unwinding instead of treating the return as an ordinary
// value. An Error halts evaluation the same way.
func (e *Evaluator) evalBlockStatement(block *parser.Node, env *environment.Environment) objects.Object {
	var result objects.Object = objects.NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			kind := result.Type()
			if kind == objects.RETURN_VALUE_OBJ || kind == objects.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

// evalLetStatement evaluates the right-hand side and binds it. A let
// statement has no result value of its own for its surrounding block.
func (e *Evaluator) evalLetStatement(node *parser.Node, env *environment.Environment) objects.Object {
	val := e.Eval(node.Value, env)
	if objects.IsError(val) {
		return val
	}
	env.Set(node.Name.TokenLiteral(), val)
	return objects.NULL
}
