/*
File   : tamarin/eval/evaluator.go
Package: eval

The tree-walking evaluator. Evaluation is synchronous and depth-first:
one dispatch switch per parser.Node Kind, matching the single
tagged-union AST rather than a per-type visitor.
*/
package eval

import (
	"fmt"

	"github.com/arvindr/tamarin/environment"
	"github.com/arvindr/tamarin/objects"
	"github.com/arvindr/tamarin/parser"
)

// Evaluator has no state of its own; an Environment is threaded
// through every call explicitly so the REPL can keep one session
// environment alive across chunks.
type Evaluator struct{}

// New returns an Evaluator. It carries no fields today but is kept as
// a type, not a package of free functions, so the evaluator can grow
// configuration (e.g. a recursion-depth limit) without an API break.
func New() *Evaluator {
	return &Evaluator{}
}

// EvalProgram evaluates an ordered list of top-level nodes against
// env, returning the last evaluated value or the first error or
// return encountered. A top-level return stops evaluation immediately
// and its wrapped value becomes the program's result.
func (e *Evaluator) EvalProgram(nodes []*parser.Node, env *environment.Environment) objects.Object {
	var result objects.Object = objects.NULL

	for _, node := range nodes {
		result = e.Eval(node, env)

		switch v := result.(type) {
		case *objects.ReturnValue:
			return v.Value
		case *objects.Error:
			return v
		}
	}

	return result
}

// Eval dispatches a single node. It is the one pattern-match the
// design collapses the AST's statement/expression split into.
func (e *Evaluator) Eval(node *parser.Node, env *environment.Environment) objects.Object {
	if node == nil {
		return objects.NULL
	}

	switch node.Kind {
	case parser.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case parser.BlockStatement:
		return e.evalBlockStatement(node, env)
	case parser.LetStatement:
		return e.evalLetStatement(node, env)
	case parser.ReturnStatement:
		val := e.Eval(node.Value, env)
		if objects.IsError(val) {
			return val
		}
		return &objects.ReturnValue{Value: val}

	case parser.IntegerLiteral:
		return &objects.Integer{Value: node.IntValue}
	case parser.BooleanLiteral:
		return objects.NativeBool(node.BoolValue)
	case parser.Identifier:
		return env.Get(node.TokenLiteral())

	case parser.PrefixExpression:
		right := e.Eval(node.Right, env)
		if objects.IsError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case parser.InfixExpression:
		left := e.Eval(node.Left, env)
		if objects.IsError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if objects.IsError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case parser.IfExpression:
		return e.evalIfExpression(node, env)

	case parser.FunctionLiteral:
		return e.evalFunctionLiteral(node, env)

	case parser.CallExpression:
		return e.evalCallExpression(node, env)
	}

	return newError("unknown node kind: %d", node.Kind)
}

func newError(format string, args ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, args...)}
}
