/*
File   : tamarin/eval/eval_expressions.go
Package: eval

Expression-level evaluation: unary/binary operators, conditionals,
function literals, and calls.
*/
package eval

import (
	"github.com/arvindr/tamarin/environment"
	"github.com/arvindr/tamarin/function"
	"github.com/arvindr/tamarin/objects"
	"github.com/arvindr/tamarin/parser"
)

func (e *Evaluator) evalPrefixExpression(operator string, right objects.Object) objects.Object {
	switch operator {
	case "!":
		return evalBangOperator(right)
	case "-":
		return evalMinusPrefixOperator(right)
	default:
		return newError("unknown operator: %s%s", operator, right.Type())
	}
}

// evalBangOperator: boolean negates, null is false, anything else
// (including integers) is also false. This matches the observed
// behavior of !5 being false because 5 is truthy, but it means !0 is
// also false rather than true.
func evalBangOperator(right objects.Object) objects.Object {
	switch right := right.(type) {
	case *objects.Boolean:
		return objects.NativeBool(!right.Value)
	case *objects.Null:
		return objects.FALSE
	default:
		return objects.FALSE
	}
}

func evalMinusPrefixOperator(right objects.Object) objects.Object {
	i, ok := right.(*objects.Integer)
	if !ok {
		return newError("invalid type: -%s", right.Type())
	}
	return &objects.Integer{Value: -i.Value}
}

func (e *Evaluator) evalInfixExpression(operator string, left, right objects.Object) objects.Object {
	switch {
	case left.Type() == objects.INTEGER_OBJ && right.Type() == objects.INTEGER_OBJ:
		return evalIntegerInfixExpression(operator, left.(*objects.Integer), right.(*objects.Integer))
	case left.Type() == objects.BOOLEAN_OBJ && right.Type() == objects.BOOLEAN_OBJ:
		return evalBooleanInfixExpression(operator, left.(*objects.Boolean), right.(*objects.Boolean))
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), operator, right.Type())
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalIntegerInfixExpression(operator string, left, right *objects.Integer) objects.Object {
	switch operator {
	case "+":
		return &objects.Integer{Value: left.Value + right.Value}
	case "-":
		return &objects.Integer{Value: left.Value - right.Value}
	case "*":
		return &objects.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return newError("division by zero")
		}
		return &objects.Integer{Value: left.Value / right.Value}
	case "<":
		return objects.NativeBool(left.Value < right.Value)
	case ">":
		return objects.NativeBool(left.Value > right.Value)
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalBooleanInfixExpression(operator string, left, right *objects.Boolean) objects.Object {
	switch operator {
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func (e *Evaluator) evalIfExpression(node *parser.Node, env *environment.Environment) objects.Object {
	condition := e.Eval(node.Condition, env)
	if objects.IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(node.Consequence, env)
	} else if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return objects.NULL
}

// isTruthy: a Boolean branches on its own value, Null is falsy, and
// any other value (there being no other object types with surface
// syntax for a condition) is truthy.
func isTruthy(obj objects.Object) bool {
	switch obj := obj.(type) {
	case *objects.Boolean:
		return obj.Value
	case *objects.Null:
		return false
	default:
		return true
	}
}

func (e *Evaluator) evalFunctionLiteral(node *parser.Node, env *environment.Environment) objects.Object {
	return &function.Function{
		Parameters: node.Parameters,
		Body:       node.Body,
		Env:        env.Clone(),
	}
}

func (e *Evaluator) evalCallExpression(node *parser.Node, env *environment.Environment) objects.Object {
	callee := e.Eval(node.Function, env)
	if objects.IsError(callee) {
		return callee
	}

	args, err := e.evalExpressions(node.Arguments, env)
	if err != nil {
		return err
	}

	return e.applyFunction(callee, args)
}

func (e *Evaluator) evalExpressions(nodes []*parser.Node, env *environment.Environment) ([]objects.Object, objects.Object) {
	var result []objects.Object

	for _, n := range nodes {
		val := e.Eval(n, env)
		if objects.IsError(val) {
			return nil, val
		}
		result = append(result, val)
	}

	return result, nil
}

// applyFunction clones the function's captured environment, binds
// arguments positionally in that clone, evaluates the body there, and
// unwraps a ReturnValue at the call boundary — a caller never sees the
// wrapper, only the value it carried.
func (e *Evaluator) applyFunction(callee objects.Object, args []objects.Object) objects.Object {
	fn, ok := callee.(*function.Function)
	if !ok {
		return newError("not a function: %s", callee.Type())
	}

	if len(args) != len(fn.Parameters) {
		return newError("wrong number of arguments: expected %d, got %d", len(fn.Parameters), len(args))
	}

	callEnv := fn.Env.Clone()
	for i, param := range fn.Parameters {
		callEnv.Set(param.TokenLiteral(), args[i])
	}

	result := e.Eval(fn.Body, callEnv)
	if rv, ok := result.(*objects.ReturnValue); ok {
		return rv.Value
	}
	return result
}
