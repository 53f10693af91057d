/*
 * Soltoink - Solidity to ink! smart contract translator
 *
 * Copyright Soltoink contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package assembler

import (
	"strings"

	"github.com/soltoink/soltoink/errors"
	"github.com/soltoink/soltoink/ir"
	"github.com/soltoink/soltoink/rust"
)

// defaultRequireMessage is emitted for a precondition call which does
// not supply its own failure message.
const defaultRequireMessage = "No error message provided :)"

// lowerExpression maps an IR expression to target tokens. Most variants
// translate structurally; map-slot assignment, precondition calls, array
// construction, and storage variable references change shape instead.
func lowerExpression(e ir.Expression) rust.TokenStream {
	switch e := e.(type) {
	case *ir.ArraySubscript:
		stream := lowerExpression(e.Array)
		stream.Append(rust.Bracketed(lowerExpression(e.Index)))
		return stream

	case *ir.MappingSubscript:
		// the target mapping type has no index operator, reads go
		// through get, missing slots read as the default value
		stream := lowerExpression(e.Mapping)
		stream.Append(
			rust.Punct("."),
			rust.Ident("get"),
			rust.Parenthesized(referencedKey(e.Indices)),
			rust.Punct("."),
			rust.Ident("unwrap_or_default"),
			rust.Parenthesized(rust.TokenStream{}),
		)
		return stream

	case *ir.Assign:
		return lowerAssign(e)

	case *ir.Binary:
		if e.Operation == ir.OperationPow {
			stream := lowerExpression(e.Left)
			stream.Append(
				rust.Punct("."),
				rust.Ident("pow"),
				rust.Parenthesized(lowerExpression(e.Right)),
			)
			return stream
		}
		stream := lowerExpression(e.Left)
		stream.Append(rust.Operator(e.Operation.Symbol()))
		stream.Extend(lowerExpression(e.Right))
		return stream

	case *ir.ConditionExpression:
		return lowerCondition(e.Condition)

	case *ir.FunctionCall:
		if isRequireCall(e) {
			return lowerRequire(e.Arguments)
		}
		stream := lowerExpression(e.Callee)
		stream.Append(rust.Parenthesized(lowerExpressionList(e.Arguments)))
		return stream

	case *ir.MemberAccess:
		stream := lowerExpression(e.Parent)
		stream.Append(
			rust.Punct("."),
			rust.Ident(rust.SafeSnake(e.Member)),
		)
		return stream

	case *ir.NumberLiteral:
		return rust.Tokens(rust.Literal(e.Value))

	case *ir.StringLiteral:
		// adjacent source fragments are joined with a single space,
		// original adjacency is not recovered
		return rust.Tokens(rust.StringLit(strings.Join(e.Parts, " ")))

	case *ir.BoolLiteral:
		if e.Value {
			return rust.Tokens(rust.Ident("true"))
		}
		return rust.Tokens(rust.Ident("false"))

	case *ir.PreIncrement:
		return lowerStep(e.Operand, "+=")
	case *ir.PostIncrement:
		return lowerStep(e.Operand, "+=")
	case *ir.PreDecrement:
		return lowerStep(e.Operand, "-=")
	case *ir.PostDecrement:
		return lowerStep(e.Operand, "-=")

	case *ir.New:
		return lowerNew(e)

	case *ir.StructInit:
		stream := rust.Tokens(rust.Ident(rust.SafePascal(e.Name)))
		stream.Append(rust.Braced(lowerExpressionList(e.Arguments)))
		return stream

	case *ir.TypeExpression:
		return lowerType(e.Type)

	case *ir.Variable:
		if e.Storage {
			return rust.Tokens(
				rust.Ident("self"),
				rust.Punct("."),
				rust.Ident("data"),
				rust.Parenthesized(rust.TokenStream{}),
				rust.Punct("."),
				rust.Ident(rust.SafeSnake(e.Name)),
			)
		}
		return rust.Tokens(rust.Ident(rust.SafeSnake(e.Name)))

	case *ir.VariableDeclaration:
		stream := rust.Tokens(
			rust.Ident("let"),
			rust.Ident("mut"),
			rust.Ident(rust.SafeSnake(e.Name)),
		)
		loweredType := lowerType(e.Type)
		if !loweredType.IsEmpty() {
			stream.Append(rust.Punct(":"))
			stream.Extend(loweredType)
		}
		return stream

	default:
		panic(errors.NewUnreachableError())
	}
}

// lowerAssign lowers a plain or compound assignment. An assignment whose
// target is a mapping slot lowers to an explicit insert call, never to
// an index-store.
func lowerAssign(e *ir.Assign) rust.TokenStream {
	if subscript, ok := e.Target.(*ir.MappingSubscript); ok {
		var arguments rust.TokenStream
		arguments.Extend(referencedKey(subscript.Indices))
		arguments.Append(rust.Punct(","), rust.Punct("&"))
		arguments.Extend(lowerExpression(e.Value))

		stream := lowerExpression(subscript.Mapping)
		stream.Append(
			rust.Punct("."),
			rust.Ident("insert"),
			rust.Parenthesized(arguments),
		)
		return stream
	}

	stream := lowerExpression(e.Target)
	stream.Append(rust.Operator(e.Operation.Symbol()))
	stream.Extend(lowerExpression(e.Value))
	return stream
}

// referencedKey lowers mapping indices to a referenced key argument:
// &key for a single key, &(k1, k2) for a composite key.
func referencedKey(indices []ir.Expression) rust.TokenStream {
	stream := rust.Tokens(rust.Punct("&"))
	if len(indices) == 1 {
		stream.Extend(lowerExpression(indices[0]))
		return stream
	}
	stream.Append(rust.Parenthesized(lowerExpressionList(indices)))
	return stream
}

func lowerStep(operand ir.Expression, operator string) rust.TokenStream {
	stream := lowerExpression(operand)
	stream.Append(rust.Operator(operator), rust.Literal("1"))
	return stream
}

// lowerNew lowers array construction to a default-filled growable
// sequence. Other uses of new are not modeled and produce an explicit
// unimplemented marker.
func lowerNew(e *ir.New) rust.TokenStream {
	call, ok := e.Inner.(*ir.FunctionCall)
	if ok {
		if subscript, ok := call.Callee.(*ir.ArraySubscript); ok && len(call.Arguments) == 1 {
			var inner rust.TokenStream
			inner.Extend(lowerExpression(subscript.Array))
			inner.Append(
				rust.Punct("::"),
				rust.Ident("default"),
				rust.Parenthesized(rust.TokenStream{}),
				rust.Punct(";"),
			)
			inner.Extend(lowerExpression(call.Arguments[0]))

			return rust.Tokens(
				rust.Ident("vec!"),
				rust.Bracketed(inner),
			)
		}
	}
	return todoMarker()
}

// lowerCondition lowers a normalized boolean test.
func lowerCondition(c ir.Condition) rust.TokenStream {
	switch c.Operation {
	case ir.OperationTrue:
		return lowerExpression(c.Left)

	case ir.OperationNot:
		stream := rust.Tokens(rust.Punct("!"))
		stream.Append(rust.Parenthesized(lowerExpression(c.Left)))
		return stream

	default:
		stream := lowerExpression(c.Left)
		stream.Append(rust.Operator(c.Operation.Symbol()))
		stream.Extend(lowerExpression(c.Right))
		return stream
	}
}

func isRequireCall(call *ir.FunctionCall) bool {
	variable, ok := call.Callee.(*ir.Variable)
	return ok && !variable.Storage && variable.Name == "require"
}

// lowerRequire rewrites a precondition call into a conditional early
// return carrying a typed failure value.
func lowerRequire(arguments []ir.Expression) rust.TokenStream {
	if len(arguments) == 0 {
		panic(errors.NewUnexpectedError("require call without a condition"))
	}

	var message rust.TokenStream
	if len(arguments) > 1 {
		message = lowerExpression(arguments[1])
	} else {
		message = rust.Tokens(rust.StringLit(defaultRequireMessage))
	}

	stream := rust.Tokens(rust.Ident("if"))
	stream.Extend(lowerNegatedTest(arguments[0]))
	stream.Append(rust.Braced(failureReturn(message)))
	return stream
}

// lowerNegatedTest lowers the negation of a boolean expression,
// preferring a flipped comparison over wrapping in `!(…)`.
func lowerNegatedTest(test ir.Expression) rust.TokenStream {
	if condition, ok := test.(*ir.ConditionExpression); ok {
		return lowerCondition(condition.Condition.Negate())
	}

	stream := rust.Tokens(rust.Punct("!"))
	stream.Append(rust.Parenthesized(lowerExpression(test)))
	return stream
}

// failureReturn builds `return Err(Error::Custom(String::from(message)))`.
func failureReturn(message rust.TokenStream) rust.TokenStream {
	from := rust.Tokens(
		rust.Ident("String"),
		rust.Punct("::"),
		rust.Ident("from"),
		rust.Parenthesized(message),
	)
	custom := rust.Tokens(
		rust.Ident("Error"),
		rust.Punct("::"),
		rust.Ident("Custom"),
		rust.Parenthesized(from),
	)
	return rust.Tokens(
		rust.Ident("return"),
		rust.Ident("Err"),
		rust.Parenthesized(custom),
	)
}

func lowerExpressionList(expressions []ir.Expression) rust.TokenStream {
	var stream rust.TokenStream
	for i, expression := range expressions {
		if i > 0 {
			stream.Append(rust.Punct(","))
		}
		stream.Extend(lowerExpression(expression))
	}
	return stream
}

// todoMarker is the explicit unimplemented marker left in the output for
// constructs the translation does not model yet. The artifact stays
// syntactically emittable; the marker is completed by hand.
func todoMarker() rust.TokenStream {
	return rust.Tokens(
		rust.Ident("todo!"),
		rust.Parenthesized(rust.TokenStream{}),
	)
}
