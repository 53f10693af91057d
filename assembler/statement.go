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
	"github.com/soltoink/soltoink/errors"
	"github.com/soltoink/soltoink/ir"
	"github.com/soltoink/soltoink/rust"
)

const (
	uncheckedMarkerOpen  = "Please handle unchecked blocks manually >>>"
	uncheckedMarkerClose = "<<< Please handle unchecked blocks manually"

	tryFailedMessage = "Try failed"
)

func lowerStatements(statements []ir.Statement) rust.TokenStream {
	var stream rust.TokenStream
	for _, statement := range statements {
		stream.Extend(lowerStatement(statement))
	}
	return stream
}

// lowerStatement maps one IR statement to target tokens, always including
// its terminator. No statement form is ever silently dropped: constructs
// without a modeled translation produce explicit markers.
func lowerStatement(s ir.Statement) rust.TokenStream {
	switch s := s.(type) {
	case *ir.Block:
		return rust.Tokens(rust.Braced(lowerStatements(s.Statements)))

	case *ir.Break:
		return rust.Tokens(rust.Ident("break"), rust.Punct(";"))

	case *ir.Continue:
		return rust.Tokens(rust.Ident("continue"), rust.Punct(";"))

	case *ir.DoWhile:
		// the body runs before the first test, so the test sits at the
		// bottom of an unconditional loop
		body := lowerStatements(s.Body)
		body.Extend(conditionBreak(s.Condition))
		return rust.Tokens(rust.Ident("loop"), rust.Braced(body))

	case *ir.While:
		stream := rust.Tokens(rust.Ident("while"))
		stream.Extend(lowerCondition(s.Condition))
		stream.Append(rust.Braced(lowerStatements(s.Body)))
		return stream

	case *ir.For:
		return lowerFor(s)

	case *ir.If:
		stream := rust.Tokens(rust.Ident("if"))
		stream.Extend(lowerCondition(s.Test))
		stream.Append(rust.Braced(lowerStatements(s.Then)))
		if len(s.Else) > 0 {
			stream.Append(
				rust.Ident("else"),
				rust.Braced(lowerStatements(s.Else)),
			)
		}
		return stream

	case *ir.Emit:
		return lowerEmit(s)

	case *ir.ExpressionStatement:
		return terminated(lowerExpression(s.Expression))

	case *ir.Return:
		var value rust.TokenStream
		if s.Expression != nil {
			value = lowerExpression(s.Expression)
		} else {
			value = rust.Tokens(rust.Parenthesized(rust.TokenStream{}))
		}
		return rust.Tokens(
			rust.Ident("return"),
			rust.Ident("Ok"),
			rust.Parenthesized(value),
			rust.Punct(";"),
		)

	case *ir.Revert:
		return terminated(failureReturn(revertMessage(s)))

	case *ir.RevertNamedArgs:
		return terminated(todoMarker())

	case *ir.Try:
		// only the failure path is modeled, the checked value is not
		// extracted
		stream := lowerExpression(s.Expression)
		stream.Append(
			rust.Punct("."),
			rust.Ident("is_err"),
			rust.Parenthesized(rust.TokenStream{}),
		)
		test := rust.Tokens(rust.Ident("if"))
		test.Extend(stream)
		test.Append(rust.Braced(
			terminated(failureReturn(rust.Tokens(rust.StringLit(tryFailedMessage)))),
		))
		return test

	case *ir.Unchecked:
		stream := rust.Tokens(rust.Comment(uncheckedMarkerOpen))
		stream.Extend(lowerStatements(s.Statements))
		stream.Append(rust.Comment(uncheckedMarkerClose))
		return stream

	case *ir.VariableDefinition:
		stream := lowerExpression(s.Declaration)
		if s.Initial != nil {
			stream.Append(rust.Operator("="))
			stream.Extend(lowerExpression(s.Initial))
		}
		stream.Append(rust.Punct(";"))
		return stream

	case *ir.Assembly:
		return terminated(todoMarker())

	case *ir.ParseError:
		return terminated(todoMarker())

	default:
		panic(errors.NewUnreachableError())
	}
}

// lowerFor normalizes a C-style loop: the initializer runs before an
// unconditional loop whose body tests the negated condition, runs the
// original body, then the post statement. Absent pieces are omitted.
func lowerFor(s *ir.For) rust.TokenStream {
	var stream rust.TokenStream
	if s.Init != nil {
		stream.Extend(lowerStatement(s.Init))
	}

	var body rust.TokenStream
	if s.Condition != nil {
		body.Extend(conditionBreak(*s.Condition))
	}
	body.Extend(lowerStatements(s.Body))
	if s.Post != nil {
		body.Extend(lowerStatement(s.Post))
	}

	stream.Append(rust.Ident("loop"), rust.Braced(body))
	return stream
}

// conditionBreak emits `if !c { break }` for the given loop condition.
func conditionBreak(c ir.Condition) rust.TokenStream {
	stream := rust.Tokens(rust.Ident("if"))
	stream.Extend(lowerCondition(c.Negate()))
	stream.Append(rust.Braced(rust.Tokens(
		rust.Ident("break"),
		rust.Punct(";"),
	)))
	return stream
}

// lowerEmit lowers an event emission to a call of the per-event emit shim,
// `self._emit_<event>(args);`. The front-end guarantees the emitted
// expression is a call of a named event.
func lowerEmit(s *ir.Emit) rust.TokenStream {
	call, ok := s.Expression.(*ir.FunctionCall)
	if !ok {
		panic(errors.NewUnexpectedError("emit of a non-call expression"))
	}
	event, ok := call.Callee.(*ir.Variable)
	if !ok {
		panic(errors.NewUnexpectedError("emit of an unnamed event"))
	}

	return rust.Tokens(
		rust.Ident("self"),
		rust.Punct("."),
		rust.Ident("_emit_"+rust.SafeSnake(event.Name)),
		rust.Parenthesized(lowerExpressionList(call.Arguments)),
		rust.Punct(";"),
	)
}

// revertMessage picks the failure message of a revert: the declared error
// name when present, otherwise the first argument.
func revertMessage(s *ir.Revert) rust.TokenStream {
	if s.ErrorName != "" {
		return rust.Tokens(rust.StringLit(s.ErrorName))
	}
	if len(s.Arguments) > 0 {
		return lowerExpression(s.Arguments[0])
	}
	return rust.Tokens(rust.StringLit(""))
}

// terminated appends the statement terminator, unless the tokens already
// end in a block.
func terminated(stream rust.TokenStream) rust.TokenStream {
	tokens := stream.Tokens()
	if len(tokens) > 0 {
		if group, ok := tokens[len(tokens)-1].(rust.Group); ok &&
			group.Delimiter == rust.Braces {

			return stream
		}
	}
	stream.Append(rust.Punct(";"))
	return stream
}
