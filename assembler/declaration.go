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
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/soltoink/soltoink/errors"
	"github.com/soltoink/soltoink/ir"
	"github.com/soltoink/soltoink/rust"
)

// attribute builds `#[…]`.
func attribute(inner ...rust.Token) rust.TokenStream {
	return rust.Tokens(
		rust.Punct("#"),
		rust.Bracketed(rust.Tokens(inner...)),
	)
}

// inkAttribute builds `#[ink(…)]`.
func inkAttribute(arguments ...string) rust.TokenStream {
	var args rust.TokenStream
	for i, argument := range arguments {
		if i > 0 {
			args.Append(rust.Punct(","))
		}
		args.Append(rust.Ident(argument))
	}
	return attribute(rust.Ident("ink"), rust.Parenthesized(args))
}

// deriveAttribute builds `#[derive(…)]`.
func deriveAttribute(traits ...string) rust.TokenStream {
	var args rust.TokenStream
	for i, trait := range traits {
		if i > 0 {
			args.Append(rust.Punct(","))
		}
		args.Append(rust.Ident(trait))
	}
	return attribute(rust.Ident("derive"), rust.Parenthesized(args))
}

// typeInfoAttribute builds the conditional TypeInfo derive every
// SCALE-encoded type carries.
func typeInfoAttribute() rust.TokenStream {
	return attribute(
		rust.Ident("cfg_attr"),
		rust.Parenthesized(rust.Tokens(
			rust.Ident("feature"),
			rust.Operator("="),
			rust.StringLit("std"),
			rust.Punct(","),
			rust.Ident("derive"),
			rust.Parenthesized(rust.Tokens(
				rust.Ident("scale_info"),
				rust.Punct("::"),
				rust.Ident("TypeInfo"),
			)),
		)),
	)
}

func assembleDoc(comments []string) rust.TokenStream {
	var stream rust.TokenStream
	for _, comment := range comments {
		stream.Append(rust.DocComment(comment))
	}
	return stream
}

// assembleImports re-emits the collected import statements verbatim, in
// sorted order so output does not depend on set iteration.
func assembleImports(imports ir.ImportSet) rust.TokenStream {
	var stream rust.TokenStream
	for _, statement := range imports.Sorted() {
		stream.Append(rust.Raw(statement))
	}
	return stream
}

func assembleEnums(enums []ir.Enum) rust.TokenStream {
	var stream rust.TokenStream

	for _, enumeration := range enums {
		var values rust.TokenStream
		for _, value := range enumeration.Values {
			values.Extend(assembleDoc(value.Comments))
			values.Append(
				rust.Ident(rust.SafePascal(value.Name)),
				rust.Punct(","),
			)
		}

		stream.Extend(assembleDoc(enumeration.Comments))
		stream.Append(
			rust.Ident("pub"),
			rust.Ident("enum"),
			rust.Ident(rust.SafePascal(enumeration.Name)),
			rust.Braced(values),
			rust.BlankLine{},
		)
	}

	return stream
}

func assembleEvents(events []ir.Event) rust.TokenStream {
	var stream rust.TokenStream

	for _, event := range events {
		var fields rust.TokenStream
		for _, field := range event.Fields {
			fields.Extend(assembleDoc(field.Comments))
			if field.Indexed {
				fields.Extend(inkAttribute("topic"))
			}
			fields.Append(
				rust.Ident(rust.SafeSnake(field.Name)),
				rust.Punct(":"),
			)
			fields.Extend(lowerType(field.Type))
			fields.Append(rust.Punct(","))
		}

		stream.Extend(assembleDoc(event.Comments))
		stream.Extend(inkAttribute("event"))
		stream.Append(
			rust.Ident("pub"),
			rust.Ident("struct"),
			rust.Ident(rust.SafePascal(event.Name)),
			rust.Braced(fields),
			rust.BlankLine{},
		)
	}

	return stream
}

func assembleStructs(structs []ir.Struct) rust.TokenStream {
	var stream rust.TokenStream

	for _, structure := range structs {
		var fields rust.TokenStream
		for _, field := range structure.Fields {
			fields.Extend(assembleDoc(field.Comments))
			fields.Append(
				rust.Ident(rust.SafeSnake(field.Name)),
				rust.Punct(":"),
			)
			fields.Extend(lowerType(field.Type))
			fields.Append(rust.Punct(","))
		}

		stream.Extend(assembleDoc(structure.Comments))
		stream.Extend(deriveAttribute("Default", "Encode", "Decode"))
		stream.Extend(typeInfoAttribute())
		stream.Append(
			rust.Ident("pub"),
			rust.Ident("struct"),
			rust.Ident(rust.SafePascal(structure.Name)),
			rust.Braced(fields),
			rust.BlankLine{},
		)
	}

	return stream
}

// storageKey derives the storage identity key of a contract's data struct:
// the first four bytes of the BLAKE2b-256 digest of `<Name>::Data`, as a
// hexadecimal u32 literal. The key depends only on the contract name, so
// regeneration never moves stored data.
func storageKey(contractName string) string {
	digest := blake2b.Sum256([]byte(rust.SafePascal(contractName) + "::Data"))
	return fmt.Sprintf("0x%08x", binary.BigEndian.Uint32(digest[:4]))
}

// assembleDataStruct builds the upgradeable storage struct holding every
// non-constant state variable, plus the trailing reserved slot for layout
// growth.
func assembleDataStruct(contractName string, fields []ir.ContractField) rust.TokenStream {
	var storageFields rust.TokenStream
	for _, field := range fields {
		if field.Constant {
			continue
		}
		storageFields.Extend(assembleDoc(field.Comments))
		storageFields.Append(
			rust.Ident("pub"),
			rust.Ident(rust.SafeSnake(field.Name)),
			rust.Punct(":"),
		)
		storageFields.Extend(lowerType(field.Type))
		storageFields.Append(rust.Punct(","))
	}

	storageFields.Append(
		rust.Ident("pub"),
		rust.Ident("_reserved"),
		rust.Punct(":"),
		rust.Ident("Option"),
		rust.Angled(rust.Tokens(rust.Parenthesized(rust.TokenStream{}))),
		rust.Punct(","),
	)

	stream := rust.Tokens(
		rust.Ident("pub"),
		rust.Ident("const"),
		rust.Ident("STORAGE_KEY"),
		rust.Punct(":"),
		rust.Ident("u32"),
		rust.Operator("="),
		rust.Literal(storageKey(contractName)),
		rust.Punct(";"),
		rust.BlankLine{},
	)
	stream.Extend(deriveAttribute("Default", "Debug"))
	stream.Extend(attribute(
		rust.Ident("openbrush"),
		rust.Punct("::"),
		rust.Ident("upgradeable_storage"),
		rust.Parenthesized(rust.Tokens(rust.Ident("STORAGE_KEY"))),
	))
	stream.Append(
		rust.Ident("pub"),
		rust.Ident("struct"),
		rust.Ident("Data"),
		rust.Braced(storageFields),
	)

	return stream
}

// isGetterField reports whether a state variable gets a generated getter.
// Only public non-constant variables are reachable through messages.
func isGetterField(field ir.ContractField) bool {
	return field.Public && !field.Constant
}

// assembleGetters builds the getter implementations for the impl module.
func assembleGetters(fields []ir.ContractField) rust.TokenStream {
	var stream rust.TokenStream

	for _, field := range fields {
		if !isGetterField(field) {
			continue
		}

		name := rust.SafeSnake(field.Name)

		body := rust.Tokens(
			rust.Ident("self"),
			rust.Punct("."),
			rust.Ident("data"),
			rust.Parenthesized(rust.TokenStream{}),
			rust.Punct("."),
			rust.Ident(name),
		)

		stream.Append(
			rust.Ident("fn"),
			rust.Ident(name),
			rust.Parenthesized(rust.Tokens(
				rust.Punct("&"),
				rust.Ident("self"),
			)),
			rust.Operator("->"),
		)
		stream.Extend(lowerType(field.Type))
		stream.Append(rust.Braced(body), rust.BlankLine{})
	}

	return stream
}

// assembleGettersTrait builds the getter message headers for the trait
// module, for the same fields the impl module implements.
func assembleGettersTrait(fields []ir.ContractField) rust.TokenStream {
	var stream rust.TokenStream

	for _, field := range fields {
		if !isGetterField(field) {
			continue
		}

		stream.Extend(inkAttribute("message"))
		stream.Append(
			rust.Ident("fn"),
			rust.Ident(rust.SafeSnake(field.Name)),
			rust.Parenthesized(rust.Tokens(
				rust.Punct("&"),
				rust.Ident("self"),
			)),
			rust.Operator("->"),
		)
		stream.Extend(lowerType(field.Type))
		stream.Append(rust.Punct(";"), rust.BlankLine{})
	}

	return stream
}

// assembleStorage builds the `#[ink(storage)]` struct of the contract
// module, wrapping the impl module's data struct.
func assembleStorage(contractName string) rust.TokenStream {
	fields := attribute(rust.Ident("storage_field"))
	fields.Append(
		rust.Ident("data"),
		rust.Punct(":"),
		rust.Ident("impls"),
		rust.Punct("::"),
		rust.Ident("Data"),
		rust.Punct(","),
	)

	stream := inkAttribute("storage")
	stream.Extend(deriveAttribute("Default", "SpreadAllocate", "Storage"))
	stream.Append(
		rust.Ident("pub"),
		rust.Ident("struct"),
		rust.Ident(rust.SafePascal(contractName)+"Contract"),
		rust.Braced(fields),
	)

	return stream
}

func assembleConstants(fields []ir.ContractField) rust.TokenStream {
	var stream rust.TokenStream

	for _, field := range fields {
		if !field.Constant {
			continue
		}
		if field.InitialValue == nil {
			panic(errors.NewUnexpectedError(
				"constant %s has no initial value",
				field.Name,
			))
		}

		stream.Extend(assembleDoc(field.Comments))
		stream.Append(
			rust.Ident("pub"),
			rust.Ident("const"),
			rust.Ident(rust.SafeUpperSnake(field.Name)),
			rust.Punct(":"),
		)
		stream.Extend(lowerType(field.Type))
		stream.Append(rust.Operator("="))
		stream.Extend(lowerExpression(field.InitialValue))
		stream.Append(rust.Punct(";"))
	}

	stream.Append(rust.BlankLine{})
	return stream
}

// assembleConstructor builds the ink! constructor. The body and the
// non-constant field initializers run inside the contract initializer
// closure, writing through the closure's instance.
func assembleConstructor(constructor ir.Function, fields []ir.ContractField) rust.TokenStream {
	var params rust.TokenStream
	var body rust.TokenStream

	for i, param := range constructor.Header.Params {
		if i > 0 {
			params.Append(rust.Punct(","))
		}
		params.Append(
			rust.Ident(rust.SafeSnake(param.Name)),
			rust.Punct(":"),
		)
		params.Extend(lowerType(param.Type))
	}
	body.Extend(lowerStatements(constructor.Body))

	for _, field := range fields {
		if field.Constant || field.InitialValue == nil {
			continue
		}
		body.Append(
			rust.Ident("instance"),
			rust.Punct("."),
			rust.Ident("data"),
			rust.Punct("."),
			rust.Ident(rust.SafeSnake(field.Name)),
			rust.Operator("="),
		)
		body.Extend(lowerExpression(field.InitialValue))
		body.Append(rust.Punct(";"))
	}

	closure := rust.Tokens(
		rust.Punct("|"),
		rust.Ident("instance"),
		rust.Punct(":"),
		rust.Punct("&"),
		rust.Ident("mut"),
		rust.Ident("Self"),
		rust.Punct("|"),
		rust.Braced(body),
	)

	var stream rust.TokenStream
	stream.Extend(assembleDoc(constructor.Header.Comments))
	stream.Extend(inkAttribute("constructor"))
	stream.Append(
		rust.Ident("pub"),
		rust.Ident("fn"),
		rust.Ident("new"),
		rust.Parenthesized(params),
		rust.Operator("->"),
		rust.Ident("Self"),
		rust.Braced(rust.Tokens(
			rust.Ident("ink_lang"),
			rust.Punct("::"),
			rust.Ident("codegen"),
			rust.Punct("::"),
			rust.Ident("initialize_contract"),
			rust.Parenthesized(closure),
		)),
		rust.BlankLine{},
	)

	return stream
}

// receiverTokens is the `&self` / `&mut self` receiver of a message.
func receiverTokens(view bool) rust.TokenStream {
	if view {
		return rust.Tokens(rust.Punct("&"), rust.Ident("self"))
	}
	return rust.Tokens(
		rust.Punct("&"),
		rust.Ident("mut"),
		rust.Ident("self"),
	)
}

// parameterList builds a function parameter list from an optional receiver
// and the declared parameters.
func parameterList(receiver rust.TokenStream, params []ir.Param) rust.TokenStream {
	stream := receiver
	for i, param := range params {
		if i > 0 || !receiver.IsEmpty() {
			stream.Append(rust.Punct(","))
		}
		stream.Append(
			rust.Ident(rust.SafeSnake(param.Name)),
			rust.Punct(":"),
		)
		stream.Extend(lowerType(param.Type))
	}
	return stream
}

// returnTuple lowers the declared return slots to the success type of the
// result: unit when there are none, the bare type for one, a tuple
// otherwise.
func returnTuple(returnParams []ir.Param) rust.TokenStream {
	switch len(returnParams) {
	case 0:
		return rust.Tokens(rust.Parenthesized(rust.TokenStream{}))
	case 1:
		return lowerType(returnParams[0].Type)
	default:
		var types rust.TokenStream
		for i, param := range returnParams {
			if i > 0 {
				types.Append(rust.Punct(","))
			}
			types.Extend(lowerType(param.Type))
		}
		return rust.Tokens(rust.Parenthesized(types))
	}
}

// resultType builds `Result<R, Error>` for the declared return slots.
func resultType(returnParams []ir.Param) rust.TokenStream {
	var inner rust.TokenStream
	inner.Extend(returnTuple(returnParams))
	inner.Append(rust.Punct(","))
	inner.Append(rust.Ident("Error"))

	return rust.Tokens(
		rust.Ident("Result"),
		rust.Angled(inner),
	)
}

func allReturnParamsNamed(returnParams []ir.Param) bool {
	if len(returnParams) == 0 {
		return false
	}
	for _, param := range returnParams {
		if param.Name == rust.Discard {
			return false
		}
	}
	return true
}

func hasReturnStatement(statements []ir.Statement) bool {
	for _, statement := range statements {
		if _, ok := statement.(*ir.Return); ok {
			return true
		}
	}
	return false
}

// assembleFunctions builds function implementations. External functions
// keep their name and stay plain, internal functions get an underscore
// prefix and a `default fn`, library functions are free `pub fn`s without
// a receiver.
func assembleFunctions(functions []ir.Function, library bool) rust.TokenStream {
	var stream rust.TokenStream

	for _, function := range functions {
		header := function.Header

		stream.Extend(assembleDoc(header.Comments))

		for _, modifier := range header.Modifiers {
			stream.Extend(attribute(
				rust.Ident("modifiers"),
				rust.Parenthesized(lowerExpression(modifier)),
			))
		}

		switch {
		case !header.External:
			stream.Append(rust.Ident("default"), rust.Ident("fn"))
			stream.Append(rust.Ident("_" + rust.SafeSnake(header.Name)))
		case library:
			stream.Append(rust.Ident("pub"), rust.Ident("fn"))
			stream.Append(rust.Ident(rust.SafeSnake(header.Name)))
		default:
			stream.Append(rust.Ident("fn"))
			stream.Append(rust.Ident(rust.SafeSnake(header.Name)))
		}

		var receiver rust.TokenStream
		if !library {
			receiver = receiverTokens(header.View)
		}

		var body rust.TokenStream
		for _, param := range header.ReturnParams {
			if param.Name == rust.Discard {
				continue
			}
			body.Append(
				rust.Ident("let"),
				rust.Ident("mut"),
				rust.Ident(rust.SafeSnake(param.Name)),
				rust.Operator("="),
				rust.Ident("Default"),
				rust.Punct("::"),
				rust.Ident("default"),
				rust.Parenthesized(rust.TokenStream{}),
				rust.Punct(";"),
			)
		}
		body.Extend(lowerStatements(function.Body))
		body.Extend(trailingResult(header.ReturnParams, function.Body))

		stream.Append(
			rust.Parenthesized(parameterList(receiver, header.Params)),
			rust.Operator("->"),
		)
		stream.Extend(resultType(header.ReturnParams))
		stream.Append(rust.Braced(body), rust.BlankLine{})
	}

	return stream
}

// trailingResult builds the fall-through result of a function body:
// `Ok(())` when there is nothing to return, `Ok(name)` / `Ok((a, b))`
// when every return slot is named and the body never returns explicitly.
func trailingResult(returnParams []ir.Param, body []ir.Statement) rust.TokenStream {
	if len(returnParams) == 0 {
		return rust.Tokens(
			rust.Ident("Ok"),
			rust.Parenthesized(rust.Tokens(
				rust.Parenthesized(rust.TokenStream{}),
			)),
		)
	}

	if !allReturnParamsNamed(returnParams) || hasReturnStatement(body) {
		return rust.TokenStream{}
	}

	var names rust.TokenStream
	for i, param := range returnParams {
		if i > 0 {
			names.Append(rust.Punct(","))
		}
		names.Append(rust.Ident(rust.SafeSnake(param.Name)))
	}
	if len(returnParams) > 1 {
		names = rust.Tokens(rust.Parenthesized(names))
	}

	return rust.Tokens(
		rust.Ident("Ok"),
		rust.Parenthesized(names),
	)
}

// assembleFunctionHeaders builds headers-only declarations for traits.
// External headers carry the message attribute, internal headers the
// underscore prefix.
func assembleFunctionHeaders(headers []ir.FunctionHeader) rust.TokenStream {
	var stream rust.TokenStream

	for _, header := range headers {
		stream.Extend(assembleDoc(header.Comments))

		if header.External {
			if header.Payable {
				stream.Extend(inkAttribute("message", "payable"))
			} else {
				stream.Extend(inkAttribute("message"))
			}
		}

		name := rust.SafeSnake(header.Name)
		if !header.External {
			name = "_" + name
		}

		stream.Append(
			rust.Ident("fn"),
			rust.Ident(name),
			rust.Parenthesized(parameterList(
				receiverTokens(header.View),
				header.Params,
			)),
			rust.Operator("->"),
		)
		stream.Extend(resultType(header.ReturnParams))
		stream.Append(rust.Punct(";"), rust.BlankLine{})
	}

	return stream
}

func emitFunctionName(event ir.Event) string {
	return "_emit_" + rust.SafeSnake(event.Name)
}

// assembleEmitFunctions builds the emit shim headers for the internal
// trait and their default no-op implementations. The contract module
// overrides the no-ops with real event emission.
func assembleEmitFunctions(events []ir.Event) (headers, impls rust.TokenStream) {
	for _, event := range events {
		var named rust.TokenStream
		var unnamed rust.TokenStream
		named.Append(rust.Punct("&"), rust.Ident("self"))
		unnamed.Append(rust.Punct("&"), rust.Ident("self"))

		for _, field := range event.Fields {
			named.Append(
				rust.Punct(","),
				rust.Ident(rust.SafeSnake(field.Name)),
				rust.Punct(":"),
			)
			named.Extend(lowerType(field.Type))

			unnamed.Append(
				rust.Punct(","),
				rust.Ident(rust.Discard),
				rust.Punct(":"),
			)
			unnamed.Extend(lowerType(field.Type))
		}

		name := emitFunctionName(event)

		headers.Append(
			rust.Ident("fn"),
			rust.Ident(name),
			rust.Parenthesized(named),
			rust.Punct(";"),
			rust.BlankLine{},
		)
		impls.Append(
			rust.Ident("default"),
			rust.Ident("fn"),
			rust.Ident(name),
			rust.Parenthesized(unnamed),
			rust.Braced(rust.TokenStream{}),
			rust.BlankLine{},
		)
	}

	return headers, impls
}

// assembleContractEmitFunctions builds the contract module's overriding
// emit shims, which construct the event struct and emit it through the
// environment.
func assembleContractEmitFunctions(events []ir.Event) rust.TokenStream {
	var stream rust.TokenStream

	for _, event := range events {
		var params rust.TokenStream
		var args rust.TokenStream
		params.Append(rust.Punct("&"), rust.Ident("self"))

		for _, field := range event.Fields {
			name := rust.SafeSnake(field.Name)
			params.Append(
				rust.Punct(","),
				rust.Ident(name),
				rust.Punct(":"),
			)
			params.Extend(lowerType(field.Type))

			args.Append(rust.Ident(name), rust.Punct(","))
		}

		body := rust.Tokens(
			rust.Ident("self"),
			rust.Punct("."),
			rust.Ident("env"),
			rust.Parenthesized(rust.TokenStream{}),
			rust.Punct("."),
			rust.Ident("emit_event"),
			rust.Parenthesized(rust.Tokens(
				rust.Ident(rust.SafePascal(event.Name)),
				rust.Braced(args),
			)),
			rust.Punct(";"),
		)

		stream.Append(
			rust.Ident("fn"),
			rust.Ident(emitFunctionName(event)),
			rust.Parenthesized(params),
			rust.Braced(body),
			rust.BlankLine{},
		)
	}

	return stream
}

// assembleModifiers builds the modifier definitions of the impl module.
// A modifier becomes a higher-order function over the wrapped message
// body, so its statements may short-circuit with a failure before the
// body runs.
func assembleModifiers(modifiers []ir.Modifier, traitName string) rust.TokenStream {
	var stream rust.TokenStream

	for _, modifier := range modifiers {
		params := rust.Tokens(
			rust.Ident("instance"),
			rust.Punct(":"),
			rust.Punct("&"),
			rust.Ident("mut"),
			rust.Ident("T"),
			rust.Punct(","),
			rust.Ident("body"),
			rust.Punct(":"),
			rust.Ident("F"),
		)
		for _, param := range modifier.Header.Params {
			params.Append(
				rust.Punct(","),
				rust.Ident(rust.SafeSnake(param.Name)),
				rust.Punct(":"),
			)
			params.Extend(lowerType(param.Type))
		}

		body := lowerStatements(modifier.Statements)
		body.Append(
			rust.Ident("body"),
			rust.Parenthesized(rust.Tokens(rust.Ident("instance"))),
		)

		stream.Extend(assembleDoc(modifier.Comments))
		stream.Extend(attribute(rust.Ident("modifier_definition")))
		stream.Append(
			rust.Ident("pub"),
			rust.Ident("fn"),
			rust.Ident(rust.SafeSnake(modifier.Header.Name)),
			rust.Angled(rust.Tokens(
				rust.Ident("T"),
				rust.Punct(","),
				rust.Ident("F"),
				rust.Punct(","),
				rust.Ident("R"),
			)),
			rust.Parenthesized(params),
			rust.Operator("->"),
			rust.Ident("Result"),
			rust.Angled(rust.Tokens(
				rust.Ident("R"),
				rust.Punct(","),
				rust.Ident("Error"),
			)),
			rust.Ident("where"),
			rust.Ident("T"),
			rust.Punct(":"),
			rust.Ident(rust.SafePascal(traitName)),
			rust.Punct(","),
			rust.Ident("F"),
			rust.Punct(":"),
			rust.Ident("FnOnce"),
			rust.Parenthesized(rust.Tokens(
				rust.Punct("&"),
				rust.Ident("mut"),
				rust.Ident("T"),
			)),
			rust.Operator("->"),
			rust.Ident("Result"),
			rust.Angled(rust.Tokens(
				rust.Ident("R"),
				rust.Punct(","),
				rust.Ident("Error"),
			)),
			rust.Braced(body),
			rust.BlankLine{},
		)
	}

	return stream
}
