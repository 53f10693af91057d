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

// Package assembler lowers parsed Solidity aggregates into ink! token
// trees: the contract module, the impl module, the trait module, the
// library module, and the interface module.
//
// All assembly is pure. The same input aggregate and context always
// produce the same token stream, and the assemblers are safe for
// concurrent use.
package assembler

import (
	"fmt"

	"github.com/soltoink/soltoink/errors"
	"github.com/soltoink/soltoink/ir"
	"github.com/soltoink/soltoink/rust"
)

// Version is the tool version stamped into generated artifacts.
const Version = "0.1.0"

// Context carries the per-run emission settings. The zero value emits no
// banner; DefaultContext returns the tool's own identity.
type Context struct {
	ToolName    string
	ToolVersion string
	ToolLink    string
}

func DefaultContext() Context {
	return Context{
		ToolName:    "Soltoink",
		ToolVersion: Version,
		ToolLink:    "https://github.com/soltoink/soltoink",
	}
}

// signature builds the generated-by banner at the top of every artifact.
func (c Context) signature() rust.TokenStream {
	if c.ToolName == "" {
		return rust.TokenStream{}
	}
	return rust.Tokens(
		rust.Comment(fmt.Sprintf("Generated with %s v%s", c.ToolName, c.ToolVersion)),
		rust.Comment(c.ToolLink),
		rust.BlankLine{},
	)
}

// recoverInternal converts a recovered internal error into the returned
// error. Foreign panics propagate.
func recoverInternal(err *error) {
	recovered := recover()
	if recovered == nil {
		return
	}
	if e, ok := recovered.(error); ok && errors.IsInternalError(e) {
		*err = e
		return
	}
	panic(recovered)
}

// innerAttribute builds `#![…]`.
func innerAttribute(inner ...rust.Token) rust.TokenStream {
	return rust.Tokens(
		rust.Punct("#"),
		rust.Punct("!"),
		rust.Bracketed(rust.Tokens(inner...)),
	)
}

// crateAttributes builds the crate-level attributes of standalone
// artifacts: no_std without the std feature, and min_specialization for
// the default trait methods.
func crateAttributes() rust.TokenStream {
	stream := innerAttribute(
		rust.Ident("cfg_attr"),
		rust.Parenthesized(rust.Tokens(
			rust.Ident("not"),
			rust.Parenthesized(rust.Tokens(
				rust.Ident("feature"),
				rust.Operator("="),
				rust.StringLit("std"),
			)),
			rust.Punct(","),
			rust.Ident("no_std"),
		)),
	)
	stream.Extend(innerAttribute(
		rust.Ident("feature"),
		rust.Parenthesized(rust.Tokens(rust.Ident("min_specialization"))),
	))
	stream.Append(rust.BlankLine{})
	return stream
}

// errorEnum builds the artifact's `Error` enum. The trait module derives
// the SCALE codecs on it, the library module keeps it plain.
func errorEnum(derives bool) rust.TokenStream {
	var stream rust.TokenStream
	if derives {
		stream.Extend(deriveAttribute("Debug", "Encode", "Decode", "PartialEq", "Eq"))
		stream.Extend(typeInfoAttribute())
	}
	stream.Append(
		rust.Ident("pub"),
		rust.Ident("enum"),
		rust.Ident("Error"),
		rust.Braced(rust.Tokens(
			rust.Ident("Custom"),
			rust.Parenthesized(rust.Tokens(rust.Ident("String"))),
			rust.Punct(","),
		)),
	)
	return stream
}

// wrapperAlias builds `#[openbrush::wrapper] pub type XRef = dyn X;`.
func wrapperAlias(name string) rust.TokenStream {
	stream := attribute(
		rust.Ident("openbrush"),
		rust.Punct("::"),
		rust.Ident("wrapper"),
	)
	stream.Append(
		rust.Ident("pub"),
		rust.Ident("type"),
		rust.Ident(name+"Ref"),
		rust.Operator("="),
		rust.Ident("dyn"),
		rust.Ident(name),
		rust.Punct(";"),
	)
	return stream
}

func filterFunctions(functions []ir.Function, external bool) []ir.Function {
	var filtered []ir.Function
	for _, function := range functions {
		if function.Header.External == external {
			filtered = append(filtered, function)
		}
	}
	return filtered
}

func functionHeaders(functions []ir.Function) []ir.FunctionHeader {
	headers := make([]ir.FunctionHeader, 0, len(functions))
	for _, function := range functions {
		headers = append(headers, function.Header)
	}
	return headers
}

// AssembleContract builds the deployable contract module: the storage
// struct wired to the impl module's data, the events with their emit
// shims, and the constructor.
func AssembleContract(ctx Context, contract ir.Contract) (stream rust.TokenStream, err error) {
	defer recoverInternal(&err)

	modName := rust.SafeSnake(contract.Name)
	traitName := rust.SafePascal(contract.Name)
	contractName := traitName + "Contract"

	var body rust.TokenStream
	body.Extend(assembleImports(contract.Imports))
	body.Append(
		rust.Raw("use scale::Encode;"),
		rust.Raw("use scale::Decode;"),
		rust.Raw("use ink_storage::traits::SpreadAllocate;"),
		rust.Raw("use openbrush::traits::Storage;"),
		rust.Raw(fmt.Sprintf("use %s::*;", modName)),
		rust.Raw("use ink_lang::codegen::Env;"),
		rust.Raw("use ink_lang::codegen::EmitEvent;"),
		rust.BlankLine{},
	)
	body.Extend(assembleConstants(contract.Fields))
	body.Extend(assembleEvents(contract.Events))
	body.Extend(assembleStorage(contract.Name))
	body.Append(rust.BlankLine{})
	body.Append(
		rust.Ident("impl"),
		rust.Ident(traitName),
		rust.Ident("for"),
		rust.Ident(contractName),
		rust.Braced(rust.TokenStream{}),
		rust.BlankLine{},
		rust.Ident("impl"),
		rust.Ident(modName),
		rust.Punct("::"),
		rust.Ident("Internal"),
		rust.Ident("for"),
		rust.Ident(contractName),
		rust.Braced(assembleContractEmitFunctions(contract.Events)),
		rust.BlankLine{},
		rust.Ident("impl"),
		rust.Ident(contractName),
		rust.Braced(assembleConstructor(contract.Constructor, contract.Fields)),
	)

	stream.Extend(crateAttributes())
	stream.Extend(ctx.signature())
	stream.Extend(assembleDoc(contract.Comments))
	stream.Extend(attribute(
		rust.Ident("openbrush"),
		rust.Punct("::"),
		rust.Ident("contract"),
	))
	stream.Append(
		rust.Ident("pub"),
		rust.Ident("mod"),
		rust.Ident(modName),
		rust.Braced(body),
	)

	return stream, nil
}

// AssembleImpl builds the impl module: the data struct, the modifiers,
// the blanket trait implementation over any storage holder, and the
// internal trait with its default implementations.
func AssembleImpl(ctx Context, contract ir.Contract) (stream rust.TokenStream, err error) {
	defer recoverInternal(&err)

	traitName := rust.SafePascal(contract.Name)

	external := filterFunctions(contract.Functions, true)
	internal := filterFunctions(contract.Functions, false)
	emitHeaders, emitImpls := assembleEmitFunctions(contract.Events)

	var externalBody rust.TokenStream
	externalBody.Extend(assembleFunctions(external, false))
	externalBody.Extend(assembleGetters(contract.Fields))

	var internalTrait rust.TokenStream
	internalTrait.Extend(assembleFunctionHeaders(functionHeaders(internal)))
	internalTrait.Extend(emitHeaders)

	var internalBody rust.TokenStream
	internalBody.Extend(assembleFunctions(internal, false))
	internalBody.Extend(emitImpls)

	storageBound := func() rust.Token {
		return rust.Angled(rust.Tokens(
			rust.Ident("T"),
			rust.Punct(":"),
			rust.Ident("Storage"),
			rust.Angled(rust.Tokens(rust.Ident("Data"))),
		))
	}

	stream.Extend(ctx.signature())
	stream.Append(
		rust.Raw("pub use crate::{impls, traits::*};"),
	)
	stream.Extend(assembleImports(contract.Imports))
	stream.Append(
		rust.Raw("use openbrush::traits::Storage;"),
		rust.BlankLine{},
	)
	stream.Extend(assembleDataStruct(contract.Name, contract.Fields))
	stream.Append(rust.BlankLine{})
	stream.Extend(assembleModifiers(contract.Modifiers, traitName))
	stream.Append(
		rust.Ident("impl"),
		storageBound(),
		rust.Ident(traitName),
		rust.Ident("for"),
		rust.Ident("T"),
		rust.Braced(externalBody),
		rust.BlankLine{},
		rust.Ident("pub"),
		rust.Ident("trait"),
		rust.Ident("Internal"),
		rust.Braced(internalTrait),
		rust.BlankLine{},
		rust.Ident("impl"),
		storageBound(),
		rust.Ident("Internal"),
		rust.Ident("for"),
		rust.Ident("T"),
		rust.Braced(internalBody),
	)

	return stream, nil
}

// AssembleTrait builds the trait module: the error type, the shared enums
// and structs, the wrapper alias, and the trait definition with the
// external message headers and getters.
func AssembleTrait(ctx Context, contract ir.Contract) (stream rust.TokenStream, err error) {
	defer recoverInternal(&err)

	traitName := rust.SafePascal(contract.Name)

	var traitBody rust.TokenStream
	traitBody.Extend(assembleFunctionHeaders(
		functionHeaders(filterFunctions(contract.Functions, true)),
	))
	traitBody.Extend(assembleGettersTrait(contract.Fields))

	stream.Extend(ctx.signature())
	stream.Extend(assembleImports(contract.Imports))
	stream.Append(
		rust.Raw("use scale::{Decode, Encode};"),
		rust.BlankLine{},
	)
	stream.Extend(errorEnum(true))
	stream.Append(rust.BlankLine{})
	stream.Extend(assembleEnums(contract.Enums))
	stream.Extend(assembleStructs(contract.Structs))
	stream.Extend(wrapperAlias(traitName))
	stream.Append(rust.BlankLine{})
	stream.Extend(attribute(
		rust.Ident("openbrush"),
		rust.Punct("::"),
		rust.Ident("trait_definition"),
	))
	stream.Append(
		rust.Ident("pub"),
		rust.Ident("trait"),
		rust.Ident(traitName),
		rust.Braced(traitBody),
	)

	return stream, nil
}

// AssembleLibrary builds a library as a plain module of free functions.
func AssembleLibrary(ctx Context, library ir.Library) (stream rust.TokenStream, err error) {
	defer recoverInternal(&err)

	stream.Extend(crateAttributes())
	stream.Extend(ctx.signature())
	stream.Extend(assembleDoc(library.Comments))
	stream.Extend(assembleImports(library.Imports))
	stream.Append(rust.BlankLine{})
	stream.Extend(errorEnum(false))
	stream.Append(rust.BlankLine{})
	stream.Extend(assembleConstants(library.Fields))
	stream.Extend(assembleEvents(library.Events))
	stream.Extend(assembleEnums(library.Enums))
	stream.Extend(assembleStructs(library.Structs))
	stream.Extend(assembleFunctions(library.Functions, true))

	return stream, nil
}

// AssembleInterface builds an interface as a headers-only trait with a
// wrapper alias for cross-contract calls.
func AssembleInterface(ctx Context, iface ir.Interface) (stream rust.TokenStream, err error) {
	defer recoverInternal(&err)

	name := rust.SafePascal(iface.Name)

	stream.Extend(ctx.signature())
	stream.Extend(assembleImports(iface.Imports))
	stream.Append(rust.BlankLine{})
	stream.Extend(assembleEvents(iface.Events))
	stream.Extend(assembleEnums(iface.Enums))
	stream.Extend(assembleStructs(iface.Structs))
	stream.Extend(wrapperAlias(name))
	stream.Append(rust.BlankLine{})
	stream.Extend(attribute(
		rust.Ident("openbrush"),
		rust.Punct("::"),
		rust.Ident("trait_definition"),
	))
	stream.Append(
		rust.Ident("pub"),
		rust.Ident("trait"),
		rust.Ident(name),
		rust.Braced(assembleFunctionHeaders(iface.FunctionHeaders)),
	)

	return stream, nil
}
