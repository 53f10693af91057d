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
	"fmt"

	"github.com/soltoink/soltoink/errors"
	"github.com/soltoink/soltoink/ir"
	"github.com/soltoink/soltoink/rust"
)

// lowerType maps an IR type to its target type expression.
func lowerType(t ir.Type) rust.TokenStream {
	switch t := t.(type) {
	case ir.AccountIDType:
		return rust.Tokens(rust.Ident("AccountId"))

	case ir.BoolType:
		return rust.Tokens(rust.Ident("bool"))

	case ir.StringType:
		return rust.Tokens(rust.Ident("String"))

	case ir.IntType:
		return rust.Tokens(rust.Ident(fmt.Sprintf("i%d", t.Size)))

	case ir.UintType:
		return rust.Tokens(rust.Ident(fmt.Sprintf("u%d", t.Size)))

	case ir.BytesType:
		return rust.Tokens(
			rust.Bracketed(rust.Tokens(
				rust.Ident("u8"),
				rust.Punct(";"),
				rust.Literal(fmt.Sprintf("%d", t.Size)),
			)),
		)

	case ir.DynamicBytesType:
		return rust.Tokens(
			rust.Ident("Vec"),
			rust.Angled(rust.Tokens(rust.Ident("u8"))),
		)

	case ir.NamedType:
		return rust.Tokens(rust.Ident(rust.SafePascal(t.Name)))

	case ir.ArrayType:
		// the target has no fixed-length sequence, a declared length
		// is discarded
		return rust.Tokens(
			rust.Ident("Vec"),
			rust.Angled(lowerType(t.Element)),
		)

	case ir.MappingType:
		return rust.Tokens(
			rust.Ident("Mapping"),
			rust.Angled(mappingArguments(t)),
		)

	case ir.NoneType:
		return rust.TokenStream{}

	default:
		panic(errors.NewUnreachableError())
	}
}

// mappingArguments lowers the key and value types of a mapping. A
// composite-key mapping is keyed by a tuple of the lowered key types.
func mappingArguments(t ir.MappingType) rust.TokenStream {
	var arguments rust.TokenStream

	if len(t.Keys) == 1 {
		arguments.Extend(lowerType(t.Keys[0]))
	} else {
		var keys rust.TokenStream
		for i, key := range t.Keys {
			if i > 0 {
				keys.Append(rust.Punct(","))
			}
			keys.Extend(lowerType(key))
		}
		arguments.Append(rust.Parenthesized(keys))
	}

	arguments.Append(rust.Punct(","))
	arguments.Extend(lowerType(t.Value))

	return arguments
}
