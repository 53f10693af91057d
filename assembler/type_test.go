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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soltoink/soltoink/ir"
	"github.com/soltoink/soltoink/rust"
)

// render returns the single-line or multi-line source form of a stream,
// without the trailing newline, for compact test expectations.
func render(stream rust.TokenStream) string {
	return strings.TrimSuffix(stream.String(), "\n")
}

func TestLowerType(t *testing.T) {

	t.Parallel()

	tests := []struct {
		typ      ir.Type
		expected string
	}{
		{ir.AccountIDType{}, "AccountId"},
		{ir.BoolType{}, "bool"},
		{ir.StringType{}, "String"},
		{ir.IntType{Size: 32}, "i32"},
		{ir.UintType{Size: 128}, "u128"},
		{ir.BytesType{Size: 32}, "[u8; 32]"},
		{ir.DynamicBytesType{}, "Vec<u8>"},
		{ir.NamedType{Name: "token_data"}, "TokenData"},
		{
			ir.ArrayType{
				Element: ir.AccountIDType{},
				Length:  &ir.NumberLiteral{Value: "5"},
			},
			"Vec<AccountId>",
		},
		{
			ir.MappingType{
				Keys:  []ir.Type{ir.AccountIDType{}},
				Value: ir.UintType{Size: 128},
			},
			"Mapping<AccountId, u128>",
		},
		{
			ir.MappingType{
				Keys:  []ir.Type{ir.AccountIDType{}, ir.AccountIDType{}},
				Value: ir.UintType{Size: 128},
			},
			"Mapping<(AccountId, AccountId), u128>",
		},
		{ir.NoneType{}, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, render(lowerType(test.typ)))
	}
}

func TestLowerNestedTypes(t *testing.T) {

	t.Parallel()

	mappingOfVectors := ir.MappingType{
		Keys: []ir.Type{ir.UintType{Size: 128}},
		Value: ir.ArrayType{
			Element: ir.NamedType{Name: "Position"},
		},
	}

	assert.Equal(t,
		"Mapping<u128, Vec<Position>>",
		render(lowerType(mappingOfVectors)),
	)
}
