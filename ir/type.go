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

// Package ir defines the typed intermediate representation of a parsed
// Solidity contract, as handed over by the front-end.
//
// The IR is tree-shaped and immutable once built: the assembler only reads
// it, and every lowering call is a pure function of its input.
package ir

// Type is the sum of all Solidity types the translator models.
type Type interface {
	isType()
}

// AccountIDType is the type of an address, lowered to ink!'s AccountId.
type AccountIDType struct{}

var _ Type = AccountIDType{}

func (AccountIDType) isType() {}

// BoolType

type BoolType struct{}

var _ Type = BoolType{}

func (BoolType) isType() {}

// StringType

type StringType struct{}

var _ Type = StringType{}

func (StringType) isType() {}

// IntType is a signed integer of the given bit width.
type IntType struct {
	Size uint16
}

var _ Type = IntType{}

func (IntType) isType() {}

// UintType is an unsigned integer of the given bit width.
type UintType struct {
	Size uint16
}

var _ Type = UintType{}

func (UintType) isType() {}

// BytesType is a fixed-width byte array (bytes1 .. bytes32).
type BytesType struct {
	Size uint8
}

var _ Type = BytesType{}

func (BytesType) isType() {}

// DynamicBytesType

type DynamicBytesType struct{}

var _ Type = DynamicBytesType{}

func (DynamicBytesType) isType() {}

// NamedType is a reference to a user-declared enum or struct.
type NamedType struct {
	Name string
}

var _ Type = NamedType{}

func (NamedType) isType() {}

// ArrayType is a fixed-size or dynamic array. Length is nil for dynamic
// arrays. The target model has no fixed-length sequence, so a length is
// discarded at lowering time.
type ArrayType struct {
	Element Type
	Length  Expression
}

var _ Type = ArrayType{}

func (ArrayType) isType() {}

// MappingType is an associative map. More than one key type denotes a
// composite-key map, represented at the target as a map keyed by a tuple.
type MappingType struct {
	Keys  []Type
	Value Type
}

var _ Type = MappingType{}

func (MappingType) isType() {}

// NoneType is the unit/void type.
type NoneType struct{}

var _ Type = NoneType{}

func (NoneType) isType() {}
