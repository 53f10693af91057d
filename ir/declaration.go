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

package ir

// ContractField is a state variable declaration of a contract or library.
type ContractField struct {
	Type     Type
	Name     string
	Comments []string
	// InitialValue is required for constant fields. The front-end
	// guarantees this by construction.
	InitialValue Expression
	Constant     bool
	Public       bool
}

// Event

type Event struct {
	Name     string
	Fields   []EventField
	Comments []string
}

// EventField is one event parameter. Indexed fields become queryable
// topics in the emitted event type.
type EventField struct {
	Indexed  bool
	Type     Type
	Name     string
	Comments []string
}

// Enum

type Enum struct {
	Name     string
	Values   []EnumField
	Comments []string
}

type EnumField struct {
	Name     string
	Comments []string
}

// Struct

type Struct struct {
	Name     string
	Fields   []StructField
	Comments []string
}

type StructField struct {
	Name     string
	Type     Type
	Comments []string
}

// Param is one function parameter or return slot. The name "_" denotes an
// intentionally discarded slot.
type Param struct {
	Name string
	Type Type
}

// FunctionHeader is the signature of a function, without its body.
type FunctionHeader struct {
	Name         string
	Params       []Param
	External     bool
	View         bool
	Payable      bool
	ReturnParams []Param
	// Modifiers are the modifier invocations attached to the function.
	Modifiers []Expression
	Comments  []string
}

// Function

type Function struct {
	Header FunctionHeader
	Body   []Statement
}

// Modifier is a function modifier. It lowers to a higher-order wrapping
// function which may short-circuit without invoking its continuation.
type Modifier struct {
	Header     FunctionHeader
	Statements []Statement
	Comments   []string
}
