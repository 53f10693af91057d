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

import "sort"

// ImportSet is an insertion-deduplicating set of opaque import statements.
// Imports pass through the translator unchanged; only uniqueness and a
// stable emission order are guaranteed.
type ImportSet struct {
	imports map[string]struct{}
}

func NewImportSet(imports ...string) ImportSet {
	set := ImportSet{
		imports: make(map[string]struct{}, len(imports)),
	}
	for _, imp := range imports {
		set.Add(imp)
	}
	return set
}

func (s *ImportSet) Add(imp string) {
	if s.imports == nil {
		s.imports = map[string]struct{}{}
	}
	s.imports[imp] = struct{}{}
}

func (s ImportSet) Contains(imp string) bool {
	_, ok := s.imports[imp]
	return ok
}

// Sorted returns the imports in a stable order.
func (s ImportSet) Sorted() []string {
	result := make([]string, 0, len(s.imports))
	for imp := range s.imports {
		result = append(result, imp)
	}
	sort.Strings(result)
	return result
}

// Contract is a fully-parsed Solidity contract.
type Contract struct {
	Name        string
	Fields      []ContractField
	Constructor Function
	Events      []Event
	Enums       []Enum
	Structs     []Struct
	Functions   []Function
	Imports     ImportSet
	Comments    []string
	Modifiers   []Modifier
}

// Library is a fully-parsed Solidity library. All functions are free
// functions; a library has no constructor, storage, or modifiers.
type Library struct {
	Name      string
	Fields    []ContractField
	Events    []Event
	Enums     []Enum
	Structs   []Struct
	Functions []Function
	Imports   ImportSet
	Comments  []string
}

// Interface is a fully-parsed Solidity interface: function headers only,
// no bodies.
type Interface struct {
	Name            string
	Events          []Event
	Enums           []Enum
	Structs         []Struct
	FunctionHeaders []FunctionHeader
	Imports         ImportSet
	Comments        []string
}
