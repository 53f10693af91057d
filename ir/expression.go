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

// Expression is the sum of all expression forms the translator models.
type Expression interface {
	isExpression()
}

// ArraySubscript is an indexed access into an array: array[index].
type ArraySubscript struct {
	Array Expression
	Index Expression
}

var _ Expression = &ArraySubscript{}

func (*ArraySubscript) isExpression() {}

// MappingSubscript is an indexed access into a mapping. A composite-key
// mapping carries one index expression per key.
type MappingSubscript struct {
	Mapping Expression
	Indices []Expression
}

var _ Expression = &MappingSubscript{}

func (*MappingSubscript) isExpression() {}

// Assign is a plain or compound assignment. When Target is a mapping
// subscript, the assignment lowers to an explicit insert call, never to an
// index-store.
type Assign struct {
	Target    Expression
	Value     Expression
	Operation Operation
}

var _ Expression = &Assign{}

func (*Assign) isExpression() {}

// Binary is an arithmetic, comparison, or logical binary operation.
type Binary struct {
	Left      Expression
	Operation Operation
	Right     Expression
}

var _ Expression = &Binary{}

func (*Binary) isExpression() {}

// ConditionExpression is a Condition used in expression position.
type ConditionExpression struct {
	Condition Condition
}

var _ Expression = &ConditionExpression{}

func (*ConditionExpression) isExpression() {}

// FunctionCall is a function or method call. Calls to `require` and calls
// under an Emit statement change shape at lowering time instead of being
// translated literally.
type FunctionCall struct {
	Callee    Expression
	Arguments []Expression
}

var _ Expression = &FunctionCall{}

func (*FunctionCall) isExpression() {}

// MemberAccess is a field or method selection: parent.member.
type MemberAccess struct {
	Parent Expression
	Member string
}

var _ Expression = &MemberAccess{}

func (*MemberAccess) isExpression() {}

// NumberLiteral carries the literal source text of a number.
type NumberLiteral struct {
	Value string
}

var _ Expression = &NumberLiteral{}

func (*NumberLiteral) isExpression() {}

// StringLiteral is a string literal composed of one or more adjacent
// source fragments. Fragments are joined with a single space at lowering
// time; original adjacency is not recovered.
type StringLiteral struct {
	Parts []string
}

var _ Expression = &StringLiteral{}

func (*StringLiteral) isExpression() {}

// BoolLiteral

type BoolLiteral struct {
	Value bool
}

var _ Expression = &BoolLiteral{}

func (*BoolLiteral) isExpression() {}

// PreIncrement

type PreIncrement struct {
	Operand Expression
}

var _ Expression = &PreIncrement{}

func (*PreIncrement) isExpression() {}

// PostIncrement

type PostIncrement struct {
	Operand Expression
}

var _ Expression = &PostIncrement{}

func (*PostIncrement) isExpression() {}

// PreDecrement

type PreDecrement struct {
	Operand Expression
}

var _ Expression = &PreDecrement{}

func (*PreDecrement) isExpression() {}

// PostDecrement

type PostDecrement struct {
	Operand Expression
}

var _ Expression = &PostDecrement{}

func (*PostDecrement) isExpression() {}

// New is a `new` construction. Only array construction is supported at
// lowering time; other uses produce an explicit unimplemented marker.
type New struct {
	Inner Expression
}

var _ Expression = &New{}

func (*New) isExpression() {}

// StructInit constructs a user-declared struct value with positional
// arguments in declared field order.
type StructInit struct {
	Name      string
	Arguments []Expression
}

var _ Expression = &StructInit{}

func (*StructInit) isExpression() {}

// TypeExpression is a type reference used in value position, e.g. as the
// callee of a cast.
type TypeExpression struct {
	Type Type
}

var _ Expression = &TypeExpression{}

func (*TypeExpression) isExpression() {}

// Variable is a reference to a named variable. Storage marks a contract
// storage field: such a reference always lowers through the storage
// accessor, never to a bare identifier.
type Variable struct {
	Name    string
	Storage bool
}

var _ Expression = &Variable{}

func (*Variable) isExpression() {}

// VariableDeclaration is a declaration used in expression position,
// e.g. the left-hand side of a variable definition statement.
type VariableDeclaration struct {
	Type Type
	Name string
}

var _ Expression = &VariableDeclaration{}

func (*VariableDeclaration) isExpression() {}
