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

// Statement is the sum of all statement forms the translator models.
type Statement interface {
	isStatement()
}

// Block is a braced statement sequence.
type Block struct {
	Statements []Statement
}

var _ Statement = &Block{}

func (*Block) isStatement() {}

// Break

type Break struct{}

var _ Statement = &Break{}

func (*Break) isStatement() {}

// Continue

type Continue struct{}

var _ Statement = &Continue{}

func (*Continue) isStatement() {}

// DoWhile runs Body at least once, then repeats while Condition holds.
type DoWhile struct {
	Body      []Statement
	Condition Condition
}

var _ Statement = &DoWhile{}

func (*DoWhile) isStatement() {}

// While

type While struct {
	Condition Condition
	Body      []Statement
}

var _ Statement = &While{}

func (*While) isStatement() {}

// For is a C-style loop. Init, Condition, and Post are each optional.
type For struct {
	Init      Statement
	Condition *Condition
	Post      Statement
	Body      []Statement
}

var _ Statement = &For{}

func (*For) isStatement() {}

// If is a conditional with an optional else branch. A nil Else emits no
// branch at all.
type If struct {
	Test Condition
	Then []Statement
	Else []Statement
}

var _ Statement = &If{}

func (*If) isStatement() {}

// Emit is an event emission. Its expression must be a call whose callee is
// a named event; any other shape is a violation of the front-end's
// contract.
type Emit struct {
	Expression Expression
}

var _ Statement = &Emit{}

func (*Emit) isStatement() {}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func (*ExpressionStatement) isStatement() {}

// Return returns the optional value. It always lowers to a
// successful-result wrapping of the value.
type Return struct {
	Expression Expression
}

var _ Statement = &Return{}

func (*Return) isStatement() {}

// Revert aborts with the named error and positional arguments. It lowers
// to a typed failure return, never to a language-level abort.
type Revert struct {
	ErrorName string
	Arguments []Expression
}

var _ Statement = &Revert{}

func (*Revert) isStatement() {}

// RevertNamedArgs is a revert with named arguments, which is not yet
// modeled and lowers to an explicit unimplemented marker.
type RevertNamedArgs struct{}

var _ Statement = &RevertNamedArgs{}

func (*RevertNamedArgs) isStatement() {}

// Try checks the wrapped fallible expression. Success-path value
// extraction is not yet modeled.
type Try struct {
	Expression Expression
}

var _ Statement = &Try{}

func (*Try) isStatement() {}

// Unchecked is an unchecked-arithmetic block. The target has no
// equivalent, so the inner statements are bracketed with manual-review
// markers at lowering time.
type Unchecked struct {
	Statements []Statement
}

var _ Statement = &Unchecked{}

func (*Unchecked) isStatement() {}

// VariableDefinition is a declaration with an optional initializer.
type VariableDefinition struct {
	Declaration *VariableDeclaration
	Initial     Expression
}

var _ Statement = &VariableDefinition{}

func (*VariableDefinition) isStatement() {}

// Assembly is a raw assembly block, which is not yet modeled and lowers
// to an explicit unimplemented marker.
type Assembly struct{}

var _ Statement = &Assembly{}

func (*Assembly) isStatement() {}

// ParseError is a statement the front-end could not parse. It lowers to
// an explicit unimplemented marker rather than being dropped.
type ParseError struct{}

var _ Statement = &ParseError{}

func (*ParseError) isStatement() {}
