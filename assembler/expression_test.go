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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soltoink/soltoink/ir"
)

func storageVar(name string) *ir.Variable {
	return &ir.Variable{Name: name, Storage: true}
}

func localVar(name string) *ir.Variable {
	return &ir.Variable{Name: name}
}

func TestLowerStorageVariable(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		"self.data().total_supply",
		render(lowerExpression(storageVar("totalSupply"))),
	)

	assert.Equal(t,
		"total_supply",
		render(lowerExpression(localVar("totalSupply"))),
	)
}

func TestLowerMappingRead(t *testing.T) {

	t.Parallel()

	read := &ir.MappingSubscript{
		Mapping: storageVar("balances"),
		Indices: []ir.Expression{localVar("owner")},
	}

	assert.Equal(t,
		"self.data().balances.get(&owner).unwrap_or_default()",
		render(lowerExpression(read)),
	)
}

func TestLowerMappingAssignment(t *testing.T) {

	t.Parallel()

	t.Run("single key", func(t *testing.T) {
		t.Parallel()

		assign := &ir.Assign{
			Target: &ir.MappingSubscript{
				Mapping: storageVar("balances"),
				Indices: []ir.Expression{localVar("owner")},
			},
			Operation: ir.OperationAssign,
			Value:     localVar("value"),
		}

		assert.Equal(t,
			"self.data().balances.insert(&owner, &value)",
			render(lowerExpression(assign)),
		)
	})

	t.Run("composite key", func(t *testing.T) {
		t.Parallel()

		assign := &ir.Assign{
			Target: &ir.MappingSubscript{
				Mapping: storageVar("allowances"),
				Indices: []ir.Expression{
					localVar("owner"),
					localVar("spender"),
				},
			},
			Operation: ir.OperationAssign,
			Value:     localVar("value"),
		}

		assert.Equal(t,
			"self.data().allowances.insert(&(owner, spender), &value)",
			render(lowerExpression(assign)),
		)
	})
}

func TestLowerCompoundAssignment(t *testing.T) {

	t.Parallel()

	assign := &ir.Assign{
		Target:    storageVar("totalSupply"),
		Operation: ir.OperationAddAssign,
		Value:     localVar("value"),
	}

	assert.Equal(t,
		"self.data().total_supply += value",
		render(lowerExpression(assign)),
	)
}

func TestLowerRequire(t *testing.T) {

	t.Parallel()

	requireCall := func(arguments ...ir.Expression) *ir.FunctionCall {
		return &ir.FunctionCall{
			Callee:    localVar("require"),
			Arguments: arguments,
		}
	}

	t.Run("with message", func(t *testing.T) {
		t.Parallel()

		call := requireCall(
			&ir.ConditionExpression{
				Condition: ir.Condition{
					Left:      localVar("a"),
					Operation: ir.OperationGreaterEqual,
					Right:     localVar("b"),
				},
			},
			&ir.StringLiteral{Parts: []string{"insufficient balance"}},
		)

		assert.Equal(t,
			"if a < b {\n"+
				"    return Err(Error::Custom(String::from(\"insufficient balance\")))\n"+
				"}",
			render(lowerExpression(call)),
		)
	})

	t.Run("default message", func(t *testing.T) {
		t.Parallel()

		call := requireCall(
			&ir.ConditionExpression{
				Condition: ir.Condition{
					Left:      localVar("approved"),
					Operation: ir.OperationTrue,
				},
			},
		)

		assert.Equal(t,
			"if !(approved) {\n"+
				"    return Err(Error::Custom(String::from(\"No error message provided :)\")))\n"+
				"}",
			render(lowerExpression(call)),
		)
	})

	t.Run("opaque test", func(t *testing.T) {
		t.Parallel()

		call := requireCall(
			&ir.FunctionCall{Callee: localVar("approved")},
			&ir.StringLiteral{Parts: []string{"not approved"}},
		)

		assert.Equal(t,
			"if !(approved()) {\n"+
				"    return Err(Error::Custom(String::from(\"not approved\")))\n"+
				"}",
			render(lowerExpression(call)),
		)
	})
}

func TestLowerPow(t *testing.T) {

	t.Parallel()

	pow := &ir.Binary{
		Left:      &ir.NumberLiteral{Value: "10"},
		Operation: ir.OperationPow,
		Right:     localVar("decimals"),
	}

	assert.Equal(t, "10.pow(decimals)", render(lowerExpression(pow)))
}

func TestLowerNewArray(t *testing.T) {

	t.Parallel()

	construction := &ir.New{
		Inner: &ir.FunctionCall{
			Callee: &ir.ArraySubscript{
				Array: &ir.TypeExpression{Type: ir.UintType{Size: 128}},
			},
			Arguments: []ir.Expression{&ir.NumberLiteral{Value: "10"}},
		},
	}

	assert.Equal(t,
		"vec![u128::default(); 10]",
		render(lowerExpression(construction)),
	)

	opaque := &ir.New{Inner: localVar("pair")}
	assert.Equal(t, "todo!()", render(lowerExpression(opaque)))
}

func TestLowerIncrementDecrement(t *testing.T) {

	t.Parallel()

	i := localVar("i")

	assert.Equal(t, "i += 1", render(lowerExpression(&ir.PreIncrement{Operand: i})))
	assert.Equal(t, "i += 1", render(lowerExpression(&ir.PostIncrement{Operand: i})))
	assert.Equal(t, "i -= 1", render(lowerExpression(&ir.PreDecrement{Operand: i})))
	assert.Equal(t, "i -= 1", render(lowerExpression(&ir.PostDecrement{Operand: i})))
}

func TestLowerMemberAccess(t *testing.T) {

	t.Parallel()

	access := &ir.MemberAccess{
		Parent: localVar("position"),
		Member: "fn",
	}

	assert.Equal(t,
		"position.fn_is_rust_keyword",
		render(lowerExpression(access)),
	)
}

func TestLowerStringLiteral(t *testing.T) {

	t.Parallel()

	literal := &ir.StringLiteral{Parts: []string{"Wrapped", "Ether"}}
	assert.Equal(t, `"Wrapped Ether"`, render(lowerExpression(literal)))
}

func TestLowerVariableDeclaration(t *testing.T) {

	t.Parallel()

	declaration := &ir.VariableDeclaration{
		Type: ir.UintType{Size: 128},
		Name: "amountOut",
	}

	assert.Equal(t,
		"let mut amount_out: u128",
		render(lowerExpression(declaration)),
	)

	untyped := &ir.VariableDeclaration{
		Type: ir.NoneType{},
		Name: "pair",
	}

	assert.Equal(t, "let mut pair", render(lowerExpression(untyped)))
}

func TestLowerConditionExpression(t *testing.T) {

	t.Parallel()

	tests := []struct {
		condition ir.Condition
		expected  string
	}{
		{
			ir.Condition{Left: localVar("ok"), Operation: ir.OperationTrue},
			"ok",
		},
		{
			ir.Condition{Left: localVar("ok"), Operation: ir.OperationNot},
			"!(ok)",
		},
		{
			ir.Condition{
				Left:      localVar("a"),
				Operation: ir.OperationLessEqual,
				Right:     localVar("b"),
			},
			"a <= b",
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, render(lowerCondition(test.condition)))
	}
}
