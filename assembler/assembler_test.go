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
	"sync"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/soltoink/soltoink/errors"
	"github.com/soltoink/soltoink/ir"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testToken() ir.Contract {
	uint128 := ir.UintType{Size: 128}

	return ir.Contract{
		Name:     "FluxToken",
		Comments: []string{"Minimal wrapped token"},
		Imports:  ir.NewImportSet("use openbrush::traits::AccountId;"),
		Fields: []ir.ContractField{
			{
				Type:   ir.StringType{},
				Name:   "name",
				Public: true,
			},
			{
				Type: ir.MappingType{
					Keys:  []ir.Type{ir.AccountIDType{}},
					Value: uint128,
				},
				Name: "balances",
			},
			{
				Type:         ir.UintType{Size: 8},
				Name:         "decimals",
				Constant:     true,
				Public:       true,
				InitialValue: &ir.NumberLiteral{Value: "18"},
			},
		},
		Constructor: ir.Function{
			Header: ir.FunctionHeader{
				Params: []ir.Param{
					{Name: "name", Type: ir.StringType{}},
				},
			},
			Body: []ir.Statement{
				&ir.ExpressionStatement{
					Expression: &ir.Assign{
						Target:    &ir.Variable{Name: "name", Storage: true},
						Operation: ir.OperationAssign,
						Value:     &ir.Variable{Name: "name"},
					},
				},
			},
		},
		Events: []ir.Event{
			{
				Name: "Transfer",
				Fields: []ir.EventField{
					{Indexed: true, Type: ir.AccountIDType{}, Name: "from"},
					{Indexed: true, Type: ir.AccountIDType{}, Name: "to"},
					{Type: uint128, Name: "value"},
				},
			},
		},
		Functions: []ir.Function{
			{
				Header: ir.FunctionHeader{
					Name:     "transfer",
					External: true,
					Params: []ir.Param{
						{Name: "from", Type: ir.AccountIDType{}},
						{Name: "to", Type: ir.AccountIDType{}},
						{Name: "value", Type: uint128},
					},
					ReturnParams: []ir.Param{
						{Name: "_", Type: ir.BoolType{}},
					},
					Modifiers: []ir.Expression{
						&ir.FunctionCall{
							Callee: &ir.Variable{Name: "onlyPositive"},
							Arguments: []ir.Expression{
								&ir.Variable{Name: "value"},
							},
						},
					},
				},
				Body: []ir.Statement{
					&ir.ExpressionStatement{
						Expression: &ir.Assign{
							Target: &ir.MappingSubscript{
								Mapping: &ir.Variable{Name: "balances", Storage: true},
								Indices: []ir.Expression{&ir.Variable{Name: "to"}},
							},
							Operation: ir.OperationAssign,
							Value:     &ir.Variable{Name: "value"},
						},
					},
					&ir.Emit{
						Expression: &ir.FunctionCall{
							Callee: &ir.Variable{Name: "Transfer"},
							Arguments: []ir.Expression{
								&ir.Variable{Name: "from"},
								&ir.Variable{Name: "to"},
								&ir.Variable{Name: "value"},
							},
						},
					},
					&ir.Return{Expression: &ir.BoolLiteral{Value: true}},
				},
			},
			{
				Header: ir.FunctionHeader{
					Name: "burn",
					Params: []ir.Param{
						{Name: "from", Type: ir.AccountIDType{}},
						{Name: "value", Type: uint128},
					},
				},
				Body: []ir.Statement{
					&ir.ExpressionStatement{
						Expression: &ir.Assign{
							Target: &ir.MappingSubscript{
								Mapping: &ir.Variable{Name: "balances", Storage: true},
								Indices: []ir.Expression{&ir.Variable{Name: "from"}},
							},
							Operation: ir.OperationAssign,
							Value:     &ir.NumberLiteral{Value: "0"},
						},
					},
				},
			},
		},
		Modifiers: []ir.Modifier{
			{
				Header: ir.FunctionHeader{
					Name: "onlyPositive",
					Params: []ir.Param{
						{Name: "value", Type: uint128},
					},
				},
				Statements: []ir.Statement{
					&ir.ExpressionStatement{
						Expression: &ir.FunctionCall{
							Callee: &ir.Variable{Name: "require"},
							Arguments: []ir.Expression{
								&ir.ConditionExpression{
									Condition: ir.Condition{
										Left:      &ir.Variable{Name: "value"},
										Operation: ir.OperationGreater,
										Right:     &ir.NumberLiteral{Value: "0"},
									},
								},
								&ir.StringLiteral{Parts: []string{"zero value"}},
							},
						},
					},
				},
			},
		},
	}
}

func testSwapInterface() ir.Interface {
	uint128 := ir.UintType{Size: 128}

	return ir.Interface{
		Name:    "IFluxSwap",
		Imports: ir.NewImportSet("use openbrush::traits::AccountId;"),
		FunctionHeaders: []ir.FunctionHeader{
			{
				Name:     "swapExactTokens",
				External: true,
				Payable:  true,
				Params: []ir.Param{
					{Name: "amountIn", Type: uint128},
				},
				ReturnParams: []ir.Param{
					{Name: "_", Type: uint128},
				},
			},
			{
				Name:     "getPair",
				External: true,
				View:     true,
				Params: []ir.Param{
					{Name: "tokenA", Type: ir.AccountIDType{}},
					{Name: "tokenB", Type: ir.AccountIDType{}},
				},
				ReturnParams: []ir.Param{
					{Name: "_", Type: ir.AccountIDType{}},
				},
			},
		},
	}
}

func testMathLibrary() ir.Library {
	uint128 := ir.UintType{Size: 128}

	return ir.Library{
		Name:     "SafeMath",
		Comments: []string{"Arithmetic helpers"},
		Functions: []ir.Function{
			{
				Header: ir.FunctionHeader{
					Name:     "add",
					External: true,
					Params: []ir.Param{
						{Name: "a", Type: uint128},
						{Name: "b", Type: uint128},
					},
					ReturnParams: []ir.Param{
						{Name: "c", Type: uint128},
					},
				},
				Body: []ir.Statement{
					&ir.ExpressionStatement{
						Expression: &ir.Assign{
							Target:    &ir.Variable{Name: "c"},
							Operation: ir.OperationAssign,
							Value: &ir.Binary{
								Left:      &ir.Variable{Name: "a"},
								Operation: ir.OperationAdd,
								Right:     &ir.Variable{Name: "b"},
							},
						},
					},
					&ir.ExpressionStatement{
						Expression: &ir.FunctionCall{
							Callee: &ir.Variable{Name: "require"},
							Arguments: []ir.Expression{
								&ir.ConditionExpression{
									Condition: ir.Condition{
										Left:      &ir.Variable{Name: "c"},
										Operation: ir.OperationGreaterEqual,
										Right:     &ir.Variable{Name: "a"},
									},
								},
								&ir.StringLiteral{Parts: []string{"addition overflow"}},
							},
						},
					},
				},
			},
		},
	}
}

func assertGolden(t *testing.T, name string, actual string, input any) {
	t.Helper()

	g := goldie.New(t)
	g.Assert(t, name, []byte(actual))
	if t.Failed() {
		t.Log(pp.Sprint(input))
	}
}

func TestAssembleContract(t *testing.T) {

	t.Parallel()

	contract := testToken()
	stream, err := AssembleContract(DefaultContext(), contract)
	require.NoError(t, err)

	assertGolden(t, "contract", stream.String(), contract)
}

func TestAssembleImpl(t *testing.T) {

	t.Parallel()

	contract := testToken()
	stream, err := AssembleImpl(DefaultContext(), contract)
	require.NoError(t, err)

	assertGolden(t, "impl", stream.String(), contract)
}

func TestAssembleTrait(t *testing.T) {

	t.Parallel()

	contract := testToken()
	stream, err := AssembleTrait(DefaultContext(), contract)
	require.NoError(t, err)

	assertGolden(t, "trait", stream.String(), contract)
}

func TestAssembleInterface(t *testing.T) {

	t.Parallel()

	iface := testSwapInterface()
	stream, err := AssembleInterface(DefaultContext(), iface)
	require.NoError(t, err)

	assertGolden(t, "interface", stream.String(), iface)
}

func TestAssembleLibrary(t *testing.T) {

	t.Parallel()

	library := testMathLibrary()
	stream, err := AssembleLibrary(DefaultContext(), library)
	require.NoError(t, err)

	assertGolden(t, "library", stream.String(), library)
}

func TestAssembleDeterminism(t *testing.T) {

	t.Parallel()

	expected, err := AssembleImpl(DefaultContext(), testToken())
	require.NoError(t, err)

	results := make([]string, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stream, err := AssembleImpl(DefaultContext(), testToken())
			assert.NoError(t, err)
			results[i] = stream.String()
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, expected.String(), result)
	}
}

func TestAssembleRecoversInternalErrors(t *testing.T) {

	t.Parallel()

	contract := testToken()
	contract.Fields = append(contract.Fields, ir.ContractField{
		Type:     ir.UintType{Size: 128},
		Name:     "broken",
		Constant: true,
	})

	_, err := AssembleContract(DefaultContext(), contract)
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
	assert.ErrorContains(t, err, "broken")
}

func TestAssembleWithoutBanner(t *testing.T) {

	t.Parallel()

	stream, err := AssembleInterface(Context{}, testSwapInterface())
	require.NoError(t, err)
	assert.NotContains(t, stream.String(), "_comment_!")
}

func TestStorageKey(t *testing.T) {

	t.Parallel()

	// key derivation must never change, stored contract data depends on it
	assert.Equal(t, "0x33f18bec", storageKey("FluxToken"))

	assert.NotEqual(t, storageKey("FluxToken"), storageKey("FluxTokenV2"))
	assert.Equal(t, storageKey("flux_token"), storageKey("FluxToken"))
}

func TestGetterGeneration(t *testing.T) {

	t.Parallel()

	field := func(public, constant bool) ir.ContractField {
		return ir.ContractField{
			Type:         ir.UintType{Size: 128},
			Name:         "value",
			Public:       public,
			Constant:     constant,
			InitialValue: &ir.NumberLiteral{Value: "1"},
		}
	}

	tests := []struct {
		public, constant bool
		generated        bool
	}{
		{public: true, constant: false, generated: true},
		{public: true, constant: true, generated: false},
		{public: false, constant: false, generated: false},
		{public: false, constant: true, generated: false},
	}

	for _, test := range tests {
		fields := []ir.ContractField{field(test.public, test.constant)}

		implGetter := assembleGetters(fields)
		traitGetter := assembleGettersTrait(fields)

		// both sides must agree, or the trait and its impl drift apart
		assert.Equal(t, test.generated, !implGetter.IsEmpty(),
			"public=%v constant=%v", test.public, test.constant)
		assert.Equal(t, test.generated, !traitGetter.IsEmpty(),
			"public=%v constant=%v", test.public, test.constant)
	}
}
