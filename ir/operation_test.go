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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationSymbol(t *testing.T) {

	t.Parallel()

	tests := map[Operation]string{
		OperationAdd:            "+",
		OperationSubtract:       "-",
		OperationMul:            "*",
		OperationDiv:            "/",
		OperationModulo:         "%",
		OperationShiftLeft:      "<<",
		OperationShiftRight:     ">>",
		OperationXor:            "^",
		OperationEqual:          "==",
		OperationNotEqual:       "!=",
		OperationLessEqual:      "<=",
		OperationGreaterEqual:   ">=",
		OperationLogicalAnd:     "&&",
		OperationLogicalOr:      "||",
		OperationAssign:         "=",
		OperationAddAssign:      "+=",
		OperationSubtractAssign: "-=",
		OperationUnknown:        "",
		OperationPow:            "",
		OperationTrue:           "",
	}

	for op, expected := range tests {
		assert.Equal(t, expected, op.Symbol())
	}
}

func TestOperationNegate(t *testing.T) {

	t.Parallel()

	tests := map[Operation]Operation{
		OperationEqual:        OperationNotEqual,
		OperationNotEqual:     OperationEqual,
		OperationLess:         OperationGreaterEqual,
		OperationLessEqual:    OperationGreater,
		OperationGreater:      OperationLessEqual,
		OperationGreaterEqual: OperationLess,
		OperationLogicalAnd:   OperationLogicalOr,
		OperationLogicalOr:    OperationLogicalAnd,
		OperationNot:          OperationTrue,
		OperationAdd:          OperationNot,
		OperationTrue:         OperationNot,
	}

	for op, expected := range tests {
		assert.Equal(t, expected, op.Negate())
	}

	// comparison negation is an involution
	for _, op := range []Operation{
		OperationEqual,
		OperationNotEqual,
		OperationLess,
		OperationLessEqual,
		OperationGreater,
		OperationGreaterEqual,
	} {
		assert.Equal(t, op, op.Negate().Negate())
	}
}

func TestOperationClassification(t *testing.T) {

	t.Parallel()

	assert.True(t, OperationAssign.IsAssignment())
	assert.True(t, OperationAddAssign.IsAssignment())
	assert.False(t, OperationEqual.IsAssignment())
	assert.False(t, OperationAdd.IsAssignment())

	assert.True(t, OperationLess.IsComparison())
	assert.True(t, OperationNotEqual.IsComparison())
	assert.False(t, OperationLogicalAnd.IsComparison())
	assert.False(t, OperationAssign.IsComparison())
}

func TestConditionNegate(t *testing.T) {

	t.Parallel()

	left := &Variable{Name: "a"}
	right := &Variable{Name: "b"}

	t.Run("comparison flips the operator", func(t *testing.T) {
		t.Parallel()

		negated := Condition{
			Left:      left,
			Operation: OperationLess,
			Right:     right,
		}.Negate()

		assert.Equal(t, OperationGreaterEqual, negated.Operation)
		assert.Same(t, left, negated.Left)
		assert.Same(t, right, negated.Right)
	})

	t.Run("bare test becomes a negation", func(t *testing.T) {
		t.Parallel()

		negated := Condition{
			Left:      left,
			Operation: OperationTrue,
		}.Negate()

		assert.Equal(t, OperationNot, negated.Operation)
		assert.Same(t, left, negated.Left)
	})

	t.Run("negation becomes a bare test", func(t *testing.T) {
		t.Parallel()

		negated := Condition{
			Left:      left,
			Operation: OperationNot,
		}.Negate()

		assert.Equal(t, OperationTrue, negated.Operation)
		assert.Same(t, left, negated.Left)
	})

	t.Run("logical condition wraps", func(t *testing.T) {
		t.Parallel()

		condition := Condition{
			Left:      left,
			Operation: OperationLogicalAnd,
			Right:     right,
		}

		negated := condition.Negate()
		require.Equal(t, OperationNot, negated.Operation)

		wrapped, ok := negated.Left.(*ConditionExpression)
		require.True(t, ok)
		assert.Equal(t, condition, wrapped.Condition)
	})
}

func TestImportSet(t *testing.T) {

	t.Parallel()

	set := NewImportSet(
		"use openbrush::traits::Storage;",
		"use ink_prelude::vec::*;",
	)
	set.Add("use openbrush::traits::Storage;")

	require.True(t, set.Contains("use ink_prelude::vec::*;"))
	require.False(t, set.Contains("use scale::Encode;"))

	assert.Equal(t,
		[]string{
			"use ink_prelude::vec::*;",
			"use openbrush::traits::Storage;",
		},
		set.Sorted(),
	)
}
