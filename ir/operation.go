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

// Operation is an arithmetic, comparison, logical, or assignment operator.
type Operation uint8

const (
	OperationUnknown Operation = iota

	// arithmetic
	OperationAdd
	OperationSubtract
	OperationMul
	OperationDiv
	OperationModulo
	OperationPow
	OperationShiftLeft
	OperationShiftRight
	OperationBitwiseAnd
	OperationBitwiseOr
	OperationXor

	// comparison
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationLessEqual
	OperationGreater
	OperationGreaterEqual

	// logical
	OperationLogicalAnd
	OperationLogicalOr
	OperationNot
	// OperationTrue tests the left operand of a Condition as a bare boolean
	OperationTrue

	// assignment
	OperationAssign
	OperationAddAssign
	OperationSubtractAssign
	OperationMulAssign
	OperationDivAssign
	OperationAndAssign
	OperationOrAssign
)

// Symbol returns the target-language operator text.
// OperationPow has no operator in the target and is handled specially
// at lowering time; OperationTrue and OperationUnknown have no symbol.
func (op Operation) Symbol() string {
	switch op {
	case OperationAdd:
		return "+"
	case OperationSubtract:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationModulo:
		return "%"
	case OperationShiftLeft:
		return "<<"
	case OperationShiftRight:
		return ">>"
	case OperationBitwiseAnd:
		return "&"
	case OperationBitwiseOr:
		return "|"
	case OperationXor:
		return "^"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationLessEqual:
		return "<="
	case OperationGreater:
		return ">"
	case OperationGreaterEqual:
		return ">="
	case OperationLogicalAnd:
		return "&&"
	case OperationLogicalOr:
		return "||"
	case OperationNot:
		return "!"
	case OperationAssign:
		return "="
	case OperationAddAssign:
		return "+="
	case OperationSubtractAssign:
		return "-="
	case OperationMulAssign:
		return "*="
	case OperationDivAssign:
		return "/="
	case OperationAndAssign:
		return "&="
	case OperationOrAssign:
		return "|="
	}
	return ""
}

// IsAssignment reports whether the operation is a plain or compound
// assignment operator.
func (op Operation) IsAssignment() bool {
	switch op {
	case OperationAssign,
		OperationAddAssign,
		OperationSubtractAssign,
		OperationMulAssign,
		OperationDivAssign,
		OperationAndAssign,
		OperationOrAssign:
		return true
	}
	return false
}

// IsComparison reports whether the operation compares two operands.
func (op Operation) IsComparison() bool {
	switch op {
	case OperationEqual,
		OperationNotEqual,
		OperationLess,
		OperationLessEqual,
		OperationGreater,
		OperationGreaterEqual:
		return true
	}
	return false
}

// Negate returns the operation which yields the complementary result.
// Operations without a direct complement negate to OperationNot,
// i.e. the whole expression is to be negated.
func (op Operation) Negate() Operation {
	switch op {
	case OperationBitwiseAnd:
		return OperationBitwiseOr
	case OperationBitwiseOr:
		return OperationBitwiseAnd
	case OperationEqual:
		return OperationNotEqual
	case OperationNotEqual:
		return OperationEqual
	case OperationGreaterEqual:
		return OperationLess
	case OperationGreater:
		return OperationLessEqual
	case OperationLessEqual:
		return OperationGreater
	case OperationLess:
		return OperationGreaterEqual
	case OperationLogicalAnd:
		return OperationLogicalOr
	case OperationLogicalOr:
		return OperationLogicalAnd
	case OperationNot:
		return OperationTrue
	default:
		return OperationNot
	}
}

// Condition is a normalized boolean test: left op right.
// OperationTrue tests Left as a bare boolean and leaves Right nil.
type Condition struct {
	Left      Expression
	Operation Operation
	Right     Expression
}

// Negate returns the complementary condition. Comparisons flip their
// operator; tests without a complement are wrapped with OperationNot.
func (c Condition) Negate() Condition {
	if c.Operation.IsComparison() {
		return Condition{
			Left:      c.Left,
			Operation: c.Operation.Negate(),
			Right:     c.Right,
		}
	}
	switch c.Operation {
	case OperationNot:
		return Condition{
			Left:      c.Left,
			Operation: OperationTrue,
		}
	case OperationTrue:
		return Condition{
			Left:      c.Left,
			Operation: OperationNot,
		}
	default:
		return Condition{
			Left:      &ConditionExpression{Condition: c},
			Operation: OperationNot,
		}
	}
}
