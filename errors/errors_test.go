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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreachableError(t *testing.T) {

	t.Parallel()

	err := NewUnreachableError()

	require.NotEmpty(t, err.Stack)
	assert.Contains(t, err.Error(), "unreachable")
	assert.True(t, IsInternalError(err))
}

func TestUnexpectedError(t *testing.T) {

	t.Parallel()

	err := NewUnexpectedError("constant %s has no initial value", "decimals")

	assert.Equal(t, "constant decimals has no initial value", err.Error())
	assert.True(t, IsInternalError(err))
}

func TestIsInternalErrorWalksWrappedChains(t *testing.T) {

	t.Parallel()

	inner := NewUnexpectedError("boom")
	wrapped := fmt.Errorf("assembling impl module: %w", inner)

	assert.True(t, IsInternalError(wrapped))
	assert.False(t, IsInternalError(fmt.Errorf("plain failure")))
	assert.False(t, IsInternalError(nil))
}
