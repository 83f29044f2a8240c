// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Format(t *testing.T) {
	err := NewError(ErrEmptyPool, "cannot mux an empty collection")
	assert.Equal(t, "[EMPTY_POOL] cannot mux an empty collection", err.Error())

	cause := errors.New("boom")
	err = NewError(ErrInvalidConfig, "parse mux config").WithCause(cause)
	assert.Equal(t, "[INVALID_CONFIG] parse mux config: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestError_Codes(t *testing.T) {
	err := NewErrorf(ErrWeightLength, "weights must be the same length as streamers: %d != %d", 2, 3)
	require.Error(t, err)

	assert.Equal(t, ErrWeightLength, GetErrorCode(err))
	assert.True(t, IsErrorCode(err, ErrWeightLength))
	assert.False(t, IsErrorCode(err, ErrEmptyPool))

	// Wrapped errors still expose their code.
	wrapped := fmt.Errorf("building mux: %w", err)
	assert.Equal(t, ErrWeightLength, GetErrorCode(wrapped))
}

func TestError_NonStructured(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetErrorCode(errors.New("plain")))
	assert.False(t, IsErrorCode(nil, ErrEmptyPool))
}
