package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrAuthRequired", ErrAuthRequired},
		{"ErrAuthInvalid", ErrAuthInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrInvalidInput tests ErrInvalidInput error
func TestErrInvalidInput(t *testing.T) {
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
	assert.True(t, errors.Is(ErrInvalidInput, ErrInvalidInput))
	assert.False(t, errors.Is(ErrInvalidInput, ErrAuthRequired))
}

// TestErrAuthRequired tests ErrAuthRequired error
func TestErrAuthRequired(t *testing.T) {
	assert.Equal(t, "authentication required", ErrAuthRequired.Error())
	assert.True(t, errors.Is(ErrAuthRequired, ErrAuthRequired))
	assert.False(t, errors.Is(ErrAuthRequired, ErrAuthInvalid))
}

// TestErrorWrapping tests that wrapped domain errors remain matchable
func TestErrorWrapping(t *testing.T) {
	wrapped := errors.Join(errors.New("service_account.json not found"), ErrAuthRequired)
	assert.True(t, errors.Is(wrapped, ErrAuthRequired))
}
