package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInputNotFound", ErrInputNotFound},
		{"ErrConfiguration", ErrConfiguration},
		{"ErrIOFailure", ErrIOFailure},
		{"ErrRunNotFound", ErrRunNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrInputNotFound(t *testing.T) {
	assert.Equal(t, "input not found", ErrInputNotFound.Error())
	assert.False(t, errors.Is(ErrInputNotFound, ErrIOFailure))
}

// TestErrors_Wrapped tests that wrapped errors still match their sentinel
func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("load /data/test/pos: %w", ErrInputNotFound)
	assert.ErrorIs(t, wrapped, ErrInputNotFound)
	assert.NotErrorIs(t, wrapped, ErrConfiguration)

	wrapped = fmt.Errorf("pipeline: %w", ErrConfiguration)
	assert.ErrorIs(t, wrapped, ErrConfiguration)
	assert.NotErrorIs(t, wrapped, ErrIOFailure)
}
