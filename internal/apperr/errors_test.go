package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	err := Validation("field %q is required", "title")
	require.True(t, IsValidation(err))
	require.False(t, IsPersistence(err))
	require.Equal(t, `field "title" is required`, err.Error())

	wrapped := fmt.Errorf("create: %w", err)
	require.True(t, IsValidation(wrapped))
}

func TestPersistence(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence("insert document", cause)
	require.True(t, IsPersistence(err))
	require.False(t, IsValidation(err))
	require.Equal(t, "insert document: connection reset", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestForbiddenIsNeither(t *testing.T) {
	require.False(t, IsValidation(ErrForbidden))
	require.False(t, IsPersistence(ErrForbidden))
}
