package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("password")
	require.NoError(t, err)
	require.NotEmpty(t, h)
	require.NotEqual(t, "password", h)

	require.True(t, CheckPassword(h, "password"))
	require.False(t, CheckPassword(h, "wrong_password"))
}

func TestHashIsRandomized(t *testing.T) {
	h1, err := HashPassword("password")
	require.NoError(t, err)
	h2, err := HashPassword("password")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
