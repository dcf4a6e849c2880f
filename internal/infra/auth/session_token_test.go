package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenService_Generate(t *testing.T) {
	svc := NewSessionTokenService()

	raw, hash, err := svc.Generate()
	require.NoError(t, err)
	assert.Len(t, raw, 64)  // 32 random bytes, hex encoded
	assert.Len(t, hash, 64) // sha256 hex digest
	assert.NotEqual(t, raw, hash)

	// The stored hash must be recomputable from the raw cookie value.
	assert.Equal(t, hash, svc.HashToken(raw))
}

func TestSessionTokenService_GenerateIsUnique(t *testing.T) {
	svc := NewSessionTokenService()

	seen := make(map[string]bool)
	for range 50 {
		raw, _, err := svc.Generate()
		require.NoError(t, err)
		assert.False(t, seen[raw], "token generated twice")
		seen[raw] = true
	}
}

func TestSessionTokenService_HashTokenIsDeterministic(t *testing.T) {
	svc := NewSessionTokenService()

	assert.Equal(t, svc.HashToken("abc"), svc.HashToken("abc"))
	assert.NotEqual(t, svc.HashToken("abc"), svc.HashToken("abd"))
}
