package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	password := "hot-soup-season-42"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	password := "hot-soup-season-42"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("cold-soup-season-42", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(customCost)

	hash, err := hasher.Hash("hot-soup-season-42")
	assert.NoError(t, err)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("hot-soup-season-42")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
