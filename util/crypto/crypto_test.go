package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "pw123")

	// Same password, fresh salt, different hash
	hash2, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash(hash, "correct horse"))
	assert.False(t, CheckPasswordHash(hash, "wrong horse"))
	assert.False(t, CheckPasswordHash(hash, ""))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	assert.False(t, CheckPasswordHash("", "pw"))
	assert.False(t, CheckPasswordHash("not-a-hash", "pw"))
	assert.False(t, CheckPasswordHash("$bcrypt$nope", "pw"))
	assert.False(t, CheckPasswordHash("$argon2id$v=19$m=65536,t=1,p=4$!!!$!!!", "pw"))
}
