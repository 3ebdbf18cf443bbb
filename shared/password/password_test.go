package password_test

import (
	"strings"
	"testing"

	"posada/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	t.Run("valid password", func(t *testing.T) {
		hash, err := password.Hash("Sunrise42")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$2"))
	})

	t.Run("empty password", func(t *testing.T) {
		hash, err := password.Hash("")

		assert.Error(t, err)
		assert.Empty(t, hash)
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		hash, err := password.Hash(strings.Repeat("a", 100))

		assert.Error(t, err)
		assert.Empty(t, hash)
	})

	t.Run("salted hashes differ per call", func(t *testing.T) {
		first, err := password.Hash("Sunrise42")
		require.NoError(t, err)

		second, err := password.Hash("Sunrise42")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("Sunrise42")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		assert.NoError(t, password.Verify("Sunrise42", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		err := password.Verify("Moonset42", hash)

		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})

	t.Run("empty password", func(t *testing.T) {
		err := password.Verify("", hash)

		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})

	t.Run("empty hash", func(t *testing.T) {
		err := password.Verify("Sunrise42", "")

		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})

	t.Run("malformed hash", func(t *testing.T) {
		err := password.Verify("Sunrise42", "not-a-bcrypt-hash")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, password.ErrInvalidPassword)
	})
}
