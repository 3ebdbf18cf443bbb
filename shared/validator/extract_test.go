package validator

import (
	"posada/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guestConfig = FieldConfig{
	"firstName": {Required: true, Type: TypeString, MinLength: 2, MaxLength: 100},
	"lastName":  {Required: true, Type: TypeString, MinLength: 2, MaxLength: 100},
	"email":     {Type: TypeEmail, MaxLength: 255},
}

var guestAllowedFields = []string{"firstName", "lastName", "email"}

func TestValidateAndExtract(t *testing.T) {
	t.Run("keeps only allow-listed fields", func(t *testing.T) {
		data := map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"role":      "admin",
			"id":        "df0c2a9e-0000-0000-0000-000000000000",
		}

		extracted, err := ValidateAndExtract(data, guestConfig, guestAllowedFields)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
		}, extracted)
	})

	t.Run("returns the field errors on invalid payload", func(t *testing.T) {
		data := map[string]any{
			"firstName": "Ada",
			"email":     "nope",
		}

		extracted, err := ValidateAndExtract(data, guestConfig, guestAllowedFields)

		assert.Nil(t, extracted)
		require.Error(t, err)

		fieldErrs := failure.GetFieldErrors(err)
		require.Len(t, fieldErrs, 2)
		assert.Equal(t, "email must be a valid email", fieldErrs[0].Message)
		assert.Equal(t, "lastName is required", fieldErrs[1].Message)
	})

	t.Run("absent optional field stays absent", func(t *testing.T) {
		data := map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
		}

		extracted, err := ValidateAndExtract(data, guestConfig, guestAllowedFields)

		require.NoError(t, err)
		_, present := extracted["email"]
		assert.False(t, present)
	})
}

func TestValidatePartial(t *testing.T) {
	t.Run("required rules are waived", func(t *testing.T) {
		extracted, err := ValidatePartial(map[string]any{"email": "ada@example.com"}, guestConfig)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"email": "ada@example.com"}, extracted)
	})

	t.Run("unknown and nil fields are dropped", func(t *testing.T) {
		data := map[string]any{
			"firstName": "Ada",
			"lastName":  nil,
			"role":      "admin",
		}

		extracted, err := ValidatePartial(data, guestConfig)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"firstName": "Ada"}, extracted)
	})

	t.Run("invalid present field still errors", func(t *testing.T) {
		extracted, err := ValidatePartial(map[string]any{"firstName": "A"}, guestConfig)

		assert.Nil(t, extracted)
		require.Error(t, err)

		fieldErrs := failure.GetFieldErrors(err)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "firstName must be at least 2 characters", fieldErrs[0].Message)
	})

	t.Run("empty payload extracts nothing without error", func(t *testing.T) {
		extracted, err := ValidatePartial(map[string]any{}, guestConfig)

		require.NoError(t, err)
		assert.Empty(t, extracted)
	})

	t.Run("validating an extraction again is a no-op", func(t *testing.T) {
		data := map[string]any{
			"firstName": "Ada",
			"email":     "ada@example.com",
			"role":      "admin",
		}

		once, err := ValidatePartial(data, guestConfig)
		require.NoError(t, err)

		twice, err := ValidatePartial(once, guestConfig)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	})
}
