package validator_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/internal/domains/guest/validator"
	"posada/shared/failure"
)

func validGuestPayload() map[string]any {
	return map[string]any{
		"firstName":      "María",
		"lastName":       "González",
		"email":          "maria@example.com",
		"phone":          "+573001234567",
		"documentType":   "Passport",
		"documentNumber": "AB-123456",
		"dateOfBirth":    "1990-05-20",
		"nationality":    "Colombian",
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	messages := map[string]string{}
	for _, fieldErr := range failure.GetFieldErrors(err) {
		messages[fieldErr.Field] = fieldErr.Message
	}

	return messages
}

func TestGuestExtractCreate(t *testing.T) {
	t.Run("valid payload extracts allow-listed fields", func(t *testing.T) {
		extracted, err := validator.ExtractCreate(validGuestPayload())

		require.NoError(t, err)
		assert.Equal(t, "María", extracted["firstName"])
		assert.Equal(t, "AB-123456", extracted["documentNumber"])
		assert.NotContains(t, extracted, "dateOfBirth")
	})

	t.Run("extra fields are dropped", func(t *testing.T) {
		payload := validGuestPayload()
		payload["isAdmin"] = true
		payload["id"] = "forced-id"

		extracted, err := validator.ExtractCreate(payload)

		require.NoError(t, err)
		assert.NotContains(t, extracted, "isAdmin")
		assert.NotContains(t, extracted, "id")
	})

	tests := []struct {
		name        string
		mutate      func(map[string]any)
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing first name",
			mutate:      func(p map[string]any) { delete(p, "firstName") },
			wantField:   "firstName",
			wantMessage: "firstName is required",
		},
		{
			name:        "empty last name",
			mutate:      func(p map[string]any) { p["lastName"] = "" },
			wantField:   "lastName",
			wantMessage: "lastName is required",
		},
		{
			name:        "first name with digits",
			mutate:      func(p map[string]any) { p["firstName"] = "Mar1a" },
			wantField:   "firstName",
			wantMessage: "firstName has invalid format",
		},
		{
			name:        "single character first name",
			mutate:      func(p map[string]any) { p["firstName"] = "M" },
			wantField:   "firstName",
			wantMessage: "firstName must be at least 2 characters",
		},
		{
			name:        "malformed email",
			mutate:      func(p map[string]any) { p["email"] = "not-an-email" },
			wantField:   "email",
			wantMessage: "email must be a valid email",
		},
		{
			name:        "malformed phone",
			mutate:      func(p map[string]any) { p["phone"] = "phone-123" },
			wantField:   "phone",
			wantMessage: "phone must be a valid phone number",
		},
		{
			name:        "unknown document type",
			mutate:      func(p map[string]any) { p["documentType"] = "Driving License" },
			wantField:   "documentType",
			wantMessage: "documentType must be one of: Passport, National ID, Identity Card, Citizenship Card",
		},
		{
			name:        "document number with spaces",
			mutate:      func(p map[string]any) { p["documentNumber"] = "AB 123" },
			wantField:   "documentNumber",
			wantMessage: "documentNumber has invalid format",
		},
		{
			name:        "future date of birth",
			mutate:      func(p map[string]any) { p["dateOfBirth"] = "2999-01-01" },
			wantField:   "dateOfBirth",
			wantMessage: "Date of birth cannot be in the future",
		},
		{
			name:        "implausibly old date of birth",
			mutate:      func(p map[string]any) { p["dateOfBirth"] = "1800-01-01" },
			wantField:   "dateOfBirth",
			wantMessage: "Date of birth seems invalid",
		},
		{
			name:        "date of birth not a date",
			mutate:      func(p map[string]any) { p["dateOfBirth"] = "yesterday" },
			wantField:   "dateOfBirth",
			wantMessage: "dateOfBirth must be a valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validGuestPayload()
			tt.mutate(payload)

			_, err := validator.ExtractCreate(payload)

			messages := fieldMessages(t, err)
			assert.Equal(t, tt.wantMessage, messages[tt.wantField])
		})
	}
}

func TestGuestExtractCreate_PhoneWithoutPlus(t *testing.T) {
	payload := validGuestPayload()
	payload["phone"] = "573001234567"

	_, err := validator.ExtractCreate(payload)

	assert.NoError(t, err)
}

func TestGuestExtractUpdate(t *testing.T) {
	t.Run("partial payload skips requiredness", func(t *testing.T) {
		extracted, err := validator.ExtractUpdate(map[string]any{
			"nationality": "Peruvian",
			"isActive":    false,
		})

		require.NoError(t, err)
		assert.Equal(t, "Peruvian", extracted["nationality"])
		assert.Equal(t, false, extracted["isActive"])
	})

	t.Run("unknown fields are dropped", func(t *testing.T) {
		extracted, err := validator.ExtractUpdate(map[string]any{
			"totalStays": 12,
		})

		require.NoError(t, err)
		assert.Empty(t, extracted)
	})

	t.Run("present field still validated", func(t *testing.T) {
		_, err := validator.ExtractUpdate(map[string]any{
			"email": "broken@",
		})

		messages := fieldMessages(t, err)
		assert.Equal(t, "email must be a valid email", messages["email"])
	})
}
