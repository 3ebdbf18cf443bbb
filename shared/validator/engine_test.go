package validator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	config := FieldConfig{
		"email": {Required: true, Type: TypeEmail, MaxLength: 255},
	}

	tests := []struct {
		name     string
		data     map[string]any
		expected []string
	}{
		{
			name:     "missing field reports only the required error",
			data:     map[string]any{},
			expected: []string{"email is required"},
		},
		{
			name:     "nil value counts as missing",
			data:     map[string]any{"email": nil},
			expected: []string{"email is required"},
		},
		{
			name:     "empty string counts as missing",
			data:     map[string]any{"email": ""},
			expected: []string{"email is required"},
		},
		{
			name:     "present valid value passes",
			data:     map[string]any{"email": "guest@example.com"},
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			errs := config.Validate(test.data)

			messages := make([]string, 0, len(errs))
			for _, err := range errs {
				messages = append(messages, err.Message)
			}

			if test.expected == nil {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, test.expected, messages)
			}
		})
	}
}

func TestValidateOptionalAbsentFieldSkipsAllRules(t *testing.T) {
	config := FieldConfig{
		"notes": {Type: TypeString, MaxLength: 10},
	}

	assert.Empty(t, config.Validate(map[string]any{}))
	assert.Empty(t, config.Validate(map[string]any{"notes": ""}))
}

func TestValidateTypeMismatchSuppressesFormatChecks(t *testing.T) {
	config := FieldConfig{
		"firstName": {
			Required:  true,
			Type:      TypeString,
			MinLength: 2,
			MaxLength: 100,
			Pattern:   regexp.MustCompile(`^[a-zA-Z\s]+$`),
		},
	}

	errs := config.Validate(map[string]any{"firstName": 42})

	assert.Len(t, errs, 1)
	assert.Equal(t, "firstName must be a string", errs[0].Message)
}

func TestValidateLengthAndPatternBothReported(t *testing.T) {
	config := FieldConfig{
		"firstName": {
			Type:      TypeString,
			MinLength: 2,
			Pattern:   regexp.MustCompile(`^[a-zA-Z\s]+$`),
		},
	}

	errs := config.Validate(map[string]any{"firstName": "7"})

	assert.Len(t, errs, 2)
	assert.Equal(t, "firstName must be at least 2 characters", errs[0].Message)
	assert.Equal(t, "firstName has invalid format", errs[1].Message)
}

func TestValidateTypes(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		value    any
		expected string
	}{
		{
			name:     "invalid email",
			rule:     Rule{Type: TypeEmail},
			value:    "not-an-email",
			expected: "field must be a valid email",
		},
		{
			name:  "valid email",
			rule:  Rule{Type: TypeEmail},
			value: "admin@posada.example",
		},
		{
			name:     "invalid phone",
			rule:     Rule{Type: TypePhone},
			value:    "abc123",
			expected: "field must be a valid phone number",
		},
		{
			name:  "phone without plus sign",
			rule:  Rule{Type: TypePhone},
			value: "595991234567",
		},
		{
			name:  "phone with plus sign",
			rule:  Rule{Type: TypePhone},
			value: "+595991234567",
		},
		{
			name:     "invalid uuid",
			rule:     Rule{Type: TypeUUID},
			value:    "1234",
			expected: "field must be a valid UUID",
		},
		{
			name:  "valid uuid",
			rule:  Rule{Type: TypeUUID},
			value: "ffd4e9b2-71e8-4a41-9b33-1f4f28f9a2dd",
		},
		{
			name:     "number rejects string",
			rule:     Rule{Type: TypeNumber},
			value:    "2",
			expected: "field must be a number",
		},
		{
			name:  "number accepts json float",
			rule:  Rule{Type: TypeNumber},
			value: float64(2),
		},
		{
			name:     "boolean rejects string",
			rule:     Rule{Type: TypeBoolean},
			value:    "true",
			expected: "field must be a boolean",
		},
		{
			name:  "valid datetime",
			rule:  Rule{Type: TypeDatetime},
			value: "2026-09-01T14:00:00Z",
		},
		{
			name:  "datetime without offset",
			rule:  Rule{Type: TypeDatetime},
			value: "2026-09-01T14:00:00",
		},
		{
			name:     "invalid datetime",
			rule:     Rule{Type: TypeDatetime},
			value:    "tomorrow",
			expected: "field must be a valid datetime",
		},
		{
			name:  "valid date",
			rule:  Rule{Type: TypeDate},
			value: "1990-04-21",
		},
		{
			name:  "time with seconds",
			rule:  Rule{Type: TypeTime},
			value: "14:30:00",
		},
		{
			name:  "time without seconds",
			rule:  Rule{Type: TypeTime},
			value: "14:30",
		},
		{
			name:     "time out of range",
			rule:     Rule{Type: TypeTime},
			value:    "25:00",
			expected: "field must be in HH:mm:ss or HH:mm format",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := FieldConfig{"field": test.rule}

			errs := config.Validate(map[string]any{"field": test.value})

			if test.expected == "" {
				assert.Empty(t, errs)
			} else {
				assert.Len(t, errs, 1)
				assert.Equal(t, test.expected, errs[0].Message)
			}
		})
	}
}

func TestValidateEnum(t *testing.T) {
	config := FieldConfig{
		"stayType": {Type: TypeString, Enum: []any{"hourly", "nightly"}},
	}

	errs := config.Validate(map[string]any{"stayType": "weekly"})

	assert.Len(t, errs, 1)
	assert.Equal(t, "stayType must be one of: hourly, nightly", errs[0].Message)

	assert.Empty(t, config.Validate(map[string]any{"stayType": "nightly"}))
}

func TestValidateNumberBounds(t *testing.T) {
	config := FieldConfig{
		"numberOfGuests": {Type: TypeNumber, Min: Number(1)},
		"totalPrice":     {Type: TypeNumber, Min: Number(0)},
	}

	errs := config.Validate(map[string]any{
		"numberOfGuests": float64(0),
		"totalPrice":     float64(-10),
	})

	assert.Len(t, errs, 2)
	assert.Equal(t, "numberOfGuests must be greater than or equal to 1", errs[0].Message)
	assert.Equal(t, "totalPrice must be greater than or equal to 0", errs[1].Message)

	assert.Empty(t, config.Validate(map[string]any{
		"numberOfGuests": float64(2),
		"totalPrice":     float64(0),
	}))
}

func TestValidateCustomRunsLast(t *testing.T) {
	var sawValue any

	config := FieldConfig{
		"guests": {
			Required: true,
			Custom: func(value any) string {
				sawValue = value

				return "guests is broken"
			},
		},
	}

	errs := config.Validate(map[string]any{"guests": []any{"a"}})

	assert.Len(t, errs, 1)
	assert.Equal(t, "guests is broken", errs[0].Message)
	assert.Equal(t, []any{"a"}, sawValue)
}

func TestValidateErrorsCarryFieldName(t *testing.T) {
	config := FieldConfig{
		"roomId": {Required: true, Type: TypeUUID},
	}

	errs := config.Validate(map[string]any{})

	assert.Len(t, errs, 1)
	assert.Equal(t, "roomId", errs[0].Field)
}
