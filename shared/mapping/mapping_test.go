package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var guestFields = FieldMap{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"phoneNumber": "phone_number",
}

func TestFieldMapToRecord(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		expected map[string]any
	}{
		{
			name: "translates known fields to columns",
			payload: map[string]any{
				"firstName": "Ada",
				"lastName":  "Lovelace",
			},
			expected: map[string]any{
				"first_name": "Ada",
				"last_name":  "Lovelace",
			},
		},
		{
			name: "drops unmapped fields",
			payload: map[string]any{
				"firstName": "Ada",
				"isAdmin":   true,
				"id":        "overwritten",
			},
			expected: map[string]any{
				"first_name": "Ada",
			},
		},
		{
			name:     "empty payload yields empty record",
			payload:  map[string]any{},
			expected: map[string]any{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, guestFields.ToRecord(test.payload))
		})
	}
}

func TestFieldMapToAPI(t *testing.T) {
	record := map[string]any{
		"first_name":   "Ada",
		"phone_number": "+595991234567",
		"internal_ref": 42,
	}

	assert.Equal(t, map[string]any{
		"firstName":   "Ada",
		"phoneNumber": "+595991234567",
	}, guestFields.ToAPI(record))
}

func TestFieldMapRoundTrip(t *testing.T) {
	payload := map[string]any{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"email":       "ada@example.com",
		"phoneNumber": "+595991234567",
	}

	assert.Equal(t, payload, guestFields.ToAPI(guestFields.ToRecord(payload)))
}

func TestFieldMapColumn(t *testing.T) {
	column, ok := guestFields.Column("email")
	assert.True(t, ok)
	assert.Equal(t, "email", column)

	_, ok = guestFields.Column("passwordHash")
	assert.False(t, ok)
}
