package validator

import (
	"strings"
	"unicode"

	"posada/internal/domains/user/model/dto"
	"posada/shared/constant"
	"posada/shared/validator"
)

// Config is the declarative rule set for user creation.
var Config = validator.FieldConfig{
	"email": {
		Required:  true,
		Type:      validator.TypeEmail,
		MaxLength: 255,
	},
	"password": {
		Required:  true,
		Type:      validator.TypeString,
		MinLength: 6,
		MaxLength: 128,
		Custom:    validatePasswordStrength,
	},
	"firstName": {
		Required:  true,
		Type:      validator.TypeString,
		MinLength: 2,
		MaxLength: 100,
	},
	"lastName": {
		Required:  true,
		Type:      validator.TypeString,
		MinLength: 2,
		MaxLength: 100,
	},
	"role": {
		Required: true,
		Type:     validator.TypeString,
		Enum:     []any{constant.RoleAdmin, constant.RoleReceptionist},
	},
}

// ExtractCreate validates a full user payload and returns the allow-listed
// fields.
func ExtractCreate(data map[string]any) (map[string]any, error) {
	return validator.ValidateAndExtract(data, Config, dto.CreateAllowedFields)
}

func validatePasswordStrength(value any) string {
	password, ok := value.(string)
	if !ok {
		return ""
	}

	// bcrypt rejects inputs longer than 72 bytes, so the cap is enforced
	// here instead of surfacing as a hashing error later.
	if len(password) > 72 {
		return "Password must not exceed 72 bytes"
	}

	hasUpper := strings.ContainsFunc(password, unicode.IsUpper)
	hasLower := strings.ContainsFunc(password, unicode.IsLower)
	hasDigit := strings.ContainsFunc(password, unicode.IsDigit)

	if !hasUpper || !hasLower || !hasDigit {
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}

	return ""
}
