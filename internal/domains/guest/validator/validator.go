package validator

import (
	"regexp"
	"time"

	"posada/internal/domains/guest/model"
	"posada/internal/domains/guest/model/dto"
	"posada/shared/constant"
	"posada/shared/timezone"
	"posada/shared/validator"
)

var (
	namePattern     = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	documentPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

// Config is the declarative rule set for guest payloads.
var Config = validator.FieldConfig{
	"firstName": {
		Required:  true,
		Type:      validator.TypeString,
		MinLength: 2,
		MaxLength: 100,
		Pattern:   namePattern,
	},
	"lastName": {
		Required:  true,
		Type:      validator.TypeString,
		MinLength: 2,
		MaxLength: 100,
		Pattern:   namePattern,
	},
	"email": {
		Type:      validator.TypeEmail,
		MaxLength: 255,
	},
	"phone": {
		Type:      validator.TypePhone,
		MaxLength: 20,
	},
	"documentType": {
		Type: validator.TypeString,
		Enum: []any{
			model.DocumentTypePassport,
			model.DocumentTypeNationalID,
			model.DocumentTypeIdentityCard,
			model.DocumentTypeCitizenshipCard,
		},
	},
	"documentNumber": {
		Required:  true,
		Type:      validator.TypeString,
		MaxLength: 50,
		Pattern:   documentPattern,
	},
	"dateOfBirth": {
		Required: true,
		Type:     validator.TypeDate,
		Custom:   validateDateOfBirth,
	},
	"nationality": {
		Type:      validator.TypeString,
		MaxLength: 100,
	},
	"occupation": {
		Type:      validator.TypeString,
		MaxLength: 100,
	},
	"address": {
		Type:      validator.TypeString,
		MaxLength: 255,
	},
	"emergencyContactName": {
		Type:      validator.TypeString,
		MinLength: 2,
		MaxLength: 100,
	},
	"emergencyContactPhone": {
		Type:      validator.TypePhone,
		MaxLength: 20,
	},
	"specialRequests": {
		Type:      validator.TypeString,
		MaxLength: 500,
	},
	"notes": {
		Type:      validator.TypeString,
		MaxLength: 1000,
	},
	"isActive": {
		Type: validator.TypeBoolean,
	},
}

// ExtractCreate validates a full guest payload and returns the allow-listed
// fields.
func ExtractCreate(data map[string]any) (map[string]any, error) {
	return validator.ValidateAndExtract(data, Config, dto.CreateAllowedFields)
}

// ExtractUpdate validates the provided fields only.
func ExtractUpdate(data map[string]any) (map[string]any, error) {
	return validator.ValidatePartial(data, Config)
}

func validateDateOfBirth(value any) string {
	raw, ok := value.(string)
	if !ok {
		return ""
	}

	birthDate, err := time.Parse(constant.DateOnlyFormat, raw)
	if err != nil {
		return ""
	}

	now := timezone.Now()

	if birthDate.After(now) {
		return "Date of birth cannot be in the future"
	}

	if now.Year()-birthDate.Year() > 120 {
		return "Date of birth seems invalid"
	}

	return ""
}
