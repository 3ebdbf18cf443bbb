// Package validator declares the request rules for occupations.
package validator

import (
	"fmt"
	"posada/internal/domains/occupation/model"
	"posada/internal/domains/occupation/model/dto"
	"posada/shared/failure"
	"posada/shared/validator"
)

// Config is the declarative rule set shared by create and update requests.
// It is built once and read-only afterwards.
var Config = validator.FieldConfig{
	"roomId": {
		Required: true,
		Type:     validator.TypeUUID,
	},
	"checkInDatetime": {
		Required: true,
		Type:     validator.TypeDatetime,
	},
	"checkOutDatetime": {
		Required: true,
		Type:     validator.TypeDatetime,
	},
	"stayType": {
		Required: true,
		Type:     validator.TypeString,
		Enum:     []any{model.StayTypeHourly, model.StayTypeNightly},
	},
	"numberOfGuests": {
		Required: true,
		Type:     validator.TypeNumber,
		Min:      validator.Number(1),
	},
	"totalPrice": {
		Required: true,
		Type:     validator.TypeNumber,
		Min:      validator.Number(0),
	},
	"basePrice": {
		Type: validator.TypeNumber,
		Min:  validator.Number(0),
	},
	"discountAmount": {
		Type: validator.TypeNumber,
		Min:  validator.Number(0),
	},
	"status": {
		Type: validator.TypeString,
		Enum: []any{model.StatusReserved, model.StatusCheckedIn, model.StatusCheckedOut, model.StatusCancelled},
	},
	"notes": {
		Type:      validator.TypeString,
		MaxLength: 1000,
	},
	"guests": {
		Required: true,
		Custom:   validateGuests,
	},
}

// ExtractCreate validates a full reservation payload and returns the
// allow-listed fields.
func ExtractCreate(data map[string]any) (map[string]any, error) {
	errs := Config.Validate(data)
	errs = append(errs, validateStayWindow(data)...)

	if len(errs) > 0 {
		return nil, failure.Validation(errs)
	}

	extracted := make(map[string]any, len(dto.CreateAllowedFields))
	for _, field := range dto.CreateAllowedFields {
		if value, ok := data[field]; ok {
			extracted[field] = value
		}
	}

	return extracted, nil
}

// ExtractUpdate validates the provided fields only and returns the sparse
// payload for the update.
func ExtractUpdate(data map[string]any) (map[string]any, error) {
	extracted, err := validator.ValidatePartial(data, Config)
	if err != nil {
		return nil, err
	}

	if errs := validateStayWindow(extracted); len(errs) > 0 {
		return nil, failure.Validation(errs)
	}

	return extracted, nil
}

// validateStayWindow rejects windows that end before they start. It only
// fires when both endpoints are present and parseable, the per-field rules
// already cover the rest.
func validateStayWindow(data map[string]any) []failure.FieldError {
	checkInRaw, _ := data["checkInDatetime"].(string)
	checkOutRaw, _ := data["checkOutDatetime"].(string)

	if checkInRaw == "" || checkOutRaw == "" {
		return nil
	}

	checkIn, err := dto.ParseDatetime(checkInRaw)
	if err != nil {
		return nil
	}

	checkOut, err := dto.ParseDatetime(checkOutRaw)
	if err != nil {
		return nil
	}

	if !checkOut.After(checkIn) {
		return []failure.FieldError{{
			Field:   "checkOutDatetime",
			Message: "checkOutDatetime must be after checkInDatetime",
		}}
	}

	return nil
}

func validateGuests(value any) string {
	guests, ok := value.([]any)
	if !ok {
		return "guests must be an array"
	}

	if len(guests) == 0 {
		return "guests array must contain at least one guest"
	}

	primaryCount := 0

	for i, raw := range guests {
		guest, ok := raw.(map[string]any)
		if !ok || guest == nil {
			return fmt.Sprintf("guests[%d] must be an object", i)
		}

		guestID, ok := guest["guestId"].(string)
		if !ok || guestID == "" {
			return fmt.Sprintf("guests[%d].guestId is required and must be a string", i)
		}

		isPrimary, ok := guest["isPrimary"].(bool)
		if !ok {
			return fmt.Sprintf("guests[%d].isPrimary must be a boolean", i)
		}

		if isPrimary {
			primaryCount++
		}
	}

	if primaryCount == 0 {
		return "At least one guest must be marked as primary (isPrimary: true)"
	}

	if primaryCount > 1 {
		return "Only one guest can be marked as primary (isPrimary: true)"
	}

	return ""
}
