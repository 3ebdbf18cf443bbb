package validator

import "posada/shared/failure"

// ValidateAndExtract validates the full payload against the config and, on
// success, returns a copy holding only the allow-listed fields that were
// actually provided. Keys outside the allow list never make it through, no
// matter what the client sends.
func ValidateAndExtract(data map[string]any, config FieldConfig, allowed []string) (map[string]any, error) {
	if errs := config.Validate(data); len(errs) > 0 {
		return nil, failure.Validation(errs)
	}

	extracted := make(map[string]any, len(allowed))
	for _, field := range allowed {
		if value, ok := data[field]; ok {
			extracted[field] = value
		}
	}

	return extracted, nil
}

// ValidatePartial validates only the fields that are present in the payload
// and declared in the config. Required rules are waived, so a sparse update
// can touch any subset of fields. The extracted map carries the fields that
// passed. Deciding whether an empty result is acceptable is the caller's
// business.
func ValidatePartial(data map[string]any, config FieldConfig) (map[string]any, error) {
	var errs []failure.FieldError

	extracted := make(map[string]any, len(data))

	for field, value := range data {
		if value == nil {
			continue
		}

		rule, ok := config[field]
		if !ok {
			continue
		}

		fieldErrs := config.validateField(field, value, rule, false)
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)

			continue
		}

		extracted[field] = value
	}

	if len(errs) > 0 {
		return nil, failure.Validation(errs)
	}

	return extracted, nil
}
