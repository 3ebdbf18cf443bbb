package validator

import (
	"encoding/json"
	"fmt"
	"posada/shared/constant"
	"posada/shared/failure"
	"sort"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Validate evaluates every configured field against the payload and returns
// the collected field errors, ordered by field name. An empty result means
// the payload satisfies the config.
func (c FieldConfig) Validate(data map[string]any) []failure.FieldError {
	fields := make([]string, 0, len(c))
	for field := range c {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	var errs []failure.FieldError
	for _, field := range fields {
		errs = append(errs, c.validateField(field, data[field], c[field], true)...)
	}

	return errs
}

// validateField runs the rule pipeline for one field. Presence is checked
// first and short-circuits, a type mismatch suppresses the remaining checks,
// and the custom predicate always runs last.
func (c FieldConfig) validateField(field string, value any, rule Rule, enforceRequired bool) []failure.FieldError {
	if isAbsent(value) {
		if rule.Required && enforceRequired {
			return []failure.FieldError{fieldError(field, fmt.Sprintf("%s is required", field))}
		}

		return nil
	}

	if rule.Type != "" {
		if msg := validateType(field, value, rule.Type); msg != "" {
			return []failure.FieldError{fieldError(field, msg)}
		}
	}

	var errs []failure.FieldError

	if str, ok := value.(string); ok {
		if rule.MinLength > 0 && len(str) < rule.MinLength {
			errs = append(errs, fieldError(field, fmt.Sprintf("%s must be at least %d characters", field, rule.MinLength)))
		}

		if rule.MaxLength > 0 && len(str) > rule.MaxLength {
			errs = append(errs, fieldError(field, fmt.Sprintf("%s must be at most %d characters", field, rule.MaxLength)))
		}

		if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
			errs = append(errs, fieldError(field, fmt.Sprintf("%s has invalid format", field)))
		}
	}

	if len(rule.Enum) > 0 && !enumContains(rule.Enum, value) {
		errs = append(errs, fieldError(field, fmt.Sprintf("%s must be one of: %s", field, joinEnum(rule.Enum))))
	}

	if num, ok := toNumber(value); ok {
		if rule.Min != nil && num < *rule.Min {
			errs = append(errs, fieldError(field, fmt.Sprintf("%s must be greater than or equal to %v", field, *rule.Min)))
		}

		if rule.Max != nil && num > *rule.Max {
			errs = append(errs, fieldError(field, fmt.Sprintf("%s must be less than or equal to %v", field, *rule.Max)))
		}
	}

	if rule.Custom != nil {
		if msg := rule.Custom(value); msg != "" {
			errs = append(errs, fieldError(field, msg))
		}
	}

	return errs
}

func validateType(field string, value any, ruleType string) string {
	switch ruleType {
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%s must be a string", field)
		}
	case TypeNumber:
		if _, ok := toNumber(value); !ok {
			return fmt.Sprintf("%s must be a number", field)
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("%s must be a boolean", field)
		}
	case TypeEmail:
		str, ok := value.(string)
		if !ok || validate.Var(str, "email") != nil {
			return fmt.Sprintf("%s must be a valid email", field)
		}
	case TypePhone:
		str, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s must be a valid phone number", field)
		}

		// The plus sign is optional on input, e164 demands it.
		if !strings.HasPrefix(str, "+") {
			str = "+" + str
		}

		if validate.Var(str, "e164") != nil {
			return fmt.Sprintf("%s must be a valid phone number", field)
		}
	case TypeDate:
		if !parsesAs(value, constant.DateOnlyFormat, constant.DateFormat) {
			return fmt.Sprintf("%s must be a valid date", field)
		}
	case TypeDatetime:
		if !parsesAs(value, constant.DateFormat, constant.DatetimeLocalInput, constant.DateOnlyFormat) {
			return fmt.Sprintf("%s must be a valid datetime", field)
		}
	case TypeUUID:
		str, ok := value.(string)
		if !ok || validate.Var(str, "uuid") != nil {
			return fmt.Sprintf("%s must be a valid UUID", field)
		}
	case TypeTime:
		if !parsesAs(value, constant.TimeFormat, constant.TimeMinutesFormat) {
			return fmt.Sprintf("%s must be in HH:mm:ss or HH:mm format", field)
		}
	}

	return ""
}

// isAbsent reports whether a field counts as not provided. Empty strings are
// treated the same as missing so that "" never satisfies a required rule.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}

	str, ok := value.(string)

	return ok && str == ""
}

func parsesAs(value any, layouts ...string) bool {
	str, ok := value.(string)
	if !ok {
		return false
	}

	for _, layout := range layouts {
		if _, err := time.Parse(layout, str); err == nil {
			return true
		}
	}

	return false
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		num, err := v.Float64()

		return num, err == nil
	default:
		return 0, false
	}
}

func enumContains(enum []any, value any) bool {
	for _, candidate := range enum {
		if candidate == value {
			return true
		}

		candidateNum, candidateOk := toNumber(candidate)
		valueNum, valueOk := toNumber(value)

		if candidateOk && valueOk && candidateNum == valueNum {
			return true
		}
	}

	return false
}

func joinEnum(enum []any) string {
	parts := make([]string, len(enum))
	for idx, candidate := range enum {
		parts[idx] = fmt.Sprint(candidate)
	}

	return strings.Join(parts, ", ")
}

func fieldError(field, message string) failure.FieldError {
	return failure.FieldError{
		Field:   field,
		Message: message,
	}
}
