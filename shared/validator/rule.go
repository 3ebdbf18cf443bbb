package validator

import "regexp"

// Value types a Rule can demand of a field.
const (
	TypeString   = "string"
	TypeNumber   = "number"
	TypeBoolean  = "boolean"
	TypeEmail    = "email"
	TypePhone    = "phone"
	TypeDate     = "date"
	TypeDatetime = "datetime"
	TypeUUID     = "uuid"
	TypeTime     = "time"
)

// Rule declares the constraints for a single request field. A zero constraint
// is not enforced, so rules list only what they care about.
type Rule struct {
	Required  bool
	Type      string
	MinLength int
	MaxLength int
	Min       *float64
	Max       *float64
	Pattern   *regexp.Regexp
	Enum      []any
	Custom    func(value any) string
}

// FieldConfig declares the rules for a whole request payload, keyed by API
// field name. Configs are built once at package init and shared read-only
// across requests.
type FieldConfig map[string]Rule

// Number is a convenience for Rule bounds, letting zero be a real bound.
func Number(v float64) *float64 {
	return &v
}
