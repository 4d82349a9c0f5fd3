// Package validation implements the declarative request-body validator.
// A Schema describes the rules for each field of an incoming JSON record;
// Validate evaluates the rules in schema order and collects every violation
// instead of stopping at the first one.
package validation

import (
	"fmt"
	"math"
	"regexp"
)

// FieldType names the runtime type a rule can require.
type FieldType string

// Supported field types.
const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeEmail   FieldType = "email"
)

// emailPattern is deliberately permissive: exactly one '@' with at least one
// character before it, and a '.' somewhere after it. Stricter RFC 5322
// checking is out of scope for a request-shape validator.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Rules is the set of constraints applied to a single field.
//
// Length and range bounds are pointers so that a configured zero is a real
// bound: MinLength of 0 and Min of 0 are enforced, not skipped. Earlier
// boilerplates treated zero bounds as "unset"; here absence is expressed by
// a nil pointer instead.
type Rules struct {
	Required  bool
	Type      FieldType
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
	Pattern   *regexp.Regexp
}

// Field pairs a field name with its rules.
type Field struct {
	Name  string
	Rules Rules
}

// Schema is an ordered rule set for one endpoint's request body. Order
// matters: errors are reported in schema order, so validating the same
// record twice yields the same sequence.
type Schema []Field

// FieldError describes a single rule violation. A field may produce several
// entries, one per violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error implements the error interface so a FieldError can be logged on its own.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IntRule returns a pointer to n, for use as a length bound.
func IntRule(n int) *int { return &n }

// NumberRule returns a pointer to n, for use as a numeric bound.
func NumberRule(n float64) *float64 { return &n }

// Validate evaluates the schema against a decoded JSON record and returns
// every violation in schema order. A nil or empty result means the record
// passed. Validate never mutates the record.
//
// Per field:
//   - required and absent: one "required" error, remaining checks skipped
//   - optional and absent: skipped entirely
//   - type mismatch: reported, but length/range/pattern checks still run
//   - each violated bound produces its own error
func (s Schema) Validate(record map[string]any) []FieldError {
	var errs []FieldError

	for _, f := range s {
		value, present := record[f.Name]
		if isAbsent(value, present) {
			if f.Rules.Required {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s is required", f.Name),
				})
			}
			continue
		}

		if f.Rules.Type != "" && !matchesType(value, f.Rules.Type) {
			errs = append(errs, FieldError{
				Field:   f.Name,
				Message: typeMessage(f.Name, f.Rules.Type),
				Value:   value,
			})
		}

		if text, ok := value.(string); ok {
			errs = append(errs, checkTextual(f, text)...)
		}

		if num, ok := asNumber(value); ok {
			errs = append(errs, checkNumeric(f, num)...)
		}
	}

	return errs
}

// checkTextual enforces the length bounds and pattern on a string value.
func checkTextual(f Field, text string) []FieldError {
	var errs []FieldError

	if f.Rules.MinLength != nil && len([]rune(text)) < *f.Rules.MinLength {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("%s must be at least %d characters", f.Name, *f.Rules.MinLength),
			Value:   text,
		})
	}
	if f.Rules.MaxLength != nil && len([]rune(text)) > *f.Rules.MaxLength {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("%s must be at most %d characters", f.Name, *f.Rules.MaxLength),
			Value:   text,
		})
	}
	if f.Rules.Pattern != nil && !f.Rules.Pattern.MatchString(text) {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("%s format is invalid", f.Name),
			Value:   text,
		})
	}

	return errs
}

// checkNumeric enforces the numeric range bounds. A zero bound is enforced
// like any other value.
func checkNumeric(f Field, num float64) []FieldError {
	var errs []FieldError

	if f.Rules.Min != nil && num < *f.Rules.Min {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("%s must be at least %v", f.Name, *f.Rules.Min),
			Value:   num,
		})
	}
	if f.Rules.Max != nil && num > *f.Rules.Max {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("%s must be at most %v", f.Name, *f.Rules.Max),
			Value:   num,
		})
	}

	return errs
}

// isAbsent reports whether a value counts as "not provided": a missing key,
// an explicit null, or an empty string.
func isAbsent(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// matchesType checks a decoded JSON value against the required type.
func matchesType(value any, t FieldType) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeNumber:
		num, ok := asNumber(value)
		return ok && !math.IsNaN(num)
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	case TypeEmail:
		s, ok := value.(string)
		return ok && emailPattern.MatchString(s)
	default:
		return true
	}
}

func typeMessage(name string, t FieldType) string {
	switch t {
	case TypeEmail:
		return fmt.Sprintf("%s must be a valid email address", name)
	case TypeBoolean:
		return fmt.Sprintf("%s must be a boolean", name)
	default:
		return fmt.Sprintf("%s must be a %s", name, t)
	}
}

// asNumber normalizes the numeric types a decoded record may carry.
// encoding/json produces float64, but callers that build records by hand may
// use ints.
func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
