// Package validate wraps a shared go-playground validator instance and
// reports violations as a field → code map.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Instance returns the shared validator for callers that register custom
// rules.
func Instance() *validator.Validate { return v }

// Struct validates i. It returns nil when i is valid, otherwise a map from
// field name to a stable violation code.
func Struct(i any) map[string]string {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_error": "validation_failed"}
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = code(e.Tag())
	}
	return out
}

func code(tag string) string {
	switch tag {
	case "max", "lte", "ltefield":
		return "too_large"
	case "min", "gte", "gtefield":
		return "too_small"
	case "hostname_rfc1123", "ip", "hostname_rfc1123|ip":
		return "invalid_host"
	default:
		return tag
	}
}
