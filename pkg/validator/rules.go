package validator

import (
	"fmt"
	"strings"
)

// Required fails when the value is empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}

// InList fails when the value is not one of the allowed values.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowed),
		},
	}
}

// Deny always fails with the given message. Used for decisions computed
// outside the rule closure, such as state transition rejections.
func Deny(field, message string) Rule {
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
