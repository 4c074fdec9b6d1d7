package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MaxLenString validates that a string does not exceed max bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// emailShapeRegex accepts anything of the local@domain.tld shape. The check
// is deliberately permissive: it guards against obvious typos, not
// deliverability.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailShape validates that a string looks like an email address.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// OneOf validates that a string is one of the allowed values.
// An empty value passes; pair with RequiredString when the field is mandatory.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}
