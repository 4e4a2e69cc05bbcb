package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const fallbackMessage = "{field} is invalid"

// messages covers the tags used by clock requests and query parameters.
var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"iana":     "{field} must be a valid IANA timezone",
	"max":      "{field} must be at most {param} characters long",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"empty":    "{field} must be empty",
}

// message describes the first failed rule in a single sentence.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error()
	}

	first := valErrors[0]

	template, ok := messages[first.Tag()]
	if !ok {
		template = fallbackMessage
	}

	return strings.NewReplacer("{field}", first.Field(), "{param}", first.Param()).Replace(template)
}
