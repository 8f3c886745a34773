package validators

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by the per-area request
// validators.
var Validate = validator.New()

// Errors flattens a validator error into a field -> message map suitable
// for the JSON error envelope. Returns nil when err is nil.
func Errors(err error) map[string]string {
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = "Invalid request payload!"
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required!"
		case "email":
			out[field] = "Must be a valid email address!"
		case "url":
			out[field] = "Must be a valid URL!"
		case "min":
			out[field] = "Must be at least " + fe.Param() + "!"
		case "max":
			out[field] = "Must be at most " + fe.Param() + "!"
		default:
			out[field] = "Invalid value!"
		}
	}
	return out
}
