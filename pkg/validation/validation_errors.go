package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":     "Name",
	"Email":    "Email address",
	"Title":    "Title",
	"Bio":      "Bio",
	"Location": "Location",
	"Phone":    "Phone number",
	"Skills":   "Skills",
}

// FormatErrors turns validator errors into a single human-readable message.
// Non-validator errors pass through unchanged.
func FormatErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := fe.Field()
		if l, ok := FieldLabels[fe.Field()]; ok {
			label = l
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", label))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", label))
		case "valid_name":
			msgs = append(msgs, fmt.Sprintf("%s contains invalid characters", label))
		case "valid_phone":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid phone number", label))
		case "no_emoji":
			msgs = append(msgs, fmt.Sprintf("%s must not contain emoji", label))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", label))
		}
	}
	return strings.Join(msgs, "; ")
}
