package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report errors under the JSON field names the client submitted
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateSubmission checks every content field against its bounds and
// returns a field-keyed map of messages, or nil when the submission is
// well-formed. All fields are checked before any anti-abuse stage runs.
func validateSubmission(sub *Submission) map[string][]string {
	fieldErrors := map[string][]string{}

	if err := validate.Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			fieldErrors["form"] = []string{"Invalid form submission"}
			return fieldErrors
		}
		for _, fe := range verrs {
			field := fe.Field()
			fieldErrors[field] = append(fieldErrors[field], messageFor(fe))
		}
	}

	if sub.Timestamp != "" {
		if _, err := parseTimestamp(sub.Timestamp); err != nil {
			fieldErrors["timestamp"] = append(fieldErrors["timestamp"], "Invalid form submission")
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "max" {
			return "Name must be at most 100 characters"
		}
		return "Name must be at least 2 characters"
	case "email":
		return "Please enter a valid email address"
	case "subject":
		if fe.Tag() == "max" {
			return "Subject must be at most 200 characters"
		}
		return "Subject must be at least 3 characters"
	case "message":
		if fe.Tag() == "max" {
			return "Message must be at most 1000 characters"
		}
		return "Message must be at least 10 characters"
	case "formToken":
		return "Invalid form submission"
	case "timestamp":
		return "Invalid form submission"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
