// Package forms decodes submitted form values into entities. Required fields
// are checked with validator struct tags; phone numbers and checkboxes are
// coerced here so that handlers and stores only see typed values.
package forms

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"fyyur/internal/store"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// check runs struct validation and reports the first failure as a
// *store.ValidationError.
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &store.ValidationError{Field: fieldName(fe), Reason: reason(fe)}
	}
	return &store.ValidationError{Field: "form", Reason: err.Error()}
}

func fieldName(fe validator.FieldError) string {
	// Dive errors are reported as genres[0]; keep the form name only.
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "needs at least " + fe.Param() + " value(s)"
	case "max":
		return "is too long"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// trimmed returns the trimmed value of a single form field.
func trimmed(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

// trimmedList returns the trimmed, non-blank values submitted under key.
func trimmedList(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		if v := strings.TrimSpace(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// checked reports whether any of the checkbox names was submitted.
func checked(values url.Values, names ...string) bool {
	for _, name := range names {
		if values.Has(name) {
			return true
		}
	}
	return false
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

// coercePhone strips common separators and requires the remainder to be an
// integer. An empty phone is allowed.
func coercePhone(raw string) (string, error) {
	digits := phoneSeparators.Replace(strings.TrimSpace(raw))
	if digits == "" {
		return "", nil
	}
	if _, err := strconv.ParseUint(digits, 10, 64); err != nil {
		return "", &store.ValidationError{Field: "phone", Reason: "must be a number"}
	}
	return digits, nil
}
