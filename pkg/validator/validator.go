package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report JSON field names, not Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks struct tags and returns a single user-displayable error.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return formatErrors(validationErrs)
	}
	return err
}

func formatErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		field := err.Field()

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			if err.Kind() == reflect.String {
				message = fmt.Sprintf("%s must be at least %s characters", field, err.Param())
			} else {
				message = fmt.Sprintf("%s must have at least %s entries", field, err.Param())
			}
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		messages = append(messages, message)
	}
	return errors.New(strings.Join(messages, "; "))
}
