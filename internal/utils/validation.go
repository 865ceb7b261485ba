package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate performs validation on a struct using its `validate` tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FailedFields lists the struct fields that failed validation. It returns nil
// when err is not a validation error.
func FailedFields(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.StructField())
	}
	return fields
}
