package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into field -> tag pairs safe
// to return to the caller.
func GetValidationErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "invalid"
		return errors
	}
	for _, fieldErr := range validationErrors {
		errors[fieldErr.Field()] = fieldErr.Tag()
	}
	return errors
}
