package controller

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into Echo's Validator hook.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// failedField returns true when the validation error set contains a failure
// for the given struct field and tag.
func failedField(err error, field string, tag string) bool {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fieldErr := range validationErrors {
		if fieldErr.Field() == field && fieldErr.Tag() == tag {
			return true
		}
	}
	return false
}
