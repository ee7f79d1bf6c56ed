// Package validator wires go-playground validation into echo.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a new CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(),
	}
}

// Validate validates the request struct against its `validate` tags.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
