// Package validator adapts the shared validator to echo's Validator interface.
package validator

import (
	"opinator/internal/validation"

	validatorlib "github.com/go-playground/validator/v10"
)

// EchoValidator wraps the shared validator so echo's c.Validate works.
type EchoValidator struct {
	validate *validatorlib.Validate
}

// New builds an EchoValidator with the domain rules registered.
func New() *EchoValidator {
	return &EchoValidator{validate: validation.New()}
}

// Validate implements echo.Validator, translating failures into the
// application error taxonomy.
func (v *EchoValidator) Validate(i any) error {
	return validation.Struct(v.validate, i)
}
