// Package validation wraps go-playground/validator with the field rules
// shared by every service input.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/errors"
)

// objname covers short human-readable names: letters, digits, spaces and a
// few punctuation marks, at most 50 characters.
var objNamePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} .,'&-]{0,49}$`)

// New builds a validator instance with the custom field rules registered.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for blank tags or nil funcs, neither applies here.
	_ = validate.RegisterValidation("objname", func(fl validator.FieldLevel) bool {
		return objNamePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("freetext", func(fl validator.FieldLevel) bool {
		text := fl.Field().String()

		return strings.TrimSpace(text) != "" && len([]rune(text)) <= 1000
	})

	return validate
}

// Struct validates an input value and converts any failure into the domain
// validation error, keeping the first violated constraint as details.
func Struct(validate *validator.Validate, input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if ok := errors.As(err, &fieldErrs); ok && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return domainerrors.ErrValidationFailed.WithDetails(
			"field " + first.Field() + " failed on rule " + first.Tag(),
		)
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}
