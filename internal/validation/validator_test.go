package validation

import (
	"strings"
	"testing"

	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjName(t *testing.T) {
	validate := New()

	valid := []string{
		"Vegetables",
		"Fruit & Veg",
		"O'Brien's Deli",
		"Café 42",
		strings.Repeat("a", 50),
	}
	for _, name := range valid {
		err := Struct(validate, &usecase.SaveCategoryInput{CategoryName: name})
		assert.NoError(t, err, "name %q", name)
	}

	invalid := []string{
		"",
		" leading space",
		"bad\ttab",
		"semi;colon",
		strings.Repeat("a", 51),
	}
	for _, name := range invalid {
		err := Struct(validate, &usecase.SaveCategoryInput{CategoryName: name})
		assert.Error(t, err, "name %q", name)
	}
}

func TestFreeText(t *testing.T) {
	validate := New()

	input := &usecase.SaveReviewInput{ProductID: 1, ReviewText: strings.Repeat("x", 1000), Rating: 3}
	assert.NoError(t, Struct(validate, input))

	tooLong := &usecase.SaveReviewInput{ProductID: 1, ReviewText: strings.Repeat("x", 1001), Rating: 3}
	assert.Error(t, Struct(validate, tooLong))

	blank := &usecase.SaveReviewInput{ProductID: 1, ReviewText: "   \n\t ", Rating: 3}
	assert.Error(t, Struct(validate, blank))
}

func TestStruct_ReportsFirstViolation(t *testing.T) {
	validate := New()

	err := Struct(validate, &usecase.UpdateUserAppInput{UserAppID: 1, Email: "not-an-email", Name: "Ana", Lastname: "Diaz"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Email")
	assert.Contains(t, appErr.Details(), "email")
}
