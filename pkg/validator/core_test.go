package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/validator"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("prefixes message with field", func(t *testing.T) {
		err := validator.ValidationError{Field: "IsNotNull", Message: "1 parameter failed."}
		assert.Equal(t, "IsNotNull: 1 parameter failed.", err.Error())
	})

	t.Run("returns bare message without field", func(t *testing.T) {
		err := validator.ValidationError{Message: "broken"}
		assert.Equal(t, "broken", err.Error())
	})

	t.Run("matches sentinel", func(t *testing.T) {
		var err error = validator.ValidationError{Field: "email", Message: "is required"}
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "email: is required")
		assert.Contains(t, errorMsg, "password: too short")
	})
}

func TestValidationErrors_Unwrap(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "too short"},
	}
	wrapped := fmt.Errorf("signup: %w", errs)

	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)

	var single validator.ValidationError
	require.True(t, errors.As(wrapped, &single))
	assert.Equal(t, "email", single.Field)

	assert.Len(t, errs.Unwrap(), 2)
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "email", Message: "invalid format"})
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, []string{"is required", "invalid format"}, errs.Get("email"))
		assert.Empty(t, errs.Get("nonexistent"))
	})

	t.Run("fields are unique", func(t *testing.T) {
		assert.Equal(t, []string{"email", "password"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		var none validator.ValidationErrors
		assert.True(t, none.IsEmpty())
		assert.False(t, errs.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		rules := []validator.Rule{
			{
				Check: func() bool { return true },
				Error: validator.ValidationError{Field: "email", Message: "required"},
			},
			{
				Check: func() bool { return true },
				Error: validator.ValidationError{Field: "password", Message: "required"},
			},
		}

		err := validator.Apply(rules...)
		assert.NoError(t, err)
	})

	t.Run("returns ValidationErrors for mixed results", func(t *testing.T) {
		rules := []validator.Rule{
			{
				Check: func() bool { return false },
				Error: validator.ValidationError{Field: "email", Message: "is required"},
			},
			{
				Check: func() bool { return true },
				Error: validator.ValidationError{Field: "password", Message: "ok"},
			},
		}

		err := validator.Apply(rules...)
		require.Error(t, err)

		validationErr := validator.ExtractValidationErrors(err)
		require.NotNil(t, validationErr)
		assert.True(t, validationErr.Has("email"))
		assert.False(t, validationErr.Has("password"))
	})

	t.Run("handles empty rules", func(t *testing.T) {
		err := validator.Apply()
		assert.NoError(t, err)
	})

	t.Run("collects multiple errors for same field", func(t *testing.T) {
		rules := []validator.Rule{
			{
				Check: func() bool { return false },
				Error: validator.ValidationError{Field: "password", Message: "too short"},
			},
			{
				Check: func() bool { return false },
				Error: validator.ValidationError{Field: "password", Message: "missing special character"},
			},
		}

		err := validator.Apply(rules...)
		require.Error(t, err)

		passwordErrors := validator.ExtractValidationErrors(err).Get("password")
		assert.Equal(t, []string{"too short", "missing special character"}, passwordErrors)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts ValidationErrors from error", func(t *testing.T) {
		originalErrs := validator.ValidationErrors{{Field: "email", Message: "is required"}}

		extractedErrs := validator.ExtractValidationErrors(originalErrs)
		require.NotNil(t, extractedErrs)
		assert.True(t, extractedErrs.Has("email"))
	})

	t.Run("wraps a single ValidationError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", validator.ValidationError{Field: "Obeys", Message: "1 parameter failed."})

		extractedErrs := validator.ExtractValidationErrors(err)
		require.Len(t, extractedErrs, 1)
		assert.Equal(t, "Obeys", extractedErrs[0].Field)
	})

	t.Run("returns nil for non-validation errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, validator.IsValidationError(validator.ValidationErrors{{Field: "email", Message: "is required"}}))
	assert.True(t, validator.IsValidationError(validator.ValidationError{Field: "email", Message: "is required"}))
	assert.False(t, validator.IsValidationError(errors.New("regular error")))
	assert.False(t, validator.IsValidationError(nil))
}
