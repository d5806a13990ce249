package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"lidio-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomErrorClassification(t *testing.T) {
	t.Run("validation errors carry the validation kind", func(t *testing.T) {
		err := ErrFieldNotAllowed("currency", "XYZ", []string{"TRY", "EUR"})

		assert.ErrorIs(t, err, ErrKindValidation)
		assert.NotErrorIs(t, err, ErrKindGateway)
		assert.Equal(t, constvars.StatusBadRequest, err.StatusCode)
		assert.Contains(t, err.Error(), "XYZ")
		assert.Contains(t, err.Error(), "TRY, EUR")
	})

	t.Run("gateway result errors wrap the specific sentinel", func(t *testing.T) {
		err := ErrGatewayResult(ErrEmailMismatch, "EmailMismatch", "email does not match")

		assert.ErrorIs(t, err, ErrKindGateway)
		assert.ErrorIs(t, err, ErrEmailMismatch)
		assert.Equal(t, "EmailMismatch", err.Code)
		assert.Equal(t, constvars.StatusBadGateway, err.StatusCode)
	})

	t.Run("transport errors keep the underlying cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrGatewayTransport(cause, "CreatePaymentLink")

		assert.ErrorIs(t, err, ErrKindTransport)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("wrapped custom error is still found", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", ErrRequiredFieldMissing("basketItems"))

		customErr, ok := AsCustomError(wrapped)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.ErrorIs(t, wrapped, ErrKindValidation)
	})

	t.Run("location points at the caller", func(t *testing.T) {
		err := ErrMixedConstruction("basketItems")

		assert.Contains(t, err.Location().File, "error_test.go")
	})
}

func TestFormatFirstValidationError(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Currency string `validate:"oneof=TRY EUR"`
	}

	err := validator.New().Struct(payload{Email: "nope", Currency: "TRY"})
	assert.Equal(t, "Email must be a valid email", FormatFirstValidationError(err))

	err = validator.New().Struct(payload{Email: "a@b.co", Currency: "USD"})
	assert.Equal(t, "Currency must be one of TRY, EUR", FormatFirstValidationError(err))

	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
}
