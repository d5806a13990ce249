package utils

import (
	"lidio-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreatePaymentLinkRequest(t *testing.T) {
	t.Run("Customer Info Sanitization", func(t *testing.T) {
		request := &requests.CreatePaymentLink{
			CustomerInfo: map[string]interface{}{
				"email":      "  BUYER@EXAMPLE.COM  ",
				"customerId": "  42 ",
			},
		}

		SanitizeCreatePaymentLinkRequest(request)

		assert.Equal(t, "buyer@example.com", request.CustomerInfo["email"], "email should be lowercase and trimmed")
		assert.Equal(t, "42", request.CustomerInfo["customerId"], "customer id should be trimmed")
	})

	t.Run("Currency Sanitization", func(t *testing.T) {
		request := &requests.CreatePaymentLink{Currency: " eur "}

		SanitizeCreatePaymentLinkRequest(request)

		assert.Equal(t, "EUR", request.Currency, "currency should be uppercase and trimmed")
	})

	t.Run("Payment Method Names Sanitization", func(t *testing.T) {
		request := &requests.CreatePaymentLink{
			PaymentMethods: []requests.PaymentMethod{
				{Name: " StoredCard ", Options: map[string]interface{}{"verificationMethods": []interface{}{" OTP", "CVV "}}},
				{Name: "Sepa  "},
			},
		}

		SanitizeCreatePaymentLinkRequest(request)

		assert.Equal(t, "StoredCard", request.PaymentMethods[0].Name)
		assert.Equal(t, []interface{}{"OTP", "CVV"}, request.PaymentMethods[0].Options["verificationMethods"])
		assert.Equal(t, "Sepa", request.PaymentMethods[1].Name)
	})

	t.Run("Nil Maps Are Left Alone", func(t *testing.T) {
		request := &requests.CreatePaymentLink{OrderID: " ORD-1 "}

		assert.NotPanics(t, func() { SanitizeCreatePaymentLinkRequest(request) })
		assert.Equal(t, "ORD-1", request.OrderID)
		assert.Nil(t, request.CustomerInfo)
	})
}
