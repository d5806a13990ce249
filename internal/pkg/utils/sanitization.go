package utils

import (
	"lidio-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []interface{}) []interface{} {
	sanitizedArray := make([]interface{}, len(input))
	for i, v := range input {
		if s, ok := v.(string); ok {
			sanitizedArray[i] = strings.TrimSpace(s)
			continue
		}
		sanitizedArray[i] = v
	}
	return sanitizedArray
}

func SanitizeCreatePaymentLinkRequest(input *requests.CreatePaymentLink) {
	input.OrderID = strings.TrimSpace(input.OrderID)
	input.MerchantProcessID = strings.TrimSpace(input.MerchantProcessID)
	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	input.SendVia = strings.TrimSpace(input.SendVia)
	input.Language = strings.TrimSpace(input.Language)
	input.NotificationURL = strings.TrimSpace(input.NotificationURL)

	if email, ok := input.CustomerInfo["email"].(string); ok {
		input.CustomerInfo["email"] = strings.ToLower(strings.TrimSpace(email))
	}
	if customerID, ok := input.CustomerInfo["customerId"].(string); ok {
		input.CustomerInfo["customerId"] = strings.TrimSpace(customerID)
	}

	for i := range input.PaymentMethods {
		method := &input.PaymentMethods[i]
		method.Name = strings.TrimSpace(method.Name)
		if verificationMethods, ok := method.Options["verificationMethods"].([]interface{}); ok {
			method.Options["verificationMethods"] = cleanWhiteSpaceFromEachStringOfAnArray(verificationMethods)
		}
	}
}
