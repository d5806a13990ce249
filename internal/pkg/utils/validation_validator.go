package utils

import (
	"slices"

	"lidio-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("lidio_currency", validateVocabulary(constvars.LidioAllowedCurrencies))
	validate.RegisterValidation("lidio_instrument", validateVocabulary(constvars.LidioAllowedPaymentInstruments))
	validate.RegisterValidation("lidio_send_via", validateVocabulary(constvars.LidioSendViaOptions))
	validate.RegisterValidation("lidio_language", validateVocabulary(constvars.LidioLanguageOptions))
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateVocabulary(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}
