package lidio

import (
	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
)

var resultCodeErrors = map[string]error{
	constvars.LidioResultInvalidOrderID:       exceptions.ErrInvalidOrderID,
	constvars.LidioResultInvalidCredential:    exceptions.ErrInvalidCredential,
	constvars.LidioResultCurrencyNotFound:     exceptions.ErrCurrencyNotFound,
	constvars.LidioResultBankAccountNotActive: exceptions.ErrBankAccountNotActive,
	constvars.LidioResultEmailMismatch:        exceptions.ErrEmailMismatch,
}

// resultError maps a non-success result code to its error. Unknown codes only carry the gateway kind.
func resultError(code, message string) error {
	return exceptions.ErrGatewayResult(resultCodeErrors[code], code, message)
}
