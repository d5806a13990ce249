package exceptions

import (
	"errors"
	"fmt"
	"lidio-service/internal/pkg/constvars"
	"strings"
)

// Error kinds, match with errors.Is.
var (
	ErrKindValidation = errors.New("validation error")
	ErrKindTransport  = errors.New("transport error")
	ErrKindGateway    = errors.New("gateway result error")
	ErrKindParse      = errors.New("parse error")
	ErrKindConfig     = errors.New("configuration error")
)

// Gateway result codes with a dedicated error.
var (
	ErrInvalidOrderID       = errors.New("lidio: invalid order id")
	ErrInvalidCredential    = errors.New("lidio: invalid credential")
	ErrCurrencyNotFound     = errors.New("lidio: currency not found")
	ErrBankAccountNotActive = errors.New("lidio: bank account not active")
	ErrEmailMismatch        = errors.New("lidio: email mismatch")
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed).withKind(ErrKindValidation)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON).withKind(ErrKindParse)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerInternalError)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrConfigInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevConfigInvalid).withKind(ErrKindConfig)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadRequestBody).withKind(ErrKindParse)
	}
	ErrUnsupportedMediaType = func(contentType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnsupportedMediaType, constvars.ErrClientUnsupportedMediaType, fmt.Sprintf(constvars.ErrDevUnsupportedMediaType, contentType))
	}
	ErrRedisCommand = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisCommand)
	}
	ErrPublishMessage = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishMessage)
	}
)

// Request assembly.
var (
	ErrFieldNotAllowed = func(field string, value any, allowed []string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevFieldNotAllowed, field, value, strings.Join(allowed, ", "))
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrUnknownField = func(field string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevUnknownField, field)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrInvalidFieldType = func(field, expected string, value any) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevInvalidFieldType, field, expected, value)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrRequiredFieldMissing = func(field string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevRequiredFieldMissing, field)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrEmptyField = func(field string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevEmptyField, field)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrMixedConstruction = func(field string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevMixedConstruction, field)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrInstrumentAlreadyAdded = func(name string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevInstrumentAlreadyAdded, name)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrInstrumentOptionsAlreadySet = func(name string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevInstrumentOptionsSet, name)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrCardOptionNotAllowed = func(key string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevCardOptionNotAllowed, key)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrCardInstrumentRequired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrDevCardInstrumentRequired, constvars.ErrDevCardInstrumentRequired).withKind(ErrKindValidation)
	}
	ErrNegativeAmount = func(field, value string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevNegativeAmount, field, value)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
	ErrUnknownCustomParameterKey = func(key string) *CustomError {
		devMsg := fmt.Sprintf(constvars.ErrDevUnknownCustomParameterKey, key)
		return BuildNewCustomError(nil, constvars.StatusBadRequest, devMsg, devMsg).withKind(ErrKindValidation)
	}
)

// Gateway and notifications.
var (
	ErrGatewayTransport = func(err error, endpoint string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPaymentGatewayUnavailable, fmt.Sprintf(constvars.ErrDevGatewayTransport, endpoint)).withKind(ErrKindTransport)
	}
	ErrGatewayResult = func(sentinel error, code, message string) *CustomError {
		return BuildNewCustomError(sentinel, constvars.StatusBadGateway, constvars.ErrClientPaymentGatewayRejected, fmt.Sprintf(constvars.ErrDevGatewayResult, code, message)).withKind(ErrKindGateway).withCode(code)
	}
	ErrNotificationMissingFields = func(missing []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidNotification, fmt.Sprintf(constvars.ErrDevNotificationMissingFields, strings.Join(missing, ", "))).withKind(ErrKindParse)
	}
	ErrNotificationMalformed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidNotification, constvars.ErrDevCannotParseJSON).withKind(ErrKindParse)
	}
	ErrNotificationSignature = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientInvalidSignature, constvars.ErrDevNotificationSignature)
	}
	ErrNotificationMismatch = func(orderID, check string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidNotification, fmt.Sprintf(constvars.ErrDevNotificationMismatch, orderID, check))
	}
)
