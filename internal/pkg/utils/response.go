package utils

import (
	"errors"
	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/dto/responses"
	"lidio-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.Error(),
				zap.Int(constvars.LoggingStatusCodeKey, code),
				zap.String("error_code", customErr.Code),
				zap.Any("location", map[string]interface{}{
					"file":          location.File,
					"line":          location.Line,
					"function_name": location.FunctionName,
				}),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := errorResponse{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil {
		response.Code = customErr.Code
		if appEnvironment != "production" {
			response.DevMessage = customErr.Error()
		}
	}
	json.NewEncoder(w).Encode(response)
}

type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	Success       bool   `json:"success"`
	ClientMessage string `json:"message"`
	Code          string `json:"code,omitempty"`
	DevMessage    string `json:"dev_message,omitempty"`
}
