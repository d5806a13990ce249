package exceptions

import (
	"errors"
	"fmt"
	"lidio-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"-"`
	Code          string     `json:"code,omitempty"`
	Locations     []Location `json:"-"`

	kind error
	err  error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.DevMessage, e.err.Error())
	}
	return e.DevMessage
}

func (e *CustomError) Unwrap() []error {
	wrapped := make([]error, 0, 2)
	if e.kind != nil {
		wrapped = append(wrapped, e.kind)
	}
	if e.err != nil {
		wrapped = append(wrapped, e.err)
	}
	return wrapped
}

// Kind returns the classification sentinel, nil for unclassified errors.
func (e *CustomError) Kind() error {
	return e.kind
}

func (e *CustomError) Location() Location {
	if len(e.Locations) == 0 {
		return Location{File: constvars.ResponseUnknown, FunctionName: constvars.ResponseUnknown}
	}
	return e.Locations[0]
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
		err:           err,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
	}
}

func (e *CustomError) withKind(kind error) *CustomError {
	e.kind = kind
	return e
}

func (e *CustomError) withCode(code string) *CustomError {
	e.Code = code
	return e
}

// AsCustomError returns the first CustomError in err's chain.
func AsCustomError(err error) (*CustomError, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
