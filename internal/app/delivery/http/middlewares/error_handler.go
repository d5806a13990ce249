package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("%v", x)
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInternalPanic))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
