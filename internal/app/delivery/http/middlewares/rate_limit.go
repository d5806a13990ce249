package middlewares

import (
	"net/http"
	"time"

	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// PaymentLinkRateLimit limits payment link calls per client IP.
func (m *Middlewares) PaymentLinkRateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
