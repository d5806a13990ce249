package middlewares

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"
)

// BodyBuffer reads the request body, stores the raw bytes in the context and
// replaces the request body with a new reader so it can be consumed again.
// Signature checks depend on these exact bytes.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
		if limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrReadBody(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_RAW_BODY, bodyBytes)
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireJSON rejects bodies that are not declared as JSON.
func (m *Middlewares) RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get(constvars.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != constvars.MIMEApplicationJSON {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnsupportedMediaType(contentType))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RawBody returns the bytes buffered by BodyBuffer.
func RawBody(r *http.Request) []byte {
	body, _ := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte)
	return body
}
