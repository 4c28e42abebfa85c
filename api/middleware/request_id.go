package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/velora-shop/velora-backend/pkg/logger"
)

// RequestIDHeader carries the per-request correlation id, echoed back on
// every response alongside the other X-Velora-* headers.
const RequestIDHeader = "X-Velora-Request-Id"

// RequestID assigns each request a correlation id, honoring one supplied by
// the caller, and attaches it to the request-scoped log entry.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
