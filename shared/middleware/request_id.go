package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/itchan-dev/forum/shared/logger"
)

const RequestIdHeader = "X-Request-Id"

// RequestId propagates an incoming X-Request-Id or generates one, and binds
// it to the request-scoped logger.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, requestId)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestId(r.Context(), requestId)))
	})
}
