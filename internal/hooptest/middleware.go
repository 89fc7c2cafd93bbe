package hooptest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestIDHeader carries the per-request id on responses.
const RequestIDHeader = "X-Hooptest-Request-ID"

// requestLogger logs incoming requests and tags each with a unique request
// id, set on both the logging context and the response headers.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := uuid.NewString()
		ctx := log.With().Str("request_id", requestID).Logger().WithContext(r.Context())
		w.Header().Set(RequestIDHeader, requestID)

		log.Ctx(ctx).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Msg("incoming request")

		defer func() {
			log.Ctx(ctx).Debug().
				Dur("duration", time.Since(start)).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
