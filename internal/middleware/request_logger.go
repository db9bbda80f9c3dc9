package middleware

import (
	"net/http"
	"time"

	"pet-health-records/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger loguea cada request con método, path, status y duración.
// Los 5xx salen como error (ahí van las fallas de storage); las
// validaciones (4xx) no se loguean como error, son ruido del cliente.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			fields := map[string]any{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"duration":   time.Since(start).String(),
				"request_id": chimw.GetReqID(r.Context()),
			}

			if ww.Status() >= http.StatusInternalServerError {
				log.Error("request failed", fields)
				return
			}
			log.Info("request", fields)
		})
	}
}
