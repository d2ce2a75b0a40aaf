package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"agro-exports-api/configs"

	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware tags every request with a uuid and logs method,
// path, status and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	logger := configs.LogWithContext("agro-exports-api", "http")

	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		recorder := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}
		recorder.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(recorder, r)

		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	})
}

// RecoveryMiddleware turns handler panics into 500s instead of dropping
// the connection.
func RecoveryMiddleware(next http.Handler) http.Handler {
	logger := configs.LogWithContext("agro-exports-api", "recovery")

	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.WithFields(map[string]interface{}{
					"panic": recovered,
					"path":  r.URL.Path,
					"stack": string(debug.Stack()),
				}).Error("handler panicked")
				http.Error(rw, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(rw, r)
	})
}

// CORSMiddleware allows all origins; the API serves a public website
// contact form.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Access-Control-Allow-Origin", "*")
		rw.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		rw.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			rw.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(rw, r)
	})
}
