package logger

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &responseRecorder{ResponseWriter: w}

			next.ServeHTTP(recorder, r)

			duration := time.Since(start)

			var msg string
			switch {
			case recorder.statusCode >= 500:
				msg = "server error"
			case recorder.statusCode >= 400:
				msg = "client error"
			default:
				msg = "request completed"
			}

			logEntry := log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", recorder.statusCode).
				Dur("duration_ms", duration/time.Millisecond).
				Int("bytes", recorder.size).
				Str("ip", r.RemoteAddr)

			if duration > 100*time.Millisecond {
				logEntry = logEntry.Str("slow", "true")
			}

			logEntry.Msg(msg)
		})
	}
}
