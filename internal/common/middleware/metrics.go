package middleware

import (
	"net/http"
	"time"

	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Metrics учитывает каждый HTTP запрос в метриках сервиса serviceName.
func Metrics(serviceName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			metrics.RecordHTTPRequest(serviceName, r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
