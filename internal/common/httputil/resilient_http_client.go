package httputil

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/central-university-dev/go-reaction-bot/internal/config"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
)

// CreateResilientHTTPClient возвращает resty клиент с circuit breaker без повторных попыток:
// каждый неудачный запрос к Telegram считается окончательным.
func CreateResilientHTTPClient(cfg *config.Config, logger *slog.Logger, serviceName string) *resty.Client {
	client := resty.New()

	client.SetTimeout(cfg.TelegramRequestTimeout)
	client.SetRetryCount(0)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        serviceName + "_circuit_breaker",
		MaxRequests: uint32(cfg.CBPermittedCallsInHalfOpen), //nolint:gosec // G115: значение из конфига
		Interval:    time.Duration(cfg.CBSlidingWindowSize) * time.Second,
		Timeout:     cfg.CBWaitDurationInOpenState,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= uint32(cfg.CBMinimumRequiredCalls) && //nolint:gosec // G115: значение из конфига
				failureRatio >= float64(cfg.CBFailureRateThreshold)/100.0
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerState(serviceName, to.String())

			if logger != nil {
				logger.Warn("Состояние circuit breaker изменилось",
					"breaker", name,
					"from", from.String(),
					"to", to.String(),
				)
			}
		},
	})

	client.SetTransport(&CircuitBreakerTransport{
		breaker:     breaker,
		next:        http.DefaultTransport,
		logger:      logger,
		serviceName: serviceName,
	})

	return client
}

type CircuitBreakerTransport struct {
	breaker     *gobreaker.CircuitBreaker
	next        http.RoundTripper
	logger      *slog.Logger
	serviceName string
}

func (t *CircuitBreakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	result, err := t.breaker.Execute(func() (any, error) {
		resp, err := t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			return nil, &domainerrors.HTTPError{StatusCode: resp.StatusCode}
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) && t.logger != nil {
			t.logger.Warn("Circuit breaker открыт, запрос отклонен",
				"service", t.serviceName,
				"path", req.URL.Path,
			)
		}

		return nil, err
	}

	return result.(*http.Response), nil
}
