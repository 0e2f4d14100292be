package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
)

const (
	Namespace = "reaction_bot"

	BotSubsystem     = "bot"
	StorageSubsystem = "storage"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Общие метрики HTTP.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint"},
	)

	CircuitBreakerState = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "circuit_breaker_transitions_total",
			Help:      "Number of circuit breaker state transitions",
		},
		[]string{"service", "state"},
	)
)

// Метрики бота.
var (
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "updates_total",
			Help:      "Total number of Telegram updates processed by type",
		},
		[]string{"update_type"},
	)

	UpdateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "update_duration_seconds",
			Help:      "Telegram update handling duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"update_type"},
	)

	ReactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "reactions_total",
			Help:      "Reaction dispatch outcomes",
		},
		[]string{"status"},
	)

	HandshakesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "handshakes_total",
			Help:      "Chat connection attempts by outcome",
		},
		[]string{"outcome"},
	)

	TogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "emoji_toggles_total",
			Help:      "Emoji toggles by action",
		},
		[]string{"action"},
	)

	ConnectedChats = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "connected_chats",
			Help:      "Number of stored chat configurations",
		},
	)
)

// Метрики хранилища.
var (
	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: StorageSubsystem,
			Name:      "queries_total",
			Help:      "Total number of storage queries",
		},
		[]string{"backend", "operation", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: StorageSubsystem,
			Name:      "query_duration_seconds",
			Help:      "Storage query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: StorageSubsystem,
			Name:      "cache_requests_total",
			Help:      "Chat config cache lookups by result",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(service, method, endpoint string, statusCode int, duration time.Duration) {
	status := StatusSuccess
	if statusCode >= 400 {
		status = StatusError
	}

	HTTPRequestsTotal.WithLabelValues(service, method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(service, method, endpoint).Observe(duration.Seconds())
}

func RecordCircuitBreakerState(service, state string) {
	CircuitBreakerState.WithLabelValues(service, state).Inc()
}

func RecordUpdate(updateType string, duration time.Duration) {
	UpdatesTotal.WithLabelValues(updateType).Inc()
	UpdateDuration.WithLabelValues(updateType).Observe(duration.Seconds())
}

func RecordReaction(status string) {
	ReactionsTotal.WithLabelValues(status).Inc()
}

func RecordHandshake(outcome string) {
	HandshakesTotal.WithLabelValues(outcome).Inc()
}

func RecordToggle(action string) {
	TogglesTotal.WithLabelValues(action).Inc()
}

func SetConnectedChats(count float64) {
	ConnectedChats.Set(count)
}

// RecordDatabaseQuery считает отсутствие записи и дубликат ключа успешными запросами.
func RecordDatabaseQuery(backend, operation string, err error, duration time.Duration) {
	status := StatusSuccess
	if err != nil &&
		!errors.Is(err, &domainerrors.ErrChatConfigNotFound{}) &&
		!errors.Is(err, &domainerrors.ErrChatConfigAlreadyExists{}) {
		status = StatusError
	}

	DatabaseQueriesTotal.WithLabelValues(backend, operation, status).Inc()
	DatabaseQueryDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

func RecordCacheRequest(result string) {
	CacheRequestsTotal.WithLabelValues(result).Inc()
}
