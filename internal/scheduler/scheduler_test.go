package scheduler_test

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	"github.com/central-university-dev/go-reaction-bot/internal/scheduler"
	"github.com/central-university-dev/go-reaction-bot/internal/scheduler/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_Start(t *testing.T) {
	mockCounter := new(mocks.ChatConfigCounter)
	interval := 100 * time.Millisecond
	//nolint //тест
	mockCounter.On("Count", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(int64(7), nil)

	scheduler := scheduler.NewScheduler(mockCounter, interval, testLogger())
	scheduler.Start()

	time.Sleep(150 * time.Millisecond)
	scheduler.Stop()

	mockCounter.AssertExpectations(t)
	assert.InDelta(t, 7.0, testutil.ToFloat64(metrics.ConnectedChats), 0.001)
}

func TestScheduler_Stop(t *testing.T) {
	mockCounter := new(mocks.ChatConfigCounter)
	interval := 1 * time.Second

	scheduler := scheduler.NewScheduler(mockCounter, interval, testLogger())

	var calls atomic.Int32

	// первый запуск gocron выполняет сразу, поэтому разрешаем его
	mockCounter.On("Count", mock.Anything).Run(func(mock.Arguments) {
		calls.Add(1)
	}).Return(int64(0), nil).Maybe()

	scheduler.Start()
	scheduler.Stop()

	time.Sleep(1200 * time.Millisecond)

	assert.LessOrEqual(t, calls.Load(), int32(1))
}

func TestScheduler_CountWithError(t *testing.T) {
	metrics.SetConnectedChats(3)

	mockCounter := new(mocks.ChatConfigCounter)
	interval := 100 * time.Millisecond
	//nolint //тест
	mockCounter.On("Count", mock.Anything).Return(int64(0), assert.AnError)

	scheduler := scheduler.NewScheduler(mockCounter, interval, testLogger())
	scheduler.Start()

	time.Sleep(150 * time.Millisecond)
	scheduler.Stop()

	mockCounter.AssertExpectations(t)
	assert.InDelta(t, 3.0, testutil.ToFloat64(metrics.ConnectedChats), 0.001)
}
