package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexanderramin/courseload/internal/app"
	"github.com/alexanderramin/courseload/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) snapshot() []UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]UseCaseEvent(nil), r.events...)
}

func sampleCourse() domain.Course {
	return domain.Course{
		ClassWeeks: 15,
		Reading: domain.ReadingLoad{
			WeeklyPages: 30,
			Density:     domain.ReadingTextbook,
			Difficulty:  domain.DifficultySomeNewConcepts,
			Purpose:     domain.PurposeLearn,
		},
		Meetings: domain.MeetingLoad{SessionsPerWeek: 1, SessionHours: 1.5},
	}
}

func TestEstimateService_ReturnsResultAndBreakdown(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	svc := NewEstimateService(obs)

	resp, err := svc.Estimate(context.Background(), app.EstimateRequest{Title: "ENGL 1301", Course: sampleCourse()})
	require.NoError(t, err)

	assert.Equal(t, "ENGL 1301", resp.Title)
	assert.Equal(t, 15, resp.ClassWeeks)
	assert.Equal(t, 1.5, resp.Result.SyncHoursPerWeek)
	assert.InDelta(t, resp.Breakdown.Sum(), resp.Result.TotalHoursPerWeek, 0.011)

	events := obs.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, "estimate", events[0].Name)
	assert.True(t, events[0].Success)
	assert.Equal(t, "ENGL 1301", events[0].Fields["title"])
	assert.Equal(t, resp.Result.TotalHoursPerWeek, events[0].Fields["total_hours_per_week"])
}

func TestEstimateService_RejectsNonPositiveWeeks(t *testing.T) {
	t.Parallel()

	for _, weeks := range []int{0, -3} {
		obs := &recordingObserver{}
		svc := NewEstimateService(obs)

		c := sampleCourse()
		c.ClassWeeks = weeks
		resp, err := svc.Estimate(context.Background(), app.EstimateRequest{Course: c})

		require.Error(t, err)
		assert.Nil(t, resp)
		var estErr *app.EstimateError
		require.True(t, errors.As(err, &estErr))
		assert.Equal(t, app.EstimateErrInvalidWeeks, estErr.Code)

		events := obs.snapshot()
		require.Len(t, events, 1)
		assert.False(t, events[0].Success)
		assert.Equal(t, err, events[0].Err)
	}
}

func TestEstimateService_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEstimateService().Estimate(ctx, app.EstimateRequest{Course: sampleCourse()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimateService_ConcurrentCallersAgree(t *testing.T) {
	t.Parallel()

	svc := NewEstimateService()
	want, err := svc.Estimate(context.Background(), app.EstimateRequest{Course: sampleCourse()})
	require.NoError(t, err)

	const workers = 16
	results := make([]*app.EstimateResponse, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Estimate(context.Background(), app.EstimateRequest{Course: sampleCourse()})
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "worker %d", i)
		assert.Equal(t, want.Result, results[i].Result, "worker %d", i)
	}
}

func TestLogUseCaseObserver_WritesEvent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewEstimateService(NewLogUseCaseObserver(logger))

	_, err := svc.Estimate(context.Background(), app.EstimateRequest{Course: sampleCourse()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=estimate")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "classweeks=15")
}

func TestLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	t.Parallel()

	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))
}

func TestRateService_ReturnsCopies(t *testing.T) {
	t.Parallel()

	svc := NewRateService()
	reading := svc.ReadingRates()
	reading.Values[0][0][0] = -1

	assert.NotEqual(t, -1.0, svc.ReadingRates().Values[0][0][0])
	assert.Equal(t, "Writing", svc.WritingRates().Name)
}
