package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/courseload/internal/app"
	"github.com/alexanderramin/courseload/internal/workload"
)

type estimateService struct {
	observer UseCaseObserver
}

// NewEstimateService returns a stateless estimator; one instance may serve
// concurrent callers.
func NewEstimateService(observers ...UseCaseObserver) EstimateService {
	return &estimateService{observer: useCaseObserverOrNoop(observers)}
}

func (s *estimateService) Estimate(ctx context.Context, req app.EstimateRequest) (resp *app.EstimateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"classweeks": req.Course.ClassWeeks,
	}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "estimate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if req.Course.ClassWeeks <= 0 {
		return nil, &app.EstimateError{
			Code:    app.EstimateErrInvalidWeeks,
			Message: fmt.Sprintf("classweeks must be positive, got %d", req.Course.ClassWeeks),
		}
	}

	result, breakdown := workload.Estimate(req.Course)
	fields["total_hours_per_week"] = result.TotalHoursPerWeek
	fields["sync_hours_per_week"] = result.SyncHoursPerWeek

	return &app.EstimateResponse{
		Title:      req.Title,
		ClassWeeks: req.Course.ClassWeeks,
		Result:     result,
		Breakdown:  breakdown,
	}, nil
}

type rateService struct{}

func NewRateService() RateService {
	return rateService{}
}

func (rateService) ReadingRates() workload.RateTable { return workload.ReadingRateTable() }
func (rateService) WritingRates() workload.RateTable { return workload.WritingRateTable() }
