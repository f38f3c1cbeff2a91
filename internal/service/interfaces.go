package service

import (
	"context"

	"github.com/alexanderramin/courseload/internal/app"
	"github.com/alexanderramin/courseload/internal/workload"
)

type EstimateService interface {
	Estimate(ctx context.Context, req app.EstimateRequest) (*app.EstimateResponse, error)
}

type RateService interface {
	ReadingRates() workload.RateTable
	WritingRates() workload.RateTable
}
