package app

import (
	"github.com/alexanderramin/courseload/internal/domain"
	"github.com/alexanderramin/courseload/internal/workload"
)

type EstimateRequest struct {
	Title  string
	Course domain.Course
}

type EstimateResponse struct {
	Title      string             `json:"title,omitempty"`
	ClassWeeks int                `json:"classweeks"`
	Result     workload.Result    `json:"result"`
	Breakdown  workload.Breakdown `json:"breakdown"`
	Warnings   []string           `json:"warnings,omitempty"`
}

type EstimateErrorCode string

const (
	EstimateErrInvalidWeeks EstimateErrorCode = "INVALID_CLASSWEEKS"
)

// EstimateError reports a request the engine cannot evaluate.
type EstimateError struct {
	Code    EstimateErrorCode
	Message string
}

func (e *EstimateError) Error() string {
	return string(e.Code) + ": " + e.Message
}
