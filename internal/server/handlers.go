package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/alexanderramin/courseload/internal/app"
	"github.com/alexanderramin/courseload/internal/importer"
	"github.com/alexanderramin/courseload/internal/workload"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func init() {
	binding.EnableDecoderDisallowUnknownFields = true
}

const (
	maxBodyBytes = 64 << 10

	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

type dataBody struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type ratesBody struct {
	Reading workload.RateTable `json:"reading"`
	Writing workload.RateTable `json:"writing"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) rateTables(c *gin.Context) {
	c.JSON(http.StatusOK, dataBody{Data: ratesBody{
		Reading: s.rates.ReadingRates(),
		Writing: s.rates.WritingRates(),
	}})
}

func (s *Server) estimate(c *gin.Context) {
	cf := importer.NewCourseFile(s.defaultWeeks)
	if err := decodeCourse(c, &cf); err != nil {
		s.metrics.observeEstimate(outcomeInvalid, 0)
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	if errs := importer.ValidateCourseFile(&cf); len(errs) > 0 {
		details := make([]string, len(errs))
		for i, e := range errs {
			details[i] = e.Error()
		}
		s.metrics.observeEstimate(outcomeInvalid, 0)
		c.JSON(http.StatusUnprocessableEntity, errorBody{Error: "invalid course", Details: details})
		return
	}

	resp, err := s.estimator.Estimate(c.Request.Context(), app.EstimateRequest{
		Title:  cf.Title,
		Course: importer.Convert(&cf),
	})
	if err != nil {
		status, outcome := statusForError(err)
		s.metrics.observeEstimate(outcome, 0)
		c.JSON(status, errorBody{Error: err.Error()})
		return
	}
	resp.Warnings = importer.UnknownLabels(&cf)

	s.metrics.observeEstimate(outcomeOK, resp.Result.TotalHoursPerWeek)
	c.JSON(http.StatusOK, dataBody{Data: resp})
}

// decodeCourse reads the request body over cf. JSON bodies go through gin's
// JSON binding; anything else is treated as YAML. An empty body keeps cf.
func decodeCourse(c *gin.Context, cf *importer.CourseFile) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if c.ContentType() != binding.MIMEJSON {
		return importer.DecodeCourseFile(c.Request.Body, cf)
	}
	if err := c.ShouldBindWith(cf, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing course file: %w", err)
	}
	return nil
}

func statusForError(err error) (int, string) {
	var estErr *app.EstimateError
	switch {
	case errors.As(err, &estErr):
		return http.StatusUnprocessableEntity, outcomeInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, outcomeError
	default:
		return http.StatusInternalServerError, outcomeError
	}
}
