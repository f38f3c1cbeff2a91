package workload

import "github.com/alexanderramin/courseload/internal/domain"

// RateTable is a labelled copy of one lookup table for display.
// Values is indexed [outer][middle][inner] in the same order as the labels.
type RateTable struct {
	Name         string        `json:"name"`
	Unit         string        `json:"unit"`
	OuterAxis    string        `json:"outer_axis"`
	MiddleAxis   string        `json:"middle_axis"`
	InnerAxis    string        `json:"inner_axis"`
	OuterLabels  []string      `json:"outer_labels"`
	MiddleLabels []string      `json:"middle_labels"`
	InnerLabels  []string      `json:"inner_labels"`
	Values       [][][]float64 `json:"values"`
}

// ReadingRateTable returns the reading table (pages per hour).
func ReadingRateTable() RateTable {
	values := make([][][]float64, len(readingRates))
	for i := range readingRates {
		values[i] = make([][]float64, len(readingRates[i]))
		for j := range readingRates[i] {
			values[i][j] = append([]float64(nil), readingRates[i][j][:]...)
		}
	}
	return RateTable{
		Name:         "Reading",
		Unit:         "pages/hour",
		OuterAxis:    "Difficulty",
		MiddleAxis:   "Purpose",
		InnerAxis:    "Page Density",
		OuterLabels:  labelsOf(domain.ReadingDifficulties()),
		MiddleLabels: labelsOf(domain.ReadingPurposes()),
		InnerLabels:  labelsOf(domain.ReadingDensities()),
		Values:       values,
	}
}

// WritingRateTable returns the writing table (hours per page).
func WritingRateTable() RateTable {
	values := make([][][]float64, len(writingRates))
	for i := range writingRates {
		values[i] = make([][]float64, len(writingRates[i]))
		for j := range writingRates[i] {
			values[i][j] = append([]float64(nil), writingRates[i][j][:]...)
		}
	}
	return RateTable{
		Name:         "Writing",
		Unit:         "hours/page",
		OuterAxis:    "Page Density",
		MiddleAxis:   "Drafting",
		InnerAxis:    "Genre",
		OuterLabels:  labelsOf(domain.WritingDensities()),
		MiddleLabels: labelsOf(domain.DraftingIntensities()),
		InnerLabels:  labelsOf(domain.WritingGenres()),
		Values:       values,
	}
}

func labelsOf[T interface{ Label() string }](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.Label()
	}
	return out
}
