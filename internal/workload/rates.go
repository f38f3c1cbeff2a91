package workload

import (
	"math"

	"github.com/alexanderramin/courseload/internal/domain"
)

// MinReadingRate floors the reading rate before it is used as a divisor.
const MinReadingRate = 1e-6

// Default override values used when a manual override carries no value.
const (
	DefaultReadingOverride    = 1.0
	DefaultWritingOverride    = 0.0
	DefaultDiscussionOverride = 0.0
)

// readingRates holds pages per hour, indexed [difficulty][purpose][density].
var readingRates = [3][3][3]float64{
	{{67, 47, 33}, {33, 24, 17}, {17, 12, 9}},
	{{50, 35, 25}, {25, 18, 13}, {13, 9, 7}},
	{{40, 28, 20}, {20, 14, 10}, {10, 7, 5}},
}

// writingRates holds hours per page, indexed [density][drafting][genre].
var writingRates = [2][3][3]float64{
	{ // double-spaced, 250 words
		{0.75, 1.5, 3.0},
		{1.0, 2.0, 3.0},
		{1.25, 2.5, 4.0},
	},
	{ // single-spaced, 500 words
		{1.5, 3.0, 6.0},
		{2.0, 4.0, 6.0},
		{2.5, 5.0, 8.0},
	},
}

// ResolveReadingRate returns pages per hour. A manual override replaces the
// table value outright.
func ResolveReadingRate(
	difficulty domain.ReadingDifficulty,
	purpose domain.ReadingPurpose,
	density domain.ReadingDensity,
	override domain.Override,
) float64 {
	if override.Manual {
		return override.ValueOr(DefaultReadingOverride)
	}
	return readingRates[difficulty.Index()][purpose.Index()][density.Index()]
}

// ResolveWritingRate returns hours per page. A manual override is added to
// the table value rather than replacing it.
func ResolveWritingRate(
	density domain.WritingDensity,
	drafting domain.DraftingIntensity,
	genre domain.WritingGenre,
	override domain.Override,
) float64 {
	rate := writingRates[density.Index()][drafting.Index()][genre.Index()]
	if override.Manual {
		rate += override.ValueOr(DefaultWritingOverride)
	}
	return rate
}

func flooredReadingRate(pagesPerHour float64) float64 {
	return math.Max(pagesPerHour, MinReadingRate)
}
