package workload

import "github.com/alexanderramin/courseload/internal/domain"

const (
	wordsPerHour = 250.0

	// Audio/video posts: 0.18 h per recorded minute plus a sixth of the
	// recorded minutes again for preparation.
	avRecordFactor = 0.18
	avPrepDivisor  = 6.0

	// Divisor for the secondary audio/video figure.
	avOtherDivisor = 3.0
)

// DiscussionHours returns the weekly hours counted toward the total and a
// secondary figure computed with a different audio/video divisor.
//
// The post count comes from the selected basis and is used as-is: a
// semester total is not spread over the term.
func DiscussionHours(d domain.DiscussionLoad) (hours, otherHours float64) {
	if d.Override.Manual {
		hours = d.Override.ValueOr(DefaultDiscussionOverride)
		return hours, hours
	}

	n := float64(d.PostCount())
	if d.Format.Index() == domain.PostText.Index() {
		hours = float64(d.TextWords) * n / wordsPerHour
		return hours, hours
	}

	recorded := d.AVMinutes * n
	hours = avRecordFactor*recorded + recorded/avPrepDivisor
	return hours, recorded / avOtherDivisor
}
