package pricing

import (
	"fmt"
	"math"

	"tidyops/models"
)

// EstimateMinutes predicts how long a job takes: a per-room base scaled
// by the cleaning type's multiplier.
func EstimateMinutes(s models.ServiceDetails) int {
	bedrooms := clampTier(s.Bedrooms, maxBedroomTier)
	bathrooms := clampTier(s.Bathrooms, maxBathroom)
	base := float64(bedrooms*minutesPerBedroom + bathrooms*minutesPerBathroom)
	return int(math.Round(base * tableFor(s.CleaningType).durationMultiplier))
}

// EstimateDuration returns the formatted duration estimate for a job.
func EstimateDuration(s models.ServiceDetails) string {
	return FormatDuration(EstimateMinutes(s))
}

// FormatDuration renders minutes as "Xh Ym", "X hour(s)" on the exact
// hour, or "Nm" under an hour.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0 && h == 1:
		return "1 hour"
	case m == 0:
		return fmt.Sprintf("%d hours", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
