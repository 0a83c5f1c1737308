package pricing

import (
	"testing"

	"tidyops/models"
)

func TestEstimateDuration(t *testing.T) {
	cases := []struct {
		name      string
		bedrooms  int
		bathrooms int
		ct        models.CleaningType
		want      string
	}{
		{"regular 2bd/1ba", 2, 1, models.CleaningRegular, "1h 20m"}, // 80 min
		{"regular 1bd/1ba", 1, 1, models.CleaningRegular, "50m"},
		{"regular 2bd/3ba", 2, 3, models.CleaningRegular, "2 hours"}, // 120 min
		{"deep 2bd/2ba", 2, 2, models.CleaningDeep, "2h 30m"},        // 100 * 1.5
		{"move-in-out 1bd/1ba", 1, 1, models.CleaningMoveInOut, "1h 30m"},
		{"post-construction 3bd/2ba", 3, 2, models.CleaningPostConstruction, "4h 46m"}, // round(130 * 2.2)
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateDuration(models.ServiceDetails{
				Bedrooms: tc.bedrooms, Bathrooms: tc.bathrooms, CleaningType: tc.ct,
			})
			if got != tc.want {
				t.Errorf("EstimateDuration = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1 hour"},
		{80, "1h 20m"},
		{120, "2 hours"},
		{-5, "0m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
