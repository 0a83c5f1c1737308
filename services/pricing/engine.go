package pricing

import (
	"errors"
	"math"
	"strings"
	"time"

	"tidyops/models"
)

// ErrNilDraft is returned when Quote is called without a draft.
var ErrNilDraft = errors.New("pricing: booking draft is required")

// Engine maps a booking draft to a price breakdown. It is pure and
// synchronous; the only state is the clock, injectable for tests.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an Engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Quote computes the full breakdown for a draft. Both the frequency and
// promo discounts are taken against the same pre-discount subtotal, so
// they never compound. Unknown cleaning types, frequencies and promo
// codes degrade to defaults rather than failing.
func (e *Engine) Quote(draft *models.BookingDraft) (models.PricingBreakdown, error) {
	if draft == nil {
		return models.PricingBreakdown{}, ErrNilDraft
	}

	table := tableFor(draft.Service.CleaningType)
	base := table.bedroomRate[clampTier(draft.Service.Bedrooms, maxBedroomTier)] +
		table.bathroomRate[clampTier(draft.Service.Bathrooms, maxBathroom)]

	extras := extrasTotal(draft.Extras)

	var rush float64
	if e.IsRushOrder(draft.Schedule) {
		rush = math.Round(base * rushRate)
	}

	subtotal := base + extras + travelFee + rush

	discount := math.Round(subtotal*frequencyDiscounts[draft.Schedule.Frequency]) +
		math.Round(subtotal*promoRate(draft.PromoCode))

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	return models.PricingBreakdown{
		BaseRate:    base,
		ExtrasTotal: extras,
		TravelFee:   travelFee,
		RushFee:     rush,
		Subtotal:    subtotal,
		Discount:    discount,
		Total:       total,
	}, nil
}

// IsRushOrder reports whether the scheduled start is strictly less than
// 24 hours away. An unset date never counts as a rush order.
func (e *Engine) IsRushOrder(s models.Schedule) bool {
	if s.Date.IsZero() {
		return false
	}
	start := models.CombineDateTime(s.Date, s.Time)
	return start.Sub(e.now()) < rushWindow*time.Hour
}

func extrasTotal(x models.Extras) float64 {
	var total float64
	if x.InsideFridge {
		total += priceInsideFridge
	}
	if x.InsideOven {
		total += priceInsideOven
	}
	if x.Cabinets {
		total += priceCabinets
	}
	if x.Walls {
		total += priceWalls
	}
	if x.PetHairRemoval {
		total += pricePetHairRemoval
	}
	if x.Windows > 0 {
		total += float64(x.Windows) * pricePerWindow
	}
	if x.Laundry > 0 {
		total += float64(x.Laundry) * pricePerLaundryLoad
	}
	return total
}

// promoRate resolves a promo code case-insensitively. Unknown or empty
// codes are worth nothing.
func promoRate(code string) float64 {
	if code == "" {
		return 0
	}
	return promoCodes[strings.ToUpper(strings.TrimSpace(code))]
}
