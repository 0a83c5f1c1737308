package pricing

import "tidyops/models"

// rateTable holds the tabulated rates for one cleaning type. Bedroom
// tiers run 1..5 and bathroom tiers 1..4; counts outside the table are
// clamped to the nearest tier.
type rateTable struct {
	bedroomRate        map[int]float64
	bathroomRate       map[int]float64
	durationMultiplier float64
}

const (
	minTier        = 1
	maxBedroomTier = 5
	maxBathroom    = 4
)

var rateTables = map[models.CleaningType]rateTable{
	models.CleaningRegular: {
		bedroomRate:        map[int]float64{1: 80, 2: 100, 3: 120, 4: 140, 5: 160},
		bathroomRate:       map[int]float64{1: 20, 2: 35, 3: 50, 4: 65},
		durationMultiplier: 1.0,
	},
	models.CleaningDeep: {
		bedroomRate:        map[int]float64{1: 120, 2: 150, 3: 180, 4: 210, 5: 240},
		bathroomRate:       map[int]float64{1: 30, 2: 50, 3: 70, 4: 90},
		durationMultiplier: 1.5,
	},
	models.CleaningMoveInOut: {
		bedroomRate:        map[int]float64{1: 140, 2: 175, 3: 210, 4: 245, 5: 280},
		bathroomRate:       map[int]float64{1: 35, 2: 60, 3: 85, 4: 110},
		durationMultiplier: 1.8,
	},
	models.CleaningPostConstruction: {
		bedroomRate:        map[int]float64{1: 170, 2: 210, 3: 250, 4: 290, 5: 330},
		bathroomRate:       map[int]float64{1: 45, 2: 75, 3: 105, 4: 135},
		durationMultiplier: 2.2,
	},
}

// Flat extras prices and per-unit rates.
const (
	priceInsideFridge   = 25
	priceInsideOven     = 20
	priceCabinets       = 30
	priceWalls          = 40
	pricePetHairRemoval = 35
	pricePerWindow      = 5
	pricePerLaundryLoad = 15
)

// travelFee is a flat placeholder; it is not distance-sensitive yet.
const travelFee = 15

// rushRate is applied to the base rate when the scheduled start is under
// 24 hours away.
const rushRate = 0.20

// rushWindow is the notice threshold below which a booking is a rush order.
const rushWindow = 24 // hours

// frequencyDiscounts maps recurrence to its discount rate. Unknown
// frequencies read as zero.
var frequencyDiscounts = map[models.Frequency]float64{
	models.FrequencyOneTime:  0,
	models.FrequencyWeekly:   0.15,
	models.FrequencyBiweekly: 0.10,
	models.FrequencyMonthly:  0.05,
}

// promoCodes is the fixed promo table, keyed uppercase. Unknown codes
// contribute no discount and raise no error.
var promoCodes = map[string]float64{
	"FIRST20":   0.20,
	"SAVE10":    0.10,
	"WELCOME15": 0.15,
}

// Estimated minutes of work per room.
const (
	minutesPerBedroom  = 30
	minutesPerBathroom = 20
)

// tableFor resolves the rate table for a cleaning type, falling back to
// the regular tier for unknown values.
func tableFor(ct models.CleaningType) rateTable {
	if t, ok := rateTables[ct]; ok {
		return t
	}
	return rateTables[models.CleaningRegular]
}

// clampTier pins a room count into the tabulated range.
func clampTier(n, max int) int {
	if n < minTier {
		return minTier
	}
	if n > max {
		return max
	}
	return n
}
