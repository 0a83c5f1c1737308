package models

// PricingBreakdown is the line-item decomposition of a quoted price.
// Subtotal is always the pre-discount sum (base + extras + fees);
// Total = max(Subtotal - Discount, 0).
type PricingBreakdown struct {
	BaseRate    float64 `bson:"baseRate" json:"baseRate"`
	ExtrasTotal float64 `bson:"extrasTotal" json:"extrasTotal"`
	TravelFee   float64 `bson:"travelFee" json:"travelFee"`
	RushFee     float64 `bson:"rushFee" json:"rushFee"`
	Subtotal    float64 `bson:"subtotal" json:"subtotal"`
	Discount    float64 `bson:"discount" json:"discount"`
	Total       float64 `bson:"total" json:"total"`
}
