package pricing

import (
	"testing"
	"time"

	"tidyops/models"
)

// fixedEngine returns an engine whose clock is pinned to a known instant.
func fixedEngine(now time.Time) *Engine {
	return &Engine{now: func() time.Time { return now }}
}

func draftFor(bedrooms, bathrooms int, ct models.CleaningType) *models.BookingDraft {
	return &models.BookingDraft{
		Service: models.ServiceDetails{Bedrooms: bedrooms, Bathrooms: bathrooms, CleaningType: ct},
		Schedule: models.Schedule{
			Date:      time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
			Time:      "10:00",
			Frequency: models.FrequencyOneTime,
		},
	}
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestQuote_BaseExample(t *testing.T) {
	e := fixedEngine(testNow)

	draft := draftFor(2, 1, models.CleaningRegular)
	draft.Extras = models.Extras{InsideFridge: true, Windows: 3}

	got, err := e.Quote(draft)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}

	want := models.PricingBreakdown{
		BaseRate:    120,
		ExtrasTotal: 40, // 25 fridge + 3 windows x 5
		TravelFee:   15,
		RushFee:     0,
		Subtotal:    175,
		Discount:    0,
		Total:       175,
	}
	if got != want {
		t.Fatalf("breakdown mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestQuote_DiscountsDoNotCompound(t *testing.T) {
	e := fixedEngine(testNow)

	// Regular 2bd/1ba, no extras: subtotal = 120 + 15 travel = 135.
	draft := draftFor(2, 1, models.CleaningRegular)
	draft.Schedule.Frequency = models.FrequencyWeekly
	draft.PromoCode = "FIRST20"

	got, err := e.Quote(draft)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}

	// Both discounts against the same subtotal: round(135*0.15)=20 plus
	// round(135*0.20)=27. Compounding would instead yield 135*0.85*0.80.
	if got.Discount != 47 {
		t.Errorf("discount = %v, want 47", got.Discount)
	}
	if got.Total != 88 {
		t.Errorf("total = %v, want 88", got.Total)
	}
}

func TestQuote_PromoCodes(t *testing.T) {
	e := fixedEngine(testNow)

	cases := []struct {
		name     string
		code     string
		discount float64
	}{
		{"known uppercase", "SAVE10", 14}, // round(135 * 0.10)
		{"case insensitive", "save10", 14},
		{"padded", "  welcome15 ", 20}, // round(135 * 0.15)
		{"unknown fails open", "BOGUS50", 0},
		{"empty", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := draftFor(2, 1, models.CleaningRegular)
			draft.PromoCode = tc.code
			got, err := e.Quote(draft)
			if err != nil {
				t.Fatalf("Quote returned error: %v", err)
			}
			if got.Discount != tc.discount {
				t.Errorf("discount = %v, want %v", got.Discount, tc.discount)
			}
		})
	}
}

func TestQuote_RushBoundary(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	e := fixedEngine(now)

	cases := []struct {
		name string
		date time.Time
		at   string
		rush bool
	}{
		{"exactly 24h out", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), "10:00", false},
		{"one minute under", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), "09:59", true},
		{"same day", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "15:00", true},
		{"next week", time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), "10:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := draftFor(2, 1, models.CleaningRegular)
			draft.Schedule.Date = tc.date
			draft.Schedule.Time = tc.at

			got, err := e.Quote(draft)
			if err != nil {
				t.Fatalf("Quote returned error: %v", err)
			}
			wantFee := 0.0
			if tc.rush {
				wantFee = 24 // round(120 * 0.20)
			}
			if got.RushFee != wantFee {
				t.Errorf("rush fee = %v, want %v", got.RushFee, wantFee)
			}
		})
	}
}

func TestQuote_BaseRateMonotonicAndClamped(t *testing.T) {
	e := fixedEngine(testNow)

	for _, ct := range []models.CleaningType{
		models.CleaningRegular, models.CleaningDeep,
		models.CleaningMoveInOut, models.CleaningPostConstruction,
	} {
		prev := 0.0
		for bedrooms := 1; bedrooms <= 10; bedrooms++ {
			for bathrooms := 1; bathrooms <= 10; bathrooms++ {
				got, err := e.Quote(draftFor(bedrooms, bathrooms, ct))
				if err != nil {
					t.Fatalf("Quote returned error: %v", err)
				}
				if got.BaseRate < prev && bathrooms > 1 {
					t.Fatalf("%s: base rate decreased at %dbd/%dba", ct, bedrooms, bathrooms)
				}
				prev = got.BaseRate
				if got.Total < 0 {
					t.Fatalf("%s: negative total at %dbd/%dba", ct, bedrooms, bathrooms)
				}
			}
			prev = 0
		}

		over, _ := e.Quote(draftFor(9, 9, ct))
		top, _ := e.Quote(draftFor(5, 4, ct))
		if over.BaseRate != top.BaseRate {
			t.Errorf("%s: 9bd/9ba should price as the top tier (%v), got %v", ct, top.BaseRate, over.BaseRate)
		}
	}
}

func TestQuote_UnknownCleaningTypeFallsBack(t *testing.T) {
	e := fixedEngine(testNow)

	odd, err := e.Quote(draftFor(3, 2, models.CleaningType("steam")))
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	regular, _ := e.Quote(draftFor(3, 2, models.CleaningRegular))
	if odd.BaseRate != regular.BaseRate {
		t.Errorf("unknown type base rate = %v, want regular's %v", odd.BaseRate, regular.BaseRate)
	}
}

func TestQuote_NilDraft(t *testing.T) {
	e := fixedEngine(testNow)
	if _, err := e.Quote(nil); err != ErrNilDraft {
		t.Fatalf("expected ErrNilDraft, got %v", err)
	}
}

func TestQuote_PerUnitExtras(t *testing.T) {
	e := fixedEngine(testNow)

	draft := draftFor(1, 1, models.CleaningRegular)
	draft.Extras = models.Extras{
		InsideOven:     true,
		Cabinets:       true,
		Walls:          true,
		PetHairRemoval: true,
		Windows:        4,
		Laundry:        2,
	}
	got, err := e.Quote(draft)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	// 20 + 30 + 40 + 35 + 4x5 + 2x15 = 175
	if got.ExtrasTotal != 175 {
		t.Errorf("extras total = %v, want 175", got.ExtrasTotal)
	}
}
