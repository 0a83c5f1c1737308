package booking

import (
	"reflect"
	"testing"
	"time"

	"tidyops/models"
	"tidyops/services/pricing"
)

func ptr[T any](v T) *T { return &v }

func TestNewBookingDraftDefaults(t *testing.T) {
	d := NewBookingDraft()

	if d.Service.Bedrooms != 1 || d.Service.Bathrooms != 1 {
		t.Errorf("default rooms = %d/%d, want 1/1", d.Service.Bedrooms, d.Service.Bathrooms)
	}
	if d.Service.CleaningType != models.CleaningRegular {
		t.Errorf("default cleaning type = %q, want %q", d.Service.CleaningType, models.CleaningRegular)
	}
	if d.Schedule.Frequency != models.FrequencyOneTime {
		t.Errorf("default frequency = %q, want %q", d.Schedule.Frequency, models.FrequencyOneTime)
	}
}

func TestDraftManagerShallowMerge(t *testing.T) {
	m := NewDraftManager(pricing.NewEngine())

	m.UpdateContact(models.ContactUpdate{
		FirstName: ptr("Dana"),
		Email:     ptr("dana@example.com"),
	})
	m.UpdateContact(models.ContactUpdate{Phone: ptr("555-0100")})

	d := m.Draft()
	if d.Contact.FirstName != "Dana" {
		t.Errorf("FirstName = %q, want Dana (second partial must not reset it)", d.Contact.FirstName)
	}
	if d.Contact.Email != "dana@example.com" {
		t.Errorf("Email = %q, want dana@example.com", d.Contact.Email)
	}
	if d.Contact.Phone != "555-0100" {
		t.Errorf("Phone = %q, want 555-0100", d.Contact.Phone)
	}
}

func TestDraftManagerRepricesOnUpdate(t *testing.T) {
	m := NewDraftManager(pricing.NewEngine())

	// Default draft: 1bd/1ba regular, no extras, non-rush.
	if got := m.Pricing().Total; got != 115 {
		t.Fatalf("initial total = %v, want 115", got)
	}

	m.UpdateService(models.ServiceUpdate{Bedrooms: ptr(2)})
	if got := m.Pricing().Total; got != 135 {
		t.Errorf("total after bedroom update = %v, want 135", got)
	}

	m.UpdateExtras(models.ExtrasUpdate{InsideFridge: ptr(true)})
	if got := m.Pricing().Total; got != 160 {
		t.Errorf("total after fridge extra = %v, want 160", got)
	}
}

func TestDraftManagerListeners(t *testing.T) {
	m := NewDraftManager(pricing.NewEngine())

	var calls int
	var lastTotal float64
	unsubscribe := m.Subscribe(func(d models.BookingDraft, b models.PricingBreakdown) {
		calls++
		lastTotal = b.Total
	})

	m.UpdateService(models.ServiceUpdate{Bedrooms: ptr(3)})
	if calls != 1 {
		t.Fatalf("listener calls after one mutation = %d, want 1", calls)
	}
	if lastTotal != 155 {
		t.Errorf("listener saw total %v, want 155", lastTotal)
	}

	unsubscribe()
	m.UpdateService(models.ServiceUpdate{Bedrooms: ptr(4)})
	if calls != 1 {
		t.Errorf("listener calls after unsubscribe = %d, want 1", calls)
	}
}

func TestDraftManagerPromoNormalization(t *testing.T) {
	m := NewDraftManager(pricing.NewEngine())

	m.SetPromoCode("  save10 ")
	d := m.Draft()
	if d.PromoCode != "SAVE10" {
		t.Errorf("PromoCode = %q, want SAVE10", d.PromoCode)
	}
	if d.PromoApplied {
		t.Error("PromoApplied should reset when a new code is set")
	}

	m.ApplyPromo()
	if !m.Draft().PromoApplied {
		t.Error("ApplyPromo should mark the code applied")
	}
}

func TestValidateReportsAllMissingFields(t *testing.T) {
	m := NewDraftManager(pricing.NewEngine())
	m.UpdateContact(models.ContactUpdate{
		FirstName: ptr("Dana"),
		LastName:  ptr("Reed"),
		Phone:     ptr("555-0100"),
	})
	m.UpdateAddress(models.AddressUpdate{
		Street:  ptr("12 Oak St"),
		State:   ptr("WA"),
		ZipCode: ptr("98101"),
	})
	m.UpdateSchedule(models.ScheduleUpdate{
		Date: ptr(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)),
		Time: ptr("10:00"),
	})

	result := m.Validate()
	if result.IsValid {
		t.Fatal("draft missing email and city should not validate")
	}
	want := []string{"email is required", "city is required"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Errorf("Errors = %v, want %v", result.Errors, want)
	}
}

func TestValidateEmptyDraftListsEverything(t *testing.T) {
	result := validateDraft(NewBookingDraft())
	if result.IsValid {
		t.Fatal("empty draft should not validate")
	}
	if len(result.Errors) != 10 {
		t.Errorf("empty draft missing-field count = %d, want 10: %v", len(result.Errors), result.Errors)
	}
}

func TestValidateCompleteDraft(t *testing.T) {
	d := NewBookingDraft()
	d.Contact = models.ContactInfo{FirstName: "Dana", LastName: "Reed", Email: "dana@example.com", Phone: "555-0100"}
	d.Address = models.Address{Street: "12 Oak St", City: "Seattle", State: "WA", ZipCode: "98101"}
	d.Schedule.Date = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	d.Schedule.Time = "10:00"

	result := validateDraft(d)
	if !result.IsValid || len(result.Errors) != 0 {
		t.Errorf("complete draft should validate, got errors %v", result.Errors)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Missing: []string{"email is required", "city is required"}}
	want := "booking draft is incomplete: email is required; city is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
