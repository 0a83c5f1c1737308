package booking

import (
	"strings"

	"tidyops/models"
)

// NewBookingDraft returns a draft with every sub-object initialized so
// partial updates can shallow-merge without nil checks anywhere.
func NewBookingDraft() models.BookingDraft {
	return models.BookingDraft{
		Contact: models.ContactInfo{},
		Address: models.Address{},
		Service: models.ServiceDetails{
			Bedrooms:     1,
			Bathrooms:    1,
			CleaningType: models.CleaningRegular,
		},
		Extras: models.Extras{},
		Schedule: models.Schedule{
			Frequency: models.FrequencyOneTime,
		},
	}
}

// The apply* helpers shallow-merge a partial update into one sub-object
// of the draft. Nil pointer fields leave the current value untouched.

func applyContact(d *models.BookingDraft, u models.ContactUpdate) {
	if u.FirstName != nil {
		d.Contact.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		d.Contact.LastName = *u.LastName
	}
	if u.Email != nil {
		d.Contact.Email = *u.Email
	}
	if u.Phone != nil {
		d.Contact.Phone = *u.Phone
	}
}

func applyAddress(d *models.BookingDraft, u models.AddressUpdate) {
	if u.Street != nil {
		d.Address.Street = *u.Street
	}
	if u.Apartment != nil {
		d.Address.Apartment = *u.Apartment
	}
	if u.City != nil {
		d.Address.City = *u.City
	}
	if u.State != nil {
		d.Address.State = *u.State
	}
	if u.ZipCode != nil {
		d.Address.ZipCode = *u.ZipCode
	}
}

func applyService(d *models.BookingDraft, u models.ServiceUpdate) {
	if u.Bedrooms != nil {
		d.Service.Bedrooms = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		d.Service.Bathrooms = *u.Bathrooms
	}
	if u.CleaningType != nil {
		d.Service.CleaningType = *u.CleaningType
	}
}

func applyExtras(d *models.BookingDraft, u models.ExtrasUpdate) {
	if u.InsideFridge != nil {
		d.Extras.InsideFridge = *u.InsideFridge
	}
	if u.InsideOven != nil {
		d.Extras.InsideOven = *u.InsideOven
	}
	if u.Windows != nil {
		d.Extras.Windows = *u.Windows
	}
	if u.Cabinets != nil {
		d.Extras.Cabinets = *u.Cabinets
	}
	if u.Laundry != nil {
		d.Extras.Laundry = *u.Laundry
	}
	if u.Walls != nil {
		d.Extras.Walls = *u.Walls
	}
	if u.PetHairRemoval != nil {
		d.Extras.PetHairRemoval = *u.PetHairRemoval
	}
}

func applySchedule(d *models.BookingDraft, u models.ScheduleUpdate) {
	if u.Date != nil {
		d.Schedule.Date = *u.Date
	}
	if u.Time != nil {
		d.Schedule.Time = *u.Time
	}
	if u.Frequency != nil {
		d.Schedule.Frequency = *u.Frequency
	}
}

func applyInstructions(d *models.BookingDraft, u models.InstructionsUpdate) {
	if u.ParkingInstructions != nil {
		d.ParkingInstructions = *u.ParkingInstructions
	}
	if u.SpecialInstructions != nil {
		d.SpecialInstructions = *u.SpecialInstructions
	}
}

// validateDraft checks that every field required for submission is
// present and reports all missing ones, not just the first.
func validateDraft(d models.BookingDraft) models.ValidationResult {
	var errs []string

	check := func(value, message string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, message)
		}
	}

	check(d.Contact.FirstName, "first name is required")
	check(d.Contact.LastName, "last name is required")
	check(d.Contact.Email, "email is required")
	check(d.Contact.Phone, "phone is required")

	check(d.Address.Street, "street address is required")
	check(d.Address.City, "city is required")
	check(d.Address.State, "state is required")
	check(d.Address.ZipCode, "zip code is required")

	if d.Schedule.Date.IsZero() {
		errs = append(errs, "service date is required")
	}
	check(d.Schedule.Time, "service time is required")

	return models.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
