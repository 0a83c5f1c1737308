package models

import "time"

// Field-scoped partial update payloads for a booking draft. Nil pointers
// mean "leave unchanged" so a PATCH can carry any subset of fields.

type ContactUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type AddressUpdate struct {
	Street    *string `json:"street,omitempty"`
	Apartment *string `json:"apartment,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
}

type ServiceUpdate struct {
	Bedrooms     *int          `json:"bedrooms,omitempty"`
	Bathrooms    *int          `json:"bathrooms,omitempty"`
	CleaningType *CleaningType `json:"cleaningType,omitempty"`
}

type ExtrasUpdate struct {
	InsideFridge   *bool `json:"insideFridge,omitempty"`
	InsideOven     *bool `json:"insideOven,omitempty"`
	Windows        *int  `json:"windows,omitempty"`
	Cabinets       *bool `json:"cabinets,omitempty"`
	Laundry        *int  `json:"laundry,omitempty"`
	Walls          *bool `json:"walls,omitempty"`
	PetHairRemoval *bool `json:"petHairRemoval,omitempty"`
}

type ScheduleUpdate struct {
	Date      *time.Time `json:"date,omitempty"`
	Time      *string    `json:"time,omitempty"`
	Frequency *Frequency `json:"frequency,omitempty"`
}

// InstructionsUpdate carries the optional free-text fields of a draft.
type InstructionsUpdate struct {
	ParkingInstructions *string `json:"parkingInstructions,omitempty"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
}
