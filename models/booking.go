package models

import "time"

// CleaningType enumerates the supported kinds of cleaning service.
type CleaningType string

const (
	CleaningRegular          CleaningType = "regular"
	CleaningDeep             CleaningType = "deep"
	CleaningMoveInOut        CleaningType = "move-in-out"
	CleaningPostConstruction CleaningType = "post-construction"
)

// Frequency enumerates how often a recurring service repeats.
type Frequency string

const (
	FrequencyOneTime  Frequency = "one-time"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// ContactInfo identifies the person requesting the service.
type ContactInfo struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
}

// Address is the service location. Apartment is the only optional field.
type Address struct {
	Street    string `bson:"street" json:"street"`
	Apartment string `bson:"apartment,omitempty" json:"apartment,omitempty"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	ZipCode   string `bson:"zipCode" json:"zipCode"`
}

// ServiceDetails describes the home to clean and the kind of cleaning.
type ServiceDetails struct {
	Bedrooms     int          `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int          `bson:"bathrooms" json:"bathrooms"`
	CleaningType CleaningType `bson:"cleaningType" json:"cleaningType"`
}

// Extras are optional add-on tasks. Boolean fields price flat, integer
// fields price per unit.
type Extras struct {
	InsideFridge   bool `bson:"insideFridge" json:"insideFridge"`
	InsideOven     bool `bson:"insideOven" json:"insideOven"`
	Windows        int  `bson:"windows" json:"windows"`
	Cabinets       bool `bson:"cabinets" json:"cabinets"`
	Laundry        int  `bson:"laundry" json:"laundry"`
	Walls          bool `bson:"walls" json:"walls"`
	PetHairRemoval bool `bson:"petHairRemoval" json:"petHairRemoval"`
}

// Schedule is the requested date, start time and repetition.
type Schedule struct {
	Date      time.Time `bson:"date" json:"date"`
	Time      string    `bson:"time" json:"time"` // "HH:MM", 24-hour
	Frequency Frequency `bson:"frequency" json:"frequency"`
}

// BookingDraft is the in-progress booking being assembled by a customer.
// All sub-objects are always initialized so that partial updates can
// shallow-merge without ever observing a missing substructure.
type BookingDraft struct {
	Contact             ContactInfo    `bson:"contact" json:"contact"`
	Address             Address        `bson:"address" json:"address"`
	Service             ServiceDetails `bson:"service" json:"service"`
	Extras              Extras         `bson:"extras" json:"extras"`
	Schedule            Schedule       `bson:"schedule" json:"schedule"`
	PromoCode           string         `bson:"promoCode,omitempty" json:"promoCode,omitempty"`
	PromoApplied        bool           `bson:"promoApplied" json:"promoApplied"`
	ParkingInstructions string         `bson:"parkingInstructions,omitempty" json:"parkingInstructions,omitempty"`
	SpecialInstructions string         `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
}

// BookingSession is a draft plus its derived pricing, cached per customer
// session until the booking is confirmed or the session expires.
type BookingSession struct {
	SessionID         string           `json:"sessionId"`
	CompanyID         string           `json:"companyId"`
	Draft             BookingDraft     `json:"draft"`
	Pricing           PricingBreakdown `json:"pricing"`
	EstimatedDuration string           `json:"estimatedDuration"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// ValidationResult reports every missing required field of a draft.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
