package booking

import (
	"strings"
	"sync"

	"tidyops/models"
	"tidyops/services/pricing"
)

// DraftListener observes draft mutations. Listeners run synchronously on
// the mutating call; they must not mutate the manager re-entrantly.
type DraftListener func(draft models.BookingDraft, breakdown models.PricingBreakdown)

// DraftManager owns one in-flight booking draft. Only the manager
// mutates the draft and only the manager notifies, so there is a single
// writer by construction. Every mutation reprices the draft through the
// engine and fires listeners exactly once.
type DraftManager struct {
	mu        sync.Mutex
	engine    *pricing.Engine
	draft     models.BookingDraft
	breakdown models.PricingBreakdown

	listeners  map[int]DraftListener
	nextListID int
}

// NewDraftManager returns a manager holding a fresh default draft.
func NewDraftManager(engine *pricing.Engine) *DraftManager {
	m := &DraftManager{
		engine:    engine,
		draft:     NewBookingDraft(),
		listeners: make(map[int]DraftListener),
	}
	m.breakdown, _ = engine.Quote(&m.draft)
	return m
}

// Draft returns a copy of the current draft.
func (m *DraftManager) Draft() models.BookingDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Pricing returns the breakdown computed at the last mutation.
func (m *DraftManager) Pricing() models.PricingBreakdown {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.breakdown
}

// Subscribe registers a listener and returns its unsubscribe func.
func (m *DraftManager) Subscribe(fn DraftListener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextListID
	m.nextListID++
	m.listeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *DraftManager) mutate(apply func(*models.BookingDraft)) {
	m.mu.Lock()
	apply(&m.draft)
	m.breakdown, _ = m.engine.Quote(&m.draft)
	draft, breakdown := m.draft, m.breakdown
	listeners := make([]DraftListener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(draft, breakdown)
	}
}

// UpdateContact shallow-merges a contact partial into the draft.
func (m *DraftManager) UpdateContact(u models.ContactUpdate) {
	m.mutate(func(d *models.BookingDraft) { applyContact(d, u) })
}

// UpdateAddress shallow-merges an address partial into the draft.
func (m *DraftManager) UpdateAddress(u models.AddressUpdate) {
	m.mutate(func(d *models.BookingDraft) { applyAddress(d, u) })
}

// UpdateService shallow-merges a service partial into the draft.
func (m *DraftManager) UpdateService(u models.ServiceUpdate) {
	m.mutate(func(d *models.BookingDraft) { applyService(d, u) })
}

// UpdateExtras shallow-merges an extras partial into the draft.
func (m *DraftManager) UpdateExtras(u models.ExtrasUpdate) {
	m.mutate(func(d *models.BookingDraft) { applyExtras(d, u) })
}

// UpdateSchedule shallow-merges a schedule partial into the draft.
func (m *DraftManager) UpdateSchedule(u models.ScheduleUpdate) {
	m.mutate(func(d *models.BookingDraft) { applySchedule(d, u) })
}

// UpdateInstructions sets the optional free-text fields.
func (m *DraftManager) UpdateInstructions(u models.InstructionsUpdate) {
	m.mutate(func(d *models.BookingDraft) { applyInstructions(d, u) })
}

// SetPromoCode stores a promo code, normalized to uppercase.
func (m *DraftManager) SetPromoCode(code string) {
	m.mutate(func(d *models.BookingDraft) {
		d.PromoCode = strings.ToUpper(strings.TrimSpace(code))
		d.PromoApplied = false
	})
}

// ApplyPromo marks the promo as locked in. This is display state only;
// the stored code already drives the discount.
func (m *DraftManager) ApplyPromo() {
	m.mutate(func(d *models.BookingDraft) { d.PromoApplied = true })
}

// EstimatedDuration formats the duration estimate for the current draft.
func (m *DraftManager) EstimatedDuration() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pricing.EstimateDuration(m.draft.Service)
}

// Validate reports every missing required field of the current draft.
func (m *DraftManager) Validate() models.ValidationResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return validateDraft(m.draft)
}
