package domain

type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
)

type EventKind string

const (
	EventKindTicketed    EventKind = "ticketed"
	EventKindNonTicketed EventKind = "non_ticketed"
)

// Event is a provider's event with its scheduled performances.
// Ticketing is set for ticketed events and nil otherwise.
type Event struct {
	Number       int
	Organiser    *User
	Title        string
	Category     string
	Status       EventStatus
	Performances []*Performance
	Ticketing    *Ticketing
}

// Ticketing holds the sellable side of a ticketed event.
type Ticketing struct {
	OriginalPrice    float64
	RemainingTickets int
	Sponsorship      *SponsorshipRequest
}

func (e *Event) Kind() EventKind {
	if e.Ticketing != nil {
		return EventKindTicketed
	}
	return EventKindNonTicketed
}

// Cancel transitions the event to cancelled. Preconditions (current
// status, no started performance) are the caller's responsibility.
func (e *Event) Cancel() {
	e.Status = EventStatusCancelled
}

// DiscountedPrice is the per-ticket price after an accepted sponsorship
// discount. Pending or rejected requests leave the original price
// unchanged. Zero for non-ticketed events.
func (e *Event) DiscountedPrice() float64 {
	if e.Ticketing == nil {
		return 0
	}
	t := e.Ticketing
	if t.Sponsorship != nil && t.Sponsorship.Status == SponsorshipStatusAccepted {
		return t.OriginalPrice * float64(100-t.Sponsorship.DiscountPercent) / 100
	}
	return t.OriginalPrice
}

// Performance returns the performance with the given number, nil if the
// event has none.
func (e *Event) Performance(number int) *Performance {
	for _, p := range e.Performances {
		if p.Number == number {
			return p
		}
	}
	return nil
}

// Copy reconstructs the event and its performances field by field,
// binding the organiser to the given (already copied) user. The
// sponsorship link is left nil; the sponsorship registry copy rebinds it.
func (e *Event) Copy(organiser *User) *Event {
	c := &Event{
		Number:    e.Number,
		Organiser: organiser,
		Title:     e.Title,
		Category:  e.Category,
		Status:    e.Status,
	}
	if e.Ticketing != nil {
		c.Ticketing = &Ticketing{
			OriginalPrice:    e.Ticketing.OriginalPrice,
			RemainingTickets: e.Ticketing.RemainingTickets,
		}
	}
	for _, p := range e.Performances {
		c.Performances = append(c.Performances, p.Copy(c))
	}
	return c
}
