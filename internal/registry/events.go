package registry

import (
	"time"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
)

// Events owns every event and performance and allocates their numbers.
type Events struct {
	events          []*domain.Event
	nextEventNumber int
	nextPerfNumber  int
}

func NewEvents() *Events {
	return &Events{nextEventNumber: 1, nextPerfNumber: 1}
}

// CreateTicketed allocates the next event number and registers a
// ticketed event owned by the organiser. Returns nil if the organiser
// is nil; price and ticket-count ranges are the service layer's job.
func (r *Events) CreateTicketed(organiser *domain.User, title, category string, price float64, ticketCount int) *domain.Event {
	if organiser == nil {
		return nil
	}
	e := &domain.Event{
		Number:    r.nextEventNumber,
		Organiser: organiser,
		Title:     title,
		Category:  category,
		Status:    domain.EventStatusActive,
		Ticketing: &domain.Ticketing{
			OriginalPrice:    price,
			RemainingTickets: ticketCount,
		},
	}
	r.register(e)
	return e
}

// CreateNonTicketed allocates the next event number and registers a
// non-ticketed event owned by the organiser. Returns nil if the
// organiser is nil.
func (r *Events) CreateNonTicketed(organiser *domain.User, title, category string) *domain.Event {
	if organiser == nil {
		return nil
	}
	e := &domain.Event{
		Number:    r.nextEventNumber,
		Organiser: organiser,
		Title:     title,
		Category:  category,
		Status:    domain.EventStatusActive,
	}
	r.register(e)
	return e
}

func (r *Events) register(e *domain.Event) {
	r.nextEventNumber++
	r.events = append(r.events, e)
	if e.Organiser.Provider != nil {
		e.Organiser.Provider.Events = append(e.Organiser.Provider.Events, e)
	}
}

// CreatePerformance allocates the next performance number and appends
// the performance to the event. Returns nil if the event is nil.
func (r *Events) CreatePerformance(
	event *domain.Event,
	venueAddress string,
	startsAt, endsAt time.Time,
	performers []string,
	socialDistancing, airFiltration, outdoors bool,
	capacity, venueSize int,
) *domain.Performance {
	if event == nil {
		return nil
	}
	p := &domain.Performance{
		Number:           r.nextPerfNumber,
		Event:            event,
		VenueAddress:     venueAddress,
		StartsAt:         startsAt,
		EndsAt:           endsAt,
		Performers:       performers,
		SocialDistancing: socialDistancing,
		AirFiltration:    airFiltration,
		Outdoors:         outdoors,
		Capacity:         capacity,
		VenueSize:        venueSize,
	}
	r.nextPerfNumber++
	event.Performances = append(event.Performances, p)
	return p
}

func (r *Events) FindByNumber(number int) *domain.Event {
	for _, e := range r.events {
		if e.Number == number {
			return e
		}
	}
	return nil
}

func (r *Events) All() []*domain.Event {
	return r.events
}

// Copy reconstructs the registry and every event in it field by field,
// rebinding organisers into the already copied user registry and
// appending each copied event to its organiser's owned list.
func (r *Events) Copy(users *Users) *Events {
	c := &Events{
		nextEventNumber: r.nextEventNumber,
		nextPerfNumber:  r.nextPerfNumber,
	}
	for _, e := range r.events {
		organiser := users.FindByEmail(e.Organiser.Email)
		copied := e.Copy(organiser)
		c.events = append(c.events, copied)
		if organiser != nil && organiser.Provider != nil {
			organiser.Provider.Events = append(organiser.Provider.Events, copied)
		}
	}
	return c
}
