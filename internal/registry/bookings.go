package registry

import (
	"github.com/AndreasHiropedi/Events-System-sub000/internal/clock"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
)

// Bookings owns every booking ever made and allocates booking numbers.
// Cancelled bookings are kept for reporting.
type Bookings struct {
	bookings   []*domain.Booking
	nextNumber int
	clk        clock.Clock
}

func NewBookings(clk clock.Clock) *Bookings {
	return &Bookings{nextNumber: 1, clk: clk}
}

// Create allocates the next booking number, stamps the booking with the
// current time and appends it to both the global list and the
// consumer's own list. Returns nil without mutation unless consumer and
// performance are non-nil and ticketCount is positive.
func (r *Bookings) Create(consumer *domain.User, performance *domain.Performance, ticketCount int, amountPaid float64) *domain.Booking {
	if consumer == nil || performance == nil || ticketCount <= 0 {
		return nil
	}
	b := &domain.Booking{
		Number:      r.nextNumber,
		Consumer:    consumer,
		Performance: performance,
		TicketCount: ticketCount,
		AmountPaid:  amountPaid,
		BookedAt:    r.clk.Now(),
		Status:      domain.BookingStatusActive,
	}
	r.nextNumber++
	r.bookings = append(r.bookings, b)
	if consumer.Consumer != nil {
		consumer.Consumer.Bookings = append(consumer.Consumer.Bookings, b)
	}
	return b
}

func (r *Bookings) FindByNumber(number int) *domain.Booking {
	for _, b := range r.bookings {
		if b.Number == number {
			return b
		}
	}
	return nil
}

// FindByEventNumber returns every booking on any performance of the
// given event.
func (r *Bookings) FindByEventNumber(eventNumber int) []*domain.Booking {
	var matched []*domain.Booking
	for _, b := range r.bookings {
		if b.Performance.Event.Number == eventNumber {
			matched = append(matched, b)
		}
	}
	return matched
}

func (r *Bookings) All() []*domain.Booking {
	return r.bookings
}

// Copy reconstructs the registry and every booking in it field by
// field, rebinding consumers and performances into the already copied
// user and event registries.
func (r *Bookings) Copy(users *Users, events *Events) *Bookings {
	c := &Bookings{nextNumber: r.nextNumber, clk: r.clk}
	for _, b := range r.bookings {
		consumer := users.FindByEmail(b.Consumer.Email)
		var performance *domain.Performance
		if event := events.FindByNumber(b.Performance.Event.Number); event != nil {
			performance = event.Performance(b.Performance.Number)
		}
		copied := b.Copy(consumer, performance)
		c.bookings = append(c.bookings, copied)
		if consumer != nil && consumer.Consumer != nil {
			consumer.Consumer.Bookings = append(consumer.Consumer.Bookings, copied)
		}
	}
	return c
}
