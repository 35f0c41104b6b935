package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive              BookingStatus = "active"
	BookingStatusCancelledByConsumer BookingStatus = "cancelled_by_consumer"
	BookingStatusCancelledByProvider BookingStatus = "cancelled_by_provider"
	BookingStatusPaymentFailed       BookingStatus = "payment_failed"
)

// Booking records tickets bought by a consumer for one performance.
// Immutable after creation except for Status and AmountPaid.
type Booking struct {
	Number      int
	Consumer    *User
	Performance *Performance
	TicketCount int
	AmountPaid  float64
	BookedAt    time.Time
	Status      BookingStatus
}

// The cancel transitions set status only; who may invoke them and under
// which preconditions is decided by the service layer.

func (b *Booking) CancelByConsumer() {
	b.Status = BookingStatusCancelledByConsumer
}

func (b *Booking) CancelByProvider() {
	b.Status = BookingStatusCancelledByProvider
}

func (b *Booking) CancelPaymentFailed() {
	b.Status = BookingStatusPaymentFailed
}

// Copy reconstructs the booking field by field, binding it to the given
// (already copied) consumer and performance.
func (b *Booking) Copy(consumer *User, performance *Performance) *Booking {
	return &Booking{
		Number:      b.Number,
		Consumer:    consumer,
		Performance: performance,
		TicketCount: b.TicketCount,
		AmountPaid:  b.AmountPaid,
		BookedAt:    b.BookedAt,
		Status:      b.Status,
	}
}
