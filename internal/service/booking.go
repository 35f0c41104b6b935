package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/clock"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/service/ports"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/state"
	"github.com/wb-go/wbf/logger"
)

// cancellationNotice is the minimum gap between a cancellation and the
// performance start.
const cancellationNotice = 24 * time.Hour

// BookingService handles ticket purchase and consumer-side
// cancellation.
type BookingService struct {
	engine   *state.Engine
	clock    clock.Clock
	notifier ports.ProviderNotifier
	logger   logger.Logger
}

func NewBookingService(
	engine *state.Engine,
	clock clock.Clock,
	notifier ports.ProviderNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		engine:   engine,
		clock:    clock,
		notifier: notifier,
		logger:   logger,
	}
}

// Book buys tickets for a performance on behalf of the logged-in
// consumer. The charge uses the sponsorship-aware price; on any failure
// nothing is created and the remaining-ticket count is unchanged.
func (s *BookingService) Book(ctx context.Context, eventNumber, performanceNumber, ticketCount int) (*domain.Booking, error) {
	var (
		booking   *domain.Booking
		organiser *domain.User
	)
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleConsumer {
			return domain.ErrNotAuthorized
		}

		event := st.Events.FindByNumber(eventNumber)
		if event == nil {
			return domain.ErrEventNotFound
		}
		if event.Ticketing == nil {
			return fmt.Errorf("%w: event is not ticketed", domain.ErrValidation)
		}
		if event.Status != domain.EventStatusActive {
			return domain.ErrEventNotActive
		}
		performance := event.Performance(performanceNumber)
		if performance == nil {
			return domain.ErrPerformanceNotFound
		}
		if ticketCount <= 0 {
			return fmt.Errorf("%w: ticket count must be positive", domain.ErrValidation)
		}
		if ticketCount > event.Ticketing.RemainingTickets {
			return domain.ErrNotEnoughTickets
		}
		if !s.clock.Now().Before(performance.StartsAt) {
			return domain.ErrPerformanceStarted
		}
		if !current.CanPay() {
			return fmt.Errorf("%w: consumer has no payment account", domain.ErrPaymentFailed)
		}

		amount := float64(ticketCount) * event.DiscountedPrice()
		if !st.Payments.ProcessPayment(current.PaymentAccount, event.Organiser.PaymentAccount, amount) {
			return domain.ErrPaymentFailed
		}

		booking = st.Bookings.Create(current, performance, ticketCount, amount)
		event.Ticketing.RemainingTickets -= ticketCount
		organiser = event.Organiser
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.Int("booking_number", booking.Number),
		logger.Int("event_number", eventNumber),
		logger.Int("tickets", booking.TicketCount),
	)
	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), organiser, booking)

	return booking, nil
}

// CancelBooking cancels the logged-in consumer's own active booking,
// refunds the amount paid and returns the tickets to sale. Refused
// within 24 hours of the performance start.
func (s *BookingService) CancelBooking(ctx context.Context, bookingNumber int) error {
	var (
		booking   *domain.Booking
		organiser *domain.User
	)
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleConsumer {
			return domain.ErrNotAuthorized
		}

		found := st.Bookings.FindByNumber(bookingNumber)
		if found == nil {
			return domain.ErrBookingNotFound
		}
		if found.Consumer.Email != current.Email {
			return domain.ErrNotAuthorized
		}
		if found.Status != domain.BookingStatusActive {
			return domain.ErrBookingNotActive
		}
		if !s.clock.Now().Add(cancellationNotice).Before(found.Performance.StartsAt) {
			return domain.ErrCancellationWindowClosed
		}

		event := found.Performance.Event
		if found.AmountPaid > 0 {
			if !st.Payments.ProcessRefund(current.PaymentAccount, event.Organiser.PaymentAccount, found.AmountPaid) {
				return domain.ErrRefundFailed
			}
		}

		found.CancelByConsumer()
		if event.Ticketing != nil {
			event.Ticketing.RemainingTickets += found.TicketCount
		}
		booking = found
		organiser = event.Organiser
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("booking cancelled by consumer",
		logger.Int("booking_number", booking.Number),
	)
	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), organiser, booking)

	return nil
}

// ListByConsumer returns the logged-in consumer's bookings, newest
// last.
func (s *BookingService) ListByConsumer(ctx context.Context) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleConsumer {
			return domain.ErrNotAuthorized
		}
		bookings = append(bookings, current.Consumer.Bookings...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
