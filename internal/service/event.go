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

// EventService handles event and performance lifecycle for providers
// and event listing for all logged-in users.
type EventService struct {
	engine   *state.Engine
	clock    clock.Clock
	notifier ports.ProviderNotifier
	logger   logger.Logger
}

func NewEventService(
	engine *state.Engine,
	clock clock.Clock,
	notifier ports.ProviderNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		engine:   engine,
		clock:    clock,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateTicketedEvent registers a ticketed event owned by the logged-in
// provider.
func (s *EventService) CreateTicketedEvent(ctx context.Context, input domain.CreateTicketedEventInput) (*domain.Event, error) {
	var event *domain.Event
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleProvider {
			return domain.ErrNotAuthorized
		}
		if input.Title == "" {
			return fmt.Errorf("%w: title is required", domain.ErrValidation)
		}
		if input.Price <= 0 {
			return fmt.Errorf("%w: price must be positive", domain.ErrValidation)
		}
		if input.TicketCount <= 0 {
			return fmt.Errorf("%w: ticket count must be positive", domain.ErrValidation)
		}

		event = st.Events.CreateTicketed(current, input.Title, input.Category, input.Price, input.TicketCount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ticketed event created",
		logger.Int("event_number", event.Number),
		logger.String("title", event.Title),
	)
	return event, nil
}

// CreateNonTicketedEvent registers a non-ticketed event owned by the
// logged-in provider.
func (s *EventService) CreateNonTicketedEvent(ctx context.Context, title, category string) (*domain.Event, error) {
	var event *domain.Event
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleProvider {
			return domain.ErrNotAuthorized
		}
		if title == "" {
			return fmt.Errorf("%w: title is required", domain.ErrValidation)
		}

		event = st.Events.CreateNonTicketed(current, title, category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("non-ticketed event created",
		logger.Int("event_number", event.Number),
		logger.String("title", event.Title),
	)
	return event, nil
}

// AddPerformance schedules a performance of an event owned by the
// logged-in provider.
func (s *EventService) AddPerformance(ctx context.Context, input domain.CreatePerformanceInput) (*domain.Performance, error) {
	var performance *domain.Performance
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleProvider {
			return domain.ErrNotAuthorized
		}

		event := st.Events.FindByNumber(input.EventNumber)
		if event == nil {
			return domain.ErrEventNotFound
		}
		if event.Organiser.Email != current.Email {
			return domain.ErrNotAuthorized
		}
		if !input.EndsAt.After(input.StartsAt) {
			return fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
		}
		if input.Capacity <= 0 || input.VenueSize <= 0 {
			return fmt.Errorf("%w: capacity and venue size must be positive", domain.ErrValidation)
		}

		performance = st.Events.CreatePerformance(
			event,
			input.VenueAddress,
			input.StartsAt, input.EndsAt,
			input.Performers,
			input.SocialDistancing, input.AirFiltration, input.Outdoors,
			input.Capacity, input.VenueSize,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("performance added",
		logger.Int("event_number", input.EventNumber),
		logger.Int("performance_number", performance.Number),
	)
	return performance, nil
}

// CancelEvent cancels an active event owned by the logged-in provider,
// provided none of its performances has started, and transitions every
// active booking on it to cancelled-by-provider. Amounts paid are left
// for external reconciliation.
func (s *EventService) CancelEvent(ctx context.Context, eventNumber int) error {
	var (
		event     *domain.Event
		organiser *domain.User
	)
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleProvider {
			return domain.ErrNotAuthorized
		}

		found := st.Events.FindByNumber(eventNumber)
		if found == nil {
			return domain.ErrEventNotFound
		}
		if found.Organiser.Email != current.Email {
			return domain.ErrNotAuthorized
		}
		if found.Status != domain.EventStatusActive {
			return domain.ErrEventNotActive
		}
		now := s.clock.Now()
		for _, p := range found.Performances {
			if !now.Before(p.StartsAt) {
				return domain.ErrPerformanceStarted
			}
		}

		found.Cancel()
		for _, b := range st.Bookings.FindByEventNumber(eventNumber) {
			if b.Status == domain.BookingStatusActive {
				b.CancelByProvider()
			}
		}
		event = found
		organiser = current
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("event cancelled",
		logger.Int("event_number", event.Number),
		logger.String("title", event.Title),
	)
	go s.notifier.NotifyEventCancelled(context.WithoutCancel(ctx), organiser, event)

	return nil
}

// ListEvents returns events with a performance overlapping at (both
// boundary endpoints included), optionally restricted to active events
// and, for a consumer who asks for it, to performances satisfying every
// set preference. Requires a logged-in user of any role; an empty
// result is not an error.
func (s *EventService) ListEvents(ctx context.Context, at time.Time, activeOnly, matchPreferences bool) ([]*domain.Event, error) {
	var matched []*domain.Event
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}

		var prefs *domain.Preferences
		if matchPreferences && current.Consumer != nil {
			prefs = current.Consumer.Preferences
		}

		for _, e := range st.Events.All() {
			if activeOnly && e.Status != domain.EventStatusActive {
				continue
			}
			for _, p := range e.Performances {
				if p.Overlaps(at) && p.SatisfiesPreferences(prefs) {
					matched = append(matched, e)
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}
