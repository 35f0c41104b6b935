package service

import (
	"context"
	"fmt"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/service/ports"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/state"
	"github.com/wb-go/wbf/logger"
)

// SponsorshipService handles providers requesting sponsorship and the
// government responding to requests.
type SponsorshipService struct {
	engine   *state.Engine
	notifier ports.ProviderNotifier
	logger   logger.Logger
}

func NewSponsorshipService(
	engine *state.Engine,
	notifier ports.ProviderNotifier,
	logger logger.Logger,
) *SponsorshipService {
	return &SponsorshipService{
		engine:   engine,
		notifier: notifier,
		logger:   logger,
	}
}

// Request files a sponsorship request for a ticketed event owned by the
// logged-in provider. An event carries at most one request.
func (s *SponsorshipService) Request(ctx context.Context, eventNumber int) (*domain.SponsorshipRequest, error) {
	var request *domain.SponsorshipRequest
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleProvider {
			return domain.ErrNotAuthorized
		}

		event := st.Events.FindByNumber(eventNumber)
		if event == nil {
			return domain.ErrEventNotFound
		}
		if event.Organiser.Email != current.Email {
			return domain.ErrNotAuthorized
		}
		if event.Ticketing == nil {
			return fmt.Errorf("%w: only ticketed events can be sponsored", domain.ErrValidation)
		}
		if event.Ticketing.Sponsorship != nil {
			return domain.ErrSponsorshipExists
		}

		request = st.Sponsorships.Add(event)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sponsorship requested",
		logger.Int("request_number", request.Number),
		logger.Int("event_number", eventNumber),
	)
	return request, nil
}

// Respond records the government's decision on a pending request.
// Acceptance needs a percent within [0, 100] and a resolvable sponsor
// payment account; on any failure the request stays pending. A 0%
// acceptance is recorded as accepted and leaves the price unchanged.
func (s *SponsorshipService) Respond(ctx context.Context, requestNumber int, accept bool, percent int) (*domain.SponsorshipRequest, error) {
	var (
		request   *domain.SponsorshipRequest
		organiser *domain.User
	)
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleGovernment {
			return domain.ErrNotAuthorized
		}

		found := st.Sponsorships.FindByNumber(requestNumber)
		if found == nil {
			return domain.ErrRequestNotFound
		}
		if found.Status != domain.SponsorshipStatusPending {
			return domain.ErrRequestNotPending
		}

		if accept {
			if percent < 0 || percent > 100 {
				return fmt.Errorf("%w: discount percent must be between 0 and 100", domain.ErrValidation)
			}
			if !current.CanPay() {
				return fmt.Errorf("%w: sponsor payment account is not set", domain.ErrPaymentFailed)
			}
			found.Accept(percent, current.PaymentAccount)
		} else {
			found.Reject()
		}

		request = found
		organiser = found.Event.Organiser
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sponsorship request decided",
		logger.Int("request_number", request.Number),
		logger.String("status", string(request.Status)),
	)
	go s.notifier.NotifySponsorshipDecided(context.WithoutCancel(ctx), organiser, request)

	return request, nil
}

// Pending returns every request still awaiting a decision. Government
// only.
func (s *SponsorshipService) Pending(ctx context.Context) ([]*domain.SponsorshipRequest, error) {
	var pending []*domain.SponsorshipRequest
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleGovernment {
			return domain.ErrNotAuthorized
		}
		pending = st.Sponsorships.Pending()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pending, nil
}
