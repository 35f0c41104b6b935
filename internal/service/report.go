package service

import (
	"context"
	"time"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/state"
	"github.com/wb-go/wbf/logger"
)

// ReportService produces the government's booking audits.
type ReportService struct {
	engine *state.Engine
	logger logger.Logger
}

func NewReportService(engine *state.Engine, logger logger.Logger) *ReportService {
	return &ReportService{engine: engine, logger: logger}
}

// SponsoredBookings returns every booking whose performance lies within
// [start, end] (both endpoints included) and whose event is active with
// an accepted sponsorship. Government only; an empty result is not an
// error.
func (s *ReportService) SponsoredBookings(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	var matched []*domain.Booking
	err := s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleGovernment {
			return domain.ErrNotAuthorized
		}

		for _, b := range st.Bookings.All() {
			p := b.Performance
			event := p.Event
			if !p.Within(start, end) {
				continue
			}
			if event.Status != domain.EventStatusActive {
				continue
			}
			if event.Ticketing == nil || event.Ticketing.Sponsorship == nil ||
				event.Ticketing.Sponsorship.Status != domain.SponsorshipStatusAccepted {
				continue
			}
			matched = append(matched, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sponsored bookings report generated",
		logger.Int("bookings", len(matched)),
	)
	return matched, nil
}
