package state

import (
	"github.com/AndreasHiropedi/Events-System-sub000/internal/clock"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/registry"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/service/ports"
)

// GovernmentSeed is the pre-registered government account every fresh
// state starts with.
type GovernmentSeed struct {
	Email          string
	PasswordHash   string
	PaymentAccount string
}

// State is the full application state at a point in time: the four
// registries plus the payment gateway handle. The gateway represents an
// external system boundary and is therefore constructed fresh for every
// state, never copied from another one.
type State struct {
	Users        *registry.Users
	Events       *registry.Events
	Bookings     *registry.Bookings
	Sponsorships *registry.Sponsorships
	Payments     ports.PaymentGateway
}

// New builds an empty state seeded with the government account.
func New(clk clock.Clock, gateway ports.PaymentGateway, seed GovernmentSeed) *State {
	users := registry.NewUsers()
	users.Add(&domain.User{
		Email:          seed.Email,
		PasswordHash:   seed.PasswordHash,
		PaymentAccount: seed.PaymentAccount,
		Role:           domain.RoleGovernment,
	})
	return &State{
		Users:        users,
		Events:       registry.NewEvents(),
		Bookings:     registry.NewBookings(clk),
		Sponsorships: registry.NewSponsorships(),
		Payments:     gateway,
	}
}

// Copy produces a fully independent deep copy of the state, rebuilding
// the entity graph in dependency order so every cross-reference lands
// on the copied object. The given gateway becomes the copy's handle.
func (s *State) Copy(gateway ports.PaymentGateway) *State {
	users := s.Users.Copy()
	events := s.Events.Copy(users)
	sponsorships := s.Sponsorships.Copy(events)
	bookings := s.Bookings.Copy(users, events)
	return &State{
		Users:        users,
		Events:       events,
		Bookings:     bookings,
		Sponsorships: sponsorships,
		Payments:     gateway,
	}
}
