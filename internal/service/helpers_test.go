package service

import (
	"context"
	"testing"
	"time"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/auth"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/clock"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/payment"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/service/ports"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/state"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	govEmail    = "sponsor@gov.test"
	govPassword = "gov-pass"
	testPass    = "secret"
)

// testBase is the fixed "now" every service test runs at.
var testBase = time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type stubNotifier struct{}

func (stubNotifier) NotifyBookingCreated(context.Context, *domain.User, *domain.Booking)    {}
func (stubNotifier) NotifyBookingCancelled(context.Context, *domain.User, *domain.Booking)  {}
func (stubNotifier) NotifyEventCancelled(context.Context, *domain.User, *domain.Event)      {}
func (stubNotifier) NotifySponsorshipDecided(context.Context, *domain.User, *domain.SponsorshipRequest) {
}

type fixture struct {
	engine       *state.Engine
	users        *UserService
	events       *EventService
	bookings     *BookingService
	sponsorships *SponsorshipService
	reports      *ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := newTestLogger(t)

	govHash, err := auth.HashPassword(govPassword, bcrypt.MinCost)
	require.NoError(t, err)

	clk := clock.NewFixed(testBase)
	newGateway := func() ports.PaymentGateway {
		return payment.NewMockGateway(log)
	}
	engine := state.NewEngine(clk, newGateway, state.GovernmentSeed{
		Email:          govEmail,
		PasswordHash:   govHash,
		PaymentAccount: "gov-account",
	}, log)

	notifier := stubNotifier{}
	return &fixture{
		engine:       engine,
		users:        NewUserService(engine, bcrypt.MinCost, log),
		events:       NewEventService(engine, clk, notifier, log),
		bookings:     NewBookingService(engine, clk, notifier, log),
		sponsorships: NewSponsorshipService(engine, notifier, log),
		reports:      NewReportService(engine, log),
	}
}

// registerProvider registers (and logs in) a provider account.
func (f *fixture) registerProvider(t *testing.T, email string) *domain.User {
	t.Helper()
	user, err := f.users.RegisterProvider(context.Background(), domain.RegisterProviderInput{
		OrgName:        "Org " + email,
		OrgAddress:     "1 Stage Road",
		PaymentAccount: "acct-" + email,
		MainRepName:    "Rep",
		MainRepEmail:   email,
		Password:       testPass,
	})
	require.NoError(t, err)
	return user
}

// registerConsumer registers (and logs in) a consumer account.
func (f *fixture) registerConsumer(t *testing.T, email, paymentAccount string) *domain.User {
	t.Helper()
	user, err := f.users.RegisterConsumer(context.Background(), domain.RegisterConsumerInput{
		Name:           "Consumer " + email,
		Email:          email,
		Phone:          "0123456789",
		Password:       testPass,
		PaymentAccount: paymentAccount,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) login(t *testing.T, email, password string) {
	t.Helper()
	_, err := f.users.Login(context.Background(), email, password)
	require.NoError(t, err)
}

func (f *fixture) logout(t *testing.T) {
	t.Helper()
	require.NoError(t, f.users.Logout(context.Background()))
}

// createTicketedEvent creates an event with one performance for the
// currently logged-in provider.
func (f *fixture) createTicketedEvent(t *testing.T, price float64, tickets int, startsAt time.Time) *domain.Event {
	t.Helper()
	event, err := f.events.CreateTicketedEvent(context.Background(), domain.CreateTicketedEventInput{
		Title:       "Concert",
		Category:    "Music",
		Price:       price,
		TicketCount: tickets,
	})
	require.NoError(t, err)

	_, err = f.events.AddPerformance(context.Background(), domain.CreatePerformanceInput{
		EventNumber:  event.Number,
		VenueAddress: "2 Venue Lane",
		StartsAt:     startsAt,
		EndsAt:       startsAt.Add(2 * time.Hour),
		Performers:   []string{"The Band"},
		Capacity:     100,
		VenueSize:    200,
	})
	require.NoError(t, err)
	return event
}
