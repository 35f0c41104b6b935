package service

import (
	"context"
	"testing"
	"time"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// books one ticket on a sponsored event whose performance spans
// [start, start+2h], returning the booking.
func setupSponsoredBooking(t *testing.T, f *fixture, start time.Time) *domain.Booking {
	t.Helper()

	f.registerProvider(t, "org@example.com")
	event := f.createTicketedEvent(t, 100, 10, start)
	request, err := f.sponsorships.Request(context.Background(), event.Number)
	require.NoError(t, err)
	f.logout(t)

	f.login(t, govEmail, govPassword)
	_, err = f.sponsorships.Respond(context.Background(), request.Number, true, 25)
	require.NoError(t, err)
	f.logout(t)

	f.registerConsumer(t, "alice@example.com", "acct-alice")
	booking, err := f.bookings.Book(context.Background(), event.Number, event.Performances[0].Number, 1)
	require.NoError(t, err)
	f.logout(t)

	return booking
}

func TestReportService_WindowBoundaries(t *testing.T) {
	f := newFixture(t)

	start := testBase.Add(48 * time.Hour)
	end := start.Add(2 * time.Hour)
	booking := setupSponsoredBooking(t, f, start)

	f.login(t, govEmail, govPassword)

	// the exact window includes the booking
	report, err := f.reports.SponsoredBookings(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, booking.Number, report[0].Number)

	// shifting either boundary by a minute excludes it
	report, err = f.reports.SponsoredBookings(context.Background(), start.Add(time.Minute), end)
	require.NoError(t, err)
	assert.Empty(t, report)

	report, err = f.reports.SponsoredBookings(context.Background(), start, end.Add(-time.Minute))
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestReportService_UnsponsoredExcluded(t *testing.T) {
	f := newFixture(t)

	start := testBase.Add(48 * time.Hour)
	f.registerProvider(t, "org@example.com")
	event := f.createTicketedEvent(t, 100, 10, start)
	f.logout(t)

	f.registerConsumer(t, "alice@example.com", "acct-alice")
	_, err := f.bookings.Book(context.Background(), event.Number, event.Performances[0].Number, 1)
	require.NoError(t, err)
	f.logout(t)

	f.login(t, govEmail, govPassword)
	report, err := f.reports.SponsoredBookings(context.Background(), start, start.Add(2*time.Hour))

	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestReportService_CancelledEventExcluded(t *testing.T) {
	f := newFixture(t)

	start := testBase.Add(48 * time.Hour)
	booking := setupSponsoredBooking(t, f, start)

	f.login(t, "org@example.com", testPass)
	require.NoError(t, f.events.CancelEvent(context.Background(), booking.Performance.Event.Number))
	f.logout(t)

	f.login(t, govEmail, govPassword)
	report, err := f.reports.SponsoredBookings(context.Background(), start, start.Add(2*time.Hour))

	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestReportService_RequiresGovernment(t *testing.T) {
	f := newFixture(t)

	f.registerConsumer(t, "alice@example.com", "acct-alice")

	_, err := f.reports.SponsoredBookings(context.Background(), testBase, testBase.Add(time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestReportService_NotLoggedIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.reports.SponsoredBookings(context.Background(), testBase, testBase.Add(time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}
