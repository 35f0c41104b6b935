package registry

import (
	"testing"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSponsorships_Add(t *testing.T) {
	provider := newProvider("org@example.com")
	events := NewEvents()
	event := events.CreateTicketed(provider, "Concert", "Music", 100, 10)

	r := NewSponsorships()
	req := r.Add(event)

	require.NotNil(t, req)
	assert.Equal(t, 1, req.Number)
	assert.Equal(t, domain.SponsorshipStatusPending, req.Status)
	assert.Same(t, req, event.Ticketing.Sponsorship)
}

func TestSponsorships_Add_Invalid(t *testing.T) {
	provider := newProvider("org@example.com")
	events := NewEvents()
	nonTicketed := events.CreateNonTicketed(provider, "Parade", "Festival")

	r := NewSponsorships()

	assert.Nil(t, r.Add(nil))
	assert.Nil(t, r.Add(nonTicketed))
	assert.Empty(t, r.All())
}

func TestSponsorships_NumbersNeverReused(t *testing.T) {
	provider := newProvider("org@example.com")
	events := NewEvents()

	r := NewSponsorships()
	first := r.Add(events.CreateTicketed(provider, "A", "Music", 10, 5))
	second := r.Add(events.CreateTicketed(provider, "B", "Music", 10, 5))
	second.Reject()
	third := r.Add(events.CreateTicketed(provider, "C", "Music", 10, 5))

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 3, third.Number)
}

func TestSponsorships_Pending(t *testing.T) {
	provider := newProvider("org@example.com")
	events := NewEvents()

	r := NewSponsorships()
	accepted := r.Add(events.CreateTicketed(provider, "A", "Music", 10, 5))
	accepted.Accept(25, "gov-account")
	pending := r.Add(events.CreateTicketed(provider, "B", "Music", 10, 5))

	filtered := r.Pending()
	require.Len(t, filtered, 1)
	assert.Same(t, pending, filtered[0])
}

func TestSponsorships_CopyRebindsEventLink(t *testing.T) {
	users := NewUsers()
	provider := newProvider("org@example.com")
	users.Add(provider)

	events := NewEvents()
	event := events.CreateTicketed(provider, "Concert", "Music", 100, 10)

	r := NewSponsorships()
	req := r.Add(event)
	req.Accept(25, "gov-account")

	usersCopy := users.Copy()
	eventsCopy := events.Copy(usersCopy)
	sponsorshipsCopy := r.Copy(eventsCopy)

	copied := sponsorshipsCopy.FindByNumber(req.Number)
	require.NotNil(t, copied)
	require.NotSame(t, req, copied)

	copiedEvent := eventsCopy.FindByNumber(event.Number)
	assert.Same(t, copied, copiedEvent.Ticketing.Sponsorship)
	assert.Same(t, copiedEvent, copied.Event)

	// the discount follows the copy, the original stays independent
	assert.Equal(t, 75.0, copiedEvent.DiscountedPrice())
	copied.DiscountPercent = 50
	assert.Equal(t, 25, req.DiscountPercent)
}
