package ports

import (
	"context"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
)

// ProviderNotifier informs a provider's external ticketing system of
// state changes affecting its events. Purely a notification boundary:
// the notified system keeps no authoritative state here.
type ProviderNotifier interface {
	NotifyBookingCreated(ctx context.Context, provider *domain.User, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, provider *domain.User, booking *domain.Booking)
	NotifyEventCancelled(ctx context.Context, provider *domain.User, event *domain.Event)
	NotifySponsorshipDecided(ctx context.Context, provider *domain.User, request *domain.SponsorshipRequest)
}
