package notification

import (
	"context"
	"fmt"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TicketingNotifier tells a provider's external ticketing system about
// state changes affecting its events. Every notification is logged as a
// human-readable status line; providers with a Telegram chat configured
// additionally get the message delivered there.
type TicketingNotifier struct {
	bot *tgbotapi.BotAPI
	log logger.Logger
}

func NewTicketingNotifier(token string, log logger.Logger) (*TicketingNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, provider messages are log-only")
		return &TicketingNotifier{bot: nil, log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TicketingNotifier{bot: bot, log: log}, nil
}

func (n *TicketingNotifier) NotifyBookingCreated(ctx context.Context, provider *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"New booking #%d: %d ticket(s) for %q (performance #%d).",
		booking.Number, booking.TicketCount,
		booking.Performance.Event.Title, booking.Performance.Number,
	)
	n.send(ctx, provider, text)
}

func (n *TicketingNotifier) NotifyBookingCancelled(ctx context.Context, provider *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"Booking #%d for %q was cancelled; %d ticket(s) returned to sale.",
		booking.Number, booking.Performance.Event.Title, booking.TicketCount,
	)
	n.send(ctx, provider, text)
}

func (n *TicketingNotifier) NotifyEventCancelled(ctx context.Context, provider *domain.User, event *domain.Event) {
	text := fmt.Sprintf("Event #%d %q was cancelled.", event.Number, event.Title)
	n.send(ctx, provider, text)
}

func (n *TicketingNotifier) NotifySponsorshipDecided(ctx context.Context, provider *domain.User, request *domain.SponsorshipRequest) {
	var text string
	if request.Status == domain.SponsorshipStatusAccepted {
		text = fmt.Sprintf(
			"Sponsorship request #%d for %q was accepted at %d%% discount.",
			request.Number, request.Event.Title, request.DiscountPercent,
		)
	} else {
		text = fmt.Sprintf(
			"Sponsorship request #%d for %q was rejected.",
			request.Number, request.Event.Title,
		)
	}
	n.send(ctx, provider, text)
}

func (n *TicketingNotifier) send(ctx context.Context, provider *domain.User, text string) {
	org := ""
	if provider.Provider != nil {
		org = provider.Provider.OrgName
	}
	n.log.Info("provider ticketing system notified",
		logger.String("organisation", org),
		logger.String("message", text),
	)

	if n.bot == nil || provider.Provider == nil || provider.Provider.TelegramChatID == nil {
		return
	}

	if err := ctx.Err(); err != nil {
		n.log.Debug("telegram delivery skipped (context cancelled)",
			logger.Int64("chat_id", *provider.Provider.TelegramChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*provider.Provider.TelegramChatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.log.Error("failed to send telegram message",
			logger.Int64("chat_id", *provider.Provider.TelegramChatID),
			logger.String("error", err.Error()),
		)
	}
}
