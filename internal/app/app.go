package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/auth"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/clock"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/config"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/notification"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/payment"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/scheduler"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/service"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/service/ports"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/state"
	"github.com/wb-go/wbf/logger"
)

// App owns the state engine, the services callers drive it with, and
// the snapshot scheduler.
type App struct {
	cfg       *config.Config
	log       logger.Logger
	engine    *state.Engine
	scheduler *scheduler.Scheduler

	Users        *service.UserService
	Events       *service.EventService
	Bookings     *service.BookingService
	Sponsorships *service.SponsorshipService
	Reports      *service.ReportService
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventsSystem",
		cfg.Logger.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	govHash, err := auth.HashPassword(a.cfg.Auth.GovPassword, a.cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash government password: %w", err)
	}
	seed := state.GovernmentSeed{
		Email:          a.cfg.Auth.GovEmail,
		PasswordHash:   govHash,
		PaymentAccount: a.cfg.Auth.GovPaymentAccount,
	}

	clk := clock.NewSystem()
	newGateway := func() ports.PaymentGateway {
		return payment.NewMockGateway(a.log)
	}
	a.engine = state.NewEngine(clk, newGateway, seed, a.log)

	notifier, err := notification.NewTicketingNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.Users = service.NewUserService(a.engine, a.cfg.Auth.BcryptCost, a.log)
	a.Events = service.NewEventService(a.engine, clk, notifier, a.log)
	a.Bookings = service.NewBookingService(a.engine, clk, notifier, a.log)
	a.Sponsorships = service.NewSponsorshipService(a.engine, notifier, a.log)
	a.Reports = service.NewReportService(a.engine, a.log)

	a.scheduler = scheduler.New(
		a.engine,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	return nil
}

// Engine exposes the snapshot engine for embedding callers.
func (a *App) Engine() *state.Engine {
	return a.engine
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.LogAttrs(ctx, logger.InfoLevel, "events system started")

	a.scheduler.Start(ctx)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")
	return nil
}
