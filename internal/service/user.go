package service

import (
	"context"
	"fmt"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/auth"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/domain"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/state"
	"github.com/wb-go/wbf/logger"
)

// UserService handles registration and the single login session.
type UserService struct {
	engine     *state.Engine
	bcryptCost int
	logger     logger.Logger
}

func NewUserService(engine *state.Engine, bcryptCost int, logger logger.Logger) *UserService {
	return &UserService{
		engine:     engine,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// RegisterConsumer creates a consumer account and logs it in.
func (s *UserService) RegisterConsumer(ctx context.Context, input domain.RegisterConsumerInput) (*domain.User, error) {
	var user *domain.User
	err := s.engine.Run(func(st *state.State) error {
		if st.Users.Current() != nil {
			return fmt.Errorf("%w: log out before registering", domain.ErrValidation)
		}
		if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
			return fmt.Errorf("%w: name, email, phone and password are required", domain.ErrValidation)
		}
		if st.Users.FindByEmail(input.Email) != nil {
			return domain.ErrEmailTaken
		}

		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user = &domain.User{
			Email:          input.Email,
			PasswordHash:   hash,
			PaymentAccount: input.PaymentAccount,
			Role:           domain.RoleConsumer,
			Consumer: &domain.ConsumerProfile{
				Name:  input.Name,
				Phone: input.Phone,
			},
		}
		st.Users.Add(user)
		st.Users.SetCurrent(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("consumer registered",
		logger.String("email", user.Email),
	)
	return user, nil
}

// RegisterProvider creates a provider account keyed by the main
// representative's email and logs it in.
func (s *UserService) RegisterProvider(ctx context.Context, input domain.RegisterProviderInput) (*domain.User, error) {
	var user *domain.User
	err := s.engine.Run(func(st *state.State) error {
		if st.Users.Current() != nil {
			return fmt.Errorf("%w: log out before registering", domain.ErrValidation)
		}
		if input.OrgName == "" || input.OrgAddress == "" || input.MainRepName == "" ||
			input.MainRepEmail == "" || input.Password == "" {
			return fmt.Errorf("%w: organisation, representative and password fields are required", domain.ErrValidation)
		}
		if st.Users.FindByEmail(input.MainRepEmail) != nil {
			return domain.ErrEmailTaken
		}

		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user = &domain.User{
			Email:          input.MainRepEmail,
			PasswordHash:   hash,
			PaymentAccount: input.PaymentAccount,
			Role:           domain.RoleProvider,
			Provider: &domain.ProviderProfile{
				OrgName:        input.OrgName,
				OrgAddress:     input.OrgAddress,
				MainRepName:    input.MainRepName,
				OtherRepNames:  input.OtherRepNames,
				OtherRepEmails: input.OtherRepEmails,
				TelegramChatID: input.TelegramChatID,
			},
		}
		st.Users.Add(user)
		st.Users.SetCurrent(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("provider registered",
		logger.String("email", user.Email),
		logger.String("organisation", user.Provider.OrgName),
	)
	return user, nil
}

// Login verifies credentials and makes the user the current session,
// replacing any previous one.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var user *domain.User
	err := s.engine.Run(func(st *state.State) error {
		found := st.Users.FindByEmail(email)
		if found == nil || !auth.CheckPassword(found.PasswordHash, password) {
			return domain.ErrInvalidCredentials
		}
		st.Users.SetCurrent(found)
		user = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in",
		logger.String("email", user.Email),
	)
	return user, nil
}

// Logout clears the current session.
func (s *UserService) Logout(ctx context.Context) error {
	return s.engine.Run(func(st *state.State) error {
		if st.Users.Current() == nil {
			return domain.ErrNotLoggedIn
		}
		st.Users.SetCurrent(nil)
		return nil
	})
}

// CurrentUser returns the logged-in user, nil when nobody is.
func (s *UserService) CurrentUser(ctx context.Context) *domain.User {
	var user *domain.User
	_ = s.engine.Run(func(st *state.State) error {
		user = st.Users.Current()
		return nil
	})
	return user
}

// UpdatePreferences replaces the logged-in consumer's search
// preferences.
func (s *UserService) UpdatePreferences(ctx context.Context, prefs domain.Preferences) error {
	return s.engine.Run(func(st *state.State) error {
		current := st.Users.Current()
		if current == nil {
			return domain.ErrNotLoggedIn
		}
		if current.Role != domain.RoleConsumer {
			return domain.ErrNotAuthorized
		}
		current.Consumer.Preferences = &prefs
		return nil
	})
}
