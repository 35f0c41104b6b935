package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
	Mode   string `yaml:"mode"   env:"LOG_MODE"   env-default:"debug" validate:"required,oneof=debug release test"`
}

// LogLevel maps the configured level string onto logger.Level from wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine maps the configured engine string onto logger.Engine from wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

// AuthConfig covers password hashing and the pre-registered government
// account every fresh state starts with.
type AuthConfig struct {
	BcryptCost        int    `yaml:"bcrypt_cost"         env:"AUTH_BCRYPT_COST"    env-default:"10"                          validate:"min=4,max=31"`
	GovEmail          string `yaml:"gov_email"           env:"GOV_EMAIL"           env-default:"sponsorship@gov.example.org" validate:"required,email"`
	GovPassword       string `yaml:"gov_password"        env:"GOV_PASSWORD"        env-default:"change-me"                   validate:"required"`
	GovPaymentAccount string `yaml:"gov_payment_account" env:"GOV_PAYMENT_ACCOUNT" env-default:"gov-sponsorship-account"     validate:"required"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
