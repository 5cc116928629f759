package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is the full environment surface of the service, loaded once at
// startup. godotenv autoload in main fills the process env from .env first.
type Config struct {
	HTTPPort       int `envconfig:"HTTP_PORT" default:"8080"`
	OrdersPageSize int `envconfig:"ORDERS_PAGE_SIZE" default:"10"`

	// Shared secret used to verify the storefront webhook signature.
	WebhookSecret string `envconfig:"WEBHOOK_SECRET"`

	// HS256 secret of the managed auth backend; access tokens are verified
	// locally instead of a per-request auth round-trip.
	AuthJWTSecret string `envconfig:"AUTH_JWT_SECRET"`

	// Admin REST endpoint of the identity provider, used only by the
	// best-effort user deletion.
	AuthAdminURL   string `envconfig:"AUTH_ADMIN_URL"`
	AuthAdminToken string `envconfig:"AUTH_ADMIN_TOKEN"`

	SessionCacheTTL time.Duration `envconfig:"SESSION_CACHE_TTL" default:"30s"`

	AWS      AWSConfig
	Telegram TelegramConfig
}

type AWSConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	// Optional local endpoint, e.g. http://dynamodb:8000.
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
	LogoBucket       string `envconfig:"LOGO_BUCKET" default:"entregaswoo-logos"`
}

// TelegramConfig selects one of the two dispatch strategies:
//   - ChatIDs set: one message per configured recipient chat.
//   - StoreChannels set: one message to the channel mapped to the order's
//     store (format: "L1:-1001234567890,L2:-1001234567891").
//
// StoreChannels wins when both are present.
type TelegramConfig struct {
	BotToken      string            `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatIDs       []string          `envconfig:"TELEGRAM_CHAT_IDS"`
	StoreChannels map[string]string `envconfig:"TELEGRAM_STORE_CHANNELS"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "loading environment configuration")
	}
	return cfg, nil
}
