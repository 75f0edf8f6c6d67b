package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"

	ProviderSimulated = "simulated"
	ProviderSumsub    = "sumsub"
)

func New() (*Config, error) {
	var cfg Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Error("Error can't get the environment variables by file")
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	APP
	DB
	Redis
	Kafka
	Verification
	Sumsub
	Solana
	Credential
}

type APP struct {
	PORT        string `env:"APP_PORT" envDefault:"3000"`
	ENV         string `env:"GO_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	Provider    string `env:"VERIFICATION_PROVIDER" envDefault:"simulated"`
}

func (a APP) IsLocal() bool {
	return a.ENV == "local"
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Redis struct {
	URL       string `env:"REDIS_URL"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"lev:verification"`
}

type Kafka struct {
	Enabled          bool   `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_GROUP_ID" envDefault:"verification-service"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"verification.status.changed,credentials.issued,kyc.webhooks.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"kyc.webhooks"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (k Kafka) PublishTopicList() []string {
	return splitList(k.PublishTopics)
}

func (k Kafka) SubscriberTopicList() []string {
	return splitList(k.SubscriberTopics)
}

type Verification struct {
	ViewCompleteAfter    time.Duration `env:"VERIFICATION_VIEW_COMPLETE_AFTER" envDefault:"10s"`
	AutoCompleteAfter    time.Duration `env:"VERIFICATION_AUTO_COMPLETE_AFTER" envDefault:"15s"`
	ExternalUserPrefix   string        `env:"VERIFICATION_EXTERNAL_USER_PREFIX" envDefault:"lev_"`
	SimulatedReviewAfter time.Duration `env:"VERIFICATION_SIMULATED_REVIEW_AFTER" envDefault:"15s"`
	ResumeOnStart        bool          `env:"VERIFICATION_RESUME_ON_START" envDefault:"true"`
	DemoVerifyDelay      time.Duration `env:"VERIFICATION_DEMO_VERIFY_DELAY" envDefault:"1s"`
	DemoCheckDelay       time.Duration `env:"VERIFICATION_DEMO_CHECK_DELAY" envDefault:"500ms"`
}

type Sumsub struct {
	BaseURL       string        `env:"SUMSUB_BASE_URL" envDefault:"https://api.sumsub.com"`
	AppToken      string        `env:"SUMSUB_APP_TOKEN"`
	SecretKey     string        `env:"SUMSUB_SECRET_KEY"`
	WebhookSecret string        `env:"SUMSUB_WEBHOOK_SECRET"`
	LevelName     string        `env:"SUMSUB_LEVEL_NAME" envDefault:"basic-kyc-level"`
	Timeout       time.Duration `env:"SUMSUB_TIMEOUT" envDefault:"10s"`
}

type Solana struct {
	RPCURL     string `env:"SOLANA_RPC_URL"`
	PrivateKey string `env:"SOLANA_PRIVATE_KEY"`
	Network    string `env:"SOLANA_NETWORK" envDefault:"solana-devnet"`
}

// MinterEnabled reports whether real mint addresses can be requested.
func (s Solana) MinterEnabled() bool {
	return s.RPCURL != "" && s.PrivateKey != ""
}

type Credential struct {
	MintDelay   time.Duration `env:"CREDENTIAL_MINT_DELAY" envDefault:"2s"`
	ExternalURL string        `env:"CREDENTIAL_EXTERNAL_URL" envDefault:"https://lev-holdings.vercel.app"`
}

// Validate rejects combinations of settings the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.APP.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.DB.HOST == "" || c.DB.NAME == "" {
			errs = append(errs, errors.New("postgres store requires DB_HOST and DB_NAME"))
		}
	case StoreRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("redis store requires REDIS_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.APP.StoreDriver))
	}

	switch c.APP.Provider {
	case ProviderSimulated:
	case ProviderSumsub:
		if c.Sumsub.AppToken == "" || c.Sumsub.SecretKey == "" {
			errs = append(errs, errors.New("sumsub provider requires SUMSUB_APP_TOKEN and SUMSUB_SECRET_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown VERIFICATION_PROVIDER %q", c.APP.Provider))
	}

	if c.Verification.ExternalUserPrefix == "" {
		errs = append(errs, errors.New("VERIFICATION_EXTERNAL_USER_PREFIX must not be empty"))
	}
	if c.Kafka.Enabled && len(c.Kafka.BrokerList()) == 0 {
		errs = append(errs, errors.New("kafka enabled without KAFKA_BROKERS"))
	}

	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
