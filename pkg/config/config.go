package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Environment variable names, shared with tests.
const (
	EnvAppEnv          = "LUSTER_APP_ENV"
	EnvAppPort         = "LUSTER_APP_PORT"
	EnvLogLevel        = "LUSTER_LOG_LEVEL"
	EnvSiteBaseURL     = "LUSTER_SITE_BASE_URL"
	EnvStripeSecretKey = "LUSTER_STRIPE_SECRET_KEY"
	EnvStripeEnv       = "LUSTER_STRIPE_ENV"
	EnvNewsletterFile  = "LUSTER_NEWSLETTER_FILE"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

type Config struct {
	App        AppConfig
	Site       SiteConfig
	Stripe     StripeConfig
	Newsletter NewsletterConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LUSTER_APP_ENV" default:"dev"`
	Port         string `envconfig:"LUSTER_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"LUSTER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LUSTER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SiteConfig locates the storefront that Stripe redirects back to.
type SiteConfig struct {
	BaseURL string `envconfig:"LUSTER_SITE_BASE_URL" required:"true"`
}

// NormalizedBaseURL strips trailing slashes so redirect targets join cleanly.
func (s SiteConfig) NormalizedBaseURL() string {
	return strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")
}

type StripeConfig struct {
	SecretKey string `envconfig:"LUSTER_STRIPE_SECRET_KEY" required:"true"`
	Env       string `envconfig:"LUSTER_STRIPE_ENV" default:"test"`
}

func (s StripeConfig) Environment() string {
	return s.Env
}

type NewsletterConfig struct {
	FilePath string `envconfig:"LUSTER_NEWSLETTER_FILE" default:"newsletter.jsonl"`
}
