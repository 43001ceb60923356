package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App          AppConfig
	ProductCheck ProductCheckConfig
}

// Load reads configuration from the environment. Every service reads the
// same variable names, so a single ROOT_PATH prefixes all of its routes.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"APP_ENV" default:"dev"`
	Port         string `envconfig:"PORT" default:"8000"`
	RootPath     string `envconfig:"ROOT_PATH" default:""`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, "prod")
}

// ProductCheckConfig gates the cart service's product-existence lookup.
// An empty URL leaves the check disabled.
type ProductCheckConfig struct {
	URL     string        `envconfig:"PRODUCT_SERVICE_URL" default:""`
	Timeout time.Duration `envconfig:"PRODUCT_CHECK_TIMEOUT" default:"5s"`
}

func (p ProductCheckConfig) Enabled() bool {
	return strings.TrimSpace(p.URL) != ""
}

// Validate aggregates every configuration problem instead of stopping at the
// first, so a misconfigured deployment reports all of them at once.
func (c *Config) Validate() error {
	var err error
	if _, convErr := strconv.Atoi(c.App.Port); convErr != nil {
		err = multierr.Append(err, fmt.Errorf("PORT must be numeric, got %q", c.App.Port))
	}
	if c.App.RootPath != "" {
		if !strings.HasPrefix(c.App.RootPath, "/") {
			err = multierr.Append(err, fmt.Errorf("ROOT_PATH must start with '/', got %q", c.App.RootPath))
		}
		if len(c.App.RootPath) > 1 && strings.HasSuffix(c.App.RootPath, "/") {
			err = multierr.Append(err, fmt.Errorf("ROOT_PATH must not end with '/', got %q", c.App.RootPath))
		}
	}
	if c.ProductCheck.Enabled() && c.ProductCheck.Timeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("PRODUCT_CHECK_TIMEOUT must be positive, got %s", c.ProductCheck.Timeout))
	}
	return err
}
