package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/odyssey-erp/stoplabels/internal/labels"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"30s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	// OpsAddr serves /metrics and /healthz. Empty disables the listener.
	OpsAddr string `envconfig:"OPS_ADDR" default:":9090"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60"`

	LabelMaxUpload  int64   `envconfig:"LABEL_MAX_UPLOAD" default:"10485760"`
	LabelMarginPt   float64 `envconfig:"LABEL_MARGIN_PT" default:"18"`
	LabelDateLayout string  `envconfig:"LABEL_DATE_LAYOUT" default:"02/01/2006"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if c.AppAddr == "" {
		return errors.New("app addr must be provided")
	}
	if c.LabelMaxUpload <= 0 {
		return fmt.Errorf("label max upload must be positive, got %d", c.LabelMaxUpload)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate limit must not be negative, got %d", c.RateLimitPerMinute)
	}
	if c.LabelDateLayout == "" {
		return errors.New("label date layout must be provided")
	}
	return c.LabelLayout().Validate()
}

// LabelLayout returns the page geometry with the configured margin applied.
func (c *Config) LabelLayout() labels.Layout {
	layout := labels.DefaultLayout()
	if c != nil {
		layout.Margin = c.LabelMarginPt
	}
	return layout
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
