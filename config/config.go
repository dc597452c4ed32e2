package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	PriceSortRaw       = "raw"
	PriceSortThousands = "thousands"
)

type Config struct {
	CatalogAPIURL      string        `envconfig:"CATALOG_API_URL"      default:"http://localhost:3000"`
	Port               string        `envconfig:"STOREFRONT_PORT"      default:":8080"`
	LogLevel           string        `envconfig:"LOG_LEVEL"            default:"info"`
	HTTPClientTimeout  time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT"  default:"5s"`
	SortLocale         string        `envconfig:"SORT_LOCALE"          default:"es"`
	PriceSortParsing   string        `envconfig:"PRICE_SORT_PARSING"   default:"raw"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	TUILogFile         string        `envconfig:"TUI_LOG_FILE"         default:"storefront-tui.log"`
}

// Load reads an optional .env file and then the process environment.
func Load(logger logrus.FieldLogger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig is Load for entrypoints: a bad configuration is fatal.
func LoadConfig(logger *logrus.Logger) *Config {
	cfg, err := Load(logger)
	if err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}
	logger.Infof("Configuration loaded: Port=%s, CatalogAPI=%s, LogLevel=%s", cfg.Port, cfg.CatalogAPIURL, cfg.LogLevel)
	return cfg
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.CatalogAPIURL) == "" {
		return fmt.Errorf("CATALOG_API_URL must not be empty")
	}
	switch c.PriceSortParsing {
	case PriceSortRaw, PriceSortThousands:
	default:
		return fmt.Errorf("PRICE_SORT_PARSING must be %q or %q, got %q", PriceSortRaw, PriceSortThousands, c.PriceSortParsing)
	}
	if c.HTTPClientTimeout < 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT must not be negative")
	}
	return nil
}

// NewLogger builds the process logger the way every entrypoint wants it.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logLevel, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}
