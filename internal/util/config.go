package util

import (
	"encoding/json"
	"errors"
	"findash/internal/domain"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envKey        = "FINDASH_ENV"
	configPathKey = "FINDASH_CONFIG"
)

type Secrets struct {
	FinnhubApiKey string         `json:"finnhub"`
	Binance       BinanceSecrets `json:"binance"`
}

type BinanceSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
}

type Config struct {
	HoldingsPath       string               `json:"holdingsPath"`
	Period             domain.Period        `json:"period"`
	TargetCurrency     string               `json:"targetCurrency"`
	TopCoins           int                  `json:"topCoins"`
	IpoWindowDays      int                  `json:"ipoWindowDays"`
	VolatilityIndex    string               `json:"volatilityIndex"`
	BroadIndices       []domain.IndexTicker `json:"broadIndices"`
	RefreshSchedule    string               `json:"refreshSchedule"`
	Port               int                  `json:"port"`
	HttpTimeoutSeconds int                  `json:"httpTimeoutSeconds"`
	Secrets            Secrets              `json:"secrets"`
}

func DefaultConfig() Config {
	return Config{
		HoldingsPath:    "holdings.json",
		Period:          domain.Period1y,
		TargetCurrency:  "SEK",
		TopCoins:        8,
		IpoWindowDays:   2,
		VolatilityIndex: "^VIX",
		BroadIndices: []domain.IndexTicker{
			{Label: "OMXS30", Symbol: "^OMX"},
			{Label: "S&P500", Symbol: "^GSPC"},
		},
		RefreshSchedule:    "@every 15m",
		Port:               3009,
		HttpTimeoutSeconds: 30,
	}
}

func (c Config) HttpTimeout() time.Duration {
	return time.Duration(c.HttpTimeoutSeconds) * time.Second
}

func (c Config) Validate() error {
	if c.HoldingsPath == "" {
		return domain.NewConfigError("config", "holdingsPath is required")
	}
	if err := c.Period.Validate(); err != nil {
		return &domain.ConfigError{Source: "config", Err: err}
	}
	if len(c.TargetCurrency) != 3 {
		return domain.NewConfigError("config", "targetCurrency %q is not a currency code", c.TargetCurrency)
	}
	if c.TopCoins <= 0 {
		return domain.NewConfigError("config", "topCoins must be positive, got %d", c.TopCoins)
	}
	if c.IpoWindowDays < 0 {
		return domain.NewConfigError("config", "ipoWindowDays must not be negative, got %d", c.IpoWindowDays)
	}
	if c.VolatilityIndex == "" {
		return domain.NewConfigError("config", "volatilityIndex is required")
	}
	for _, idx := range c.BroadIndices {
		if idx.Symbol == "" {
			return domain.NewConfigError("config", "broad index %q has no symbol", idx.Label)
		}
	}
	return nil
}

func configFile() string {
	if path := os.Getenv(configPathKey); path != "" {
		return path
	}
	switch strings.ToLower(os.Getenv(envKey)) {
	case "dev":
		return "config-dev.json"
	case "test":
		return "config-test.json"
	default:
		return "config.json"
	}
}

// LoadConfig reads the config file for the current environment on top of
// the defaults. A missing file is not an error. Provider credentials from
// .env or the environment win over the file.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.ReadFile(configFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, &domain.ConfigError{Source: configFile(), Err: err}
	}
	if err == nil {
		if err := json.Unmarshal(f, &cfg); err != nil {
			return nil, &domain.ConfigError{Source: configFile(), Err: fmt.Errorf("failed to parse config: %w", err)}
		}
	}

	// .env is optional, real env vars are never overwritten by it
	_ = godotenv.Load()
	applySecretsFromEnv(&cfg.Secrets)

	cfg.TargetCurrency = strings.ToUpper(cfg.TargetCurrency)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applySecretsFromEnv(s *Secrets) {
	if v := os.Getenv("FH_KEY"); v != "" {
		s.FinnhubApiKey = v
	}
	if v := os.Getenv("BIN_KEY"); v != "" {
		s.Binance.ApiKey = v
	}
	if v := os.Getenv("BIN_SECRET"); v != "" {
		s.Binance.ApiSecret = v
	}
}
