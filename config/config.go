// Package config loads the service configuration from the environment, with
// an optional .env file for local runs.
package config

import (
	"log"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	bot "go-currency-report-bot"
)

type Config struct {
	Tatum      Tatum
	HTTPServer HTTPServer
	Convert    Convert
	Targets    Targets
}

type Tatum struct {
	BaseURL  string        `env:"TATUM_BASE_URL" env-default:"https://api.tatum.io/v3"`
	APIKey   string        `env:"TATUM_API_KEY" env-required:"true"`
	CacheTTL time.Duration `env:"TATUM_CACHE_TTL" env-default:"1m"`
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Convert struct {
	// ParityFallback keeps the original behavior of pricing an unknown
	// source currency at 1 USD instead of failing the conversion.
	ParityFallback bool `env:"PARITY_FALLBACK" env-default:"true"`
}

type Targets struct {
	Fiats   string `env:"DEFAULT_FIATS" env-default:"USD,GBP,EUR,BHD,SEK"`
	Cryptos string `env:"DEFAULT_CRYPTOS" env-default:"BTC,ETH,SOL"`
}

func NewConfig() *Config {
	cfg := &Config{}

	_ = godotenv.Load(".env")

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatal("Error reading env: ", err)
	}

	return cfg
}

// DefaultFiats returns the configured default fiat target list.
func (c *Config) DefaultFiats() []bot.Currency {
	return splitCurrencies(c.Targets.Fiats)
}

// DefaultCryptos returns the configured default crypto target list.
func (c *Config) DefaultCryptos() []bot.Currency {
	return splitCurrencies(c.Targets.Cryptos)
}

func splitCurrencies(s string) []bot.Currency {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	currencies := make([]bot.Currency, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			currencies = append(currencies, bot.Currency(strings.ToUpper(p)))
		}
	}
	return currencies
}
