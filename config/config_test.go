package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	bot "go-currency-report-bot"
)

func TestSplitCurrencies(t *testing.T) {
	assert.Equal(t, []bot.Currency{"USD", "GBP", "EUR"}, splitCurrencies("USD,GBP,EUR"))
	assert.Equal(t, []bot.Currency{"BTC", "ETH"}, splitCurrencies(" btc , eth "))
	assert.Nil(t, splitCurrencies(""))
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv("TATUM_API_KEY", "secret-key")

	cfg := NewConfig()

	assert.Equal(t, "secret-key", cfg.Tatum.APIKey)
	assert.Equal(t, "https://api.tatum.io/v3", cfg.Tatum.BaseURL)
	assert.Equal(t, "8080", cfg.HTTPServer.Port)
	assert.True(t, cfg.Convert.ParityFallback)
	assert.Equal(t, []bot.Currency{"USD", "GBP", "EUR", "BHD", "SEK"}, cfg.DefaultFiats())
	assert.Equal(t, []bot.Currency{"BTC", "ETH", "SOL"}, cfg.DefaultCryptos())
}

func TestConfigBaseURLOverride(t *testing.T) {
	t.Setenv("TATUM_API_KEY", "secret-key")
	t.Setenv("TATUM_BASE_URL", "http://localhost:9999/v3")

	cfg := NewConfig()

	assert.Equal(t, "http://localhost:9999/v3", cfg.Tatum.BaseURL)
}
