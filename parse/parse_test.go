package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	bot "go-currency-report-bot"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *bot.ParsedAmount
	}{
		{
			"trailing lowercase code",
			"18000usd",
			&bot.ParsedAmount{Amount: 18000, Currency: "USD"},
		},
		{
			"spaced uppercase code",
			"2 BTC",
			&bot.ParsedAmount{Amount: 2, Currency: "BTC"},
		},
		{
			"euro symbol",
			"€50",
			&bot.ParsedAmount{Amount: 50, Currency: "EUR"},
		},
		{
			"pound symbol",
			"£12.50",
			&bot.ParsedAmount{Amount: 12.5, Currency: "GBP"},
		},
		{
			"dollar symbol defaults to usd",
			"$100",
			&bot.ParsedAmount{Amount: 100, Currency: "USD"},
		},
		{
			"command prefix stripped",
			"/p 100",
			&bot.ParsedAmount{Amount: 100, Currency: "USD"},
		},
		{
			"command prefix case-insensitive",
			"/P 100 gbp",
			&bot.ParsedAmount{Amount: 100, Currency: "GBP"},
		},
		{
			"bare number defaults to usd",
			"250",
			&bot.ParsedAmount{Amount: 250, Currency: "USD"},
		},
		{
			"thousands separators stripped",
			"1,250,000.75 sek",
			&bot.ParsedAmount{Amount: 1250000.75, Currency: "SEK"},
		},
		{
			"euro symbol wins over trailing code",
			"€50gbp",
			&bot.ParsedAmount{Amount: 50, Currency: "EUR"},
		},
		{
			"trailing code wins over dollar symbol",
			"$50eur",
			&bot.ParsedAmount{Amount: 50, Currency: "EUR"},
		},
		{
			"surrounding whitespace",
			"  18000usd  ",
			&bot.ParsedAmount{Amount: 18000, Currency: "USD"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_NoAmount(t *testing.T) {
	for _, text := range []string{"", "hello", "/p", "usd", "€", "...,,,"} {
		t.Run(text, func(t *testing.T) {
			got, err := Parse(text)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, bot.ErrNoAmount)
		})
	}
}

func TestHasCommandPrefix(t *testing.T) {
	assert.True(t, HasCommandPrefix("/p 100"))
	assert.True(t, HasCommandPrefix("/P 18000usd"))
	assert.True(t, HasCommandPrefix("  /p 5 btc"))
	assert.False(t, HasCommandPrefix("100 usd"))
	assert.False(t, HasCommandPrefix("price /p 100"))
}
