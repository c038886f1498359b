package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	bot "go-currency-report-bot"
)

func TestStore_TargetsDefaults(t *testing.T) {
	s := NewStore()

	fiats, cryptos := s.Targets("chat-1")

	assert.Equal(t, DefaultFiats, fiats)
	assert.Equal(t, DefaultCryptos, cryptos)
}

func TestStore_TargetsAreCopies(t *testing.T) {
	s := NewStore()

	fiats, _ := s.Targets("chat-1")
	fiats[0] = "XXX"

	again, _ := s.Targets("chat-1")
	assert.Equal(t, bot.Currency("USD"), again[0])
}

func TestStore_ToggleFiat(t *testing.T) {
	s := NewStore()

	// SEK is a default: first toggle removes, second re-adds at the end
	assert.False(t, s.ToggleFiat("chat-1", "SEK"))
	fiats, _ := s.Targets("chat-1")
	assert.Equal(t, []bot.Currency{"USD", "GBP", "EUR", "BHD"}, fiats)

	assert.True(t, s.ToggleFiat("chat-1", "SEK"))
	fiats, _ = s.Targets("chat-1")
	assert.Equal(t, []bot.Currency{"USD", "GBP", "EUR", "BHD", "SEK"}, fiats)
}

func TestStore_ToggleCryptoIsPerChat(t *testing.T) {
	s := NewStore()

	assert.True(t, s.ToggleCrypto("chat-1", "AVAX"))

	_, cryptos := s.Targets("chat-2")
	assert.Equal(t, DefaultCryptos, cryptos)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()

	s.ClearFiats("chat-1")
	s.ClearCryptos("chat-1")

	fiats, cryptos := s.Targets("chat-1")
	assert.Empty(t, fiats)
	assert.Empty(t, cryptos)
}

func TestStore_FiatPageClamped(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 0, s.FiatPage("chat-1"))
	assert.Equal(t, 0, s.SetFiatPage("chat-1", -3))
	assert.Equal(t, FiatPageCount()-1, s.SetFiatPage("chat-1", 99))
	assert.Equal(t, FiatPageCount()-1, s.FiatPage("chat-1"))
}

func TestFiatPageSlice(t *testing.T) {
	total := 0
	for page := 0; page < FiatPageCount(); page++ {
		slice := FiatPageSlice(page)
		assert.NotEmpty(t, slice)
		assert.LessOrEqual(t, len(slice), FiatsPerPage)
		total += len(slice)
	}
	assert.Equal(t, len(AvailableFiats), total)
	assert.Nil(t, FiatPageSlice(FiatPageCount()))
	assert.Nil(t, FiatPageSlice(-1))
}
