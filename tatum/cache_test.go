package tatum

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	bot "go-currency-report-bot"
)

type mock struct {
	count int32
	err   error
}

func (m *mock) Rates(_ context.Context, requests []bot.RateRequest) ([]bot.RateResult, error) {
	atomic.AddInt32(&m.count, 1)
	if m.err != nil {
		return nil, m.err
	}
	results := make([]bot.RateResult, 0, len(requests))
	for _, r := range requests {
		results = append(results, bot.RateResult{BatchID: r.BatchID, Value: "1.5"})
	}
	return results, nil
}

func TestCachingService_Rates(t *testing.T) {
	ctx := context.Background()

	var underlyingService mock
	s := NewCachingService(1*time.Minute, &underlyingService)

	batch := []bot.RateRequest{
		{BatchID: "GBP", Pivot: "GBP", Symbol: "USD"},
		{BatchID: "BTC", Pivot: "USD", Symbol: "BTC"},
	}

	first, err := s.Rates(ctx, batch)
	assert.Nil(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, int32(1), underlyingService.count)

	second, err := s.Rates(ctx, batch)
	assert.Nil(t, err)
	assert.Len(t, second, 2)
	assert.Equal(t, int32(1), underlyingService.count)
}

func TestCachingService_RatesOnlyMissesGoUpstream(t *testing.T) {
	ctx := context.Background()

	var underlyingService mock
	s := NewCachingService(1*time.Minute, &underlyingService)

	_, err := s.Rates(ctx, []bot.RateRequest{{BatchID: "GBP", Pivot: "GBP", Symbol: "USD"}})
	assert.Nil(t, err)

	// GBP/USD cached, USD/BTC is a new pair
	results, err := s.Rates(ctx, []bot.RateRequest{
		{BatchID: "GBP", Pivot: "GBP", Symbol: "USD"},
		{BatchID: "BTC", Pivot: "USD", Symbol: "BTC"},
	})
	assert.Nil(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, int32(2), underlyingService.count)
}

func TestCachingService_RatesExpiry(t *testing.T) {
	ctx := context.Background()

	var underlyingService mock
	s := NewCachingService(1*time.Nanosecond, &underlyingService)

	batch := []bot.RateRequest{{BatchID: "GBP", Pivot: "GBP", Symbol: "USD"}}

	_, _ = s.Rates(ctx, batch)
	time.Sleep(1 * time.Millisecond)
	_, _ = s.Rates(ctx, batch)

	assert.Equal(t, int32(2), underlyingService.count)
}

func TestCachingService_RatesUpstreamError(t *testing.T) {
	ctx := context.Background()

	underlyingService := mock{err: errors.New("boom")}
	s := NewCachingService(1*time.Minute, &underlyingService)

	_, err := s.Rates(ctx, []bot.RateRequest{{BatchID: "GBP", Pivot: "GBP", Symbol: "USD"}})
	assert.NotNil(t, err)
}
