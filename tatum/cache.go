package tatum

import (
	"context"
	"fmt"
	"sync"
	"time"

	bot "go-currency-report-bot"
)

// cachingService decorates a tatum.Service with a cache of rate values keyed
// by (pivot, symbol) pair. The cachingService is concurrency safe; entries
// older than ttl are refetched on the next batch that needs them.
type cachingService struct {
	// next the service being decorated with a cache
	next Service

	// entries the cached values by pair key
	entries map[string]entry

	// ttl how long a cached value stays fresh
	ttl time.Duration

	// lock synchronizes access to entries to make it concurrency safe
	lock sync.RWMutex
}

type entry struct {
	value string
	at    time.Time
}

// NewCachingService returns a new caching Service
func NewCachingService(ttl time.Duration, s Service) Service {
	return &cachingService{
		next:    s,
		entries: map[string]entry{},
		ttl:     ttl,
		lock:    sync.RWMutex{},
	}
}

// Rates answers fresh pairs from the cache and forwards only the misses
// upstream, still as a single batch. An upstream error fails the whole batch
// even when some pairs were cached: partial rate sets would produce partial
// reports.
func (s *cachingService) Rates(ctx context.Context, requests []bot.RateRequest) ([]bot.RateResult, error) {
	now := time.Now()

	results := make([]bot.RateResult, 0, len(requests))
	var misses []bot.RateRequest

	s.lock.RLock()
	for _, r := range requests {
		if e, ok := s.entries[pairKey(r)]; ok && now.Sub(e.at) < s.ttl {
			results = append(results, bot.RateResult{BatchID: r.BatchID, Value: e.value})
		} else {
			misses = append(misses, r)
		}
	}
	s.lock.RUnlock()

	if len(misses) == 0 {
		return results, nil
	}

	fetched, err := s.next.Rates(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("refreshing cache: %w", err)
	}

	byID := make(map[string]bot.RateRequest, len(misses))
	for _, r := range misses {
		byID[r.BatchID] = r
	}

	s.lock.Lock()
	for _, f := range fetched {
		if r, ok := byID[f.BatchID]; ok {
			s.entries[pairKey(r)] = entry{value: f.Value, at: now}
		}
	}
	s.lock.Unlock()

	return append(results, fetched...), nil
}

func pairKey(r bot.RateRequest) string {
	return string(r.Pivot) + "/" + r.Symbol
}
