// Package convert composes parsed amounts and batched rate lookups into
// multi-currency reports. Fiat targets are priced by a direct pair against
// the source currency; crypto targets are priced in USD and reached through
// the source's USD value.
package convert

import (
	"context"
	"fmt"
	"strconv"

	bot "go-currency-report-bot"
	"go-currency-report-bot/tatum"
)

// sourceBatchID tags the extra request that prices a non-USD source in USD.
const sourceBatchID = "SOURCE_USD"

// Service interface for converting an amount into a multi-currency report
type Service interface {
	Convert(ctx context.Context, amount bot.Amount, source bot.Currency, fiats, cryptos []bot.Currency) (*bot.Report, error)
}

// service conversion engine
type service struct {
	// rates tatumService to look up exchange rates in one batch per call
	rates tatum.Service

	// parityFallback treats a missing SOURCE_USD rate as 1.0 instead of a
	// failure
	parityFallback bool
}

// Option configures a Service
type Option func(s *service)

// WithParityFallback controls what happens when the lookup for the source
// currency's own USD rate comes back empty: fall back to parity (the
// default), or fail the conversion.
func WithParityFallback(enabled bool) Option {
	return func(s *service) {
		s.parityFallback = enabled
	}
}

// NewService constructs a valid Service
func NewService(rates tatum.Service, opts ...Option) Service {
	s := &service{
		rates:          rates,
		parityFallback: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert builds one batch of rate requests, submits it in a single external
// call, and assembles the report. Targets with no usable rate are dropped
// silently; a failed or malformed lookup aborts the whole conversion. The
// result depends only on the arguments and the returned rates.
func (s *service) Convert(ctx context.Context, amount bot.Amount, source bot.Currency, fiats, cryptos []bot.Currency) (*bot.Report, error) {
	requests := buildRequests(source, fiats, cryptos)

	results, err := s.rates.Rates(ctx, requests)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bot.ErrRateLookup, err)
	}

	values := make(map[string]string, len(results))
	for _, r := range results {
		values[r.BatchID] = r.Value
	}

	sourceInUSD := 1.0
	if source != bot.USD {
		v, ok := rate(values, sourceBatchID)
		switch {
		case ok:
			sourceInUSD = v
		case !s.parityFallback:
			return nil, fmt.Errorf("%w: no usd rate for source %v", bot.ErrRateLookup, source)
		}
	}

	var fiatLines, cryptoLines []bot.Line
	for _, target := range fiats {
		v, ok := rate(values, string(target))
		if !ok {
			continue
		}
		fiatLines = append(fiatLines, bot.Line{
			Code: target,
			Text: fmt.Sprintf("%v %v", formatFiat(float64(amount)*v), target),
		})
	}
	for _, crypto := range cryptos {
		priceInUSD, ok := rate(values, string(crypto))
		if !ok || priceInUSD == 0 {
			continue
		}
		cryptoLines = append(cryptoLines, bot.Line{
			Code:   crypto,
			Text:   fmt.Sprintf("%v %v", formatCrypto(float64(amount)*sourceInUSD/priceInUSD), crypto),
			Crypto: true,
		})
	}

	return assemble(source, fiatLines, cryptoLines), nil
}

// buildRequests produces |fiats| + |cryptos| requests, plus one for the
// source's USD value when the source is not USD.
func buildRequests(source bot.Currency, fiats, cryptos []bot.Currency) []bot.RateRequest {
	requests := make([]bot.RateRequest, 0, len(fiats)+len(cryptos)+1)

	for _, target := range fiats {
		// how many units of target per unit of source
		requests = append(requests, bot.RateRequest{
			BatchID: string(target),
			Pivot:   target,
			Symbol:  string(source),
		})
	}

	for _, crypto := range cryptos {
		// USD price of one unit of crypto
		requests = append(requests, bot.RateRequest{
			BatchID: string(crypto),
			Pivot:   bot.USD,
			Symbol:  string(crypto),
		})
	}

	if source != bot.USD {
		requests = append(requests, bot.RateRequest{
			BatchID: sourceBatchID,
			Pivot:   bot.USD,
			Symbol:  string(source),
		})
	}

	return requests
}

// rate resolves a batch result to a float. An unparseable value counts as a
// lookup miss for that target.
func rate(values map[string]string, batchID string) (float64, bool) {
	v, ok := values[batchID]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// assemble promotes the source currency's line to the front and groups the
// remainder. Lines are matched by Code, so a currency code that happens to be
// a suffix of another never collides.
func assemble(source bot.Currency, fiatLines, cryptoLines []bot.Line) *bot.Report {
	report := &bot.Report{}

	for _, line := range fiatLines {
		line := line
		if line.Code == source {
			if report.Source == nil {
				report.Source = &line
			}
			continue
		}
		report.Fiat = append(report.Fiat, line)
	}

	for _, line := range cryptoLines {
		line := line
		if line.Code == source {
			if report.Source == nil {
				report.Source = &line
			}
			continue
		}
		report.Crypto = append(report.Crypto, line)
	}

	return report
}
