package convert

import (
	"context"
	"time"

	"github.com/go-kit/log"
	bot "go-currency-report-bot"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount bot.Amount, source bot.Currency, fiats, cryptos []bot.Currency) (report *bot.Report, err error) {
	defer func(begin time.Time) {
		lines := 0
		if report != nil {
			lines = len(report.Lines())
		}
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"source", source,
			"fiat_targets", len(fiats),
			"crypto_targets", len(cryptos),
			"lines", lines,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, source, fiats, cryptos)
}
