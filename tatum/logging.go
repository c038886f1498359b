package tatum

import (
	"context"
	"time"

	"github.com/go-kit/log"
	bot "go-currency-report-bot"
)

// loggingService decorates a tatum.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Rates(ctx context.Context, requests []bot.RateRequest) (results []bot.RateResult, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rates",
			"requests", len(requests),
			"results", len(results),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates(ctx, requests)
}
