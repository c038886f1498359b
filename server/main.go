package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"

	"go-currency-report-bot/config"
	"go-currency-report-bot/convert"
	"go-currency-report-bot/http"
	"go-currency-report-bot/settings"
	"go-currency-report-bot/tatum"

	nhttp "net/http"
)

func main() {
	cfg := config.NewConfig()

	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	settings.DefaultFiats = cfg.DefaultFiats()
	settings.DefaultCryptos = cfg.DefaultCryptos()

	rateService := tatum.NewService(cfg.Tatum.BaseURL, cfg.Tatum.APIKey)
	rateService = tatum.NewLoggingService(log.With(logger, "component", "tatum_rest"), rateService)
	rateService = tatum.NewCachingService(cfg.Tatum.CacheTTL, rateService)
	rateService = tatum.NewLoggingService(log.With(logger, "component", "tatum_cache"), rateService)

	convertService := convert.NewService(rateService, convert.WithParityFallback(cfg.Convert.ParityFallback))
	convertService = convert.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	store := settings.NewStore()

	handler := http.NewServer(convertService, store, log.With(logger, "component", "http"))

	server := &nhttp.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		logger.Log("msg", "listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			logger.Log("msg", "http server error", "err", err)
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	logger.Log("msg", "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log("msg", "failed to stop server", "err", err)
	}
}
