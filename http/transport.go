// Package http is the request boundary: it maps chat messages posted by the
// transport layer onto the parse/convert pipeline and exposes the per-chat
// settings operations. Every pipeline failure is collapsed into one
// user-visible error message; no partial report is ever sent.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bot "go-currency-report-bot"
	"go-currency-report-bot/convert"
	"go-currency-report-bot/parse"
	"go-currency-report-bot/settings"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Convert  convert.Service
	Settings *settings.Store
	Logger   log.Logger
	router   chi.Router
}

func NewServer(c convert.Service, store *settings.Store, logger log.Logger) *Server {
	server := &Server{
		Convert:  c,
		Settings: store,
		Logger:   logger,
		router:   chi.NewRouter(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Post("/api/convert", s.convert())
	s.router.Get("/api/currencies/fiat", s.fiatCatalogue())

	s.router.Route("/api/settings/{chatID}", func(r chi.Router) {
		r.Get("/", s.getSettings())
		r.Post("/fiat", s.toggleFiat())
		r.Delete("/fiat", s.clearFiats())
		r.Put("/fiat/page", s.setFiatPage())
		r.Post("/crypto", s.toggleCrypto())
		r.Delete("/crypto", s.clearCryptos())
	})
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// convert produces the HTTP handler for conversion requests
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by the chat transport
	type request struct {
		ChatID string `json:"chatId"`
		Text   string `json:"text"`
		Group  bool   `json:"group"`
	}

	type line struct {
		Code   bot.Currency `json:"code"`
		Text   string       `json:"text"`
		Crypto bool         `json:"crypto"`
	}

	// response for marshalling JSON responses to return to the transport
	type response struct {
		Message string `json:"message"`
		Lines   []line `json:"lines"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.error(rw, http.StatusBadRequest, "invalid json")
			return
		}

		// group chats only convert on an explicit command
		if req.Group && !parse.HasCommandPrefix(req.Text) {
			conversions.WithLabelValues("ignored").Inc()
			rw.WriteHeader(http.StatusNoContent)
			return
		}

		parsed, err := parse.Parse(req.Text)
		if err != nil {
			conversions.WithLabelValues("parse_error").Inc()
			s.error(rw, http.StatusBadRequest, "please provide an amount with currency, e.g. 18000usd")
			return
		}

		fiats, cryptos := s.Settings.Targets(req.ChatID)

		report, err := s.Convert.Convert(r.Context(), parsed.Amount, parsed.Currency, fiats, cryptos)
		if err != nil {
			conversions.WithLabelValues("rate_error").Inc()
			s.Logger.Log("msg", "conversion failed", "chat", req.ChatID, "err", err)
			if errors.Is(err, bot.ErrRateLookup) {
				s.error(rw, http.StatusBadGateway, "failed to fetch exchange rates, please try again later")
				return
			}
			s.error(rw, http.StatusInternalServerError, "conversion failed")
			return
		}

		conversions.WithLabelValues("ok").Inc()

		lines := make([]line, 0, 1+len(report.Fiat)+len(report.Crypto))
		for _, l := range report.Lines() {
			lines = append(lines, line{Code: l.Code, Text: l.Text, Crypto: l.Crypto})
		}

		s.respond(rw, http.StatusOK, response{
			Message: report.Message(),
			Lines:   lines,
		})
	}
}

// getSettings produces the HTTP handler returning a chat's current selections
func (s *Server) getSettings() http.HandlerFunc {
	type response struct {
		Fiats     []bot.Currency `json:"fiats"`
		Cryptos   []bot.Currency `json:"cryptos"`
		FiatPage  int            `json:"fiatPage"`
		FiatPages int            `json:"fiatPages"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		chatID := chi.URLParam(r, "chatID")

		fiats, cryptos := s.Settings.Targets(chatID)

		s.respond(rw, http.StatusOK, response{
			Fiats:     fiats,
			Cryptos:   cryptos,
			FiatPage:  s.Settings.FiatPage(chatID),
			FiatPages: settings.FiatPageCount(),
		})
	}
}

// fiatCatalogue produces the HTTP handler serving a page of selectable fiats
func (s *Server) fiatCatalogue() http.HandlerFunc {
	type response struct {
		Page       int            `json:"page"`
		Pages      int            `json:"pages"`
		Currencies []bot.Currency `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		page := pageParam(r)
		currencies := settings.FiatPageSlice(page)
		if currencies == nil {
			s.error(rw, http.StatusNotFound, "no such page")
			return
		}

		s.respond(rw, http.StatusOK, response{
			Page:       page,
			Pages:      settings.FiatPageCount(),
			Currencies: currencies,
		})
	}
}

func (s *Server) toggleFiat() http.HandlerFunc {
	return s.toggle(settings.AvailableFiats, s.Settings.ToggleFiat)
}

func (s *Server) toggleCrypto() http.HandlerFunc {
	return s.toggle(settings.AvailableCryptos, s.Settings.ToggleCrypto)
}

// toggle produces a handler flipping one code in a chat's selection list
func (s *Server) toggle(available []bot.Currency, flip func(string, bot.Currency) bool) http.HandlerFunc {
	type request struct {
		Code bot.Currency `json:"code"`
	}

	type response struct {
		Code     bot.Currency `json:"code"`
		Selected bool         `json:"selected"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.error(rw, http.StatusBadRequest, "invalid json")
			return
		}

		known := false
		for _, c := range available {
			if c == req.Code {
				known = true
				break
			}
		}
		if !known {
			s.error(rw, http.StatusBadRequest, "unknown currency code")
			return
		}

		chatID := chi.URLParam(r, "chatID")

		s.respond(rw, http.StatusOK, response{
			Code:     req.Code,
			Selected: flip(chatID, req.Code),
		})
	}
}

func (s *Server) clearFiats() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		s.Settings.ClearFiats(chi.URLParam(r, "chatID"))
		rw.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) clearCryptos() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		s.Settings.ClearCryptos(chi.URLParam(r, "chatID"))
		rw.WriteHeader(http.StatusNoContent)
	}
}

// setFiatPage produces the HTTP handler moving a chat's fiat page cursor
func (s *Server) setFiatPage() http.HandlerFunc {
	type request struct {
		Page int `json:"page"`
	}

	type response struct {
		Page  int `json:"page"`
		Pages int `json:"pages"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.error(rw, http.StatusBadRequest, "invalid json")
			return
		}

		chatID := chi.URLParam(r, "chatID")

		s.respond(rw, http.StatusOK, response{
			Page:  s.Settings.SetFiatPage(chatID, req.Page),
			Pages: settings.FiatPageCount(),
		})
	}
}

func (s *Server) respond(rw http.ResponseWriter, code int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		s.Logger.Log("msg", "failed json encoding", "err", err)
	}
}

func (s *Server) error(rw http.ResponseWriter, code int, message string) {
	s.respond(rw, code, map[string]string{"error": message})
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 0
	}
	return page
}
