// Package settings holds each chat's selected conversion targets and the
// fiat selection page cursor. The conversion engine never reaches in here; it
// receives plain snapshots taken with Targets.
package settings

import (
	"sync"

	bot "go-currency-report-bot"
)

// Store keeps per-chat selections in memory. The zero value is not usable,
// use NewStore. Store is concurrency safe.
type Store struct {
	// lock synchronizes access to sessions
	lock sync.RWMutex

	// sessions by chat id
	sessions map[string]*session
}

type session struct {
	fiats    []bot.Currency
	cryptos  []bot.Currency
	fiatPage int
}

// NewStore constructs a valid Store
func NewStore() *Store {
	return &Store{
		sessions: map[string]*session{},
	}
}

// Targets returns copies of the chat's selected fiat and crypto lists, in
// insertion order, falling back to the defaults for chats that never
// customized anything.
func (s *Store) Targets(chatID string) (fiats, cryptos []bot.Currency) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return append([]bot.Currency(nil), DefaultFiats...), append([]bot.Currency(nil), DefaultCryptos...)
	}
	return append([]bot.Currency(nil), sess.fiats...), append([]bot.Currency(nil), sess.cryptos...)
}

// ToggleFiat adds or removes a fiat target and reports whether it is selected
// afterwards.
func (s *Store) ToggleFiat(chatID string, code bot.Currency) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	sess := s.session(chatID)
	sess.fiats, _ = toggle(sess.fiats, code)
	return contains(sess.fiats, code)
}

// ToggleCrypto adds or removes a crypto target and reports whether it is
// selected afterwards.
func (s *Store) ToggleCrypto(chatID string, code bot.Currency) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	sess := s.session(chatID)
	sess.cryptos, _ = toggle(sess.cryptos, code)
	return contains(sess.cryptos, code)
}

// ClearFiats empties the chat's fiat list.
func (s *Store) ClearFiats(chatID string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.session(chatID).fiats = nil
}

// ClearCryptos empties the chat's crypto list.
func (s *Store) ClearCryptos(chatID string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.session(chatID).cryptos = nil
}

// FiatPage returns the chat's fiat selection page cursor.
func (s *Store) FiatPage(chatID string) int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if sess, ok := s.sessions[chatID]; ok {
		return sess.fiatPage
	}
	return 0
}

// SetFiatPage moves the chat's fiat selection page cursor, clamped to the
// catalogue's page range.
func (s *Store) SetFiatPage(chatID string, page int) int {
	if page < 0 {
		page = 0
	}
	if max := FiatPageCount() - 1; page > max {
		page = max
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.session(chatID).fiatPage = page
	return page
}

// session returns the chat's session, seeding it from the defaults on first
// touch. Callers must hold the write lock.
func (s *Store) session(chatID string) *session {
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &session{
			fiats:   append([]bot.Currency(nil), DefaultFiats...),
			cryptos: append([]bot.Currency(nil), DefaultCryptos...),
		}
		s.sessions[chatID] = sess
	}
	return sess
}

func toggle(list []bot.Currency, code bot.Currency) ([]bot.Currency, bool) {
	for i, c := range list {
		if c == code {
			return append(list[:i], list[i+1:]...), false
		}
	}
	return append(list, code), true
}

func contains(list []bot.Currency, code bot.Currency) bool {
	for _, c := range list {
		if c == code {
			return true
		}
	}
	return false
}
