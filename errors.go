package bot

import "errors"

var (
	// ErrNoAmount reports input with no recognizable numeric token. It is a
	// user error: callers should re-prompt, never retry.
	ErrNoAmount = errors.New("no amount found in input")

	// ErrRateLookup reports a failed or malformed exchange-rate lookup. The
	// whole conversion is aborted; no partial report is ever produced.
	ErrRateLookup = errors.New("rate lookup failed")
)
