package bot

import "strings"

// Currency a currency code
type Currency string

// USD is the pivot currency for every crypto lookup and the parser default.
const USD Currency = "USD"

// Amount a monetary amount... which should be a float...
type Amount float64

// ParsedAmount is the structured form of a free-text amount, e.g. "18000usd".
type ParsedAmount struct {
	Amount   Amount
	Currency Currency
}

// RateRequest asks for the price of Symbol denominated in Pivot.
// BatchID is a caller-chosen correlation key, unique within a batch.
type RateRequest struct {
	BatchID string
	Pivot   Currency
	Symbol  string
}

// RateResult is one answer out of a batch. Value is a decimal string.
// A BatchID with no matching result is a lookup miss, not an error.
type RateResult struct {
	BatchID string
	Value   string
}

// Line associates a formatted report line with the currency code it is
// denominated in. Grouping and source promotion compare Code, never Text.
type Line struct {
	Code   Currency
	Text   string
	Crypto bool
}

// Banner prefixes every rendered report.
const Banner = "======"

// Report is the multi-currency result of a single conversion. Source holds
// the line matching the source currency when its rate was found; Fiat and
// Crypto hold the remaining lines in target-list order, source excluded.
// Reports are built fresh per request and never shared.
type Report struct {
	Source *Line
	Fiat   []Line
	Crypto []Line
}

// Lines flattens the report source-first in display order.
func (r *Report) Lines() []Line {
	lines := make([]Line, 0, 1+len(r.Fiat)+len(r.Crypto))
	if r.Source != nil {
		lines = append(lines, *r.Source)
	}
	lines = append(lines, r.Fiat...)
	lines = append(lines, r.Crypto...)
	return lines
}

// Message renders the report: source line, blank separator, remaining fiat
// lines, blank separator, crypto lines, all under the banner.
func (r *Report) Message() string {
	parts := make([]string, 0, 3+len(r.Fiat)+len(r.Crypto))
	if r.Source != nil {
		parts = append(parts, r.Source.Text)
	}
	parts = append(parts, "")
	for _, l := range r.Fiat {
		parts = append(parts, l.Text)
	}
	parts = append(parts, "")
	for _, l := range r.Crypto {
		parts = append(parts, l.Text)
	}
	return Banner + "\n" + strings.Join(parts, "\n")
}
