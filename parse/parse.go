// Package parse turns free-text amounts like "18000usd", "€50" or "/p 100"
// into a structured amount and currency code.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	bot "go-currency-report-bot"
)

// CommandPrefix gates conversion requests in group chats.
const CommandPrefix = "/p"

var (
	prefixPattern = regexp.MustCompile(`(?i)^/p\s*`)

	// optional currency symbol, numeric literal, optional trailing 3-letter code
	amountPattern = regexp.MustCompile(`([$€£])?([0-9][0-9,]*(?:\.[0-9]+)?)\s*([A-Za-z]{3})?`)
)

// HasCommandPrefix reports whether text starts with the command prefix,
// case-insensitively. Group-chat messages without it are not conversion
// requests and must be ignored by callers.
func HasCommandPrefix(text string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), CommandPrefix)
}

// Parse extracts an amount and currency code from text. The currency is
// resolved by precedence: explicit € or £ symbol, then a trailing 3-letter
// code, then USD. Commas are stripped as thousands separators. Returns
// bot.ErrNoAmount when the input holds no numeric token.
func Parse(text string) (*bot.ParsedAmount, error) {
	clean := strings.TrimSpace(prefixPattern.ReplaceAllString(strings.TrimSpace(text), ""))

	match := amountPattern.FindStringSubmatch(clean)
	if match == nil {
		return nil, bot.ErrNoAmount
	}

	symbol, num, code := match[1], match[2], match[3]

	amount, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return nil, bot.ErrNoAmount
	}

	currency := bot.USD
	if symbol == "€" {
		currency = "EUR"
	} else if symbol == "£" {
		currency = "GBP"
	} else if code != "" {
		currency = bot.Currency(strings.ToUpper(code))
	}

	return &bot.ParsedAmount{Amount: bot.Amount(amount), Currency: currency}, nil
}
