package convert

import (
	"strings"

	"github.com/leekchan/accounting"
)

var (
	fiatFormat   = accounting.Accounting{Symbol: "", Precision: 2}
	cryptoFormat = accounting.Accounting{Symbol: "", Precision: 8}
)

// formatFiat renders with exactly 2 decimal places and US-style thousands
// grouping, e.g. 18000 -> "18,000.00".
func formatFiat(v float64) string {
	return fiatFormat.FormatMoneyFloat64(v)
}

// formatCrypto renders with between 2 and 8 decimal places: fixed 8, then
// trailing zeros trimmed down to a minimum of 2, e.g. 0.002 -> "0.002" and
// 2 -> "2.00".
func formatCrypto(v float64) string {
	return trimFraction(cryptoFormat.FormatMoneyFloat64(v))
}

func trimFraction(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+3 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}
