package settings

import bot "go-currency-report-bot"

// DefaultFiats are the fiat targets used until a chat customizes its list.
var DefaultFiats = []bot.Currency{"USD", "GBP", "EUR", "BHD", "SEK"}

// DefaultCryptos are the crypto targets used until a chat customizes its list.
var DefaultCryptos = []bot.Currency{"BTC", "ETH", "SOL"}

// AvailableCryptos are the crypto currencies a chat can select from.
var AvailableCryptos = []bot.Currency{"BTC", "ETH", "SOL", "BNB", "XRP", "AVAX"}

// AvailableFiats is the selectable fiat catalogue, ISO 4217 codes in
// alphabetical order.
var AvailableFiats = []bot.Currency{
	"AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN",
	"BAM", "BBD", "BDT", "BGN", "BHD", "BIF", "BMD", "BND", "BOB", "BRL",
	"BSD", "BTN", "BWP", "BYN", "BZD", "CAD", "CDF", "CHF", "CLP", "CNY",
	"COP", "CRC", "CUP", "CVE", "CZK", "DJF", "DKK", "DOP", "DZD", "EGP",
	"ERN", "ETB", "EUR", "FJD", "FKP", "GBP", "GEL", "GHS", "GIP", "GMD",
	"GNF", "GTQ", "GYD", "HKD", "HNL", "HRK", "HTG", "HUF", "IDR", "ILS",
	"INR", "IQD", "IRR", "ISK", "JMD", "JOD", "JPY", "KES", "KGS", "KHR",
	"KMF", "KRW", "KWD", "KYD", "KZT", "LAK", "LBP", "LKR", "LRD", "LSL",
	"LYD", "MAD", "MDL", "MGA", "MKD", "MMK", "MNT", "MOP", "MRU", "MUR",
	"MVR", "MWK", "MXN", "MYR", "MZN", "NAD", "NGN", "NIO", "NOK", "NPR",
	"NZD", "OMR", "PAB", "PEN", "PGK", "PHP", "PKR", "PLN", "PYG", "QAR",
	"RON", "RSD", "RUB", "RWF", "SAR", "SBD", "SCR", "SDG", "SEK", "SGD",
	"SHP", "SLE", "SOS", "SRD", "SSP", "STN", "SYP", "SZL", "THB", "TJS",
	"TMT", "TND", "TOP", "TRY", "TTD", "TWD", "TZS", "UAH", "UGX", "USD",
	"UYU", "UZS", "VES", "VND", "VUV", "WST", "XAF", "XCD", "XOF", "XPF",
	"YER", "ZAR", "ZMW", "ZWL",
}

// FiatsPerPage sizes a selection page of the fiat catalogue.
const FiatsPerPage = 90

// FiatPageCount returns how many pages the fiat catalogue spans.
func FiatPageCount() int {
	return (len(AvailableFiats) + FiatsPerPage - 1) / FiatsPerPage
}

// FiatPageSlice returns the catalogue codes on the given page. Out-of-range
// pages return an empty slice.
func FiatPageSlice(page int) []bot.Currency {
	start := page * FiatsPerPage
	if page < 0 || start >= len(AvailableFiats) {
		return nil
	}
	end := start + FiatsPerPage
	if end > len(AvailableFiats) {
		end = len(AvailableFiats)
	}
	return AvailableFiats[start:end]
}
