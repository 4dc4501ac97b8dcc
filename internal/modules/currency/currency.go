// Package currency converts and renders base-unit prices for display. The
// conversion is display-only: persisted monetary values always stay in base
// units, so repeated conversion can never drift a stored amount.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Config is a currency code/symbol/exchange-rate triple resolved from a
// country selection.
type Config struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

// DefaultCountry is the base hub; its currency is the base unit all prices
// are stored in.
const DefaultCountry = "United States"

var table = map[string]Config{
	"United States":        {Code: "USD", Symbol: "$", Rate: 1},
	"Canada":               {Code: "CAD", Symbol: "C$", Rate: 1.36},
	"United Kingdom":       {Code: "GBP", Symbol: "£", Rate: 0.79},
	"France":               {Code: "EUR", Symbol: "€", Rate: 0.92},
	"Germany":              {Code: "EUR", Symbol: "€", Rate: 0.92},
	"India":                {Code: "INR", Symbol: "₹", Rate: 83.45},
	"Australia":            {Code: "AUD", Symbol: "A$", Rate: 1.52},
	"Japan":                {Code: "JPY", Symbol: "¥", Rate: 156.80},
	"Singapore":            {Code: "SGD", Symbol: "S$", Rate: 1.35},
	"United Arab Emirates": {Code: "AED", Symbol: "د.إ", Rate: 3.67},
	"Brazil":               {Code: "BRL", Symbol: "R$", Rate: 5.15},
	"Italy":                {Code: "EUR", Symbol: "€", Rate: 0.92},
}

// Countries returns the supported country list in a stable order.
func Countries() []string {
	return []string{
		"United States", "Canada", "United Kingdom", "France", "Germany",
		"India", "Australia", "Japan", "Singapore", "United Arab Emirates",
		"Brazil", "Italy",
	}
}

// Supported reports whether a country has a configured currency.
func Supported(country string) bool {
	_, ok := table[country]
	return ok
}

// Resolve returns the currency configuration for a country; unknown
// countries fall back to the default hub.
func Resolve(country string) Config {
	if cfg, ok := table[country]; ok {
		return cfg
	}
	return table[DefaultCountry]
}

// fractionDigits follows the display convention of the resolved currency:
// yen has no minor unit, everything else here uses two decimal places.
func fractionDigits(code string) int {
	if code == "JPY" {
		return 0
	}
	return 2
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Format converts an amount in base units to the country's currency and
// renders it with locale-aware grouping and the currency's fraction digits.
func Format(country string, baseAmount float64) string {
	cfg := Resolve(country)
	digits := fractionDigits(cfg.Code)

	converted := baseAmount * cfg.Rate
	pow := math.Pow(10, float64(digits))
	converted = math.Round(converted*pow) / pow

	return cfg.Symbol + printer.Sprint(number.Decimal(converted,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits)))
}
