package render

import (
	"strings"
	"time"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatAmount formats a monetary value with the 3 fractional digits the
// engine's minor unit assumes
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(3)
}

// FormatMoney formats a monetary value with the currency code placed per the
// template's currency position
func FormatMoney(d decimal.Decimal, currency string, pos document.CurrencyPosition) string {
	amount := FormatAmount(d)
	if currency == "" {
		return amount
	}
	if pos == document.CurrencyBefore {
		return currency + " " + amount
	}
	return amount + " " + currency
}

// FormatQuantity formats a quantity, dropping a fractional part that is zero
// Example: 10.000 -> "10", 2.5 -> "2.5"
func FormatQuantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.String()
}

// FormatPercent formats a percentage value already expressed in percent units
// Example: 5 -> "5%", 12.5 -> "12.5%"
func FormatPercent(d decimal.Decimal) string {
	return d.String() + "%"
}

// FormatDate formats a time per a display-style date format string
// ("DD/MM/YYYY", "YYYY-MM-DD", "MM/DD/YYYY")
func FormatDate(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}
	if format == "" {
		format = "DD/MM/YYYY"
	}
	layout := strings.NewReplacer(
		"YYYY", "2006",
		"YY", "06",
		"MM", "01",
		"DD", "02",
	).Replace(format)
	return t.Format(layout)
}

// titleCase capitalizes the first letter of each word. NoLower keeps existing
// capitals (acronyms, registration codes) and leaves Arabic text untouched.
func titleCase(s string) string {
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(s)
}
