// Package numwords converts monetary amounts into their spoken-word form in
// English and Arabic for the amount-in-words line of printed documents.
//
// The converters cover 0 through 999,999. Values at or above one million fall
// back to the plain numeric string; the ceiling is inherited from the product
// behavior and is deliberate, not a defect.
package numwords

import (
	"strconv"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// minorUnitsPerMajor assumes a 3-decimal minor currency unit (fils)
var minorUnitsPerMajor = decimal.NewFromInt(1000)

// ToWords converts a non-negative integer into its spoken-word form in the
// given language. Values outside [0, 1,000,000) degrade to the plain numeric
// string; the function never fails.
func ToWords(n int64, lang document.Language) string {
	if n < 0 || n >= 1_000_000 {
		return strconv.FormatInt(n, 10)
	}
	if lang == document.LanguageArabic {
		return arabicWords(n)
	}
	return englishWords(n)
}

// AmountInWords converts a monetary amount into its spoken-word form with the
// currency name and the trailing "Only" marker. The integer part and the
// 3-decimal minor-unit part are converted separately; a zero minor part emits
// only the integer clause. Negative amounts are a caller contract violation
// and return an explicit error.
func AmountInWords(amount decimal.Decimal, currency string, lang document.Language) (string, error) {
	if amount.IsNegative() {
		return "", shared.NewDomainError("NEGATIVE_AMOUNT", "Amount in words is undefined for negative amounts")
	}

	major := amount.Floor().IntPart()
	minor := amount.Sub(amount.Floor()).Mul(minorUnitsPerMajor).Round(0).IntPart()
	if minor >= 1000 {
		// Fraction rounded up to a whole major unit
		major++
		minor = 0
	}

	if lang == document.LanguageArabic {
		s := ToWords(major, lang) + " " + arabicCurrencyName(currency)
		if minor > 0 {
			s += " و" + ToWords(minor, lang) + " فلس"
		}
		return s + " فقط لا غير", nil
	}

	s := ToWords(major, lang) + " " + currency
	if minor > 0 {
		s += " and " + ToWords(minor, lang) + " Fils"
	}
	return s + " Only", nil
}
