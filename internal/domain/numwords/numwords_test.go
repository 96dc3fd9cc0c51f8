package numwords

import (
	"strings"
	"testing"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWords_English(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{5, "Five"},
		{13, "Thirteen"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{21, "Twenty-One"},
		{45, "Forty-Five"},
		{99, "Ninety-Nine"},
		{100, "One Hundred"},
		{101, "One Hundred and One"},
		{345, "Three Hundred and Forty-Five"},
		{500, "Five Hundred"},
		{999, "Nine Hundred and Ninety-Nine"},
		{1000, "One Thousand"},
		{1005, "One Thousand Five"},
		{1234, "One Thousand Two Hundred and Thirty-Four"},
		{2755, "Two Thousand Seven Hundred and Fifty-Five"},
		{10000, "Ten Thousand"},
		{999999, "Nine Hundred and Ninety-Nine Thousand Nine Hundred and Ninety-Nine"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ToWords(tt.n, document.LanguageEnglish))
		})
	}
}

func TestToWords_Arabic(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "صفر"},
		{1, "واحد"},
		{2, "اثنان"},
		{11, "أحد عشر"},
		{19, "تسعة عشر"},
		{20, "عشرون"},
		{45, "خمسة وأربعون"},
		{100, "مائة"},
		{200, "مائتان"},
		{345, "ثلاثمائة وخمسة وأربعون"},
		{1000, "ألف"},
		{2000, "ألفان"},
		{3000, "ثلاثة آلاف"},
		{10000, "عشرة آلاف"},
		{11000, "أحد عشر ألف"},
		{2755, "ألفان وسبعمائة وخمسة وخمسون"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ToWords(tt.n, document.LanguageArabic))
		})
	}
}

func TestToWords_NoDigitsBelowCeiling(t *testing.T) {
	containsDigit := func(s string) bool {
		return strings.ContainsAny(s, "0123456789")
	}

	// Sweep the full supported range at a prime stride plus the boundaries
	ns := []int64{0, 1, 19, 20, 99, 100, 999, 1000, 999999}
	for n := int64(0); n < 1_000_000; n += 997 {
		ns = append(ns, n)
	}

	for _, n := range ns {
		for _, lang := range []document.Language{document.LanguageEnglish, document.LanguageArabic} {
			got := ToWords(n, lang)
			require.NotEmpty(t, got, "n=%d lang=%s", n, lang)
			require.False(t, containsDigit(got), "n=%d lang=%s got %q", n, lang, got)
			// Deterministic
			require.Equal(t, got, ToWords(n, lang))
		}
	}
}

func TestToWords_CeilingFallsBackToDigits(t *testing.T) {
	assert.Equal(t, "1000000", ToWords(1_000_000, document.LanguageEnglish))
	assert.Equal(t, "1000000", ToWords(1_000_000, document.LanguageArabic))
	assert.Equal(t, "2500000", ToWords(2_500_000, document.LanguageEnglish))
}

func TestAmountInWords_English(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{
			name:     "whole amount",
			amount:   "2755.000",
			currency: "KWD",
			want:     "Two Thousand Seven Hundred and Fifty-Five KWD Only",
		},
		{
			name:     "amount with fils",
			amount:   "1234.500",
			currency: "KWD",
			want:     "One Thousand Two Hundred and Thirty-Four KWD and Five Hundred Fils Only",
		},
		{
			name:     "zero",
			amount:   "0",
			currency: "KWD",
			want:     "Zero KWD Only",
		},
		{
			name:     "fils only",
			amount:   "0.250",
			currency: "BHD",
			want:     "Zero BHD and Two Hundred and Fifty Fils Only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			got, err := AmountInWords(amount, tt.currency, document.LanguageEnglish)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmountInWords_Arabic(t *testing.T) {
	amount := decimal.RequireFromString("2755.000")
	got, err := AmountInWords(amount, "KWD", document.LanguageArabic)
	require.NoError(t, err)
	assert.Equal(t, "ألفان وسبعمائة وخمسة وخمسون دينار كويتي فقط لا غير", got)

	amount = decimal.RequireFromString("45.100")
	got, err = AmountInWords(amount, "KWD", document.LanguageArabic)
	require.NoError(t, err)
	assert.Contains(t, got, "خمسة وأربعون")
	assert.Contains(t, got, "مائة فلس")
	assert.True(t, strings.HasSuffix(got, "فقط لا غير"))
}

func TestAmountInWords_UnknownCurrencyKeepsCode(t *testing.T) {
	got, err := AmountInWords(decimal.NewFromInt(5), "XTS", document.LanguageArabic)
	require.NoError(t, err)
	assert.Contains(t, got, "XTS")
}

func TestAmountInWords_Negative(t *testing.T) {
	_, err := AmountInWords(decimal.NewFromInt(-1), "KWD", document.LanguageEnglish)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestAmountInWords_MinorRoundingCarry(t *testing.T) {
	// 1.9995 rounds its minor part up to a whole major unit
	got, err := AmountInWords(decimal.RequireFromString("1.9995"), "KWD", document.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Two KWD Only", got)
}
