package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate(t *testing.T) {
	tests := []struct {
		name        string
		tmplName    LocalizedText
		docType     DocType
		expectError bool
		errorMsg    string
	}{
		{
			name:     "valid invoice template",
			tmplName: NewLocalizedText("Invoice A4", "فاتورة A4"),
			docType:  DocTypeInvoice,
		},
		{
			name:        "invalid doc type",
			tmplName:    NewLocalizedText("Test", ""),
			docType:     DocType("statement"),
			expectError: true,
			errorMsg:    "Invalid document type",
		},
		{
			name:        "empty name",
			tmplName:    LocalizedText{},
			docType:     DocTypeInvoice,
			expectError: true,
			errorMsg:    "name cannot be empty",
		},
		{
			name:        "name too long",
			tmplName:    NewLocalizedText(strings.Repeat("a", 101), ""),
			docType:     DocTypeInvoice,
			expectError: true,
			errorMsg:    "cannot exceed 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := NewTemplate(tt.tmplName, tt.docType, DefaultBranding())

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, tmpl)
			assert.Equal(t, tt.docType, tmpl.Type)
			assert.Equal(t, PaperSizeA4, tmpl.PaperSize)
			assert.Equal(t, OrientationPortrait, tmpl.Orientation)
			assert.Equal(t, DefaultMargins(), tmpl.Margins)
			assert.Equal(t, LanguageEnglish, tmpl.PrimaryLanguage)
			assert.Equal(t, CurrencyAfter, tmpl.CurrencyPosition)
			assert.NotEmpty(t, tmpl.ID)
		})
	}
}

func TestTemplate_Setters(t *testing.T) {
	tmpl := CanonicalInvoiceTemplate(DefaultBranding())

	require.NoError(t, tmpl.SetPaperSize(PaperSizeLetter))
	assert.Equal(t, PaperSizeLetter, tmpl.PaperSize)
	require.Error(t, tmpl.SetPaperSize(PaperSize("B5")))

	require.NoError(t, tmpl.SetOrientation(OrientationLandscape))
	require.Error(t, tmpl.SetOrientation(Orientation("diagonal")))

	require.NoError(t, tmpl.SetPrimaryLanguage(LanguageArabic))
	assert.Equal(t, LanguageEnglish, tmpl.SecondaryLanguage())
	require.Error(t, tmpl.SetPrimaryLanguage(Language("fr")))
}

func TestTemplate_SetSectionVisible(t *testing.T) {
	tmpl := CanonicalInvoiceTemplate(DefaultBranding())

	require.NoError(t, tmpl.SetSectionVisible(SectionKeyTerms, false))
	assert.False(t, tmpl.SectionByKey(SectionKeyTerms).Visible)

	err := tmpl.SetSectionVisible("no_such_section", false)
	require.Error(t, err)
}

func TestTemplate_Clone_Independence(t *testing.T) {
	src := CanonicalInvoiceTemplate(DefaultBranding())
	clone := src.Clone()

	clone.Sections[0].Name = NewLocalizedText("Changed", "")
	clone.Sections[0].Fields[0].Label = NewLocalizedText("Changed", "")
	clone.Sections = append(clone.Sections, Section{Key: "extra", Kind: SectionCustom})

	assert.Equal(t, "Header", src.Sections[0].Name.En)
	assert.Equal(t, "Invoice", src.Sections[0].Fields[0].Label.En)
	assert.NotEqual(t, len(src.Sections), len(clone.Sections))
}

func TestTemplate_EffectiveBranding(t *testing.T) {
	tmpl := CanonicalInvoiceTemplate(DefaultBranding())
	tmpl.BrandingOverride = BrandingOverride{Phone: strPtr("template-phone")}

	got := tmpl.EffectiveBranding(BrandingOverride{Phone: strPtr("caller-phone")})
	assert.Equal(t, "caller-phone", got.Phone)

	got = tmpl.EffectiveBranding(BrandingOverride{})
	assert.Equal(t, "template-phone", got.Phone)
}

func TestTemplate_Validate(t *testing.T) {
	tmpl := CanonicalInvoiceTemplate(DefaultBranding())
	require.NoError(t, tmpl.Validate())

	bad := tmpl.Clone()
	bad.Sections[0].Fields[0].Kind = FieldKind("video")
	require.Error(t, bad.Validate())

	bad = tmpl.Clone()
	bad.PrimaryLanguage = Language("de")
	require.Error(t, bad.Validate())
}

func TestLocalizedText_Fallback(t *testing.T) {
	both := NewLocalizedText("Hello", "مرحبا")
	assert.Equal(t, "Hello", both.In(LanguageEnglish))
	assert.Equal(t, "مرحبا", both.In(LanguageArabic))

	enOnly := NewLocalizedText("Hello", "")
	assert.Equal(t, "Hello", enOnly.In(LanguageArabic))

	arOnly := NewLocalizedText("", "مرحبا")
	assert.Equal(t, "مرحبا", arOnly.In(LanguageEnglish))
}
