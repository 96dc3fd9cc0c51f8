package document

import (
	"strings"

	"github.com/docforge/backend/internal/domain/shared"
)

// LocalizedText holds the English and Arabic renderings of one text value.
// Lookup falls back to the other language when the requested one is empty.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// NewLocalizedText creates a LocalizedText from both language values
func NewLocalizedText(en, ar string) LocalizedText {
	return LocalizedText{En: en, Ar: ar}
}

// In returns the text for the given language, falling back to the other
// language when empty
func (t LocalizedText) In(lang Language) string {
	if lang == LanguageArabic {
		if t.Ar != "" {
			return t.Ar
		}
		return t.En
	}
	if t.En != "" {
		return t.En
	}
	return t.Ar
}

// IsZero returns true if both language values are empty
func (t LocalizedText) IsZero() bool {
	return strings.TrimSpace(t.En) == "" && strings.TrimSpace(t.Ar) == ""
}

// Margins represents the page margins in the paper's unit
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// NewMargins creates a new Margins value object
func NewMargins(top, right, bottom, left float64) (Margins, error) {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot be negative")
	}
	if top > 100 || right > 100 || bottom > 100 || left > 100 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot exceed 100 units")
	}
	return Margins{Top: top, Right: right, Bottom: bottom, Left: left}, nil
}

// DefaultMargins returns the default page margins
func DefaultMargins() Margins {
	return Margins{Top: 10, Right: 10, Bottom: 10, Left: 10}
}

// IsZero returns true if all margins are zero
func (m Margins) IsZero() bool {
	return m.Top == 0 && m.Right == 0 && m.Bottom == 0 && m.Left == 0
}

// Equals checks if two Margins are equal
func (m Margins) Equals(other Margins) bool {
	return m == other
}

// SectionStyle holds the presentation attributes of a section
type SectionStyle struct {
	Background   string  `json:"background,omitempty"`
	BorderColor  string  `json:"border_color,omitempty"`
	Padding      float64 `json:"padding,omitempty"`
	MarginTop    float64 `json:"margin_top,omitempty"`
	MarginBottom float64 `json:"margin_bottom,omitempty"`
}

// Position is a 2-D placement hint for a field. Flow-layout backends are free
// to ignore it.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
