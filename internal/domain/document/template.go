package document

import (
	"strings"

	"github.com/docforge/backend/internal/domain/shared"
)

// Well-known section keys. The key identifies a section's role where the kind
// alone is ambiguous (a body section carrying party info, a custom section
// carrying payment info).
const (
	SectionKeyHeader     = "header"
	SectionKeyParty      = "party_info"
	SectionKeyItems      = "items"
	SectionKeyTotals     = "totals"
	SectionKeyPayment    = "payment_info"
	SectionKeyTerms      = "terms"
	SectionKeySignature  = "signature"
	SectionKeyFooter     = "footer"
	SectionKeyReceivedBy = "received_by"
)

// Field is declarative placement metadata for one value inside a section.
type Field struct {
	ID         string        `json:"id"`
	Label      LocalizedText `json:"label"`
	Kind       FieldKind     `json:"kind"`
	Value      string        `json:"value,omitempty"`
	Position   Position      `json:"position"`
	FontSize   int           `json:"font_size,omitempty"`
	FontWeight string        `json:"font_weight,omitempty"`
	Visible    bool          `json:"visible"`
	Width      *float64      `json:"width,omitempty"`
}

// Section is one ordered structural unit of a template. An invisible section
// contributes no output and no spacing.
type Section struct {
	Key     string        `json:"key"`
	Name    LocalizedText `json:"name"`
	Kind    SectionKind   `json:"kind"`
	Visible bool          `json:"visible"`
	Fields  []Field       `json:"fields,omitempty"`
	Style   SectionStyle  `json:"style"`
}

// FieldByID returns a pointer to the field with the given id, or nil
func (s *Section) FieldByID(id string) *Field {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i]
		}
	}
	return nil
}

// Signature configures the signature area at the bottom of a document
type Signature struct {
	ShowLine      bool          `json:"show_line"`
	Label         LocalizedText `json:"label"`
	ShowStampArea bool          `json:"show_stamp_area"`
}

// Template is the canonical configuration for one document kind. It is the
// aggregate root for template operations. Section ordering is significant and
// defines render order.
type Template struct {
	shared.BaseEntity
	Name             LocalizedText    `json:"name"`
	Type             DocType          `json:"type"`
	PaperSize        PaperSize        `json:"paper_size"`
	Orientation      Orientation      `json:"orientation"`
	Margins          Margins          `json:"margins"`
	Branding         Branding         `json:"branding"`
	BrandingOverride BrandingOverride `json:"branding_override"`
	Sections         []Section        `json:"sections"`
	ShowWatermark    bool             `json:"show_watermark"`
	WatermarkText    string           `json:"watermark_text,omitempty"`
	ShowDualLanguage bool             `json:"show_dual_language"`
	PrimaryLanguage  Language         `json:"primary_language"`
	DateFormat       string           `json:"date_format"`
	CurrencyPosition CurrencyPosition `json:"currency_position"`
	Terms            LocalizedText    `json:"terms"`
	Notes            LocalizedText    `json:"notes"`
	Signature        Signature        `json:"signature"`
}

// NewTemplate creates a new template for the given document type with default
// geometry and locale settings
func NewTemplate(name LocalizedText, docType DocType, branding Branding) (*Template, error) {
	if err := validateDocType(docType); err != nil {
		return nil, err
	}
	if err := validateTemplateName(name); err != nil {
		return nil, err
	}

	return &Template{
		BaseEntity:       shared.NewBaseEntity(),
		Name:             name,
		Type:             docType,
		PaperSize:        PaperSizeA4,
		Orientation:      OrientationPortrait,
		Margins:          DefaultMargins(),
		Branding:         branding,
		PrimaryLanguage:  LanguageEnglish,
		DateFormat:       "DD/MM/YYYY",
		CurrencyPosition: CurrencyAfter,
	}, nil
}

// SetPaperSize sets the paper size
func (t *Template) SetPaperSize(paperSize PaperSize) error {
	if !paperSize.IsValid() {
		return shared.NewDomainError("INVALID_PAPER_SIZE", "Invalid paper size")
	}
	t.PaperSize = paperSize
	t.Touch()
	return nil
}

// SetOrientation sets the page orientation
func (t *Template) SetOrientation(orientation Orientation) error {
	if !orientation.IsValid() {
		return shared.NewDomainError("INVALID_ORIENTATION", "Invalid orientation value")
	}
	t.Orientation = orientation
	t.Touch()
	return nil
}

// SetMargins sets the page margins
func (t *Template) SetMargins(margins Margins) error {
	t.Margins = margins
	t.Touch()
	return nil
}

// SetPrimaryLanguage sets the primary document language
func (t *Template) SetPrimaryLanguage(lang Language) error {
	if !lang.IsValid() {
		return shared.NewDomainError("INVALID_LANGUAGE", "Invalid language value")
	}
	t.PrimaryLanguage = lang
	t.Touch()
	return nil
}

// SecondaryLanguage returns the language used for subtitle lines in
// dual-language mode
func (t *Template) SecondaryLanguage() Language {
	return t.PrimaryLanguage.Other()
}

// SectionByKey returns a pointer to the section with the given key, or nil
func (t *Template) SectionByKey(key string) *Section {
	for i := range t.Sections {
		if t.Sections[i].Key == key {
			return &t.Sections[i]
		}
	}
	return nil
}

// SetSectionVisible toggles a section's visibility by key
func (t *Template) SetSectionVisible(key string, visible bool) error {
	s := t.SectionByKey(key)
	if s == nil {
		return shared.NewDomainError("NOT_FOUND", "Section not found: "+key)
	}
	s.Visible = visible
	t.Touch()
	return nil
}

// EffectiveBranding resolves the template's embedded branding against its own
// override and an optional caller-supplied override
func (t *Template) EffectiveBranding(caller BrandingOverride) Branding {
	return ResolveBranding(t.Branding, t.BrandingOverride, caller)
}

// Clone returns a deep copy of the template with the same identity. Derived
// and edited templates must never share section or field storage with their
// source.
func (t *Template) Clone() *Template {
	out := *t
	out.Sections = make([]Section, len(t.Sections))
	for i, s := range t.Sections {
		cs := s
		cs.Fields = make([]Field, len(s.Fields))
		copy(cs.Fields, s.Fields)
		for j := range cs.Fields {
			if w := s.Fields[j].Width; w != nil {
				ww := *w
				cs.Fields[j].Width = &ww
			}
		}
		out.Sections[i] = cs
	}
	return &out
}

// Validate checks the template's structural invariants
func (t *Template) Validate() error {
	if err := validateDocType(t.Type); err != nil {
		return err
	}
	if err := validateTemplateName(t.Name); err != nil {
		return err
	}
	if !t.PaperSize.IsValid() {
		return shared.NewDomainError("INVALID_PAPER_SIZE", "Invalid paper size")
	}
	if !t.Orientation.IsValid() {
		return shared.NewDomainError("INVALID_ORIENTATION", "Invalid orientation value")
	}
	if !t.PrimaryLanguage.IsValid() {
		return shared.NewDomainError("INVALID_LANGUAGE", "Invalid primary language")
	}
	for i := range t.Sections {
		if !t.Sections[i].Kind.IsValid() {
			return shared.NewDomainError("INVALID_SECTION", "Invalid section kind: "+string(t.Sections[i].Kind))
		}
		for j := range t.Sections[i].Fields {
			if !t.Sections[i].Fields[j].Kind.IsValid() {
				return shared.NewDomainError("INVALID_FIELD", "Invalid field kind: "+string(t.Sections[i].Fields[j].Kind))
			}
		}
	}
	return nil
}

// Validation functions

func validateDocType(docType DocType) error {
	if !docType.IsValid() {
		return shared.NewDomainError("INVALID_DOC_TYPE", "Invalid document type")
	}
	return nil
}

func validateTemplateName(name LocalizedText) error {
	if name.IsZero() {
		return shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if len(strings.TrimSpace(name.En)) > 100 || len(strings.TrimSpace(name.Ar)) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Template name cannot exceed 100 characters")
	}
	return nil
}
