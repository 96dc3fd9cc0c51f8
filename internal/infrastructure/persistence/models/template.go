package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TemplateModel is the GORM model for the document_templates table. Structured
// sub-records (sections, branding, signature) are stored as JSON; fields the
// list screens filter and sort on get their own columns.
type TemplateModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	NameEn           string    `gorm:"column:name_en;type:varchar(100);not null"`
	NameAr           string    `gorm:"column:name_ar;type:varchar(100)"`
	Type             string    `gorm:"type:varchar(50);not null;index"`
	PaperSize        string    `gorm:"column:paper_size;type:varchar(20);not null;default:'A4'"`
	Orientation      string    `gorm:"type:varchar(20);not null;default:'portrait'"`
	MarginTop        float64   `gorm:"column:margin_top;not null;default:10"`
	MarginRight      float64   `gorm:"column:margin_right;not null;default:10"`
	MarginBottom     float64   `gorm:"column:margin_bottom;not null;default:10"`
	MarginLeft       float64   `gorm:"column:margin_left;not null;default:10"`
	Branding         string    `gorm:"type:text;not null"`
	BrandingOverride string    `gorm:"column:branding_override;type:text"`
	Sections         string    `gorm:"type:text;not null"`
	ShowWatermark    bool      `gorm:"column:show_watermark;not null;default:false"`
	WatermarkText    string    `gorm:"column:watermark_text;type:varchar(100)"`
	ShowDualLanguage bool      `gorm:"column:show_dual_language;not null;default:false"`
	PrimaryLanguage  string    `gorm:"column:primary_language;type:varchar(5);not null;default:'en'"`
	DateFormat       string    `gorm:"column:date_format;type:varchar(20);not null;default:'DD/MM/YYYY'"`
	CurrencyPosition string    `gorm:"column:currency_position;type:varchar(10);not null;default:'after'"`
	TermsEn          string    `gorm:"column:terms_en;type:text"`
	TermsAr          string    `gorm:"column:terms_ar;type:text"`
	NotesEn          string    `gorm:"column:notes_en;type:text"`
	NotesAr          string    `gorm:"column:notes_ar;type:text"`
	Signature        string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for TemplateModel
func (TemplateModel) TableName() string {
	return "document_templates"
}

// ToDomain converts TemplateModel to a domain Template
func (m *TemplateModel) ToDomain() (*document.Template, error) {
	t := &document.Template{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:             document.NewLocalizedText(m.NameEn, m.NameAr),
		Type:             document.DocType(m.Type),
		PaperSize:        document.PaperSize(m.PaperSize),
		Orientation:      document.Orientation(m.Orientation),
		Margins:          document.Margins{Top: m.MarginTop, Right: m.MarginRight, Bottom: m.MarginBottom, Left: m.MarginLeft},
		ShowWatermark:    m.ShowWatermark,
		WatermarkText:    m.WatermarkText,
		ShowDualLanguage: m.ShowDualLanguage,
		PrimaryLanguage:  document.Language(m.PrimaryLanguage),
		DateFormat:       m.DateFormat,
		CurrencyPosition: document.CurrencyPosition(m.CurrencyPosition),
		Terms:            document.NewLocalizedText(m.TermsEn, m.TermsAr),
		Notes:            document.NewLocalizedText(m.NotesEn, m.NotesAr),
	}

	if err := json.Unmarshal([]byte(m.Branding), &t.Branding); err != nil {
		return nil, fmt.Errorf("failed to decode template branding: %w", err)
	}
	if m.BrandingOverride != "" {
		if err := json.Unmarshal([]byte(m.BrandingOverride), &t.BrandingOverride); err != nil {
			return nil, fmt.Errorf("failed to decode branding override: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(m.Sections), &t.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode template sections: %w", err)
	}
	if m.Signature != "" {
		if err := json.Unmarshal([]byte(m.Signature), &t.Signature); err != nil {
			return nil, fmt.Errorf("failed to decode template signature: %w", err)
		}
	}

	return t, nil
}

// TemplateModelFromDomain creates a TemplateModel from a domain Template
func TemplateModelFromDomain(t *document.Template) (*TemplateModel, error) {
	branding, err := json.Marshal(t.Branding)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template branding: %w", err)
	}
	override, err := json.Marshal(t.BrandingOverride)
	if err != nil {
		return nil, fmt.Errorf("failed to encode branding override: %w", err)
	}
	sections, err := json.Marshal(t.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template sections: %w", err)
	}
	signature, err := json.Marshal(t.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template signature: %w", err)
	}

	return &TemplateModel{
		ID:               t.ID,
		NameEn:           t.Name.En,
		NameAr:           t.Name.Ar,
		Type:             string(t.Type),
		PaperSize:        string(t.PaperSize),
		Orientation:      string(t.Orientation),
		MarginTop:        t.Margins.Top,
		MarginRight:      t.Margins.Right,
		MarginBottom:     t.Margins.Bottom,
		MarginLeft:       t.Margins.Left,
		Branding:         string(branding),
		BrandingOverride: string(override),
		Sections:         string(sections),
		ShowWatermark:    t.ShowWatermark,
		WatermarkText:    t.WatermarkText,
		ShowDualLanguage: t.ShowDualLanguage,
		PrimaryLanguage:  string(t.PrimaryLanguage),
		DateFormat:       t.DateFormat,
		CurrencyPosition: string(t.CurrencyPosition),
		TermsEn:          t.Terms.En,
		TermsAr:          t.Terms.Ar,
		NotesEn:          t.Notes.En,
		NotesAr:          t.Notes.Ar,
		Signature:        string(signature),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}, nil
}
