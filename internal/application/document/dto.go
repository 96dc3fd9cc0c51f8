package document

import (
	"time"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/infrastructure/render"
)

// =============================================================================
// Template DTOs
// =============================================================================

// CreateTemplateRequest represents a request to create a new document template.
// The template starts from the built-in baseline for its type (or from an
// existing template when base_template_id is given) and applies the overrides.
type CreateTemplateRequest struct {
	NameEn           string      `json:"name_en" binding:"required,min=1,max=100"`
	NameAr           string      `json:"name_ar" binding:"max=100"`
	Type             string      `json:"type" binding:"required,doctype"`
	BaseTemplateID   string      `json:"base_template_id" binding:"omitempty,uuid"`
	PaperSize        string      `json:"paper_size" binding:"omitempty,papersize"`
	Orientation      string      `json:"orientation" binding:"omitempty,orientation"`
	Margins          *MarginsDTO `json:"margins"`
	PrimaryLanguage  string      `json:"primary_language" binding:"omitempty,oneof=en ar"`
	ShowDualLanguage *bool       `json:"show_dual_language"`
	ShowWatermark    *bool       `json:"show_watermark"`
	WatermarkText    string      `json:"watermark_text" binding:"max=100"`
	DateFormat       string      `json:"date_format" binding:"max=20"`
	CurrencyPosition string      `json:"currency_position" binding:"omitempty,oneof=before after"`
	TermsEn          string      `json:"terms_en"`
	TermsAr          string      `json:"terms_ar"`
	NotesEn          string      `json:"notes_en"`
	NotesAr          string      `json:"notes_ar"`
}

// UpdateTemplateRequest represents a partial update of a document template.
// Nil fields leave the stored value untouched.
type UpdateTemplateRequest struct {
	NameEn           *string                    `json:"name_en" binding:"omitempty,min=1,max=100"`
	NameAr           *string                    `json:"name_ar" binding:"omitempty,max=100"`
	PaperSize        *string                    `json:"paper_size" binding:"omitempty,papersize"`
	Orientation      *string                    `json:"orientation" binding:"omitempty,orientation"`
	Margins          *MarginsDTO                `json:"margins"`
	PrimaryLanguage  *string                    `json:"primary_language" binding:"omitempty,oneof=en ar"`
	ShowDualLanguage *bool                      `json:"show_dual_language"`
	ShowWatermark    *bool                      `json:"show_watermark"`
	WatermarkText    *string                    `json:"watermark_text" binding:"omitempty,max=100"`
	DateFormat       *string                    `json:"date_format" binding:"omitempty,max=20"`
	CurrencyPosition *string                    `json:"currency_position" binding:"omitempty,oneof=before after"`
	TermsEn          *string                    `json:"terms_en"`
	TermsAr          *string                    `json:"terms_ar"`
	NotesEn          *string                    `json:"notes_en"`
	NotesAr          *string                    `json:"notes_ar"`
	Sections         []SectionVisibilityDTO     `json:"sections" binding:"omitempty,dive"`
	BrandingOverride *document.BrandingOverride `json:"branding_override"`
}

// SectionVisibilityDTO toggles one section's visibility by key
type SectionVisibilityDTO struct {
	Key     string `json:"key" binding:"required"`
	Visible bool   `json:"visible"`
}

// ListTemplatesRequest represents a request to list templates
type ListTemplatesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=created_at updated_at name_en type"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search" binding:"max=100"`
	Type     string `form:"type" binding:"omitempty,doctype"`
}

// DeriveTemplateRequest represents a request to derive a type variant from a
// stored template
type DeriveTemplateRequest struct {
	TargetType string `json:"target_type" binding:"required,doctype"`
	NameEn     string `json:"name_en" binding:"omitempty,min=1,max=100"`
	NameAr     string `json:"name_ar" binding:"omitempty,max=100"`
}

// MarginsDTO represents page margins in millimeters
type MarginsDTO struct {
	Top    float64 `json:"top" binding:"min=0"`
	Right  float64 `json:"right" binding:"min=0"`
	Bottom float64 `json:"bottom" binding:"min=0"`
	Left   float64 `json:"left" binding:"min=0"`
}

// SectionResponse represents one template section in a response
type SectionResponse struct {
	Key     string                 `json:"key"`
	Name    document.LocalizedText `json:"name"`
	Kind    string                 `json:"kind"`
	Visible bool                   `json:"visible"`
	Fields  []document.Field       `json:"fields,omitempty"`
}

// TemplateResponse represents a document template response
type TemplateResponse struct {
	ID               string                    `json:"id"`
	Name             document.LocalizedText    `json:"name"`
	Type             string                    `json:"type"`
	PaperSize        string                    `json:"paper_size"`
	Orientation      string                    `json:"orientation"`
	Margins          MarginsDTO                `json:"margins"`
	Branding         document.Branding         `json:"branding"`
	BrandingOverride document.BrandingOverride `json:"branding_override"`
	Sections         []SectionResponse         `json:"sections"`
	ShowWatermark    bool                      `json:"show_watermark"`
	WatermarkText    string                    `json:"watermark_text,omitempty"`
	ShowDualLanguage bool                      `json:"show_dual_language"`
	PrimaryLanguage  string                    `json:"primary_language"`
	DateFormat       string                    `json:"date_format"`
	CurrencyPosition string                    `json:"currency_position"`
	Terms            document.LocalizedText    `json:"terms"`
	Notes            document.LocalizedText    `json:"notes"`
	Signature        document.Signature        `json:"signature"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// ListTemplatesResponse represents a paginated list of templates
type ListTemplatesResponse struct {
	Items []TemplateResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
}

// =============================================================================
// Render and Preview DTOs
// =============================================================================

// RenderDocumentRequest represents a request to render a document against a
// stored template
type RenderDocumentRequest struct {
	TemplateID  string                     `json:"template_id" binding:"required,uuid"`
	Branding    *document.BrandingOverride `json:"branding"`
	Data        *document.DocumentData     `json:"data" binding:"required"`
	IncludeTree bool                       `json:"include_tree"`
}

// PreviewTemplateRequest represents a request to preview a template with
// generated sample data
type PreviewTemplateRequest struct {
	Language    string `form:"language" binding:"omitempty,oneof=en ar"`
	IncludeTree bool   `form:"include_tree"`
}

// RenderResponse represents the rendered document
type RenderResponse struct {
	TemplateID   string       `json:"template_id"`
	Title        string       `json:"title"`
	Language     string       `json:"language"`
	Direction    string       `json:"direction"`
	PaperSize    string       `json:"paper_size"`
	Orientation  string       `json:"orientation"`
	HTML         string       `json:"html"`
	Tree         *render.Node `json:"tree,omitempty"`
	RenderTimeMs int64        `json:"render_time_ms"`
}

// =============================================================================
// Reference Data DTOs
// =============================================================================

// DocumentTypeResponse represents one supported document type
type DocumentTypeResponse struct {
	Code          string `json:"code"`
	DisplayName   string `json:"display_name"`
	DisplayNameAr string `json:"display_name_ar"`
	CarriesTotals bool   `json:"carries_totals"`
}

// PaperSizeResponse represents one supported paper size
type PaperSizeResponse struct {
	Code   string  `json:"code"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// toTemplateResponse converts a domain template to a response DTO
func toTemplateResponse(t *document.Template) *TemplateResponse {
	sections := make([]SectionResponse, len(t.Sections))
	for i, s := range t.Sections {
		sections[i] = SectionResponse{
			Key:     s.Key,
			Name:    s.Name,
			Kind:    string(s.Kind),
			Visible: s.Visible,
			Fields:  s.Fields,
		}
	}
	return &TemplateResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Type:        string(t.Type),
		PaperSize:   string(t.PaperSize),
		Orientation: string(t.Orientation),
		Margins: MarginsDTO{
			Top:    t.Margins.Top,
			Right:  t.Margins.Right,
			Bottom: t.Margins.Bottom,
			Left:   t.Margins.Left,
		},
		Branding:         t.Branding,
		BrandingOverride: t.BrandingOverride,
		Sections:         sections,
		ShowWatermark:    t.ShowWatermark,
		WatermarkText:    t.WatermarkText,
		ShowDualLanguage: t.ShowDualLanguage,
		PrimaryLanguage:  string(t.PrimaryLanguage),
		DateFormat:       t.DateFormat,
		CurrencyPosition: string(t.CurrencyPosition),
		Terms:            t.Terms,
		Notes:            t.Notes,
		Signature:        t.Signature,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
