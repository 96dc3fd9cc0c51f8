package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/domain/shared"
	"github.com/docforge/backend/internal/infrastructure/render"
	"go.uber.org/zap"
)

// TemplateService handles template management and document rendering
type TemplateService struct {
	repo      document.TemplateRepository
	assembler *render.Assembler
	html      *render.HTMLRenderer
	branding  document.Branding
	logger    *zap.Logger
}

// NewTemplateService creates a new TemplateService. The branding argument is
// the company-level default applied to templates created without a base.
func NewTemplateService(
	repo document.TemplateRepository,
	assembler *render.Assembler,
	html *render.HTMLRenderer,
	branding document.Branding,
	logger *zap.Logger,
) *TemplateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateService{
		repo:      repo,
		assembler: assembler,
		html:      html,
		branding:  branding,
		logger:    logger,
	}
}

// =============================================================================
// Template Operations
// =============================================================================

// EnsureBuiltins seeds the built-in template set for document types that have
// no stored template yet. Existing templates are never touched.
func (s *TemplateService) EnsureBuiltins(ctx context.Context) error {
	seeded := 0
	for _, tmpl := range document.BuiltinTemplates(s.branding) {
		existing, err := s.repo.FindByType(ctx, tmpl.Type)
		if err != nil {
			return fmt.Errorf("failed to check templates for type %s: %w", tmpl.Type, err)
		}
		if len(existing) > 0 {
			continue
		}
		if err := s.repo.Save(ctx, tmpl); err != nil {
			return fmt.Errorf("failed to seed template %s: %w", tmpl.Name.En, err)
		}
		seeded++
	}
	if seeded > 0 {
		s.logger.Info("built-in templates seeded", zap.Int("count", seeded))
	}
	return nil
}

// CreateTemplate creates a new template from the built-in baseline for its
// type, or from an existing stored template when base_template_id is given
func (s *TemplateService) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*TemplateResponse, error) {
	docType := document.DocType(req.Type)
	if !docType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOC_TYPE", "Invalid document type")
	}

	exists, err := s.repo.ExistsByName(ctx, req.NameEn, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check template existence: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Template with this name already exists")
	}

	tmpl, err := s.baselineFor(ctx, docType, req.BaseTemplateID)
	if err != nil {
		return nil, err
	}
	tmpl.Name = document.NewLocalizedText(req.NameEn, req.NameAr)

	if err := s.applyCreateSettings(tmpl, req); err != nil {
		return nil, err
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	s.logger.Info("document template created",
		zap.String("id", tmpl.ID.String()),
		zap.String("name", tmpl.Name.En),
		zap.String("type", string(tmpl.Type)))

	return toTemplateResponse(tmpl), nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*TemplateResponse, error) {
	tmpl, err := s.findTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(tmpl), nil
}

// ListTemplates retrieves a paginated list of templates
func (s *TemplateService) ListTemplates(ctx context.Context, req ListTemplatesRequest) (*ListTemplatesResponse, error) {
	if req.Type != "" {
		docType := document.DocType(req.Type)
		if !docType.IsValid() {
			return nil, shared.NewDomainError("INVALID_DOC_TYPE", "Invalid document type")
		}
		templates, err := s.repo.FindByType(ctx, docType)
		if err != nil {
			return nil, fmt.Errorf("failed to list templates: %w", err)
		}
		return &ListTemplatesResponse{
			Items: toTemplateResponses(templates),
			Total: int64(len(templates)),
			Page:  1,
			Size:  len(templates),
		}, nil
	}

	filter := document.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}

	templates, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count templates: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	return &ListTemplatesResponse{
		Items: toTemplateResponses(templates),
		Total: total,
		Page:  page,
		Size:  filter.Limit(),
	}, nil
}

// UpdateTemplate applies a partial update to a stored template
func (s *TemplateService) UpdateTemplate(ctx context.Context, id string, req UpdateTemplateRequest) (*TemplateResponse, error) {
	tmpl, err := s.findTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NameEn != nil {
		exists, err := s.repo.ExistsByName(ctx, *req.NameEn, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check template existence: %w", err)
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Template with this name already exists")
		}
		tmpl.Name.En = *req.NameEn
	}
	if req.NameAr != nil {
		tmpl.Name.Ar = *req.NameAr
	}
	if err := s.applyUpdateSettings(tmpl, req); err != nil {
		return nil, err
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	tmpl.Touch()
	if err := s.repo.Save(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	s.logger.Info("document template updated", zap.String("id", tmpl.ID.String()))
	return toTemplateResponse(tmpl), nil
}

// DeleteTemplate removes a template by ID
func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Template not found")
		}
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return err
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}
	s.logger.Info("document template deleted", zap.String("id", id))
	return nil
}

// DeriveTemplate derives a type-specific variant from a stored template and
// saves it as a new template
func (s *TemplateService) DeriveTemplate(ctx context.Context, id string, req DeriveTemplateRequest) (*TemplateResponse, error) {
	source, err := s.findTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	variant, err := document.DeriveVariant(source, document.DocType(req.TargetType))
	if err != nil {
		return nil, err
	}
	if req.NameEn != "" {
		variant.Name = document.NewLocalizedText(req.NameEn, req.NameAr)
	}

	exists, err := s.repo.ExistsByName(ctx, variant.Name.En, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check template existence: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Template with this name already exists")
	}

	if err := s.repo.Save(ctx, variant); err != nil {
		return nil, fmt.Errorf("failed to save derived template: %w", err)
	}

	s.logger.Info("template variant derived",
		zap.String("source_id", source.ID.String()),
		zap.String("id", variant.ID.String()),
		zap.String("type", string(variant.Type)))

	return toTemplateResponse(variant), nil
}

// =============================================================================
// Render Operations
// =============================================================================

// RenderDocument renders a document data record against a stored template
func (s *TemplateService) RenderDocument(ctx context.Context, req RenderDocumentRequest) (*RenderResponse, error) {
	tmpl, err := s.findTemplate(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	var caller document.BrandingOverride
	if req.Branding != nil {
		caller = *req.Branding
	}
	return s.render(ctx, tmpl, caller, req.Data, req.IncludeTree)
}

// PreviewTemplate renders a stored template with generated sample data
func (s *TemplateService) PreviewTemplate(ctx context.Context, id string, req PreviewTemplateRequest) (*RenderResponse, error) {
	tmpl, err := s.findTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Language != "" {
		// Preview in the requested language without persisting the change
		tmpl = tmpl.Clone()
		if err := tmpl.SetPrimaryLanguage(document.Language(req.Language)); err != nil {
			return nil, err
		}
	}

	return s.render(ctx, tmpl, document.BrandingOverride{}, SampleData(tmpl.Type), req.IncludeTree)
}

// =============================================================================
// Reference Data Operations
// =============================================================================

// ListDocumentTypes returns the supported document types
func (s *TemplateService) ListDocumentTypes() []DocumentTypeResponse {
	types := document.AllDocTypes()
	out := make([]DocumentTypeResponse, len(types))
	for i, t := range types {
		out[i] = DocumentTypeResponse{
			Code:          string(t),
			DisplayName:   t.Title(document.LanguageEnglish),
			DisplayNameAr: t.Title(document.LanguageArabic),
			CarriesTotals: t.CarriesTotals(),
		}
	}
	return out
}

// ListPaperSizes returns the supported paper sizes with portrait dimensions
func (s *TemplateService) ListPaperSizes() []PaperSizeResponse {
	sizes := document.AllPaperSizes()
	out := make([]PaperSizeResponse, len(sizes))
	for i, p := range sizes {
		w, h, unit := p.Dimensions()
		out[i] = PaperSizeResponse{Code: string(p), Width: w, Height: h, Unit: string(unit)}
	}
	return out
}

// =============================================================================
// Helpers
// =============================================================================

func (s *TemplateService) findTemplate(ctx context.Context, id string) (*document.Template, error) {
	tmpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Template not found")
		}
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return tmpl, nil
}

func (s *TemplateService) render(ctx context.Context, tmpl *document.Template, caller document.BrandingOverride, data *document.DocumentData, includeTree bool) (*RenderResponse, error) {
	out, err := s.assembler.Assemble(ctx, &render.RenderInput{
		Template: tmpl,
		Branding: caller,
		Data:     data,
	})
	if err != nil {
		return nil, err
	}

	html, err := s.html.Render(ctx, out)
	if err != nil {
		return nil, err
	}

	resp := &RenderResponse{
		TemplateID:   tmpl.ID.String(),
		Title:        out.Title,
		Language:     string(out.Language),
		Direction:    string(out.Layout.Direction),
		PaperSize:    string(tmpl.PaperSize),
		Orientation:  string(tmpl.Orientation),
		HTML:         html,
		RenderTimeMs: out.RenderDuration.Milliseconds(),
	}
	if includeTree {
		resp.Tree = out.Tree
	}

	s.logger.Info("document rendered",
		zap.String("template_id", resp.TemplateID),
		zap.String("type", string(tmpl.Type)),
		zap.Duration("duration", out.RenderDuration))

	return resp, nil
}

// baselineFor resolves the starting template for a create operation. With no
// base ID the built-in set supplies the baseline; types outside the variant
// rule set start from the canonical layout retitled for the target type.
func (s *TemplateService) baselineFor(ctx context.Context, docType document.DocType, baseID string) (*document.Template, error) {
	if baseID != "" {
		base, err := s.findTemplate(ctx, baseID)
		if err != nil {
			return nil, err
		}
		tmpl := base.Clone()
		tmpl.BaseEntity = shared.NewBaseEntity()
		if tmpl.Type != docType {
			if variant, err := document.DeriveVariant(tmpl, docType); err == nil {
				return variant, nil
			}
			tmpl.Type = docType
			s.retitle(tmpl, docType)
		}
		return tmpl, nil
	}

	canonical := document.CanonicalInvoiceTemplate(s.branding)
	if docType == document.DocTypeInvoice {
		return canonical, nil
	}
	if variant, err := document.DeriveVariant(canonical, docType); err == nil {
		return variant, nil
	}
	canonical.Type = docType
	s.retitle(canonical, docType)
	return canonical, nil
}

func (s *TemplateService) retitle(tmpl *document.Template, docType document.DocType) {
	if header := tmpl.SectionByKey(document.SectionKeyHeader); header != nil {
		if title := header.FieldByID(document.FieldIDTitle); title != nil {
			title.Label = document.NewLocalizedText(
				docType.Title(document.LanguageEnglish),
				docType.Title(document.LanguageArabic),
			)
		}
	}
}

func (s *TemplateService) applyCreateSettings(tmpl *document.Template, req CreateTemplateRequest) error {
	if req.PaperSize != "" {
		if err := tmpl.SetPaperSize(document.PaperSize(req.PaperSize)); err != nil {
			return err
		}
	}
	if req.Orientation != "" {
		if err := tmpl.SetOrientation(document.Orientation(req.Orientation)); err != nil {
			return err
		}
	}
	if req.Margins != nil {
		margins, err := document.NewMargins(req.Margins.Top, req.Margins.Right, req.Margins.Bottom, req.Margins.Left)
		if err != nil {
			return err
		}
		if err := tmpl.SetMargins(margins); err != nil {
			return err
		}
	}
	if req.PrimaryLanguage != "" {
		if err := tmpl.SetPrimaryLanguage(document.Language(req.PrimaryLanguage)); err != nil {
			return err
		}
	}
	if req.ShowDualLanguage != nil {
		tmpl.ShowDualLanguage = *req.ShowDualLanguage
	}
	if req.ShowWatermark != nil {
		tmpl.ShowWatermark = *req.ShowWatermark
	}
	if req.WatermarkText != "" {
		tmpl.WatermarkText = req.WatermarkText
	}
	if req.DateFormat != "" {
		tmpl.DateFormat = req.DateFormat
	}
	if req.CurrencyPosition != "" {
		pos := document.CurrencyPosition(req.CurrencyPosition)
		if !pos.IsValid() {
			return shared.NewDomainError("INVALID_INPUT", "Invalid currency position")
		}
		tmpl.CurrencyPosition = pos
	}
	if req.TermsEn != "" || req.TermsAr != "" {
		tmpl.Terms = document.NewLocalizedText(req.TermsEn, req.TermsAr)
	}
	if req.NotesEn != "" || req.NotesAr != "" {
		tmpl.Notes = document.NewLocalizedText(req.NotesEn, req.NotesAr)
	}
	return nil
}

func (s *TemplateService) applyUpdateSettings(tmpl *document.Template, req UpdateTemplateRequest) error {
	if req.PaperSize != nil {
		if err := tmpl.SetPaperSize(document.PaperSize(*req.PaperSize)); err != nil {
			return err
		}
	}
	if req.Orientation != nil {
		if err := tmpl.SetOrientation(document.Orientation(*req.Orientation)); err != nil {
			return err
		}
	}
	if req.Margins != nil {
		margins, err := document.NewMargins(req.Margins.Top, req.Margins.Right, req.Margins.Bottom, req.Margins.Left)
		if err != nil {
			return err
		}
		if err := tmpl.SetMargins(margins); err != nil {
			return err
		}
	}
	if req.PrimaryLanguage != nil {
		if err := tmpl.SetPrimaryLanguage(document.Language(*req.PrimaryLanguage)); err != nil {
			return err
		}
	}
	if req.ShowDualLanguage != nil {
		tmpl.ShowDualLanguage = *req.ShowDualLanguage
	}
	if req.ShowWatermark != nil {
		tmpl.ShowWatermark = *req.ShowWatermark
	}
	if req.WatermarkText != nil {
		tmpl.WatermarkText = *req.WatermarkText
	}
	if req.DateFormat != nil {
		tmpl.DateFormat = *req.DateFormat
	}
	if req.CurrencyPosition != nil {
		pos := document.CurrencyPosition(*req.CurrencyPosition)
		if !pos.IsValid() {
			return shared.NewDomainError("INVALID_INPUT", "Invalid currency position")
		}
		tmpl.CurrencyPosition = pos
	}
	if req.TermsEn != nil {
		tmpl.Terms.En = *req.TermsEn
	}
	if req.TermsAr != nil {
		tmpl.Terms.Ar = *req.TermsAr
	}
	if req.NotesEn != nil {
		tmpl.Notes.En = *req.NotesEn
	}
	if req.NotesAr != nil {
		tmpl.Notes.Ar = *req.NotesAr
	}
	for _, sv := range req.Sections {
		if err := tmpl.SetSectionVisible(sv.Key, sv.Visible); err != nil {
			return err
		}
	}
	if req.BrandingOverride != nil {
		tmpl.BrandingOverride = *req.BrandingOverride
	}
	return nil
}

func toTemplateResponses(templates []document.Template) []TemplateResponse {
	out := make([]TemplateResponse, len(templates))
	for i := range templates {
		out[i] = *toTemplateResponse(&templates[i])
	}
	return out
}
