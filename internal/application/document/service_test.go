package document_test

import (
	"context"
	"strings"
	"testing"

	appdoc "github.com/docforge/backend/internal/application/document"
	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/domain/shared"
	"github.com/docforge/backend/internal/infrastructure/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Save(ctx context.Context, template *document.Template) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id string) (*document.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindAll(ctx context.Context, filter document.Filter) ([]document.Template, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Template), args.Error(1)
}

func (m *MockTemplateRepository) Count(ctx context.Context, filter document.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTemplateRepository) FindByType(ctx context.Context, docType document.DocType) ([]document.Template, error) {
	args := m.Called(ctx, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Template), args.Error(1)
}

func (m *MockTemplateRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Helpers
// =============================================================================

func newTestService(t *testing.T, repo document.TemplateRepository) *appdoc.TemplateService {
	t.Helper()
	html, err := render.NewHTMLRenderer()
	require.NoError(t, err)
	return appdoc.NewTemplateService(repo, render.NewAssembler(nil), html, document.DefaultBranding(), nil)
}

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

// =============================================================================
// Template Operation Tests
// =============================================================================

func TestCreateTemplate_Success(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	repo.On("ExistsByName", mock.Anything, "Project Invoice", "").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*document.Template")).Return(nil)

	resp, err := svc.CreateTemplate(context.Background(), appdoc.CreateTemplateRequest{
		NameEn:          "Project Invoice",
		NameAr:          "فاتورة مشروع",
		Type:            "invoice",
		PaperSize:       "Letter",
		Orientation:     "landscape",
		PrimaryLanguage: "ar",
	})
	require.NoError(t, err)

	assert.Equal(t, "Project Invoice", resp.Name.En)
	assert.Equal(t, "invoice", resp.Type)
	assert.Equal(t, "Letter", resp.PaperSize)
	assert.Equal(t, "landscape", resp.Orientation)
	assert.Equal(t, "ar", resp.PrimaryLanguage)
	assert.NotEmpty(t, resp.Sections)
	repo.AssertExpectations(t)
}

func TestCreateTemplate_VariantBaseline(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	repo.On("ExistsByName", mock.Anything, mock.Anything, "").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*document.Template")).Return(nil)

	resp, err := svc.CreateTemplate(context.Background(), appdoc.CreateTemplateRequest{
		NameEn: "Warehouse Delivery Note",
		Type:   "delivery_note",
	})
	require.NoError(t, err)

	// The delivery note baseline hides totals and carries a received-by block
	var totalsVisible *bool
	hasReceivedBy := false
	for _, s := range resp.Sections {
		if s.Key == document.SectionKeyTotals {
			v := s.Visible
			totalsVisible = &v
		}
		if s.Key == document.SectionKeyReceivedBy {
			hasReceivedBy = true
		}
	}
	require.NotNil(t, totalsVisible)
	assert.False(t, *totalsVisible)
	assert.True(t, hasReceivedBy)
}

func TestCreateTemplate_RetitledBaseline(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	repo.On("ExistsByName", mock.Anything, mock.Anything, "").Return(false, nil)

	var saved *document.Template
	repo.On("Save", mock.Anything, mock.AnythingOfType("*document.Template")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*document.Template) }).
		Return(nil)

	_, err := svc.CreateTemplate(context.Background(), appdoc.CreateTemplateRequest{
		NameEn: "Cash Receipt",
		Type:   "receipt",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, document.DocTypeReceipt, saved.Type)
	header := saved.SectionByKey(document.SectionKeyHeader)
	require.NotNil(t, header)
	title := header.FieldByID(document.FieldIDTitle)
	require.NotNil(t, title)
	assert.Equal(t, "Receipt", title.Label.En)
}

func TestCreateTemplate_Errors(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	_, err := svc.CreateTemplate(context.Background(), appdoc.CreateTemplateRequest{
		NameEn: "Bad", Type: "statement",
	})
	assertDomainCode(t, err, "INVALID_DOC_TYPE")

	repo.On("ExistsByName", mock.Anything, "Standard Invoice", "").Return(true, nil)
	_, err = svc.CreateTemplate(context.Background(), appdoc.CreateTemplateRequest{
		NameEn: "Standard Invoice", Type: "invoice",
	})
	assertDomainCode(t, err, "ALREADY_EXISTS")
}

func TestGetTemplate_NotFound(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	_, err := svc.GetTemplate(context.Background(), "00000000-0000-0000-0000-000000000001")
	assertDomainCode(t, err, "NOT_FOUND")
}

func TestListTemplates(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	stored := []document.Template{*document.CanonicalInvoiceTemplate(document.DefaultBranding())}
	repo.On("FindAll", mock.Anything, mock.Anything).Return(stored, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	resp, err := svc.ListTemplates(context.Background(), appdoc.ListTemplatesRequest{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Standard Invoice", resp.Items[0].Name.En)
}

func TestListTemplates_ByType(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	canonical := document.CanonicalInvoiceTemplate(document.DefaultBranding())
	quote, err := document.DeriveVariant(canonical, document.DocTypeQuote)
	require.NoError(t, err)
	repo.On("FindByType", mock.Anything, document.DocTypeQuote).Return([]document.Template{*quote}, nil)

	resp, err := svc.ListTemplates(context.Background(), appdoc.ListTemplatesRequest{Type: "quote"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "quote", resp.Items[0].Type)

	_, err = svc.ListTemplates(context.Background(), appdoc.ListTemplatesRequest{Type: "bogus"})
	assertDomainCode(t, err, "INVALID_DOC_TYPE")
}

func TestUpdateTemplate(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	tmpl := document.CanonicalInvoiceTemplate(document.DefaultBranding())
	repo.On("FindByID", mock.Anything, tmpl.ID.String()).Return(tmpl, nil)
	repo.On("ExistsByName", mock.Anything, "Renamed Invoice", tmpl.ID.String()).Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*document.Template")).Return(nil)

	nameEn := "Renamed Invoice"
	paper := "A5"
	hideFooter := []appdoc.SectionVisibilityDTO{{Key: document.SectionKeyFooter, Visible: false}}

	resp, err := svc.UpdateTemplate(context.Background(), tmpl.ID.String(), appdoc.UpdateTemplateRequest{
		NameEn:    &nameEn,
		PaperSize: &paper,
		Sections:  hideFooter,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Invoice", resp.Name.En)
	assert.Equal(t, "A5", resp.PaperSize)
	for _, s := range resp.Sections {
		if s.Key == document.SectionKeyFooter {
			assert.False(t, s.Visible)
		}
	}
	repo.AssertExpectations(t)
}

func TestUpdateTemplate_InvalidSettings(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	tmpl := document.CanonicalInvoiceTemplate(document.DefaultBranding())
	repo.On("FindByID", mock.Anything, tmpl.ID.String()).Return(tmpl, nil)

	paper := "B4"
	_, err := svc.UpdateTemplate(context.Background(), tmpl.ID.String(), appdoc.UpdateTemplateRequest{
		PaperSize: &paper,
	})
	assertDomainCode(t, err, "INVALID_PAPER_SIZE")
}

func TestDeleteTemplate_NotFound(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	repo.On("Delete", mock.Anything, mock.Anything).Return(shared.ErrNotFound)

	err := svc.DeleteTemplate(context.Background(), "00000000-0000-0000-0000-000000000001")
	assertDomainCode(t, err, "NOT_FOUND")
}

func TestDeriveTemplate(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	canonical := document.CanonicalInvoiceTemplate(document.DefaultBranding())
	repo.On("FindByID", mock.Anything, canonical.ID.String()).Return(canonical, nil)
	repo.On("ExistsByName", mock.Anything, "Standard Quotation", "").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*document.Template")).Return(nil)

	resp, err := svc.DeriveTemplate(context.Background(), canonical.ID.String(), appdoc.DeriveTemplateRequest{
		TargetType: "quote",
	})
	require.NoError(t, err)

	assert.Equal(t, "quote", resp.Type)
	assert.Equal(t, "Standard Quotation", resp.Name.En)
	assert.NotEqual(t, canonical.ID.String(), resp.ID)
}

func TestEnsureBuiltins(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	existing := []document.Template{*document.CanonicalInvoiceTemplate(document.DefaultBranding())}
	repo.On("FindByType", mock.Anything, document.DocTypeInvoice).Return(existing, nil)
	repo.On("FindByType", mock.Anything, mock.Anything).Return([]document.Template{}, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*document.Template")).Return(nil)

	require.NoError(t, svc.EnsureBuiltins(context.Background()))

	// One template per missing type; the invoice slot is already filled
	repo.AssertNumberOfCalls(t, "Save", 3)
}

// =============================================================================
// Render Operation Tests
// =============================================================================

func TestRenderDocument(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	tmpl := document.CanonicalInvoiceTemplate(document.DefaultBranding())
	repo.On("FindByID", mock.Anything, tmpl.ID.String()).Return(tmpl, nil)

	resp, err := svc.RenderDocument(context.Background(), appdoc.RenderDocumentRequest{
		TemplateID:  tmpl.ID.String(),
		Data:        appdoc.SampleData(document.DocTypeInvoice),
		IncludeTree: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Invoice", resp.Title)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "ltr", resp.Direction)
	assert.Contains(t, resp.HTML, "INV-2025-042")
	assert.Contains(t, resp.HTML, "2755.000 KWD")
	require.NotNil(t, resp.Tree)
	assert.NotEmpty(t, resp.Tree.Children)
}

func TestRenderDocument_InvalidData(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	tmpl := document.CanonicalInvoiceTemplate(document.DefaultBranding())
	repo.On("FindByID", mock.Anything, tmpl.ID.String()).Return(tmpl, nil)

	_, err := svc.RenderDocument(context.Background(), appdoc.RenderDocumentRequest{
		TemplateID: tmpl.ID.String(),
		Data:       &document.DocumentData{},
	})
	require.Error(t, err)
	var renderErr *render.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, render.ErrCodeInvalidData, renderErr.Code)
}

func TestPreviewTemplate(t *testing.T) {
	repo := new(MockTemplateRepository)
	svc := newTestService(t, repo)

	tmpl := document.CanonicalInvoiceTemplate(document.DefaultBranding())
	repo.On("FindByID", mock.Anything, tmpl.ID.String()).Return(tmpl, nil)

	resp, err := svc.PreviewTemplate(context.Background(), tmpl.ID.String(), appdoc.PreviewTemplateRequest{
		Language: "ar",
	})
	require.NoError(t, err)

	assert.Equal(t, "ar", resp.Language)
	assert.Equal(t, "rtl", resp.Direction)
	assert.Contains(t, resp.HTML, "فاتورة")

	// The language switch is preview-only
	assert.Equal(t, document.LanguageEnglish, tmpl.PrimaryLanguage)
}

// =============================================================================
// Reference Data Tests
// =============================================================================

func TestListDocumentTypes(t *testing.T) {
	svc := newTestService(t, new(MockTemplateRepository))

	types := svc.ListDocumentTypes()
	require.Len(t, types, 8)

	byCode := map[string]appdoc.DocumentTypeResponse{}
	for _, dt := range types {
		byCode[dt.Code] = dt
	}
	assert.Equal(t, "Invoice", byCode["invoice"].DisplayName)
	assert.False(t, byCode["delivery_note"].CarriesTotals)
	assert.True(t, byCode["quote"].CarriesTotals)
}

func TestListPaperSizes(t *testing.T) {
	svc := newTestService(t, new(MockTemplateRepository))

	sizes := svc.ListPaperSizes()
	require.Len(t, sizes, 3)
	assert.Equal(t, "A4", sizes[0].Code)
	assert.Equal(t, 210.0, sizes[0].Width)
	assert.Equal(t, "mm", sizes[0].Unit)
}

func TestSampleData_Consistency(t *testing.T) {
	for _, docType := range document.AllDocTypes() {
		data := appdoc.SampleData(docType)
		require.NoError(t, data.Validate(docType), "sample data must satisfy %s", docType)
		assert.True(t, strings.Contains(data.Number, "-2025-"))
	}
}
