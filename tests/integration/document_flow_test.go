package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	docapp "github.com/docforge/backend/internal/application/document"
	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/infrastructure/persistence"
	"github.com/docforge/backend/internal/infrastructure/render"
	"github.com/docforge/backend/internal/interfaces/http/dto"
	"github.com/docforge/backend/internal/interfaces/http/handler"
	"github.com/docforge/backend/internal/interfaces/http/middleware"
	"github.com/docforge/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the template store and HTTP engine for API testing
type TestServer struct {
	DB      *TestDB
	Engine  *gin.Engine
	Service *docapp.TemplateService
}

// NewTestServer wires the full stack against an in-memory store and seeds the
// built-in template set
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	testDB := NewTestDB(t)
	repo := persistence.NewGormTemplateRepository(testDB.DB)

	htmlRenderer, err := render.NewHTMLRenderer()
	require.NoError(t, err)

	service := docapp.NewTemplateService(repo, render.NewAssembler(nil), htmlRenderer, document.DefaultBranding(), nil)
	require.NoError(t, service.EnsureBuiltins(context.Background()))

	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.NewRouter(engine).
		Register(handler.DocumentRoutes(handler.NewDocumentHandler(service))).
		Setup()

	return &TestServer{DB: testDB, Engine: engine, Service: service}
}

func (ts *TestServer) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSeededBuiltins(t *testing.T) {
	ts := NewTestServer(t)

	// One built-in template per core document type
	assert.Equal(t, int64(4), ts.DB.CountTemplates())

	// Seeding again must not duplicate
	require.NoError(t, ts.Service.EnsureBuiltins(context.Background()))
	assert.Equal(t, int64(4), ts.DB.CountTemplates())
}

func TestTemplateLifecycle(t *testing.T) {
	ts := NewTestServer(t)

	// Create a customized quote template
	w := ts.request(t, http.MethodPost, "/api/v1/templates", docapp.CreateTemplateRequest{
		NameEn:           "Ramadan Promo Quote",
		NameAr:           "عرض سعر رمضان",
		Type:             "quote",
		PaperSize:        "A5",
		PrimaryLanguage:  "ar",
		ShowDualLanguage: boolPtr(true),
		ShowWatermark:    boolPtr(true),
		WatermarkText:    "DRAFT",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := ts.decode(t, w).Data.(map[string]any)
	id := created["id"].(string)
	assert.Equal(t, "A5", created["paper_size"])

	// Update: back to A4, hide the footer
	paper := "A4"
	w = ts.request(t, http.MethodPut, "/api/v1/templates/"+id, docapp.UpdateTemplateRequest{
		PaperSize: &paper,
		Sections:  []docapp.SectionVisibilityDTO{{Key: document.SectionKeyFooter, Visible: false}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := ts.decode(t, w).Data.(map[string]any)
	assert.Equal(t, "A4", updated["paper_size"])

	// The update is persisted
	w = ts.request(t, http.MethodGet, "/api/v1/templates/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := ts.decode(t, w).Data.(map[string]any)
	assert.Equal(t, "A4", fetched["paper_size"])

	// Delete removes it
	w = ts.request(t, http.MethodDelete, "/api/v1/templates/"+id, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = ts.request(t, http.MethodGet, "/api/v1/templates/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeriveAndRenderFlow(t *testing.T) {
	ts := NewTestServer(t)

	// Find the seeded invoice template
	w := ts.request(t, http.MethodGet, "/api/v1/templates?type=invoice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := ts.decode(t, w).Data.([]any)
	require.Len(t, items, 1)
	invoiceID := items[0].(map[string]any)["id"].(string)

	// Derive a purchase order variant with a custom name
	w = ts.request(t, http.MethodPost, "/api/v1/templates/"+invoiceID+"/derive", docapp.DeriveTemplateRequest{
		TargetType: "purchase_order",
		NameEn:     "Warehouse PO",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	derived := ts.decode(t, w).Data.(map[string]any)
	poID := derived["id"].(string)
	assert.Equal(t, "purchase_order", derived["type"])

	// Render a document against the derived template; purchase orders read
	// the vendor party
	w = ts.request(t, http.MethodPost, "/api/v1/render", docapp.RenderDocumentRequest{
		TemplateID: poID,
		Data:       docapp.SampleData(document.DocTypePurchaseOrder),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rendered := ts.decode(t, w).Data.(map[string]any)
	html := rendered["html"].(string)
	assert.Contains(t, html, "PO-2025-031")
	assert.Contains(t, html, "Al Safat Supplies")
	assert.Equal(t, "Purchase Order", rendered["title"])
}

func TestRenderWithCallerBranding(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/v1/templates?type=invoice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := ts.decode(t, w).Data.([]any)
	invoiceID := items[0].(map[string]any)["id"].(string)

	name := document.NewLocalizedText("Branch Office LLC", "")
	w = ts.request(t, http.MethodPost, "/api/v1/render", docapp.RenderDocumentRequest{
		TemplateID: invoiceID,
		Branding:   &document.BrandingOverride{Name: &name},
		Data:       docapp.SampleData(document.DocTypeInvoice),
	})
	require.Equal(t, http.StatusOK, w.Code)
	rendered := ts.decode(t, w).Data.(map[string]any)
	assert.Contains(t, rendered["html"], "Branch Office LLC")
}

func boolPtr(b bool) *bool { return &b }
