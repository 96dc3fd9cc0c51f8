package handler

import (
	"net/http"

	docapp "github.com/docforge/backend/internal/application/document"
	"github.com/docforge/backend/internal/interfaces/http/dto"
	"github.com/docforge/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles template management and rendering endpoints
type DocumentHandler struct {
	BaseHandler
	service *docapp.TemplateService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(service *docapp.TemplateService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// =============================================================================
// Template Endpoints
// =============================================================================

// ListTemplates handles GET /templates
func (h *DocumentHandler) ListTemplates(c *gin.Context) {
	var req docapp.ListTemplatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.ListTemplates(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, resp.Items, resp.Total, resp.Page, resp.Size)
}

// CreateTemplate handles POST /templates
func (h *DocumentHandler) CreateTemplate(c *gin.Context) {
	var req docapp.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetTemplate handles GET /templates/:id
func (h *DocumentHandler) GetTemplate(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	resp, err := h.service.GetTemplate(c.Request.Context(), idReq.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateTemplate handles PUT /templates/:id
func (h *DocumentHandler) UpdateTemplate(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req docapp.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.UpdateTemplate(c.Request.Context(), idReq.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteTemplate handles DELETE /templates/:id
func (h *DocumentHandler) DeleteTemplate(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.service.DeleteTemplate(c.Request.Context(), idReq.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DeriveTemplate handles POST /templates/:id/derive
func (h *DocumentHandler) DeriveTemplate(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req docapp.DeriveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.DeriveTemplate(c.Request.Context(), idReq.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// PreviewTemplate handles GET /templates/:id/preview. With format=html the
// rendered page is returned directly for embedding in an iframe.
func (h *DocumentHandler) PreviewTemplate(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req docapp.PreviewTemplateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.PreviewTemplate(c.Request.Context(), idReq.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if c.Query("format") == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(resp.HTML))
		return
	}
	h.Success(c, resp)
}

// =============================================================================
// Render Endpoints
// =============================================================================

// RenderDocument handles POST /render
func (h *DocumentHandler) RenderDocument(c *gin.Context) {
	var req docapp.RenderDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.RenderDocument(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// =============================================================================
// Reference Data Endpoints
// =============================================================================

// GetDocumentTypes handles GET /document-types
func (h *DocumentHandler) GetDocumentTypes(c *gin.Context) {
	h.Success(c, h.service.ListDocumentTypes())
}

// GetPaperSizes handles GET /paper-sizes
func (h *DocumentHandler) GetPaperSizes(c *gin.Context) {
	h.Success(c, h.service.ListPaperSizes())
}
