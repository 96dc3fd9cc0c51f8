package handler

import (
	"github.com/docforge/backend/internal/interfaces/http/router"
)

// DocumentRoutes creates the route group for templating and render endpoints
func DocumentRoutes(h *DocumentHandler) *router.DomainGroup {
	group := router.NewDomainGroup("documents", "")

	// Template management
	group.GET("/templates", h.ListTemplates)
	group.POST("/templates", h.CreateTemplate)
	group.GET("/templates/:id", h.GetTemplate)
	group.PUT("/templates/:id", h.UpdateTemplate)
	group.DELETE("/templates/:id", h.DeleteTemplate)
	group.POST("/templates/:id/derive", h.DeriveTemplate)
	group.GET("/templates/:id/preview", h.PreviewTemplate)

	// Rendering
	group.POST("/render", h.RenderDocument)

	// Reference data
	group.GET("/document-types", h.GetDocumentTypes)
	group.GET("/paper-sizes", h.GetPaperSizes)

	return group
}
