package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// Module implements the app.Module interface for one catalog panel.
type Module[T domain.CatalogItem] struct {
	kind        Kind[T]
	handler     *Handler[T]
	pageHandler *PageHandler[T]
}

// NewModule creates a Module serving kind over repo.
// Panics if repo is nil.
func NewModule[T domain.CatalogItem](kind Kind[T], repo domain.CatalogRepository[T], pageSize int) *Module[T] {
	if repo == nil {
		panic("catalog.NewModule: repository must not be nil")
	}
	svc := NewService(kind, repo)
	return &Module[T]{
		kind:        kind,
		handler:     NewHandler(kind, svc, pageSize),
		pageHandler: NewPageHandler(kind, svc, pageSize),
	}
}

// RegisterRoutes registers the panel's API and page routes.
func (m *Module[T]) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	p := m.kind.Path()

	// API routes
	api.POST(p, m.handler.Create)
	api.GET(p+"/:id", m.handler.Get)
	api.GET(p, m.handler.List)
	api.PUT(p+"/:id", m.handler.Update)
	api.DELETE(p+"/:id", m.handler.Delete)

	// Page routes
	pages.GET(p, m.pageHandler.ListPage)
	pages.GET(p+"/new", m.pageHandler.NewPage)
	pages.GET(p+"/:id/edit", m.pageHandler.EditPage)
	pages.POST(p, m.pageHandler.CreateHTMX)
	pages.PUT(p+"/:id", m.pageHandler.UpdateHTMX)
	pages.DELETE(p+"/:id", m.pageHandler.DeleteHTMX)
}
