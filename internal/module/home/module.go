package home

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the credit report.
type Module struct {
	handler     *ReportHandler
	pageHandler *ReportPageHandler
}

// NewModule creates a new Module with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *ReportHandler, ph *ReportPageHandler) *Module {
	if h == nil {
		panic("home.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("home.NewModule: pageHandler must not be nil")
	}
	return &Module{handler: h, pageHandler: ph}
}

// RegisterRoutes registers report API and page routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	api.GET("/reports", m.handler.List)
	api.GET("/reports/:id", m.handler.Get)

	pages.GET("/", m.pageHandler.Index)
	pages.GET("/reports/:id", m.pageHandler.Detail)
}
