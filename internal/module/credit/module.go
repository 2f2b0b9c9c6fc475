package credit

import "github.com/gin-gonic/gin"

// CreditModule implements the app.Module interface for granted credits.
type CreditModule struct {
	handler     *CreditHandler
	pageHandler *CreditPageHandler
}

// NewModule creates a new CreditModule with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *CreditHandler, ph *CreditPageHandler) *CreditModule {
	if h == nil {
		panic("credit.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("credit.NewModule: pageHandler must not be nil")
	}
	return &CreditModule{handler: h, pageHandler: ph}
}

// RegisterRoutes registers credit API and page routes.
func (m *CreditModule) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	// API routes
	api.POST("/credits", m.handler.Create)
	api.GET("/credits/:id", m.handler.Get)
	api.GET("/credits", m.handler.List)
	api.PUT("/credits/:id", m.handler.Update)
	api.DELETE("/credits/:id", m.handler.Delete)
	api.GET("/students/:id/credits", m.handler.ListByStudent)

	// Page routes
	pages.GET("/credits", m.pageHandler.ListPage)
	pages.GET("/credits/new", m.pageHandler.NewPage)
	pages.GET("/credits/:id/edit", m.pageHandler.EditPage)
	pages.POST("/credits", m.pageHandler.CreateHTMX)
	pages.PUT("/credits/:id", m.pageHandler.UpdateHTMX)
	pages.DELETE("/credits/:id", m.pageHandler.DeleteHTMX)
}
