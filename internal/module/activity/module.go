package activity

import "github.com/gin-gonic/gin"

// ActivityModule implements the app.Module interface for activities.
type ActivityModule struct {
	handler     *ActivityHandler
	pageHandler *ActivityPageHandler
}

// NewModule creates a new ActivityModule with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *ActivityHandler, ph *ActivityPageHandler) *ActivityModule {
	if h == nil {
		panic("activity.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("activity.NewModule: pageHandler must not be nil")
	}
	return &ActivityModule{handler: h, pageHandler: ph}
}

// RegisterRoutes registers activity API and page routes.
func (m *ActivityModule) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	// API routes
	api.POST("/activities", m.handler.Create)
	api.GET("/activities/:id", m.handler.Get)
	api.GET("/activities", m.handler.List)
	api.PUT("/activities/:id", m.handler.Update)
	api.DELETE("/activities/:id", m.handler.Delete)

	// Page routes
	pages.GET("/activities", m.pageHandler.ListPage)
	pages.GET("/activities/new", m.pageHandler.NewPage)
	pages.GET("/activities/:id/edit", m.pageHandler.EditPage)
	pages.POST("/activities", m.pageHandler.CreateHTMX)
	pages.PUT("/activities/:id", m.pageHandler.UpdateHTMX)
	pages.DELETE("/activities/:id", m.pageHandler.DeleteHTMX)
}
