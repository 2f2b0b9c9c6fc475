package setting

import "github.com/gin-gonic/gin"

// SettingModule implements the app.Module interface for configuration entries.
type SettingModule struct {
	handler     *SettingHandler
	pageHandler *SettingPageHandler
}

// NewModule creates a new SettingModule with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *SettingHandler, ph *SettingPageHandler) *SettingModule {
	if h == nil {
		panic("setting.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("setting.NewModule: pageHandler must not be nil")
	}
	return &SettingModule{handler: h, pageHandler: ph}
}

// RegisterRoutes registers configuration API and page routes.
func (m *SettingModule) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	// API routes
	api.POST("/settings", m.handler.Create)
	api.GET("/settings/:name", m.handler.Get)
	api.GET("/settings", m.handler.List)
	api.PUT("/settings/:name", m.handler.Update)
	api.DELETE("/settings/:name", m.handler.Delete)

	// Page routes
	pages.GET("/settings", m.pageHandler.ListPage)
	pages.GET("/settings/new", m.pageHandler.NewPage)
	pages.GET("/settings/:name/edit", m.pageHandler.EditPage)
	pages.POST("/settings", m.pageHandler.CreateHTMX)
	pages.PUT("/settings/:name", m.pageHandler.UpdateHTMX)
	pages.DELETE("/settings/:name", m.pageHandler.DeleteHTMX)
}
