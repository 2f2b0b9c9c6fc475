package student

import "github.com/gin-gonic/gin"

// StudentModule implements the app.Module interface for the student domain.
type StudentModule struct {
	handler     *StudentHandler
	pageHandler *StudentPageHandler
}

// NewModule creates a new StudentModule with the given handlers.
// Panics if h or ph is nil.
func NewModule(h *StudentHandler, ph *StudentPageHandler) *StudentModule {
	if h == nil {
		panic("student.NewModule: handler must not be nil")
	}
	if ph == nil {
		panic("student.NewModule: pageHandler must not be nil")
	}
	return &StudentModule{handler: h, pageHandler: ph}
}

// RegisterRoutes registers student API and page routes.
func (m *StudentModule) RegisterRoutes(api *gin.RouterGroup, pages *gin.RouterGroup) {
	// API routes
	api.POST("/students", m.handler.Create)
	api.GET("/students/:id", m.handler.Get)
	api.GET("/students", m.handler.List)
	api.PUT("/students/:id", m.handler.Update)
	api.DELETE("/students/:id", m.handler.Delete)

	// Page routes
	pages.GET("/students", m.pageHandler.ListPage)
	pages.GET("/students/new", m.pageHandler.NewPage)
	pages.GET("/students/:id/edit", m.pageHandler.EditPage)
	pages.POST("/students", m.pageHandler.CreateHTMX)
	pages.PUT("/students/:id", m.pageHandler.UpdateHTMX)
	pages.DELETE("/students/:id", m.pageHandler.DeleteHTMX)
}
