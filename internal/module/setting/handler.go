package setting

import (
	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// SettingHandler handles REST API requests for configuration entries.
type SettingHandler struct {
	svc      domain.SettingService
	pageSize int
}

// NewSettingHandler creates a new SettingHandler with the given service.
func NewSettingHandler(svc domain.SettingService, pageSize int) *SettingHandler {
	return &SettingHandler{svc: svc, pageSize: pageSize}
}

// Create handles POST /api/v1/settings.
func (h *SettingHandler) Create(c *gin.Context) {
	var req CreateSettingRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	setting, err := h.svc.CreateSetting(c.Request.Context(), req.Name, req.Value)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, setting)
}

// Get handles GET /api/v1/settings/:name.
func (h *SettingHandler) Get(c *gin.Context) {
	setting, err := h.svc.GetSetting(c.Request.Context(), c.Param("name"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, setting)
}

// List handles GET /api/v1/settings.
func (h *SettingHandler) List(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	settings, err := h.svc.ListSettings(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, listing.Reduce(settings, state))
}

// Update handles PUT /api/v1/settings/:name.
func (h *SettingHandler) Update(c *gin.Context) {
	var req UpdateSettingRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	setting, err := h.svc.UpdateSetting(c.Request.Context(), c.Param("name"), req.Value)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, setting)
}

// Delete handles DELETE /api/v1/settings/:name.
func (h *SettingHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteSetting(c.Request.Context(), c.Param("name")); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
