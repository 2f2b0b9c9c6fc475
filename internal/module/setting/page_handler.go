package setting

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/middleware"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

const listURL = "/settings"

// SettingPageHandler handles page rendering and htmx endpoints for the configuration panel.
type SettingPageHandler struct {
	svc      domain.SettingService
	pageSize int
}

// NewSettingPageHandler creates a new SettingPageHandler with the given service.
func NewSettingPageHandler(svc domain.SettingService, pageSize int) *SettingPageHandler {
	return &SettingPageHandler{svc: svc, pageSize: pageSize}
}

// ListPage renders the configuration entries.
// GET /settings
func (h *SettingPageHandler) ListPage(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	data := gin.H{
		"BaseURL":   listURL,
		"PageSizes": listing.PageSizes,
		"CSRFToken": middleware.CSRFToken(c),
	}

	settings, err := h.svc.ListSettings(c.Request.Context())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "list settings failed", slog.Any("error", err))
		data["Error"] = "Error al cargar las configuraciones"
		settings = []domain.Setting{}
	}
	data["Page"] = listing.Reduce(settings, state)

	c.HTML(http.StatusOK, "setting/list.html", data)
}

// NewPage renders the new configuration form.
// GET /settings/new
func (h *SettingPageHandler) NewPage(c *gin.Context) {
	h.renderForm(c, nil, false, "", nil)
}

// EditPage renders the edit form of one entry.
// GET /settings/:name/edit
func (h *SettingPageHandler) EditPage(c *gin.Context) {
	setting, err := h.svc.GetSetting(c.Request.Context(), c.Param("name"))
	if err != nil {
		switch {
		case domain.IsNotFound(err):
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
		case domain.IsValidation(err):
			c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		default:
			c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		}
		return
	}

	h.renderForm(c, setting, true, "", nil)
}

// CreateHTMX handles entry creation via htmx form submission.
// POST /settings
func (h *SettingPageHandler) CreateHTMX(c *gin.Context) {
	var req CreateSettingRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("create setting: bind error", "error", err)
		h.renderForm(c, &domain.Setting{Name: req.Name, Value: req.Value}, false,
			"Revisa los campos marcados", pkg.FieldErrors(err, &req))
		return
	}

	if _, err := h.svc.CreateSetting(c.Request.Context(), req.Name, req.Value); err != nil {
		h.renderForm(c, &domain.Setting{Name: req.Name, Value: req.Value}, false,
			pkg.SafeMessage(err, "Error al guardar la configuración"), nil)
		return
	}

	pkg.ShowToast(c, "Configuración creada exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, listURL)
	c.Status(http.StatusOK)
}

// UpdateHTMX handles value updates via htmx form submission.
// PUT /settings/:name
func (h *SettingPageHandler) UpdateHTMX(c *gin.Context) {
	name := c.Param("name")

	var req UpdateSettingRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("update setting: bind error", "error", err, "name", name)
		h.renderForm(c, &domain.Setting{Name: name, Value: req.Value}, true,
			"Revisa los campos marcados", pkg.FieldErrors(err, &req))
		return
	}

	if _, err := h.svc.UpdateSetting(c.Request.Context(), name, req.Value); err != nil {
		h.renderForm(c, &domain.Setting{Name: name, Value: req.Value}, true,
			pkg.SafeMessage(err, "Error al guardar la configuración"), nil)
		return
	}

	pkg.ShowToast(c, "Configuración actualizada exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, listURL)
	c.Status(http.StatusOK)
}

// DeleteHTMX handles entry deletion via htmx.
// DELETE /settings/:name
func (h *SettingPageHandler) DeleteHTMX(c *gin.Context) {
	if err := h.svc.DeleteSetting(c.Request.Context(), c.Param("name")); err != nil {
		pkg.HXFail(c, pkg.SafeMessage(err, "Error al eliminar la configuración"))
		return
	}

	pkg.ShowToast(c, "Configuración eliminada exitosamente", pkg.ToastSuccess)
	c.Status(http.StatusOK)
}

func (h *SettingPageHandler) renderForm(c *gin.Context, setting *domain.Setting, isEdit bool, msg string, fields map[string]string) {
	c.HTML(http.StatusOK, "setting/form.html", gin.H{
		"Setting":     setting,
		"IsEdit":      isEdit,
		"Error":       msg,
		"FieldErrors": fields,
		"CSRFToken":   middleware.CSRFToken(c),
	})
}
