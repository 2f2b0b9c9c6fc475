package activity

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/middleware"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

const listURL = "/activities"

// ActivityPageHandler handles page rendering and htmx endpoints for the activity module.
type ActivityPageHandler struct {
	svc      domain.ActivityService
	teachers domain.CatalogRepository[domain.Teacher]
	periods  domain.CatalogRepository[domain.Period]
	pageSize int
}

// NewActivityPageHandler creates a new ActivityPageHandler. teachers and
// periods fill the form selects.
func NewActivityPageHandler(
	svc domain.ActivityService,
	teachers domain.CatalogRepository[domain.Teacher],
	periods domain.CatalogRepository[domain.Period],
	pageSize int,
) *ActivityPageHandler {
	return &ActivityPageHandler{svc: svc, teachers: teachers, periods: periods, pageSize: pageSize}
}

// ListPage renders the activity list with search and pagination.
// GET /activities
func (h *ActivityPageHandler) ListPage(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	data := gin.H{
		"BaseURL":   listURL,
		"PageSizes": listing.PageSizes,
		"CSRFToken": middleware.CSRFToken(c),
	}

	activities, err := h.svc.ListActivities(c.Request.Context())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "list activities failed", slog.Any("error", err))
		data["Error"] = "Error al cargar las actividades"
		activities = []domain.Activity{}
	}
	data["Page"] = listing.Reduce(activities, state)

	c.HTML(http.StatusOK, "activity/list.html", data)
}

// NewPage renders the new activity form.
// GET /activities/new
func (h *ActivityPageHandler) NewPage(c *gin.Context) {
	h.renderForm(c, nil, false, "", nil)
}

// EditPage renders the edit activity form.
// GET /activities/:id/edit
func (h *ActivityPageHandler) EditPage(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	activity, err := h.svc.GetActivity(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
			return
		}
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	h.renderForm(c, formFromActivity(activity), true, "", nil)
}

// CreateHTMX handles activity creation via htmx form submission.
// POST /activities
func (h *ActivityPageHandler) CreateHTMX(c *gin.Context) {
	var req ActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("create activity: bind error", "error", err)
		h.renderForm(c, formFromRequest(0, req), false, "Revisa los campos marcados", pkg.FieldErrors(err, &req))
		return
	}

	if _, err := h.svc.CreateActivity(c.Request.Context(), req.input()); err != nil {
		h.renderForm(c, formFromRequest(0, req), false, pkg.SafeMessage(err, "Error al crear la actividad"), nil)
		return
	}

	pkg.ShowToast(c, "Actividad creada exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, listURL)
	c.Status(http.StatusOK)
}

// UpdateHTMX handles activity update via htmx form submission.
// PUT /activities/:id
func (h *ActivityPageHandler) UpdateHTMX(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	var req ActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("update activity: bind error", "error", err, "id", id)
		h.renderForm(c, formFromRequest(id, req), true, "Revisa los campos marcados", pkg.FieldErrors(err, &req))
		return
	}

	if _, err := h.svc.UpdateActivity(c.Request.Context(), id, req.input()); err != nil {
		h.renderForm(c, formFromRequest(id, req), true, pkg.SafeMessage(err, "Error al actualizar la actividad"), nil)
		return
	}

	pkg.ShowToast(c, "Actividad actualizada exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, listURL)
	c.Status(http.StatusOK)
}

// DeleteHTMX handles activity deletion via htmx.
// DELETE /activities/:id
func (h *ActivityPageHandler) DeleteHTMX(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.HXFail(c, "ID de actividad inválido")
		return
	}

	if err := h.svc.DeleteActivity(c.Request.Context(), id); err != nil {
		pkg.HXFail(c, pkg.SafeMessage(err, "Error al eliminar la actividad"))
		return
	}

	pkg.ShowToast(c, "Actividad eliminada exitosamente", pkg.ToastSuccess)
	c.Status(http.StatusOK)
}

func (h *ActivityPageHandler) renderForm(c *gin.Context, form *ActivityForm, isEdit bool, msg string, fields map[string]string) {
	ctx := c.Request.Context()
	c.HTML(http.StatusOK, "activity/form.html", gin.H{
		"Activity":    form,
		"IsEdit":      isEdit,
		"Error":       msg,
		"FieldErrors": fields,
		"Teachers":    options(ctx, "teachers", h.teachers),
		"Periods":     options(ctx, "periods", h.periods),
		"CSRFToken":   middleware.CSRFToken(c),
	})
}

// options loads a catalog for a form select. A failed load leaves the
// select empty.
func options[T domain.CatalogItem](ctx context.Context, name string, repo domain.CatalogRepository[T]) []T {
	if repo == nil {
		return []T{}
	}
	items, err := repo.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "load form options failed", slog.String("catalog", name), slog.Any("error", err))
		return []T{}
	}
	return items
}
