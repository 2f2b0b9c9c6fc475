package catalog

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/middleware"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// PageHandler handles page rendering and htmx endpoints for one catalog panel.
// Every panel shares the catalog/list.html and catalog/form.html templates,
// which switch on .Kind.
type PageHandler[T domain.CatalogItem] struct {
	kind     Kind[T]
	svc      domain.CatalogService[T]
	pageSize int
}

// NewPageHandler creates a PageHandler for kind.
func NewPageHandler[T domain.CatalogItem](kind Kind[T], svc domain.CatalogService[T], pageSize int) *PageHandler[T] {
	return &PageHandler[T]{kind: kind, svc: svc, pageSize: pageSize}
}

func (h *PageHandler[T]) noun() string { return strings.ToLower(h.kind.Noun) }

// ListPage renders the panel's list with search and pagination.
// GET /{slug}
func (h *PageHandler[T]) ListPage(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	data := gin.H{
		"Kind":      h.kind.Slug,
		"Title":     h.kind.Title,
		"BaseURL":   h.kind.Path(),
		"PageSizes": listing.PageSizes,
		"CSRFToken": middleware.CSRFToken(c),
	}

	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "list catalog failed",
			slog.String("catalog", h.kind.Slug), slog.Any("error", err))
		data["Error"] = "Error al cargar los " + strings.ToLower(h.kind.Title)
		items = []T{}
	}
	data["Page"] = listing.Reduce(items, state)

	c.HTML(http.StatusOK, "catalog/list.html", data)
}

// NewPage renders an empty form.
// GET /{slug}/new
func (h *PageHandler[T]) NewPage(c *gin.Context) {
	h.renderForm(c, nil, 0, "", nil)
}

// EditPage renders the edit form of one item.
// GET /{slug}/:id/edit
func (h *PageHandler[T]) EditPage(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
			return
		}
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	h.renderForm(c, item, id, "", nil)
}

// CreateHTMX handles creation via htmx form submission.
// POST /{slug}
func (h *PageHandler[T]) CreateHTMX(c *gin.Context) {
	req := h.kind.NewRequest()
	if err := c.ShouldBind(req); err != nil {
		slog.Debug("create catalog item: bind error", "catalog", h.kind.Slug, "error", err)
		item := req.Item()
		h.renderForm(c, &item, 0, "Revisa los campos marcados", pkg.FieldErrors(err, req))
		return
	}

	item := req.Item()
	if _, err := h.svc.Create(c.Request.Context(), item); err != nil {
		h.renderForm(c, &item, 0, pkg.SafeMessage(err, "Error al guardar el "+h.noun()), nil)
		return
	}

	pkg.ShowToast(c, h.kind.Noun+" creado exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, h.kind.Path())
	c.Status(http.StatusOK)
}

// UpdateHTMX handles updates via htmx form submission.
// PUT /{slug}/:id
func (h *PageHandler[T]) UpdateHTMX(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	req := h.kind.NewRequest()
	if err := c.ShouldBind(req); err != nil {
		slog.Debug("update catalog item: bind error", "catalog", h.kind.Slug, "error", err, "id", id)
		item := req.Item()
		h.renderForm(c, &item, id, "Revisa los campos marcados", pkg.FieldErrors(err, req))
		return
	}

	item := req.Item()
	if _, err := h.svc.Update(c.Request.Context(), id, item); err != nil {
		h.renderForm(c, &item, id, pkg.SafeMessage(err, "Error al guardar el "+h.noun()), nil)
		return
	}

	pkg.ShowToast(c, h.kind.Noun+" actualizado exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, h.kind.Path())
	c.Status(http.StatusOK)
}

// DeleteHTMX handles deletion via htmx.
// DELETE /{slug}/:id
func (h *PageHandler[T]) DeleteHTMX(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.HXFail(c, "ID de "+h.noun()+" inválido")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.HXFail(c, pkg.SafeMessage(err, "Error al eliminar el "+h.noun()))
		return
	}

	pkg.ShowToast(c, h.kind.Noun+" eliminado exitosamente", pkg.ToastSuccess)
	c.Status(http.StatusOK)
}

// renderForm renders the form; id 0 means a new item.
func (h *PageHandler[T]) renderForm(c *gin.Context, item *T, id uint, msg string, fields map[string]string) {
	c.HTML(http.StatusOK, "catalog/form.html", gin.H{
		"Kind":        h.kind.Slug,
		"Title":       h.kind.Title,
		"BaseURL":     h.kind.Path(),
		"Item":        item,
		"ItemID":      id,
		"IsEdit":      id != 0,
		"Roles":       Roles,
		"Error":       msg,
		"FieldErrors": fields,
		"CSRFToken":   middleware.CSRFToken(c),
	})
}
