package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// Handler handles REST API requests for one catalog resource.
type Handler[T domain.CatalogItem] struct {
	kind     Kind[T]
	svc      domain.CatalogService[T]
	pageSize int
}

// NewHandler creates a Handler for kind.
func NewHandler[T domain.CatalogItem](kind Kind[T], svc domain.CatalogService[T], pageSize int) *Handler[T] {
	return &Handler[T]{kind: kind, svc: svc, pageSize: pageSize}
}

func (h *Handler[T]) invalidID(c *gin.Context) {
	pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid "+h.kind.Entity+" id", nil))
}

// Create handles POST /api/v1/{slug}.
func (h *Handler[T]) Create(c *gin.Context) {
	req := h.kind.NewRequest()
	if !pkg.BindAndValidate(c, req) {
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req.Item())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, item)
}

// Get handles GET /api/v1/{slug}/:id.
func (h *Handler[T]) Get(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		h.invalidID(c)
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, item)
}

// List handles GET /api/v1/{slug}.
func (h *Handler[T]) List(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, listing.Reduce(items, state))
}

// Update handles PUT /api/v1/{slug}/:id.
func (h *Handler[T]) Update(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		h.invalidID(c)
		return
	}

	req := h.kind.NewRequest()
	if !pkg.BindAndValidate(c, req) {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, req.Item())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, item)
}

// Delete handles DELETE /api/v1/{slug}/:id.
func (h *Handler[T]) Delete(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		h.invalidID(c)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
