package activity

import (
	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// ActivityHandler handles REST API requests for the activity resource.
type ActivityHandler struct {
	svc      domain.ActivityService
	pageSize int
}

// NewActivityHandler creates a new ActivityHandler with the given service.
func NewActivityHandler(svc domain.ActivityService, pageSize int) *ActivityHandler {
	return &ActivityHandler{svc: svc, pageSize: pageSize}
}

// Create handles POST /api/v1/activities.
func (h *ActivityHandler) Create(c *gin.Context) {
	var req ActivityRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	activity, err := h.svc.CreateActivity(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, activity)
}

// Get handles GET /api/v1/activities/:id.
func (h *ActivityHandler) Get(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid activity id", nil))
		return
	}

	activity, err := h.svc.GetActivity(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, activity)
}

// List handles GET /api/v1/activities.
func (h *ActivityHandler) List(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	activities, err := h.svc.ListActivities(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, listing.Reduce(activities, state))
}

// Update handles PUT /api/v1/activities/:id.
func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid activity id", nil))
		return
	}

	var req ActivityRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	activity, err := h.svc.UpdateActivity(c.Request.Context(), id, req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, activity)
}

// Delete handles DELETE /api/v1/activities/:id.
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid activity id", nil))
		return
	}

	if err := h.svc.DeleteActivity(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
