package credit

import (
	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// CreditHandler handles REST API requests for the credit resource.
type CreditHandler struct {
	svc      domain.CreditService
	pageSize int
}

// NewCreditHandler creates a new CreditHandler with the given service.
func NewCreditHandler(svc domain.CreditService, pageSize int) *CreditHandler {
	return &CreditHandler{svc: svc, pageSize: pageSize}
}

// Create handles POST /api/v1/credits.
func (h *CreditHandler) Create(c *gin.Context) {
	var req CreditRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	credit, err := h.svc.CreateCredit(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, credit)
}

// Get handles GET /api/v1/credits/:id.
func (h *CreditHandler) Get(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid credit id", nil))
		return
	}

	credit, err := h.svc.GetCredit(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, credit)
}

// List handles GET /api/v1/credits.
func (h *CreditHandler) List(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	credits, err := h.svc.ListCredits(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, listing.Reduce(credits, state))
}

// ListByStudent handles GET /api/v1/students/:id/credits.
func (h *CreditHandler) ListByStudent(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid student id", nil))
		return
	}
	state := pkg.ParseListState(c, h.pageSize)

	credits, err := h.svc.ListStudentCredits(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, listing.Reduce(credits, state))
}

// Update handles PUT /api/v1/credits/:id.
func (h *CreditHandler) Update(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid credit id", nil))
		return
	}

	var req CreditRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	credit, err := h.svc.UpdateCredit(c.Request.Context(), id, req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, credit)
}

// Delete handles DELETE /api/v1/credits/:id.
func (h *CreditHandler) Delete(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid credit id", nil))
		return
	}

	if err := h.svc.DeleteCredit(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
