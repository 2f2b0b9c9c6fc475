package home

import (
	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// ReportHandler handles REST API requests for the credit report.
type ReportHandler struct {
	svc      domain.ReportService
	pageSize int
}

// NewReportHandler creates a new ReportHandler. pageSize is the default page
// size of listings; invalid sizes fall back to listing.DefaultPageSize.
func NewReportHandler(svc domain.ReportService, pageSize int) *ReportHandler {
	return &ReportHandler{svc: svc, pageSize: pageSize}
}

// List handles GET /api/v1/reports.
func (h *ReportHandler) List(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	ov := h.svc.Overview(c.Request.Context())
	page := listing.Reduce(ov.Records, state)

	pkg.List(c, newReportListResponse(ov, page))
}

// Get handles GET /api/v1/reports/:id.
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid student id", nil))
		return
	}

	rec, required, err := h.svc.Record(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newReportDetailResponse(rec, required))
}
