package home

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/middleware"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// ReportPageHandler renders the credit report pages.
type ReportPageHandler struct {
	svc      domain.ReportService
	pageSize int
}

// NewReportPageHandler creates a new ReportPageHandler.
func NewReportPageHandler(svc domain.ReportService, pageSize int) *ReportPageHandler {
	return &ReportPageHandler{svc: svc, pageSize: pageSize}
}

// Index renders the credit report as cards or as a table.
// GET /
func (h *ReportPageHandler) Index(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)
	view := parseView(c.Query("view"))

	ov := h.svc.Overview(c.Request.Context())
	page := listing.Reduce(ov.Records, state)

	// Both views share one search and pagination state.
	cardsURL := pkg.ListURL("/", page.State())
	tableURL := pkg.ListURL("/?view="+ViewTable, page.State())
	baseURL := "/"
	if view == ViewTable {
		baseURL = "/?view=" + ViewTable
	}

	c.HTML(http.StatusOK, "home/index.html", gin.H{
		"Items":           newReportItems(page.Items, ov.RequiredCredits),
		"Page":            page,
		"PageSizes":       listing.PageSizes,
		"BaseURL":         baseURL,
		"View":            view,
		"CardsURL":        cardsURL,
		"TableURL":        tableURL,
		"RequiredCredits": ov.RequiredCredits,
		"Stale":           ov.Stale,
		"FetchedAt":       ov.FetchedAt,
		"CSRFToken":       middleware.CSRFToken(c),
	})
}

// Detail renders the detail dialog of one student's report.
// GET /reports/:id
func (h *ReportPageHandler) Detail(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		h.fail(c, http.StatusBadRequest, "errors/400.html", "ID de alumno inválido")
		return
	}

	rec, required, err := h.svc.Record(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			h.fail(c, http.StatusNotFound, "errors/404.html", "No se encontró el reporte del alumno")
			return
		}
		h.fail(c, http.StatusInternalServerError, "errors/500.html", "No se pudo cargar el reporte")
		return
	}

	c.HTML(http.StatusOK, "home/detail.html", gin.H{
		"Report": newReportDetailResponse(rec, required),
	})
}

// fail reports an error as a toast to htmx callers and as an error page otherwise.
func (h *ReportPageHandler) fail(c *gin.Context, status int, page, message string) {
	if pkg.IsHTMX(c) {
		pkg.HXFail(c, message)
		return
	}
	c.HTML(status, page, gin.H{})
}

func parseView(v string) string {
	if v == ViewTable {
		return ViewTable
	}
	return ViewCards
}
