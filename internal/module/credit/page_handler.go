package credit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/middleware"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

const listURL = "/credits"

// CreditPageHandler handles page rendering and htmx endpoints for the credit module.
type CreditPageHandler struct {
	svc        domain.CreditService
	students   domain.StudentRepository
	activities domain.ActivityRepository
	pageSize   int
}

// NewCreditPageHandler creates a new CreditPageHandler. students and
// activities fill the form selects.
func NewCreditPageHandler(
	svc domain.CreditService,
	students domain.StudentRepository,
	activities domain.ActivityRepository,
	pageSize int,
) *CreditPageHandler {
	return &CreditPageHandler{svc: svc, students: students, activities: activities, pageSize: pageSize}
}

// ListPage renders granted credits. ?student=ID narrows the list to one student.
// GET /credits
func (h *CreditPageHandler) ListPage(c *gin.Context) {
	ctx := c.Request.Context()
	state := pkg.ParseListState(c, h.pageSize)

	data := gin.H{
		"BaseURL":   listURL,
		"PageSizes": listing.PageSizes,
		"CSRFToken": middleware.CSRFToken(c),
	}

	var (
		credits []domain.Credit
		err     error
	)
	if c.Query("student") != "" {
		studentID, ok := pkg.ParseQueryID(c, "student")
		if !ok {
			c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
			return
		}
		data["StudentID"] = studentID
		data["BaseURL"] = fmt.Sprintf("%s?student=%d", listURL, studentID)
		credits, err = h.svc.ListStudentCredits(ctx, studentID)
	} else {
		credits, err = h.svc.ListCredits(ctx)
	}
	if err != nil {
		slog.WarnContext(ctx, "list credits failed", slog.Any("error", err))
		data["Error"] = "Error al cargar los créditos"
		credits = []domain.Credit{}
	}
	data["Page"] = listing.Reduce(credits, state)

	c.HTML(http.StatusOK, "credit/list.html", data)
}

// NewPage renders the grant credit form. ?student=ID preselects the student.
// GET /credits/new
func (h *CreditPageHandler) NewPage(c *gin.Context) {
	var form *domain.Credit
	if id, ok := pkg.ParseQueryID(c, "student"); ok {
		form = &domain.Credit{StudentID: id}
	}
	h.renderForm(c, form, false, "", nil)
}

// EditPage renders the edit credit form.
// GET /credits/:id/edit
func (h *CreditPageHandler) EditPage(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	credit, err := h.svc.GetCredit(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
			return
		}
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	h.renderForm(c, credit, true, "", nil)
}

// CreateHTMX handles credit creation via htmx form submission.
// POST /credits
func (h *CreditPageHandler) CreateHTMX(c *gin.Context) {
	var req CreditRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("create credit: bind error", "error", err)
		h.renderForm(c, req.credit(0), false, "Revisa los campos marcados", pkg.FieldErrors(err, &req))
		return
	}

	if _, err := h.svc.CreateCredit(c.Request.Context(), req.input()); err != nil {
		h.renderForm(c, req.credit(0), false, pkg.SafeMessage(err, "Error al registrar el crédito"), nil)
		return
	}

	pkg.ShowToast(c, "Crédito registrado exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, listURL)
	c.Status(http.StatusOK)
}

// UpdateHTMX handles credit update via htmx form submission.
// PUT /credits/:id
func (h *CreditPageHandler) UpdateHTMX(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	var req CreditRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("update credit: bind error", "error", err, "id", id)
		h.renderForm(c, req.credit(id), true, "Revisa los campos marcados", pkg.FieldErrors(err, &req))
		return
	}

	if _, err := h.svc.UpdateCredit(c.Request.Context(), id, req.input()); err != nil {
		h.renderForm(c, req.credit(id), true, pkg.SafeMessage(err, "Error al actualizar el crédito"), nil)
		return
	}

	pkg.ShowToast(c, "Crédito actualizado exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, listURL)
	c.Status(http.StatusOK)
}

// DeleteHTMX handles credit deletion via htmx.
// DELETE /credits/:id
func (h *CreditPageHandler) DeleteHTMX(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.HXFail(c, "ID de crédito inválido")
		return
	}

	if err := h.svc.DeleteCredit(c.Request.Context(), id); err != nil {
		pkg.HXFail(c, pkg.SafeMessage(err, "Error al eliminar el crédito"))
		return
	}

	pkg.ShowToast(c, "Crédito eliminado exitosamente", pkg.ToastSuccess)
	c.Status(http.StatusOK)
}

func (h *CreditPageHandler) renderForm(c *gin.Context, credit *domain.Credit, isEdit bool, msg string, fields map[string]string) {
	ctx := c.Request.Context()
	c.HTML(http.StatusOK, "credit/form.html", gin.H{
		"Credit":      credit,
		"IsEdit":      isEdit,
		"Error":       msg,
		"FieldErrors": fields,
		"Students":    h.studentOptions(ctx),
		"Activities":  h.activityOptions(ctx),
		"CSRFToken":   middleware.CSRFToken(c),
	})
}

func (h *CreditPageHandler) studentOptions(ctx context.Context) []domain.Student {
	if h.students == nil {
		return []domain.Student{}
	}
	students, err := h.students.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "load student options failed", slog.Any("error", err))
		return []domain.Student{}
	}
	return students
}

func (h *CreditPageHandler) activityOptions(ctx context.Context) []domain.Activity {
	if h.activities == nil {
		return []domain.Activity{}
	}
	activities, err := h.activities.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "load activity options failed", slog.Any("error", err))
		return []domain.Activity{}
	}
	return activities
}
