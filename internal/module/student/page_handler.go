package student

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/middleware"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

const listURL = "/students"

// StudentPageHandler handles page rendering and htmx endpoints for the student module.
type StudentPageHandler struct {
	svc      domain.StudentService
	pageSize int
}

// NewStudentPageHandler creates a new StudentPageHandler with the given service.
func NewStudentPageHandler(svc domain.StudentService, pageSize int) *StudentPageHandler {
	return &StudentPageHandler{svc: svc, pageSize: pageSize}
}

// ListPage renders the student list with search and pagination.
// GET /students
func (h *StudentPageHandler) ListPage(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	data := gin.H{
		"BaseURL":   listURL,
		"PageSizes": listing.PageSizes,
		"CSRFToken": middleware.CSRFToken(c),
	}

	students, err := h.svc.ListStudents(c.Request.Context())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "list students failed", slog.Any("error", err))
		data["Error"] = "Error al cargar los alumnos"
		students = []domain.Student{}
	}
	data["Page"] = listing.Reduce(students, state)

	c.HTML(http.StatusOK, "student/list.html", data)
}

// NewPage renders the new student form.
// GET /students/new
func (h *StudentPageHandler) NewPage(c *gin.Context) {
	h.renderForm(c, nil, false, "", nil)
}

// EditPage renders the edit student form.
// GET /students/:id/edit
func (h *StudentPageHandler) EditPage(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	student, err := h.svc.GetStudent(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
			return
		}
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	h.renderForm(c, student, true, "", nil)
}

// CreateHTMX handles student creation via htmx form submission.
// POST /students
func (h *StudentPageHandler) CreateHTMX(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("create student: bind error", "error", err)
		h.renderForm(c, req.student(0), false, "Revisa los campos marcados", pkg.FieldErrors(err, &req))
		return
	}

	if _, err := h.svc.CreateStudent(c.Request.Context(), req.input()); err != nil {
		h.renderForm(c, req.student(0), false, pkg.SafeMessage(err, "Error al guardar el alumno"), nil)
		return
	}

	pkg.ShowToast(c, "Alumno creado exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, listURL)
	c.Status(http.StatusOK)
}

// UpdateHTMX handles student update via htmx form submission.
// PUT /students/:id
func (h *StudentPageHandler) UpdateHTMX(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		c.HTML(http.StatusBadRequest, "errors/400.html", gin.H{})
		return
	}

	var req StudentRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("update student: bind error", "error", err, "id", id)
		h.renderForm(c, req.student(id), true, "Revisa los campos marcados", pkg.FieldErrors(err, &req))
		return
	}

	if _, err := h.svc.UpdateStudent(c.Request.Context(), id, req.input()); err != nil {
		h.renderForm(c, req.student(id), true, pkg.SafeMessage(err, "Error al guardar el alumno"), nil)
		return
	}

	pkg.ShowToast(c, "Alumno actualizado exitosamente", pkg.ToastSuccess)
	pkg.HXRedirect(c, listURL)
	c.Status(http.StatusOK)
}

// DeleteHTMX handles student deletion via htmx.
// DELETE /students/:id
func (h *StudentPageHandler) DeleteHTMX(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.HXFail(c, "ID de alumno inválido")
		return
	}

	if err := h.svc.DeleteStudent(c.Request.Context(), id); err != nil {
		pkg.HXFail(c, pkg.SafeMessage(err, "Error al eliminar el alumno"))
		return
	}

	pkg.ShowToast(c, "Alumno eliminado exitosamente", pkg.ToastSuccess)
	c.Status(http.StatusOK)
}

func (h *StudentPageHandler) renderForm(c *gin.Context, student *domain.Student, isEdit bool, msg string, fields map[string]string) {
	c.HTML(http.StatusOK, "student/form.html", gin.H{
		"Student":             student,
		"IsEdit":              isEdit,
		"Error":               msg,
		"FieldErrors":         fields,
		"ControlNumberLength": h.svc.ControlNumberLength(c.Request.Context()),
		"CSRFToken":           middleware.CSRFToken(c),
	})
}
