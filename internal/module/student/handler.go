package student

import (
	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// StudentHandler handles REST API requests for the student resource.
type StudentHandler struct {
	svc      domain.StudentService
	pageSize int
}

// NewStudentHandler creates a new StudentHandler with the given service.
func NewStudentHandler(svc domain.StudentService, pageSize int) *StudentHandler {
	return &StudentHandler{svc: svc, pageSize: pageSize}
}

// Create handles POST /api/v1/students.
func (h *StudentHandler) Create(c *gin.Context) {
	var req StudentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	student, err := h.svc.CreateStudent(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, student)
}

// Get handles GET /api/v1/students/:id.
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid student id", nil))
		return
	}

	student, err := h.svc.GetStudent(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, student)
}

// List handles GET /api/v1/students.
func (h *StudentHandler) List(c *gin.Context) {
	state := pkg.ParseListState(c, h.pageSize)

	students, err := h.svc.ListStudents(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, listing.Reduce(students, state))
}

// Update handles PUT /api/v1/students/:id.
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid student id", nil))
		return
	}

	var req StudentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	student, err := h.svc.UpdateStudent(c.Request.Context(), id, req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, student)
}

// Delete handles DELETE /api/v1/students/:id.
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pkg.ParseID(c, "id")
	if !ok {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid student id", nil))
		return
	}

	if err := h.svc.DeleteStudent(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
