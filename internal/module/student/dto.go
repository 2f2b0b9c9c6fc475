package student

import "github.com/itl-creditos/creditos-admin/internal/domain"

// StudentRequest represents the input for creating or updating a student.
type StudentRequest struct {
	ControlNumber string `json:"nctrl" form:"nctrl" binding:"required"`
	Names         string `json:"nombres" form:"nombres" binding:"required,max=150"`
	Surnames      string `json:"apellidos" form:"apellidos" binding:"required,max=150"`
}

func (r StudentRequest) input() domain.StudentInput {
	return domain.StudentInput{
		ControlNumber: r.ControlNumber,
		Names:         r.Names,
		Surnames:      r.Surnames,
	}
}

// student rebuilds the record shown by a form that failed to submit.
func (r StudentRequest) student(id uint) *domain.Student {
	return &domain.Student{
		ID:            id,
		ControlNumber: r.ControlNumber,
		Names:         r.Names,
		Surnames:      r.Surnames,
	}
}
