package credit

import "github.com/itl-creditos/creditos-admin/internal/domain"

// CreditRequest represents the input for granting or updating a credit.
type CreditRequest struct {
	StudentID  uint `json:"alumno_id" form:"alumno_id" binding:"required"`
	ActivityID uint `json:"actividad_id" form:"actividad_id" binding:"required"`
	Value      int  `json:"creditos" form:"creditos" binding:"required,gt=0,max=20"`
}

func (r CreditRequest) input() domain.CreditInput {
	return domain.CreditInput{
		StudentID:  r.StudentID,
		ActivityID: r.ActivityID,
		Value:      r.Value,
	}
}

// credit rebuilds the record shown by a form that failed to submit.
func (r CreditRequest) credit(id uint) *domain.Credit {
	return &domain.Credit{
		ID:         id,
		StudentID:  r.StudentID,
		ActivityID: r.ActivityID,
		Value:      r.Value,
	}
}
