package domain

import "context"

// Credit is a credit granted to a student for an activity.
type Credit struct {
	ID         uint      `json:"id"`
	StudentID  uint      `json:"alumno_id"`
	ActivityID uint      `json:"actividad_id"`
	Value      int       `json:"creditos"`
	Student    *Student  `json:"alumno,omitempty"`
	Activity   *Activity `json:"actividad,omitempty"`
}

// SearchFields returns the values matched by the credits search box.
func (c Credit) SearchFields() []string {
	fields := make([]string, 0, 4)
	if c.Student != nil {
		fields = append(fields, c.Student.SearchFields()...)
	}
	if c.Activity != nil {
		fields = append(fields, c.Activity.Name)
	}
	return fields
}

// CreditInput carries the writable fields of a credit.
type CreditInput struct {
	ID         uint `json:"id,omitempty"`
	StudentID  uint `json:"alumno_id"`
	ActivityID uint `json:"actividad_id"`
	Value      int  `json:"creditos"`
}

// CreditRepository defines the data access interface for credits.
type CreditRepository interface {
	List(ctx context.Context) ([]Credit, error)
	Get(ctx context.Context, id uint) (*Credit, error)
	ListByStudent(ctx context.Context, studentID uint) ([]Credit, error)
	Create(ctx context.Context, in CreditInput) (*Credit, error)
	Update(ctx context.Context, in CreditInput) (*Credit, error)
	Delete(ctx context.Context, id uint) error
}

// CreditService defines the business logic interface for credits.
type CreditService interface {
	ListCredits(ctx context.Context) ([]Credit, error)
	GetCredit(ctx context.Context, id uint) (*Credit, error)
	ListStudentCredits(ctx context.Context, studentID uint) ([]Credit, error)
	CreateCredit(ctx context.Context, in CreditInput) (*Credit, error)
	UpdateCredit(ctx context.Context, id uint, in CreditInput) (*Credit, error)
	DeleteCredit(ctx context.Context, id uint) error
}
