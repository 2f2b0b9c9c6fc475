package domain

import "context"

// DefaultControlNumberLength is used when numero_control_length is missing or invalid.
const DefaultControlNumberLength = 9

// Student is a student record as served by the backend.
type Student struct {
	ID            uint   `json:"id"`
	ControlNumber string `json:"nctrl"`
	Names         string `json:"nombres"`
	Surnames      string `json:"apellidos"`
}

// SearchFields returns the values matched by the student search box.
func (s Student) SearchFields() []string {
	return []string{s.ControlNumber, s.Names, s.Surnames}
}

// StudentInput carries the writable fields of a student.
type StudentInput struct {
	ControlNumber string `json:"nctrl"`
	Names         string `json:"nombres"`
	Surnames      string `json:"apellidos"`
}

// StudentRepository defines the data access interface for students.
type StudentRepository interface {
	List(ctx context.Context) ([]Student, error)
	Create(ctx context.Context, in StudentInput) (*Student, error)
	Update(ctx context.Context, id uint, in StudentInput) (*Student, error)
	Delete(ctx context.Context, id uint) error
}

// StudentService defines the business logic interface for students.
type StudentService interface {
	ListStudents(ctx context.Context) ([]Student, error)
	GetStudent(ctx context.Context, id uint) (*Student, error)
	CreateStudent(ctx context.Context, in StudentInput) (*Student, error)
	UpdateStudent(ctx context.Context, id uint, in StudentInput) (*Student, error)
	DeleteStudent(ctx context.Context, id uint) error
	ControlNumberLength(ctx context.Context) int
}
