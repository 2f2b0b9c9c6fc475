package backend

import (
	"context"
	"fmt"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

const studentsPath = "/api/alumno"

// StudentRepository serves students and the credit report from the backend.
type StudentRepository struct {
	client *Client
}

// NewStudentRepository creates a StudentRepository.
func NewStudentRepository(c *Client) *StudentRepository {
	return &StudentRepository{client: c}
}

var (
	_ domain.StudentRepository = (*StudentRepository)(nil)
	_ domain.ReportRepository  = (*StudentRepository)(nil)
)

// List returns every student (GET /api/alumno/all).
func (r *StudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	var out []domain.Student
	if err := r.client.get(ctx, studentsPath+"/all", &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// CreditReports returns one aggregate per student, in backend order.
func (r *StudentRepository) CreditReports(ctx context.Context) ([]domain.CreditReport, error) {
	var out []domain.CreditReport
	if err := r.client.get(ctx, studentsPath+"/creditos-report", &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// Create registers a student (POST /api/alumno/create).
func (r *StudentRepository) Create(ctx context.Context, in domain.StudentInput) (*domain.Student, error) {
	var out domain.Student
	if err := r.client.post(ctx, studentsPath+"/create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the student with the given id (PUT /api/alumno/update/{id}).
func (r *StudentRepository) Update(ctx context.Context, id uint, in domain.StudentInput) (*domain.Student, error) {
	var out domain.Student
	if err := r.client.put(ctx, fmt.Sprintf("%s/update/%d", studentsPath, id), in, &out); err != nil {
		return nil, notFound(err, "student not found")
	}
	if out.ID == 0 {
		out = domain.Student{ID: id, ControlNumber: in.ControlNumber, Names: in.Names, Surnames: in.Surnames}
	}
	return &out, nil
}

// Delete removes a student by id; a 404 maps to domain.CodeNotFound.
func (r *StudentRepository) Delete(ctx context.Context, id uint) error {
	return notFound(r.client.delete(ctx, fmt.Sprintf("%s/delete/%d", studentsPath, id)), "student not found")
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
