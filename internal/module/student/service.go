package student

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// studentService implements domain.StudentService.
type studentService struct {
	repo     domain.StudentRepository
	settings domain.SettingRepository
}

// NewStudentService creates a new StudentService. settings supplies the
// expected control number length.
func NewStudentService(repo domain.StudentRepository, settings domain.SettingRepository) domain.StudentService {
	return &studentService{repo: repo, settings: settings}
}

// ListStudents returns every student known to the backend.
func (s *studentService) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return s.repo.List(ctx)
}

// GetStudent looks a student up in the full list; the backend has no
// single-student endpoint.
func (s *studentService) GetStudent(ctx context.Context, id uint) (*domain.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			st := students[i]
			return &st, nil
		}
	}
	return nil, domain.NewAppError(domain.CodeNotFound, "student not found", nil)
}

// CreateStudent validates the input and creates the student.
func (s *studentService) CreateStudent(ctx context.Context, in domain.StudentInput) (*domain.Student, error) {
	in = normalize(in)
	if err := validate(in, s.ControlNumberLength(ctx)); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

// UpdateStudent validates the input and replaces the student's fields.
func (s *studentService) UpdateStudent(ctx context.Context, id uint, in domain.StudentInput) (*domain.Student, error) {
	in = normalize(in)
	if err := validate(in, s.ControlNumberLength(ctx)); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in)
}

// DeleteStudent removes a student by ID.
func (s *studentService) DeleteStudent(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ControlNumberLength reads numero_control_length, falling back to
// domain.DefaultControlNumberLength when it is missing or invalid.
func (s *studentService) ControlNumberLength(ctx context.Context) int {
	if s.settings == nil {
		return domain.DefaultControlNumberLength
	}
	setting, err := s.settings.Get(ctx, domain.SettingControlNumberLength)
	if err != nil {
		return domain.DefaultControlNumberLength
	}
	return domain.ParsePositiveInt(setting.Value, domain.DefaultControlNumberLength)
}

func normalize(in domain.StudentInput) domain.StudentInput {
	return domain.StudentInput{
		ControlNumber: strings.TrimSpace(in.ControlNumber),
		Names:         strings.TrimSpace(in.Names),
		Surnames:      strings.TrimSpace(in.Surnames),
	}
}

// validate checks a normalized input against the control number length.
func validate(in domain.StudentInput, length int) error {
	if in.Names == "" {
		return domain.NewAppError(domain.CodeValidation, "names are required", nil)
	}
	if in.Surnames == "" {
		return domain.NewAppError(domain.CodeValidation, "surnames are required", nil)
	}
	if in.ControlNumber == "" {
		return domain.NewAppError(domain.CodeValidation, "control number is required", nil)
	}
	if utf8.RuneCountInString(in.ControlNumber) != length {
		return domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("control number must be exactly %d characters", length), nil)
	}
	return nil
}
