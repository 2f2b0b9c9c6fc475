package credit

import (
	"context"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// creditService implements domain.CreditService.
type creditService struct {
	repo domain.CreditRepository
}

// NewCreditService creates a new CreditService.
func NewCreditService(repo domain.CreditRepository) domain.CreditService {
	return &creditService{repo: repo}
}

// ListCredits returns every granted credit.
func (s *creditService) ListCredits(ctx context.Context) ([]domain.Credit, error) {
	return s.repo.List(ctx)
}

// GetCredit returns one credit by ID.
func (s *creditService) GetCredit(ctx context.Context, id uint) (*domain.Credit, error) {
	return s.repo.Get(ctx, id)
}

// ListStudentCredits returns the credits granted to one student.
func (s *creditService) ListStudentCredits(ctx context.Context, studentID uint) ([]domain.Credit, error) {
	if studentID == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "student is required", nil)
	}
	return s.repo.ListByStudent(ctx, studentID)
}

// CreateCredit validates the input and grants the credit.
func (s *creditService) CreateCredit(ctx context.Context, in domain.CreditInput) (*domain.Credit, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	in.ID = 0
	return s.repo.Create(ctx, in)
}

// UpdateCredit validates the input and replaces the credit with the given ID.
func (s *creditService) UpdateCredit(ctx context.Context, id uint, in domain.CreditInput) (*domain.Credit, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	in.ID = id
	return s.repo.Update(ctx, in)
}

// DeleteCredit removes a credit by ID.
func (s *creditService) DeleteCredit(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validate(in domain.CreditInput) error {
	switch {
	case in.StudentID == 0:
		return domain.NewAppError(domain.CodeValidation, "student is required", nil)
	case in.ActivityID == 0:
		return domain.NewAppError(domain.CodeValidation, "activity is required", nil)
	case in.Value <= 0:
		return domain.NewAppError(domain.CodeValidation, "credits must be greater than 0", nil)
	}
	return nil
}
