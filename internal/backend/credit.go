package backend

import (
	"context"
	"fmt"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

const creditsPath = "/api/creditos"

// CreditRepository serves granted credits from the backend.
type CreditRepository struct {
	client *Client
}

// NewCreditRepository creates a CreditRepository.
func NewCreditRepository(c *Client) *CreditRepository {
	return &CreditRepository{client: c}
}

var _ domain.CreditRepository = (*CreditRepository)(nil)

// List returns every credit (GET /api/creditos/all).
func (r *CreditRepository) List(ctx context.Context) ([]domain.Credit, error) {
	var out []domain.Credit
	if err := r.client.get(ctx, creditsPath+"/all", &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// Get returns one credit by id.
func (r *CreditRepository) Get(ctx context.Context, id uint) (*domain.Credit, error) {
	var out domain.Credit
	if err := r.client.get(ctx, fmt.Sprintf("%s/%d", creditsPath, id), &out); err != nil {
		return nil, notFound(err, "credit not found")
	}
	return &out, nil
}

// ListByStudent returns the credits of one student (GET /api/creditos/alumno/{id}).
func (r *CreditRepository) ListByStudent(ctx context.Context, studentID uint) ([]domain.Credit, error) {
	var out []domain.Credit
	if err := r.client.get(ctx, fmt.Sprintf("%s/alumno/%d", creditsPath, studentID), &out); err != nil {
		return nil, notFound(err, "student not found")
	}
	return nonNil(out), nil
}

// Create records a credit for a student and activity.
func (r *CreditRepository) Create(ctx context.Context, in domain.CreditInput) (*domain.Credit, error) {
	in.ID = 0
	var out domain.Credit
	if err := r.client.post(ctx, creditsPath+"/create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update is a POST carrying the id in the body.
func (r *CreditRepository) Update(ctx context.Context, in domain.CreditInput) (*domain.Credit, error) {
	var out domain.Credit
	if err := r.client.post(ctx, creditsPath+"/update", in, &out); err != nil {
		return nil, notFound(err, "credit not found")
	}
	return &out, nil
}

// Delete removes a credit by id; a 404 maps to domain.CodeNotFound.
func (r *CreditRepository) Delete(ctx context.Context, id uint) error {
	return notFound(r.client.delete(ctx, fmt.Sprintf("%s/delete/%d", creditsPath, id)), "credit not found")
}
