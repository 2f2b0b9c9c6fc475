package backend

import (
	"context"
	"fmt"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

const activitiesPath = "/api/actividades"

// ActivityRepository serves activities from the backend.
type ActivityRepository struct {
	client *Client
}

// NewActivityRepository creates an ActivityRepository.
func NewActivityRepository(c *Client) *ActivityRepository {
	return &ActivityRepository{client: c}
}

var _ domain.ActivityRepository = (*ActivityRepository)(nil)

// List returns every activity with its teacher and period (GET /api/actividades/all).
func (r *ActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	var out []domain.Activity
	if err := r.client.get(ctx, activitiesPath+"/all", &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// Get returns one activity by id.
func (r *ActivityRepository) Get(ctx context.Context, id uint) (*domain.Activity, error) {
	var out domain.Activity
	if err := r.client.get(ctx, fmt.Sprintf("%s/%d", activitiesPath, id), &out); err != nil {
		return nil, notFound(err, "activity not found")
	}
	return &out, nil
}

// Create adds an activity (POST /api/actividades/create).
func (r *ActivityRepository) Create(ctx context.Context, in domain.ActivityInput) (*domain.Activity, error) {
	in.ID = 0
	var out domain.Activity
	if err := r.client.post(ctx, activitiesPath+"/create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends the full activity; the backend reads the id from the body.
func (r *ActivityRepository) Update(ctx context.Context, in domain.ActivityInput) (*domain.Activity, error) {
	var out domain.Activity
	if err := r.client.post(ctx, activitiesPath+"/update", in, &out); err != nil {
		return nil, notFound(err, "activity not found")
	}
	return &out, nil
}

// Delete removes an activity by id; a 404 maps to domain.CodeNotFound.
func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	return notFound(r.client.delete(ctx, fmt.Sprintf("%s/delete/%d", activitiesPath, id)), "activity not found")
}
