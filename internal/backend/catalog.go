package backend

import (
	"context"
	"fmt"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// Resource is a CRUD resource laid out as {base}/all, {base}/create,
// {base}/update/{id} and {base}/delete/{id}.
type Resource[T domain.CatalogItem] struct {
	client *Client
	base   string
	name   string
}

// NewTeacherRepository serves /api/docente.
func NewTeacherRepository(c *Client) *Resource[domain.Teacher] {
	return &Resource[domain.Teacher]{client: c, base: "/api/docente", name: "teacher"}
}

// NewPeriodRepository serves /api/periodo.
func NewPeriodRepository(c *Client) *Resource[domain.Period] {
	return &Resource[domain.Period]{client: c, base: "/api/periodo", name: "period"}
}

// NewUserRepository serves /api/usuario.
func NewUserRepository(c *Client) *Resource[domain.User] {
	return &Resource[domain.User]{client: c, base: "/api/usuario", name: "user"}
}

var (
	_ domain.CatalogRepository[domain.Teacher] = (*Resource[domain.Teacher])(nil)
	_ domain.CatalogRepository[domain.Period]  = (*Resource[domain.Period])(nil)
	_ domain.CatalogRepository[domain.User]    = (*Resource[domain.User])(nil)
)

// List returns every item of the resource.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.get(ctx, r.base+"/all", &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// Create adds an item.
func (r *Resource[T]) Create(ctx context.Context, item T) (*T, error) {
	var out T
	if err := r.client.post(ctx, r.base+"/create", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the item with the given id.
func (r *Resource[T]) Update(ctx context.Context, id uint, item T) (*T, error) {
	var out T
	if err := r.client.put(ctx, fmt.Sprintf("%s/update/%d", r.base, id), item, &out); err != nil {
		return nil, notFound(err, r.name+" not found")
	}
	return &out, nil
}

// Delete removes an item by id; a 404 maps to domain.CodeNotFound.
func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	return notFound(r.client.delete(ctx, fmt.Sprintf("%s/delete/%d", r.base, id)), r.name+" not found")
}
