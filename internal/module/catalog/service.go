package catalog

import (
	"context"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// service implements domain.CatalogService for one Kind.
type service[T domain.CatalogItem] struct {
	kind Kind[T]
	repo domain.CatalogRepository[T]
}

// NewService creates a CatalogService for kind backed by repo.
func NewService[T domain.CatalogItem](kind Kind[T], repo domain.CatalogRepository[T]) domain.CatalogService[T] {
	return &service[T]{kind: kind, repo: repo}
}

func (s *service[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Get scans the full list; the backend has no single-item endpoint.
func (s *service[T]) Get(ctx context.Context, id uint) (*T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ItemID() == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, domain.NewAppError(domain.CodeNotFound, s.kind.Entity+" not found", nil)
}

func (s *service[T]) Create(ctx context.Context, item T) (*T, error) {
	item, err := s.normalize(item)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, item)
}

func (s *service[T]) Update(ctx context.Context, id uint, item T) (*T, error) {
	item, err := s.normalize(item)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, item)
}

func (s *service[T]) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service[T]) normalize(item T) (T, error) {
	if s.kind.Normalize == nil {
		return item, nil
	}
	return s.kind.Normalize(item)
}
