package domain

import "context"

// Teacher is a teacher responsible for activities.
type Teacher struct {
	ID       uint   `json:"id"`
	Names    string `json:"nombre"`
	Surnames string `json:"apellidos"`
}

// ItemID returns the teacher's ID.
func (t Teacher) ItemID() uint { return t.ID }

// SearchFields returns the values matched by the teacher search box.
func (t Teacher) SearchFields() []string {
	return []string{t.Names, t.Surnames}
}

// Period is an academic period activities belong to.
type Period struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

// ItemID returns the period's ID.
func (p Period) ItemID() uint { return p.ID }

// SearchFields returns the values matched by the period search box.
func (p Period) SearchFields() []string {
	return []string{p.Name}
}

// User is an account of the admin interface. Credentials and roles are
// managed by the backend.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"usuario"`
	Role     string `json:"rol"`
}

// ItemID returns the user's ID.
func (u User) ItemID() uint { return u.ID }

// SearchFields returns the values matched by the user search box.
func (u User) SearchFields() []string {
	return []string{u.Username, u.Role}
}

// CatalogItem is implemented by the entities served by the catalog panels.
type CatalogItem interface {
	Teacher | Period | User
	ItemID() uint
	SearchFields() []string
}

// CatalogRepository defines the data access interface for a catalog resource.
type CatalogRepository[T CatalogItem] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id uint, item T) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// CatalogService defines the business logic interface for a catalog resource.
type CatalogService[T CatalogItem] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id uint, item T) (*T, error)
	Delete(ctx context.Context, id uint) error
}
