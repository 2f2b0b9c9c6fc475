package backend

import (
	"context"
	"net/url"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

const settingsPath = "/api/configuracion"

// SettingRepository serves configuration entries from the backend.
type SettingRepository struct {
	client *Client
}

// NewSettingRepository creates a SettingRepository.
func NewSettingRepository(c *Client) *SettingRepository {
	return &SettingRepository{client: c}
}

var _ domain.SettingRepository = (*SettingRepository)(nil)

func settingPath(name string) string {
	return settingsPath + "/" + url.PathEscape(name)
}

// List returns every configuration entry.
func (r *SettingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	var out []domain.Setting
	if err := r.client.get(ctx, settingsPath, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// Get returns the entry called name.
func (r *SettingRepository) Get(ctx context.Context, name string) (*domain.Setting, error) {
	var out domain.Setting
	if err := r.client.get(ctx, settingPath(name), &out); err != nil {
		return nil, notFound(err, "setting not found")
	}
	if out.Name == "" {
		return nil, domain.NewAppError(domain.CodeNotFound, "setting not found", nil)
	}
	return &out, nil
}

// Create adds a configuration entry.
func (r *SettingRepository) Create(ctx context.Context, s domain.Setting) (*domain.Setting, error) {
	var out domain.Setting
	if err := r.client.post(ctx, settingsPath, s, &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		out = s
	}
	return &out, nil
}

// Update changes the value of name; the name itself is immutable.
func (r *SettingRepository) Update(ctx context.Context, name, value string) (*domain.Setting, error) {
	in := domain.Setting{Name: name, Value: value}
	var out domain.Setting
	if err := r.client.put(ctx, settingPath(name), in, &out); err != nil {
		return nil, notFound(err, "setting not found")
	}
	if out.Name == "" {
		out = in
	}
	return &out, nil
}

// Delete removes the entry called name.
func (r *SettingRepository) Delete(ctx context.Context, name string) error {
	return notFound(r.client.delete(ctx, settingPath(name)), "setting not found")
}
