package setting

import (
	"context"
	"strings"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// settingService implements domain.SettingService.
type settingService struct {
	repo domain.SettingRepository
}

// NewSettingService creates a new SettingService with the given repository.
func NewSettingService(repo domain.SettingRepository) domain.SettingService {
	return &settingService{repo: repo}
}

// ListSettings returns every configuration entry.
func (s *settingService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	return s.repo.List(ctx)
}

// GetSetting retrieves a configuration entry by name.
func (s *settingService) GetSetting(ctx context.Context, name string) (*domain.Setting, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errNameRequired
	}
	return s.repo.Get(ctx, name)
}

// CreateSetting trims and validates name and value, then creates the entry.
func (s *settingService) CreateSetting(ctx context.Context, name, value string) (*domain.Setting, error) {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	if name == "" {
		return nil, errNameRequired
	}
	if value == "" {
		return nil, errValueRequired
	}
	return s.repo.Create(ctx, domain.Setting{Name: name, Value: value})
}

// UpdateSetting replaces the value of an existing entry. Names are immutable.
func (s *settingService) UpdateSetting(ctx context.Context, name, value string) (*domain.Setting, error) {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	if name == "" {
		return nil, errNameRequired
	}
	if value == "" {
		return nil, errValueRequired
	}
	return s.repo.Update(ctx, name, value)
}

// DeleteSetting removes an entry by name.
func (s *settingService) DeleteSetting(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errNameRequired
	}
	return s.repo.Delete(ctx, name)
}

var (
	errNameRequired  = domain.NewAppError(domain.CodeValidation, "setting name is required", nil)
	errValueRequired = domain.NewAppError(domain.CodeValidation, "setting value is required", nil)
)
