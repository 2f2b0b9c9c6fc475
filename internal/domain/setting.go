package domain

import "context"

// Configuration keys read by the admin interface.
const (
	SettingRequiredCredits     = "creditos_a_completar"
	SettingControlNumberLength = "numero_control_length"
)

// Setting is a key-value system configuration entry.
type Setting struct {
	Name  string `json:"config_nombre"`
	Value string `json:"config_valor"`
}

// SearchFields returns the values matched by the configuration search box.
func (s Setting) SearchFields() []string {
	return []string{s.Name, s.Value}
}

// SettingRepository defines the data access interface for configuration entries.
type SettingRepository interface {
	List(ctx context.Context) ([]Setting, error)
	Get(ctx context.Context, name string) (*Setting, error)
	Create(ctx context.Context, s Setting) (*Setting, error)
	Update(ctx context.Context, name, value string) (*Setting, error)
	Delete(ctx context.Context, name string) error
}

// SettingService defines the business logic interface for configuration entries.
type SettingService interface {
	ListSettings(ctx context.Context) ([]Setting, error)
	GetSetting(ctx context.Context, name string) (*Setting, error)
	CreateSetting(ctx context.Context, name, value string) (*Setting, error)
	UpdateSetting(ctx context.Context, name, value string) (*Setting, error)
	DeleteSetting(ctx context.Context, name string) error
}
