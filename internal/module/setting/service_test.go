package setting

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// --- mock repository ---

type mockSettingRepo struct {
	values map[string]string
	// hooks for error injection
	listErr   error
	createErr error
	updateErr error
}

func newMockRepo(kv ...string) *mockSettingRepo {
	m := &mockSettingRepo{values: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		m.values[kv[i]] = kv[i+1]
	}
	return m
}

func (m *mockSettingRepo) List(context.Context) ([]domain.Setting, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Setting, 0, len(m.values))
	for k, v := range m.values {
		out = append(out, domain.Setting{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockSettingRepo) Get(_ context.Context, name string) (*domain.Setting, error) {
	v, ok := m.values[name]
	if !ok {
		return nil, domain.NewAppError(domain.CodeNotFound, "setting not found", nil)
	}
	return &domain.Setting{Name: name, Value: v}, nil
}

func (m *mockSettingRepo) Create(_ context.Context, s domain.Setting) (*domain.Setting, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, ok := m.values[s.Name]; ok {
		return nil, domain.NewAppError(domain.CodeAlreadyExists, "setting already exists", nil)
	}
	m.values[s.Name] = s.Value
	return &s, nil
}

func (m *mockSettingRepo) Update(_ context.Context, name, value string) (*domain.Setting, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if _, ok := m.values[name]; !ok {
		return nil, domain.NewAppError(domain.CodeNotFound, "setting not found", nil)
	}
	m.values[name] = value
	return &domain.Setting{Name: name, Value: value}, nil
}

func (m *mockSettingRepo) Delete(_ context.Context, name string) error {
	if _, ok := m.values[name]; !ok {
		return domain.NewAppError(domain.CodeNotFound, "setting not found", nil)
	}
	delete(m.values, name)
	return nil
}

// --- tests ---

func TestCreateSetting(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		errCode int
	}{
		{"success", "creditos_a_completar", "6", false, 0},
		{"trims", "  numero_control_length ", " 9 ", false, 0},
		{"empty name", "   ", "6", true, domain.CodeValidation},
		{"empty value", "creditos_a_completar", "  ", true, domain.CodeValidation},
		{"duplicate", "existing", "1", true, domain.CodeAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo("existing", "x")
			svc := NewSettingService(repo)

			got, err := svc.CreateSetting(context.Background(), tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var appErr *domain.AppError
				if !errors.As(err, &appErr) || appErr.Code != tt.errCode {
					t.Errorf("error = %v; want code %d", err, tt.errCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != "creditos_a_completar" && got.Name != "numero_control_length" {
				t.Errorf("Name = %q; want trimmed key", got.Name)
			}
			if v := repo.values[got.Name]; v != "6" && v != "9" {
				t.Errorf("stored value = %q; want trimmed value", v)
			}
		})
	}
}

func TestUpdateSetting(t *testing.T) {
	repo := newMockRepo("creditos_a_completar", "6")
	svc := NewSettingService(repo)
	ctx := context.Background()

	got, err := svc.UpdateSetting(ctx, "creditos_a_completar", " 8 ")
	if err != nil {
		t.Fatalf("UpdateSetting: %v", err)
	}
	if got.Value != "8" || repo.values["creditos_a_completar"] != "8" {
		t.Errorf("updated = %+v; stored %q", got, repo.values["creditos_a_completar"])
	}

	if _, err := svc.UpdateSetting(ctx, "creditos_a_completar", ""); !domain.IsValidation(err) {
		t.Errorf("empty value: expected validation error, got %v", err)
	}
	if _, err := svc.UpdateSetting(ctx, "", "1"); !domain.IsValidation(err) {
		t.Errorf("empty name: expected validation error, got %v", err)
	}
	if _, err := svc.UpdateSetting(ctx, "missing", "1"); !domain.IsNotFound(err) {
		t.Errorf("missing: expected not found, got %v", err)
	}
}

func TestGetAndDeleteSetting(t *testing.T) {
	repo := newMockRepo("creditos_a_completar", "6")
	svc := NewSettingService(repo)
	ctx := context.Background()

	got, err := svc.GetSetting(ctx, " creditos_a_completar ")
	if err != nil || got.Value != "6" {
		t.Fatalf("GetSetting = %+v, %v", got, err)
	}
	if _, err := svc.GetSetting(ctx, " "); !domain.IsValidation(err) {
		t.Errorf("blank name: expected validation error, got %v", err)
	}

	if err := svc.DeleteSetting(ctx, "creditos_a_completar"); err != nil {
		t.Fatalf("DeleteSetting: %v", err)
	}
	if err := svc.DeleteSetting(ctx, "creditos_a_completar"); !domain.IsNotFound(err) {
		t.Errorf("second delete: expected not found, got %v", err)
	}
	if err := svc.DeleteSetting(ctx, ""); !domain.IsValidation(err) {
		t.Errorf("blank delete: expected validation error, got %v", err)
	}
}

func TestListSettings(t *testing.T) {
	repo := newMockRepo("b", "2", "a", "1")
	svc := NewSettingService(repo)

	got, err := svc.ListSettings(context.Background())
	if err != nil {
		t.Fatalf("ListSettings: %v", err)
	}
	if len(got) != 2 || got[0].Name != "a" {
		t.Errorf("ListSettings = %+v", got)
	}

	repo.listErr = domain.ErrUnavailable
	if _, err := svc.ListSettings(context.Background()); !domain.IsUnavailable(err) {
		t.Errorf("expected unavailable, got %v", err)
	}
}
