package credit

import (
	"context"
	"errors"
	"testing"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// --- mock repository ---

type mockCreditRepo struct {
	credits map[uint]domain.Credit
	nextID  uint
	last    domain.CreditInput
	listErr error
}

func newMockRepo() *mockCreditRepo {
	ana := &domain.Student{ID: 1, ControlNumber: "201900001", Names: "Ana", Surnames: "Pérez"}
	luis := &domain.Student{ID: 2, ControlNumber: "201900002", Names: "Luis", Surnames: "García"}
	chess := &domain.Activity{ID: 3, Name: "Ajedrez"}
	band := &domain.Activity{ID: 4, Name: "Banda de guerra"}
	return &mockCreditRepo{
		credits: map[uint]domain.Credit{
			1: {ID: 1, StudentID: 1, ActivityID: 3, Value: 1, Student: ana, Activity: chess},
			2: {ID: 2, StudentID: 1, ActivityID: 4, Value: 2, Student: ana, Activity: band},
			3: {ID: 3, StudentID: 2, ActivityID: 4, Value: 2, Student: luis, Activity: band},
		},
		nextID: 4,
	}
}

func (m *mockCreditRepo) List(context.Context) ([]domain.Credit, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Credit, 0, len(m.credits))
	for id := uint(1); id < m.nextID; id++ {
		if cr, ok := m.credits[id]; ok {
			out = append(out, cr)
		}
	}
	return out, nil
}

func (m *mockCreditRepo) Get(_ context.Context, id uint) (*domain.Credit, error) {
	cr, ok := m.credits[id]
	if !ok {
		return nil, domain.NewAppError(domain.CodeNotFound, "credit not found", nil)
	}
	return &cr, nil
}

func (m *mockCreditRepo) ListByStudent(ctx context.Context, studentID uint) ([]domain.Credit, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Credit{}
	for _, cr := range all {
		if cr.StudentID == studentID {
			out = append(out, cr)
		}
	}
	return out, nil
}

func (m *mockCreditRepo) Create(_ context.Context, in domain.CreditInput) (*domain.Credit, error) {
	m.last = in
	cr := domain.Credit{ID: m.nextID, StudentID: in.StudentID, ActivityID: in.ActivityID, Value: in.Value}
	m.credits[cr.ID] = cr
	m.nextID++
	return &cr, nil
}

func (m *mockCreditRepo) Update(_ context.Context, in domain.CreditInput) (*domain.Credit, error) {
	m.last = in
	if _, ok := m.credits[in.ID]; !ok {
		return nil, domain.NewAppError(domain.CodeNotFound, "credit not found", nil)
	}
	cr := domain.Credit{ID: in.ID, StudentID: in.StudentID, ActivityID: in.ActivityID, Value: in.Value}
	m.credits[in.ID] = cr
	return &cr, nil
}

func (m *mockCreditRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.credits[id]; !ok {
		return domain.NewAppError(domain.CodeNotFound, "credit not found", nil)
	}
	delete(m.credits, id)
	return nil
}

// --- tests ---

func TestCreateCredit(t *testing.T) {
	tests := []struct {
		name    string
		in      domain.CreditInput
		wantMsg string
	}{
		{"success", domain.CreditInput{ID: 50, StudentID: 2, ActivityID: 3, Value: 1}, ""},
		{"no student", domain.CreditInput{ActivityID: 3, Value: 1}, "student is required"},
		{"no activity", domain.CreditInput{StudentID: 2, Value: 1}, "activity is required"},
		{"zero value", domain.CreditInput{StudentID: 2, ActivityID: 3}, "credits must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			got, err := NewCreditService(repo).CreateCredit(context.Background(), tt.in)
			if tt.wantMsg != "" {
				var appErr *domain.AppError
				if !errors.As(err, &appErr) || appErr.Code != domain.CodeValidation || appErr.Message != tt.wantMsg {
					t.Fatalf("error = %v; want validation %q", err, tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.last.ID != 0 || got.ID != 4 {
				t.Errorf("sent id %d, got id %d; want 0 and 4", repo.last.ID, got.ID)
			}
		})
	}
}

func TestUpdateCredit(t *testing.T) {
	repo := newMockRepo()
	svc := NewCreditService(repo)
	ctx := context.Background()

	got, err := svc.UpdateCredit(ctx, 2, domain.CreditInput{StudentID: 1, ActivityID: 4, Value: 3})
	if err != nil {
		t.Fatalf("UpdateCredit: %v", err)
	}
	if got.Value != 3 || repo.last.ID != 2 {
		t.Errorf("updated = %+v, sent id %d", got, repo.last.ID)
	}

	if _, err := svc.UpdateCredit(ctx, 9, domain.CreditInput{StudentID: 1, ActivityID: 4, Value: 3}); !domain.IsNotFound(err) {
		t.Errorf("missing: expected not found, got %v", err)
	}
	if _, err := svc.UpdateCredit(ctx, 2, domain.CreditInput{StudentID: 1, ActivityID: 4, Value: -1}); !domain.IsValidation(err) {
		t.Errorf("negative: expected validation error, got %v", err)
	}
}

func TestListStudentCredits(t *testing.T) {
	svc := NewCreditService(newMockRepo())
	ctx := context.Background()

	got, err := svc.ListStudentCredits(ctx, 1)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListStudentCredits(1) = %d credits, %v; want 2", len(got), err)
	}
	if _, err := svc.ListStudentCredits(ctx, 0); !domain.IsValidation(err) {
		t.Errorf("id 0: expected validation error, got %v", err)
	}
}

func TestGetDeleteCredit(t *testing.T) {
	svc := NewCreditService(newMockRepo())
	ctx := context.Background()

	if cr, err := svc.GetCredit(ctx, 3); err != nil || cr.Student.Names != "Luis" {
		t.Fatalf("GetCredit = %+v, %v", cr, err)
	}
	if err := svc.DeleteCredit(ctx, 3); err != nil {
		t.Fatalf("DeleteCredit: %v", err)
	}
	if err := svc.DeleteCredit(ctx, 3); !domain.IsNotFound(err) {
		t.Errorf("second delete: expected not found, got %v", err)
	}
	list, _ := svc.ListCredits(ctx)
	if len(list) != 2 {
		t.Errorf("ListCredits = %d; want 2", len(list))
	}
}
