package activity

import (
	"context"
	"strings"
	"time"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// clockLayout is the time-of-day format the backend stores.
const clockLayout = "15:04:05"

// activityService implements domain.ActivityService.
type activityService struct {
	repo domain.ActivityRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(repo domain.ActivityRepository) domain.ActivityService {
	return &activityService{repo: repo}
}

// ListActivities returns every activity with its teacher and period.
func (s *activityService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.repo.List(ctx)
}

// GetActivity returns one activity by ID.
func (s *activityService) GetActivity(ctx context.Context, id uint) (*domain.Activity, error) {
	return s.repo.Get(ctx, id)
}

// CreateActivity validates the input and creates the activity.
func (s *activityService) CreateActivity(ctx context.Context, in domain.ActivityInput) (*domain.Activity, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}
	in.ID = 0
	return s.repo.Create(ctx, in)
}

// UpdateActivity validates the input and replaces the activity with the given ID.
func (s *activityService) UpdateActivity(ctx context.Context, id uint, in domain.ActivityInput) (*domain.Activity, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}
	in.ID = id
	return s.repo.Update(ctx, in)
}

// DeleteActivity removes an activity by ID.
func (s *activityService) DeleteActivity(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// normalize trims the name, completes HH:MM times with seconds and checks
// every required field.
func normalize(in domain.ActivityInput) (domain.ActivityInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, domain.NewAppError(domain.CodeValidation, "activity name is required", nil)
	}
	if in.Credits <= 0 {
		return in, domain.NewAppError(domain.CodeValidation, "credits must be greater than 0", nil)
	}

	start, okStart := clock(in.StartTime)
	end, okEnd := clock(in.EndTime)
	if start == "" || end == "" {
		return in, domain.NewAppError(domain.CodeValidation, "start and end times are required", nil)
	}
	if !okStart || !okEnd {
		return in, domain.NewAppError(domain.CodeValidation, "times must use the HH:MM format", nil)
	}
	in.StartTime, in.EndTime = start, end

	if in.PeriodID == 0 {
		return in, domain.NewAppError(domain.CodeValidation, "period is required", nil)
	}
	if in.TeacherID == 0 {
		return in, domain.NewAppError(domain.CodeValidation, "responsible teacher is required", nil)
	}
	return in, nil
}

// clock returns v as HH:MM:SS. The bool is false when v is not a valid time.
func clock(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	if len(v) == 5 {
		v += ":00"
	}
	if _, err := time.Parse(clockLayout, v); err != nil {
		return v, false
	}
	return v, true
}

// ShortClock cuts a stored HH:MM:SS time down to HH:MM for time inputs.
func ShortClock(v string) string {
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}
