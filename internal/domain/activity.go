package domain

import "context"

// Activity is an extracurricular activity that grants credits.
type Activity struct {
	ID        uint    `json:"act_id"`
	Name      string  `json:"act_nombre"`
	Credits   int     `json:"act_creditos"`
	StartTime string  `json:"act_hor_ini"`
	EndTime   string  `json:"act_hor_fin"`
	Teacher   Teacher `json:"docente"`
	Period    Period  `json:"periodo"`
}

// SearchFields returns the values matched by the activity search box.
func (a Activity) SearchFields() []string {
	return []string{a.Name, a.Teacher.Names, a.Teacher.Surnames, a.Period.Name}
}

// ActivityInput carries the writable fields of an activity.
type ActivityInput struct {
	ID        uint   `json:"act_id,omitempty"`
	Name      string `json:"act_nombre"`
	Credits   int    `json:"act_creditos"`
	StartTime string `json:"act_hor_ini"`
	EndTime   string `json:"act_hor_fin"`
	PeriodID  uint   `json:"per_id"`
	TeacherID uint   `json:"doc_responsable"`
}

// ActivityRepository defines the data access interface for activities.
type ActivityRepository interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, id uint) (*Activity, error)
	Create(ctx context.Context, in ActivityInput) (*Activity, error)
	Update(ctx context.Context, in ActivityInput) (*Activity, error)
	Delete(ctx context.Context, id uint) error
}

// ActivityService defines the business logic interface for activities.
type ActivityService interface {
	ListActivities(ctx context.Context) ([]Activity, error)
	GetActivity(ctx context.Context, id uint) (*Activity, error)
	CreateActivity(ctx context.Context, in ActivityInput) (*Activity, error)
	UpdateActivity(ctx context.Context, id uint, in ActivityInput) (*Activity, error)
	DeleteActivity(ctx context.Context, id uint) error
}
