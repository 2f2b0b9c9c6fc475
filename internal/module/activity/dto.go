package activity

import "github.com/itl-creditos/creditos-admin/internal/domain"

// ActivityRequest represents the input for creating or updating an activity.
type ActivityRequest struct {
	Name      string `json:"act_nombre" form:"act_nombre" binding:"required,max=150"`
	Credits   int    `json:"act_creditos" form:"act_creditos" binding:"required,gt=0"`
	StartTime string `json:"act_hor_ini" form:"act_hor_ini" binding:"required"`
	EndTime   string `json:"act_hor_fin" form:"act_hor_fin" binding:"required"`
	PeriodID  uint   `json:"per_id" form:"per_id" binding:"required"`
	TeacherID uint   `json:"doc_responsable" form:"doc_responsable" binding:"required"`
}

func (r ActivityRequest) input() domain.ActivityInput {
	return domain.ActivityInput{
		Name:      r.Name,
		Credits:   r.Credits,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		PeriodID:  r.PeriodID,
		TeacherID: r.TeacherID,
	}
}

// ActivityForm is the state of the activity form template.
type ActivityForm struct {
	ID        uint
	Name      string
	Credits   int
	StartTime string
	EndTime   string
	PeriodID  uint
	TeacherID uint
}

func formFromActivity(a *domain.Activity) *ActivityForm {
	return &ActivityForm{
		ID:        a.ID,
		Name:      a.Name,
		Credits:   a.Credits,
		StartTime: ShortClock(a.StartTime),
		EndTime:   ShortClock(a.EndTime),
		PeriodID:  a.Period.ID,
		TeacherID: a.Teacher.ID,
	}
}

func formFromRequest(id uint, r ActivityRequest) *ActivityForm {
	return &ActivityForm{
		ID:        id,
		Name:      r.Name,
		Credits:   r.Credits,
		StartTime: ShortClock(r.StartTime),
		EndTime:   ShortClock(r.EndTime),
		PeriodID:  r.PeriodID,
		TeacherID: r.TeacherID,
	}
}
