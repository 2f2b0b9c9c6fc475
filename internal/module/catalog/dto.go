package catalog

import "github.com/itl-creditos/creditos-admin/internal/domain"

// TeacherRequest represents the input for creating or updating a teacher.
type TeacherRequest struct {
	Names    string `json:"nombre" form:"nombre" binding:"required,max=150"`
	Surnames string `json:"apellidos" form:"apellidos" binding:"required,max=150"`
}

// Item implements Request.
func (r *TeacherRequest) Item() domain.Teacher {
	return domain.Teacher{Names: r.Names, Surnames: r.Surnames}
}

// PeriodRequest represents the input for creating or updating a period.
type PeriodRequest struct {
	Name string `json:"nombre" form:"nombre" binding:"required,max=50"`
}

// Item implements Request.
func (r *PeriodRequest) Item() domain.Period {
	return domain.Period{Name: r.Name}
}

// UserRequest represents the input for creating or updating an account.
type UserRequest struct {
	Username string `json:"usuario" form:"usuario" binding:"required,max=50"`
	Role     string `json:"rol" form:"rol" binding:"required"`
}

// Item implements Request.
func (r *UserRequest) Item() domain.User {
	return domain.User{Username: r.Username, Role: r.Role}
}
