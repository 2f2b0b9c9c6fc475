package catalog

import (
	"strings"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// Request is the bindable form of a catalog item. Implementations are
// pointers so gin can bind into them.
type Request[T domain.CatalogItem] interface {
	Item() T
}

// Kind describes one catalog panel: where it lives, how it is named in
// the UI and how its items are bound and checked.
type Kind[T domain.CatalogItem] struct {
	// Slug is the URL segment and template selector.
	Slug string
	// Title is the panel heading.
	Title string
	// Noun names one item in toasts, capitalized.
	Noun string
	// Entity names one item in error messages.
	Entity string

	NewRequest func() Request[T]
	Normalize  func(T) (T, error)
}

// Path returns the panel's root path.
func (k Kind[T]) Path() string { return "/" + k.Slug }

// Teachers is the teachers panel.
var Teachers = Kind[domain.Teacher]{
	Slug:       "teachers",
	Title:      "Docentes",
	Noun:       "Docente",
	Entity:     "teacher",
	NewRequest: func() Request[domain.Teacher] { return &TeacherRequest{} },
	Normalize: func(t domain.Teacher) (domain.Teacher, error) {
		t.Names = strings.TrimSpace(t.Names)
		t.Surnames = strings.TrimSpace(t.Surnames)
		if t.Names == "" {
			return t, domain.NewAppError(domain.CodeValidation, "names are required", nil)
		}
		if t.Surnames == "" {
			return t, domain.NewAppError(domain.CodeValidation, "surnames are required", nil)
		}
		return t, nil
	},
}

// Periods is the academic periods panel.
var Periods = Kind[domain.Period]{
	Slug:       "periods",
	Title:      "Periodos",
	Noun:       "Periodo",
	Entity:     "period",
	NewRequest: func() Request[domain.Period] { return &PeriodRequest{} },
	Normalize: func(p domain.Period) (domain.Period, error) {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return p, domain.NewAppError(domain.CodeValidation, "period name is required", nil)
		}
		return p, nil
	},
}

// Users is the admin accounts panel.
var Users = Kind[domain.User]{
	Slug:       "users",
	Title:      "Usuarios",
	Noun:       "Usuario",
	Entity:     "user",
	NewRequest: func() Request[domain.User] { return &UserRequest{} },
	Normalize: func(u domain.User) (domain.User, error) {
		u.Username = strings.TrimSpace(u.Username)
		u.Role = strings.ToUpper(strings.TrimSpace(u.Role))
		if u.Username == "" {
			return u, domain.NewAppError(domain.CodeValidation, "username is required", nil)
		}
		if !validRole(u.Role) {
			return u, domain.NewAppError(domain.CodeValidation, "role must be one of "+strings.Join(Roles, ", "), nil)
		}
		return u, nil
	},
}

// Roles lists the account roles the backend accepts.
var Roles = []string{"ADMINISTRADOR", "DOCENTE"}

func validRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
