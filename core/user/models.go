package user

import (
	"github.com/mzalendo/shule/core"
)

// Roles as the API sends them. Unknown role strings pass through verbatim;
// these constants only drive local portal routing and query filters.
const (
	RoleAdmin     = "admin"
	RoleProfessor = "profesor"
	RoleStudent   = "alumno"
)

var AllRoles = []string{RoleAdmin, RoleProfessor, RoleStudent}

// User is the account payload returned by the API; it doubles as the session profile.
type User struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }
func (u *User) IsProfessor() bool { return u.Role == RoleProfessor }

// NewUser contains information needed to create a new account.
type NewUser struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,role"`
}

func (nu *NewUser) Validate() error {
	nu.FullName = core.CleanString(nu.FullName)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	return core.Validate.Struct(nu)
}

// UpdateUser defines what information may be provided to modify an existing account.
// Zero-valued fields are left untouched by the API.
type UpdateUser struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     string `json:"role,omitempty" validate:"omitempty,role"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (uu *UpdateUser) Validate() error {
	uu.FullName = core.CleanString(uu.FullName)
	uu.Email = core.CleanString(uu.Email, true /* lower */)
	uu.Role = core.CleanString(uu.Role, true /* lower */)
	return core.Validate.Struct(uu)
}

// QueryFilter narrows account listings; Role maps to the `?role=` query param.
type QueryFilter struct {
	Role   string
	Search string
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Role == "" && qf.Search == ""
}

func (qf *QueryFilter) Clean() {
	qf.Role = core.CleanString(qf.Role, true /* lower */)
	qf.Search = core.CleanString(qf.Search)
}
