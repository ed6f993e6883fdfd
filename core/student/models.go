package student

import (
	"github.com/mzalendo/shule/core"
)

type Student struct {
	ID             int    `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	EnrollmentCode string `json:"enrollment_code"`
}

func (s *Student) FullName() string {
	if s.FirstName == "" {
		return s.LastName
	}
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// NewStudent contains information needed to enroll a new student.
type NewStudent struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	EnrollmentCode string `json:"enrollment_code" validate:"omitempty,enrollcode"`
}

func (ns *NewStudent) Validate() error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.EnrollmentCode = core.CleanString(ns.EnrollmentCode)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what may be modified on an existing student.
// Zero-valued fields are left untouched by the API.
type UpdateStudent struct {
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	EnrollmentCode string `json:"enrollment_code,omitempty" validate:"omitempty,enrollcode"`
}

func (us *UpdateStudent) Validate() error {
	us.FirstName = core.CleanString(us.FirstName)
	us.LastName = core.CleanString(us.LastName)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.EnrollmentCode = core.CleanString(us.EnrollmentCode)
	return core.Validate.Struct(us)
}
