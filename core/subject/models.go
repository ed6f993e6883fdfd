package subject

import (
	"github.com/mzalendo/shule/core"
)

type Subject struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Credits  int    `json:"credits"`
	Schedule string `json:"schedule"`
}

// TeacherLoad is one row of the subject/professor assignment listing.
type TeacherLoad struct {
	Subject   Subject `json:"subject"`
	TeacherID int     `json:"teacher_id"`
	Teacher   string  `json:"teacher"`
}

// NewSubject contains information needed to register a new subject.
type NewSubject struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required"`
	Credits  int    `json:"credits" validate:"required,gte=1,lte=12"`
	Schedule string `json:"schedule"`
}

func (ns *NewSubject) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Code = core.CleanString(ns.Code)
	ns.Schedule = core.CleanString(ns.Schedule)
	return core.Validate.Struct(ns)
}

// UpdateSubject defines what may be modified on an existing subject.
type UpdateSubject struct {
	Name     string `json:"name,omitempty"`
	Code     string `json:"code,omitempty"`
	Credits  int    `json:"credits,omitempty" validate:"omitempty,gte=1,lte=12"`
	Schedule string `json:"schedule,omitempty"`
}

func (us *UpdateSubject) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.Code = core.CleanString(us.Code)
	us.Schedule = core.CleanString(us.Schedule)
	return core.Validate.Struct(us)
}
