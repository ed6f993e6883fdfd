package grade

import (
	"github.com/mzalendo/shule/core"
)

// Grade is one captured mark for a student in a subject, on a 0-10 scale.
type Grade struct {
	ID        int     `json:"id"`
	StudentID int     `json:"student_id"`
	SubjectID int     `json:"subject_id"`
	Value     float64 `json:"grade"`
}

type NewGrade struct {
	StudentID int     `json:"student_id" validate:"required"`
	SubjectID int     `json:"subject_id" validate:"required"`
	Value     float64 `json:"grade" validate:"gte=0,lte=10"`
}

func (ng *NewGrade) Validate() error { return core.Validate.Struct(ng) }

type UpdateGrade struct {
	Value float64 `json:"grade" validate:"gte=0,lte=10"`
}

func (ug *UpdateGrade) Validate() error { return core.Validate.Struct(ug) }
