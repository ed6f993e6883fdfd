package report

import (
	"github.com/mzalendo/shule/core/student"
	"github.com/mzalendo/shule/core/subject"
)

// Stats backs the dashboard headline numbers.
type Stats struct {
	TotalStudents int `json:"total_students"`
	TotalSubjects int `json:"total_subjects"`
}

// SubjectGradeRow is one graded subject within a full student report.
type SubjectGradeRow struct {
	SubjectID int     `json:"subject_id"`
	Subject   string  `json:"subject"`
	Code      string  `json:"code"`
	Grade     float64 `json:"grade"`
}

// StudentFull is the per-student report served by the reports endpoint.
type StudentFull struct {
	Student  student.Student   `json:"student"`
	Subjects []SubjectGradeRow `json:"subjects"`
	Average  float64           `json:"average"`
}

// Row pairs an enrolled student with their grade in one subject.
// Grade is nil while the student has not been graded yet, so a report can tell
// "no grade captured" apart from a grade of zero.
type Row struct {
	Student student.Student `json:"student"`
	Grade   *float64        `json:"grade"`
}

// SubjectReport is the grade sheet of one subject.
type SubjectReport struct {
	Subject subject.Subject `json:"subject"`
	Rows    []Row           `json:"rows"`
	Graded  int             `json:"graded"`
	Average float64         `json:"average"`
}

// SummaryRow is one subject's line in the averages summary.
type SummaryRow struct {
	Subject  subject.Subject `json:"subject"`
	Enrolled int             `json:"enrolled"`
	Graded   int             `json:"graded"`
	Average  float64         `json:"average"`
}
