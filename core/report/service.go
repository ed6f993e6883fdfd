package report

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mzalendo/shule/core/grade"
	"github.com/mzalendo/shule/core/subject"
)

type (
	Repository interface {
		// CountStudents is the students headline stat.
		CountStudents(ctx context.Context) (int, error)
		// GetStudentFull fetches the server-assembled per-student report.
		GetStudentFull(ctx context.Context, studentID int) (StudentFull, error)
	}

	Service struct {
		repo     Repository
		subjects *subject.Service
		grades   *grade.Service
	}
)

func NewService(repo Repository, subjects *subject.Service, grades *grade.Service) *Service {
	return &Service{repo: repo, subjects: subjects, grades: grades}
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	total, err := svc.repo.CountStudents(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "counting students")
	}
	subjs, err := svc.subjects.QueryAll(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "listing subjects")
	}
	return Stats{TotalStudents: total, TotalSubjects: len(subjs)}, nil
}

func (svc *Service) StudentFull(ctx context.Context, studentID int) (StudentFull, error) {
	return svc.repo.GetStudentFull(ctx, studentID)
}

// SubjectReport assembles the grade sheet of one subject from its roster and
// its captured grades. Students without a grade keep a nil Grade.
func (svc *Service) SubjectReport(ctx context.Context, subj subject.Subject) (SubjectReport, error) {
	students, err := svc.subjects.Students(ctx, subj.ID)
	if err != nil {
		return SubjectReport{}, errors.Wrap(err, "listing subject students")
	}
	grades, err := svc.grades.BySubject(ctx, subj.ID)
	if err != nil {
		return SubjectReport{}, errors.Wrap(err, "listing subject grades")
	}

	byStudent := make(map[int]float64, len(grades))
	for _, g := range grades {
		byStudent[g.StudentID] = g.Value
	}

	rep := SubjectReport{Subject: subj, Rows: make([]Row, 0, len(students))}
	var sum float64
	for _, st := range students {
		row := Row{Student: st}
		if val, ok := byStudent[st.ID]; ok {
			val := val
			row.Grade = &val
			rep.Graded++
			sum += val
		}
		rep.Rows = append(rep.Rows, row)
	}
	if rep.Graded > 0 {
		rep.Average = sum / float64(rep.Graded)
	}
	return rep, nil
}

// SubjectReportByID resolves the subject first, then assembles its report.
func (svc *Service) SubjectReportByID(ctx context.Context, subjectID int) (SubjectReport, error) {
	subjs, err := svc.subjects.QueryAll(ctx)
	if err != nil {
		return SubjectReport{}, errors.Wrap(err, "listing subjects")
	}
	for _, subj := range subjs {
		if subj.ID == subjectID {
			return svc.SubjectReport(ctx, subj)
		}
	}
	return SubjectReport{}, errors.Errorf("subject %d not found", subjectID)
}

// Summary computes per-subject enrollment and averages for the dashboard.
func (svc *Service) Summary(ctx context.Context) ([]SummaryRow, error) {
	subjs, err := svc.subjects.QueryAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing subjects")
	}

	rows := make([]SummaryRow, 0, len(subjs))
	for _, subj := range subjs {
		rep, err := svc.SubjectReport(ctx, subj)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SummaryRow{
			Subject:  subj,
			Enrolled: len(rep.Rows),
			Graded:   rep.Graded,
			Average:  rep.Average,
		})
	}
	return rows, nil
}
