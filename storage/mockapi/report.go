package mockapi

import (
	"context"
	"sort"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/report"
)

type reportRepository struct {
	db *DB
}

var _ report.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(db *DB) report.Repository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) CountStudents(ctx context.Context) (int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return len(repo.db.students), nil
}

func (repo *reportRepository) GetStudentFull(ctx context.Context, studentID int) (report.StudentFull, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	st, ok := repo.db.students[studentID]
	if !ok {
		return report.StudentFull{}, core.NewAPIError(404, "student not found")
	}

	rep := report.StudentFull{Student: *st}
	var sum float64
	for _, g := range repo.db.grades {
		if g.StudentID != studentID {
			continue
		}
		row := report.SubjectGradeRow{SubjectID: g.SubjectID, Grade: g.Value}
		if subj, ok := repo.db.subjects[g.SubjectID]; ok {
			row.Subject = subj.Name
			row.Code = subj.Code
		}
		rep.Subjects = append(rep.Subjects, row)
		sum += g.Value
	}
	sort.Slice(rep.Subjects, func(i, j int) bool { return rep.Subjects[i].SubjectID < rep.Subjects[j].SubjectID })
	if len(rep.Subjects) > 0 {
		rep.Average = sum / float64(len(rep.Subjects))
	}
	return rep, nil
}
