package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mzalendo/shule/core/grade"
	"github.com/mzalendo/shule/core/report"
	"github.com/mzalendo/shule/core/subject"
	"github.com/mzalendo/shule/storage/mockapi"
)

func setup(t *testing.T) (*report.Service, *grade.Service) {
	t.Helper()
	db := mockapi.Open()
	subjects := subject.NewService(mockapi.NewSubjectRepository(db))
	grades := grade.NewService(mockapi.NewGradeRepository(db))
	return report.NewService(mockapi.NewReportRepository(db), subjects, grades), grades
}

func TestService_Stats(t *testing.T) {
	svc, _ := setup(t)

	stats, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, report.Stats{TotalStudents: 4, TotalSubjects: 3}, stats)
}

func TestService_SubjectReport(t *testing.T) {
	ctx := context.Background()

	t.Run("all graded", func(t *testing.T) {
		svc, _ := setup(t)

		rep, err := svc.SubjectReportByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "MAT-101", rep.Subject.Code)
		assert.Len(t, rep.Rows, 3)
		assert.Equal(t, 3, rep.Graded)
		assert.InDelta(t, 8.23, rep.Average, 0.01)
		for _, row := range rep.Rows {
			assert.NotNil(t, row.Grade)
		}
	})

	t.Run("ungraded student keeps a nil grade", func(t *testing.T) {
		svc, grades := setup(t)

		// drop Carlos' grade in MAT-101; he stays on the roster
		assert.NoError(t, grades.Delete(ctx, 3))

		rep, err := svc.SubjectReportByID(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, rep.Rows, 3)
		assert.Equal(t, 2, rep.Graded)
		assert.InDelta(t, 8.85, rep.Average, 0.001)

		var carlos *report.Row
		for i := range rep.Rows {
			if rep.Rows[i].Student.FirstName == "Carlos" {
				carlos = &rep.Rows[i]
			}
		}
		if assert.NotNil(t, carlos) {
			assert.Nil(t, carlos.Grade)
		}
	})

	t.Run("unknown subject", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.SubjectReportByID(ctx, 99)
		assert.EqualError(t, err, "subject 99 not found")
	})
}

func TestService_Summary(t *testing.T) {
	svc, _ := setup(t)

	rows, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, rows, 3) {
		assert.Equal(t, "MAT-101", rows[0].Subject.Code)
		assert.Equal(t, 3, rows[0].Enrolled)
		assert.Equal(t, 3, rows[0].Graded)

		assert.Equal(t, "FIS-102", rows[1].Subject.Code)
		assert.Equal(t, 2, rows[1].Enrolled)
		assert.InDelta(t, 8.35, rows[1].Average, 0.001)

		assert.Equal(t, "QUI-103", rows[2].Subject.Code)
		assert.InDelta(t, 7.75, rows[2].Average, 0.001)
	}
}

func TestService_StudentFull(t *testing.T) {
	svc, _ := setup(t)

	rep, err := svc.StudentFull(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Juan", rep.Student.FirstName)
	if assert.Len(t, rep.Subjects, 2) {
		assert.Equal(t, "MAT-101", rep.Subjects[0].Code)
		assert.Equal(t, 8.5, rep.Subjects[0].Grade)
		assert.Equal(t, "FIS-102", rep.Subjects[1].Code)
	}
	assert.InDelta(t, 8.15, rep.Average, 0.001)
}
