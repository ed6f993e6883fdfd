package mockapi

import (
	"context"
	"sort"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/grade"
)

type gradeRepository struct {
	db *DB
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db}
}

func (repo *gradeRepository) CreateGrade(ctx context.Context, ng grade.NewGrade) (grade.Grade, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.students[ng.StudentID]; !ok {
		return grade.Grade{}, core.NewAPIError(404, "student not found")
	}
	if _, ok := repo.db.subjects[ng.SubjectID]; !ok {
		return grade.Grade{}, core.NewAPIError(404, "subject not found")
	}

	g := grade.Grade{
		ID:        repo.db.pk("grades"),
		StudentID: ng.StudentID,
		SubjectID: ng.SubjectID,
		Value:     ng.Value,
	}
	repo.db.grades[g.ID] = &g
	return g, nil
}

func (repo *gradeRepository) UpdateGrade(ctx context.Context, id int, ug grade.UpdateGrade) (grade.Grade, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	g, ok := repo.db.grades[id]
	if !ok {
		return grade.Grade{}, core.NewAPIError(404, "grade not found")
	}
	g.Value = ug.Value
	return *g, nil
}

func (repo *gradeRepository) DeleteGrade(ctx context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.grades[id]; !ok {
		return core.NewAPIError(404, "grade not found")
	}
	delete(repo.db.grades, id)
	return nil
}

func (repo *gradeRepository) QueryGradesBySubject(ctx context.Context, subjectID int) ([]grade.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	grades := make([]grade.Grade, 0)
	for _, g := range repo.db.grades {
		if g.SubjectID == subjectID {
			grades = append(grades, *g)
		}
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].ID < grades[j].ID })
	return grades, nil
}
