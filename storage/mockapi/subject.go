package mockapi

import (
	"context"
	"sort"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/student"
	"github.com/mzalendo/shule/core/subject"
	"github.com/mzalendo/shule/core/user"
)

type subjectRepository struct {
	db *DB
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *DB) subject.Repository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) query() []subject.Subject {
	subjects := make([]subject.Subject, 0, len(repo.db.subjects))
	for _, subj := range repo.db.subjects {
		subjects = append(subjects, *subj)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects
}

func (repo *subjectRepository) CreateSubject(ctx context.Context, ns subject.NewSubject) (subject.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	subj := subject.Subject{
		ID:       repo.db.pk("subjects"),
		Name:     ns.Name,
		Code:     ns.Code,
		Credits:  ns.Credits,
		Schedule: ns.Schedule,
	}
	repo.db.subjects[subj.ID] = &subj
	return subj, nil
}

func (repo *subjectRepository) QueryAllSubjects(ctx context.Context) ([]subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *subjectRepository) UpdateSubject(ctx context.Context, id int, us subject.UpdateSubject) (subject.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	subj, ok := repo.db.subjects[id]
	if !ok {
		return subject.Subject{}, core.NewAPIError(404, "subject not found")
	}
	if us.Name != "" {
		subj.Name = us.Name
	}
	if us.Code != "" {
		subj.Code = us.Code
	}
	if us.Credits != 0 {
		subj.Credits = us.Credits
	}
	if us.Schedule != "" {
		subj.Schedule = us.Schedule
	}
	return *subj, nil
}

func (repo *subjectRepository) DeleteSubject(ctx context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.subjects[id]; !ok {
		return core.NewAPIError(404, "subject not found")
	}
	delete(repo.db.subjects, id)
	delete(repo.db.enrollments, id)
	return nil
}

func (repo *subjectRepository) QuerySubjectStudents(ctx context.Context, id int) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if _, ok := repo.db.subjects[id]; !ok {
		return nil, core.NewAPIError(404, "subject not found")
	}
	students := make([]student.Student, 0, len(repo.db.enrollments[id]))
	for _, sid := range repo.db.enrollments[id] {
		if st, ok := repo.db.students[sid]; ok {
			students = append(students, *st)
		}
	}
	return students, nil
}

// QueryMySubjects returns every subject; the canned professor teaches them all.
func (repo *subjectRepository) QueryMySubjects(ctx context.Context) ([]subject.Subject, error) {
	return repo.QueryAllSubjects(ctx)
}

func (repo *subjectRepository) QueryTeacherLoad(ctx context.Context) ([]subject.TeacherLoad, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var teacher user.User
	for _, usr := range repo.db.users {
		if usr.IsProfessor() {
			teacher = *usr
			break
		}
	}

	subjects := repo.query()
	load := make([]subject.TeacherLoad, 0, len(subjects))
	for _, subj := range subjects {
		load = append(load, subject.TeacherLoad{
			Subject:   subj,
			TeacherID: teacher.ID,
			Teacher:   teacher.FullName,
		})
	}
	return load, nil
}
