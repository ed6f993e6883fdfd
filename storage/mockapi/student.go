package mockapi

import (
	"context"
	"sort"
	"strings"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, 0, len(repo.db.students))
	for _, st := range repo.db.students {
		students = append(students, *st)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (repo *studentRepository) CreateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	st := student.Student{
		ID:             repo.db.pk("students"),
		FirstName:      ns.FirstName,
		LastName:       ns.LastName,
		Email:          ns.Email,
		EnrollmentCode: ns.EnrollmentCode,
	}
	repo.db.students[st.ID] = &st
	return st, nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, id int, us student.UpdateStudent) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	st, ok := repo.db.students[id]
	if !ok {
		return student.Student{}, core.NewAPIError(404, "student not found")
	}
	if us.FirstName != "" {
		st.FirstName = us.FirstName
	}
	if us.LastName != "" {
		st.LastName = us.LastName
	}
	if us.Email != "" {
		st.Email = us.Email
	}
	if us.EnrollmentCode != "" {
		st.EnrollmentCode = us.EnrollmentCode
	}
	return *st, nil
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.students[id]; !ok {
		return core.NewAPIError(404, "student not found")
	}
	delete(repo.db.students, id)
	for subjID, ids := range repo.db.enrollments {
		kept := ids[:0]
		for _, sid := range ids {
			if sid != id {
				kept = append(kept, sid)
			}
		}
		repo.db.enrollments[subjID] = kept
	}
	return nil
}

// QueryMyStudents returns every enrolled student without duplicates, as the
// teacher-portal endpoint does.
func (repo *studentRepository) QueryMyStudents(ctx context.Context) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	seen := make(map[int]bool)
	students := make([]student.Student, 0, len(repo.db.students))
	for _, ids := range repo.db.enrollments {
		for _, id := range ids {
			if st, ok := repo.db.students[id]; ok && !seen[id] {
				seen[id] = true
				students = append(students, *st)
			}
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (repo *studentRepository) SearchMyStudents(ctx context.Context, q string) ([]student.Student, error) {
	students, err := repo.QueryMyStudents(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	matched := students[:0]
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.FullName()), q) ||
			strings.Contains(strings.ToLower(st.Email), q) ||
			strings.Contains(strings.ToLower(st.EnrollmentCode), q) {
			matched = append(matched, st)
		}
	}
	return matched, nil
}
