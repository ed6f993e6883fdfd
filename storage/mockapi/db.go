// Package mockapi is a canned, in-memory stand-in for the remote API, selected
// only by explicit configuration (api.usemocks). It lets the apps run against
// believable data with no backend reachable.
package mockapi

import (
	"sync"

	"github.com/mzalendo/shule/core/grade"
	"github.com/mzalendo/shule/core/student"
	"github.com/mzalendo/shule/core/subject"
	"github.com/mzalendo/shule/core/user"
)

type (
	DB struct {
		sync.RWMutex

		students map[int]*student.Student
		subjects map[int]*subject.Subject
		grades   map[int]*grade.Grade
		users    map[int]*user.User

		// enrollments maps a subject to its students
		enrollments map[int][]int

		nextID map[string]int
	}
)

func Open() *DB {
	db := &DB{
		students:    make(map[int]*student.Student),
		subjects:    make(map[int]*subject.Subject),
		grades:      make(map[int]*grade.Grade),
		users:       make(map[int]*user.User),
		enrollments: make(map[int][]int),
		nextID:      make(map[string]int),
	}
	db.seed()
	return db
}

func (db *DB) pk(table string) int {
	db.nextID[table]++
	return db.nextID[table]
}

// bumpPK keeps the counter ahead of seeded rows.
func (db *DB) bumpPK(table string, id int) {
	if db.nextID[table] < id {
		db.nextID[table] = id
	}
}

func (db *DB) seed() {
	students := []student.Student{
		{ID: 1, FirstName: "Juan", LastName: "Pérez", Email: "juan@school.com", EnrollmentCode: "ENR-001"},
		{ID: 2, FirstName: "María", LastName: "García", Email: "maria@school.com", EnrollmentCode: "ENR-002"},
		{ID: 3, FirstName: "Carlos", LastName: "López", Email: "carlos@school.com", EnrollmentCode: "ENR-003"},
		{ID: 4, FirstName: "Ana", LastName: "Rodríguez", Email: "ana@school.com", EnrollmentCode: "ENR-004"},
	}
	for i := range students {
		st := students[i]
		db.students[st.ID] = &st
		db.bumpPK("students", st.ID)
	}

	subjects := []subject.Subject{
		{ID: 1, Name: "Matemáticas", Code: "MAT-101", Credits: 4, Schedule: "Lunes y Miércoles 9:00-11:00"},
		{ID: 2, Name: "Física", Code: "FIS-102", Credits: 4, Schedule: "Martes y Jueves 10:00-12:00"},
		{ID: 3, Name: "Química", Code: "QUI-103", Credits: 3, Schedule: "Miércoles y Viernes 1:00-3:00"},
	}
	for i := range subjects {
		subj := subjects[i]
		db.subjects[subj.ID] = &subj
		db.bumpPK("subjects", subj.ID)
	}
	db.enrollments[1] = []int{1, 2, 3}
	db.enrollments[2] = []int{1, 4}
	db.enrollments[3] = []int{2, 3}

	grades := []grade.Grade{
		{ID: 1, StudentID: 1, SubjectID: 1, Value: 8.5},
		{ID: 2, StudentID: 2, SubjectID: 1, Value: 9.2},
		{ID: 3, StudentID: 3, SubjectID: 1, Value: 7.0},
		{ID: 4, StudentID: 1, SubjectID: 2, Value: 7.8},
		{ID: 5, StudentID: 4, SubjectID: 2, Value: 8.9},
		{ID: 6, StudentID: 2, SubjectID: 3, Value: 9.0},
		{ID: 7, StudentID: 3, SubjectID: 3, Value: 6.5},
	}
	for i := range grades {
		g := grades[i]
		db.grades[g.ID] = &g
		db.bumpPK("grades", g.ID)
	}

	users := []user.User{
		{ID: 1, FullName: "Dirección Escolar", Email: "admin@school.com", Role: user.RoleAdmin, IsActive: true},
		{ID: 2, FullName: "Lucía Fernández", Email: "lucia@school.com", Role: user.RoleProfessor, IsActive: true},
	}
	for i := range users {
		usr := users[i]
		db.users[usr.ID] = &usr
		db.bumpPK("users", usr.ID)
	}
}
