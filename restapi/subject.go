package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mzalendo/shule/core/student"
	"github.com/mzalendo/shule/core/subject"
)

type subjectRepository struct {
	client *Client
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(client *Client) subject.Repository {
	return &subjectRepository{client: client}
}

func (repo *subjectRepository) CreateSubject(ctx context.Context, ns subject.NewSubject) (subject.Subject, error) {
	var subj subject.Subject
	err := repo.client.sendJSON(ctx, http.MethodPost, "/subjects/", &ns, &subj)
	return subj, err
}

func (repo *subjectRepository) QueryAllSubjects(ctx context.Context) ([]subject.Subject, error) {
	var subjects []subject.Subject
	err := repo.client.getJSON(ctx, "/subjects/", nil, &subjects)
	return subjects, err
}

func (repo *subjectRepository) UpdateSubject(ctx context.Context, id int, us subject.UpdateSubject) (subject.Subject, error) {
	var subj subject.Subject
	err := repo.client.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/subjects/%d", id), &us, &subj)
	return subj, err
}

func (repo *subjectRepository) DeleteSubject(ctx context.Context, id int) error {
	return repo.client.delete(ctx, fmt.Sprintf("/subjects/%d", id))
}

func (repo *subjectRepository) QuerySubjectStudents(ctx context.Context, id int) ([]student.Student, error) {
	var students []student.Student
	err := repo.client.getJSON(ctx, fmt.Sprintf("/subjects/%d/students", id), nil, &students)
	return students, err
}

func (repo *subjectRepository) QueryMySubjects(ctx context.Context) ([]subject.Subject, error) {
	var subjects []subject.Subject
	err := repo.client.getJSON(ctx, "/teachers/me/subjects", nil, &subjects)
	return subjects, err
}

func (repo *subjectRepository) QueryTeacherLoad(ctx context.Context) ([]subject.TeacherLoad, error) {
	var load []subject.TeacherLoad
	err := repo.client.getJSON(ctx, "/subjects/teacher-load", nil, &load)
	return load, err
}
