package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mzalendo/shule/core/student"
)

type studentRepository struct {
	client *Client
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(client *Client) student.Repository {
	return &studentRepository{client: client}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	var st student.Student
	err := repo.client.sendJSON(ctx, http.MethodPost, "/students/", &ns, &st)
	return st, err
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	err := repo.client.getJSON(ctx, "/students/", nil, &students)
	return students, err
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, id int, us student.UpdateStudent) (student.Student, error) {
	var st student.Student
	err := repo.client.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/students/%d", id), &us, &st)
	return st, err
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id int) error {
	return repo.client.delete(ctx, fmt.Sprintf("/students/%d", id))
}

func (repo *studentRepository) QueryMyStudents(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	err := repo.client.getJSON(ctx, "/teachers/me/students", nil, &students)
	return students, err
}

func (repo *studentRepository) SearchMyStudents(ctx context.Context, q string) ([]student.Student, error) {
	query := url.Values{}
	query.Set("q", q)
	var students []student.Student
	err := repo.client.getJSON(ctx, "/students/search-my-students", query, &students)
	return students, err
}
