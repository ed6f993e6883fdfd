package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mzalendo/shule/core/grade"
)

type gradeRepository struct {
	client *Client
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(client *Client) grade.Repository {
	return &gradeRepository{client: client}
}

func (repo *gradeRepository) CreateGrade(ctx context.Context, ng grade.NewGrade) (grade.Grade, error) {
	var g grade.Grade
	err := repo.client.sendJSON(ctx, http.MethodPost, "/grades/", &ng, &g)
	return g, err
}

func (repo *gradeRepository) UpdateGrade(ctx context.Context, id int, ug grade.UpdateGrade) (grade.Grade, error) {
	var g grade.Grade
	err := repo.client.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/grades/%d", id), &ug, &g)
	return g, err
}

func (repo *gradeRepository) DeleteGrade(ctx context.Context, id int) error {
	return repo.client.delete(ctx, fmt.Sprintf("/grades/%d", id))
}

func (repo *gradeRepository) QueryGradesBySubject(ctx context.Context, subjectID int) ([]grade.Grade, error) {
	var grades []grade.Grade
	err := repo.client.getJSON(ctx, fmt.Sprintf("/grades/by-subject/%d", subjectID), nil, &grades)
	return grades, err
}
