package restapi

import (
	"context"
	"fmt"

	"github.com/mzalendo/shule/core/report"
)

type reportRepository struct {
	client *Client
}

var _ report.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(client *Client) report.Repository {
	return &reportRepository{client: client}
}

func (repo *reportRepository) CountStudents(ctx context.Context) (int, error) {
	var out struct {
		Total int `json:"total"`
	}
	if err := repo.client.getJSON(ctx, "/reports/stats/students", nil, &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}

func (repo *reportRepository) GetStudentFull(ctx context.Context, studentID int) (report.StudentFull, error) {
	var rep report.StudentFull
	err := repo.client.getJSON(ctx, fmt.Sprintf("/reports/student-full/%d", studentID), nil, &rep)
	return rep, err
}
