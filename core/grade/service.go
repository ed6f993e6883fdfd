package grade

import (
	"context"
)

type (
	Repository interface {
		CreateGrade(ctx context.Context, ng NewGrade) (Grade, error)
		UpdateGrade(ctx context.Context, id int, ug UpdateGrade) (Grade, error)
		DeleteGrade(ctx context.Context, id int) error
		QueryGradesBySubject(ctx context.Context, subjectID int) ([]Grade, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	if err := ng.Validate(); err != nil {
		return Grade{}, err
	}
	return svc.repo.CreateGrade(ctx, ng)
}

func (svc *Service) Update(ctx context.Context, id int, ug UpdateGrade) (Grade, error) {
	if err := ug.Validate(); err != nil {
		return Grade{}, err
	}
	return svc.repo.UpdateGrade(ctx, id, ug)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteGrade(ctx, id)
}

func (svc *Service) BySubject(ctx context.Context, subjectID int) ([]Grade, error) {
	return svc.repo.QueryGradesBySubject(ctx, subjectID)
}
