package student

import (
	"context"

	"github.com/mzalendo/shule/core"
)

type (
	Repository interface {
		CreateStudent(ctx context.Context, ns NewStudent) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		UpdateStudent(ctx context.Context, id int, us UpdateStudent) (Student, error)
		DeleteStudent(ctx context.Context, id int) error
		// QueryMyStudents lists the students enrolled in the current professor's subjects.
		QueryMyStudents(ctx context.Context) ([]Student, error)
		// SearchMyStudents does a case-insensitive match within the current professor's students.
		SearchMyStudents(ctx context.Context, q string) ([]Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	return svc.repo.CreateStudent(ctx, ns)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	return svc.repo.UpdateStudent(ctx, id, us)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteStudent(ctx, id)
}

func (svc *Service) QueryMine(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryMyStudents(ctx)
}

func (svc *Service) SearchMine(ctx context.Context, q string) ([]Student, error) {
	q = core.CleanString(q)
	if q == "" {
		return svc.repo.QueryMyStudents(ctx)
	}
	return svc.repo.SearchMyStudents(ctx, q)
}
