package subject

import (
	"context"

	"github.com/mzalendo/shule/core/student"
)

type (
	Repository interface {
		CreateSubject(ctx context.Context, ns NewSubject) (Subject, error)
		QueryAllSubjects(ctx context.Context) ([]Subject, error)
		UpdateSubject(ctx context.Context, id int, us UpdateSubject) (Subject, error)
		DeleteSubject(ctx context.Context, id int) error
		QuerySubjectStudents(ctx context.Context, id int) ([]student.Student, error)
		// QueryMySubjects lists the subjects taught by the current professor.
		QueryMySubjects(ctx context.Context) ([]Subject, error)
		// QueryTeacherLoad lists subject/professor assignments.
		QueryTeacherLoad(ctx context.Context) ([]TeacherLoad, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	if err := ns.Validate(); err != nil {
		return Subject{}, err
	}
	return svc.repo.CreateSubject(ctx, ns)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Subject, error) {
	return svc.repo.QueryAllSubjects(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateSubject) (Subject, error) {
	if err := us.Validate(); err != nil {
		return Subject{}, err
	}
	return svc.repo.UpdateSubject(ctx, id, us)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteSubject(ctx, id)
}

func (svc *Service) Students(ctx context.Context, id int) ([]student.Student, error) {
	return svc.repo.QuerySubjectStudents(ctx, id)
}

func (svc *Service) QueryMine(ctx context.Context) ([]Subject, error) {
	return svc.repo.QueryMySubjects(ctx)
}

func (svc *Service) TeacherLoad(ctx context.Context) ([]TeacherLoad, error) {
	return svc.repo.QueryTeacherLoad(ctx)
}
