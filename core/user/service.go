package user

import (
	"context"
	"io"
)

type (
	Repository interface {
		CreateUser(ctx context.Context, nu NewUser) (User, error)
		// FilterUsers applies AND operation on available QueryFilter fields.
		FilterUsers(ctx context.Context, filter QueryFilter) ([]User, error)
		UpdateUser(ctx context.Context, id int, uu UpdateUser) (User, error)
		DeleteUser(ctx context.Context, id int) error
		// UpdateMyPhoto uploads the current account's profile photo as a multipart form.
		UpdateMyPhoto(ctx context.Context, filename string, photo io.Reader) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateProfessor registers a new professor account.
func (svc *Service) CreateProfessor(ctx context.Context, nu NewUser) (User, error) {
	if nu.Role == "" {
		nu.Role = RoleProfessor
	}
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(ctx, nu)
}

// QueryProfessors lists all accounts with the professor role.
func (svc *Service) QueryProfessors(ctx context.Context) ([]User, error) {
	return svc.repo.FilterUsers(ctx, QueryFilter{Role: RoleProfessor})
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]User, error) {
	filter.Clean()
	return svc.repo.FilterUsers(ctx, filter)
}

func (svc *Service) Update(ctx context.Context, id int, uu UpdateUser) (User, error) {
	if err := uu.Validate(); err != nil {
		return User{}, err
	}
	return svc.repo.UpdateUser(ctx, id, uu)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteUser(ctx, id)
}

func (svc *Service) UpdateMyPhoto(ctx context.Context, filename string, photo io.Reader) (User, error) {
	return svc.repo.UpdateMyPhoto(ctx, filename, photo)
}
