package mockapi

import (
	"context"
	"io"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(ctx context.Context, nu user.NewUser) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, usr := range repo.db.users {
		if usr.Email == nu.Email {
			return user.User{}, core.NewAPIError(409, "a user with this email already exists")
		}
	}
	usr := user.User{
		ID:       repo.db.pk("users"),
		FullName: nu.FullName,
		Email:    nu.Email,
		Role:     nu.Role,
		IsActive: true,
	}
	repo.db.users[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) FilterUsers(ctx context.Context, filter user.QueryFilter) ([]user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	q := strings.ToLower(filter.Search)
	users := make([]user.User, 0, len(repo.db.users))
	for _, usr := range repo.db.users {
		if filter.Role != "" && usr.Role != filter.Role {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(usr.FullName), q) &&
			!strings.Contains(strings.ToLower(usr.Email), q) {
			continue
		}
		users = append(users, *usr)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, id int, uu user.UpdateUser) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	usr, ok := repo.db.users[id]
	if !ok {
		return user.User{}, core.NewAPIError(404, "user not found")
	}
	if uu.FullName != "" {
		usr.FullName = uu.FullName
	}
	if uu.Email != "" {
		usr.Email = uu.Email
	}
	if uu.Role != "" {
		usr.Role = uu.Role
	}
	if uu.IsActive != nil {
		usr.IsActive = *uu.IsActive
	}
	return *usr, nil
}

func (repo *userRepository) DeleteUser(ctx context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.users[id]; !ok {
		return core.NewAPIError(404, "user not found")
	}
	delete(repo.db.users, id)
	return nil
}

// UpdateMyPhoto drains the upload and returns the canned professor unchanged.
func (repo *userRepository) UpdateMyPhoto(ctx context.Context, filename string, photo io.Reader) (user.User, error) {
	if _, err := io.Copy(ioutil.Discard, photo); err != nil {
		return user.User{}, err
	}
	api := authAPI{db: repo.db}
	return api.Profile(ctx)
}
