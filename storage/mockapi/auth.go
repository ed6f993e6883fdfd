package mockapi

import (
	"context"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/session"
	"github.com/mzalendo/shule/core/user"
)

// mockToken is the fixed token "issued" in mock mode.
const mockToken = "mock-token"

type authAPI struct {
	db *DB
}

var _ session.API = (*authAPI)(nil) // interface compliance check

func NewAuthAPI(db *DB) session.API {
	return &authAPI{db: db}
}

// Login accepts any seeded user's email with any non-empty password.
func (api *authAPI) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", core.NewAuthenticationError("")
	}
	api.db.RLock()
	defer api.db.RUnlock()
	for _, usr := range api.db.users {
		if usr.Email == username {
			return mockToken, nil
		}
	}
	return "", core.NewAuthenticationError("")
}

// Profile returns the canned professor account.
func (api *authAPI) Profile(ctx context.Context) (user.User, error) {
	api.db.RLock()
	defer api.db.RUnlock()
	for _, usr := range api.db.users {
		if usr.IsProfessor() {
			return *usr, nil
		}
	}
	return user.User{}, core.NewAPIError(404, "profile not found")
}
