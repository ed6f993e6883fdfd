// Package tokenmem keeps the token record in memory; used in mock mode and tests.
package tokenmem

import (
	"sync"

	"github.com/mzalendo/shule/core/session"
)

type Repository struct {
	mu    sync.RWMutex
	token string
	held  bool
}

var _ session.TokenRepository = (*Repository)(nil) // interface compliance check

func New() *Repository {
	return &Repository{}
}

func (repo *Repository) Read() (string, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	if !repo.held {
		return "", session.ErrNoToken
	}
	return repo.token, nil
}

func (repo *Repository) Write(token string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.token = token
	repo.held = true
	return nil
}

func (repo *Repository) Clear() error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.token = ""
	repo.held = false
	return nil
}
