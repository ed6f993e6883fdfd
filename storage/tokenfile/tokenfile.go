// Package tokenfile persists the access token record on disk, the client-side
// storage the session store mirrors itself into between runs.
package tokenfile

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/session"
)

// recordName is the one fixed key the token lives under.
const recordName = "access_token"

type Repository struct {
	path string
}

var _ session.TokenRepository = (*Repository)(nil) // interface compliance check

func New(conf *core.Config) *Repository {
	return &Repository{path: filepath.Join(conf.StateDir, recordName)}
}

func (repo *Repository) Read() (string, error) {
	data, err := ioutil.ReadFile(repo.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", session.ErrNoToken
		}
		return "", errors.Wrapf(err, "reading %s", repo.path)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", session.ErrNoToken
	}
	return token, nil
}

func (repo *Repository) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(repo.path), 0o700); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(repo.path))
	}
	return errors.Wrapf(ioutil.WriteFile(repo.path, []byte(token), 0o600), "writing %s", repo.path)
}

func (repo *Repository) Clear() error {
	if err := os.Remove(repo.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing %s", repo.path)
	}
	return nil
}
