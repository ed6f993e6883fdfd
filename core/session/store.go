package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/user"
)

var (
	// ErrNoToken is returned by a TokenRepository when no token record exists.
	ErrNoToken = errors.New("no token record")

	// ErrLoginAborted is returned when a logout raced an in-flight login and won.
	ErrLoginAborted = errors.New("login aborted by logout")
)

type (
	// API is the remote authentication surface the store drives.
	API interface {
		// Login exchanges credentials for an access token.
		Login(ctx context.Context, username, password string) (token string, err error)
		// Profile fetches the current account using the persisted token.
		Profile(ctx context.Context) (user.User, error)
	}

	// TokenRepository owns the persisted token record. No other component
	// writes to it; the HTTP access layer only reads it.
	TokenRepository interface {
		Read() (string, error)
		Write(token string) error
		Clear() error
	}

	// Store is the single source of truth for "who is logged in".
	Store struct {
		api    API
		tokens TokenRepository
		logger core.Logger

		mu    sync.Mutex
		token string
		user  user.User
		role  string
		state State
		gen   uint64 // bumped by Logout; a stale login commit is discarded
	}
)

func NewStore(api API, tokens TokenRepository, logger core.Logger) *Store {
	return &Store{api: api, tokens: tokens, logger: logger}
}

// Login performs the two-step login sequence: token exchange, then profile fetch.
// The token is persisted between the two steps since the profile call depends on it.
// Any failure leaves the session fully unauthenticated; a half-logged-in state
// (token persisted, no profile) never survives this call.
// On success the profile's role is returned verbatim for portal routing.
func (s *Store) Login(ctx context.Context, username, password string) (string, error) {
	username = core.CleanString(username, true /* lower */)

	s.mu.Lock()
	gen := s.gen
	s.state = Authenticating
	s.mu.Unlock()

	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.abort(gen)
		return "", errors.Wrap(err, "exchanging credentials")
	}
	if token == "" {
		s.abort(gen)
		return "", core.NewAuthenticationError("no access token received")
	}

	// persist the token before the profile call; the access layer reads it from there
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return "", ErrLoginAborted
	}
	if err := s.tokens.Write(token); err != nil {
		s.state = Anonymous
		s.mu.Unlock()
		return "", errors.Wrap(err, "persisting token")
	}
	s.token = token
	s.mu.Unlock()

	prof, err := s.api.Profile(ctx)
	if err != nil {
		// roll back: the just-stored token must not outlive a failed login
		s.abort(gen)
		return "", errors.Wrap(err, "fetching profile")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen { // logout won the race and already cleared the record
		return "", ErrLoginAborted
	}
	s.user = prof
	s.role = prof.Role
	s.state = Authenticated
	return prof.Role, nil
}

// Logout unconditionally clears the session and the persisted token record.
// It is idempotent and always wins over an in-flight login.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.clearLocked()
}

// Profile refreshes the current account from the API.
// A rejected token invalidates the whole session before the error is returned.
func (s *Store) Profile(ctx context.Context) (user.User, error) {
	s.mu.Lock()
	token := s.token
	gen := s.gen
	s.mu.Unlock()

	if token == "" {
		return user.User{}, core.ErrMissingToken
	}

	prof, err := s.api.Profile(ctx)
	if err != nil {
		if core.IsUnauthorized(err) {
			s.mu.Lock()
			if s.gen == gen {
				s.clearLocked()
			}
			s.mu.Unlock()
		}
		return user.User{}, errors.Wrap(err, "fetching profile")
	}

	s.mu.Lock()
	if s.gen == gen && s.token == token {
		s.user = prof
		s.role = prof.Role
		s.state = Authenticated
	}
	s.mu.Unlock()
	return prof, nil
}

// Restore bootstraps the session from the persisted token record at startup.
// A locally expired JWT is discarded without a network round trip; a token the
// API rejects is cleaned up and the store stays anonymous.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.tokens.Read()
	if err != nil {
		if errors.Cause(err) == ErrNoToken {
			return nil
		}
		return errors.Wrap(err, "reading token record")
	}
	if token == "" || tokenExpired(token) {
		if err := s.tokens.Clear(); err != nil {
			s.logger.Warn("clearing stale token record", err)
		}
		return nil
	}

	s.mu.Lock()
	gen := s.gen
	s.token = token
	s.state = Authenticating
	s.mu.Unlock()

	if _, err := s.Profile(ctx); err != nil {
		if core.IsUnauthorized(err) {
			s.logger.Info("persisted session no longer valid")
			return nil
		}
		// transient failure: drop back to anonymous in memory but keep the
		// persisted record so the next run can retry the validation
		s.mu.Lock()
		if s.gen == gen && s.state == Authenticating {
			s.token = ""
			s.user = user.User{}
			s.role = ""
			s.state = Anonymous
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{
		Token:           s.token,
		IsAuthenticated: s.token != "",
		User:            s.user,
		Role:            s.role,
	}
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// abort fully clears the session after a failed login step, unless a logout
// has already intervened. Any held token, including one from a previous
// session, must not survive a failed login.
func (s *Store) abort(gen uint64) {
	s.mu.Lock()
	if s.gen == gen {
		s.clearLocked()
	}
	s.mu.Unlock()
}

// clearLocked wipes the in-memory session and the persisted record. Callers hold mu.
func (s *Store) clearLocked() {
	s.token = ""
	s.user = user.User{}
	s.role = ""
	s.state = Anonymous
	if err := s.tokens.Clear(); err != nil && errors.Cause(err) != ErrNoToken {
		s.logger.Error("clearing token record", err)
	}
}
