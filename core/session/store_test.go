package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/session"
	"github.com/mzalendo/shule/core/user"
	logsvc "github.com/mzalendo/shule/services/logger"
	"github.com/mzalendo/shule/storage/tokenmem"
)

type fakeAPI struct {
	token      string
	loginErr   error
	profile    user.User
	profileErr error

	loginCalls   int
	profileCalls int

	// onProfile runs before the profile response is returned; used to race a logout
	onProfile func()
}

func (api *fakeAPI) Login(ctx context.Context, username, password string) (string, error) {
	api.loginCalls++
	if api.loginErr != nil {
		return "", api.loginErr
	}
	return api.token, nil
}

func (api *fakeAPI) Profile(ctx context.Context) (user.User, error) {
	api.profileCalls++
	if api.onProfile != nil {
		api.onProfile()
	}
	if api.profileErr != nil {
		return user.User{}, api.profileErr
	}
	return api.profile, nil
}

func setup(t *testing.T, api *fakeAPI) (*session.Store, *tokenmem.Repository) {
	t.Helper()
	tokens := tokenmem.New()
	store := session.NewStore(api, tokens, logsvc.NewNopLogger())
	return store, tokens
}

func assertAnonymous(t *testing.T, store *session.Store, tokens *tokenmem.Repository) {
	t.Helper()
	assert.False(t, store.IsAuthenticated())
	snap := store.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Empty(t, snap.Role)
	assert.Equal(t, user.User{}, snap.User)
	_, err := tokens.Read()
	assert.Equal(t, session.ErrNoToken, err)
}

func TestStore_Login(t *testing.T) {
	ada := user.User{ID: 7, FullName: "Ada", Email: "ada@school.com", Role: "admin", IsActive: true}

	t.Run("success", func(t *testing.T) {
		api := &fakeAPI{token: "tok-1", profile: ada}
		store, tokens := setup(t, api)

		role, err := store.Login(context.Background(), "ada@school.com", "pwd")
		assert.NoError(t, err)
		assert.Equal(t, "admin", role)
		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, session.Authenticated, store.State())

		snap := store.Snapshot()
		assert.Equal(t, "tok-1", snap.Token)
		assert.Equal(t, ada, snap.User)

		persisted, err := tokens.Read()
		assert.NoError(t, err)
		assert.Equal(t, "tok-1", persisted)
	})

	t.Run("unrecognized role passes through verbatim", func(t *testing.T) {
		prof := ada
		prof.Role = "profesor"
		api := &fakeAPI{token: "tok-2", profile: prof}
		store, _ := setup(t, api)

		role, err := store.Login(context.Background(), "prof@x.com", "pw")
		assert.NoError(t, err)
		assert.Equal(t, "profesor", role)
	})

	t.Run("failed token exchange leaves no trace", func(t *testing.T) {
		api := &fakeAPI{loginErr: core.NewAuthenticationError("")}
		store, tokens := setup(t, api)

		_, err := store.Login(context.Background(), "ada@school.com", "nope")
		assert.True(t, core.IsAuthenticationFailed(err))
		assert.Equal(t, 0, api.profileCalls)
		assert.Equal(t, session.Anonymous, store.State())
		assertAnonymous(t, store, tokens)
	})

	t.Run("failed profile fetch rolls the token back", func(t *testing.T) {
		api := &fakeAPI{token: "tok-3", profileErr: core.NewAPIError(500, "boom")}
		store, tokens := setup(t, api)

		_, err := store.Login(context.Background(), "ada@school.com", "pwd")
		assert.Error(t, err)
		assertAnonymous(t, store, tokens)
	})

	t.Run("empty token response is an authentication failure", func(t *testing.T) {
		api := &fakeAPI{token: ""}
		store, tokens := setup(t, api)

		_, err := store.Login(context.Background(), "ada@school.com", "pwd")
		assert.True(t, core.IsAuthenticationFailed(err))
		assertAnonymous(t, store, tokens)
	})

	t.Run("failed re-login clears the previous session", func(t *testing.T) {
		api := &fakeAPI{token: "tok-1", profile: ada}
		store, tokens := setup(t, api)

		_, err := store.Login(context.Background(), "ada@school.com", "pwd")
		assert.NoError(t, err)

		api.loginErr = core.NewAuthenticationError("")
		_, err = store.Login(context.Background(), "ada@school.com", "nope")
		assert.True(t, core.IsAuthenticationFailed(err))
		assert.Equal(t, session.Anonymous, store.State())
		assertAnonymous(t, store, tokens)
	})

	t.Run("empty token on re-login clears the previous session", func(t *testing.T) {
		api := &fakeAPI{token: "tok-1", profile: ada}
		store, tokens := setup(t, api)

		_, err := store.Login(context.Background(), "ada@school.com", "pwd")
		assert.NoError(t, err)

		api.token = ""
		_, err = store.Login(context.Background(), "ada@school.com", "pwd")
		assert.True(t, core.IsAuthenticationFailed(err))
		assertAnonymous(t, store, tokens)
	})

	t.Run("racing logout wins", func(t *testing.T) {
		api := &fakeAPI{token: "tok-4", profile: ada}
		store, tokens := setup(t, api)
		api.onProfile = store.Logout

		_, err := store.Login(context.Background(), "ada@school.com", "pwd")
		assert.Equal(t, session.ErrLoginAborted, err)
		assertAnonymous(t, store, tokens)
	})
}

func TestStore_Logout(t *testing.T) {
	ada := user.User{ID: 7, FullName: "Ada", Role: "admin"}
	api := &fakeAPI{token: "tok-1", profile: ada}
	store, tokens := setup(t, api)

	_, err := store.Login(context.Background(), "ada@school.com", "pwd")
	assert.NoError(t, err)

	store.Logout()
	assertAnonymous(t, store, tokens)

	// idempotent: a second logout is a no-op
	store.Logout()
	assertAnonymous(t, store, tokens)
}

func TestStore_Profile(t *testing.T) {
	ada := user.User{ID: 7, FullName: "Ada", Role: "admin"}

	t.Run("no token held", func(t *testing.T) {
		api := &fakeAPI{}
		store, _ := setup(t, api)

		_, err := store.Profile(context.Background())
		assert.True(t, core.IsMissingToken(err))
		assert.Equal(t, 0, api.profileCalls)
	})

	t.Run("rejected token invalidates the session", func(t *testing.T) {
		api := &fakeAPI{token: "tok-1", profile: ada}
		store, tokens := setup(t, api)

		_, err := store.Login(context.Background(), "ada@school.com", "pwd")
		assert.NoError(t, err)

		api.profileErr = core.NewAPIError(401, "token expired")
		_, err = store.Profile(context.Background())
		assert.True(t, core.IsUnauthorized(err))
		assertAnonymous(t, store, tokens)
	})
}

func TestStore_Restore(t *testing.T) {
	ada := user.User{ID: 7, FullName: "Ada", Role: "admin"}

	t.Run("no persisted record", func(t *testing.T) {
		api := &fakeAPI{}
		store, _ := setup(t, api)

		assert.NoError(t, store.Restore(context.Background()))
		assert.False(t, store.IsAuthenticated())
		assert.Equal(t, 0, api.profileCalls)
	})

	t.Run("valid persisted token", func(t *testing.T) {
		api := &fakeAPI{profile: ada}
		store, tokens := setup(t, api)
		assert.NoError(t, tokens.Write("tok-1"))

		assert.NoError(t, store.Restore(context.Background()))
		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, "admin", store.Snapshot().Role)
	})

	t.Run("rejected persisted token is cleaned up", func(t *testing.T) {
		api := &fakeAPI{profileErr: core.NewAPIError(401, "")}
		store, tokens := setup(t, api)
		assert.NoError(t, tokens.Write("tok-stale"))

		assert.NoError(t, store.Restore(context.Background()))
		assertAnonymous(t, store, tokens)
	})

	t.Run("transient profile failure keeps the record for a retry", func(t *testing.T) {
		api := &fakeAPI{profileErr: &core.APIError{Detail: "connection refused", Kind: core.KindNetwork}}
		store, tokens := setup(t, api)
		assert.NoError(t, tokens.Write("tok-1"))

		assert.Error(t, store.Restore(context.Background()))
		assert.Equal(t, session.Anonymous, store.State())
		assert.False(t, store.IsAuthenticated())

		persisted, err := tokens.Read()
		assert.NoError(t, err)
		assert.Equal(t, "tok-1", persisted)
	})

	t.Run("locally expired JWT skips the network", func(t *testing.T) {
		api := &fakeAPI{profile: ada}
		store, tokens := setup(t, api)

		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
			Subject:   "7",
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		})
		ss, err := expired.SignedString([]byte("secret"))
		assert.NoError(t, err)
		assert.NoError(t, tokens.Write(ss))

		assert.NoError(t, store.Restore(context.Background()))
		assert.Equal(t, 0, api.profileCalls)
		assertAnonymous(t, store, tokens)
	})
}
