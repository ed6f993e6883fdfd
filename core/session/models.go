package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/mzalendo/shule/core/user"
)

// State tracks where the store is in the authentication lifecycle.
type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	}
	return "anonymous"
}

// Session is a point-in-time copy of the store's state.
// IsAuthenticated is true iff a non-empty token is held.
type Session struct {
	Token           string
	IsAuthenticated bool
	User            user.User
	Role            string
}

// mockable
var nowFunc = time.Now

// tokenExpired reports whether a JWT access token's exp claim is already in the past.
// The token is never verified locally; opaque or unparseable tokens are left for the
// server to judge.
func tokenExpired(token string) bool {
	claims := new(jwt.StandardClaims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return nowFunc().After(time.Unix(claims.ExpiresAt, 0))
}
