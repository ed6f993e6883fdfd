package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/session"
	"github.com/mzalendo/shule/core/user"
)

var _ session.API = (*Client)(nil) // interface compliance check

// Login exchanges form-encoded credentials for an access token.
// Any client-error response here is an authentication failure, not a generic one.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(
		ctx, http.MethodPost, "/auth/login/access-token", nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &out,
	)
	if err != nil {
		if apiErr, ok := errors.Cause(err).(*core.APIError); ok &&
			apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError {
			return "", core.NewAuthenticationError(apiErr.Detail)
		}
		return "", err
	}
	if out.AccessToken == "" {
		return "", core.NewAuthenticationError("no access token in response")
	}
	return out.AccessToken, nil
}

// Profile fetches the current account.
func (c *Client) Profile(ctx context.Context) (user.User, error) {
	var usr user.User
	if err := c.getJSON(ctx, "/users/me", nil, &usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}
