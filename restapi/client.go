// Package restapi implements the repositories over the remote school-management
// REST API. Every request goes through one Client, which attaches the bearer
// token read from the persisted token record.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mzalendo/shule/core"
)

const apiRoot = "/api/v1"

// TokenSource yields the current access token. The token-record repository
// satisfies this; an empty token or a read error means "send unauthenticated".
type TokenSource interface {
	Read() (string, error)
}

type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	logger core.Logger
}

func NewClient(conf *core.Config, tokens TokenSource, logger core.Logger) (*Client, error) {
	base, err := url.Parse(conf.API.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing API base URL %q", conf.API.BaseURL)
	}
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: conf.API.Timeout},
		tokens: tokens,
		logger: logger,
	}, nil
}

func (c *Client) url(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + apiRoot + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do dispatches one request and decodes a JSON response into out (may be nil).
// contentType comes from the caller: JSON for document bodies, urlencoded for
// the login form, and the multipart writer's own boundary type for uploads —
// this layer never substitutes its own.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, err := c.tokens.Read(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	res, err := c.http.Do(req)
	if err != nil {
		return &core.APIError{Detail: err.Error(), Kind: core.KindNetwork}
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return decodeError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	return errors.Wrap(json.NewDecoder(res.Body).Decode(out), "decoding response")
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encoding request body")
	}
	return c.do(ctx, method, path, nil, bytes.NewReader(data), "application/json", out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// decodeError turns a non-2xx response into a core.APIError, using the
// server-supplied `detail` string when the body carries one. An empty or
// unparseable body is tolerated.
func decodeError(res *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(res.Body).Decode(&payload)
	return core.NewAPIError(res.StatusCode, payload.Detail)
}
