package restapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/mzalendo/shule/core/user"
)

type userRepository struct {
	client *Client
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(client *Client) user.Repository {
	return &userRepository{client: client}
}

func (repo *userRepository) CreateUser(ctx context.Context, nu user.NewUser) (user.User, error) {
	var usr user.User
	err := repo.client.sendJSON(ctx, http.MethodPost, "/users/", &nu, &usr)
	return usr, err
}

func (repo *userRepository) FilterUsers(ctx context.Context, filter user.QueryFilter) ([]user.User, error) {
	query := url.Values{}
	if filter.Role != "" {
		query.Set("role", filter.Role)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	var users []user.User
	err := repo.client.getJSON(ctx, "/users/", query, &users)
	return users, err
}

func (repo *userRepository) UpdateUser(ctx context.Context, id int, uu user.UpdateUser) (user.User, error) {
	var usr user.User
	err := repo.client.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), &uu, &usr)
	return usr, err
}

func (repo *userRepository) DeleteUser(ctx context.Context, id int) error {
	return repo.client.delete(ctx, fmt.Sprintf("/users/%d", id))
}

// UpdateMyPhoto uploads the profile photo as a multipart form. The multipart
// writer computes the boundary; its content type is passed through untouched.
func (repo *userRepository) UpdateMyPhoto(ctx context.Context, filename string, photo io.Reader) (user.User, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return user.User{}, errors.Wrap(err, "creating form file")
	}
	if _, err := io.Copy(fw, photo); err != nil {
		return user.User{}, errors.Wrap(err, "copying photo")
	}
	if err := mw.Close(); err != nil {
		return user.User{}, errors.Wrap(err, "closing multipart writer")
	}

	var usr user.User
	err = repo.client.do(ctx, http.MethodPut, "/users/me/photo", nil, &body, mw.FormDataContentType(), &usr)
	return usr, err
}
