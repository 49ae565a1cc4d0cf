package erp

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	envelope
	Data *LoginResult `json:"data"`
}

// Login authenticates the operator against the ERP. The contract only
// guarantees {success, message}; when the server attaches an identity in
// data it is used, otherwise the operator defaults to the admin role.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/user/login", nil, loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return LoginResult{}, "", err
	}
	result := LoginResult{}
	if resp.Data != nil {
		result = *resp.Data
	}
	return result, resp.Message, nil
}

type messageResponse struct {
	envelope
}

// Register creates an agency together with its admin user.
func (c *Client) Register(ctx context.Context, input RegisterInput) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, input, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
