package erp

import (
	"context"
	"net/http"
)

type usersResponse struct {
	envelope
	Users []User `json:"users"`
}

// ListUsers fetches the staff users of the agency.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

type statsResponse struct {
	envelope
	Stats map[string]int `json:"stats"`
}

// AgencyStats fetches per-role user counts.
func (c *Client) AgencyStats(ctx context.Context) (map[string]int, error) {
	var resp statsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/agency-stats", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

// CreateUser creates a staff user.
func (c *Client) CreateUser(ctx context.Context, user User) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/admin/create-user", nil, user, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateUser updates an existing staff user.
func (c *Client) UpdateUser(ctx context.Context, id string, user User) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/admin/user/"+id, nil, user, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// DeleteUser removes a staff user.
func (c *Client) DeleteUser(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/admin/user/"+id, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

type statusRequest struct {
	IsActive bool `json:"isActive"`
}

// SetUserStatus toggles a user's isActive flag.
func (c *Client) SetUserStatus(ctx context.Context, id string, isActive bool) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/admin/user/"+id+"/status", nil, statusRequest{IsActive: isActive}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
