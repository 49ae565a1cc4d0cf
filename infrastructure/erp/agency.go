package erp

import (
	"context"
	"net/http"
)

type agencyResponse struct {
	envelope
	Data Agency `json:"data"`
}

// MyAgency fetches the current agency profile.
func (c *Client) MyAgency(ctx context.Context) (Agency, error) {
	var resp agencyResponse
	if err := c.do(ctx, http.MethodGet, "/admin/my-agency", nil, nil, &resp); err != nil {
		return Agency{}, err
	}
	return resp.Data, nil
}

// UpdateMyAgency submits the edited agency copy. The server remains source
// of truth; the console refetches rather than reconciling.
func (c *Client) UpdateMyAgency(ctx context.Context, agency Agency) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/admin/my-agency", nil, agency, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
