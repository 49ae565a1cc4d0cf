package erp

import (
	"context"
	"net/http"
)

type agencyLookupResponse struct {
	envelope
	Data Agency `json:"data"`
}

// GetAgencyByID looks up any agency for the super-admin deletion flow.
func (c *Client) GetAgencyByID(ctx context.Context, id string) (Agency, error) {
	var resp agencyLookupResponse
	if err := c.do(ctx, http.MethodGet, "/super-admin/agency/"+id, nil, nil, &resp); err != nil {
		return Agency{}, err
	}
	return resp.Data, nil
}

// DeleteAgency irreversibly deletes an agency. Callers gate this behind the
// confirmation-code flow; the client itself applies no extra guard.
func (c *Client) DeleteAgency(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/super-admin/agency/"+id, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
