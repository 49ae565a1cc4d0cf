package erp

import (
	"context"
	"net/http"
)

type categoriesResponse struct {
	envelope
	Data []Category `json:"data"`
}

// ListCategories fetches all product categories, active and deactivated.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/admin/product-categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateCategory creates a product category.
func (c *Client) CreateCategory(ctx context.Context, category Category) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/admin/product-category", nil, category, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateCategory updates a product category.
func (c *Client) UpdateCategory(ctx context.Context, id string, category Category) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/admin/product-category/"+id, nil, category, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// DeleteCategory soft-deletes (deactivates) a product category.
func (c *Client) DeleteCategory(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/admin/product-category/"+id, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
