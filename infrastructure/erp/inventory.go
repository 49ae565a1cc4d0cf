package erp

import (
	"context"
	"net/http"
	"net/url"
)

type godownsResponse struct {
	envelope
	Data []Godown `json:"data"`
}

// ListStockLocations fetches godowns, optionally filtered by type.
func (c *Client) ListStockLocations(ctx context.Context, locType string) ([]Godown, error) {
	var query url.Values
	if locType != "" {
		query = url.Values{"type": {locType}}
	}
	var resp godownsResponse
	if err := c.do(ctx, http.MethodGet, "/inventory/stock-locations", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateStockLocation adds a godown.
func (c *Client) CreateStockLocation(ctx context.Context, godown Godown) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/inventory/stock-locations", nil, godown, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateStockLocation edits an existing godown.
func (c *Client) UpdateStockLocation(ctx context.Context, godown Godown) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/inventory/stock-locations", nil, godown, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

type productsResponse struct {
	envelope
	Data []Product `json:"data"`
}

// ListProducts fetches the product lookup list.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var resp productsResponse
	if err := c.do(ctx, http.MethodGet, "/inventory/products", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type suppliersResponse struct {
	envelope
	Data []Supplier `json:"data"`
}

// ListSuppliers fetches the supplier lookup list.
func (c *Client) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	var resp suppliersResponse
	if err := c.do(ctx, http.MethodGet, "/inventory/suppliers", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// AddStockToGodown submits a single batch stock-addition.
func (c *Client) AddStockToGodown(ctx context.Context, input StockAddInput) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/inventory/stock/add-to-godown", nil, input, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// CreatePlantReceipt submits a plant receipt voucher with its derived totals.
func (c *Client) CreatePlantReceipt(ctx context.Context, input PlantReceiptInput) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/inventory/plant/receipt", nil, input, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
