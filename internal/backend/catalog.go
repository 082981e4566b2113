package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront-gateway/internal/domain"
)

// ListProducts fetches the catalog, optionally filtered by a search term
// and a category id. Both filters are passed through untouched.
func (c *Client) ListProducts(ctx context.Context, search, categoryID string) ([]domain.Product, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if categoryID != "" {
		query.Set("category_id", categoryID)
	}
	var products []domain.Product
	if err := c.do(ctx, "", http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories fetches the category filter options.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, "", http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
