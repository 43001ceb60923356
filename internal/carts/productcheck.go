package carts

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ProductChecker verifies that a product id refers to a real catalog record.
// Implementations report transport failures as errors; the service maps those
// to a dependency-unavailable response.
type ProductChecker interface {
	Exists(ctx context.Context, productID string) (bool, error)
}

// HTTPProductChecker asks the product service over HTTP.
type HTTPProductChecker struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProductChecker(baseURL string, timeout time.Duration) *HTTPProductChecker {
	return &HTTPProductChecker{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPProductChecker) Exists(ctx context.Context, productID string) (bool, error) {
	url := fmt.Sprintf("%s/products/%s", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("building product lookup request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("product lookup: %w", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
