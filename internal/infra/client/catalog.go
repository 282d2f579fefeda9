package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CatalogClient はCartからCatalogサービスを呼ぶHTTPクライアント。
type CatalogClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewCatalogClient(baseURL string, apiKey string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type ProductDTO struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

// ListProducts は GET /products を1回だけ呼ぶ。リトライしない。
func (c *CatalogClient) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/products", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog responded %d", resp.StatusCode)
	}

	var out []ProductDTO
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProductIDs はカート検証用にID集合だけを返す。
func (c *CatalogClient) ListProductIDs(ctx context.Context) ([]int64, error) {
	products, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
