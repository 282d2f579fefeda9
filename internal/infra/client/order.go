package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// OrderClient はPaymentからOrderサービスを呼ぶHTTPクライアント。
type OrderClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewOrderClient(baseURL string, apiKey string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// MarkPaid は POST /orders/{order_id}/payment を1回だけ呼ぶ。
// タイムアウトも404もエラーとして返すだけで、リトライしない。
func (c *OrderClient) MarkPaid(ctx context.Context, orderID string) error {
	endpoint := c.BaseURL + "/orders/" + url.PathEscape(orderID) + "/payment"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("order service responded %d", resp.StatusCode)
	}
	return nil
}
