package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/infra/client"

	"github.com/stretchr/testify/assert"
)

func TestCatalogClient_ListProductIDs_Success(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Laptop","price":999.99,"stock":10},{"id":2,"name":"Mouse","price":29.99,"stock":50}]`))
	}))
	defer srv.Close()

	c := client.NewCatalogClient(srv.URL, "secret", 2*time.Second)

	ids, err := c.ListProductIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
	assert.Equal(t, "secret", gotKey)
}

func TestCatalogClient_ListProducts_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := client.NewCatalogClient(srv.URL, "secret", 2*time.Second)

	_, err := c.ListProducts(context.Background())
	assert.Error(t, err)
}

// タイムアウトはエラーとして返る（リトライしない）。fail-openの判断は呼び出し側。
func TestCatalogClient_ListProducts_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := client.NewCatalogClient(srv.URL, "secret", 20*time.Millisecond)

	_, err := c.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestCatalogClient_ListProducts_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // すぐ閉じて到達不能にする

	c := client.NewCatalogClient(srv.URL, "secret", 2*time.Second)

	_, err := c.ListProducts(context.Background())
	assert.Error(t, err)
}
