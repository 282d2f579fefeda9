package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/auth"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoWithAPIKey(key string) *echo.Echo {
	e := echo.New()
	authn := auth.NewStaticKeyAuthenticator(key)
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, middleware.APIKey(authn))
	return e
}

func TestAPIKey_ValidKey(t *testing.T) {
	e := newEchoWithAPIKey("secret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.HeaderAPIKey, "secret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKey_MissingKey(t *testing.T) {
	e := newEchoWithAPIKey("secret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKey_WrongKey(t *testing.T) {
	e := newEchoWithAPIKey("secret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.HeaderAPIKey, "wrong")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 空のキーで設定されていても空の資格情報は拒否する
func TestAPIKey_EmptyConfiguredKeyStillRejectsEmptyHeader(t *testing.T) {
	e := newEchoWithAPIKey("")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
