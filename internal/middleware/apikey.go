package middleware

import (
	"net/http"

	"app/internal/auth"

	"github.com/labstack/echo/v4"
)

const HeaderAPIKey = "X-API-Key"

type errorResponse struct {
	Error string `json:"error"`
}

// APIKey はX-API-Keyヘッダを検証するミドルウェア。
// /health以外の全エンドポイントに掛ける。
func APIKey(a auth.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !a.Authenticate(c.Request().Header.Get(HeaderAPIKey)) {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			}
			return next(c)
		}
	}
}
