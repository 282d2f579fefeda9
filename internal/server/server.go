package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthResponse struct {
	Status string `json:"status"`
	Store  bool   `json:"store"`
}

// New は各サービス共通のechoを組み立てる。/healthだけは認証なし。
func New(serviceName string, db *gorm.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		store := false
		if db != nil {
			if sqlDB, err := db.DB(); err == nil && sqlDB.Ping() == nil {
				store = true
			}
		}
		return c.JSON(http.StatusOK, HealthResponse{
			Status: serviceName + " service is running",
			Store:  store,
		})
	})

	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}
