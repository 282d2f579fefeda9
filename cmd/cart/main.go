package main

import (
	"app/internal/auth"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/client"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/middleware"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load("8082", "./cart.db")

	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(&model.CartItem{}); err != nil {
		panic(err)
	}

	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	catalog := client.NewCatalogClient(cfg.CatalogURL, cfg.APIKey, cfg.HTTPTimeout)

	logger := log.New("cart")
	uc := usecase.NewCartUsecase(
		cartRepo,
		catalog,
		usecase.ValidationPolicy(cfg.ValidationPolicy),
		logger,
	)
	h := handler.NewCartHandler(uc)

	e := server.New("Cart", gormDB)
	authn := auth.NewStaticKeyAuthenticator(cfg.APIKey)
	h.RegisterRoutes(e, middleware.APIKey(authn))

	if err := server.Start(e, cfg.Port); err != nil {
		panic(err)
	}
}
