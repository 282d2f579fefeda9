package main

import (
	"context"

	"app/internal/auth"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/middleware"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは任意（無ければ環境変数とデフォルトだけで動く）
	_ = godotenv.Load()

	cfg := config.Load("8081", "./catalog.db")

	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		panic(err)
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)

	// 空のときだけサンプル商品を投入
	if err := db.SeedProducts(context.Background(), productRepo); err != nil {
		panic(err)
	}

	uc := usecase.NewCatalogUsecase(productRepo)
	h := handler.NewCatalogHandler(uc)

	e := server.New("Catalog", gormDB)
	authn := auth.NewStaticKeyAuthenticator(cfg.APIKey)
	h.RegisterRoutes(e, middleware.APIKey(authn))

	if err := server.Start(e, cfg.Port); err != nil {
		panic(err)
	}
}
