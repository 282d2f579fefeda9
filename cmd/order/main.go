package main

import (
	"app/internal/auth"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/middleware"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load("8083", "./order.db")

	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		panic(err)
	}

	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)

	uc := usecase.NewOrderUsecase(orderRepo, orderItemRepo, &uuidGenerator{})
	h := handler.NewOrderHandler(uc)

	e := server.New("Order", gormDB)
	authn := auth.NewStaticKeyAuthenticator(cfg.APIKey)
	h.RegisterRoutes(e, middleware.APIKey(authn))

	if err := server.Start(e, cfg.Port); err != nil {
		panic(err)
	}
}
