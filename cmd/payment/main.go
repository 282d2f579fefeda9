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

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load("8084", "./payment.db")

	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(&model.Payment{}); err != nil {
		panic(err)
	}

	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	orders := client.NewOrderClient(cfg.OrderURL, cfg.APIKey, cfg.HTTPTimeout)

	logger := log.New("payment")
	uc := usecase.NewPaymentUsecase(paymentRepo, orders, &uuidGenerator{}, logger)
	h := handler.NewPaymentHandler(uc)

	e := server.New("Payment", gormDB)
	authn := auth.NewStaticKeyAuthenticator(cfg.APIKey)
	h.RegisterRoutes(e, middleware.APIKey(authn))

	if err := server.Start(e, cfg.Port); err != nil {
		panic(err)
	}
}
