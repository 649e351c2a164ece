package main

import (
	"os"
	"time"

	"bookstore/internal/config"
	"bookstore/internal/domain/model"
	"bookstore/internal/events"
	"bookstore/internal/handler"
	"bookstore/internal/infra/db"
	"bookstore/internal/infra/mq"
	infraRepo "bookstore/internal/infra/repository"
	"bookstore/internal/payment"
	"bookstore/internal/server"
	"bookstore/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	// .env is optional outside local dev
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Book{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.User{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	bookRepo := infraRepo.NewBookGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	var pub events.Publisher = events.NopPublisher{}
	if cfg.RabbitURL != "" {
		rb, err := mq.NewRabbit(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbit connect failed")
		}
		defer rb.Close()
		pub = rb
		log.Info().Str("exchange", cfg.RabbitExchange).Msg("event publishing enabled")
	}

	gateway := payment.NewStaticGateway()

	catalogUC := usecase.NewCatalogUsecase(bookRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, bookRepo)
	orderUC := usecase.NewOrderUsecase(txManager, pub)
	paymentUC := usecase.NewPaymentUsecase(txManager, paymentRepo, gateway)
	profileUC := usecase.NewProfileUsecase(userRepo)

	e := server.New(cfg, server.Handlers{
		Health:  handler.NewHealthHandler(),
		Catalog: handler.NewCatalogHandler(catalogUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(orderUC),
		Payment: handler.NewPaymentHandler(paymentUC),
		Profile: handler.NewProfileHandler(profileUC),
	})

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting bookstore api")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
