package app

import (
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/config"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/handler"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/payment"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/repository"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/service"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/ws"

	"github.com/rs/zerolog/log"
)

func Run(cfg *config.Config) {
	db, err := repository.NewDB(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	rdb, err := repository.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	presenceRepo := repository.NewPresenceRepository(rdb)

	hub := ws.NewHub(presenceRepo)

	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(messageRepo, hub)

	var provider payment.Provider
	if cfg.RazorpayKeyID != "" && cfg.RazorpaySecret != "" {
		provider = payment.NewRazorpayProvider(cfg.RazorpayKeyID, cfg.RazorpaySecret)
	} else {
		log.Warn().Msg("razorpay keys not set, using mock payment provider")
		provider = payment.NewMockProvider()
	}
	paymentService := service.NewPaymentService(provider, userRepo)

	userHandler := handler.NewUserHandler(userService, presenceRepo)
	messageHandler := handler.NewMessageHandler(messageService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	wsHandler := handler.NewWSHandler(hub, messageService, ws.NewUpgrader(cfg.Env))

	server := NewServer(userHandler, messageHandler, paymentHandler, wsHandler)
	server.Run(cfg.ServerPort)
}
