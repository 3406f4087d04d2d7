package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "lendlink-backend/internal/adapter/http"
	mw "lendlink-backend/internal/adapter/middleware"
	"lendlink-backend/internal/adapter/repository/mysql"
	"lendlink-backend/internal/auth"
	"lendlink-backend/internal/config"
	"lendlink-backend/internal/infrastructure/cache"
	"lendlink-backend/internal/infrastructure/db"
	adminUC "lendlink-backend/internal/usecase/admin"
	appUC "lendlink-backend/internal/usecase/application"
	authUC "lendlink-backend/internal/usecase/auth"
	offerUC "lendlink-backend/internal/usecase/offer"
	paymentUC "lendlink-backend/internal/usecase/payment"
	"lendlink-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zap.L().Fatal("mysql connect failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB, 0)
	if err != nil {
		zap.L().Fatal("redis connect failed", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	tokens := auth.NewTokenManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSecret,
		time.Duration(cfg.JWTTTLMins)*time.Minute)

	users := mysql.NewUserRepository(gdb)
	offers := mysql.NewOfferRepository(gdb)
	applications := mysql.NewApplicationRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	handlers := httpadp.Handlers{
		Base:        httpadp.NewHandler(),
		Auth:        httpadp.NewAuthHandler(authUC.NewUsecase(users, tokens)),
		Offer:       httpadp.NewOfferHandler(offerUC.NewUsecase(offers, users)),
		Application: httpadp.NewApplicationHandler(appUC.NewUsecase(applications, offers, payments, uow)),
		Payment:     httpadp.NewPaymentHandler(paymentUC.NewUsecase(payments, applications, offers)),
		Admin:       httpadp.NewAdminHandler(adminUC.NewUsecase(users, offers, applications, payments)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	httpadp.RegisterRoutes(e, handlers, tokens, idemp)

	addr := ":" + cfg.AppPort
	zap.L().Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
