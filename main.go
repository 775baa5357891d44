package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"campus-events/config"
	"campus-events/internal/handler"
	"campus-events/internal/middleware"
	"campus-events/internal/repository"
	"campus-events/internal/service"
	"campus-events/pkg/database"
	"campus-events/pkg/logger"
	"campus-events/pkg/rabbitmq"
	"campus-events/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db := database.NewPostgresDB(cfg.DSN(), log)
	if err := database.Seed(db, log); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}

	// Redis is optional: without it logout cannot revoke tokens early and
	// sessions simply expire by TTL.
	var rdb *goredis.Client
	if cfg.RedisAddr != "" {
		rdb = goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, session revocation disabled", zap.Error(err))
			rdb = nil
		}
		cancel()
	}

	// RabbitMQ is optional as well; a nil publisher skips domain events.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer publisher.Close()
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, rdb, log)

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	authSvc := service.NewAuthService(userRepo)
	eventSvc := service.NewEventService(eventRepo, regRepo, publisher)
	regSvc := service.NewRegistrationService(regRepo, eventRepo, publisher)
	statsSvc := service.NewStatsService(eventRepo, regRepo, userRepo)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "campus-events"})
	})
	// Dashboards are served elsewhere; the root only points at the login
	// endpoint so the post-logout redirect lands somewhere sensible.
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "campus-events", "login": "/login"})
	})

	auth := middleware.SessionAuth(sessions)
	admin := middleware.RequireAdmin

	handler.NewAuthHandler(authSvc, sessions).RegisterRoutes(e)
	handler.NewEventHandler(eventSvc).RegisterRoutes(e, auth, admin)
	handler.NewRegistrationHandler(regSvc).RegisterRoutes(e, auth)
	handler.NewStatsHandler(statsSvc).RegisterRoutes(e, auth, admin)

	log.Info("campus-events starting", zap.String("port", cfg.ServerPort))
	if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
}
