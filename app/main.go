package main

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"facilities-system/internal/routes"
	"facilities-system/migrations"
	"facilities-system/pkg/config"
	"facilities-system/pkg/customvalidator"
	"facilities-system/pkg/database/postgresql"
	"facilities-system/pkg/logger"
	"facilities-system/pkg/middleware"
	"facilities-system/pkg/utils"
)

func main() {
	baseLogger := logger.NewLogger()
	defer baseLogger.Sync()

	cfg := config.New()

	pool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer pool.Close()

	if err := migrations.Up(pool); err != nil {
		baseLogger.Fatal("erro ao aplicar migrações", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()

	e := echo.New()
	e.HideBanner = true

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		baseLogger.Fatal("erro ao registrar validações", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestID(logger.Named(baseLogger, "http")))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	routes.InitRouter(e, pool, redisClient, cfg, routes.Loggers{
		Locations:   logger.Named(baseLogger, "localizacoes"),
		Equipment:   logger.Named(baseLogger, "equipamentos"),
		Maintenance: logger.Named(baseLogger, "manutencoes"),
		Consumption: logger.Named(baseLogger, "consumo"),
		Dashboard:   logger.Named(baseLogger, "painel"),
	})

	address := fmt.Sprintf(":%s", cfg.Server.Port)
	baseLogger.Info("servidor iniciado", zap.String("address", address))
	if err := e.Start(address); err != nil {
		baseLogger.Fatal("servidor encerrado", zap.Error(err))
	}
}
