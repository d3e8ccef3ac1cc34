package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"facilities-system/migrations"
	"facilities-system/pkg/config"
	"facilities-system/pkg/database/postgresql"
	"facilities-system/pkg/logger"
	"facilities-system/seeders"
)

func main() {
	migrate := flag.Bool("migrate", true, "aplicar migrações antes do seed")
	flag.Parse()

	baseLogger := logger.NewLogger()
	defer baseLogger.Sync()
	log := logger.Named(baseLogger, "seed")

	cfg := config.New()
	pool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer pool.Close()

	if *migrate {
		if err := migrations.Up(pool); err != nil {
			log.Fatal("erro ao aplicar migrações", zap.Error(err))
		}
	}

	if err := seeders.Run(context.Background(), pool, log); err != nil {
		log.Fatal("erro ao popular o banco", zap.Error(err))
	}
	log.Info("banco populado com sucesso")
}
