package postgresql

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectDB(dsn string) *pgxpool.Pool {
	dbpool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Erro ao criar o pool de conexões com o banco: %v", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Não foi possível pingar o banco de dados: %v", err)
	}

	log.Println("✅ Conectado ao PostgreSQL")
	return dbpool
}
