package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"econome/internal/compare"
	"econome/internal/config"
	"econome/internal/db"
	"econome/internal/ingest"
	"econome/internal/observability"
	"econome/internal/repository"
	"econome/internal/server"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Erro ao preparar o banco: %v", err)
	}

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Erro ao conectar no Postgres: %v", err)
	}
	defer dbConn.Close()

	repo := &repository.MarketplaceRepository{DB: dbConn}
	runner := &ingest.Runner{Store: repo}

	observability.Start(cfg.MetricsPort)

	// Ingestão inicial: popula o marketplace com os CSVs raspados
	summary, err := runner.Run(ctx, cfg.Sources)
	if err != nil {
		log.Fatalf("Erro na ingestão inicial: %v", err)
	}
	log.Printf("Ingestão inicial %s: %d inseridos, %d pulados, %d rejeitados",
		summary.RunID, summary.Inserted, summary.Skipped, summary.Rejected)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	cache := &compare.Cache{Client: redisClient}
	client := openai.NewClient(cfg.OpenAIKey)

	http.Handle("/marketplace", server.ListHandler(repo))
	http.Handle("/marketplace/ingest", server.IngestHandler(runner, cfg.Sources))
	http.Handle("/marketplace/compare", server.CompareHandler(repo, cache, client))

	log.Println("Marketplace rodando :" + cfg.HTTPPort)
	http.ListenAndServe(":"+cfg.HTTPPort, nil)
}
