package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"econome/internal/config"
	"econome/internal/db"
	"econome/internal/ingest"
	"econome/internal/repository"
)

// go run cmd/ingest/main.go -sources="target_products.csv,walmart_products.csv"
func main() {
	sourcesArg := flag.String("sources", "", "CSVs separados por vírgula (padrão: INGEST_SOURCES)")
	flag.Parse()

	cfg := config.Load()

	sources := cfg.Sources
	if *sourcesArg != "" {
		sources = strings.Split(*sourcesArg, ",")
		for i := range sources {
			sources[i] = strings.TrimSpace(sources[i])
		}
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Erro ao preparar o banco: %v", err)
	}

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Erro ao conectar no Postgres: %v", err)
	}
	defer dbConn.Close()

	runner := &ingest.Runner{
		Store: &repository.MarketplaceRepository{DB: dbConn},
	}

	summary, err := runner.Run(ctx, sources)
	if err != nil {
		log.Fatalf("Erro na ingestão: %v", err)
	}

	log.Printf("Ingestão %s finalizada: %d inseridos, %d pulados, %d rejeitados (%d fonte(s) ausente(s))",
		summary.RunID, summary.Inserted, summary.Skipped, summary.Rejected, len(summary.Missing))
}
