package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	RedisURL      string
	OpenAIKey     string
	MetricsPort   string
	HTTPPort      string
	ScrapeBaseURL string
	Sources       []string
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		ScrapeBaseURL: getEnv("SCRAPE_BASE_URL", "https://www.target.com/c/fresh-vegetables-produce-grocery/-/N-4tglh"),
		Sources:       splitList(getEnv("INGEST_SOURCES", "target_products.csv")),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
