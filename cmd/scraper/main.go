package main

import (
	"flag"
	"log"

	"econome/internal/config"
	"econome/internal/model"
	"econome/internal/scraper"
)

// go run cmd/scraper/main.go -store=Target -out=target_products.csv -pages=9
func main() {
	store := flag.String("store", "Target", "Nome da loja")
	out := flag.String("out", "target_products.csv", "Arquivo CSV de saída")
	pages := flag.Int("pages", 9, "Quantidade de páginas de listagem")
	flag.Parse()

	cfg := config.Load()
	s := scraper.New(*store, cfg.ScrapeBaseURL)

	var records []model.RawRecord
	for page := 1; page <= *pages; page++ {
		html, err := scraper.FetchPage(s.PageURL(page))
		if err != nil {
			log.Printf("Erro ao buscar página %d: %v", page, err)
			continue
		}

		recs, err := s.ParseListing(html)
		if err != nil {
			log.Printf("Erro ao interpretar página %d: %v", page, err)
			continue
		}
		records = append(records, recs...)
	}

	if err := scraper.WriteCSV(*out, records); err != nil {
		log.Fatalf("Erro ao gravar %s: %v", *out, err)
	}
	log.Printf("Raspagem finalizada: %d produtos gravados em %s", len(records), *out)
}
