package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"econome/internal/compare"
	"econome/internal/ingest"
	"econome/internal/model"
)

// Lister é a visão de leitura do repositório usada pelos handlers.
type Lister interface {
	List(ctx context.Context, filter string) ([]model.Product, error)
}

// ListHandler responde GET /marketplace?search= com as linhas do
// marketplace filtradas por substring do nome do produto.
func ListHandler(repo Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		products, err := repo.List(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if products == nil {
			products = []model.Product{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

// IngestHandler dispara a ingestão sob demanda (POST /marketplace/ingest)
// e devolve o resumo da execução. Falha de armazenamento vira um único
// erro 500, sem rastro por registro.
func IngestHandler(runner *ingest.Runner, sources []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		summary, err := runner.Run(r.Context(), sources)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

type CompareResponse struct {
	Summary string `json:"summary"`
}

// CompareHandler responde GET /marketplace/compare?product= com o resumo
// do modelo sobre os preços que casam com o filtro, passando pelo cache.
func CompareHandler(repo Lister, cache *compare.Cache, client *openai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		filter := r.URL.Query().Get("product")

		if answer, ok := cache.Get(r.Context(), filter); ok {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(CompareResponse{Summary: answer})
			return
		}

		products, err := repo.List(r.Context(), filter)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if len(products) == 0 {
			http.Error(w, "nenhum produto encontrado", http.StatusNotFound)
			return
		}

		answer, err := compare.Compare(r.Context(), client, products)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if err := cache.Set(r.Context(), filter, answer); err != nil {
			log.Printf("[compare] erro ao salvar no cache: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CompareResponse{Summary: answer})
	}
}
