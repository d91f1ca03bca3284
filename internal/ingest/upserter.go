package ingest

import (
	"context"
	"errors"

	"econome/internal/model"
	"econome/internal/repository"
)

// ProductStore é a visão do repositório que a ingestão precisa.
type ProductStore interface {
	FindByKey(ctx context.Context, store, product string) (*model.Product, error)
	Insert(ctx context.Context, p model.Product) (int64, error)
}

type Outcome int

const (
	Inserted Outcome = iota
	Skipped
)

// Upsert insere o produto se a chave (store_name, product_name) ainda não
// existe na tabela. Linha existente não é tocada: o primeiro preço visto
// vence e só muda por atualização administrativa. Violação de unicidade no
// insert (corrida entre duas ingestões) também resolve como Skipped.
func Upsert(ctx context.Context, store ProductStore, p model.Product) (Outcome, error) {
	existing, err := store.FindByKey(ctx, p.StoreName, p.ProductName)
	if err != nil {
		return Skipped, err
	}
	if existing != nil {
		return Skipped, nil
	}

	_, err = store.Insert(ctx, p)
	if errors.Is(err, repository.ErrDuplicate) {
		return Skipped, nil
	}
	if err != nil {
		return Skipped, err
	}
	return Inserted, nil
}
