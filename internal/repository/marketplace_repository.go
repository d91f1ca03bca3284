package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"econome/internal/model"
)

// ErrDuplicate indica violação da unicidade (store_name, product_name).
var ErrDuplicate = errors.New("marketplace: produto duplicado")

type MarketplaceRepository struct {
	DB *sql.DB
}

// FindByKey busca a linha pela chave exata (store_name, product_name).
// Devolve nil sem erro quando a linha não existe.
func (r *MarketplaceRepository) FindByKey(ctx context.Context, store, product string) (*model.Product, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, store_name, product_name, url, price, last_checked_at
		FROM marketplace
		WHERE store_name = $1 AND product_name = $2
	`, store, product)

	var p model.Product
	err := row.Scan(&p.ID, &p.StoreName, &p.ProductName, &p.URL, &p.Price, &p.LastCheckedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MarketplaceRepository) Insert(ctx context.Context, p model.Product) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO marketplace (store_name, product_name, url, price, last_checked_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.StoreName, p.ProductName, p.URL, p.Price, p.LastCheckedAt).Scan(&id)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return 0, ErrDuplicate
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List devolve as linhas cujo product_name contém o filtro, sem diferenciar
// maiúsculas. Filtro vazio lista tudo.
func (r *MarketplaceRepository) List(ctx context.Context, filter string) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, store_name, product_name, url, price, last_checked_at
		FROM marketplace
		WHERE product_name ILIKE '%' || $1 || '%'
		ORDER BY id
	`, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.StoreName, &p.ProductName, &p.URL, &p.Price, &p.LastCheckedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
