package db

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	_ "github.com/lib/pq"
)

func New(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

// Migrate garante a tabela marketplace. A constraint UNIQUE em
// (store_name, product_name) é o que mantém a deduplicação correta quando
// duas ingestões rodam ao mesmo tempo.
func Migrate(ctx context.Context, url string) error {
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS marketplace (
			id BIGSERIAL PRIMARY KEY,
			store_name VARCHAR(100) NOT NULL,
			product_name VARCHAR(100) NOT NULL,
			url VARCHAR(255) NOT NULL,
			price NUMERIC(10, 2) NOT NULL,
			last_checked_at TIMESTAMP NOT NULL,
			UNIQUE (store_name, product_name)
		)
	`)
	return err
}
