package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRecord é uma linha crua vinda do scraper (ou de um CSV raspado),
// antes de qualquer validação.
type RawRecord struct {
	StoreName   string
	ProductName string
	URL         string
	Price       string
}

// Product é a linha durável da tabela marketplace.
type Product struct {
	ID            int64           `json:"id"`
	StoreName     string          `json:"store_name"`
	ProductName   string          `json:"product_name"`
	URL           string          `json:"url"`
	Price         decimal.Decimal `json:"price"`
	LastCheckedAt time.Time       `json:"last_checked_at"`
}
