package ingest

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"econome/internal/model"
)

var (
	// ErrInvalidPrice: nada aproveitável sobrou do preço após a limpeza.
	ErrInvalidPrice = errors.New("ingest: preço inválido")
	// ErrMissingField: loja ou nome do produto vazio.
	ErrMissingField = errors.New("ingest: campo obrigatório ausente")
)

// Normalizer valida um RawRecord e o converte em Product. O relógio é
// injetável para os testes; zerado, usa time.Now.
type Normalizer struct {
	Now func() time.Time
}

// Normalize limpa o preço removendo qualquer caractere que não seja dígito
// ou ponto e interpreta o resto como decimal. "5,89" vira 589 de propósito:
// não há parse por locale aqui, o scraper só produz preço em dólar. O sinal
// também é removido na limpeza, então preço negativo nunca chega ao parser.
// Loja, produto e URL passam adiante como vieram.
func (n *Normalizer) Normalize(raw model.RawRecord) (model.Product, error) {
	if raw.StoreName == "" || raw.ProductName == "" {
		return model.Product{}, ErrMissingField
	}

	price, err := decimal.NewFromString(stripPrice(raw.Price))
	if err != nil {
		return model.Product{}, ErrInvalidPrice
	}

	return model.Product{
		StoreName:     raw.StoreName,
		ProductName:   raw.ProductName,
		URL:           raw.URL,
		Price:         price,
		LastCheckedAt: n.now().Truncate(time.Second),
	}, nil
}

func (n *Normalizer) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

func stripPrice(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
