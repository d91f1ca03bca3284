package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"econome/internal/model"
)

var requiredColumns = []string{"store_name", "product_name", "url", "price"}

// readSource lê um CSV de produtos raspados. O cabeçalho dá a posição das
// colunas; colunas além das obrigatórias (id, last_checked_at do scraper)
// são ignoradas. Linha curta vira campos vazios e cai na validação do
// Normalizer, não derruba a fonte.
func readSource(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("lendo cabeçalho de %s: %w", path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, c := range requiredColumns {
		if _, ok := col[c]; !ok {
			return nil, fmt.Errorf("%s: coluna obrigatória %q ausente", path, c)
		}
	}

	var records []model.RawRecord
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("lendo %s: %w", path, err)
		}
		records = append(records, model.RawRecord{
			StoreName:   field(row, col["store_name"]),
			ProductName: field(row, col["product_name"]),
			URL:         field(row, col["url"]),
			Price:       field(row, col["price"]),
		})
	}
	return records, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
