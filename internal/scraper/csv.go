package scraper

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"econome/internal/model"
)

var csvHeader = []string{"id", "store_name", "product_name", "url", "price", "last_checked_at"}

// WriteCSV grava os registros no formato que a ingestão consome.
func WriteCSV(path string, records []model.RawRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	for i, rec := range records {
		row := []string{
			strconv.Itoa(i + 1),
			rec.StoreName,
			rec.ProductName,
			rec.URL,
			rec.Price,
			now,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
