package ingest

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"econome/internal/observability"
)

// Summary agrega o resultado de uma execução da ingestão.
type Summary struct {
	RunID    string   `json:"run_id"`
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Rejected int      `json:"rejected"`
	Missing  []string `json:"missing_sources,omitempty"`
}

type Runner struct {
	Store      ProductStore
	Normalizer Normalizer
}

// Run processa as fontes na ordem dada. Fonte ausente gera aviso e é
// pulada; registro malformado é descartado e contado; erro de
// armazenamento aborta a execução inteira com um único erro.
func (r *Runner) Run(ctx context.Context, sources []string) (Summary, error) {
	summary := Summary{RunID: uuid.New().String()}
	log.Printf("[ingest] execução %s iniciada com %d fonte(s)", summary.RunID, len(sources))

	for _, src := range sources {
		records, err := readSource(src)
		if err != nil {
			if os.IsNotExist(err) {
				log.Printf("[ingest] fonte %s não encontrada, pulando", src)
			} else {
				log.Printf("[ingest] fonte %s ilegível, pulando: %v", src, err)
			}
			summary.Missing = append(summary.Missing, src)
			continue
		}

		for _, raw := range records {
			product, err := r.Normalizer.Normalize(raw)
			if err != nil {
				summary.Rejected++
				observability.IngestRejected.Inc()
				log.Printf("[ingest] registro rejeitado em %s (%q/%q): %v",
					src, raw.StoreName, raw.ProductName, err)
				continue
			}

			outcome, err := Upsert(ctx, r.Store, product)
			if err != nil {
				return summary, fmt.Errorf("ingestão abortada na fonte %s: %w", src, err)
			}
			if outcome == Inserted {
				summary.Inserted++
				observability.IngestInserted.Inc()
			} else {
				summary.Skipped++
				observability.IngestSkipped.Inc()
			}
		}
	}

	log.Printf("[ingest] execução %s finalizada: %d inseridos, %d pulados, %d rejeitados",
		summary.RunID, summary.Inserted, summary.Skipped, summary.Rejected)
	return summary, nil
}
