package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	IngestInserted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_ingest_inserted_total",
			Help: "Total de produtos inseridos pela ingestão",
		},
	)
	IngestSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_ingest_skipped_total",
			Help: "Total de produtos pulados por já existirem",
		},
	)
	IngestRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_ingest_rejected_total",
			Help: "Total de registros crus rejeitados na normalização",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(IngestInserted, IngestSkipped, IngestRejected)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
