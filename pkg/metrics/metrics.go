package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de ingesta expuestos en /metrics.
// source distingue el origen del lote: "text" o "xlsx".
var (
	IngestBatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_batches_total",
		Help: "Lotes de precios procesados, por origen y resultado.",
	}, []string{"source", "status"})

	IngestRowsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingest_rows_added_total",
		Help: "Cotizaciones insertadas correctamente.",
	})

	IngestRowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingest_rows_skipped_total",
		Help: "Filas descartadas durante el parseo de lotes.",
	})
)
