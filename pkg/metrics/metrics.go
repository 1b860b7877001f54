// Package metrics exposes Prometheus instrumentation for the extraction
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Extraction counts pipeline activity by outcome.
type Extraction struct {
	UploadsProcessed *prometheus.CounterVec
	RowsExtracted    prometheus.Counter
	ConfirmedRows    prometheus.Counter
}

// NewExtraction registers and returns the extraction metric set.
func NewExtraction(reg prometheus.Registerer) *Extraction {
	m := &Extraction{
		UploadsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docledger",
			Name:      "uploads_processed_total",
			Help:      "Uploads run through the extraction pipeline, by result.",
		}, []string{"result"}),
		RowsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docledger",
			Name:      "rows_extracted_total",
			Help:      "Candidate transactions surviving the validation gate at preview time.",
		}),
		ConfirmedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docledger",
			Name:      "rows_confirmed_total",
			Help:      "Transactions persisted at confirmation time.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.UploadsProcessed, m.RowsExtracted, m.ConfirmedRows)
	}
	return m
}
