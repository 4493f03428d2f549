package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/atlasledger/go-bank-recon/internal/models"
)

type ReconPrometheusMetrics struct {
	outcomesTotal     *prometheus.CounterVec
	batchDurationHist *prometheus.HistogramVec
	retriesTotal      prometheus.Counter
}

func newReconPrometheusMetrics(reg prometheus.Registerer) *ReconPrometheusMetrics {
	mtc := &ReconPrometheusMetrics{
		outcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recon_executor_outcomes_total",
				Help: "Number of reconciliation outcomes by status",
			},
			[]string{"status"},
		),
		batchDurationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recon_batch_duration_seconds",
				Help:    "Duration of reconciliation batches in seconds.",
				Buckets: []float64{0.010, 0.100, 0.500, 1, 2, 5, 10, 30, 60, 120, 300},
			},
			[]string{"success"},
		),
		retriesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "recon_ledger_retries_total",
				Help: "Number of retried ledger reconcile calls",
			},
		),
	}

	reg.MustRegister(mtc.outcomesTotal, mtc.batchDurationHist, mtc.retriesTotal)

	return mtc
}

func (m *ReconPrometheusMetrics) Record(startTime time.Time, result *models.ReconBatchResult) {
	if m == nil || result == nil {
		return
	}

	m.outcomesTotal.WithLabelValues(models.ReconStatusReconciled).Add(float64(result.Reconciled))
	m.outcomesTotal.WithLabelValues(models.ReconStatusError).Add(float64(result.Failed))
	m.outcomesTotal.WithLabelValues(models.ReconStatusSkipped).Add(float64(result.Skipped))

	success := "true"
	if !result.Success {
		success = "false"
	}
	m.batchDurationHist.WithLabelValues(success).Observe(time.Since(startTime).Seconds())
}

func (m *ReconPrometheusMetrics) RecordRetry() {
	if m == nil {
		return
	}
	m.retriesTotal.Inc()
}
