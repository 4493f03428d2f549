package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/atlasledger/go-bank-recon/internal/models"
)

type MatchingPrometheusMetrics struct {
	matchesTotal    *prometheus.CounterVec
	rejectionsTotal *prometheus.CounterVec
	matchRate       *prometheus.GaugeVec
	runDurationHist *prometheus.HistogramVec
}

func newMatchingPrometheusMetrics(reg prometheus.Registerer) *MatchingPrometheusMetrics {
	mtc := &MatchingPrometheusMetrics{
		matchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recon_matches_total",
				Help: "Number of matched bank transactions by match type",
			},
			[]string{"match_type"},
		),
		rejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recon_match_rejections_total",
				Help: "Number of unmatched bank transactions by rejection reason",
			},
			[]string{"reason"},
		),
		matchRate: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "recon_match_rate",
				Help: "Match rate of the last matching run per company",
			},
			[]string{"company_id"},
		),
		runDurationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recon_matching_run_duration_seconds",
				Help:    "Duration of matching runs in seconds.",
				Buckets: []float64{0.010, 0.100, 0.500, 1, 2, 5, 10, 30, 60, 120, 300},
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(mtc.matchesTotal, mtc.rejectionsTotal, mtc.matchRate, mtc.runDurationHist)

	return mtc
}

func (m *MatchingPrometheusMetrics) Record(startTime time.Time, report *models.MatchReport) {
	if m == nil || report == nil {
		return
	}

	for _, result := range report.Results {
		if result.Matched {
			m.matchesTotal.WithLabelValues(string(result.Kind)).Inc()
		}
	}

	for reason, count := range report.Summary.RejectionCounts {
		m.rejectionsTotal.WithLabelValues(string(reason)).Add(float64(count))
	}

	m.matchRate.WithLabelValues(strconv.FormatInt(report.CompanyID, 10)).Set(report.Summary.MatchRate)
	m.runDurationHist.WithLabelValues(string(report.Summary.Status)).
		Observe(time.Since(startTime).Seconds())
}
