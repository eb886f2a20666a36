package metrics

import (
	"net/http"

	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry - счётчики запусков загрузки заказов
type Registry struct {
	reg         *prometheus.Registry
	Runs        *prometheus.CounterVec
	Fetched     prometheus.Counter
	Rejected    prometheus.Counter
	Inserted    prometheus.Counter
	Updated     prometheus.Counter
	RunDuration prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "pedidos_runs_total", Help: "Pipeline runs by outcome."}, []string{"outcome"})
	fetched := prometheus.NewCounter(prometheus.CounterOpts{Name: "pedidos_fetched_total", Help: "Records received from the orders API."})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "pedidos_rejected_total", Help: "Records rejected by the extractor."})
	inserted := prometheus.NewCounter(prometheus.CounterOpts{Name: "pedidos_inserted_total", Help: "Orders inserted."})
	updated := prometheus.NewCounter(prometheus.CounterOpts{Name: "pedidos_status_updated_total", Help: "Order statuses changed by reconcile."})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pedidos_run_duration_seconds",
		Help:    "Pipeline run duration.",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(runs, fetched, rejected, inserted, updated, duration)
	return &Registry{
		reg:         r,
		Runs:        runs,
		Fetched:     fetched,
		Rejected:    rejected,
		Inserted:    inserted,
		Updated:     updated,
		RunDuration: duration,
	}
}

// Observe - учёт итогов запуска; nil-реестр допустим
func (r *Registry) Observe(report models.Report) {
	if r == nil {
		return
	}
	r.Runs.WithLabelValues(report.Outcome).Inc()
	r.Fetched.Add(float64(report.Fetched))
	r.Rejected.Add(float64(report.Rejected))
	r.Inserted.Add(float64(report.Inserted))
	r.Updated.Add(float64(report.Updated))
	r.RunDuration.Observe(report.Duration.Seconds())
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
