package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "interview_scheduler"

// Причины неуспешного бронирования
const (
	ReasonInvalidRequest = "invalid_request"
	ReasonStorage        = "storage_unavailable"
	ReasonConflict       = "conflict"
	ReasonNoAvailability = "no_availability"
)

// Metrics счётчики планировщика собеседований.
// Все методы допускают nil-получатель, чтобы метрики можно было не подключать.
type Metrics struct {
	reserved   prometheus.Counter
	conflicts  prometheus.Counter
	failures   *prometheus.CounterVec
	leadDays   prometheus.Histogram
	notifyErrs prometheus.Counter
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		reserved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_reserved_total",
			Help:      "Interview slots successfully reserved.",
		}),
		conflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_conflicts_total",
			Help:      "Inserts rejected by the start_time unique constraint.",
		}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduling_failures_total",
			Help:      "Scheduling calls that ended without a reserved slot.",
		}, []string{"reason"}),
		leadDays: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slot_lead_days",
			Help:      "Days between the first candidate day and the reserved slot.",
			Buckets:   []float64{0, 1, 2, 3, 5, 7, 14, 30},
		}),
		notifyErrs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Confirmations that could not be delivered.",
		}),
	}
}

func (m *Metrics) SlotReserved(leadDays int) {
	if m == nil {
		return
	}
	m.reserved.Inc()
	m.leadDays.Observe(float64(leadDays))
}

func (m *Metrics) InsertConflict() {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

func (m *Metrics) SchedulingFailed(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(reason).Inc()
}

func (m *Metrics) NotificationFailed() {
	if m == nil {
		return
	}
	m.notifyErrs.Inc()
}

// Handler отдаёт метрики из g в формате Prometheus
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
