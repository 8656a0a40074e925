package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics colectores Prometheus del servicio. Se registran en el Registerer recibido
// para que los tests puedan usar un registro propio.
type Metrics struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	mutations     *prometheus.CounterVec
}

// New crea y registra los colectores.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_service_http_requests_total",
				Help: "Total de peticiones HTTP por método, ruta y estado",
			},
			[]string{"method", "route", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stock_service_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_service_history_notifications_total",
				Help: "Notificaciones al servicio de historial por acción y resultado",
			},
			[]string{"action", "result"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_service_stock_mutations_total",
				Help: "Mutaciones de stock por operación y resultado",
			},
			[]string{"operation", "outcome"},
		),
	}
	reg.MustRegister(m.requests, m.latency, m.notifications, m.mutations)
	return m
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveNotification registra el resultado de una llamada al historial (sent, failed).
func (m *Metrics) ObserveNotification(action, result string) {
	m.notifications.WithLabelValues(action, result).Inc()
}

// ObserveStockMutation registra el resultado de un increase/decrease.
func (m *Metrics) ObserveStockMutation(operation, outcome string) {
	m.mutations.WithLabelValues(operation, outcome).Inc()
}
