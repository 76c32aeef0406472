package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pet-hotel-registry/internal/domain/intake"
	"pet-hotel-registry/internal/domain/navigation"
	"pet-hotel-registry/internal/domain/pets"
)

const namespace = "pet_hotel"

// Metrics agrupa los collectors del servicio en un registry propio
// (nada en el registry global de prometheus).
type Metrics struct {
	registry *prometheus.Registry

	petsRegistered *prometheus.CounterVec
	intakeAccepted *prometheus.CounterVec
	intakeRejected prometheus.Counter
	intakeErrors   *prometheus.CounterVec
	transitions    *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		petsRegistered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pets_registered_total",
			Help:      "Mascotas agregadas al registro, por especie.",
		}, []string{"species"}),
		intakeAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_accepted_total",
			Help:      "Envíos del formulario de alta aceptados, por especie.",
		}, []string{"species"}),
		intakeRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_rejected_total",
			Help:      "Envíos del formulario de alta rechazados por validación.",
		}),
		intakeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_field_errors_total",
			Help:      "Errores de validación del alta, por campo.",
		}, []string{"field"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screen_transitions_total",
			Help:      "Transiciones entre pantallas de las sesiones.",
		}, []string{"from", "to"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests HTTP por ruta y status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de los requests HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.petsRegistered,
		m.intakeAccepted,
		m.intakeRejected,
		m.intakeErrors,
		m.transitions,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler expone el registry en formato prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gauge registra un valor que se lee en cada scrape (p.ej. tamaño del registro).
func (m *Metrics) Gauge(name, help string, fn func() float64) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, fn))
}

// PetRegistered cumple pets.Observer.
func (m *Metrics) PetRegistered(p pets.Pet) {
	m.petsRegistered.WithLabelValues(p.Species).Inc()
}

// IntakeAccepted e IntakeRejected cumplen intake.Recorder.
func (m *Metrics) IntakeAccepted(species string) {
	m.intakeAccepted.WithLabelValues(species).Inc()
}

func (m *Metrics) IntakeRejected(fields []intake.Field) {
	m.intakeRejected.Inc()
	for _, f := range fields {
		m.intakeErrors.WithLabelValues(string(f)).Inc()
	}
}

func (m *Metrics) Transition(t navigation.Transition) {
	m.transitions.WithLabelValues(string(t.From.Screen()), string(t.To.Screen())).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
