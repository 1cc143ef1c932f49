package infra

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors the platform exports.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	eventsTotal   *prometheus.CounterVec
	levelUps      prometheus.Counter
	rewardRolls   *prometheus.CounterVec
	creatureCatch *prometheus.CounterVec
	outboxLag     prometheus.Gauge
}

// NewMetrics creates and registers all collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "focusquest_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "focusquest_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "focusquest_game_events_total",
			Help: "Processed gamification events by type.",
		}, []string{"type"}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "focusquest_level_ups_total",
			Help: "Total level-ups across all players.",
		}),
		rewardRolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "focusquest_reward_rolls_total",
			Help: "Reward rolls by rarity.",
		}, []string{"rarity"}),
		creatureCatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "focusquest_creature_catches_total",
			Help: "Creature catches by creature ID.",
		}, []string{"creature"}),
		outboxLag: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "focusquest_outbox_pending_events",
			Help: "Events in the outbox awaiting publication.",
		}),
	}

	registry.MustRegister(
		m.httpRequests, m.httpDuration, m.eventsTotal,
		m.levelUps, m.rewardRolls, m.creatureCatch, m.outboxLag,
	)
	return m
}

// Handler returns the /metrics endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, d time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// CountEvent records one processed gamification event.
func (m *Metrics) CountEvent(eventType string) {
	m.eventsTotal.WithLabelValues(eventType).Inc()
}

// CountLevelUp records one level-up.
func (m *Metrics) CountLevelUp() { m.levelUps.Inc() }

// CountReward records one reward roll.
func (m *Metrics) CountReward(rarity string) {
	m.rewardRolls.WithLabelValues(rarity).Inc()
}

// CountCatch records one creature catch.
func (m *Metrics) CountCatch(creatureID string) {
	m.creatureCatch.WithLabelValues(creatureID).Inc()
}

// SetOutboxPending updates the pending-outbox gauge.
func (m *Metrics) SetOutboxPending(n int) {
	m.outboxLag.Set(float64(n))
}
