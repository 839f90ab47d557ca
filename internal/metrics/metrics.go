// Package metrics собирает счётчики Prometheus панели: решения guard,
// переходы сессии и мутации коллекций. У каждого Collector свой реестр.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

// Collector хранит реестр и счётчики.
type Collector struct {
	registry *prometheus.Registry

	guardDecisions     *prometheus.CounterVec
	sessionTransitions *prometheus.CounterVec
	entityMutations    *prometheus.CounterVec
	checkouts          *prometheus.CounterVec
}

// NewCollector создаёт реестр со счётчиками панели и стандартными
// коллекторами процесса и рантайма Go.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "guard",
			Name:      "decisions_total",
			Help:      "Route guard decisions by path and reason.",
		}, []string{"path", "reason"}),
		sessionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "transitions_total",
			Help:      "Session transitions by kind and outcome.",
		}, []string{"transition", "outcome"}),
		entityMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entity",
			Name:      "mutations_total",
			Help:      "Entity collection mutations by collection and operation.",
		}, []string{"collection", "op"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "subscription",
			Name:      "checkouts_total",
			Help:      "Plan checkouts by plan and outcome.",
		}, []string{"plan", "outcome"}),
	}

	c.registry.MustRegister(
		c.guardDecisions,
		c.sessionTransitions,
		c.entityMutations,
		c.checkouts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// GuardDecision учитывает решение guard.
func (c *Collector) GuardDecision(path, reason string) {
	c.guardDecisions.WithLabelValues(path, reason).Inc()
}

// SessionTransition учитывает переход сессии.
func (c *Collector) SessionTransition(transition, outcome string) {
	c.sessionTransitions.WithLabelValues(transition, outcome).Inc()
}

// EntityMutation учитывает мутацию коллекции.
func (c *Collector) EntityMutation(collection, op string) {
	c.entityMutations.WithLabelValues(collection, op).Inc()
}

// Checkout учитывает попытку оплаты тарифа.
func (c *Collector) Checkout(plan, outcome string) {
	c.checkouts.WithLabelValues(plan, outcome).Inc()
}

// Registry возвращает реестр коллектора.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler отдаёт метрики реестра в формате Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
