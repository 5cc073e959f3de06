// Package metrics exposes Prometheus counters for form submissions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Collector holds the submission counters. Use New with a registry so tests
// can use their own.
type Collector struct {
	submissions *prometheus.CounterVec
	renders     *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "form_intake",
			Name:      "submissions_total",
			Help:      "Form submissions by form type and outcome.",
		}, []string{"form", "outcome"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "form_intake",
			Name:      "form_renders_total",
			Help:      "Empty forms served by form type.",
		}, []string{"form"}),
	}
	reg.MustRegister(c.submissions, c.renders)
	return c
}

// ObserveSubmission counts one submission. A nil Collector is a no-op.
func (c *Collector) ObserveSubmission(form, outcome string) {
	if c == nil {
		return
	}
	c.submissions.WithLabelValues(form, outcome).Inc()
}

// ObserveRender counts one empty form served.
func (c *Collector) ObserveRender(form string) {
	if c == nil {
		return
	}
	c.renders.WithLabelValues(form).Inc()
}
