package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/form-lib/obfuscate"
)

// ObfuscationMetrics counts classification outcomes of masked form values.
type ObfuscationMetrics struct {
	outcomes *prometheus.CounterVec
}

// NewObfuscationMetrics builds the counters and registers them on reg when
// reg is not nil. Double registration is tolerated.
func NewObfuscationMetrics(reg prometheus.Registerer) *ObfuscationMetrics {
	m := &ObfuscationMetrics{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_obfuscation_outcomes_total",
			Help: "Classification outcomes of obfuscated form values.",
		}, []string{"kind"}),
	}
	if reg != nil {
		registerCollector(reg, m.outcomes)
	}
	return m
}

// Observe counts a single classification outcome.
func (m *ObfuscationMetrics) Observe(k obfuscate.Kind) {
	m.outcomes.WithLabelValues(k.String()).Inc()
}

// Obfuscate masks the value like obfuscate.Obfuscate and counts the outcome.
func (m *ObfuscationMetrics) Obfuscate(s string) (string, error) {
	c := obfuscate.Classify(s)
	m.Observe(c.Kind)

	switch c.Kind {
	case obfuscate.KindEmail:
		return c.Email.Masked(), nil
	case obfuscate.KindPhone:
		return c.Phone.Masked(), nil
	default:
		return "", obfuscate.ErrUnrecognized
	}
}
