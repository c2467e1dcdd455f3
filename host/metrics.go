package host

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wippyai/textconv/errors"
	"github.com/wippyai/textconv/utf"
)

// Metrics counts guest conversions.
type Metrics struct {
	conversions *prometheus.CounterVec
	units       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "textconv",
			Name:      "conversions_total",
			Help:      "Guest conversion calls by direction and resulting status.",
		}, []string{"direction", "status"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "textconv",
			Name:      "units_total",
			Help:      "Code units consumed and written by guest conversions.",
		}, []string{"direction", "kind"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.conversions, m.units} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(direction string, st errors.Status, p utf.Progress) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(direction, st.String()).Inc()
	m.units.WithLabelValues(direction, "consumed").Add(float64(p.Consumed))
	m.units.WithLabelValues(direction, "written").Add(float64(p.Written))
}
