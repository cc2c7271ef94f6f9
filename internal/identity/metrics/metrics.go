package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	IdentitiesRegistered prometheus.Counter
	DuplicateRejections  prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		IdentitiesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_identities_registered_total",
			Help: "Total number of identities registered",
		}),
		DuplicateRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_identity_duplicate_rejections_total",
			Help: "Registrations rejected because the national identifier was already taken",
		}),
	}
}

func (m *Metrics) IncrementRegistered() {
	m.IdentitiesRegistered.Inc()
}

func (m *Metrics) IncrementDuplicateRejected() {
	m.DuplicateRejections.Inc()
}
