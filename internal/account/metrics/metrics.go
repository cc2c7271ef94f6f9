package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AccountsOpened prometheus.Counter
	Deposits       prometheus.Counter
	Withdrawals    prometheus.Counter
	Rejections     *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		AccountsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		Deposits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_deposits_total",
			Help: "Total number of successful deposits",
		}),
		Withdrawals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_withdrawals_total",
			Help: "Total number of successful withdrawals",
		}),
		Rejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "minibank_transaction_rejections_total",
			Help: "Rejected deposits and withdrawals by rejection reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) IncrementAccountsOpened() {
	m.AccountsOpened.Inc()
}

func (m *Metrics) IncrementDeposits() {
	m.Deposits.Inc()
}

func (m *Metrics) IncrementWithdrawals() {
	m.Withdrawals.Inc()
}

func (m *Metrics) IncrementRejected(reason string) {
	m.Rejections.WithLabelValues(reason).Inc()
}
