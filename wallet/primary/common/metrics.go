// (c) 2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// SpendMetrics counts solver outcomes: a histogram each for UTXOs scanned
// and selected per Spend call and a counter of insufficient-funds failures,
// registered under a caller-chosen namespace.
type SpendMetrics struct {
	utxosScanned     prometheus.Histogram
	utxosSelected    prometheus.Histogram
	insufficientFunds prometheus.Counter
}

// NewSpendMetrics registers a SpendMetrics under namespace and returns it.
func NewSpendMetrics(namespace string, registerer prometheus.Registerer) (*SpendMetrics, error) {
	m := &SpendMetrics{
		utxosScanned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "spend_utxos_scanned",
			Help:      "Number of UTXOs examined by a single Spend call",
		}),
		utxosSelected: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "spend_utxos_selected",
			Help:      "Number of UTXOs selected as inputs by a single Spend call",
		}),
		insufficientFunds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spend_insufficient_funds_total",
			Help:      "Number of Spend calls that returned ErrInsufficientFunds",
		}),
	}
	for _, c := range []prometheus.Collector{m.utxosScanned, m.utxosSelected, m.insufficientFunds} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observe records the outcome of one Spend call: how many candidate UTXOs
// were scanned, how many were selected, and whether it failed.
func (m *SpendMetrics) observe(scanned, selected int, err error) {
	if m == nil {
		return
	}
	m.utxosScanned.Observe(float64(scanned))
	m.utxosSelected.Observe(float64(selected))
	if errors.Is(err, ErrInsufficientFunds) {
		m.insufficientFunds.Inc()
	}
}
