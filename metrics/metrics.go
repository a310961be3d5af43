// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics exports the node's Prometheus instrumentation: block
// acceptance/rejection counters and a mining hashrate gauge.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors bundles the node's registered metrics so callers can thread
// one value through the chain, mining and rpc packages instead of reaching
// for prometheus's default registry from each of them.
type Collectors struct {
	BlocksApplied  prometheus.Counter
	BlocksRejected *prometheus.CounterVec
	Hashrate       prometheus.Gauge
	ChainHeight    prometheus.Gauge
}

// NewCollectors builds and registers the node's metrics against registry.
// Pass prometheus.NewRegistry() for an isolated registry in tests, or
// prometheus.DefaultRegisterer in production.
func NewCollectors(registry prometheus.Registerer) *Collectors {
	c := &Collectors{
		BlocksApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aequitas",
			Subsystem: "chain",
			Name:      "blocks_applied_total",
			Help:      "Number of blocks successfully applied to the ledger.",
		}),
		BlocksRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aequitas",
			Subsystem: "chain",
			Name:      "blocks_rejected_total",
			Help:      "Number of blocks rejected, labeled by rule error code.",
		}, []string{"reason"}),
		Hashrate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aequitas",
			Subsystem: "mining",
			Name:      "hashrate",
			Help:      "Estimated local hash rate in hashes per second.",
		}),
		ChainHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aequitas",
			Subsystem: "chain",
			Name:      "height",
			Help:      "Current chain tip height.",
		}),
	}

	registry.MustRegister(c.BlocksApplied, c.BlocksRejected, c.Hashrate, c.ChainHeight)
	return c
}

// ObserveApplied records a successfully applied block at height.
func (c *Collectors) ObserveApplied(height uint64) {
	c.BlocksApplied.Inc()
	c.ChainHeight.Set(float64(height))
}

// ObserveRejected records a rejected block, labeled by the rule error code
// string that caused the rejection.
func (c *Collectors) ObserveRejected(reason string) {
	c.BlocksRejected.WithLabelValues(reason).Inc()
}

// ObserveHashrate updates the local mining hashrate estimate.
func (c *Collectors) ObserveHashrate(hashesPerSecond float64) {
	c.Hashrate.Set(hashesPerSecond)
}
