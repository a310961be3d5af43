// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestObserveAppliedIncrementsCounterAndSetsHeight(t *testing.T) {
	c := NewCollectors(prometheus.NewRegistry())

	c.ObserveApplied(5)
	c.ObserveApplied(6)

	require.Equal(t, float64(2), counterValue(t, c.BlocksApplied))
	require.Equal(t, float64(6), gaugeValue(t, c.ChainHeight))
}

func TestObserveRejectedLabelsByReason(t *testing.T) {
	c := NewCollectors(prometheus.NewRegistry())

	c.ObserveRejected("DoubleSpend")
	c.ObserveRejected("DoubleSpend")
	c.ObserveRejected("InvalidHeight")

	require.Equal(t, float64(2), counterValue(t, c.BlocksRejected.WithLabelValues("DoubleSpend")))
	require.Equal(t, float64(1), counterValue(t, c.BlocksRejected.WithLabelValues("InvalidHeight")))
}

func TestObserveHashrateSetsGauge(t *testing.T) {
	c := NewCollectors(prometheus.NewRegistry())
	c.ObserveHashrate(1234.5)
	require.Equal(t, 1234.5, gaugeValue(t, c.Hashrate))
}
