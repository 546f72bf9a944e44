package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PxPatel/limit-order-book/internal/matching"
	"github.com/PxPatel/limit-order-book/internal/types"
)

func TestProfilerStats(t *testing.T) {
	prof := NewProfiler(matching.NewEngine())

	prof.ProcessNewOrder(1, types.Sell, 100, 5)
	prof.ProcessNewOrder(2, types.Buy, 100, 5)
	prof.ProcessNewOrder(3, types.Buy, 99, 1)

	stats := prof.Stats()
	assert.Equal(t, 3, stats.Orders)
	assert.Equal(t, 1, stats.Trades)
	assert.Greater(t, stats.Mean.Nanoseconds(), int64(0))
	assert.GreaterOrEqual(t, stats.P99, stats.P50)
	assert.Greater(t, stats.Throughput, 0.0)
}

func TestProfilerEmpty(t *testing.T) {
	prof := NewProfiler(matching.NewEngine())
	assert.Equal(t, Stats{}, prof.Stats())
}

func TestProfilerDelegatesUntimed(t *testing.T) {
	prof := NewProfiler(matching.NewEngine())

	prof.ProcessNewOrder(1, types.Buy, 100, 5)
	require.Equal(t, types.CancelOK, prof.CancelOrder(1))
	require.Equal(t, types.CancelUnknown, prof.CancelOrder(1))

	// Cancels are not part of the latency sample.
	assert.Equal(t, 1, prof.Stats().Orders)
}

func TestProfilerReset(t *testing.T) {
	prof := NewProfiler(matching.NewEngine())
	prof.ProcessNewOrder(1, types.Buy, 100, 5)
	prof.Reset()
	assert.Equal(t, Stats{}, prof.Stats())
}
