// Package bench measures matching engine latency and throughput.
package bench

import (
	"sort"
	"time"

	"github.com/PxPatel/limit-order-book/internal/matching"
	"github.com/PxPatel/limit-order-book/internal/types"
)

// Profiler wraps an engine and records the wall-clock latency of every
// new-order call. Other operations are delegated untimed.
type Profiler struct {
	engine    *matching.Engine
	latencies []time.Duration
	trades    int
	started   time.Time
	finished  time.Time
}

// NewProfiler wraps engine.
func NewProfiler(engine *matching.Engine) *Profiler {
	return &Profiler{engine: engine}
}

// ProcessNewOrder times one engine call.
func (p *Profiler) ProcessNewOrder(orderID int64, side types.Side, price, qty int32) matching.NewOrderResult {
	begin := time.Now()
	result := p.engine.ProcessNewOrder(orderID, side, price, qty)
	end := time.Now()

	if len(p.latencies) == 0 {
		p.started = begin
	}
	p.finished = end
	p.latencies = append(p.latencies, end.Sub(begin))
	p.trades += len(result.Trades)
	return result
}

// CancelOrder delegates to the engine untimed.
func (p *Profiler) CancelOrder(orderID int64) types.CancelResult {
	return p.engine.CancelOrder(orderID)
}

// Engine returns the wrapped engine.
func (p *Profiler) Engine() *matching.Engine { return p.engine }

// Stats summarizes one profiling run.
type Stats struct {
	Orders     int
	Trades     int
	Total      time.Duration
	Mean       time.Duration
	P50        time.Duration
	P99        time.Duration
	Throughput float64 // orders per second
}

// Stats computes latency percentiles and throughput over the recorded run.
// The percentile at q is the sorted value at index floor((n-1)*q).
func (p *Profiler) Stats() Stats {
	n := len(p.latencies)
	if n == 0 {
		return Stats{}
	}

	sorted := make([]time.Duration, n)
	copy(sorted, p.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	total := p.finished.Sub(p.started)
	stats := Stats{
		Orders: n,
		Trades: p.trades,
		Total:  total,
		Mean:   sum / time.Duration(n),
		P50:    sorted[(n-1)*50/100],
		P99:    sorted[(n-1)*99/100],
	}
	if total > 0 {
		stats.Throughput = float64(n) / total.Seconds()
	}
	return stats
}

// Reset clears recorded latencies without touching the engine.
func (p *Profiler) Reset() {
	p.latencies = p.latencies[:0]
	p.trades = 0
	p.started = time.Time{}
	p.finished = time.Time{}
}
