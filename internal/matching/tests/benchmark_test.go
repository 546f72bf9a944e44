package matching

import (
	"math/rand"
	"testing"

	"github.com/PxPatel/limit-order-book/internal/matching"
	"github.com/PxPatel/limit-order-book/internal/types"
)

// Benchmark KPIs:
// - Orders/second throughput on the add, match, and cancel paths
// - Memory allocations per operation
// - Sensitivity to book depth

// BenchmarkAddLimit benchmarks resting non-crossing orders across a band
// of price levels
func BenchmarkAddLimit(b *testing.B) {
	ob := matching.NewOrderBook()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ob.AddLimit(int64(i+1), types.Buy, int32(1+i%512), 10)
	}

	addsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(addsPerSec, "adds/sec")
}

// BenchmarkMatchCross benchmarks the full new-order path with every second
// order crossing the book
func BenchmarkMatchCross(b *testing.B) {
	eng := matching.NewEngine()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			eng.ProcessNewOrder(int64(i+1), types.Sell, 100, 10)
		} else {
			eng.ProcessNewOrder(int64(i+1), types.Buy, 100, 10)
		}
	}

	ordersPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(ordersPerSec, "orders/sec")
}

// BenchmarkCancel benchmarks O(1) cancellation against a deep book
func BenchmarkCancel(b *testing.B) {
	ob := matching.NewOrderBook()
	for i := 0; i < b.N; i++ {
		ob.AddLimit(int64(i+1), types.Buy, int32(1+i%1024), 10)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ob.Cancel(int64(i + 1))
	}

	cancelsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(cancelsPerSec, "cancels/sec")
}

// BenchmarkMixedFlow benchmarks a seeded random mix of adds, crosses, and
// cancels resembling the bench binary's flow
func BenchmarkMixedFlow(b *testing.B) {
	eng := matching.NewEngine()
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		side := types.Buy
		if rng.Intn(2) == 1 {
			side = types.Sell
		}
		eng.ProcessNewOrder(int64(i+1), side, int32(90+rng.Intn(21)), int32(1+rng.Intn(100)))
		if i%10 == 9 {
			eng.CancelOrder(1 + rng.Int63n(int64(i+1)))
		}
	}

	opsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(opsPerSec, "ops/sec")
}
