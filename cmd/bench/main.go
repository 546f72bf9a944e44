package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/PxPatel/limit-order-book/config"
	"github.com/PxPatel/limit-order-book/internal/bench"
	"github.com/PxPatel/limit-order-book/internal/matching"
	"github.com/PxPatel/limit-order-book/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	b := cfg.Bench

	fmt.Println("=== Matching Engine Benchmark ===")
	fmt.Printf("Run ID:      %s\n", runID)
	fmt.Printf("Orders:      %d\n", b.Orders)
	fmt.Printf("Price band:  [%d, %d]\n", b.PriceMin, b.PriceMax)
	fmt.Printf("Max qty:     %d\n", b.MaxQty)
	fmt.Printf("Seed:        %d\n\n", b.Seed)

	prof := bench.NewProfiler(matching.NewEngine())
	run(prof, b)

	stats := prof.Stats()
	book := prof.Engine().Book()

	fmt.Println("=== Results ===")
	fmt.Printf("Total orders:   %d\n", stats.Orders)
	fmt.Printf("Total trades:   %d\n", stats.Trades)
	fmt.Printf("Total time:     %v\n", stats.Total.Round(time.Microsecond))
	fmt.Printf("Mean latency:   %v\n", stats.Mean)
	fmt.Printf("P50 latency:    %v\n", stats.P50)
	fmt.Printf("P99 latency:    %v\n", stats.P99)
	fmt.Printf("Throughput:     %.0f orders/sec\n", stats.Throughput)
	fmt.Printf("Open orders:    %d\n", book.OpenOrders())
	fmt.Printf("Book depth:     %d bid / %d ask levels\n", book.BidDepth(), book.AskDepth())
}

// run feeds a seeded pseudo-random order flow through the profiler. Buy
// and sell prices are drawn from the same band so a realistic share of
// incoming orders crosses.
func run(prof *bench.Profiler, b config.BenchConfig) {
	rng := rand.New(rand.NewSource(b.Seed))
	span := b.PriceMax - b.PriceMin + 1

	nextID := int64(1)
	for i := 0; i < b.Orders; i++ {
		side := types.Buy
		if rng.Intn(2) == 1 {
			side = types.Sell
		}
		price := int32(b.PriceMin + rng.Intn(span))
		qty := int32(1 + rng.Intn(b.MaxQty))

		prof.ProcessNewOrder(nextID, side, price, qty)
		nextID++

		if b.CancelEvery > 0 && (i+1)%b.CancelEvery == 0 {
			// Cancel a random earlier id; most will already be gone,
			// which exercises the unknown-id path too.
			prof.CancelOrder(1 + rng.Int63n(nextID-1))
		}
	}
}
