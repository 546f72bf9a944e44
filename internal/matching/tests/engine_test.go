package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PxPatel/limit-order-book/internal/matching"
	"github.com/PxPatel/limit-order-book/internal/sink"
	"github.com/PxPatel/limit-order-book/internal/types"
)

// TestRestingOrdersNoCross covers two resting orders that do not cross:
// no trades, both sides visible at the top of book.
func TestRestingOrdersNoCross(t *testing.T) {
	eng := matching.NewEngine()

	res := eng.ProcessNewOrder(1, types.Buy, 104, 10)
	require.True(t, res.Accepted)
	require.Empty(t, res.Trades)

	res = eng.ProcessNewOrder(2, types.Sell, 105, 6)
	require.True(t, res.Accepted)
	require.Empty(t, res.Trades)

	tob := eng.TopOfBook()
	require.NotNil(t, tob.BestBid)
	require.NotNil(t, tob.BestAsk)
	assert.Equal(t, types.PriceLevel{Price: 104, Qty: 10}, *tob.BestBid)
	assert.Equal(t, types.PriceLevel{Price: 105, Qty: 6}, *tob.BestAsk)
}

// TestFullFillAtMakerPrice covers an aggressive buy that fully fills a
// resting ask; the trade prints at the resting price, not the taker limit.
func TestFullFillAtMakerPrice(t *testing.T) {
	eng := matching.NewEngine()
	eng.ProcessNewOrder(1, types.Buy, 104, 10)
	eng.ProcessNewOrder(2, types.Sell, 105, 6)

	res := eng.ProcessNewOrder(3, types.Buy, 110, 6)
	require.True(t, res.Accepted)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, types.Trade{BuyID: 3, SellID: 2, Price: 105, Qty: 6}, res.Trades[0])

	tob := eng.TopOfBook()
	require.NotNil(t, tob.BestBid)
	assert.Nil(t, tob.BestAsk)
	assert.Equal(t, types.PriceLevel{Price: 104, Qty: 10}, *tob.BestBid)
}

// TestPartialFillRestsRemainder covers an incoming sell that consumes the
// whole bid side and rests its remainder at its own limit price.
func TestPartialFillRestsRemainder(t *testing.T) {
	eng := matching.NewEngine()
	eng.ProcessNewOrder(1, types.Buy, 104, 10)

	res := eng.ProcessNewOrder(4, types.Sell, 103, 14)
	require.True(t, res.Accepted)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, types.Trade{BuyID: 1, SellID: 4, Price: 104, Qty: 10}, res.Trades[0])

	tob := eng.TopOfBook()
	assert.Nil(t, tob.BestBid)
	require.NotNil(t, tob.BestAsk)
	assert.Equal(t, types.PriceLevel{Price: 103, Qty: 4}, *tob.BestAsk)
}

// TestPartialFillOfResting covers a small incoming order leaving the
// resting order alive with reduced quantity.
func TestPartialFillOfResting(t *testing.T) {
	eng := matching.NewEngine()
	eng.ProcessNewOrder(4, types.Sell, 103, 4)

	res := eng.ProcessNewOrder(5, types.Buy, 103, 2)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, types.Trade{BuyID: 5, SellID: 4, Price: 103, Qty: 2}, res.Trades[0])

	tob := eng.TopOfBook()
	assert.Nil(t, tob.BestBid)
	require.NotNil(t, tob.BestAsk)
	assert.Equal(t, types.PriceLevel{Price: 103, Qty: 2}, *tob.BestAsk)
}

// TestTimePriorityWithinLevel covers FIFO allocation across three sellers
// queued at the same price.
func TestTimePriorityWithinLevel(t *testing.T) {
	eng := matching.NewEngine()
	eng.ProcessNewOrder(4, types.Sell, 103, 2)
	eng.ProcessNewOrder(6, types.Sell, 103, 3)
	eng.ProcessNewOrder(7, types.Sell, 103, 2)

	res := eng.ProcessNewOrder(8, types.Buy, 104, 2)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, int64(4), res.Trades[0].SellID)

	res = eng.ProcessNewOrder(9, types.Buy, 104, 3)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, int64(6), res.Trades[0].SellID)

	res = eng.ProcessNewOrder(10, types.Buy, 104, 2)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, int64(7), res.Trades[0].SellID)

	assert.False(t, eng.Book().HasBestAsk())
}

// TestMultiLevelSweep covers one incoming order consuming two price levels
// and resting nothing, with each fill at its own maker price.
func TestMultiLevelSweep(t *testing.T) {
	eng := matching.NewEngine()
	eng.ProcessNewOrder(11, types.Sell, 100, 4)
	eng.ProcessNewOrder(12, types.Sell, 101, 5)

	res := eng.ProcessNewOrder(13, types.Buy, 105, 7)
	require.True(t, res.Accepted)
	require.Len(t, res.Trades, 2)
	assert.Equal(t, types.Trade{BuyID: 13, SellID: 11, Price: 100, Qty: 4}, res.Trades[0])
	assert.Equal(t, types.Trade{BuyID: 13, SellID: 12, Price: 101, Qty: 3}, res.Trades[1])

	// Fully matched incoming never rests.
	assert.False(t, eng.Book().HasOrder(13))

	tob := eng.TopOfBook()
	require.NotNil(t, tob.BestAsk)
	assert.Equal(t, types.PriceLevel{Price: 101, Qty: 2}, *tob.BestAsk)
}

// TestSweepStopsAtLimit covers the sweep stopping at the first level that
// no longer satisfies the incoming limit.
func TestSweepStopsAtLimit(t *testing.T) {
	eng := matching.NewEngine()
	eng.ProcessNewOrder(1, types.Sell, 100, 4)
	eng.ProcessNewOrder(2, types.Sell, 105, 5)

	res := eng.ProcessNewOrder(3, types.Buy, 102, 10)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, int32(100), res.Trades[0].Price)

	// Remainder rests at the incoming limit, below the surviving ask.
	tob := eng.TopOfBook()
	require.NotNil(t, tob.BestBid)
	require.NotNil(t, tob.BestAsk)
	assert.Equal(t, types.PriceLevel{Price: 102, Qty: 6}, *tob.BestBid)
	assert.Equal(t, types.PriceLevel{Price: 105, Qty: 5}, *tob.BestAsk)
	assert.Less(t, tob.BestBid.Price, tob.BestAsk.Price)
}

// TestDuplicateReject covers DUP: a resting id is refused without trades
// or book mutation.
func TestDuplicateReject(t *testing.T) {
	eng := matching.NewEngine()
	eng.ProcessNewOrder(1, types.Buy, 100, 10)

	before := eng.Book().Snapshot()
	res := eng.ProcessNewOrder(1, types.Sell, 90, 5)
	require.False(t, res.Accepted)
	assert.Equal(t, types.RejectDuplicate, res.Reason)
	assert.Empty(t, res.Trades)
	assert.Equal(t, before, eng.Book().Snapshot())
}

// TestIDReusableAfterTerminal covers the uniqueness semantic: an id is
// only reserved while resting, and frees up after a full fill or cancel.
func TestIDReusableAfterTerminal(t *testing.T) {
	eng := matching.NewEngine()

	// Fill id 1 completely, then reuse it.
	eng.ProcessNewOrder(1, types.Sell, 100, 5)
	eng.ProcessNewOrder(2, types.Buy, 100, 5)
	res := eng.ProcessNewOrder(1, types.Buy, 99, 3)
	assert.True(t, res.Accepted)

	// Cancel id 3, then reuse it.
	eng.ProcessNewOrder(3, types.Sell, 101, 4)
	require.Equal(t, types.CancelOK, eng.CancelOrder(3))
	res = eng.ProcessNewOrder(3, types.Sell, 102, 4)
	assert.True(t, res.Accepted)
}

// TestValidationReject covers BAD: non-positive price or quantity.
func TestValidationReject(t *testing.T) {
	eng := matching.NewEngine()

	for _, tc := range []struct {
		name  string
		price int32
		qty   int32
	}{
		{"zero price", 0, 10},
		{"negative price", -5, 10},
		{"zero qty", 100, 0},
		{"negative qty", 100, -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := eng.ProcessNewOrder(7, types.Buy, tc.price, tc.qty)
			require.False(t, res.Accepted)
			assert.Equal(t, types.RejectBad, res.Reason)
			assert.Empty(t, res.Trades)
		})
	}
	assert.Equal(t, 0, eng.Book().OpenOrders())
}

// TestCancelFlow covers cancel results through the engine.
func TestCancelFlow(t *testing.T) {
	eng := matching.NewEngine()
	eng.ProcessNewOrder(14, types.Buy, 100, 4)
	eng.ProcessNewOrder(15, types.Buy, 100, 7)

	tob := eng.TopOfBook()
	require.NotNil(t, tob.BestBid)
	assert.Equal(t, types.PriceLevel{Price: 100, Qty: 11}, *tob.BestBid)

	assert.Equal(t, types.CancelOK, eng.CancelOrder(15))
	tob = eng.TopOfBook()
	assert.Equal(t, types.PriceLevel{Price: 100, Qty: 4}, *tob.BestBid)

	assert.Equal(t, types.CancelOK, eng.CancelOrder(14))
	assert.Nil(t, eng.TopOfBook().BestBid)

	assert.Equal(t, types.CancelUnknown, eng.CancelOrder(14))
}

// TestEventOrdering covers the emission contract: ack first, then one
// trade per fill in FIFO order, all before the call returns.
func TestEventOrdering(t *testing.T) {
	eng := matching.NewEngine()
	rec := sink.NewRecorder(0)
	eng.AddListener(rec)

	eng.ProcessNewOrder(1, types.Sell, 100, 2)
	eng.ProcessNewOrder(2, types.Sell, 100, 3)
	eng.ProcessNewOrder(3, types.Buy, 100, 5)

	assert.Equal(t, []string{
		"ACK 1",
		"ACK 2",
		"ACK 3",
		"TRD 3 1 100 2",
		"TRD 3 2 100 3",
	}, rec.Events())
}

// TestListenerFanOutOrder covers multiple sinks notified in registration
// order.
func TestListenerFanOutOrder(t *testing.T) {
	eng := matching.NewEngine()

	var order []string
	eng.AddListener(&tagListener{tag: "first", out: &order})
	eng.AddListener(&tagListener{tag: "second", out: &order})

	eng.ProcessNewOrder(1, types.Buy, 100, 1)
	assert.Equal(t, []string{"first", "second"}, order)
}

// TestUpstreamReject covers forwarding a parser-level rejection to sinks
// without touching the book.
func TestUpstreamReject(t *testing.T) {
	eng := matching.NewEngine()
	rec := sink.NewRecorder(0)
	eng.AddListener(rec)

	eng.Reject(42, types.RejectBad)

	assert.Equal(t, []string{"REJ 42 BAD"}, rec.Events())
	assert.Equal(t, 0, eng.Book().OpenOrders())
}

// tagListener records which listener fired, to observe fan-out order.
type tagListener struct {
	matching.NopListener
	tag string
	out *[]string
}

func (l *tagListener) OnAck(int64) {
	*l.out = append(*l.out, l.tag)
}
