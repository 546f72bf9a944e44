package matching

import "github.com/PxPatel/limit-order-book/internal/types"

// NewOrderResult is the outcome of one ProcessNewOrder call.
type NewOrderResult struct {
	Accepted bool
	Reason   types.RejectReason // meaningful only when Accepted is false
	Trades   []types.Trade
}

// Engine validates incoming commands, sweep-matches them against one
// OrderBook under price-time priority, and fans events out to listeners.
//
// The engine is single-threaded and fully synchronous: every call runs to
// completion before returning and no listener ever observes a partially
// mutated book. Embedding this in a concurrent system means serializing
// commands per instrument (one writer per book); independent books need no
// coordination.
type Engine struct {
	book      *OrderBook
	listeners []EventListener
}

// NewEngine creates an engine over an empty book.
func NewEngine() *Engine {
	return &Engine{book: NewOrderBook()}
}

// AddListener registers a sink. All sinks are notified in registration
// order, synchronously, inside the triggering call.
func (e *Engine) AddListener(l EventListener) {
	e.listeners = append(e.listeners, l)
}

// Book exposes the underlying order book for read-only inspection.
func (e *Engine) Book() *OrderBook { return e.book }

// ProcessNewOrder validates and matches a new limit order.
//
// A duplicate check applies to currently resting ids only: an id becomes
// reusable once its order is fully filled or cancelled. Rejections mutate
// nothing and produce no trades. An accepted order is acked, then swept
// against the opposite side; each fill trades at the resting level's price,
// and any unmatched remainder rests at the incoming limit price.
func (e *Engine) ProcessNewOrder(orderID int64, side types.Side, price, qty int32) NewOrderResult {
	if e.book.HasOrder(orderID) {
		e.emitReject(orderID, types.RejectDuplicate)
		return NewOrderResult{Reason: types.RejectDuplicate}
	}
	if price <= 0 || qty <= 0 {
		e.emitReject(orderID, types.RejectBad)
		return NewOrderResult{Reason: types.RejectBad}
	}

	e.emitAck(orderID)

	remaining := qty
	var trades []types.Trade
	for remaining > 0 {
		levelPrice, levelQty, ok := e.bestOpposite(side, price)
		if !ok {
			break
		}

		fillQty := levelQty
		if int64(remaining) < fillQty {
			fillQty = int64(remaining)
		}

		var fills []types.Fill
		if side == types.Buy {
			fills = e.book.ConsumeBestAsk(fillQty)
		} else {
			fills = e.book.ConsumeBestBid(fillQty)
		}
		for _, f := range fills {
			t := types.Trade{Price: levelPrice, Qty: f.Qty}
			if side == types.Buy {
				t.BuyID, t.SellID = orderID, f.OrderID
			} else {
				t.BuyID, t.SellID = f.OrderID, orderID
			}
			trades = append(trades, t)
			e.emitTrade(t)
			remaining -= f.Qty
		}
	}

	// The sweep only stops when no crossing level remains, so resting the
	// leftover can never cross the book.
	if remaining > 0 {
		e.book.AddLimit(orderID, side, price, remaining)
	}

	return NewOrderResult{Accepted: true, Trades: trades}
}

// bestOpposite returns the price and aggregate quantity of the best level
// on the side an incoming order matches against, if that level satisfies
// the incoming limit.
func (e *Engine) bestOpposite(side types.Side, limit int32) (int32, int64, bool) {
	if side == types.Buy {
		if !e.book.HasBestAsk() || e.book.BestAskPrice() > limit {
			return 0, 0, false
		}
		return e.book.BestAskPrice(), e.book.BestAskQty(), true
	}
	if !e.book.HasBestBid() || e.book.BestBidPrice() < limit {
		return 0, 0, false
	}
	return e.book.BestBidPrice(), e.book.BestBidQty(), true
}

// CancelOrder removes a resting order and reports the outcome.
func (e *Engine) CancelOrder(orderID int64) types.CancelResult {
	result := e.book.Cancel(orderID)
	for _, l := range e.listeners {
		l.OnCancel(orderID, result)
	}
	return result
}

// TopOfBook returns the best level on each side and emits it.
func (e *Engine) TopOfBook() types.TopOfBook {
	tob := e.book.TopOfBook()
	for _, l := range e.listeners {
		l.OnTopOfBook(tob)
	}
	return tob
}

// PrintBook returns the full depth snapshot and emits it.
func (e *Engine) PrintBook() types.BookSnapshot {
	snap := e.book.Snapshot()
	for _, l := range e.listeners {
		l.OnBook(snap)
	}
	return snap
}

// Reject notifies listeners of a rejection decided upstream of the engine,
// such as a malformed line the parser refused. The book is not touched.
func (e *Engine) Reject(orderID int64, reason types.RejectReason) {
	e.emitReject(orderID, reason)
}

func (e *Engine) emitAck(orderID int64) {
	for _, l := range e.listeners {
		l.OnAck(orderID)
	}
}

func (e *Engine) emitReject(orderID int64, reason types.RejectReason) {
	for _, l := range e.listeners {
		l.OnReject(orderID, reason)
	}
}

func (e *Engine) emitTrade(t types.Trade) {
	for _, l := range e.listeners {
		l.OnTrade(t)
	}
}
