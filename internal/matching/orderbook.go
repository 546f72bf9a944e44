package matching

import (
	"container/list"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/PxPatel/limit-order-book/internal/types"
)

// bookSide is one half of the book: price levels in a red-black tree whose
// comparator puts the best price leftmost (highest first for bids, lowest
// first for asks). Best-level access is the tree's leftmost node.
type bookSide struct {
	levels *rbt.Tree[int32, *priceLevel]
}

func newBookSide(side types.Side) *bookSide {
	cmp := func(a, b int32) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	if side == types.Buy {
		asc := cmp
		cmp = func(a, b int32) int { return asc(b, a) }
	}
	return &bookSide{levels: rbt.NewWith[int32, *priceLevel](cmp)}
}

// best returns the best-priced level, or nil when the side is empty.
func (s *bookSide) best() *priceLevel {
	node := s.levels.Left()
	if node == nil {
		return nil
	}
	return node.Value
}

func (s *bookSide) snapshot() []types.PriceLevel {
	out := make([]types.PriceLevel, 0, s.levels.Size())
	it := s.levels.Iterator()
	for it.Next() {
		lvl := it.Value()
		out = append(out, types.PriceLevel{Price: lvl.price, Qty: lvl.totalQty})
	}
	return out
}

// location pins a resting order to its queue slot. The list element is a
// stable handle: it survives every other mutation of the level until this
// order itself is unlinked.
type location struct {
	side  types.Side
	price int32
	elem  *list.Element
}

// OrderBook is a two-sided price-time-priority limit order book. It owns
// every level and order record; the id index holds coordinates only.
//
// Not safe for concurrent use. One book is mutated by exactly one logical
// caller at a time; independent instruments get independent books.
type OrderBook struct {
	bids   *bookSide
	asks   *bookSide
	orders map[int64]location
}

// NewOrderBook creates an empty book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids:   newBookSide(types.Buy),
		asks:   newBookSide(types.Sell),
		orders: make(map[int64]location),
	}
}

func (b *OrderBook) side(s types.Side) *bookSide {
	if s == types.Buy {
		return b.bids
	}
	return b.asks
}

// AddLimit rests a new order at price on the given side, appending to the
// existing level's queue or creating the level. Duplicate-id prevention is
// the caller's responsibility (the engine checks HasOrder first).
func (b *OrderBook) AddLimit(orderID int64, side types.Side, price int32, qty int32) {
	bs := b.side(side)
	lvl, ok := bs.levels.Get(price)
	if !ok {
		lvl = newPriceLevel(price)
		bs.levels.Put(price, lvl)
	}
	elem := lvl.push(&restingOrder{id: orderID, qty: qty})
	b.orders[orderID] = location{side: side, price: price, elem: elem}
}

// HasOrder reports whether the id is currently resting in the book.
func (b *OrderBook) HasOrder(orderID int64) bool {
	_, ok := b.orders[orderID]
	return ok
}

// HasBestBid reports whether any bid liquidity is resting.
func (b *OrderBook) HasBestBid() bool { return !b.bids.levels.Empty() }

// HasBestAsk reports whether any ask liquidity is resting.
func (b *OrderBook) HasBestAsk() bool { return !b.asks.levels.Empty() }

// BestBidPrice returns the highest bid price. Callers must check
// HasBestBid first; on an empty side the result is meaningless.
func (b *OrderBook) BestBidPrice() int32 { return bestPrice(b.bids) }

// BestAskPrice returns the lowest ask price. Callers must check
// HasBestAsk first.
func (b *OrderBook) BestAskPrice() int32 { return bestPrice(b.asks) }

// BestBidQty returns the aggregate quantity at the best bid level.
func (b *OrderBook) BestBidQty() int64 { return bestQty(b.bids) }

// BestAskQty returns the aggregate quantity at the best ask level.
func (b *OrderBook) BestAskQty() int64 { return bestQty(b.asks) }

func bestPrice(s *bookSide) int32 {
	if lvl := s.best(); lvl != nil {
		return lvl.price
	}
	return 0
}

func bestQty(s *bookSide) int64 {
	if lvl := s.best(); lvl != nil {
		return lvl.totalQty
	}
	return 0
}

// BestBidFront peeks at the longest-waiting order at the best bid level.
func (b *OrderBook) BestBidFront() (types.Fill, bool) { return bestFront(b.bids) }

// BestAskFront peeks at the longest-waiting order at the best ask level.
func (b *OrderBook) BestAskFront() (types.Fill, bool) { return bestFront(b.asks) }

func bestFront(s *bookSide) (types.Fill, bool) {
	lvl := s.best()
	if lvl == nil {
		return types.Fill{}, false
	}
	o := lvl.front().Value.(*restingOrder)
	return types.Fill{OrderID: o.id, Qty: o.qty}, true
}

// ConsumeBestBid removes up to qty units from the single best bid level,
// draining orders from the front of its queue. See ConsumeBestAsk.
func (b *OrderBook) ConsumeBestBid(qty int64) []types.Fill {
	return b.consumeBest(b.bids, qty)
}

// ConsumeBestAsk removes up to qty units from the single best ask level.
// It returns one Fill per resting order touched, in FIFO order. A fully
// consumed order leaves the queue and the id index in the same step; a
// partially consumed order keeps its reduced quantity at the front. The
// call never crosses into a second level; with no resting liquidity it is
// a no-op returning an empty slice.
func (b *OrderBook) ConsumeBestAsk(qty int64) []types.Fill {
	return b.consumeBest(b.asks, qty)
}

func (b *OrderBook) consumeBest(s *bookSide, qty int64) []types.Fill {
	lvl := s.best()
	if lvl == nil {
		return nil
	}

	var fills []types.Fill
	for qty > 0 {
		elem := lvl.front()
		if elem == nil {
			break
		}
		o := elem.Value.(*restingOrder)

		take := int64(o.qty)
		if qty < take {
			take = qty
		}
		fills = append(fills, types.Fill{OrderID: o.id, Qty: int32(take)})
		qty -= take

		if take == int64(o.qty) {
			lvl.unlink(elem)
			delete(b.orders, o.id)
		} else {
			lvl.reduce(elem, int32(take))
		}
	}

	if lvl.empty() {
		s.levels.Remove(lvl.price)
	}
	return fills
}

// Cancel removes a resting order by id in O(1) via the location index.
// Cancelling an id that never rested, already filled, or was already
// cancelled returns CancelUnknown.
func (b *OrderBook) Cancel(orderID int64) types.CancelResult {
	loc, ok := b.orders[orderID]
	if !ok {
		return types.CancelUnknown
	}

	bs := b.side(loc.side)
	lvl, _ := bs.levels.Get(loc.price)
	lvl.unlink(loc.elem)
	delete(b.orders, orderID)
	if lvl.empty() {
		bs.levels.Remove(lvl.price)
	}
	return types.CancelOK
}

// TopOfBook returns the best level on each side; a nil pointer marks an
// empty side.
func (b *OrderBook) TopOfBook() types.TopOfBook {
	var tob types.TopOfBook
	if lvl := b.bids.best(); lvl != nil {
		tob.BestBid = &types.PriceLevel{Price: lvl.price, Qty: lvl.totalQty}
	}
	if lvl := b.asks.best(); lvl != nil {
		tob.BestAsk = &types.PriceLevel{Price: lvl.price, Qty: lvl.totalQty}
	}
	return tob
}

// Snapshot returns the full depth of both sides in priority order.
func (b *OrderBook) Snapshot() types.BookSnapshot {
	return types.BookSnapshot{
		Bids: b.bids.snapshot(),
		Asks: b.asks.snapshot(),
	}
}

// OpenOrders returns how many orders are currently resting.
func (b *OrderBook) OpenOrders() int { return len(b.orders) }

// BidDepth returns the number of distinct bid price levels.
func (b *OrderBook) BidDepth() int { return b.bids.levels.Size() }

// AskDepth returns the number of distinct ask price levels.
func (b *OrderBook) AskDepth() int { return b.asks.levels.Size() }
