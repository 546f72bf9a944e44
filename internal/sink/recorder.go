package sink

import (
	"fmt"
	"sync"

	"github.com/PxPatel/limit-order-book/internal/types"
)

// Recorder keeps a bounded in-memory history of events. Trades beyond the
// size limit are trimmed oldest-first (circular buffer behavior); counters
// are never trimmed. Used by tests to assert event order and by the bench
// report for totals.
type Recorder struct {
	mu      sync.RWMutex
	maxSize int
	trades  []types.Trade
	events  []string
	acks    int
	rejects int
	cancels int
}

// NewRecorder creates a recorder keeping at most maxSize trades and event
// lines. maxSize <= 0 means unbounded.
func NewRecorder(maxSize int) *Recorder {
	return &Recorder{maxSize: maxSize}
}

func (r *Recorder) OnAck(orderID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acks++
	r.appendEvent(fmt.Sprintf("ACK %d", orderID))
}

func (r *Recorder) OnReject(orderID int64, reason types.RejectReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejects++
	r.appendEvent(fmt.Sprintf("REJ %d %s", orderID, reason))
}

func (r *Recorder) OnCancel(orderID int64, result types.CancelResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancels++
	if result == types.CancelOK {
		r.appendEvent(fmt.Sprintf("CXL %d", orderID))
	} else {
		r.appendEvent(fmt.Sprintf("REJ %d UNK", orderID))
	}
}

func (r *Recorder) OnTrade(t types.Trade) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trades = append(r.trades, t)
	if r.maxSize > 0 && len(r.trades) > r.maxSize {
		r.trades = r.trades[len(r.trades)-r.maxSize:]
	}
	r.appendEvent(fmt.Sprintf("TRD %d %d %d %d", t.BuyID, t.SellID, t.Price, t.Qty))
}

func (r *Recorder) OnTopOfBook(tob types.TopOfBook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tob.BestBid != nil {
		r.appendEvent(fmt.Sprintf("TOB BID %d %d", tob.BestBid.Price, tob.BestBid.Qty))
	}
	if tob.BestAsk != nil {
		r.appendEvent(fmt.Sprintf("TOB ASK %d %d", tob.BestAsk.Price, tob.BestAsk.Qty))
	}
}

func (r *Recorder) OnBook(snap types.BookSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lvl := range snap.Bids {
		r.appendEvent(fmt.Sprintf("BOOK BID %d %d", lvl.Price, lvl.Qty))
	}
	for _, lvl := range snap.Asks {
		r.appendEvent(fmt.Sprintf("BOOK ASK %d %d", lvl.Price, lvl.Qty))
	}
}

// appendEvent assumes r.mu is held.
func (r *Recorder) appendEvent(line string) {
	r.events = append(r.events, line)
	if r.maxSize > 0 && len(r.events) > r.maxSize {
		r.events = r.events[len(r.events)-r.maxSize:]
	}
}

// Trades returns a copy of the recorded trades, oldest first.
func (r *Recorder) Trades() []types.Trade {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.Trade, len(r.trades))
	copy(out, r.trades)
	return out
}

// Events returns a copy of the recorded event lines in emission order.
func (r *Recorder) Events() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// TradeCount returns how many trades were recorded before any trimming.
func (r *Recorder) TradeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trades)
}

// Counts returns the running ack, reject, and cancel totals.
func (r *Recorder) Counts() (acks, rejects, cancels int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.acks, r.rejects, r.cancels
}

// Reset clears all recorded history.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trades = nil
	r.events = nil
	r.acks, r.rejects, r.cancels = 0, 0, 0
}
