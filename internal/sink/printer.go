// Package sink provides EventListener implementations: a text printer for
// the CLI, a bounded in-memory recorder, and a structured-log adapter.
package sink

import (
	"fmt"
	"io"

	"github.com/PxPatel/limit-order-book/internal/types"
)

// Printer writes one line per event to an io.Writer, in the engine's text
// protocol:
//
//	ACK <id>
//	REJ <id> BAD|DUP|UNK
//	TRD <buy_id> <sell_id> <price> <qty>
//	CXL <id>
//	TOB BID <price> <qty> / TOB ASK <price> <qty>
//	BOOK BID <price> <qty> ... / BOOK ASK <price> <qty> ...
//
// Write errors are ignored; event delivery is side-effect-only.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer over w (typically os.Stdout).
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) OnAck(orderID int64) {
	fmt.Fprintf(p.w, "ACK %d\n", orderID)
}

func (p *Printer) OnReject(orderID int64, reason types.RejectReason) {
	fmt.Fprintf(p.w, "REJ %d %s\n", orderID, reason)
}

func (p *Printer) OnCancel(orderID int64, result types.CancelResult) {
	if result == types.CancelOK {
		fmt.Fprintf(p.w, "CXL %d\n", orderID)
		return
	}
	fmt.Fprintf(p.w, "REJ %d UNK\n", orderID)
}

func (p *Printer) OnTrade(t types.Trade) {
	fmt.Fprintf(p.w, "TRD %d %d %d %d\n", t.BuyID, t.SellID, t.Price, t.Qty)
}

func (p *Printer) OnTopOfBook(tob types.TopOfBook) {
	if tob.BestBid != nil {
		fmt.Fprintf(p.w, "TOB BID %d %d\n", tob.BestBid.Price, tob.BestBid.Qty)
	}
	if tob.BestAsk != nil {
		fmt.Fprintf(p.w, "TOB ASK %d %d\n", tob.BestAsk.Price, tob.BestAsk.Qty)
	}
}

func (p *Printer) OnBook(snap types.BookSnapshot) {
	for _, lvl := range snap.Bids {
		fmt.Fprintf(p.w, "BOOK BID %d %d\n", lvl.Price, lvl.Qty)
	}
	for _, lvl := range snap.Asks {
		fmt.Fprintf(p.w, "BOOK ASK %d %d\n", lvl.Price, lvl.Qty)
	}
}
