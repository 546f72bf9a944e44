package sink

import (
	"go.uber.org/zap"

	"github.com/PxPatel/limit-order-book/internal/types"
)

// ZapListener mirrors every engine event into a structured log. Per-order
// events log at debug to stay out of the way at high rates; book reads log
// at info.
type ZapListener struct {
	log *zap.Logger
}

// NewZapListener creates a listener logging through log.
func NewZapListener(log *zap.Logger) *ZapListener {
	return &ZapListener{log: log}
}

func (z *ZapListener) OnAck(orderID int64) {
	z.log.Debug("order accepted", zap.Int64("order_id", orderID))
}

func (z *ZapListener) OnReject(orderID int64, reason types.RejectReason) {
	z.log.Debug("order rejected",
		zap.Int64("order_id", orderID),
		zap.String("reason", reason.String()),
	)
}

func (z *ZapListener) OnCancel(orderID int64, result types.CancelResult) {
	z.log.Debug("cancel processed",
		zap.Int64("order_id", orderID),
		zap.String("result", result.String()),
	)
}

func (z *ZapListener) OnTrade(t types.Trade) {
	z.log.Debug("trade executed",
		zap.Int64("buy_id", t.BuyID),
		zap.Int64("sell_id", t.SellID),
		zap.Int32("price", t.Price),
		zap.Int32("qty", t.Qty),
	)
}

func (z *ZapListener) OnTopOfBook(tob types.TopOfBook) {
	fields := make([]zap.Field, 0, 4)
	if tob.BestBid != nil {
		fields = append(fields,
			zap.Int32("best_bid_price", tob.BestBid.Price),
			zap.Int64("best_bid_qty", tob.BestBid.Qty),
		)
	}
	if tob.BestAsk != nil {
		fields = append(fields,
			zap.Int32("best_ask_price", tob.BestAsk.Price),
			zap.Int64("best_ask_qty", tob.BestAsk.Qty),
		)
	}
	z.log.Info("top of book", fields...)
}

func (z *ZapListener) OnBook(snap types.BookSnapshot) {
	z.log.Info("book snapshot",
		zap.Int("bid_levels", len(snap.Bids)),
		zap.Int("ask_levels", len(snap.Asks)),
	)
}
