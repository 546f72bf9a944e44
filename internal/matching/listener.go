package matching

import "github.com/PxPatel/limit-order-book/internal/types"

// EventListener receives one callback per engine state change or query.
// The engine invokes listeners synchronously, in registration order, before
// the triggering call returns; implementations must not block.
type EventListener interface {
	OnAck(orderID int64)
	OnReject(orderID int64, reason types.RejectReason)
	OnCancel(orderID int64, result types.CancelResult)
	OnTrade(trade types.Trade)
	OnTopOfBook(tob types.TopOfBook)
	OnBook(snapshot types.BookSnapshot)
}

// NopListener ignores every event. Embed it to implement only the
// callbacks a sink cares about.
type NopListener struct{}

func (NopListener) OnAck(int64)                        {}
func (NopListener) OnReject(int64, types.RejectReason) {}
func (NopListener) OnCancel(int64, types.CancelResult) {}
func (NopListener) OnTrade(types.Trade)                {}
func (NopListener) OnTopOfBook(types.TopOfBook)        {}
func (NopListener) OnBook(types.BookSnapshot)          {}
