package matching

import "container/list"

// restingOrder is an order sitting in a level's FIFO queue. Side and price
// are implied by the level that owns the queue, never duplicated here.
type restingOrder struct {
	id  int64
	qty int32
}

// priceLevel holds every resting order at one price, in arrival order.
// totalQty is maintained incrementally and always equals the sum of the
// queue's remaining quantities.
type priceLevel struct {
	price    int32
	totalQty int64
	queue    *list.List // of *restingOrder, front = longest waiting
}

func newPriceLevel(price int32) *priceLevel {
	return &priceLevel{
		price: price,
		queue: list.New(),
	}
}

// push appends an order to the back of the queue and returns its element,
// which stays valid until the order is unlinked.
func (l *priceLevel) push(o *restingOrder) *list.Element {
	l.totalQty += int64(o.qty)
	return l.queue.PushBack(o)
}

// unlink removes one order from the queue, wherever it sits.
func (l *priceLevel) unlink(elem *list.Element) {
	o := elem.Value.(*restingOrder)
	l.totalQty -= int64(o.qty)
	l.queue.Remove(elem)
}

// reduce shrinks the front order's remaining quantity in place.
func (l *priceLevel) reduce(elem *list.Element, qty int32) {
	elem.Value.(*restingOrder).qty -= qty
	l.totalQty -= int64(qty)
}

// front returns the earliest resting order, or nil for an empty queue.
// An empty level only exists transiently inside a book operation; the book
// removes it from the side index before the operation returns.
func (l *priceLevel) front() *list.Element {
	return l.queue.Front()
}

func (l *priceLevel) empty() bool {
	return l.queue.Len() == 0
}
