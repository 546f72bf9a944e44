package types

// PriceLevel is the aggregate view of one price level: the level price and
// the sum of remaining quantities of every order queued there.
type PriceLevel struct {
	Price int32 `json:"price"`
	Qty   int64 `json:"quantity"`
}

// TopOfBook holds the best level on each side. A nil pointer means that
// side is empty.
type TopOfBook struct {
	BestBid *PriceLevel `json:"best_bid,omitempty"`
	BestAsk *PriceLevel `json:"best_ask,omitempty"`
}

// BookSnapshot is the full depth of both sides, each in its own priority
// order: bids descending by price, asks ascending.
type BookSnapshot struct {
	Bids []PriceLevel `json:"bids"`
	Asks []PriceLevel `json:"asks"`
}
