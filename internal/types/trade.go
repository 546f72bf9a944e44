package types

// Trade represents a matched execution between a buy and a sell order.
// Price is always the resting (maker) order's level price, never the
// incoming order's limit price.
type Trade struct {
	BuyID  int64 `json:"buy_order_id"`
	SellID int64 `json:"sell_order_id"`
	Price  int32 `json:"price"`
	Qty    int32 `json:"quantity"`
}

// Fill describes how consumed liquidity was sourced from one resting order.
type Fill struct {
	OrderID int64
	Qty     int32
}
