package types

// Side identifies which half of the book an order belongs to.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// RejectReason explains why a new order was refused.
type RejectReason int

const (
	// RejectBad covers non-positive price or quantity and malformed input.
	RejectBad RejectReason = iota
	// RejectDuplicate covers an order id that is currently resting.
	RejectDuplicate
)

func (r RejectReason) String() string {
	if r == RejectDuplicate {
		return "DUP"
	}
	return "BAD"
}

// CancelResult is the outcome of a cancel request.
type CancelResult int

const (
	CancelOK CancelResult = iota
	CancelUnknown
)

func (c CancelResult) String() string {
	if c == CancelOK {
		return "Cancelled"
	}
	return "Unknown"
}
