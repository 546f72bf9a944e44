// Package parser turns raw text lines into validated commands.
//
// The grammar is one command per line:
//
//	N <order_id> <B|S> <price> <qty>   new limit order
//	C <order_id>                       cancel
//	P                                  print top of book
//	B                                  print full book
//	X                                  exit
//
// Parsing never fails: every line, however malformed, maps to exactly one
// command. Bad lines become Reject commands carrying reason BAD.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/PxPatel/limit-order-book/internal/types"
)

// CommandType discriminates the parsed command variants.
type CommandType int

const (
	CommandNew CommandType = iota
	CommandCancel
	CommandTopOfBook
	CommandFullBook
	CommandExit
	CommandReject
)

// Command is one parsed input line. Only the fields relevant to Type are
// populated; a Reject carries the order id when it was readable, else 0.
type Command struct {
	Type    CommandType
	OrderID int64
	Side    types.Side
	Price   int32
	Qty     int32
	Reason  types.RejectReason
}

// Parse converts a single input line into a Command. It never returns an
// error; syntactically or semantically invalid lines yield a Reject.
func Parse(line string) Command {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || len(tokens[0]) != 1 {
		return reject(0)
	}

	switch tokens[0] {
	case "P":
		if len(tokens) != 1 {
			return reject(0)
		}
		return Command{Type: CommandTopOfBook}
	case "B":
		if len(tokens) != 1 {
			return reject(0)
		}
		return Command{Type: CommandFullBook}
	case "X":
		if len(tokens) != 1 {
			return reject(0)
		}
		return Command{Type: CommandExit}
	case "C":
		return parseCancel(tokens)
	case "N":
		return parseNew(tokens)
	default:
		return reject(0)
	}
}

func parseCancel(tokens []string) Command {
	if len(tokens) != 2 {
		return reject(0)
	}
	orderID, ok := parsePositiveInt64(tokens[1])
	if !ok {
		return reject(0)
	}
	return Command{Type: CommandCancel, OrderID: orderID}
}

func parseNew(tokens []string) Command {
	if len(tokens) != 5 {
		return reject(0)
	}
	orderID, ok := parsePositiveInt64(tokens[1])
	if !ok {
		return reject(0)
	}

	var side types.Side
	switch tokens[2] {
	case "B":
		side = types.Buy
	case "S":
		side = types.Sell
	default:
		return reject(orderID)
	}

	price, ok := parsePositiveInt32(tokens[3])
	if !ok {
		return reject(orderID)
	}
	qty, ok := parsePositiveInt32(tokens[4])
	if !ok {
		return reject(orderID)
	}

	return Command{Type: CommandNew, OrderID: orderID, Side: side, Price: price, Qty: qty}
}

// reject builds a BAD Reject command. The order id is carried through when
// it parsed before a later field failed, so the rejection names the order.
func reject(orderID int64) Command {
	return Command{Type: CommandReject, OrderID: orderID, Reason: types.RejectBad}
}

func parsePositiveInt64(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func parsePositiveInt32(s string) (int32, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}
