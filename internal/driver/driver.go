// Package driver runs the command dispatch loop: it reads text commands
// from a stream, parses them, and feeds them to a matching engine until an
// exit command or end of input.
package driver

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/PxPatel/limit-order-book/internal/matching"
	"github.com/PxPatel/limit-order-book/internal/parser"
)

// Driver dispatches parsed commands to one engine. Commands run strictly
// one at a time; book correctness never depends on anything here.
type Driver struct {
	engine    *matching.Engine
	log       *zap.Logger
	processed int
}

// New creates a driver over engine. Pass zap.NewNop() to silence logging.
func New(engine *matching.Engine, log *zap.Logger) *Driver {
	return &Driver{engine: engine, log: log}
}

// Run consumes r line by line until an exit command or EOF. Parser rejects
// are forwarded to the engine's listeners; nothing here returns an error
// except a failed read of the input stream itself.
func (d *Driver) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cmd := parser.Parse(scanner.Text())
		d.processed++

		switch cmd.Type {
		case parser.CommandNew:
			d.engine.ProcessNewOrder(cmd.OrderID, cmd.Side, cmd.Price, cmd.Qty)
		case parser.CommandCancel:
			d.engine.CancelOrder(cmd.OrderID)
		case parser.CommandTopOfBook:
			d.engine.TopOfBook()
		case parser.CommandFullBook:
			d.engine.PrintBook()
		case parser.CommandReject:
			d.engine.Reject(cmd.OrderID, cmd.Reason)
		case parser.CommandExit:
			d.log.Info("exit command received", zap.Int("commands", d.processed))
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	d.log.Info("input exhausted", zap.Int("commands", d.processed))
	return nil
}

// Processed returns how many commands the driver has dispatched.
func (d *Driver) Processed() int { return d.processed }
