package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/PxPatel/limit-order-book/config"
	"github.com/PxPatel/limit-order-book/internal/driver"
	"github.com/PxPatel/limit-order-book/internal/matching"
	"github.com/PxPatel/limit-order-book/internal/sink"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Logging goes to stderr; stdout carries only engine output.
	log, err := buildLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	engine := matching.NewEngine()
	engine.AddListener(sink.NewPrinter(os.Stdout))
	engine.AddListener(sink.NewZapListener(log))

	var recorder *sink.Recorder
	if cfg.Driver.TradeHistorySize > 0 {
		recorder = sink.NewRecorder(cfg.Driver.TradeHistorySize)
		engine.AddListener(recorder)
	}

	input, closer, err := openInput(cfg)
	if err != nil {
		log.Error("failed to open input", zap.Error(err))
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	d := driver.New(engine, log)
	if err := d.Run(input); err != nil {
		log.Error("driver failed", zap.Error(err))
		os.Exit(1)
	}

	fields := []zap.Field{
		zap.Int("commands", d.Processed()),
		zap.Int("open_orders", engine.Book().OpenOrders()),
		zap.Int("bid_levels", engine.Book().BidDepth()),
		zap.Int("ask_levels", engine.Book().AskDepth()),
	}
	if recorder != nil {
		acks, rejects, cancels := recorder.Counts()
		fields = append(fields,
			zap.Int("acks", acks),
			zap.Int("rejects", rejects),
			zap.Int("cancels", cancels),
			zap.Int("trades", recorder.TradeCount()),
		)
	}
	log.Info("session complete", fields...)
}

// openInput picks the command source: a file named on the command line,
// else the configured input path, else stdin.
func openInput(cfg *config.Config) (io.Reader, io.Closer, error) {
	path := cfg.Driver.InputPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		return os.Stdin, nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input file %s: %w", path, err)
	}
	return f, f, nil
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
