package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	flag.Parse()
	closeLog, err := setupLogging(*modeFlag, *logFileFlag)
	if err != nil {
		log.Fatal(err)
	}
	err = run()
	closeLog()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return fmt.Errorf("cpu profile: %w", err)
		}
		defer stop()
	}

	cfg, err := loadConfig(flag.CommandLine, *settingsFlag, *modelFlag, *widthFlag, *heightFlag)
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	log.Printf("model %s, %d points, %dx%d lines", ctrl.scene.Model().ID(),
		cfg.params.PointsCount, cfg.params.HorizontalLines, cfg.params.VerticalLines)

	switch *modeFlag {
	case modeWindow:
		return runWindow(ctrl)
	case modeTerminal:
		return runTerminal(ctrl)
	case modeServe:
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return runServer(ctx, ctrl, *addrFlag)
	default:
		return fmt.Errorf("unknown mode %q", *modeFlag)
	}
}

// setupLogging points the standard logger at path when given. Terminal mode
// owns the screen, so without a log file its output is discarded.
func setupLogging(mode, path string) (func(), error) {
	if path == "" {
		if mode == modeTerminal {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { _ = f.Close() }, nil
}
