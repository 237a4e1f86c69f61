package main

import (
	"context"
	"log"

	"github.com/danico-oss/hypergrab/src/clipboard"
	"github.com/danico-oss/hypergrab/src/config"
	"github.com/danico-oss/hypergrab/src/gui"
	"github.com/danico-oss/hypergrab/src/hotkey"
	"github.com/danico-oss/hypergrab/src/journal"
	"github.com/danico-oss/hypergrab/src/logutil"
	"github.com/danico-oss/hypergrab/src/messages"
	"github.com/danico-oss/hypergrab/src/opener"
	"github.com/danico-oss/hypergrab/src/orchestrator"
)

func main() {
	// Ensure DPI awareness before creating any windows or querying metrics
	enableDPIAwareness()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logutil.Setup(cfg.EnableFileLogging)

	log.Printf("Screen Capture Manager initialized")
	log.Printf("Hotkey: %s", cfg.Hotkey)
	log.Printf("Settle delay: %v", cfg.SettleDelay)

	opts := orchestrator.Options{
		SettleDelay: cfg.SettleDelay,
		OutputDir:   cfg.OutputDir,
		OpenPath:    opener.Open,
	}

	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			log.Printf("Capture journal unavailable: %v", err)
		} else {
			defer j.Close()
			opts.Journal = j
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		opts.CopyPath = clipboard.Write
	}

	loop := orchestrator.NewLoop(opts)
	ui := gui.New(loop.Post)
	ui.SetTriggerLabel(cfg.Hotkey)
	loop.Bind(ui, ui)

	hotkey.Listen(cfg.Hotkey, func() {
		loop.Post(messages.HotkeyPressed{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := loop.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("event loop stopped: %v", err)
		}
	}()

	// Blocks on the main goroutine until the window is closed.
	ui.Run()

	cancel()
	<-loopDone
}
