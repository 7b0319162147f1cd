// cmd/glovebridge/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/tamzrod/glove-bridge/internal/bridge"
	"github.com/tamzrod/glove-bridge/internal/config"
	"github.com/tamzrod/glove-bridge/internal/link"
	"github.com/tamzrod/glove-bridge/internal/observability"
	"github.com/tamzrod/glove-bridge/internal/poller"
	"github.com/tamzrod/glove-bridge/internal/sensor"
	"github.com/tamzrod/glove-bridge/internal/writer"
)

const usage = "usage: glovebridge [-list-ports] [-once] <config.yaml|config.toml>"

func main() {
	listPorts := flag.Bool("list-ports", false, "print available serial ports and exit")
	once := flag.Bool("once", false, "poll once, send one frame, print it and exit")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := observability.InitLogger("glovebridge")

	if *listPorts {
		ports, err := link.ListPorts()
		if err != nil {
			logger.Fatal().Err(err).Msg("port enumeration failed")
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	if flag.NArg() < 1 {
		logger.Fatal().Msg(usage)
	}
	cfgPath := flag.Arg(0)

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	if err := config.Validate(cfg); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}
	config.Normalize(cfg)

	b := cfg.Bridge

	// --------------------
	// Build the pipeline
	// --------------------

	// ---- poller ----
	p, closePoller, err := poller.Build(b)
	if err != nil {
		logger.Fatal().Err(err).Str("bridge", b.ID).Msg("poller build failed")
	}

	// ---- bindings ----
	bank := sensor.NewBank(b.Source.BankSize())
	table, err := bridge.BuildTable(b.Bindings, bank)
	if err != nil {
		logger.Fatal().Err(err).Str("bridge", b.ID).Msg("binding table failed")
	}

	// ---- serial link (open failure is reported by the bridge, not fatal) ----
	ln, linkErr := bridge.BuildLink(b.Serial)

	// ---- mirror (optional, not fatal) ----
	mir, err := writer.Build(b.ID, b.Mirror)
	if err != nil {
		logger.Error().Err(err).Str("bridge", b.ID).Msg("mirror disabled")
		mir = nil
	}

	br := bridge.New(b.ID, ln, bridge.Options{
		Logger:  logger,
		LinkErr: linkErr,
		Mirror:  mir,
	})
	if err := br.Initialize(table); err != nil {
		logger.Fatal().Err(err).Str("bridge", b.ID).Msg("bridge initialize failed")
	}

	// --------------------
	// One-shot mode
	// --------------------

	if *once {
		br.Apply(bank, p.PollOnce())
		f, sendErr := br.EncodeAndSend()
		fmt.Println(f)

		shutdown(br, closePoller)
		if sendErr != nil {
			os.Exit(1)
		}
		return
	}

	// --------------------
	// Run until signalled
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := make(chan poller.PollResult)
	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		p.Run(ctx, out)
	}()

	logger.Info().
		Str("bridge", b.ID).
		Str("port", b.Serial.Port).
		Int("interval_ms", b.Poll.IntervalMs).
		Msg("bridge running")

	br.Run(ctx, bank, out)
	<-pollerDone

	shutdown(br, closePoller)
}

func shutdown(br *bridge.Bridge, closePoller func() error) {
	if err := br.Shutdown(); err != nil {
		log.Error().Err(err).Msg("bridge shutdown")
	}
	if err := closePoller(); err != nil {
		log.Error().Err(err).Msg("poller close")
	}
}
