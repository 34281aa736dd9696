// Package main contains the entrypoint for the synthetic log generator.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/edgard/loggen/internal/config"
	"github.com/edgard/loggen/internal/emitter"
	"github.com/edgard/loggen/internal/logger"
	"github.com/edgard/loggen/internal/record"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run loads configuration, opens the record sink and hands control to the
// emitter. It only returns when startup fails, with exit code 1.
func run(args []string) int {
	fs := flag.NewFlagSet("loggen", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to an optional configuration file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	opts := record.DefaultOptions()
	sink, err := record.Open(opts)
	if err != nil {
		log.Error("Failed to open record sink", "path", opts.Path, "error", err)
		return 1
	}
	log.Info("Record sink opened", "path", opts.Path, "threshold", record.LevelName(opts.Level))

	emitter.NewEmitter(sink, clockwork.NewRealClock(), log).Run()
	return 0
}
