// Package emitter implements the periodic record loop: every cycle it
// attempts a debug record, emits a warning record and then blocks for a
// fixed interval. The loop never ends on its own.
package emitter

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// Interval is the pause between cycles.
	Interval = 3 * time.Second

	// DebugMessage is attempted at DEBUG every cycle. The "info" wording is
	// part of the fixture and is kept as is.
	DebugMessage = "This is an info log from app3"

	// WarnMessage is emitted at WARNING every cycle.
	WarnMessage = "This is an warn log from app3"
)

// Emitter drives a sink handler on a fixed schedule.
type Emitter struct {
	handler slog.Handler
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewEmitter creates an emitter writing records to handler. The clock supplies
// record timestamps and the pause between cycles; logger receives diagnostics
// such as write failures.
func NewEmitter(handler slog.Handler, clock clockwork.Clock, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Emitter{
		handler: handler,
		clock:   clock,
		logger:  logger.With("component", "emitter"),
	}
}

// Run loops forever: Cycle, then sleep for Interval. It does not return and
// does not watch for signals; the process is stopped from outside.
func (e *Emitter) Run() {
	e.logger.Info("Starting record loop", "interval", Interval)
	for {
		e.Cycle()
		e.clock.Sleep(Interval)
	}
}

// Cycle performs one iteration: a DEBUG attempt that the sink threshold
// normally suppresses, followed by a WARNING record.
func (e *Emitter) Cycle() {
	e.emit(slog.LevelDebug, DebugMessage)
	e.emit(slog.LevelWarn, WarnMessage)
}

// emit builds a record stamped with the emitter's clock and hands it to the
// sink. Write failures are reported and the loop carries on.
func (e *Emitter) emit(level slog.Level, msg string) {
	ctx := context.Background()
	r := slog.NewRecord(e.clock.Now(), level, msg, 0)
	if !e.handler.Enabled(ctx, r.Level) {
		return
	}

	if err := e.handler.Handle(ctx, r); err != nil {
		e.logger.Error("Failed to append record", "level", level, "error", err)
	}
}
