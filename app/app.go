// Package app drives an entity store and its systems frame by frame.
package app

import (
	"context"
	"time"

	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
	"github.com/plus3/starlight/system"
	"github.com/plus3/starlight/telemetry"
)

// Frame is the singleton describing the frame being updated.
type Frame struct {
	Delta   time.Duration
	Elapsed time.Duration
	Count   uint64
}

// Platform pumps native events into the store. ProcessEvents returns false
// when the platform asks the application to quit.
type Platform interface {
	ProcessEvents(store *ecs.Store) bool
}

type Application struct {
	store   *ecs.Store
	systems *system.Manager
	time    *Time

	logger    *log.Logger
	telemetry *telemetry.Recorder

	onExitRequested func(code int) bool
	exitRequested   bool
	exitCode        int

	frame Frame
}

func New(opts ...Option) *Application {
	a := &Application{
		store:   ecs.NewStore(),
		systems: system.NewManager(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	if a.time == nil {
		a.time = NewTime(nil)
	}
	return a
}

func (a *Application) Store() *ecs.Store {
	return a.store
}

func (a *Application) Systems() *system.Manager {
	return a.systems
}

func (a *Application) Time() *Time {
	return a.time
}

func (a *Application) Logger() *log.Logger {
	return a.logger
}

// Update advances the application by one frame: it publishes the Frame
// singleton, runs every system and flushes deferred commands.
func (a *Application) Update(delta time.Duration) {
	start := time.Now()

	a.frame.Delta = delta
	a.frame.Elapsed += delta
	a.frame.Count++
	ecs.CreateSingleton(a.store, a.frame)

	a.systems.Update(a.store)
	a.store.Commands().Flush(a.store)

	if a.telemetry != nil {
		a.telemetry.RecordFrame(delta, start)
		a.telemetry.RecordSystems(a.systems)
		a.telemetry.SetGauge([]string{"entities"}, float32(a.store.Len()))
	}
}

// RequestExit asks the application to stop with code. The request is
// ignored if an exit is already pending or the exit handler vetoes it.
func (a *Application) RequestExit(code int) {
	if a.exitRequested {
		return
	}
	if a.onExitRequested != nil && !a.onExitRequested(code) {
		a.logger.Debug("exit request vetoed", log.Int("code", code))
		return
	}
	a.exitRequested = true
	a.exitCode = code
	a.logger.Info("exit requested", log.Int("code", code))
}

func (a *Application) ExitRequested() bool {
	return a.exitRequested
}

// ExitCode returns the requested exit code, or 0 if none was requested.
func (a *Application) ExitCode() int {
	return a.exitCode
}

// Run loops until an exit is requested or ctx is done, and returns the exit
// code. Each iteration pumps platform events, updates one frame and then
// waits out the frame clock. A frame that has started always completes.
func (a *Application) Run(ctx context.Context, platform Platform) int {
	a.logger.Trace("run loop started")
	defer a.logger.Trace("run loop stopped", log.Uint64("frames", a.frame.Count))

	for !a.ExitRequested() {
		if ctx.Err() != nil {
			a.logger.Debug("run loop cancelled", log.Error(ctx.Err()))
			break
		}

		if !platform.ProcessEvents(a.store) {
			a.RequestExit(0)
		}

		a.Update(a.time.Delta())
		a.time.Update()
	}
	return a.ExitCode()
}
