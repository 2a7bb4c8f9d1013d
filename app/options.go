package app

import (
	"github.com/plus3/starlight/log"
	"github.com/plus3/starlight/telemetry"
)

type Option func(*Application)

func WithLogger(logger *log.Logger) Option {
	return func(a *Application) {
		a.logger = logger
	}
}

func WithTelemetry(recorder *telemetry.Recorder) Option {
	return func(a *Application) {
		a.telemetry = recorder
	}
}

// WithExitHandler installs a hook consulted on RequestExit. Returning false vetoes the exit.
func WithExitHandler(handler func(code int) bool) Option {
	return func(a *Application) {
		a.onExitRequested = handler
	}
}

// WithTime replaces the frame clock used by Run.
func WithTime(t *Time) Option {
	return func(a *Application) {
		a.time = t
	}
}
