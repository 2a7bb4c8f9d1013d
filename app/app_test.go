package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
	"github.com/plus3/starlight/platform"
	"github.com/plus3/starlight/system"
	"github.com/plus3/starlight/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type frameRecorder struct {
	frames []app.Frame
}

func (r *frameRecorder) Update(store *ecs.Store) {
	r.frames = append(r.frames, *ecs.GetSingleton[app.Frame](store))
}

type spawner struct{}

func (spawner) Update(store *ecs.Store) {
	store.Commands().Create(nil)
	// Deferred creations are not visible during the frame
	if store.Len() > 0 {
		panic("entity visible before flush")
	}
}

func TestUpdatePublishesFrame(t *testing.T) {
	application := app.New()
	rec, err := system.CreateSystem(application.Systems(), &frameRecorder{})
	require.NoError(t, err)

	application.Update(10 * time.Millisecond)
	application.Update(20 * time.Millisecond)

	assert.Equal(t, []app.Frame{
		{Delta: 10 * time.Millisecond, Elapsed: 10 * time.Millisecond, Count: 1},
		{Delta: 20 * time.Millisecond, Elapsed: 30 * time.Millisecond, Count: 2},
	}, rec.frames)
}

func TestUpdateFlushesCommands(t *testing.T) {
	application := app.New()
	_, err := system.CreateSystem(application.Systems(), spawner{})
	require.NoError(t, err)

	assert.NotPanics(t, func() { application.Update(0) })
	assert.Equal(t, 1, application.Store().Len())
}

func TestExitProtocol(t *testing.T) {
	application := app.New()
	assert.False(t, application.ExitRequested())
	assert.Equal(t, 0, application.ExitCode())

	application.RequestExit(3)
	application.RequestExit(7)
	assert.True(t, application.ExitRequested())
	assert.Equal(t, 3, application.ExitCode(), "the first request wins")
}

func TestExitVeto(t *testing.T) {
	allow := false
	var asked []int
	application := app.New(app.WithExitHandler(func(code int) bool {
		asked = append(asked, code)
		return allow
	}))

	application.RequestExit(1)
	assert.False(t, application.ExitRequested())

	allow = true
	application.RequestExit(2)
	assert.True(t, application.ExitRequested())
	assert.Equal(t, 2, application.ExitCode())
	assert.Equal(t, []int{1, 2}, asked)
}

func TestRunUntilQuit(t *testing.T) {
	clock := newFakeClock()
	frames := app.NewTime(clock)
	frames.SetTargetFrameTime(10 * time.Millisecond)

	application := app.New(app.WithTime(frames))
	rec, err := system.CreateSystem(application.Systems(), &frameRecorder{})
	require.NoError(t, err)

	queue := &quitAfter{frames: 3}
	code := application.Run(context.Background(), queue)

	assert.Equal(t, 0, code)
	// The frame in which quit arrives still runs
	require.Len(t, rec.frames, 3)
	assert.Equal(t, time.Duration(0), rec.frames[0].Delta)
	assert.Equal(t, 10*time.Millisecond, rec.frames[2].Delta)
}

type quitAfter struct {
	frames int
	seen   int
}

func (q *quitAfter) ProcessEvents(*ecs.Store) bool {
	q.seen++
	return q.seen < q.frames
}

type exitSystem struct {
	app  *app.Application
	code int
}

func (s *exitSystem) Update(*ecs.Store) {
	s.app.RequestExit(s.code)
}

func TestRunExitFromSystem(t *testing.T) {
	application := app.New(app.WithTime(app.NewTime(newFakeClock())))
	_, err := system.CreateSystem(application.Systems(), &exitSystem{app: application, code: 42})
	require.NoError(t, err)

	assert.Equal(t, 42, application.Run(context.Background(), &platform.Queue{}))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	application := app.New(app.WithTime(app.NewTime(newFakeClock())))
	rec, err := system.CreateSystem(application.Systems(), &frameRecorder{})
	require.NoError(t, err)

	_, err = system.CreateSystem(application.Systems(), &cancelAfter{cancel: cancel, frames: 2})
	require.NoError(t, err)

	assert.Equal(t, 0, application.Run(ctx, &platform.Queue{}))
	assert.Len(t, rec.frames, 2)
	assert.False(t, application.ExitRequested())
}

type cancelAfter struct {
	cancel context.CancelFunc
	frames int
	seen   int
}

func (c *cancelAfter) Update(*ecs.Store) {
	c.seen++
	if c.seen == c.frames {
		c.cancel()
	}
}

func TestQuitEventThroughQueue(t *testing.T) {
	application := app.New(app.WithTime(app.NewTime(newFakeClock())))
	window := platform.CreateWindow(application.Store(), "Moonlight", 1600, 900)
	assert.Equal(t, "Moonlight", window.Title)

	queue := &platform.Queue{}
	queue.Push(platform.WindowCloseEvent{}, platform.QuitEvent{})
	assert.Equal(t, 0, application.Run(context.Background(), queue))
	assert.True(t, application.ExitRequested())
}

func TestLoggingAndTelemetry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	recorder, err := telemetry.New("starlight", time.Minute, time.Hour)
	require.NoError(t, err)

	application := app.New(
		app.WithLogger(log.NewWithCore(core)),
		app.WithTelemetry(recorder),
		app.WithExitHandler(func(int) bool { return false }),
	)

	application.Update(time.Millisecond)
	application.RequestExit(1)

	assert.Equal(t, 1, recorder.Counter("starlight.frame.count"))
	assert.Equal(t, 1, logs.FilterMessage("exit request vetoed").Len())
}
