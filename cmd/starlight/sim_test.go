package main

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/platform"
	"github.com/plus3/starlight/system"
)

func newSwarm(t *testing.T, spawner Spawner) *app.Application {
	t.Helper()
	application := app.New()
	require.NoError(t, installSimulation(application, Bounds{Width: 100, Height: 100}, spawner))
	return application
}

func TestSpawnAndExpire(t *testing.T) {
	application := newSwarm(t, Spawner{
		Interval: 100 * time.Millisecond,
		Lifetime: time.Second,
		Speed:    10,
	})
	store := application.Store()

	for range 10 {
		application.Update(100 * time.Millisecond)
	}
	assert.Equal(t, 10, store.Len())
	assert.Equal(t, 10, ecs.CountComponent[Lifespan](store))

	// Agents spawned in the first ten frames age out during the next ten
	for range 10 {
		application.Update(100 * time.Millisecond)
	}
	assert.Equal(t, 10, store.Len())
	spawner := ecs.GetSingleton[Spawner](store)
	assert.Equal(t, 20, spawner.Spawned)
}

func TestSpawnLimit(t *testing.T) {
	application := newSwarm(t, Spawner{
		Interval: 10 * time.Millisecond,
		Lifetime: time.Minute,
		Limit:    5,
	})

	application.Update(100 * time.Millisecond)
	application.Update(100 * time.Millisecond)
	assert.Equal(t, 5, application.Store().Len())
}

func TestBounce(t *testing.T) {
	pos, vel := bounce(109, 10, 100)
	assert.Equal(t, float32(91), pos)
	assert.Equal(t, float32(-10), vel)

	pos, vel = bounce(-3, -5, 100)
	assert.Equal(t, float32(3), pos)
	assert.Equal(t, float32(5), vel)

	pos, vel = bounce(50, 1, 100)
	assert.Equal(t, float32(50), pos)
	assert.Equal(t, float32(1), vel)
}

func TestMovementStaysInBounds(t *testing.T) {
	application := newSwarm(t, Spawner{})
	store := application.Store()

	e := store.Create()
	ecs.CreateComponent(store, e, Position{X: 95, Y: 50})
	ecs.CreateComponent(store, e, Velocity{DX: 10, DY: 0})

	application.Update(time.Second)

	pos := ecs.GetComponent[Position](store, e)
	vel := ecs.GetComponent[Velocity](store, e)
	assert.Equal(t, Position{X: 95, Y: 50}, *pos)
	assert.Equal(t, float32(-10), vel.DX)
}

func TestSystemOrder(t *testing.T) {
	application := newSwarm(t, Spawner{})
	sim, err := system.GetSystem[*Simulation](application.Systems())
	require.NoError(t, err)

	assert.Equal(t, []system.Kind{
		system.KindOf[SpawnSystem](),
		system.KindOf[MovementSystem](),
		system.KindOf[AgingSystem](),
	}, sim.Order())
	assert.Empty(t, sim.Conflicts())
}

func TestControls(t *testing.T) {
	application := newSwarm(t, Spawner{})
	store := application.Store()
	window := platform.CreateWindow(store, "test", 100, 100)
	attachControls(application, window)

	queue := &platform.Queue{}
	queue.Push(platform.WindowResizeEvent{Size: image.Pt(320, 200), Pixel: image.Pt(640, 400)})
	assert.True(t, queue.ProcessEvents(store))
	assert.Equal(t, Bounds{Width: 320, Height: 200}, *ecs.GetSingleton[Bounds](store))

	queue.Push(platform.KeyEvent{Key: platform.KeyA, Pressed: true})
	queue.ProcessEvents(store)
	assert.False(t, application.ExitRequested())

	queue.Push(platform.KeyEvent{Key: platform.KeyEscape, Pressed: true})
	queue.ProcessEvents(store)
	assert.True(t, application.ExitRequested())
}

func TestFrameLimit(t *testing.T) {
	application := newSwarm(t, defaultSpawner())
	_, err := system.CreateSystem(application.Systems(), &FrameLimit{frames: 3, app: application}, system.After[Simulation]())
	require.NoError(t, err)

	assert.Equal(t, 0, simulate(context.Background(), application))
	assert.Equal(t, uint64(3), ecs.GetSingleton[app.Frame](application.Store()).Count)
}

func TestRootCommandSimulate(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"simulate", "--frames", "2", "--log-level", "error"})

	code, err := root.execute()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRootCommandBadLevel(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"simulate", "--frames", "1", "--log-level", "loud"})

	_, err := root.execute()
	assert.Error(t, err)
}
