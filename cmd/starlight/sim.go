package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/system"
)

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Sprite struct {
	Color  [3]uint8
	Radius float32
}

type Lifespan struct {
	Remaining time.Duration
}

// Bounds is the area agents move in, in window coordinates.
type Bounds struct {
	Width, Height float32
}

// Spawner emits one agent every Interval until Limit agents are alive.
type Spawner struct {
	Interval    time.Duration
	Lifetime    time.Duration
	Limit       int
	Speed       float32
	Accumulator time.Duration
	Spawned     int

	rng *rand.Rand
}

var pastelColors = [][3]uint8{
	{255, 179, 186},
	{179, 229, 252},
	{255, 223, 186},
	{186, 255, 201},
	{255, 200, 221},
	{186, 225, 255},
	{255, 255, 186},
	{217, 186, 255},
}

// Simulation groups every system that advances the swarm.
type Simulation struct {
	system.Group
}

type SpawnSystem struct {
	Frame   ecs.Singleton[app.Frame]
	Bounds  ecs.Singleton[Bounds]
	Spawner ecs.Singleton[Spawner]
	Agents  ecs.Query[struct{ *Lifespan }]
}

func (s *SpawnSystem) Update(store *ecs.Store) {
	spawner, bounds := s.Spawner.Get(), s.Bounds.Get()
	if spawner == nil || bounds == nil || spawner.Interval <= 0 {
		return
	}

	spawner.Accumulator += s.Frame.Get().Delta
	alive := s.Agents.Len(store)

	for spawner.Accumulator >= spawner.Interval {
		spawner.Accumulator -= spawner.Interval
		if spawner.Limit > 0 && alive >= spawner.Limit {
			continue
		}
		alive++
		spawner.Spawned++

		spec := spawner.next(bounds)
		store.Commands().Create(func(store *ecs.Store, e ecs.Entity) {
			ecs.CreateComponent(store, e, spec.Position)
			ecs.CreateComponent(store, e, spec.Velocity)
			ecs.CreateComponent(store, e, spec.Sprite)
			ecs.CreateComponent(store, e, Lifespan{Remaining: spawner.Lifetime})
		})
	}
}

type agentSpec struct {
	Position Position
	Velocity Velocity
	Sprite   Sprite
}

func (s *Spawner) next(bounds *Bounds) agentSpec {
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(1, 2))
	}
	return agentSpec{
		Position: Position{X: s.rng.Float32() * bounds.Width, Y: s.rng.Float32() * bounds.Height},
		Velocity: Velocity{DX: (s.rng.Float32()*2 - 1) * s.Speed, DY: (s.rng.Float32()*2 - 1) * s.Speed},
		Sprite: Sprite{
			Color:  pastelColors[s.rng.IntN(len(pastelColors))],
			Radius: 3 + s.rng.Float32()*4,
		},
	}
}

type MovementSystem struct {
	Frame  ecs.Singleton[app.Frame]
	Bounds ecs.Singleton[Bounds]
	Bodies ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *MovementSystem) Update(store *ecs.Store) {
	bounds := s.Bounds.Get()
	if bounds == nil {
		return
	}
	dt := float32(s.Frame.Get().Delta.Seconds())

	for body := range s.Bodies.Values(store) {
		body.Position.X, body.Velocity.DX = bounce(body.Position.X+body.Velocity.DX*dt, body.Velocity.DX, bounds.Width)
		body.Position.Y, body.Velocity.DY = bounce(body.Position.Y+body.Velocity.DY*dt, body.Velocity.DY, bounds.Height)
	}
}

// bounce reflects pos back into [0, limit] and flips the velocity when it left.
func bounce(pos, vel, limit float32) (float32, float32) {
	switch {
	case pos < 0:
		return min(-pos, limit), -vel
	case pos > limit:
		return max(2*limit-pos, 0), -vel
	}
	return pos, vel
}

type AgingSystem struct {
	Frame  ecs.Singleton[app.Frame]
	Agents ecs.Query[struct {
		ecs.Entity
		*Lifespan
	}]
}

func (s *AgingSystem) Update(store *ecs.Store) {
	delta := s.Frame.Get().Delta
	for agent := range s.Agents.Values(store) {
		agent.Lifespan.Remaining -= delta
		if agent.Lifespan.Remaining <= 0 {
			store.Commands().Destroy(agent.Entity)
		}
	}
}

// FrameLimit requests an exit once Frames frames have run.
type FrameLimit struct {
	Frame ecs.Singleton[app.Frame]

	frames uint64
	app    *app.Application
}

func (s *FrameLimit) Update(*ecs.Store) {
	if s.Frame.Get().Count >= s.frames {
		s.app.RequestExit(0)
	}
}

// installSimulation registers the swarm systems and singletons.
func installSimulation(application *app.Application, bounds Bounds, spawner Spawner) error {
	store := application.Store()
	ecs.CreateSingleton(store, bounds)
	ecs.CreateSingleton(store, spawner)

	systems := application.Systems()
	if _, err := system.CreateSystem(systems, &Simulation{}); err != nil {
		return err
	}
	if _, err := system.CreateSystem(systems, &SpawnSystem{}, system.In[Simulation](), system.Before[MovementSystem]()); err != nil {
		return err
	}
	if _, err := system.CreateSystem(systems, &MovementSystem{}, system.In[Simulation]()); err != nil {
		return err
	}
	_, err := system.CreateSystem(systems, &AgingSystem{}, system.In[Simulation](), system.After[MovementSystem]())
	return err
}
