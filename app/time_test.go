package app_test

import (
	"testing"
	"time"

	"github.com/plus3/starlight/app"
	"github.com/stretchr/testify/assert"
)

func TestTimeDelta(t *testing.T) {
	clock := newFakeClock()
	frames := app.NewTime(clock)

	clock.Step(5 * time.Millisecond)
	frames.Update()
	assert.Equal(t, 5*time.Millisecond, frames.Delta())
	assert.Empty(t, clock.slept, "uncapped frames never sleep")
}

func TestTimeTargetFrameTime(t *testing.T) {
	clock := newFakeClock()
	frames := app.NewTime(clock)
	frames.SetTargetFrameTime(16 * time.Millisecond)

	// The buffered value is not active before the next Update
	assert.Equal(t, time.Duration(0), frames.TargetFrameTime())
	frames.Update()
	assert.Equal(t, 16*time.Millisecond, frames.TargetFrameTime())

	clock.Step(4 * time.Millisecond)
	frames.Update()
	assert.Equal(t, 16*time.Millisecond, frames.Delta())
	assert.Equal(t, []time.Duration{12 * time.Millisecond}, clock.slept)

	// A slow frame is not padded
	clock.slept = nil
	clock.Step(30 * time.Millisecond)
	frames.Update()
	assert.Equal(t, 30*time.Millisecond, frames.Delta())
	assert.Empty(t, clock.slept)
}

func TestTimeMaximumDelta(t *testing.T) {
	clock := newFakeClock()
	frames := app.NewTime(clock)
	frames.SetMaximumDeltaTime(50 * time.Millisecond)

	clock.Step(time.Second)
	frames.Update()
	assert.Equal(t, time.Second, frames.Delta(), "clamp applies from the next frame")
	assert.Equal(t, 50*time.Millisecond, frames.MaximumDeltaTime())

	clock.Step(time.Second)
	frames.Update()
	assert.Equal(t, 50*time.Millisecond, frames.Delta())

	frames.SetMaximumDeltaTime(0)
	frames.Update()
	clock.Step(time.Second)
	frames.Update()
	assert.Equal(t, time.Second, frames.Delta())
}

func TestTimeRejectsNegative(t *testing.T) {
	frames := app.NewTime(newFakeClock())
	assert.Panics(t, func() { frames.SetTargetFrameTime(-time.Millisecond) })
	assert.Panics(t, func() { frames.SetMaximumDeltaTime(-time.Millisecond) })
}
