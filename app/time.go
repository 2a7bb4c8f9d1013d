package app

import (
	"time"

	"github.com/rotisserie/eris"
)

// Clock abstracts the passage of time for Time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Time measures frame durations. New target frame time and maximum delta
// values are buffered and take effect after the next Update.
type Time struct {
	clock    Clock
	frameEnd time.Time
	delta    time.Duration

	maximumDelta         time.Duration
	bufferedMaximumDelta time.Duration

	targetFrameTime         time.Duration
	bufferedTargetFrameTime time.Duration
}

// NewTime starts measuring from now. A nil clock uses SystemClock.
func NewTime(clock Clock) *Time {
	if clock == nil {
		clock = SystemClock
	}
	return &Time{
		clock:    clock,
		frameEnd: clock.Now(),
	}
}

// Update ends the current frame. It waits until the target frame time has
// elapsed since the previous frame end, then records the clamped delta.
func (t *Time) Update() {
	lastFrameEnd := t.frameEnd
	target := lastFrameEnd.Add(t.targetFrameTime)

	now := t.clock.Now()
	for now.Before(target) {
		t.clock.Sleep(target.Sub(now))
		now = t.clock.Now()
	}
	t.frameEnd = now
	t.delta = now.Sub(lastFrameEnd)

	if t.maximumDelta > 0 && t.delta > t.maximumDelta {
		t.delta = t.maximumDelta
	}

	t.maximumDelta = t.bufferedMaximumDelta
	t.targetFrameTime = t.bufferedTargetFrameTime
}

// Delta returns the duration of the last completed frame.
func (t *Time) Delta() time.Duration {
	return t.delta
}

func (t *Time) MaximumDeltaTime() time.Duration {
	return t.maximumDelta
}

// SetMaximumDeltaTime buffers a new delta clamp. Zero disables clamping.
func (t *Time) SetMaximumDeltaTime(d time.Duration) {
	if d < 0 {
		panic(eris.Errorf("maximum delta time %s should not be less than 0", d))
	}
	t.bufferedMaximumDelta = d
}

func (t *Time) TargetFrameTime() time.Duration {
	return t.targetFrameTime
}

// SetTargetFrameTime buffers a new minimum frame duration. Zero runs uncapped.
func (t *Time) SetTargetFrameTime(d time.Duration) {
	if d < 0 {
		panic(eris.Errorf("target frame time %s should not be less than 0", d))
	}
	t.bufferedTargetFrameTime = d
}
