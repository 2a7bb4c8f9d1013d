package platform_test

import (
	"image"
	"testing"

	"github.com/google/uuid"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
	"github.com/plus3/starlight/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	events []platform.Event
	sender *platform.Window
}

func (r *recorder) add(sender *platform.Window, ev platform.Event) {
	r.sender = sender
	r.events = append(r.events, ev)
}

func (r *recorder) OnWindowClose(w *platform.Window, ev platform.WindowCloseEvent)   { r.add(w, ev) }
func (r *recorder) OnWindowResize(w *platform.Window, ev platform.WindowResizeEvent) { r.add(w, ev) }
func (r *recorder) OnMouseFocus(w *platform.Window, ev platform.MouseFocusEvent)     { r.add(w, ev) }
func (r *recorder) OnKeyboardFocus(w *platform.Window, ev platform.KeyboardFocusEvent) {
	r.add(w, ev)
}
func (r *recorder) OnKey(w *platform.Window, ev platform.KeyEvent)                 { r.add(w, ev) }
func (r *recorder) OnMouseButton(w *platform.Window, ev platform.MouseButtonEvent) { r.add(w, ev) }
func (r *recorder) OnMouseMotion(w *platform.Window, ev platform.MouseMotionEvent) { r.add(w, ev) }
func (r *recorder) OnMouseScroll(w *platform.Window, ev platform.MouseScrollEvent) { r.add(w, ev) }
func (r *recorder) OnTextInput(w *platform.Window, ev platform.TextInputEvent)     { r.add(w, ev) }

func allEvents() []platform.Event {
	return []platform.Event{
		platform.WindowCloseEvent{},
		platform.WindowResizeEvent{Size: image.Pt(800, 600), Pixel: image.Pt(1600, 1200)},
		platform.MouseFocusEvent{Focused: true},
		platform.KeyboardFocusEvent{Focused: true},
		platform.KeyEvent{Key: platform.KeyEscape, Pressed: true},
		platform.MouseButtonEvent{Button: platform.ButtonM2, Pressed: true, Position: image.Pt(4, 5)},
		platform.MouseMotionEvent{Position: image.Pt(10, 10), Movement: image.Pt(1, -1)},
		platform.MouseScrollEvent{Y: 1.5},
		platform.TextInputEvent{Text: "é"},
	}
}

func TestWindowDispatch(t *testing.T) {
	window := platform.NewWindow("Moonlight", 1600, 900)
	assert.NotEqual(t, uuid.Nil, window.ID)

	rec := &recorder{}
	window.SetWindowListener(rec)
	window.SetInputListener(rec)
	window.SetTextListener(rec)

	for _, ev := range allEvents() {
		window.Handle(ev)
	}

	assert.Equal(t, allEvents(), rec.events)
	assert.Same(t, &window, rec.sender)
	assert.Equal(t, image.Pt(800, 600), window.Size)
	assert.True(t, window.MouseFocused)
	assert.True(t, window.KeyboardFocused)
}

func TestWindowWithoutListeners(t *testing.T) {
	window := platform.NewWindow("empty", 10, 10)
	assert.Nil(t, window.WindowListener())
	assert.Nil(t, window.InputListener())
	assert.Nil(t, window.TextListener())

	assert.NotPanics(t, func() {
		for _, ev := range allEvents() {
			window.Handle(ev)
		}
	})
	// State still follows the events
	assert.Equal(t, image.Pt(800, 600), window.Size)
}

func TestPartialListeners(t *testing.T) {
	window := platform.NewWindow("partial", 10, 10)
	rec := &recorder{}
	window.SetTextListener(rec)

	for _, ev := range allEvents() {
		window.Handle(ev)
	}
	assert.Equal(t, []platform.Event{platform.TextInputEvent{Text: "é"}}, rec.events)

	window.SetTextListener(nil)
	window.Handle(platform.TextInputEvent{Text: "ignored"})
	assert.Len(t, rec.events, 1)
}

func TestQueue(t *testing.T) {
	store := ecs.NewStore()
	var queue platform.Queue

	// Without a window singleton events are dropped
	queue.Push(platform.KeyEvent{Key: platform.KeyA, Pressed: true})
	assert.True(t, queue.ProcessEvents(store))
	assert.Equal(t, 0, queue.Len())

	window := platform.CreateWindow(store, "Moonlight", 1600, 900)
	rec := &recorder{}
	window.SetInputListener(rec)

	queue.Push(platform.KeyEvent{Key: platform.KeyA, Pressed: true}, platform.QuitEvent{}, platform.KeyEvent{Key: platform.KeyA})
	assert.False(t, queue.ProcessEvents(store))
	require.Len(t, rec.events, 2, "events after a quit are still delivered")
	assert.True(t, queue.ProcessEvents(store))
}

func TestDispatchLogsWindowID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel - 1)
	log.SetDefault(log.NewWithCore(core))
	t.Cleanup(func() { log.SetDefault(nil) })

	store := ecs.NewStore()
	window := platform.CreateWindow(store, "Moonlight", 1600, 900)
	assert.True(t, platform.Dispatch(store, platform.MouseFocusEvent{Focused: true}))

	entries := logs.FilterMessage("event dispatched").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, window.ID.String(), fields["window"])
	assert.Equal(t, "platform.MouseFocusEvent", fields["event"])
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "Escape", platform.KeyEscape.String())
	assert.Equal(t, "Nr1", platform.KeyNr1.String())
	assert.Equal(t, "Unknown", platform.Key(300).String())
	assert.Equal(t, platform.Key(41), platform.KeyEscape)
	assert.Equal(t, "M3", platform.ButtonM3.String())
	assert.Equal(t, "Unknown", platform.ButtonCount.String())
}
