// Package platform defines the window and input events an application reacts to.
// Drivers such as platform/ebiten translate native input into these events.
package platform

import (
	"image"

	"github.com/google/uuid"

	"github.com/plus3/starlight/ecs"
)

type WindowListener interface {
	OnWindowClose(sender *Window, event WindowCloseEvent)
	OnWindowResize(sender *Window, event WindowResizeEvent)
	OnMouseFocus(sender *Window, event MouseFocusEvent)
	OnKeyboardFocus(sender *Window, event KeyboardFocusEvent)
}

type InputListener interface {
	OnKey(sender *Window, event KeyEvent)
	OnMouseButton(sender *Window, event MouseButtonEvent)
	OnMouseMotion(sender *Window, event MouseMotionEvent)
	OnMouseScroll(sender *Window, event MouseScrollEvent)
}

type TextListener interface {
	OnTextInput(sender *Window, event TextInputEvent)
}

// Window is the application window. It lives in the store as a singleton.
// Each listener slot is optional; events for an empty slot are dropped.
type Window struct {
	ID    uuid.UUID
	Title string
	Size  image.Point

	MouseFocused    bool
	KeyboardFocused bool

	windowListener WindowListener
	inputListener  InputListener
	textListener   TextListener
}

// NewWindow returns a window value with a fresh identity.
func NewWindow(title string, width, height int) Window {
	return Window{
		ID:    uuid.New(),
		Title: title,
		Size:  image.Pt(width, height),
	}
}

// CreateWindow stores a new window as the store's Window singleton.
func CreateWindow(store *ecs.Store, title string, width, height int) *Window {
	return ecs.CreateSingleton(store, NewWindow(title, width, height))
}

func (w *Window) WindowListener() WindowListener { return w.windowListener }
func (w *Window) InputListener() InputListener   { return w.inputListener }
func (w *Window) TextListener() TextListener     { return w.textListener }

// SetWindowListener installs l; nil clears the slot.
func (w *Window) SetWindowListener(l WindowListener) { w.windowListener = l }

// SetInputListener installs l; nil clears the slot.
func (w *Window) SetInputListener(l InputListener) { w.inputListener = l }

// SetTextListener installs l; nil clears the slot.
func (w *Window) SetTextListener(l TextListener) { w.textListener = l }

// Handle updates the window state for event and forwards it to the matching listener.
func (w *Window) Handle(event Event) {
	switch ev := event.(type) {
	case WindowCloseEvent:
		if w.windowListener != nil {
			w.windowListener.OnWindowClose(w, ev)
		}
	case WindowResizeEvent:
		w.Size = ev.Size
		if w.windowListener != nil {
			w.windowListener.OnWindowResize(w, ev)
		}
	case MouseFocusEvent:
		w.MouseFocused = ev.Focused
		if w.windowListener != nil {
			w.windowListener.OnMouseFocus(w, ev)
		}
	case KeyboardFocusEvent:
		w.KeyboardFocused = ev.Focused
		if w.windowListener != nil {
			w.windowListener.OnKeyboardFocus(w, ev)
		}
	case KeyEvent:
		if w.inputListener != nil {
			w.inputListener.OnKey(w, ev)
		}
	case MouseButtonEvent:
		if w.inputListener != nil {
			w.inputListener.OnMouseButton(w, ev)
		}
	case MouseMotionEvent:
		if w.inputListener != nil {
			w.inputListener.OnMouseMotion(w, ev)
		}
	case MouseScrollEvent:
		if w.inputListener != nil {
			w.inputListener.OnMouseScroll(w, ev)
		}
	case TextInputEvent:
		if w.textListener != nil {
			w.textListener.OnTextInput(w, ev)
		}
	}
}
