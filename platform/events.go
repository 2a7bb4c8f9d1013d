package platform

import "image"

// Event is a platform event delivered to a Window.
type Event interface {
	isEvent()
}

// WindowCloseEvent is sent when the user asks to close the window.
type WindowCloseEvent struct{}

// WindowResizeEvent carries the new window dimensions.
type WindowResizeEvent struct {
	// Size is in screen coordinates.
	Size image.Point
	// Pixel is in device pixels.
	Pixel image.Point
}

type MouseFocusEvent struct {
	Focused bool
}

type KeyboardFocusEvent struct {
	Focused bool
}

type KeyEvent struct {
	Key     Key
	Pressed bool
}

type MouseButtonEvent struct {
	Button  Button
	Pressed bool
	// Position is relative to the window.
	Position image.Point
}

type MouseMotionEvent struct {
	Position image.Point
	Movement image.Point
}

type MouseScrollEvent struct {
	X, Y float64
}

// TextInputEvent carries UTF-8 text typed by the user.
type TextInputEvent struct {
	Text string
}

// QuitEvent asks the application to exit. It is not dispatched to listeners.
type QuitEvent struct{}

func (WindowCloseEvent) isEvent()   {}
func (WindowResizeEvent) isEvent()  {}
func (MouseFocusEvent) isEvent()    {}
func (KeyboardFocusEvent) isEvent() {}
func (KeyEvent) isEvent()           {}
func (MouseButtonEvent) isEvent()   {}
func (MouseMotionEvent) isEvent()   {}
func (MouseScrollEvent) isEvent()   {}
func (TextInputEvent) isEvent()     {}
func (QuitEvent) isEvent()          {}
