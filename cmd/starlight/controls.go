package main

import (
	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
	"github.com/plus3/starlight/platform"
)

// controls reacts to window and keyboard events: closing the window or
// pressing Escape exits, and resizing moves the swarm bounds.
type controls struct {
	app *app.Application
}

func attachControls(application *app.Application, window *platform.Window) {
	c := &controls{app: application}
	window.SetWindowListener(c)
	window.SetInputListener(c)
}

func (c *controls) OnWindowClose(*platform.Window, platform.WindowCloseEvent) {
	c.app.RequestExit(0)
}

func (c *controls) OnWindowResize(_ *platform.Window, event platform.WindowResizeEvent) {
	if bounds, ok := ecs.LookupSingleton[Bounds](c.app.Store()); ok {
		bounds.Width, bounds.Height = float32(event.Size.X), float32(event.Size.Y)
	}
	c.app.Logger().Debug("window resized", log.Int("width", event.Size.X), log.Int("height", event.Size.Y))
}

func (c *controls) OnMouseFocus(*platform.Window, platform.MouseFocusEvent)       {}
func (c *controls) OnKeyboardFocus(*platform.Window, platform.KeyboardFocusEvent) {}

func (c *controls) OnKey(_ *platform.Window, event platform.KeyEvent) {
	if event.Pressed && event.Key == platform.KeyEscape {
		c.app.RequestExit(0)
	}
}

func (c *controls) OnMouseButton(*platform.Window, platform.MouseButtonEvent) {}
func (c *controls) OnMouseMotion(*platform.Window, platform.MouseMotionEvent) {}
func (c *controls) OnMouseScroll(*platform.Window, platform.MouseScrollEvent) {}
