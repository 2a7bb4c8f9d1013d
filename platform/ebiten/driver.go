// Package ebiten runs an application inside an ebiten game loop and
// translates ebiten input into platform events.
package ebiten

import (
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rotisserie/eris"

	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
	"github.com/plus3/starlight/platform"
)

// Overlay draws on top of the game each frame, typically an ImGui backend.
type Overlay interface {
	Begin()
	End()
	DrawOverlay(screen *ebiten.Image)
	LayoutOverlay(width, height int)
}

// Driver implements ebiten.Game for an application. It also satisfies
// app.Platform so Run and tests share the same event path.
type Driver struct {
	app     *app.Application
	overlay Overlay
	draw    func(screen *ebiten.Image)

	input frameInput
	state inputState
}

type Option func(*Driver)

// WithOverlay draws o after the game and feeds it the frame boundaries.
func WithOverlay(o Overlay) Option {
	return func(d *Driver) { d.overlay = o }
}

// WithDraw sets the function that renders the game to the screen.
func WithDraw(draw func(screen *ebiten.Image)) Option {
	return func(d *Driver) { d.draw = draw }
}

func NewDriver(application *app.Application, opts ...Option) *Driver {
	d := &Driver{app: application}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run configures the ebiten window from the store's Window singleton and
// blocks until the application exits. The returned code is the exit code.
func Run(application *app.Application, opts ...Option) (int, error) {
	store := application.Store()
	if window, ok := ecs.LookupSingleton[platform.Window](store); ok {
		ebiten.SetWindowTitle(window.Title)
		ebiten.SetWindowSize(window.Size.X, window.Size.Y)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	tps := ebiten.DefaultTPS
	if target := application.Time().TargetFrameTime(); target > 0 {
		tps = max(1, int(time.Second/target))
	}
	ebiten.SetTPS(tps)

	d := NewDriver(application, opts...)
	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return 1, eris.Wrap(err, "ebiten game loop failed")
	}
	return application.ExitCode(), nil
}

// ProcessEvents reads one tick of ebiten input and dispatches it.
func (d *Driver) ProcessEvents(store *ecs.Store) bool {
	d.input.read()
	events := d.state.translate(d.input)

	window, hasWindow := ecs.LookupSingleton[platform.Window](store)
	if d.input.closing && (!hasWindow || window.WindowListener() == nil) {
		events = append(events, platform.QuitEvent{})
	}
	return platform.Dispatch(store, events...)
}

func (d *Driver) Update() error {
	if d.overlay != nil {
		d.overlay.Begin()
	}

	if !d.ProcessEvents(d.app.Store()) {
		d.app.RequestExit(0)
	}
	if !d.app.ExitRequested() {
		tick := time.Second / time.Duration(ebiten.TPS())
		d.app.Update(tick)
	}

	if d.overlay != nil {
		d.overlay.End()
	}

	if d.app.ExitRequested() {
		log.Default().Debug("ebiten driver terminating", log.Int("code", d.app.ExitCode()))
		return ebiten.Termination
	}
	return nil
}

func (d *Driver) Draw(screen *ebiten.Image) {
	if d.draw != nil {
		d.draw(screen)
	}
	if d.overlay != nil {
		d.overlay.DrawOverlay(screen)
	}
}

func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	if d.overlay != nil {
		d.overlay.LayoutOverlay(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// frameInput is the raw input of one tick.
type frameInput struct {
	pressed    []ebiten.Key
	released   []ebiten.Key
	buttonDown [platform.ButtonCount]bool
	buttonUp   [platform.ButtonCount]bool
	cursor     image.Point
	wheelX     float64
	wheelY     float64
	chars      []rune
	focused    bool
	size       image.Point
	scale      float64
	closing    bool
}

func (in *frameInput) read() {
	in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])
	in.released = inpututil.AppendJustReleasedKeys(in.released[:0])
	for b, mb := range buttons {
		in.buttonDown[b] = inpututil.IsMouseButtonJustPressed(mb)
		in.buttonUp[b] = inpututil.IsMouseButtonJustReleased(mb)
	}
	in.cursor = image.Pt(ebiten.CursorPosition())
	in.wheelX, in.wheelY = ebiten.Wheel()
	in.chars = ebiten.AppendInputChars(in.chars[:0])
	in.focused = ebiten.IsFocused()
	in.size = image.Pt(ebiten.WindowSize())
	in.scale = ebiten.Monitor().DeviceScaleFactor()
	in.closing = ebiten.IsWindowBeingClosed()
}

// inputState remembers what the previous tick reported so that only
// changes become events.
type inputState struct {
	initialized bool
	cursor      image.Point
	hovered     bool
	focused     bool
	size        image.Point
}

func (s *inputState) translate(in frameInput) []platform.Event {
	var events []platform.Event

	if in.closing {
		events = append(events, platform.WindowCloseEvent{})
	}

	if in.size != s.size && in.size.X > 0 && in.size.Y > 0 {
		scale := in.scale
		if scale <= 0 {
			scale = 1
		}
		pixel := image.Pt(int(float64(in.size.X)*scale), int(float64(in.size.Y)*scale))
		events = append(events, platform.WindowResizeEvent{Size: in.size, Pixel: pixel})
		s.size = in.size
	}

	if !s.initialized || in.focused != s.focused {
		events = append(events, platform.KeyboardFocusEvent{Focused: in.focused})
		s.focused = in.focused
	}

	hovered := in.cursor.In(image.Rectangle{Max: s.size})
	if !s.initialized || hovered != s.hovered {
		events = append(events, platform.MouseFocusEvent{Focused: hovered})
		s.hovered = hovered
	}

	for _, key := range in.pressed {
		if k := Scancode(key); k != platform.KeyUnknown {
			events = append(events, platform.KeyEvent{Key: k, Pressed: true})
		}
	}
	for _, key := range in.released {
		if k := Scancode(key); k != platform.KeyUnknown {
			events = append(events, platform.KeyEvent{Key: k, Pressed: false})
		}
	}

	if s.initialized && in.cursor != s.cursor {
		events = append(events, platform.MouseMotionEvent{Position: in.cursor, Movement: in.cursor.Sub(s.cursor)})
	}
	s.cursor = in.cursor

	for b := range platform.ButtonCount {
		if in.buttonDown[b] {
			events = append(events, platform.MouseButtonEvent{Button: b, Pressed: true, Position: in.cursor})
		}
		if in.buttonUp[b] {
			events = append(events, platform.MouseButtonEvent{Button: b, Pressed: false, Position: in.cursor})
		}
	}

	if in.wheelX != 0 || in.wheelY != 0 {
		events = append(events, platform.MouseScrollEvent{X: in.wheelX, Y: in.wheelY})
	}

	if len(in.chars) > 0 {
		events = append(events, platform.TextInputEvent{Text: string(in.chars)})
	}

	s.initialized = true
	return events
}
