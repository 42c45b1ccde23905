package overlay

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Locator reports the origin, in window coordinates, of a surface laid out at
// the given bounds.
type Locator interface {
	Locate(b Bounds) (x, y int)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(b Bounds) (x, y int)

// Locate calls f(b).
func (f LocatorFunc) Locate(b Bounds) (x, y int) { return f(b) }

// layoutLocator places the surface at its layout origin inside the window.
type layoutLocator struct{}

func (layoutLocator) Locate(b Bounds) (x, y int) {
	return b.Left, b.Top
}

// Overlay is a compositing surface that owns an ordered list of renderers,
// draws them back to front, and routes pointer input to the touch-capable
// ones. All methods must be called from the goroutine running the game loop.
type Overlay struct {
	// Background fills the screen before any renderer draws. A zero alpha
	// leaves the screen untouched.
	Background Color

	// ScreenshotDir is the directory where Screenshot writes PNG files.
	ScreenshotDir string

	clients      []Renderer
	touchClients []Renderer // most recently registered first
	primary      PrimaryRenderer
	forced       Renderer

	gestures    Gestures
	tapListener TapListener

	bounds           Bounds
	offsetX, offsetY int
	locator          Locator

	dirty      bool
	passes     int
	pruneTouch bool

	debug    bool
	debugOut io.Writer

	// Input state
	pointers    [maxPointers]pointerState
	touchMap    [maxPointers]ebiten.TouchID
	touchUsed   [maxPointers]bool
	prevTouches []ebiten.TouchID
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	screenshotQueue []string
}

// New creates an empty overlay configured by cfg. The first paint pass is
// already requested.
func New(cfg Config) *Overlay {
	o := &Overlay{
		Background:    cfg.Background,
		ScreenshotDir: cfg.ScreenshotDir,
		locator:       cfg.Locator,
		pruneTouch:    cfg.PruneTouchOnRemove,
		debug:         cfg.Debug,
		debugOut:      os.Stderr,
		dirty:         true,
	}
	if o.locator == nil {
		o.locator = layoutLocator{}
	}
	if o.ScreenshotDir == "" {
		o.ScreenshotDir = defaultScreenshotDir
	}
	return o
}

// SetDebugMode enables or disables debug mode. When enabled, paint pass stats
// and touch routing decisions are printed to stderr.
func (o *Overlay) SetDebugMode(enabled bool) {
	o.debug = enabled
}

// Invalidate requests another paint pass.
func (o *Overlay) Invalidate() {
	o.dirty = true
}

// NeedsRedraw reports whether a paint pass has been requested since the last
// call to Draw.
func (o *Overlay) NeedsRedraw() bool {
	return o.dirty
}

// Passes returns the number of completed paint passes.
func (o *Overlay) Passes() int {
	return o.passes
}

// Draw runs one paint pass: the background fill, then every renderer in
// registration order. If any renderer reports that it is still animating,
// another pass is requested.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.dirty = false

	var stats passStats
	var t0 time.Time
	if o.debug {
		t0 = time.Now()
	}

	if screen != nil && o.Background.A > 0 {
		screen.Fill(o.Background.toRGBA())
	}

	clients := slices.Clone(o.clients)
	for _, r := range clients {
		r.Draw(screen)
	}

	redraw := false
	for _, r := range clients {
		if r.Animating() {
			redraw = true
			stats.animating++
		}
	}
	if redraw {
		o.Invalidate()
	}
	o.passes++

	if screen != nil {
		o.flushScreenshots(screen)
	}

	if o.debug {
		stats.drawTime = time.Since(t0)
		stats.renderers = len(clients)
		stats.redraw = redraw
		o.debugLogPass(stats)
	}
}

// Layout records new bounds, refreshes the surface offset, and propagates the
// bounds to every renderer in registration order.
func (o *Overlay) Layout(b Bounds) {
	o.bounds = b
	o.refreshPosition()
	for _, r := range slices.Clone(o.clients) {
		r.Layout(b.Left, b.Top, b.Right, b.Bottom)
	}
	o.Invalidate()
}

// Bounds returns the bounds from the most recent layout pass.
func (o *Overlay) Bounds() Bounds {
	return o.bounds
}

func (o *Overlay) refreshPosition() {
	o.offsetX, o.offsetY = o.locator.Locate(o.bounds)
}

// OffsetX returns the horizontal origin of the surface inside the window, as
// of the last layout pass.
func (o *Overlay) OffsetX() int {
	return o.offsetX
}

// OffsetY returns the vertical origin of the surface inside the window, as of
// the last layout pass.
func (o *Overlay) OffsetY() int {
	return o.offsetY
}

// tick advances every Ticker in the draw list by dt seconds. Renderers
// removed by an earlier Tick in the same pass are still ticked.
func (o *Overlay) tick(dt float32) {
	for _, r := range slices.Clone(o.clients) {
		if t, ok := r.(Ticker); ok {
			t.Tick(dt)
		}
	}
}
