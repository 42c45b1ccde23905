package overlay

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is the zero color. A transparent background skips the fill.
var ColorTransparent = Color{}

// Bounds is a layout rectangle in host pixels, expressed as edges the way the
// host reports them. Right and Bottom are exclusive.
type Bounds struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (b Bounds) Width() int { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b Bounds) Height() int { return b.Bottom - b.Top }

// Contains reports whether the point (x, y) lies inside the bounds.
// The left and top edges are inside, the right and bottom edges are not.
func (b Bounds) Contains(x, y float64) bool {
	return x >= float64(b.Left) && x < float64(b.Right) &&
		y >= float64(b.Top) && y < float64(b.Bottom)
}

// PointerAction identifies the phase of a pointer event.
type PointerAction uint8

const (
	ActionDown        PointerAction = iota // first pointer pressed
	ActionMove                             // a pressed pointer moved
	ActionUp                               // last pointer released
	ActionCancel                           // gesture aborted by the host
	ActionPointerDown                      // an additional pointer pressed
	ActionPointerUp                        // a non-last pointer released
)

var actionNames = [...]string{"down", "move", "up", "cancel", "pointer_down", "pointer_up"}

func (a PointerAction) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// PointerEvent is a single pointer or touch sample delivered to the overlay.
// X and Y are window-relative; subtract Overlay.OffsetX/OffsetY to get
// surface-local coordinates.
type PointerEvent struct {
	Action    PointerAction
	PointerID int
	X, Y      float64
}

// Renderer is a pluggable layer drawn by an Overlay. Implementations are owned
// by whoever registers them; the overlay only holds a reference while the
// renderer is registered.
type Renderer interface {
	// HandlesTouch reports whether the renderer wants ambient touch events.
	// It is evaluated once, when the renderer is registered.
	HandlesTouch() bool
	// OnTouchEvent handles a pointer event and reports whether it was consumed.
	OnTouchEvent(ev PointerEvent) bool
	// SetOverlay gives the renderer a back-reference to its overlay, or nil
	// when it is removed.
	SetOverlay(o *Overlay)
	// Layout is called with the overlay bounds on registration and on every
	// layout pass.
	Layout(left, top, right, bottom int)
	// Draw paints the renderer onto the overlay's screen.
	Draw(screen *ebiten.Image)
	// Animating reports whether the renderer needs another paint pass.
	Animating() bool
}

// PrimaryRenderer is the single legacy primary layer, reachable through
// Overlay.RoutePrimary. It is open while it wants exclusive input.
type PrimaryRenderer interface {
	Renderer
	IsOpen() bool
}

// Gestures is the host's gesture recognizer. The overlay does not call into
// it; touch dispatch is inert until one is attached.
type Gestures any

// TapListener receives single-tap notifications at the X and Y of the
// triggering PointerEvent, truncated to int. Like the event, they are
// window-relative.
type TapListener func(x, y int)

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
