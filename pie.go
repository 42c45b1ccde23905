package overlay

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PieItem is one slice of a PieMenu.
type PieItem struct {
	Label    string
	OnSelect func()
}

// PieMenu is a radial menu that opens where the pointer goes down and
// selects the slice under the pointer when it is released. It implements
// PrimaryRenderer, so it can be registered with Overlay.AddPrimary.
type PieMenu struct {
	BaseRenderer

	Items []PieItem

	// Radius is the outer radius in pixels; InnerRadius is the dead zone
	// where no slice is selected.
	Radius      float64
	InnerRadius float64
	Background  Color
	Highlight   Color

	open     bool
	cx, cy   float64
	selected int
	grow     *gween.Tween
	scale    float64
}

// NewPieMenu creates a closed pie menu with the given items.
func NewPieMenu(items ...PieItem) *PieMenu {
	return &PieMenu{
		Items:       items,
		Radius:      90,
		InnerRadius: 24,
		Background:  Color{0, 0, 0, 0.6},
		Highlight:   Color{1, 0.6, 0.1, 0.9},
		selected:    -1,
	}
}

// HandlesTouch returns true.
func (m *PieMenu) HandlesTouch() bool { return true }

// IsOpen reports whether the menu is showing.
func (m *PieMenu) IsOpen() bool { return m.open }

// Selected returns the index of the highlighted slice, or -1.
func (m *PieMenu) Selected() int { return m.selected }

// Center returns the position where the menu opened.
func (m *PieMenu) Center() (x, y float64) { return m.cx, m.cy }

// OnTouchEvent opens the menu on press, tracks the selection while the
// pointer moves, and fires the selected item on release.
func (m *PieMenu) OnTouchEvent(ev PointerEvent) bool {
	switch ev.Action {
	case ActionDown:
		m.openAt(ev.X, ev.Y)
		return true
	case ActionMove:
		if !m.open {
			return false
		}
		m.track(ev.X, ev.Y)
		return true
	case ActionUp:
		if !m.open {
			return false
		}
		m.track(ev.X, ev.Y)
		sel := m.selected
		m.close()
		if sel >= 0 && sel < len(m.Items) && m.Items[sel].OnSelect != nil {
			m.Items[sel].OnSelect()
		}
		return true
	case ActionCancel:
		if !m.open {
			return false
		}
		m.close()
		return true
	}
	return m.open
}

func (m *PieMenu) openAt(x, y float64) {
	m.open = true
	m.cx, m.cy = x, y
	m.selected = -1
	m.scale = 0
	m.grow = gween.New(0, 1, 0.15, ease.OutQuad)
	m.Invalidate()
}

func (m *PieMenu) close() {
	m.open = false
	m.selected = -1
	m.grow = nil
	m.Invalidate()
}

// track updates the selection for a pointer at (x, y).
func (m *PieMenu) track(x, y float64) {
	prev := m.selected
	m.selected = m.sliceAt(x, y)
	if m.selected != prev {
		m.Invalidate()
	}
}

// sliceAt returns the slice index under (x, y), or -1 inside the dead zone,
// outside the menu, or when there are no items. Slice 0 is centered on
// 12 o'clock and slices proceed clockwise.
func (m *PieMenu) sliceAt(x, y float64) int {
	n := len(m.Items)
	if n == 0 {
		return -1
	}
	dx, dy := x-m.cx, y-m.cy
	dist := math.Hypot(dx, dy)
	if dist < m.InnerRadius || dist > m.Radius {
		return -1
	}
	// Screen Y grows downward, so atan2(dx, -dy) is the clockwise angle from up.
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	step := 2 * math.Pi / float64(n)
	return int(math.Floor((angle+step/2)/step)) % n
}

// Animating reports whether the open animation is running.
func (m *PieMenu) Animating() bool {
	return m.open && m.grow != nil
}

// Tick advances the open animation by dt seconds.
func (m *PieMenu) Tick(dt float32) {
	if !m.open || m.grow == nil {
		return
	}
	v, done := m.grow.Update(dt)
	m.scale = float64(v)
	if done {
		m.scale = 1
		m.grow = nil
	}
}

// Scale returns the open animation's progress in [0, 1].
func (m *PieMenu) Scale() float64 { return m.scale }

// Draw draws the menu while it is open.
func (m *PieMenu) Draw(screen *ebiten.Image) {
	if !m.open || screen == nil {
		return
	}

	r := m.Radius * m.scale
	vector.DrawFilledCircle(screen, float32(m.cx), float32(m.cy), float32(r), m.Background.toRGBA(), true)

	n := len(m.Items)
	if n == 0 {
		return
	}
	step := 2 * math.Pi / float64(n)
	mid := (m.InnerRadius + m.Radius) / 2 * m.scale
	for i, item := range m.Items {
		a := float64(i) * step
		ix := m.cx + math.Sin(a)*mid
		iy := m.cy - math.Cos(a)*mid
		if i == m.selected {
			vector.DrawFilledCircle(screen, float32(ix), float32(iy), float32(m.InnerRadius*m.scale), m.Highlight.toRGBA(), true)
		}
		// DebugPrint glyphs are 6x16.
		ebitenutil.DebugPrintAt(screen, item.Label, int(ix)-3*len(item.Label), int(iy)-8)
	}
}
