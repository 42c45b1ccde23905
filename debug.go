package overlay

import (
	"fmt"
	"time"
)

// passStats holds per-pass timing and renderer metrics.
// Only populated when Overlay.debug is true.
type passStats struct {
	drawTime  time.Duration
	renderers int
	animating int
	redraw    bool
}

// debugLogPass prints paint pass stats.
func (o *Overlay) debugLogPass(stats passStats) {
	o.debugf("pass %d: draw: %v | renderers: %d | animating: %d | redraw: %v",
		o.passes, stats.drawTime, stats.renderers, stats.animating, stats.redraw)
}

func (o *Overlay) debugf(format string, args ...any) {
	if !o.debug || o.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(o.debugOut, "[overlay] "+format+"\n", args...)
}
