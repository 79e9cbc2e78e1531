package canvas

// frameWindow is how many recent frame intervals the rolling average
// spans.
const frameWindow = 60

// FrameClock measures the render rate as a rolling average over the
// last frameWindow frame intervals. Feeding it monotonic timestamps is
// the caller's job; non-increasing ones are dropped.
type FrameClock struct {
	last    float64
	started bool

	deltas [frameWindow]float64
	count  int
	next   int
	sum    float64
}

// Tick records a frame timestamp in milliseconds.
func (c *FrameClock) Tick(now float64) {
	if !c.started {
		c.started = true
		c.last = now
		return
	}
	d := now - c.last
	c.last = now
	if d <= 0 {
		return
	}
	if c.count == frameWindow {
		c.sum -= c.deltas[c.next]
	} else {
		c.count++
	}
	c.deltas[c.next] = d
	c.sum += d
	c.next = (c.next + 1) % frameWindow
}

// FPS returns the rolling average frames per second, or 0 before two
// frames have been seen.
func (c *FrameClock) FPS() float64 {
	if c.count == 0 || c.sum <= 0 {
		return 0
	}
	return 1000 / (c.sum / float64(c.count))
}
