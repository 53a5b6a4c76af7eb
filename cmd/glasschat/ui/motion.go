package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Animation timings.
const (
	FrameInterval = 60 * time.Millisecond
	EntryDuration = 400 * time.Millisecond
	ListStagger   = 60 * time.Millisecond
	PulsePeriod   = time.Second
	ShimmerPeriod = 2 * time.Second
)

// PressedScale is the scale of a pressed control.
const PressedScale = 0.96

// Fade returns the entry progress in [0,1] for an element that starts after
// delay and takes duration to appear.
func Fade(elapsed, delay, duration time.Duration) float64 {
	if elapsed <= delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return math.Min(1, float64(elapsed-delay)/float64(duration))
}

// Stagger is the entry delay of the index-th list row.
func Stagger(index int, step time.Duration) time.Duration {
	if index < 0 {
		index = 0
	}
	return time.Duration(index) * step
}

// PressScale is 0.96 while pressed and 1 otherwise.
func PressScale(pressed bool) float64 {
	if pressed {
		return PressedScale
	}
	return 1
}

// Pulse oscillates between 1 and 1.1 once per period, for the recording
// badge.
func Pulse(elapsed, period time.Duration) float64 {
	return 1 + 0.1*triangle(elapsed, period)
}

// Shimmer is the column of the moving highlight on a skeleton row of the
// given width. It sweeps right and back once per ShimmerPeriod.
func Shimmer(elapsed time.Duration, width int) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round(triangle(elapsed, ShimmerPeriod) * float64(width-1)))
}

// triangle rises 0→1 over the first half of period and falls back over the
// second half.
func triangle(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	phase := float64(elapsed%period) / float64(period)
	if phase < 0.5 {
		return phase * 2
	}
	return 2 - phase*2
}

// Blend mixes two hex colors; t=0 gives from, t=1 gives to. Used to fade
// text in against the background.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		return to
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// Cursor eases the list selection toward its target row with a spring.
type Cursor struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewCursor returns a cursor resting on row 0.
func NewCursor() Cursor {
	return Cursor{spring: harmonica.NewSpring(harmonica.FPS(int(time.Second/FrameInterval)), 8.0, 0.9)}
}

// SetTarget moves the destination row.
func (c *Cursor) SetTarget(row int) {
	c.target = float64(row)
}

// Jump places the cursor on row without animating.
func (c *Cursor) Jump(row int) {
	c.target = float64(row)
	c.pos = c.target
	c.vel = 0
}

// Step advances the spring one frame.
func (c *Cursor) Step() {
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, c.target)
	if c.Settled() {
		c.pos, c.vel = c.target, 0
	}
}

// Row is the row the cursor is currently drawn on.
func (c Cursor) Row() int {
	return int(math.Round(c.pos))
}

// Target is the row the cursor is heading to.
func (c Cursor) Target() int {
	return int(c.target)
}

// Settled reports whether the cursor has come to rest.
func (c Cursor) Settled() bool {
	return math.Abs(c.pos-c.target) < 0.01 && math.Abs(c.vel) < 0.01
}
