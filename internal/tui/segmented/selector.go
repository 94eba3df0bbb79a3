package segmented

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// SelectorDuration is how long an animated selector move takes to come
	// to rest.
	SelectorDuration = 300 * time.Millisecond
	// FrameInterval is the delay between animation frames.
	FrameInterval = 16 * time.Millisecond

	// springFrequency is the angular frequency of the selector spring. At
	// this frequency a critically damped move settles within SelectorDuration.
	springFrequency = 50.0
	// springDamping of 1 is critical damping: fastest approach, no overshoot.
	springDamping = 1.0

	// A move is at rest once it is this close to its target, in cells, and
	// slower than settleVelocity cells per second.
	settleDistance = 0.01
	settleVelocity = 0.5
)

// Clock provides time for selector animation. Tests inject a fake clock
// to step animations deterministically.
type Clock interface {
	Now() time.Time
}

// selectorSpring steps the selector once per frame.
var selectorSpring = harmonica.NewSpring(FrameInterval.Seconds(), springFrequency, springDamping)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// selectorMotion tracks the horizontal position of the selector. At most one
// move is in flight; starting a new one replaces its target and the spring
// carries on from the current position and velocity.
//
// The spring is stepped in whole frames counted from the start of the move,
// so the position at a given instant does not depend on how often it is read.
type selectorMotion struct {
	pos    float64
	vel    float64
	to     float64
	last   time.Time // time of the last spring step
	active bool
}

// jump places the selector at x with no animation.
func (m *selectorMotion) jump(x float64) {
	m.pos = x
	m.vel = 0
	m.to = x
	m.active = false
}

// moveTo starts an animated move to x beginning at now.
func (m *selectorMotion) moveTo(x float64, now time.Time) {
	if m.active {
		m.advance(now)
	}
	if !m.active {
		m.last = now
		m.vel = 0
	}
	m.to = x
	m.active = true
	m.settle()
}

// retarget changes the destination of an in-flight move, or jumps when idle.
// The current position and velocity are rescaled along with the layout.
func (m *selectorMotion) retarget(x, scale float64) {
	if !m.active {
		m.jump(x)
		return
	}
	m.pos *= scale
	m.vel *= scale
	m.to = x
}

// advance steps the spring for every frame elapsed since the last step.
func (m *selectorMotion) advance(now time.Time) {
	for m.active && now.Sub(m.last) >= FrameInterval {
		m.pos, m.vel = selectorSpring.Update(m.pos, m.vel, m.to)
		m.last = m.last.Add(FrameInterval)
		m.settle()
	}
}

// position returns the selector offset at now.
func (m *selectorMotion) position(now time.Time) float64 {
	m.advance(now)
	return m.pos
}

// settle ends the move once the spring is at rest on its target.
func (m *selectorMotion) settle() {
	if m.active && math.Abs(m.to-m.pos) < settleDistance && math.Abs(m.vel) < settleVelocity {
		m.jump(m.to)
	}
}
