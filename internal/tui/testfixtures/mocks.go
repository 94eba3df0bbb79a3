// Package testfixtures provides fakes and helpers for segmented control tests.
//
//   - FakeClock: manually advanced time source for selector animation
//   - Recorder: delegate and action that log every notification in order
//
// Example usage:
//
//	func TestPress(t *testing.T) {
//	    clock := testfixtures.NewFakeClock()
//	    rec := testfixtures.NewRecorder()
//	    c, _ := segmented.New(bounds, titles,
//	        segmented.WithClock(clock),
//	        segmented.WithDelegate(rec),
//	        segmented.WithAction(rec.Action))
//	    // ... drive presses, then
//	    require.Equal(t, []testfixtures.Event{...}, rec.Events())
//	}
package testfixtures

import (
	"sync"
	"time"

	"github.com/mark3labs/segctl/internal/tui/segmented"
)

// FixedTime is the starting instant for FakeClock.
var FixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

// FakeClock is a segmented.Clock that only moves when told to.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock stopped at FixedTime.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: FixedTime}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// EventKind names a notification.
type EventKind string

const (
	EventWillPress EventKind = "will-press"
	EventAction    EventKind = "action"
	EventDidPress  EventKind = "did-press"
)

// Event is one recorded notification. Selected is the control's selected
// index when the notification fired.
type Event struct {
	Kind     EventKind
	Index    int
	Selected int
}

// Recorder implements segmented.Delegate and provides an Action, recording
// every call.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// WillPressItemAt records a will-press notification.
func (r *Recorder) WillPressItemAt(c *segmented.Control, index int) {
	r.record(EventWillPress, c, index)
}

// DidPressItemAt records a did-press notification.
func (r *Recorder) DidPressItemAt(c *segmented.Control, index int) {
	r.record(EventDidPress, c, index)
}

// Action records an action callback. It has the segmented.Action signature.
func (r *Recorder) Action(c *segmented.Control, index int) {
	r.record(EventAction, c, index)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) record(kind EventKind, c *segmented.Control, index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: kind, Index: index, Selected: c.SelectedIndex()})
}

var _ segmented.Delegate = (*Recorder)(nil)
var _ segmented.Clock = (*FakeClock)(nil)
