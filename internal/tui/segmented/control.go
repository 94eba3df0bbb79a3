// Package segmented implements a horizontal segmented control: a row of
// equal-width labeled segments with a sliding selector bar and a divider
// line along the bottom edge.
//
// The control is a Bubbletea component. Route messages to Update, draw it
// with Draw, and forward the command returned by Tick after programmatic
// animated selections so selector frames get scheduled.
package segmented

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/segctl/internal/logger"
)

// Delegate observes user presses on a Control. The control holds the
// delegate as a plain reference it does not own: the delegate must outlive
// the control or be cleared with SetDelegate(nil).
type Delegate interface {
	// WillPressItemAt is called when a press begins on the item. It is
	// informational; selection has not changed yet.
	WillPressItemAt(c *Control, index int)
	// DidPressItemAt is called after a committed press has selected the item
	// and the action has run.
	DidPressItemAt(c *Control, index int)
}

// Action is called after a committed press selects the item at index.
type Action func(c *Control, index int)

// FrameMsg drives selector animation for the control with the matching ID.
type FrameMsg struct {
	ID int
}

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Option configures a Control at construction.
type Option func(*Control)

// WithAction sets the action callback.
func WithAction(a Action) Option {
	return func(c *Control) { c.action = a }
}

// WithDelegate sets the delegate.
func WithDelegate(d Delegate) Option {
	return func(c *Control) { c.delegate = d }
}

// WithAppearance replaces the default appearance.
func WithAppearance(a Appearance) Option {
	return func(c *Control) {
		c.appearance = a
		c.appearanceSet = true
	}
}

// WithPreserveSelection keeps the selected index across rebuilds when it is
// still in range. By default every rebuild selects index 0.
func WithPreserveSelection(preserve bool) Option {
	return func(c *Control) { c.preserveSelection = preserve }
}

// WithClock replaces the animation time source.
func WithClock(clock Clock) Option {
	return func(c *Control) { c.clock = clock }
}

// Control is a horizontal segmented control.
//
// The zero value has no titles and draws nothing; assigning titles with
// SetTitles applies the default appearance and builds it.
type Control struct {
	id     int
	bounds Rect

	titles        []string
	appearance    Appearance
	appearanceSet bool

	items         []*Item
	selectedIndex int
	segmentWidth  float64

	divider  Rect
	selector Rect // X is owned by motion
	motion   selectorMotion
	ticking  bool

	pressing bool
	pressed  int

	delegate          Delegate
	action            Action
	preserveSelection bool
	clock             Clock
}

// New builds a control inside bounds with one segment per title and
// selects the first segment. It fails with ErrInvalidArgument when titles
// is empty or the appearance given through WithAppearance is invalid.
func New(bounds Rect, titles []string, opts ...Option) (*Control, error) {
	c := &Control{bounds: bounds}
	for _, opt := range opts {
		opt(c)
	}
	c.init()

	if err := c.appearance.Validate(); err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("segmented control needs at least one title: %w", ErrInvalidArgument)
	}

	c.titles = append([]string(nil), titles...)
	c.rebuild()
	return c, nil
}

// init fills in defaults so zero-value controls work.
func (c *Control) init() {
	if c.id == 0 {
		c.id = nextID()
	}
	if c.clock == nil {
		c.clock = realClock{}
	}
	if !c.appearanceSet {
		c.appearance = DefaultAppearance()
		c.appearanceSet = true
	}
}

// ID identifies the control in FrameMsg.
func (c *Control) ID() int {
	c.init()
	return c.id
}

// Appearance returns the current appearance.
func (c *Control) Appearance() Appearance {
	c.init()
	return c.appearance
}

// SetAppearance replaces the appearance and rebuilds every item.
func (c *Control) SetAppearance(a Appearance) error {
	c.init()
	if err := a.Validate(); err != nil {
		return err
	}
	c.appearance = a
	if len(c.titles) > 0 {
		c.rebuild()
	}
	return nil
}

// Titles returns a copy of the segment titles.
func (c *Control) Titles() []string {
	return append([]string(nil), c.titles...)
}

// SetTitles replaces the segment titles and rebuilds every item.
func (c *Control) SetTitles(titles []string) error {
	c.init()
	if len(titles) == 0 {
		return fmt.Errorf("segmented control needs at least one title: %w", ErrInvalidArgument)
	}
	c.titles = append([]string(nil), titles...)
	c.rebuild()
	return nil
}

// SetDelegate sets or clears (nil) the delegate.
func (c *Control) SetDelegate(d Delegate) { c.delegate = d }

// SetAction sets or clears (nil) the action callback.
func (c *Control) SetAction(a Action) { c.action = a }

// SetPreserveSelection toggles selection preservation across rebuilds.
func (c *Control) SetPreserveSelection(preserve bool) { c.preserveSelection = preserve }

// Bounds returns the control's rectangle in its parent.
func (c *Control) Bounds() Rect { return c.bounds }

// Items returns the current items in title order.
func (c *Control) Items() []*Item {
	return append([]*Item(nil), c.items...)
}

// SelectedIndex returns the selected segment.
func (c *Control) SelectedIndex() int { return c.selectedIndex }

// SelectedTitle returns the title of the selected segment, or "" when the
// control has no items.
func (c *Control) SelectedTitle() string {
	if c.selectedIndex < 0 || c.selectedIndex >= len(c.items) {
		return ""
	}
	return c.items[c.selectedIndex].title
}

// SegmentWidth returns the width of each segment in cells.
func (c *Control) SegmentWidth() float64 { return c.segmentWidth }

// DividerFrame returns the divider line rectangle relative to the control.
func (c *Control) DividerFrame() Rect { return c.divider }

// SelectorFrame returns the selector rectangle relative to the control at
// the current instant, including any in-flight animation.
func (c *Control) SelectorFrame() Rect {
	c.init()
	f := c.selector
	f.X = c.motion.position(c.clock.Now())
	return f
}

// SelectorTarget returns the offset the selector is moving to, or resting at.
func (c *Control) SelectorTarget() float64 { return c.motion.to }

// Animating reports whether a selector move is in flight.
func (c *Control) Animating() bool {
	c.init()
	c.motion.advance(c.clock.Now())
	return c.motion.active
}

// rebuild discards every item and creates new ones from titles.
func (c *Control) rebuild() {
	prev := c.selectedIndex
	c.pressing = false

	c.items = make([]*Item, 0, len(c.titles))
	for i, title := range c.titles {
		c.items = append(c.items, newItem(i, title, c.appearance, c.itemWillPress, c.itemDidPress))
	}

	c.Layout(c.bounds)

	sel := 0
	if c.preserveSelection && prev < len(c.items) {
		sel = prev
	}
	if err := c.SelectItem(sel, true); err != nil {
		logger.Warn("segmented: rebuild selection failed: %v", err)
	}

	logger.Debug("segmented[%d]: rebuilt %d items, selected %d", c.id, len(c.items), sel)
}

// Layout positions items, the divider and the selector inside bounds.
// Segments share the width equally, left to right in title order.
func (c *Control) Layout(bounds Rect) {
	c.init()
	prevWidth := c.segmentWidth
	c.bounds = bounds

	a := c.appearance
	n := len(c.items)
	if n == 0 {
		c.segmentWidth = 0
	} else {
		c.segmentWidth = bounds.Width / float64(n)
	}

	itemHeight := bounds.Height - a.LabelTopPadding
	if itemHeight < 0 {
		itemHeight = 0
	}
	for i, it := range c.items {
		it.frame = Rect{
			X:      c.segmentWidth * float64(i),
			Y:      a.LabelTopPadding,
			Width:  c.segmentWidth,
			Height: itemHeight,
		}
	}

	c.divider = Rect{
		X:      0,
		Y:      bounds.Height - a.BottomLineHeight,
		Width:  bounds.Width,
		Height: a.BottomLineHeight,
	}

	c.selector = Rect{
		Y:      bounds.Height - a.SelectorHeight,
		Width:  c.segmentWidth,
		Height: a.SelectorHeight,
	}

	scale := 1.0
	if prevWidth > 0 {
		scale = c.segmentWidth / prevWidth
	}
	c.motion.retarget(c.segmentWidth*float64(c.selectedIndex), scale)
}

// SelectItem selects the segment at index and moves the selector to it,
// with a short spring animation when animated is true. Call Tick afterwards
// to schedule the animation frames.
func (c *Control) SelectItem(index int, animated bool) error {
	c.init()
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("select item %d of %d: %w", index, len(c.items), ErrIndexOutOfRange)
	}

	c.selectedIndex = index
	for i, it := range c.items {
		it.setSelected(i == index)
	}

	target := c.segmentWidth * float64(index)
	if animated {
		c.motion.moveTo(target, c.clock.Now())
	} else {
		c.motion.jump(target)
	}
	return nil
}

// Tick returns the command for the next animation frame, or nil when no
// move is in flight or a frame is already scheduled.
func (c *Control) Tick() tea.Cmd {
	c.init()
	if c.ticking || !c.Animating() {
		return nil
	}
	c.ticking = true
	id := c.id
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

// Update handles animation frames and mouse presses.
func (c *Control) Update(msg tea.Msg) tea.Cmd {
	c.init()
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != c.id {
			return nil
		}
		c.ticking = false
		return c.Tick()

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button != tea.MouseLeft {
			return nil
		}
		index := c.ItemAt(mouse.X, mouse.Y)
		if index < 0 {
			return nil
		}
		c.pressing = true
		c.pressed = index
		c.items[index].handlePressBegin()
		return nil

	case tea.MouseReleaseMsg:
		if !c.pressing {
			return nil
		}
		index := c.pressed
		c.pressing = false
		if index >= len(c.items) {
			return nil
		}
		c.items[index].handlePressEnd()
		return c.Tick()
	}
	return nil
}

// ItemAt returns the index of the item under the screen cell (x, y), or -1.
func (c *Control) ItemAt(x, y int) int {
	p := uv.Position{X: x, Y: y}
	for i, it := range c.items {
		if p.In(it.frame.Offset(c.bounds.X, c.bounds.Y).Cells()) {
			return i
		}
	}
	return -1
}

// Pressed returns the index of the item with a press in progress.
func (c *Control) Pressed() (int, bool) {
	return c.pressed, c.pressing
}

func (c *Control) itemWillPress(index int) {
	logger.Debug("segmented[%d]: will press %d", c.id, index)
	if c.delegate != nil {
		c.delegate.WillPressItemAt(c, index)
	}
}

func (c *Control) itemDidPress(index int) {
	if err := c.SelectItem(index, true); err != nil {
		logger.Warn("segmented[%d]: press on missing item: %v", c.id, err)
		return
	}
	logger.Debug("segmented[%d]: did press %d", c.id, index)
	if c.action != nil {
		c.action(c, index)
	}
	if c.delegate != nil {
		c.delegate.DidPressItemAt(c, index)
	}
}
