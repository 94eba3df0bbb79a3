package segmented

import "charm.land/lipgloss/v2"

// pressFunc receives the index of the item that was pressed.
type pressFunc func(index int)

// Item is one pressable segment holding a text label. Items are created by
// the Control on every rebuild and are never reused across rebuilds.
type Item struct {
	index    int
	title    string
	frame    Rect // relative to the control's origin
	selected bool
	style    lipgloss.Style

	appearance   Appearance
	onPressBegin pressFunc
	onPressEnd   pressFunc
}

func newItem(index int, title string, appearance Appearance, onPressBegin, onPressEnd pressFunc) *Item {
	return &Item{
		index:        index,
		title:        title,
		appearance:   appearance,
		style:        appearance.labelStyle(false),
		onPressBegin: onPressBegin,
		onPressEnd:   onPressEnd,
	}
}

// Index returns the item's position in the control.
func (it *Item) Index() int { return it.index }

// Title returns the label text.
func (it *Item) Title() string { return it.title }

// Frame returns the item's rectangle relative to the control.
func (it *Item) Frame() Rect { return it.frame }

// Selected reports whether the item currently carries the selected style.
func (it *Item) Selected() bool { return it.selected }

// Style returns the label style for the item's current state.
func (it *Item) Style() lipgloss.Style { return it.style }

func (it *Item) setSelected(selected bool) {
	it.selected = selected
	it.style = it.appearance.labelStyle(selected)
}

// handlePressBegin is called on contact-down inside the item.
func (it *Item) handlePressBegin() {
	if it.onPressBegin != nil {
		it.onPressBegin(it.index)
	}
}

// handlePressEnd is called on contact-up for a press that began on this item.
func (it *Item) handlePressEnd() {
	if it.onPressEnd != nil {
		it.onPressEnd(it.index)
	}
}
