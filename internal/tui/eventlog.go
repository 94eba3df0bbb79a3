package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/segctl/internal/tui/segmented"
	"github.com/mark3labs/segctl/internal/tui/theme"
)

// EntryKind classifies an event log entry.
type EntryKind int

const (
	EntryWillPress EntryKind = iota
	EntryAction
	EntryDidPress
	EntrySelect // programmatic selection from the keyboard
)

func (k EntryKind) String() string {
	switch k {
	case EntryWillPress:
		return "will-press"
	case EntryAction:
		return "action"
	case EntryDidPress:
		return "did-press"
	case EntrySelect:
		return "select"
	default:
		return "unknown"
	}
}

// Entry is one line of the event log.
type Entry struct {
	Kind  EntryKind
	Index int
	Title string
}

// EventLog records control notifications, newest last. It is the demo's
// segmented.Delegate and supplies the control's Action.
type EventLog struct {
	entries []Entry
	limit   int
}

// NewEventLog creates a log keeping at most limit entries.
func NewEventLog(limit int) *EventLog {
	if limit < 1 {
		limit = 1
	}
	return &EventLog{limit: limit}
}

// WillPressItemAt implements segmented.Delegate.
func (l *EventLog) WillPressItemAt(c *segmented.Control, index int) {
	l.add(EntryWillPress, c, index)
}

// DidPressItemAt implements segmented.Delegate.
func (l *EventLog) DidPressItemAt(c *segmented.Control, index int) {
	l.add(EntryDidPress, c, index)
}

// Action is the control's action callback.
func (l *EventLog) Action(c *segmented.Control, index int) {
	l.add(EntryAction, c, index)
}

// Selected records a programmatic selection.
func (l *EventLog) Selected(c *segmented.Control, index int) {
	l.add(EntrySelect, c, index)
}

func (l *EventLog) add(kind EntryKind, c *segmented.Control, index int) {
	title := ""
	if items := c.Items(); index >= 0 && index < len(items) {
		title = items[index].Title()
	}
	l.entries = append(l.entries, Entry{Kind: kind, Index: index, Title: title})
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

// Entries returns a copy of the log, oldest first.
func (l *EventLog) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of entries.
func (l *EventLog) Len() int { return len(l.entries) }

// Draw renders the newest entries that fit in area, newest at the bottom.
func (l *EventLog) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dy() < 1 || area.Dx() < 1 {
		return
	}
	entries := l.entries
	if len(entries) > area.Dy() {
		entries = entries[len(entries)-area.Dy():]
	}
	for i, e := range entries {
		row := uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: area.Min.Y + i},
			Max: uv.Position{X: area.Max.X, Y: area.Min.Y + i + 1},
		}
		line := ansi.Truncate(fmt.Sprintf("%-10s %d %s", e.Kind, e.Index, e.Title), row.Dx(), "…")
		uv.NewStyledString(entryStyle(e.Kind).Render(line)).Draw(scr, row)
	}
}

func entryStyle(kind EntryKind) lipgloss.Style {
	s := theme.Current().S()
	switch kind {
	case EntryWillPress:
		return s.EventWill
	case EntryAction:
		return s.EventAction
	case EntryDidPress:
		return s.EventDid
	default:
		return s.Muted
	}
}

var _ segmented.Delegate = (*EventLog)(nil)
