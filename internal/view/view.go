// Package view holds presentation state helpers shared by the page renderer
// and the CLI: navigation sections, scroll tracking, dialogs and dates.
package view

import "time"

// ScrollOffset is added to the scroll position before matching sections so a
// section becomes active slightly before its top reaches the viewport edge.
const ScrollOffset = 100

// Section is one navigable region of the page.
type Section struct {
	ID    string
	Label string
}

// Sections returns the page sections in navigation order.
func Sections() []Section {
	return []Section{
		{ID: "home", Label: "Home"},
		{ID: "about", Label: "About"},
		{ID: "projects", Label: "Projects"},
		{ID: "certificates", Label: "Certificates"},
		{ID: "contact", Label: "Contact"},
	}
}

// SectionBox is the measured vertical extent of a rendered section.
type SectionBox struct {
	ID     string
	Top    int
	Height int
}

// ActiveSection returns the id of the first section containing
// scrollY+ScrollOffset, or "" if none does.
func ActiveSection(boxes []SectionBox, scrollY int) string {
	pos := scrollY + ScrollOffset
	for _, b := range boxes {
		if pos >= b.Top && pos < b.Top+b.Height {
			return b.ID
		}
	}
	return ""
}

// Dialog is the open/closed state of a detail dialog and the item it shows.
type Dialog[T any] struct {
	selected *T
}

// Open shows item in the dialog.
func (d *Dialog[T]) Open(item T) {
	d.selected = &item
}

// Close hides the dialog.
func (d *Dialog[T]) Close() {
	d.selected = nil
}

// IsOpen reports whether the dialog is showing an item.
func (d *Dialog[T]) IsOpen() bool {
	return d.selected != nil
}

// Selected returns the shown item and whether the dialog is open.
func (d *Dialog[T]) Selected() (T, bool) {
	if d.selected == nil {
		var zero T
		return zero, false
	}
	return *d.selected, true
}

// Date layouts.
const (
	ShortDate = "Jan 2, 2006"
	LongDate  = "January 2, 2006"
)

var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// FormatDate renders an ISO date or timestamp for display. Input that does
// not parse is returned unchanged.
func FormatDate(iso string, long bool) string {
	layout := ShortDate
	if long {
		layout = LongDate
	}
	for _, in := range inputLayouts {
		if t, err := time.Parse(in, iso); err == nil {
			return t.Format(layout)
		}
	}
	return iso
}

// TopTopics returns at most n topics, in order.
func TopTopics(topics []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(topics) <= n {
		return topics
	}
	return topics[:n]
}
