package widget

import (
	"errors"
	"fmt"
)

// ErrUnknownTab is returned when activating a tab id that does not exist.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is one button and pane pair.
type Tab struct {
	ID    string
	Title string
	Body  string
}

// TabSet keeps exactly one tab active. The first tab starts active.
type TabSet struct {
	tabs   []Tab
	active int
}

func NewTabSet(tabs []Tab) *TabSet {
	return &TabSet{tabs: tabs}
}

// Activate makes the tab with the given id the only active tab.
func (s *TabSet) Activate(id string) error {
	for i, t := range s.tabs {
		if t.ID == id {
			s.active = i
			return nil
		}
	}
	return fmt.Errorf("activate %q: %w", id, ErrUnknownTab)
}

// Next activates the following tab, wrapping around.
func (s *TabSet) Next() {
	if len(s.tabs) == 0 {
		return
	}
	s.active = (s.active + 1) % len(s.tabs)
}

// Prev activates the preceding tab, wrapping around.
func (s *TabSet) Prev() {
	if len(s.tabs) == 0 {
		return
	}
	s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
}

// Active returns the active tab. The boolean is false for an empty set.
func (s *TabSet) Active() (Tab, bool) {
	if len(s.tabs) == 0 {
		return Tab{}, false
	}
	return s.tabs[s.active], true
}

// IsActive reports whether the tab with id is the active one.
func (s *TabSet) IsActive(id string) bool {
	t, ok := s.Active()
	return ok && t.ID == id
}

func (s *TabSet) Tabs() []Tab { return s.tabs }
