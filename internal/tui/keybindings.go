package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shown in the footer. Matching for most keys is
// done on the key string in the section handlers; the bindings exist so the
// help line stays in sync with them.
type keyMap struct {
	Quit        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	JumpSection key.Binding

	BoxLeft  key.Binding
	BoxRight key.Binding
	Activate key.Binding
	Escape   key.Binding

	Theme     key.Binding
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
	FAQUp     key.Binding
	FAQDown   key.Binding
	FAQToggle key.Binding
	TabLeft   key.Binding
	TabRight  key.Binding
	TabSelect key.Binding

	FormNext   key.Binding
	FormPrev   key.Binding
	FormSubmit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextSection: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev section")),
		JumpSection: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "section")),

		BoxLeft:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev box")),
		BoxRight: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next box")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "click")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),

		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrement")),
		Reset:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		FAQUp:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "faq up")),
		FAQDown:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "faq down")),
		FAQToggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		TabLeft:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab")),
		TabRight:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
		TabSelect: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1-9", "select tab"),
		),

		FormNext:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		FormPrev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		FormSubmit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	}
}

// sectionHelp returns the bindings relevant to the active section.
func (k keyMap) sectionHelp(s Section, typing bool) []key.Binding {
	var bindings []key.Binding
	switch s {
	case SectionEvents:
		bindings = []key.Binding{k.BoxLeft, k.BoxRight, k.Activate}
		if typing {
			bindings = append(bindings, k.Escape)
		}
	case SectionInteractive:
		bindings = []key.Binding{k.Theme, k.Increment, k.Decrement, k.Reset, k.FAQUp, k.FAQDown, k.FAQToggle, k.TabLeft, k.TabRight, k.TabSelect}
	case SectionForm:
		bindings = []key.Binding{k.FormNext, k.FormPrev, k.FormSubmit}
		if typing {
			bindings = append(bindings, k.Escape)
		}
	}

	bindings = append(bindings, k.NextSection)
	if !typing {
		bindings = append(bindings, k.JumpSection, k.Quit)
	}
	return bindings
}
