package tui

// Section identifies one of the pages of the app.
type Section int

const (
	SectionEvents Section = iota
	SectionInteractive
	SectionForm
)

var sectionTitles = [...]string{
	SectionEvents:      "Events",
	SectionInteractive: "Interactive",
	SectionForm:        "Form",
}

// Sections lists every section in display order.
var Sections = []Section{SectionEvents, SectionInteractive, SectionForm}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionTitles) {
		return "unknown"
	}
	return sectionTitles[s]
}

func (s Section) next() Section { return (s + 1) % Section(len(Sections)) }
func (s Section) prev() Section { return (s + Section(len(Sections)) - 1) % Section(len(Sections)) }
