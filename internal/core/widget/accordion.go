package widget

const (
	IconOpen   = "−"
	IconClosed = "+"
)

// AccordionItem is one collapsible question and answer.
type AccordionItem struct {
	Question string
	Answer   string
	open     bool
}

func (i *AccordionItem) Open() bool { return i.open }

// Icon returns the expand indicator for the item.
func (i *AccordionItem) Icon() string {
	if i.open {
		return IconOpen
	}
	return IconClosed
}

// Accordion is a list of independently collapsible items. Opening one item
// leaves the others as they are.
type Accordion struct {
	items []*AccordionItem
}

// NewAccordion builds an accordion with every item closed.
func NewAccordion(items []AccordionItem) *Accordion {
	a := &Accordion{items: make([]*AccordionItem, 0, len(items))}
	for _, it := range items {
		a.items = append(a.items, &AccordionItem{Question: it.Question, Answer: it.Answer})
	}
	return a
}

// Toggle flips the item at index i. Out of range indexes are ignored.
func (a *Accordion) Toggle(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.items[i].open = !a.items[i].open
	return a.items[i].open
}

func (a *Accordion) Items() []*AccordionItem { return a.items }
func (a *Accordion) Len() int                { return len(a.items) }
