package pager

// Content is a renderable unit supplied by the host for one logical index.
type Content interface {
	View(width, height int) string
}

// ContentProvider supplies the panels of a carousel.
//
// PanelAt is called exactly once per index for every Attach.
type ContentProvider interface {
	NumberOfPanels() int
	PanelAt(index int) Content
}

// SelectionDelegate is notified when the user taps a panel.
type SelectionDelegate interface {
	PanelSelected(index int)
}

// Slot is a fixed position in the mounted window.
type Slot int

const (
	SlotPrevious Slot = iota
	SlotMiddle
	SlotNext
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotPrevious:
		return "previous"
	case SlotMiddle:
		return "middle"
	case SlotNext:
		return "next"
	default:
		return "?"
	}
}

// Panel wraps one Content with a stable identity. Panels are compared by
// pointer: two panels holding the same Content are still different panels.
type Panel struct {
	content Content
	origin  *Panel

	slot    Slot
	mounted bool
}

func NewPanel(c Content) *Panel {
	return &Panel{content: c}
}

func (p *Panel) Content() Content {
	if p == nil {
		return nil
	}
	return p.content
}

// Copy returns a new panel sharing p's content. The copy has its own
// identity, so it can occupy a slot next to p without colliding with it.
func (p *Panel) Copy() *Panel {
	return &Panel{content: p.content, origin: p.Origin()}
}

// Origin returns the panel p was copied from, or p itself.
func (p *Panel) Origin() *Panel {
	if p == nil || p.origin == nil {
		return p
	}
	return p.origin
}

func (p *Panel) IsCopy() bool {
	return p != nil && p.origin != nil
}

// Slot reports where p is mounted. With two panels the non-middle panel
// fills both edge slots and reports SlotNext.
func (p *Panel) Slot() (Slot, bool) {
	if p == nil || !p.mounted {
		return 0, false
	}
	return p.slot, true
}

func (p *Panel) mount(s Slot) {
	p.slot = s
	p.mounted = true
}

func (p *Panel) unmount() {
	p.slot = 0
	p.mounted = false
}
