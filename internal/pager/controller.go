package pager

import (
	"fmt"
	"log/slog"
	"strings"
)

// Orientation selects the paging axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts "horizontal"/"h" and "vertical"/"v".
// The empty string means horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q (want horizontal or vertical)", s)
	}
}

// Point is a scroll offset in cells.
type Point struct {
	X, Y int
}

// Size is an extent in cells.
type Size struct {
	Width, Height int
}

// Viewport is the host scroll surface. The host must snap to whole pages
// after user interaction and report every offset change through
// Controller.OnViewportPositionChanged.
type Viewport interface {
	PageSize() Size
	SetContentSize(Size)
	SetOffset(Point)
}

// State is the lifecycle of a Controller.
type State int

const (
	StateUninitialized State = iota
	StateEmpty
	StateReady
	StateSettled
	StateScrolling
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	case StateSettled:
		return "settled"
	case StateScrolling:
		return "scrolling"
	default:
		return "?"
	}
}

// Controller keeps three consecutive panels of a circular sequence mounted
// in a viewport and recentres them whenever the viewport settles on an edge
// slot.
//
// A Controller is not safe for concurrent use; the host serialises calls.
type Controller struct {
	vp          Viewport
	orientation Orientation
	delegate    SelectionDelegate
	log         *slog.Logger

	panels    []*Panel
	window    Window
	hasWindow bool
	state     State
}

type Option func(*Controller)

func WithDelegate(d SelectionDelegate) Option {
	return func(c *Controller) { c.delegate = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func NewController(vp Viewport, o Orientation, opts ...Option) *Controller {
	c := &Controller{
		vp:          vp,
		orientation: o,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) SetDelegate(d SelectionDelegate) {
	c.delegate = d
}

func (c *Controller) Orientation() Orientation { return c.orientation }

func (c *Controller) State() State { return c.state }

func (c *Controller) Count() int { return len(c.panels) }

// Window returns the mounted window, if any.
func (c *Controller) Window() (Window, bool) {
	return c.window, c.hasWindow
}

// Panel returns the panel at a logical index.
func (c *Controller) Panel(index int) (*Panel, error) {
	if len(c.panels) == 0 {
		return nil, ErrEmptyCollection
	}
	if index < 0 || index >= len(c.panels) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(c.panels))
	}
	return c.panels[index], nil
}

// Attach builds the panel sequence from p. A nil provider is ignored.
// Attaching again replaces the sequence and drops the current window.
func (c *Controller) Attach(p ContentProvider) error {
	if p == nil {
		c.log.Debug("attach skipped", "reason", "no provider")
		return nil
	}

	n := p.NumberOfPanels()
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	panels := make([]*Panel, 0, n)
	for i := 0; i < n; i++ {
		content := p.PanelAt(i)
		if content == nil {
			return fmt.Errorf("%w at index %d", ErrNilContent, i)
		}
		panels = append(panels, NewPanel(content))
	}

	c.unmountAll()
	c.panels = panels
	c.window = Window{}
	c.hasWindow = false

	if n == 0 {
		c.state = StateEmpty
		c.log.Debug("attached empty provider")
		return nil
	}

	c.Relayout()
	c.state = StateReady
	c.log.Debug("attached provider", "panels", n, "orientation", c.orientation.String())
	return nil
}

// Relayout pushes the windowed content size to the viewport and puts it
// back on the centre slot. Hosts call it after the page size changes.
func (c *Controller) Relayout() {
	if c.vp == nil {
		return
	}
	page := c.vp.PageSize()
	if c.orientation == Vertical {
		c.vp.SetContentSize(Size{Width: page.Width, Height: page.Height * int(slotCount)})
	} else {
		c.vp.SetContentSize(Size{Width: page.Width * int(slotCount), Height: page.Height})
	}
	c.vp.SetOffset(c.slotOffset(SlotMiddle))
}

// SetMiddle mounts the window centred on the panel at index.
//
// An index outside [0, Count) returns ErrIndexOutOfRange and an empty
// sequence returns ErrEmptyCollection. The out of range case, like a
// wrapped ErrPanelNotFound from OnViewportPositionChanged, is a caller bug:
// the previous window stays mounted, and the host must stop rather than
// keep scrolling. The TUI quits with the error.
func (c *Controller) SetMiddle(index int) error {
	p, err := c.Panel(index)
	if err != nil {
		return err
	}
	return c.recenter(p)
}

// Current returns the logical index of the middle panel.
func (c *Controller) Current() (int, error) {
	if !c.hasWindow {
		return 0, ErrEmptyCollection
	}
	return c.Index(c.window.Middle), nil
}

// OnViewportPositionChanged must be called for every offset the host
// reports, including in-flight ones. Only an exact settle on an edge slot
// recentres.
func (c *Controller) OnViewportPositionChanged(offset Point) error {
	if !c.hasWindow {
		return nil
	}
	extent := c.extent()
	if extent <= 0 {
		return nil
	}

	switch c.axis(offset) {
	case 0:
		return c.settle(SlotPrevious)
	case extent:
		c.state = StateSettled
		return nil
	case 2 * extent:
		return c.settle(SlotNext)
	default:
		c.state = StateScrolling
		return nil
	}
}

// OnTap reports the selected logical index to the delegate. While a full
// window is mounted the middle panel is the selection regardless of which
// panel was hit.
func (c *Controller) OnTap(p *Panel) {
	if !c.hasWindow {
		return
	}
	target := p
	if c.mountedCount() > 1 {
		target = c.window.Middle
	}
	index := c.Index(target)
	c.log.Debug("panel tapped", "index", index)
	if c.delegate == nil {
		return
	}
	c.delegate.PanelSelected(index)
}

// Index looks p up by identity. Copies resolve to the panel they were
// copied from. Unknown panels map to 0.
func (c *Controller) Index(p *Panel) int {
	if i := indexOf(c.panels, p.Origin()); i >= 0 {
		return i
	}
	return 0
}

func (c *Controller) settle(s Slot) error {
	middle := c.window.At(s).Origin()
	if err := c.recenter(middle); err != nil {
		return fmt.Errorf("recenter on %s slot: %w", s, err)
	}
	c.log.Debug("recentered", "slot", s.String(), "middle", c.Index(middle))
	return nil
}

// recenter replaces the mounted window. On error the previous window stays
// mounted.
func (c *Controller) recenter(middle *Panel) error {
	w, err := ComputeWindow(c.panels, middle)
	if err != nil {
		return err
	}

	c.unmountAll()
	for i, p := range w.Panels() {
		p.mount(Slot(i))
	}
	c.window = w
	c.hasWindow = true
	c.state = StateSettled

	if c.vp != nil {
		c.vp.SetOffset(c.slotOffset(SlotMiddle))
	}
	return nil
}

func (c *Controller) unmountAll() {
	for _, p := range c.panels {
		p.unmount()
	}
	if !c.hasWindow {
		return
	}
	for _, p := range c.window.Panels() {
		if p != nil {
			p.unmount()
		}
	}
}

func (c *Controller) mountedCount() int {
	n := 0
	for _, p := range c.window.Panels() {
		if _, ok := p.Slot(); ok {
			n++
		}
	}
	return n
}

func (c *Controller) extent() int {
	if c.vp == nil {
		return 0
	}
	page := c.vp.PageSize()
	if c.orientation == Vertical {
		return page.Height
	}
	return page.Width
}

func (c *Controller) axis(p Point) int {
	if c.orientation == Vertical {
		return p.Y
	}
	return p.X
}

func (c *Controller) slotOffset(s Slot) Point {
	d := c.extent() * int(s)
	if c.orientation == Vertical {
		return Point{Y: d}
	}
	return Point{X: d}
}
