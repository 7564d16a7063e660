package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nickromney/looppager/internal/config"
	"github.com/nickromney/looppager/internal/deck"
	"github.com/nickromney/looppager/internal/pager"
)

const (
	quitConfirmPrompt = "Quit? Press q again, or Esc"
	statusBarHeight   = 1

	// The wheel moves an eighth of a page per notch, then snaps once idle.
	wheelDivisor = 8
	snapDelay    = 150 * time.Millisecond
	toastTimeout = 1500 * time.Millisecond

	usageTitle = "looppager usage"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Options configures a Model.
type Options struct {
	Deck        *deck.Deck
	Events      <-chan deck.Event // reloads; nil disables watching
	Orientation pager.Orientation
	Start       int
	Pick        bool
	Config      config.Config
	Logger      *slog.Logger
}

// Model is the root Bubbletea model. It plays the scroll view for the
// pager controller: it owns the offset, animates page snaps and reports
// every offset change.
type Model struct {
	ctrl    *pager.Controller
	surface *scrollSurface
	picked  *selection
	deck    *deck.Deck
	events  <-chan deck.Event
	log     *slog.Logger

	keys  keyMap
	help  help.Model
	usage usagePane
	jump  jumpPrompt

	width, height int
	pick          bool
	mouse         bool
	showHelp      bool

	frames        int
	frameInterval time.Duration
	anim          animation
	snapSeq       int

	statusMsg   string
	statusIsErr bool
	quitArmed   bool
	toastText   string
	themeName   string
	configPath  string

	err error
}

// animation is a linear offset tween along the scroll axis.
type animation struct {
	active   bool
	from, to int
	frame    int
	seq      int
}

// selection records delegate callbacks. Update compares count before and
// after a tap.
type selection struct {
	index int
	count int
}

func (s *selection) PanelSelected(index int) {
	s.index = index
	s.count++
}

// New builds the model and mounts the window on opts.Start.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	theme := ThemeByName(envKey("LOOPPAGER_THEME", cfg.Theme))
	ApplyTheme(theme)

	cfgPath, err := config.Path()
	if err != nil || strings.TrimSpace(cfgPath) == "" {
		cfgPath = "~/.config/looppager/config.yml"
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	surface := &scrollSurface{}
	picked := &selection{}
	ctrl := pager.NewController(surface, opts.Orientation,
		pager.WithDelegate(picked),
		pager.WithLogger(logger),
	)
	if err := ctrl.Attach(opts.Deck); err != nil {
		return Model{}, err
	}
	if ctrl.Count() > 0 {
		if err := ctrl.SetMiddle(opts.Start); err != nil {
			return Model{}, err
		}
	}

	m := Model{
		ctrl:          ctrl,
		surface:       surface,
		picked:        picked,
		deck:          opts.Deck,
		events:        opts.Events,
		log:           logger,
		keys:          newKeyMap(cfg.Keys, opts.Orientation),
		help:          help.New(),
		usage:         newUsagePane(),
		jump:          newJumpPrompt(),
		pick:          opts.Pick,
		mouse:         envBool("LOOPPAGER_MOUSE", cfg.Mouse),
		frames:        clampInt(cfg.ScrollFrames, 1, 60, 8),
		frameInterval: time.Duration(clampInt(cfg.FrameIntervalMS, 1, 1000, 16)) * time.Millisecond,
		themeName:     theme.Name,
		configPath:    cfgPath,
	}
	m.applyHelpStyles()
	return m, nil
}

// Run starts the program and blocks until it exits. A fatal pager error
// is returned along with the final model.
func Run(m Model) (Model, error) {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	fm, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("unexpected final model %T", final)
	}
	return fm, fm.err
}

// Err is the fatal error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Selected reports the last index chosen through the selection delegate.
func (m Model) Selected() (int, bool) {
	return m.picked.index, m.picked.count > 0
}

// Current is the logical index of the centred panel.
func (m Model) Current() (int, error) { return m.ctrl.Current() }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.WindowSize()}
	if m.events != nil {
		cmds = append(cmds, waitForDeckEvent(m.events))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.updateWindowSize(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case frameMsg:
		return m.updateFrame(msg)

	case snapMsg:
		return m.updateSnap(msg)

	case DeckEventMsg:
		return m.updateDeckEvent(msg)

	case deckClosedMsg:
		m.events = nil
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Text
		m.statusIsErr = msg.IsErr
		return m, nil

	case ToastMsg:
		cmd := m.showToast(msg.Text)
		return m, cmd

	case ToastDismissMsg:
		m.toastText = ""
		return m, nil
	}

	// Cursor blink and friends.
	if m.jump.visible {
		cmd := m.jump.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	screen := m.renderPage()
	if m.showHelp {
		screen = m.usage.View()
	}
	if m.jump.visible {
		screen = m.overlayModal(screen, m.jump.View(m.width))
	}
	if m.toastText != "" {
		screen = m.overlayToast(screen)
	}
	if m.surface.page.Height == 0 {
		return m.renderStatusBar()
	}
	return lipgloss.JoinVertical(lipgloss.Left, screen, m.renderStatusBar())
}

func (m Model) updateWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.surface.resize(msg.Width, msg.Height-statusBarHeight)
	m.cancelAnimation()

	m.ctrl.Relayout()
	if err := m.ctrl.OnViewportPositionChanged(m.surface.offset); err != nil {
		return m.fail(err)
	}

	m.usage.SetSize(m.width, m.surface.page.Height)
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Toasts dismiss on any key.
	m.toastText = ""

	if m.jump.visible {
		return m.updateJumpKey(msg)
	}
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Usage) {
			m.showHelp = false
			return m, nil
		}
		cmd := m.usage.Update(msg)
		return m, cmd
	}

	m.maybeClearQuitPrompt(msg.String())

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.quitArmed {
			return m, tea.Quit
		}
		m.armQuitPrompt()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.disarmQuitPrompt()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.clearStatus()
		return m.scrollBy(1)

	case key.Matches(msg, m.keys.Prev):
		m.clearStatus()
		return m.scrollBy(-1)

	case key.Matches(msg, m.keys.First):
		return m.jumpTo(0)

	case key.Matches(msg, m.keys.Last):
		return m.jumpTo(m.ctrl.Count() - 1)

	case key.Matches(msg, m.keys.Select):
		w, ok := m.ctrl.Window()
		if !ok {
			return m, nil
		}
		return m.tap(w.Middle)

	case key.Matches(msg, m.keys.Jump):
		if m.ctrl.Count() == 0 {
			return m, nil
		}
		m.cancelAnimation()
		cmd := m.jump.Open(m.deck.Titles())
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCurrentCmd()

	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme(true)
		m.statusMsg = "Theme changed"
		m.statusIsErr = false
		return m, nil

	case key.Matches(msg, m.keys.SaveTheme):
		return m, m.saveThemeCmd()

	case key.Matches(msg, m.keys.Usage):
		m.showHelp = true
		m.usage.Show(usageTitle, m.usageSections())
		return m, nil
	}

	// 1-9 jump straight to a position.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if idx := int(s[0] - '1'); idx < m.ctrl.Count() {
			return m.jumpTo(idx)
		}
	}
	return m, nil
}

func (m Model) updateJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jump.Close()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		idx, ok := m.jump.Target()
		m.jump.Close()
		if !ok {
			m.statusMsg = "No matching panel"
			m.statusIsErr = true
			return m, nil
		}
		return m.jumpTo(idx)
	}
	cmd := m.jump.Update(msg)
	return m, cmd
}

// scrollBy animates one page towards dir (+1 next, -1 previous).
func (m Model) scrollBy(dir int) (tea.Model, tea.Cmd) {
	if _, ok := m.ctrl.Window(); !ok || m.anim.active {
		return m, nil
	}
	o := m.ctrl.Orientation()
	ext := m.surface.extent(o)
	if ext <= 0 {
		return m, nil
	}

	pos := m.surface.axis(o)
	slot := clampInt((pos+ext/2)/ext, 0, 2, 1)
	target := clampInt(slot+dir, 0, 2, 1) * ext
	if target == pos {
		return m, nil
	}
	return m.animateTo(target)
}

func (m Model) animateTo(target int) (tea.Model, tea.Cmd) {
	from := m.surface.axis(m.ctrl.Orientation())
	m.anim = animation{active: true, from: from, to: target, seq: m.anim.seq + 1}
	m.snapSeq++
	m.log.Debug("scroll animation", "from", from, "to", target, "frames", m.frames)
	return m, m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	seq := m.anim.seq
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return frameMsg{Seq: seq}
	})
}

func (m Model) updateFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if !m.anim.active || msg.Seq != m.anim.seq {
		return m, nil
	}

	m.anim.frame++
	pos := m.anim.to
	if m.anim.frame < m.frames {
		pos = m.anim.from + (m.anim.to-m.anim.from)*m.anim.frame/m.frames
	}
	off := m.surface.scrollTo(m.ctrl.Orientation(), pos)
	if err := m.ctrl.OnViewportPositionChanged(off); err != nil {
		return m.fail(err)
	}

	if m.anim.frame >= m.frames {
		m.anim.active = false
		return m, nil
	}
	return m, m.frameCmd()
}

func (m *Model) cancelAnimation() {
	m.anim = animation{seq: m.anim.seq + 1}
	m.snapSeq++
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || m.showHelp || m.jump.visible || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if _, ok := m.ctrl.Window(); !ok {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m.wheel(1)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m.wheel(-1)
	case tea.MouseButtonLeft:
		return m.click(msg.X, msg.Y)
	}
	return m, nil
}

// wheel nudges the offset and schedules a snap to the nearest page.
func (m Model) wheel(dir int) (tea.Model, tea.Cmd) {
	if m.anim.active {
		return m, nil
	}
	o := m.ctrl.Orientation()
	ext := m.surface.extent(o)
	if ext <= 0 {
		return m, nil
	}

	step := max(1, ext/wheelDivisor)
	off := m.surface.scrollTo(o, m.surface.axis(o)+dir*step)
	if err := m.ctrl.OnViewportPositionChanged(off); err != nil {
		return m.fail(err)
	}

	m.snapSeq++
	seq := m.snapSeq
	return m, tea.Tick(snapDelay, func(time.Time) tea.Msg {
		return snapMsg{Seq: seq}
	})
}

func (m Model) updateSnap(msg snapMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.snapSeq || m.anim.active {
		return m, nil
	}
	if _, ok := m.ctrl.Window(); !ok {
		return m, nil
	}
	o := m.ctrl.Orientation()
	ext := m.surface.extent(o)
	if ext <= 0 {
		return m, nil
	}

	pos := m.surface.axis(o)
	target := clampInt((pos+ext/2)/ext, 0, 2, 1) * ext
	if target == pos {
		return m, nil
	}
	return m.animateTo(target)
}

// click taps the panel under the pointer. The status bar is not a target.
func (m Model) click(x, y int) (tea.Model, tea.Cmd) {
	if y < 0 || y >= m.surface.page.Height || x < 0 || x >= m.surface.page.Width {
		return m, nil
	}
	o := m.ctrl.Orientation()
	ext := m.surface.extent(o)
	if ext <= 0 {
		return m, nil
	}

	along := x
	if o == pager.Vertical {
		along = y
	}
	slot := pager.Slot(clampInt((m.surface.axis(o)+along)/ext, 0, 2, 1))
	w, _ := m.ctrl.Window()
	return m.tap(w.At(slot))
}

func (m Model) tap(p *pager.Panel) (tea.Model, tea.Cmd) {
	before := m.picked.count
	m.ctrl.OnTap(p)
	if m.picked.count == before {
		return m, nil
	}

	idx := m.picked.index
	m.log.Info("panel selected", "index", idx)
	if m.pick {
		return m, tea.Quit
	}
	title := ""
	if c := m.deck.Card(idx); c != nil {
		title = c.Title
	}
	cmd := m.showToast(fmt.Sprintf("Selected %d/%d: %s", idx+1, m.ctrl.Count(), title))
	return m, cmd
}

func (m Model) jumpTo(index int) (tea.Model, tea.Cmd) {
	if m.ctrl.Count() == 0 {
		return m, nil
	}
	m.cancelAnimation()
	if err := m.ctrl.SetMiddle(index); err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m Model) updateDeckEvent(msg DeckEventMsg) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if m.events != nil {
		next = waitForDeckEvent(m.events)
	}

	if msg.Event.Err != nil {
		m.log.Warn("deck reload failed", "error", msg.Event.Err)
		m.statusMsg = "Reload failed: " + msg.Event.Err.Error()
		m.statusIsErr = true
		return m, next
	}

	cur, err := m.ctrl.Current()
	if err != nil {
		cur = 0
	}
	m.cancelAnimation()
	if err := m.ctrl.Attach(msg.Event.Deck); err != nil {
		return m.fail(err)
	}
	m.deck = msg.Event.Deck

	n := m.ctrl.Count()
	if n > 0 {
		if err := m.ctrl.SetMiddle(min(cur, n-1)); err != nil {
			return m.fail(err)
		}
	}
	m.log.Info("deck reloaded", "panels", n)
	m.statusMsg = fmt.Sprintf("Reloaded %d panels", n)
	m.statusIsErr = false
	return m, next
}

func waitForDeckEvent(ch <-chan deck.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return deckClosedMsg{}
		}
		return DeckEventMsg{Event: ev}
	}
}

// fail records a fatal controller error and stops the program.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.log.Error("pager failed", "error", err)
	return m, tea.Quit
}

func (m Model) copyCurrentCmd() tea.Cmd {
	idx, err := m.ctrl.Current()
	if err != nil {
		return func() tea.Msg { return StatusMsg{Text: "Nothing to copy", IsErr: true} }
	}
	c := m.deck.Card(idx)
	text := ""
	if c != nil {
		text = c.Body
		if strings.TrimSpace(text) == "" {
			text = c.Title
		}
	}
	return func() tea.Msg {
		if strings.TrimSpace(text) == "" {
			return StatusMsg{Text: "Nothing to copy", IsErr: true}
		}
		if err := writeClipboard(text); err != nil {
			return StatusMsg{Text: "Failed to copy to clipboard: " + err.Error(), IsErr: true}
		}
		return ToastMsg{Text: "Panel " + strconv.Itoa(idx+1) + " copied to clipboard"}
	}
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastText = text
	m.statusMsg = text
	m.statusIsErr = false
	return tea.Tick(toastTimeout, func(time.Time) tea.Msg {
		return ToastDismissMsg{}
	})
}

func (m *Model) cycleTheme(next bool) {
	names := ThemeNames()
	if len(names) == 0 {
		return
	}

	idx := 0
	for i, name := range names {
		if name == m.themeName {
			idx = i
			break
		}
	}

	if next {
		idx = (idx + 1) % len(names)
	} else {
		idx = (idx - 1 + len(names)) % len(names)
	}

	m.themeName = names[idx]
	ApplyTheme(ThemeByName(m.themeName))
	m.applyHelpStyles()
	if m.showHelp {
		m.usage.Show(usageTitle, m.usageSections())
	}
}

func (m Model) saveThemeCmd() tea.Cmd {
	theme := strings.TrimSpace(m.themeName)
	cfgPathDisp := strings.TrimSpace(m.configPath)
	return func() tea.Msg {
		if _, err := config.SaveTheme(theme); err != nil {
			return StatusMsg{Text: "Failed to save theme: " + err.Error(), IsErr: true}
		}

		note := ""
		if strings.TrimSpace(os.Getenv("LOOPPAGER_THEME")) != "" {
			note = " (LOOPPAGER_THEME overrides)"
		}
		if cfgPathDisp == "" {
			cfgPathDisp = "config.yml"
		}
		return StatusMsg{Text: "Saved theme to " + cfgPathDisp + note}
	}
}

func (m *Model) applyHelpStyles() {
	m.help.ShortSeparator = "  "
	m.help.Styles.ShortKey = statusKeyStyle
	m.help.Styles.ShortDesc = statusDescStyle
	m.help.Styles.ShortSeparator = statusDescStyle
	m.help.Styles.Ellipsis = statusDescStyle
}

func (m *Model) clearStatus() {
	if m.quitArmed {
		return
	}
	m.statusMsg = ""
	m.statusIsErr = false
}

func (m *Model) armQuitPrompt() {
	m.quitArmed = true
	m.statusMsg = quitConfirmPrompt
	m.statusIsErr = false
	m.toastText = quitConfirmPrompt
}

func (m *Model) disarmQuitPrompt() {
	if !m.quitArmed {
		return
	}
	m.quitArmed = false
	if m.statusMsg == quitConfirmPrompt {
		m.statusMsg = ""
		m.statusIsErr = false
	}
	if m.toastText == quitConfirmPrompt {
		m.toastText = ""
	}
}

func (m *Model) maybeClearQuitPrompt(key string) {
	if !m.quitArmed {
		return
	}
	switch key {
	case "q", "esc":
		return
	default:
		m.disarmQuitPrompt()
	}
}

func (m Model) renderStatusBar() string {
	const sep = "  "
	inner := max(0, m.width-statusBarStyle.GetHorizontalPadding())

	// The position always shows. The status message, axis and theme follow
	// in that order while they fit; the key help gets what is left.
	right := statusKeyStyle.Render(m.positionLabel())
	var parts []string
	if m.statusMsg != "" {
		style := successStyle
		if m.statusIsErr {
			style = errorStyle
		}
		if room := inner - lipgloss.Width(right) - len(sep); room > 0 {
			parts = append(parts, style.Render(ansi.Truncate(m.statusMsg, room, "…")))
		}
	}
	parts = append(parts,
		statusDescStyle.Render("axis: ")+statusKeyStyle.Render(m.ctrl.Orientation().String()),
		statusDescStyle.Render("theme: ")+statusKeyStyle.Render(m.themeName),
	)
	for _, part := range parts {
		if lipgloss.Width(right)+len(sep)+lipgloss.Width(part) > inner {
			break
		}
		right += sep + part
	}

	left := ""
	if helpW := inner - lipgloss.Width(right) - len(sep); helpW > 0 {
		h := m.help
		h.Width = helpW
		left = h.ShortHelpView(m.keys.ShortHelp())
		if lipgloss.Width(left) > helpW {
			left = ansi.Truncate(left, helpW, "")
		}
	}

	gap := max(0, inner-lipgloss.Width(left)-lipgloss.Width(right))
	return ansi.Truncate(statusBarStyle.Render(left+strings.Repeat(" ", gap)+right), m.width, "")
}

func (m Model) positionLabel() string {
	idx, err := m.ctrl.Current()
	if err != nil {
		return "0/" + strconv.Itoa(m.ctrl.Count())
	}
	return strconv.Itoa(idx+1) + "/" + strconv.Itoa(m.ctrl.Count())
}

// overlayModal paints a floating panel in the center of the current screen.
func (m Model) overlayModal(screen string, panel string) string {
	if strings.TrimSpace(panel) == "" {
		return screen
	}

	lines := strings.Split(screen, "\n")
	panelLines := strings.Split(panel, "\n")
	panelH := len(panelLines)
	panelW := 0
	for _, line := range panelLines {
		panelW = max(panelW, lipgloss.Width(line))
	}

	row := max(0, (len(lines)-panelH)/2)
	col := max(0, (m.width-panelW)/2)
	for i, line := range panelLines {
		r := row + i
		if r >= len(lines) {
			break
		}
		left := strings.Repeat(" ", col)
		rightW := max(0, m.width-col-lipgloss.Width(line))
		lines[r] = padExact(left+line+strings.Repeat(" ", rightW), m.width)
	}
	return strings.Join(lines, "\n")
}

// overlayToast renders a centred toast notification over the existing screen.
func (m Model) overlayToast(screen string) string {
	toast := lipgloss.NewStyle().
		Foreground(textColor).
		Background(bgColor).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(successColor).
		Bold(true).
		Padding(0, 2).
		Render(m.toastText)
	return m.overlayModal(screen, toast)
}

func (m Model) usageSections() []usageSection {
	var sections []usageSection
	titles := []string{"Navigation", "Panels", "Display"}
	for i, group := range m.keys.FullHelp() {
		s := usageSection{title: titles[i]}
		for _, b := range group {
			h := b.Help()
			s.rows = append(s.rows, usageRow{keys: h.Key, desc: h.Desc})
		}
		sections = append(sections, s)
	}
	sections[0].rows = append(sections[0].rows, usageRow{keys: "1-9", desc: "jump to position"})

	mouse := "off"
	if m.mouse {
		mouse = "on"
	}
	return append(sections,
		usageSection{title: "Mouse (" + mouse + ")", rows: []usageRow{
			{keys: "wheel", desc: "scroll, snaps to the nearest panel"},
			{keys: "click", desc: "select (the centred panel wins)"},
		}},
		usageSection{title: "Environment", rows: []usageRow{
			{keys: "LOOPPAGER_THEME", desc: strings.Join(ThemeNames(), ", ")},
			{keys: "LOOPPAGER_MOUSE", desc: "true/false"},
			{keys: "LOOPPAGER_KEY_NEXT", desc: "next panel key"},
			{keys: "LOOPPAGER_KEY_PREV", desc: "previous panel key"},
			{keys: "LOOPPAGER_KEY_SELECT", desc: "select key"},
			{keys: "LOOPPAGER_KEY_COPY", desc: "copy key"},
			{keys: "LOOPPAGER_KEY_JUMP", desc: "jump prompt key"},
		}},
		usageSection{title: "Config", rows: []usageRow{
			{keys: "file", desc: m.configPath},
		}},
	)
}

func envKey(name string, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func envBool(name string, def bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
