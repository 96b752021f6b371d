// Package searchbar is a search input with removable tag chips.
//
// The bar shows a horizontally scrolling strip of chips followed by a text
// input. When the input gains focus a cancel button slides in on the left
// and, on the next focus, a search button on the right. Every visual change
// is animated; all methods return at once and the animations arrive later
// as messages, so hosts must route unknown messages to Update.
package searchbar

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tagbar/internal/config"
	"tagbar/internal/ui/anim"
	"tagbar/internal/ui/chip"
	"tagbar/internal/ui/input"
	"tagbar/internal/ui/input/types"
	"tagbar/internal/ui/mode"
	"tagbar/internal/ui/strip"
	"tagbar/internal/ui/views"
)

type (
	State    = mode.State
	Geometry = mode.Geometry
	KeyMap   = types.KeyMap
)

const (
	Collapsed        = mode.Collapsed
	ActiveCancelOnly = mode.ActiveCancelOnly
	ActiveBoth       = mode.ActiveBoth
)

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return types.DefaultKeyMap()
}

// Delegate receives notifications from the bar. Every slot is optional.
type Delegate struct {
	OnSearch          func()
	OnCancel          func()
	OnTagRemoved      func(title string)
	OnTextChanged     func(text string)
	OnEditingFinished func(text string)
	OnEditingBegan    func(text string)
}

// Model is the search bar. Build it with New; the zero value panics.
type Model struct {
	built bool

	cfg      *config.Config
	keymap   KeyMap
	delegate Delegate
	width    int
	height   int

	queue    *anim.Queue
	cell     *input.Cell
	chips    *chip.Renderer
	strip    *strip.Controller
	mode     *mode.Machine
	keys     *input.Handler
	renderer *views.Renderer

	logger *slog.Logger
}

type Option func(*Model)

// WithConfig takes titles, colors, fonts, animation and layout from cfg.
func WithConfig(cfg *config.Config) Option {
	return func(m *Model) {
		c := *cfg
		m.cfg = &c
	}
}

func WithDelegate(d Delegate) Option {
	return func(m *Model) { m.delegate = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keymap = k }
}

func WithSize(width, height int) Option {
	return func(m *Model) { m.width, m.height = width, height }
}

// WithAnimations turns the spring animations on or off. With animations
// off every change still settles asynchronously, on the next frame.
func WithAnimations(enabled bool) Option {
	return func(m *Model) { m.cfg.Animation.Enabled = enabled }
}

func New(opts ...Option) *Model {
	m := &Model{
		cfg:    config.DefaultConfig(),
		keymap: types.DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	if m.height <= 0 {
		m.height = m.cfg.Bar.Height
	}
	cfg := m.cfg

	m.queue = anim.NewQueue(anim.Settings{
		Enabled:   cfg.Animation.Enabled,
		FPS:       cfg.Animation.FPS,
		Frequency: cfg.Animation.Frequency,
		Damping:   cfg.Animation.Damping,
		MaxFrames: cfg.Animation.MaxFrames,
	}, m.logger)

	metrics := chip.DefaultMetrics()
	if cfg.Bar.ChipIcon != "" {
		metrics.Icon = cfg.Bar.ChipIcon
	}
	m.chips = chip.NewRenderer(metrics, chip.DefaultStyles())
	m.cell = input.NewCell(cfg.Bar.Placeholder)

	m.strip = strip.New(m.queue, m.cell, m.chips, strip.Settings{
		TagInset:      cfg.Layout.TagInset,
		HeightInset:   cfg.Layout.HeightInset,
		Spacing:       cfg.Layout.Spacing,
		MinInputWidth: cfg.Layout.MinInputWidth,
	}, m.logger)
	m.strip.SetCallbacks(strip.Callbacks{
		TagRemoved: func(title string) {
			if m.delegate.OnTagRemoved != nil {
				m.delegate.OnTagRemoved(title)
			}
		},
		TextChanged: func(text string) {
			if m.delegate.OnTextChanged != nil {
				m.delegate.OnTextChanged(text)
			}
		},
		EditingBegan: func(text string) {
			if m.delegate.OnEditingBegan != nil {
				m.delegate.OnEditingBegan(text)
			}
		},
		EditingFinished: func(text string) {
			if m.delegate.OnEditingFinished != nil {
				m.delegate.OnEditingFinished(text)
			}
		},
	})

	m.mode = mode.New(m.queue, m.strip, m.buttons(), m.logger)
	m.keys = input.New(m.cell, m.keymap)
	m.renderer = views.NewRenderer(nil)
	m.built = true

	m.applyStyles()
	m.SetSize(m.width, m.height)
	return m
}

func (m *Model) must() {
	if m == nil || !m.built {
		panic("searchbar: Model used before construction; create it with searchbar.New")
	}
}

// SetDelegate replaces the delegate.
func (m *Model) SetDelegate(d Delegate) {
	m.must()
	m.delegate = d
}

// Options returns a copy of the tags, in display order.
func (m *Model) Options() []string {
	m.must()
	return m.strip.Options()
}

// SetOptions replaces every tag; the chips are redrawn without animation.
func (m *Model) SetOptions(tags []string) tea.Cmd {
	m.must()
	return m.strip.SetOptions(tags)
}

// AddOption appends a tag.
func (m *Model) AddOption(tag string) tea.Cmd {
	m.must()
	return m.strip.AddOption(tag)
}

// RemoveOption removes every tag equal to title. OnTagRemoved fires once
// per removed chip after its animation.
func (m *Model) RemoveOption(title string) tea.Cmd {
	m.must()
	return m.strip.RemoveTitle(title)
}

// Text returns the input's content; ok is false until text was typed or set.
func (m *Model) Text() (text string, ok bool) {
	m.must()
	return m.strip.Text()
}

func (m *Model) SetText(s string) {
	m.must()
	m.strip.SetText(s)
}

// ClearText makes the text absent.
func (m *Model) ClearText() {
	m.must()
	m.strip.ClearText()
}

// Reset removes every tag and the text without notifying the delegate.
func (m *Model) Reset() tea.Cmd {
	m.must()
	cmd := m.strip.SetOptions(nil)
	m.strip.ClearText()
	return cmd
}

// ResetViewWithBackButton shows the cancel button alone.
func (m *Model) ResetViewWithBackButton() tea.Cmd {
	m.must()
	return m.mode.ShowBackButton()
}

// Focus focuses the input. Each call counts as the input gaining focus, so
// a second call while only cancel is shown reveals the search button.
func (m *Model) Focus() tea.Cmd {
	m.must()
	m.keys.SetMode(types.ModeEdit)
	m.strip.Select(-1)
	return tea.Batch(m.cell.Focus(), m.mode.Focus())
}

// Blur ends editing without changing the mode.
func (m *Model) Blur() {
	m.must()
	m.keys.Reset()
	m.cell.Blur()
}

func (m *Model) Focused() bool {
	m.must()
	return m.cell.Focused()
}

// SetSize sets the bar's width and height in cells.
func (m *Model) SetSize(width, height int) {
	m.must()
	m.width = max(width, 0)
	m.height = max(height, 1)
	m.strip.SetHeight(m.height)
	m.mode.SetWidth(m.width)
}

func (m *Model) Width() int {
	m.must()
	return m.width
}

func (m *Model) Height() int {
	m.must()
	return m.height
}

func (m *Model) State() State {
	m.must()
	return m.mode.State()
}

// Geometry is the settled layout of the current state.
func (m *Model) Geometry() Geometry {
	m.must()
	return m.mode.Geometry()
}

// CurrentGeometry is the layout on screen, mid-animation included.
func (m *Model) CurrentGeometry() Geometry {
	m.must()
	return m.mode.Current()
}

// Busy reports whether changes are still animating.
func (m *Model) Busy() bool {
	m.must()
	return m.queue.Busy()
}

// Flush completes every pending change at once, firing its callbacks.
func (m *Model) Flush() {
	m.must()
	m.queue.Flush()
}

// Selected is the visual index of the selected chip, or -1.
func (m *Model) Selected() int {
	m.must()
	return m.strip.Selected()
}

// ShortHelp implements help.KeyMap.
func (m *Model) ShortHelp() []key.Binding {
	m.must()
	return m.keys.Keys().ShortHelp()
}

// FullHelp implements help.KeyMap.
func (m *Model) FullHelp() [][]key.Binding {
	m.must()
	return m.keys.Keys().FullHelp()
}

func (m *Model) Init() tea.Cmd {
	m.must()
	return nil
}

// View renders the bar, Height rows of Width cells.
func (m *Model) View() string {
	m.must()
	g := m.mode.Current()
	b := m.mode.Buttons()

	cancel := b.CancelTitle
	if b.CancelIcon != "" {
		cancel = b.CancelIcon
	}
	return m.renderer.Render(views.BarState{
		Width:         m.width,
		Height:        m.height,
		CancelLabel:   cancel,
		CancelWidth:   g.CancelWidth,
		CancelVisible: g.CancelVisible,
		SearchLabel:   b.SearchTitle,
		SearchWidth:   g.SearchWidth,
		SearchVisible: g.SearchVisible,
		List:          m.strip.View(),
		ListWidth:     g.ListWidth,
	})
}

func (m *Model) buttons() mode.Buttons {
	return mode.Buttons{
		CancelTitle: m.cfg.Bar.CancelTitle,
		CancelIcon:  m.cfg.Bar.CancelIcon,
		SearchTitle: m.cfg.Bar.SearchTitle,
		Padding:     m.cfg.Layout.ButtonPadding,
	}
}

func (m *Model) applyStyles() {
	styles := views.StylesFromConfig(m.cfg)
	m.renderer.SetStyles(styles)
	m.chips.SetStyles(chip.Styles{Normal: styles.Chip, Selected: styles.ChipSelected})
	m.cell.SetStyles(styles.Input, styles.Placeholder)
	m.strip.Refresh()
}
