// Package strip implements the horizontally scrolling row of tag chips
// followed by the single text input cell.
//
// The backing tag sequence is mutated synchronously by every operation. The
// visual list trails behind it: each mutation enqueues a task on the shared
// animation queue, and the visual items are only changed from inside those
// tasks. Tags carry a serial id so that a visual item always resolves to the
// backing entry it was created for.
package strip

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/samber/lo"

	"tagbar/internal/ui/anim"
	"tagbar/internal/ui/chip"
	"tagbar/internal/ui/input"
)

// Kind distinguishes the two segments of the strip.
type Kind int

const (
	KindTag Kind = iota
	KindInput
)

// Item is a positioned visual item in content coordinates.
type Item struct {
	Kind   Kind
	Index  int // visual index within its segment
	X      int
	Width  int
	Height int
}

// Settings controls spacing and sizing in cells.
type Settings struct {
	TagInset      int // left inset of the tag segment when it is non-empty
	HeightInset   int
	Spacing       int
	MinInputWidth int // input cells kept visible while editing
}

func DefaultSettings() Settings {
	return Settings{
		TagInset:      1,
		HeightInset:   0,
		Spacing:       1,
		MinInputWidth: 12,
	}
}

// Callbacks are optional notifications. TagRemoved fires once the removal
// animation of the chip has settled.
type Callbacks struct {
	TagRemoved      func(title string)
	TextChanged     func(text string)
	EditingBegan    func(text string)
	EditingFinished func(text string)
}

type tag struct {
	id   int
	text string
}

type visual struct {
	tag
	width int
	full  int
}

type cacheEntry struct {
	width, height int
	selected      bool
	out           string
}

// Controller owns the tag sequence, the trailing input cell and the cached
// display text.
type Controller struct {
	tags   []tag
	lastID int

	cell    *input.Cell
	text    string
	hasText bool

	visible  []visual
	selected int
	offset   int
	viewport int
	height   int

	queue     *anim.Queue
	chips     *chip.Renderer
	settings  Settings
	callbacks Callbacks

	cache     map[int]cacheEntry
	refreshes int
	logger    *slog.Logger
}

// New creates a controller drawing into queue. The controller takes over
// the cell's callbacks.
func New(queue *anim.Queue, cell *input.Cell, chips *chip.Renderer, settings Settings, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		cell:     cell,
		selected: -1,
		height:   1,
		queue:    queue,
		chips:    chips,
		settings: settings,
		cache:    make(map[int]cacheEntry),
		logger:   logger,
	}
	cell.SetCallbacks(input.Callbacks{
		Began: func(s string) {
			notify(c.callbacks.EditingBegan, s)
		},
		Changed: func(s string) {
			c.text, c.hasText = s, true
			notify(c.callbacks.TextChanged, s)
		},
		Finished: func(s string) {
			notify(c.callbacks.EditingFinished, s)
		},
	})
	return c
}

func (c *Controller) SetCallbacks(cb Callbacks) {
	c.callbacks = cb
}

func (c *Controller) Cell() *input.Cell {
	return c.cell
}

// Options returns a copy of the tag sequence.
func (c *Controller) Options() []string {
	return lo.Map(c.tags, func(t tag, _ int) string { return t.text })
}

// Len is the number of tags in the backing sequence.
func (c *Controller) Len() int {
	return len(c.tags)
}

// AddOption appends a tag and animates its chip in.
func (c *Controller) AddOption(text string) tea.Cmd {
	t := c.newTag(text)
	c.tags = append(c.tags, t)
	c.logger.Debug("strip: add", "tag", text, "tags", len(c.tags))

	var full int
	return c.queue.Enqueue(anim.Task{
		Name:     "insert " + text,
		Animated: true,
		Start: func() {
			full = c.chips.Width(text)
			c.visible = append(c.visible, visual{tag: t, full: full})
		},
		Step: func(p float64) {
			c.resize(t.id, anim.Lerp(0, full, p))
		},
	})
}

// RemoveAt removes the tag at index and animates its chip out. An index
// outside the sequence is ignored.
func (c *Controller) RemoveAt(index int) tea.Cmd {
	if index < 0 || index >= len(c.tags) {
		return nil
	}
	t := c.tags[index]
	c.tags = append(c.tags[:index:index], c.tags[index+1:]...)
	c.logger.Debug("strip: remove", "tag", t.text, "index", index, "tags", len(c.tags))

	return c.queue.Enqueue(anim.Task{
		Name:     "remove " + t.text,
		Animated: true,
		Step: func(p float64) {
			if i := c.find(t.id); i >= 0 {
				c.resize(t.id, anim.Lerp(c.visible[i].full, 0, p))
			}
		},
		Done: func() {
			c.drop(t.id)
			notify(c.callbacks.TagRemoved, t.text)
			c.Refresh()
		},
	})
}

// RemoveVisible removes the tag whose chip is shown at visual index i. A
// chip that is already on its way out is ignored.
func (c *Controller) RemoveVisible(i int) tea.Cmd {
	if i < 0 || i >= len(c.visible) {
		return nil
	}
	id := c.visible[i].id
	for index, t := range c.tags {
		if t.id == id {
			return c.RemoveAt(index)
		}
	}
	return nil
}

// RemoveTitle removes every tag equal to title, left to right.
func (c *Controller) RemoveTitle(title string) tea.Cmd {
	var cmds []tea.Cmd
	for {
		index := lo.IndexOf(c.Options(), title)
		if index < 0 {
			break
		}
		cmds = append(cmds, c.RemoveAt(index))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// SetOptions replaces every tag. The visual list is reloaded in one step
// without animation.
func (c *Controller) SetOptions(texts []string) tea.Cmd {
	c.tags = lo.Map(texts, func(text string, _ int) tag { return c.newTag(text) })
	snapshot := append([]tag(nil), c.tags...)
	c.logger.Debug("strip: replace", "tags", len(c.tags))

	return c.queue.Enqueue(anim.Task{
		Name: "reload",
		Start: func() {
			c.visible = lo.Map(snapshot, func(t tag, _ int) visual {
				w := c.chips.Width(t.text)
				return visual{tag: t, width: w, full: w}
			})
			c.selected = -1
			c.cache = make(map[int]cacheEntry)
			if c.hasText {
				c.cell.SetValue(c.text)
			}
		},
		Done: c.Refresh,
	})
}

// Text returns the input's content. It is absent until text was typed or
// set.
func (c *Controller) Text() (string, bool) {
	return c.text, c.hasText
}

// SetText overwrites the cached text and shows it in the input cell.
func (c *Controller) SetText(s string) {
	c.text, c.hasText = s, true
	c.cell.SetValue(s)
}

// ClearText makes the text absent and empties the input cell.
func (c *Controller) ClearText() {
	c.text, c.hasText = "", false
	c.cell.SetValue("")
}

// SetViewport sets the visible width of the strip.
func (c *Controller) SetViewport(width int) {
	c.viewport = max(width, 0)
	c.cell.SetWidth(c.viewport)
}

func (c *Controller) Viewport() int {
	return c.viewport
}

// SetHeight sets the container height; items are HeightInset rows shorter.
func (c *Controller) SetHeight(height int) {
	c.height = max(height, 1)
}

func (c *Controller) SetSettings(s Settings) {
	c.settings = s
}

// Selected returns the visual index of the selected chip, or -1.
func (c *Controller) Selected() int {
	return c.selected
}

// Select selects the chip at visual index i; any other index clears the
// selection.
func (c *Controller) Select(i int) {
	if i < 0 || i >= len(c.visible) {
		i = -1
	}
	c.selected = i
}

// MoveSelection moves the selection by delta chips, staying in range.
func (c *Controller) MoveSelection(delta int) {
	if c.selected < 0 || len(c.visible) == 0 {
		return
	}
	c.selected = min(max(c.selected+delta, 0), len(c.visible)-1)
}

// VisibleCount is the number of chips currently drawn, including chips
// that are still animating.
func (c *Controller) VisibleCount() int {
	return len(c.visible)
}

// Refresh drops the cached rendering of every chip on screen.
func (c *Controller) Refresh() {
	c.refreshes++
	n := 0
	for _, it := range c.onScreen() {
		if it.Kind == KindTag {
			delete(c.cache, c.visible[it.Index].id)
			n++
		}
	}
	c.logger.Debug("strip: refresh", "items", n, "refreshes", c.refreshes)
}

// Refreshes counts completed refreshes.
func (c *Controller) Refreshes() int {
	return c.refreshes
}

// CacheSize is the number of chips with a cached rendering.
func (c *Controller) CacheSize() int {
	return len(c.cache)
}

// Layout flattens the strip into positioned items: the chips, then the
// input cell spanning the whole viewport.
func (c *Controller) Layout() []Item {
	h := c.itemHeight()
	items := make([]Item, 0, len(c.visible)+1)

	x := 0
	if len(c.visible) > 0 {
		x = c.settings.TagInset
	}
	for i, v := range c.visible {
		items = append(items, Item{Kind: KindTag, Index: i, X: x, Width: v.width, Height: h})
		if v.width > 0 {
			x += v.width + c.settings.Spacing
		}
	}
	return append(items, Item{Kind: KindInput, X: x, Width: c.viewport, Height: h})
}

// Offset is the horizontal scroll position in cells.
func (c *Controller) Offset() int {
	c.scroll()
	return c.offset
}

// HitTest returns the item under viewport column x.
func (c *Controller) HitTest(x int) (Item, bool) {
	if x < 0 || x >= c.viewport {
		return Item{}, false
	}
	c.scroll()
	cx := x + c.offset
	for _, it := range c.Layout() {
		if it.Width > 0 && cx >= it.X && cx < it.X+it.Width {
			return it, true
		}
	}
	return Item{}, false
}

func (c *Controller) View() string {
	if c.viewport == 0 {
		return ""
	}
	c.scroll()
	h := c.itemHeight()

	var parts []string
	x := 0
	for _, it := range c.Layout() {
		if it.Width == 0 {
			continue
		}
		if it.X > x {
			parts = append(parts, blank(it.X-x, h))
		}
		parts = append(parts, c.render(it))
		x = it.X + it.Width
	}

	lines := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, c.offset, c.offset+c.viewport)
	}
	return strings.Join(lines, "\n")
}

func (c *Controller) render(it Item) string {
	if it.Kind == KindInput {
		return lipgloss.NewStyle().
			Width(it.Width).
			MaxWidth(it.Width).
			Height(it.Height).
			AlignVertical(lipgloss.Center).
			Render(c.cell.View())
	}

	v := c.visible[it.Index]
	selected := it.Index == c.selected
	if e, ok := c.cache[v.id]; ok && e.width == it.Width && e.height == it.Height && e.selected == selected {
		return e.out
	}
	out := c.chips.Render(v.text, it.Width, it.Height, selected)
	c.cache[v.id] = cacheEntry{width: it.Width, height: it.Height, selected: selected, out: out}
	return out
}

// scroll keeps the selected chip, or the start of the input while editing,
// inside the viewport.
func (c *Controller) scroll() {
	items := c.Layout()
	in := items[len(items)-1]

	switch {
	case c.selected >= 0 && c.selected < len(c.visible):
		it := items[c.selected]
		c.reveal(it.X, it.X+it.Width)
	case c.cell.Focused():
		c.reveal(in.X, in.X+min(c.settings.MinInputWidth, c.viewport))
	}

	// Content ends with the input, which is exactly one viewport wide
	c.offset = min(max(c.offset, 0), in.X)
}

func (c *Controller) reveal(from, to int) {
	if to > c.offset+c.viewport {
		c.offset = to - c.viewport
	}
	if from < c.offset {
		c.offset = from
	}
}

func (c *Controller) onScreen() []Item {
	c.scroll()
	return lo.Filter(c.Layout(), func(it Item, _ int) bool {
		return it.X < c.offset+c.viewport && it.X+it.Width > c.offset
	})
}

func (c *Controller) itemHeight() int {
	return max(c.height-c.settings.HeightInset, 1)
}

func (c *Controller) newTag(text string) tag {
	c.lastID++
	return tag{id: c.lastID, text: text}
}

func (c *Controller) find(id int) int {
	for i, v := range c.visible {
		if v.id == id {
			return i
		}
	}
	return -1
}

func (c *Controller) resize(id, width int) {
	if i := c.find(id); i >= 0 {
		c.visible[i].width = width
	}
}

func (c *Controller) drop(id int) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.visible = append(c.visible[:i], c.visible[i+1:]...)
	delete(c.cache, id)

	switch {
	case len(c.visible) == 0:
		c.selected = -1
	case c.selected > i || c.selected >= len(c.visible):
		c.selected--
	}
}

func blank(width, height int) string {
	line := strings.Repeat(" ", width)
	return strings.TrimSuffix(strings.Repeat(line+"\n", height), "\n")
}

func notify(fn func(string), s string) {
	if fn != nil {
		fn(s)
	}
}
