package strip

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagbar/internal/ui/anim"
	"tagbar/internal/ui/anim/animtest"
	"tagbar/internal/ui/chip"
	"tagbar/internal/ui/input"
)

type fixture struct {
	strip   *Controller
	queue   *anim.Queue
	removed []string
	changed []string
}

func newFixture(t *testing.T, viewport int) *fixture {
	t.Helper()
	f := &fixture{
		queue: anim.NewQueue(anim.Settings{Enabled: true, FPS: 1000, Frequency: 20, Damping: 1, MaxFrames: 6}, nil),
	}
	f.strip = New(f.queue, input.NewCell("Search..."), chip.NewRenderer(chip.DefaultMetrics(), chip.DefaultStyles()), DefaultSettings(), nil)
	f.strip.SetCallbacks(Callbacks{
		TagRemoved:  func(s string) { f.removed = append(f.removed, s) },
		TextChanged: func(s string) { f.changed = append(f.changed, s) },
	})
	f.strip.SetViewport(viewport)
	return f
}

func (f *fixture) drain(t *testing.T, cmds ...tea.Cmd) {
	t.Helper()
	animtest.Drain(t, f.queue.Update, tea.Batch(cmds...))
	require.False(t, f.queue.Busy())
}

func TestAddOptionPreservesCallOrder(t *testing.T) {
	f := newFixture(t, 40)

	cmd := tea.Batch(f.strip.AddOption("a"), f.strip.AddOption("b"), f.strip.AddOption("c"))

	// Backing sequence changes immediately, the chips follow
	assert.Equal(t, []string{"a", "b", "c"}, f.strip.Options())
	assert.Equal(t, 1, f.strip.VisibleCount())

	f.drain(t, cmd)
	assert.Equal(t, 3, f.strip.VisibleCount())

	items := f.strip.Layout()
	require.Len(t, items, 4)
	for i, it := range items[:3] {
		assert.Equal(t, KindTag, it.Kind)
		assert.Equal(t, i, it.Index)
		assert.Equal(t, 5, it.Width)
	}
	assert.Equal(t, KindInput, items[3].Kind)
}

func TestRemoveAtPreservesRelativeOrder(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.SetOptions([]string{"a", "b", "c", "d"}))

	cmd := f.strip.RemoveAt(1)

	assert.Equal(t, []string{"a", "c", "d"}, f.strip.Options())
	assert.Empty(t, f.removed, "removal is reported after the animation")

	f.drain(t, cmd)
	assert.Equal(t, []string{"b"}, f.removed)
	assert.Equal(t, 3, f.strip.VisibleCount())
}

func TestRemoveAtOutOfRangeIsNoop(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.AddOption("a"))

	assert.Nil(t, f.strip.RemoveAt(1))
	assert.Nil(t, f.strip.RemoveAt(-1))
	assert.Equal(t, []string{"a"}, f.strip.Options())
	assert.False(t, f.queue.Busy())
}

func TestTapChipRemovesTagAfterAnimation(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.AddOption("cat"), f.strip.AddOption("dog"))
	refreshes := f.strip.Refreshes()

	cmd := f.strip.RemoveVisible(0)
	assert.Equal(t, []string{"dog"}, f.strip.Options())
	assert.Empty(t, f.removed)

	f.drain(t, cmd)
	assert.Equal(t, []string{"cat"}, f.removed)
	assert.Equal(t, 1, f.strip.VisibleCount())
	assert.Equal(t, refreshes+1, f.strip.Refreshes())
}

func TestTapResolvesDuplicatesByChip(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.AddOption("cat"), f.strip.AddOption("cat"), f.strip.AddOption("dog"))

	f.drain(t, f.strip.RemoveVisible(1))

	assert.Equal(t, []string{"cat", "dog"}, f.strip.Options())
	assert.Equal(t, []string{"cat"}, f.removed)
	assert.Equal(t, 2, f.strip.VisibleCount())
}

func TestTapOnChipBeingRemovedIsIgnored(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.AddOption("a"), f.strip.AddOption("b"))

	cmd := f.strip.RemoveAt(0)
	assert.Nil(t, f.strip.RemoveVisible(0))
	assert.Equal(t, []string{"b"}, f.strip.Options())

	f.drain(t, cmd)
	assert.Equal(t, []string{"a"}, f.removed)
}

func TestRemoveTitleRemovesEveryMatch(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.SetOptions([]string{"x", "a", "x", "b"}))

	cmd := f.strip.RemoveTitle("x")
	assert.Equal(t, []string{"a", "b"}, f.strip.Options())

	f.drain(t, cmd)
	assert.Equal(t, []string{"x", "x"}, f.removed)

	assert.Nil(t, f.strip.RemoveTitle("missing"))
}

func TestSetOptionsDoesNotReportRemovals(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.AddOption("a"))

	f.drain(t, f.strip.SetOptions(nil))

	assert.Empty(t, f.strip.Options())
	assert.Empty(t, f.removed)
	assert.Equal(t, 0, f.strip.VisibleCount())
}

func TestLayoutInsetOnlyWithTags(t *testing.T) {
	f := newFixture(t, 40)

	items := f.strip.Layout()
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].X)
	assert.Equal(t, 40, items[0].Width)

	f.drain(t, f.strip.AddOption("Cat"))

	items = f.strip.Layout()
	require.Len(t, items, 2)
	assert.Equal(t, Item{Kind: KindTag, Index: 0, X: 1, Width: 7, Height: 1}, items[0])
	assert.Equal(t, 9, items[1].X)
}

func TestItemHeightUsesInset(t *testing.T) {
	f := newFixture(t, 40)
	f.strip.SetSettings(Settings{TagInset: 1, HeightInset: 1, Spacing: 1, MinInputWidth: 12})
	f.strip.SetHeight(3)

	items := f.strip.Layout()
	assert.Equal(t, 2, items[0].Height)
}

func TestHitTest(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.AddOption("cat"))

	_, ok := f.strip.HitTest(0)
	assert.False(t, ok, "inset")

	it, ok := f.strip.HitTest(2)
	require.True(t, ok)
	assert.Equal(t, KindTag, it.Kind)

	_, ok = f.strip.HitTest(8)
	assert.False(t, ok, "spacing")

	it, ok = f.strip.HitTest(12)
	require.True(t, ok)
	assert.Equal(t, KindInput, it.Kind)

	_, ok = f.strip.HitTest(40)
	assert.False(t, ok)
}

func TestTextAbsentUntilTypedOrSet(t *testing.T) {
	f := newFixture(t, 40)

	_, ok := f.strip.Text()
	assert.False(t, ok)

	f.strip.SetText("")
	text, ok := f.strip.Text()
	assert.True(t, ok)
	assert.Equal(t, "", text)

	f.strip.ClearText()
	_, ok = f.strip.Text()
	assert.False(t, ok)

	f.strip.Cell().Focus()
	f.strip.Cell().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	text, ok = f.strip.Text()
	assert.True(t, ok)
	assert.Equal(t, "q", text)
	assert.Equal(t, []string{"q"}, f.changed)
}

func TestTextSurvivesReload(t *testing.T) {
	f := newFixture(t, 40)
	f.strip.SetText("hello")

	f.drain(t, f.strip.SetOptions([]string{"a"}))

	assert.Equal(t, "hello", f.strip.Cell().Value())
	text, _ := f.strip.Text()
	assert.Equal(t, "hello", text)
}

func TestScrollKeepsInputInView(t *testing.T) {
	f := newFixture(t, 20)
	f.drain(t, f.strip.SetOptions([]string{"alpha", "beta", "gamma", "delta"}))
	f.strip.Cell().Focus()
	require.Equal(t, 20, f.strip.Viewport())

	in := f.strip.Layout()[4]
	offset := f.strip.Offset()
	assert.Greater(t, offset, 0)
	assert.LessOrEqual(t, in.X+12, offset+20)
	assert.LessOrEqual(t, offset, in.X)
}

func TestScrollKeepsSelectionInView(t *testing.T) {
	f := newFixture(t, 20)
	f.drain(t, f.strip.SetOptions([]string{"alpha", "beta", "gamma", "delta"}))
	f.strip.Cell().Focus()
	require.Greater(t, f.strip.Offset(), 0)

	f.strip.Cell().Blur()
	f.strip.Select(0)

	first := f.strip.Layout()[0]
	offset := f.strip.Offset()
	assert.LessOrEqual(t, offset, first.X)
	assert.LessOrEqual(t, first.X+first.Width, offset+20)
}

func TestSelection(t *testing.T) {
	f := newFixture(t, 40)
	f.drain(t, f.strip.SetOptions([]string{"a", "b", "c"}))

	f.strip.Select(2)
	f.strip.MoveSelection(1)
	assert.Equal(t, 2, f.strip.Selected())
	f.strip.MoveSelection(-5)
	assert.Equal(t, 0, f.strip.Selected())

	f.strip.Select(7)
	assert.Equal(t, -1, f.strip.Selected())

	f.strip.Select(2)
	f.drain(t, f.strip.RemoveAt(2))
	assert.Equal(t, 1, f.strip.Selected())
}

func TestViewFillsViewportAndCachesChips(t *testing.T) {
	f := newFixture(t, 30)
	f.drain(t, f.strip.AddOption("cat"), f.strip.AddOption("dog"))

	view := f.strip.View()
	assert.Equal(t, 30, ansi.StringWidth(view))
	assert.Contains(t, ansi.Strip(view), "cat ✕")
	assert.Equal(t, 2, f.strip.CacheSize())

	f.strip.Refresh()
	assert.Equal(t, 0, f.strip.CacheSize())
}
