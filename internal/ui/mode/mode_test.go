package mode

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagbar/internal/ui/anim"
	"tagbar/internal/ui/anim/animtest"
)

// recorder checks that every intermediate geometry covers the whole bar.
type recorder struct {
	t       *testing.T
	machine *Machine
	widths  []int
}

func (r *recorder) SetViewport(width int) {
	r.widths = append(r.widths, width)
	if r.machine == nil {
		return
	}
	g := r.machine.Current()
	assert.Equal(r.t, r.machine.Width(), g.CancelWidth+g.ListWidth+g.SearchWidth)
	assert.Equal(r.t, g.CancelWidth, g.ListX)
}

func newMachine(t *testing.T) (*Machine, *recorder, *anim.Queue) {
	q := anim.NewQueue(anim.Settings{Enabled: true, FPS: 1000, Frequency: 20, Damping: 1, MaxFrames: 6}, nil)
	r := &recorder{t: t}
	m := New(q, r, DefaultButtons(), nil)
	r.machine = m
	m.SetWidth(80)
	return m, r, q
}

func settle(t *testing.T, q *anim.Queue, cmd tea.Cmd) {
	t.Helper()
	animtest.Drain(t, q.Update, cmd)
	require.False(t, q.Busy())
}

func TestButtonWidths(t *testing.T) {
	b := DefaultButtons()
	assert.Equal(t, 4, b.CancelWidth())
	assert.Equal(t, 8, b.SearchWidth())

	b.CancelIcon = "←"
	assert.Equal(t, 1, b.CancelWidth())
}

func TestFocusCancelScenario(t *testing.T) {
	m, r, q := newMachine(t)
	require.Equal(t, Collapsed, m.State())
	assert.Equal(t, Geometry{ListWidth: 80}, m.Current())

	settle(t, q, m.Focus())
	assert.Equal(t, ActiveCancelOnly, m.State())
	g := m.Current()
	assert.True(t, g.CancelVisible)
	assert.False(t, g.SearchVisible)
	assert.Equal(t, 80-4, g.ListWidth)
	assert.Equal(t, 4, g.ListX)

	settle(t, q, m.Focus())
	assert.Equal(t, ActiveBoth, m.State())
	g = m.Current()
	assert.True(t, g.SearchVisible)
	assert.Equal(t, 80-4-8, g.ListWidth)

	settle(t, q, m.Cancel())
	assert.Equal(t, Collapsed, m.State())
	assert.Equal(t, Geometry{ListWidth: 80}, m.Current())
	assert.Equal(t, 80, r.widths[len(r.widths)-1])
}

func TestFocusInActiveBothIsNoop(t *testing.T) {
	m, r, q := newMachine(t)
	settle(t, q, m.Focus())
	settle(t, q, m.Focus())
	before := m.Current()
	calls := len(r.widths)

	assert.Nil(t, m.Focus())
	assert.Nil(t, m.Focus())

	assert.False(t, q.Busy())
	assert.Equal(t, before, m.Current())
	assert.Equal(t, calls, len(r.widths))
}

func TestSearchHidesSearchButtonOnly(t *testing.T) {
	m, _, q := newMachine(t)
	settle(t, q, m.Focus())
	settle(t, q, m.Focus())

	settle(t, q, m.Search())

	assert.Equal(t, ActiveCancelOnly, m.State())
	g := m.Current()
	assert.True(t, g.CancelVisible)
	assert.False(t, g.SearchVisible)
	assert.Equal(t, 76, g.ListWidth)

	// Already there
	assert.Nil(t, m.Search())
}

func TestSearchWhileCollapsedIsNoop(t *testing.T) {
	m, _, _ := newMachine(t)

	assert.Nil(t, m.Search())
	assert.Equal(t, Collapsed, m.State())
}

func TestShowBackButton(t *testing.T) {
	m, _, q := newMachine(t)

	settle(t, q, m.ShowBackButton())
	assert.Equal(t, ActiveCancelOnly, m.State())
	assert.Equal(t, m.Geometry(), m.Current())

	assert.Nil(t, m.ShowBackButton())
}

func TestStateChangesBeforeGeometry(t *testing.T) {
	m, _, q := newMachine(t)

	cmd := m.Focus()

	assert.Equal(t, ActiveCancelOnly, m.State())
	assert.Equal(t, 76, m.Geometry().ListWidth)
	assert.Equal(t, 80, m.Current().ListWidth)
	assert.True(t, m.Current().CancelVisible, "visibility flips when the transition starts")
	assert.True(t, m.Animating())

	settle(t, q, cmd)
	assert.False(t, m.Animating())
	assert.Equal(t, 76, m.Current().ListWidth)
}

func TestQueuedTransitionsSettleInOrder(t *testing.T) {
	m, r, q := newMachine(t)

	cmd := tea.Batch(m.Focus(), m.Focus(), m.Cancel())
	assert.Equal(t, Collapsed, m.State())

	settle(t, q, cmd)
	assert.Equal(t, Geometry{ListWidth: 80}, m.Current())
	assert.Contains(t, r.widths, 68)
}

func TestSetWidthDuringTransition(t *testing.T) {
	m, _, q := newMachine(t)

	cmd := m.Focus()
	m.SetWidth(100)
	assert.Equal(t, 80, m.Current().ListWidth)

	settle(t, q, cmd)
	assert.Equal(t, 96, m.Current().ListWidth)
}

func TestSetButtonsRecomputesWidths(t *testing.T) {
	m, _, q := newMachine(t)
	settle(t, q, m.Focus())

	b := m.Buttons()
	b.CancelTitle = "Close it"
	m.SetButtons(b)

	assert.Equal(t, 8, m.Current().CancelWidth)
	assert.Equal(t, 72, m.Current().ListWidth)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "collapsed", Collapsed.String())
	assert.Equal(t, "active-both", ActiveBoth.String())
	assert.Equal(t, "state(9)", State(9).String())
}
