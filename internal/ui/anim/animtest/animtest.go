// Package animtest runs bubbletea commands in tests until every animation
// frame has been delivered.
package animtest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tagbar/internal/ui/anim"
)

// cmdTimeout bounds a single command; cursor blink ticks and other slow
// commands are abandoned instead of waited for.
const cmdTimeout = 100 * time.Millisecond

// Drain executes cmd and every command it produces, feeding frame messages
// back through update until no frames remain. Other messages are collected
// and returned in arrival order.
func Drain(t testing.TB, update func(tea.Msg) tea.Cmd, cmd tea.Cmd) []tea.Msg {
	t.Helper()

	var others []tea.Msg
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 10000 {
			t.Fatalf("animtest: commands did not settle after %d steps", steps)
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := run(next)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case anim.FrameMsg:
			queue = append(queue, update(msg))
		default:
			others = append(others, msg)
		}
	}
	return others
}

func run(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, msg != nil
	case <-time.After(cmdTimeout):
		return nil, false
	}
}
