// Package anim serializes visual work. Every mutation of the search bar
// becomes a Task; tasks run one at a time and a task only resolves once its
// spring has settled, so completion callbacks fire in the order the
// mutations were issued.
package anim

import (
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const epsilon = 0.005

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances the running task of the queue it belongs to.
type FrameMsg struct {
	id  int
	seq int
}

// Settings tunes the spring shared by every task of a queue.
type Settings struct {
	Enabled   bool
	FPS       int
	Frequency float64
	Damping   float64
	MaxFrames int
}

// DefaultSettings returns a quick, slightly underdamped spring.
func DefaultSettings() Settings {
	return Settings{
		Enabled:   true,
		FPS:       60,
		Frequency: 7.0,
		Damping:   0.8,
		MaxFrames: 30,
	}
}

// Task is one unit of visual work.
type Task struct {
	Name string
	// Animated tasks are stepped through the spring, others settle on the
	// first frame.
	Animated bool
	Start    func()
	Step     func(progress float64)
	Done     func()
}

// Queue runs tasks strictly in enqueue order. There is no cancellation: a
// task that started always runs to completion.
type Queue struct {
	id       int
	seq      int
	settings Settings
	spring   harmonica.Spring

	pending    []Task
	current    *Task
	inCallback bool
	pos, vel   float64
	frames     int
	completed  int

	logger *slog.Logger
}

// NewQueue creates an idle queue. A nil logger discards log output.
func NewQueue(settings Settings, logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if settings.FPS <= 0 {
		settings.FPS = 60
	}
	if settings.MaxFrames <= 0 {
		settings.MaxFrames = 1
	}
	return &Queue{
		id:       nextID(),
		settings: settings,
		spring:   harmonica.NewSpring(harmonica.FPS(settings.FPS), settings.Frequency, settings.Damping),
		logger:   logger,
	}
}

// ID identifies the queue's frame messages.
func (q *Queue) ID() int {
	return q.id
}

// Busy reports whether a task is running or waiting.
func (q *Queue) Busy() bool {
	return q.current != nil || len(q.pending) > 0
}

// Len returns the number of tasks not yet finished, the running one included.
func (q *Queue) Len() int {
	n := len(q.pending)
	if q.current != nil {
		n++
	}
	return n
}

// Completed returns how many tasks have finished since the queue was created.
func (q *Queue) Completed() int {
	return q.completed
}

// Running returns the name of the running task, or "" when idle.
func (q *Queue) Running() string {
	if q.current == nil {
		return ""
	}
	return q.current.Name
}

// Enqueue appends a task and starts it when the queue is idle. The returned
// command delivers the first frame.
func (q *Queue) Enqueue(t Task) tea.Cmd {
	q.pending = append(q.pending, t)
	q.logger.Debug("anim: enqueued", "queue", q.id, "task", t.Name, "pending", len(q.pending))
	if q.current != nil || q.inCallback {
		return nil
	}
	return q.next()
}

// Update consumes frame messages addressed to this queue.
func (q *Queue) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(FrameMsg)
	if !ok || f.id != q.id || f.seq != q.seq || q.current == nil {
		return nil
	}

	t := q.current
	if t.Animated && q.settings.Enabled {
		q.pos, q.vel = q.spring.Update(q.pos, q.vel, 1)
		q.frames++
		settled := math.Abs(1-q.pos) < epsilon && math.Abs(q.vel) < epsilon
		if !settled && q.frames < q.settings.MaxFrames {
			q.call(func() {
				if t.Step != nil {
					t.Step(clamp(q.pos))
				}
			})
			return q.tick()
		}
	}

	q.call(func() {
		if t.Step != nil {
			t.Step(1)
		}
	})
	q.current = nil
	q.completed++
	q.logger.Debug("anim: settled", "queue", q.id, "task", t.Name, "frames", q.frames)
	q.call(func() {
		if t.Done != nil {
			t.Done()
		}
	})
	return q.next()
}

// Flush settles every task synchronously, running each Start, final Step and
// Done in order. Used when the bar is torn down or animations are skipped.
func (q *Queue) Flush() {
	for q.Busy() {
		if q.current == nil {
			q.start()
		}
		t := q.current
		q.call(func() {
			if t.Step != nil {
				t.Step(1)
			}
		})
		q.current = nil
		q.completed++
		q.call(func() {
			if t.Done != nil {
				t.Done()
			}
		})
	}
}

func (q *Queue) next() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	q.start()
	return q.tick()
}

func (q *Queue) start() {
	t := q.pending[0]
	q.pending = q.pending[1:]
	q.current = &t
	q.pos, q.vel, q.frames = 0, 0, 0
	q.seq++
	q.logger.Debug("anim: started", "queue", q.id, "task", t.Name)
	q.call(func() {
		if t.Start != nil {
			t.Start()
		}
		if t.Step != nil {
			t.Step(0)
		}
	})
}

// call runs a task callback; tasks enqueued from inside it wait their turn.
func (q *Queue) call(fn func()) {
	prev := q.inCallback
	q.inCallback = true
	defer func() { q.inCallback = prev }()
	fn()
}

func (q *Queue) tick() tea.Cmd {
	id, seq := q.id, q.seq
	interval := time.Second / time.Duration(q.settings.FPS)
	if !q.settings.Enabled {
		interval = time.Millisecond
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{id: id, seq: seq}
	})
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lerp interpolates between two cell counts, rounding to the nearest cell.
func Lerp(from, to int, progress float64) int {
	return from + int(math.Round(float64(to-from)*progress))
}
