// Package demo is a small host application embedding the search bar above
// a list of results.
package demo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"tagbar/internal/config"
	"tagbar/internal/domain"
	"tagbar/internal/eventbus"
	"tagbar/searchbar"
)

// Publisher is the part of the event bus the host needs
type Publisher interface {
	Publish(event eventbus.DomainEvent)
}

// ResultsMsg delivers the answer to a search request
type ResultsMsg struct {
	Seq     uint64
	Results []domain.Document
}

// resultItem adapts a document to the bubbles list
type resultItem struct {
	doc domain.Document
}

func (i resultItem) Title() string       { return i.doc.Title }
func (i resultItem) Description() string { return i.doc.Body }
func (i resultItem) FilterValue() string { return i.doc.Title }

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// Model is the demo host
type Model struct {
	bar     *searchbar.Model
	results list.Model
	help    help.Model
	keys    KeyMap

	bus    Publisher
	seq    uint64
	shown  uint64
	query  domain.Query
	status string

	width, height int
	barHeight     int
	initCmd       tea.Cmd

	helpOps      *HelpOps
	helpRenderer *HelpRenderer
	logger       *slog.Logger
}

// NewModel creates the host. docs fill the list until the first search is
// answered; tags are shown as chips from the start.
func NewModel(cfg *config.Config, bus Publisher, docs []domain.Document, tags []string, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		keys:         DefaultKeyMap(),
		bus:          bus,
		help:         help.New(),
		helpOps:      NewHelpOps(nil),
		helpRenderer: NewHelpRenderer(),
		barHeight:    cfg.Bar.Height,
		logger:       logger,
	}

	m.bar = searchbar.New(
		searchbar.WithConfig(cfg),
		searchbar.WithLogger(logger),
		searchbar.WithDelegate(m.delegate()),
	)

	m.results = list.New(toItems(docs), list.NewDefaultDelegate(), 0, 0)
	m.results.Title = "Results"
	m.results.SetShowHelp(false)
	m.results.SetFilteringEnabled(false)
	m.results.DisableQuitKeybindings()

	if len(tags) > 0 {
		m.initCmd = m.bar.SetOptions(tags)
	}
	m.status = fmt.Sprintf("%d documents", len(docs))
	return m
}

// SetProgram sets the program reference used by the help pager
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Bar exposes the embedded search bar
func (m *Model) Bar() *searchbar.Model {
	return m.bar
}

// Query is the last query sent to the bus
func (m *Model) Query() domain.Query {
	return m.query
}

// Results returns the documents currently listed
func (m *Model) Results() []domain.Document {
	return lo.FilterMap(m.results.Items(), func(it list.Item, _ int) (domain.Document, bool) {
		r, ok := it.(resultItem)
		return r.doc, ok
	})
}

func (m *Model) delegate() searchbar.Delegate {
	return searchbar.Delegate{
		OnSearch: func() {
			m.requestSearch()
		},
		OnCancel: func() {
			m.bus.Publish(eventbus.SearchCancelledEvent{})
			m.bar.ClearText()
			m.requestSearch()
		},
		OnTagRemoved: func(title string) {
			m.bus.Publish(eventbus.TagRemovedEvent{Tag: domain.Tag(title)})
			m.requestSearch()
		},
		OnTextChanged: func(text string) {
			m.bus.Publish(eventbus.TextChangedEvent{Text: text})
			m.requestSearch()
		},
		OnEditingBegan: func(text string) {
			m.bus.Publish(eventbus.EditingBeganEvent{Text: text})
		},
		OnEditingFinished: func(text string) {
			m.bus.Publish(eventbus.EditingFinishedEvent{Text: text})
		},
	}
}

// requestSearch publishes the bar's current tags and text as a new query
func (m *Model) requestSearch() {
	text, _ := m.bar.Text()
	m.seq++
	m.query = domain.Query{
		Tags: domain.Tags(m.bar.Options()),
		Text: text,
	}
	m.bus.Publish(eventbus.SearchRequestedEvent{Seq: m.seq, Query: m.query})
}

func (m *Model) addTag(title string) tea.Cmd {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	cmd := m.bar.AddOption(title)
	m.bus.Publish(eventbus.TagAddedEvent{Tag: domain.Tag(title)})
	return cmd
}

func (m *Model) Init() tea.Cmd {
	if len(m.bar.Options()) > 0 {
		m.requestSearch()
	}
	return m.initCmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case ResultsMsg:
		if msg.Seq < m.shown {
			m.logger.Debug("demo: dropping stale results", "seq", msg.Seq, "shown", m.shown)
			return m, nil
		}
		m.shown = msg.Seq
		m.status = fmt.Sprintf("%d results", len(msg.Results))
		return m, m.results.SetItems(toItems(msg.Results))

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", "error", msg.err)
			m.help.ShowAll = true
			m.layout()
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Y < m.bar.Height() {
			_, cmd := m.bar.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Animation frames and cursor blinks
	_, cmd := m.bar.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	if m.bar.Focused() {
		if key.Matches(msg, m.keys.AddTag) {
			text, _ := m.bar.Text()
			cmd := m.addTag(text)
			if cmd == nil {
				return nil
			}
			m.bar.SetText("")
			m.requestSearch()
			return cmd
		}
		_, cmd := m.bar.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Exit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.showHelp()

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return cmd

	case key.Matches(msg, m.keys.TagResult):
		item, ok := m.results.SelectedItem().(resultItem)
		if !ok {
			return nil
		}
		cmd := m.addTag(item.doc.Title)
		m.requestSearch()
		return cmd
	}

	_, cmd := m.bar.Update(msg)
	return cmd
}

// showHelp opens the pager, or toggles the full help line when the
// terminal cannot be released.
func (m *Model) showHelp() tea.Cmd {
	if !m.helpOps.Available() {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return nil
	}

	content := m.helpRenderer.Render(m.helpSections())
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

func (m *Model) helpSections() []helpSection {
	bk := m.bar.FullHelp()
	hk := m.keys.FullHelp()
	return []helpSection{
		{title: "Search bar", bindings: lo.Flatten(bk)},
		{title: "Results", bindings: hk[0]},
		{title: "Tags", bindings: hk[1]},
		{title: "Other", bindings: hk[2]},
	}
}

func (m *Model) layout() {
	m.help.Width = m.width
	m.bar.SetSize(m.width, m.barHeight)

	helpHeight := lipgloss.Height(m.help.View(helpKeys{bar: m.bar, host: m.keys}))
	// bar, gap, status line, help
	m.results.SetSize(m.width, max(m.height-m.barHeight-2-helpHeight, 0))
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.bar.View(),
		"",
		m.results.View(),
		statusStyle.Render(m.status),
		m.help.View(helpKeys{bar: m.bar, host: m.keys}),
	)
}

func toItems(docs []domain.Document) []list.Item {
	return lo.Map(docs, func(d domain.Document, _ int) list.Item {
		return resultItem{doc: d}
	})
}
