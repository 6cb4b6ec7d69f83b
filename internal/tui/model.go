package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/ainything/internal/cmd/emoji"
	"github.com/agentstation/ainything/internal/cmd/output"
	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/fragment"
	"github.com/agentstation/ainything/pkg/query"
	"github.com/agentstation/ainything/pkg/view"
)

// Default terminal size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusGoto
	focusFilters
	focusAbout
)

// snapshotMsg delivers the result of a load that ran outside Update.
type snapshotMsg struct {
	snap view.Snapshot
}

// Options configure the browser.
type Options struct {
	Initial      string // initial URL fragment, e.g. "#model=GPT-4o"
	BaseURL      string // base of shareable links
	GlamourStyle string // glamour style for the detail and About views
}

// Model is the bubbletea model of the catalog browser. It drives a
// view.Controller and draws its snapshots. The controller is only touched
// from Update, or from a load command while input is blocked.
type Model struct {
	ctx     context.Context
	session *view.Controller
	opts    Options

	keys     KeyMap
	help     help.Model
	input    textinput.Model
	viewport viewport.Model
	filters  filterPanel

	snap     view.Snapshot
	focus    focus
	cursor   int
	loading  bool
	status   string
	width    int
	height   int
	quitting bool
}

// New creates a browser over session. The session is started by Init.
func New(ctx context.Context, session *view.Controller, opts Options) *Model {
	if opts.BaseURL == "" {
		opts.BaseURL = constants.DefaultBaseURL
	}
	if opts.GlamourStyle == "" {
		opts.GlamourStyle = constants.DefaultGlamourStyle
	}

	input := textinput.New()
	input.CharLimit = 256

	return &Model{
		ctx:      ctx,
		session:  session,
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    input,
		viewport: viewport.New(defaultWidth, defaultHeight-6),
		loading:  true,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Snapshot returns the last snapshot drawn.
func (m *Model) Snapshot() view.Snapshot {
	return m.snap
}

// Init starts the session: the About document, the catalog and the initial
// fragment.
func (m *Model) Init() tea.Cmd {
	initial := m.opts.Initial
	return m.load(func(ctx context.Context) view.Snapshot {
		return m.session.Start(ctx, initial)
	})
}

func (m *Model) load(run func(context.Context) view.Snapshot) tea.Cmd {
	m.loading = true
	ctx := m.ctx
	return func() tea.Msg {
		return snapshotMsg{snap: run(ctx)}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case snapshotMsg:
		m.loading = false
		m.apply(msg.snap)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.loading {
			if key.Matches(msg, m.keys.Quit) {
				return m.quit()
			}
			return m, nil
		}

		switch m.focus {
		case focusSearch, focusGoto:
			return m.updateInput(msg)
		case focusFilters:
			return m.updateFilters(msg)
		case focusAbout:
			return m.updateAbout(msg)
		}
		if m.snap.Mode == view.ModeDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	if m.focus == focusSearch || m.focus == focusGoto {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.input.Width = max(10, width-12)
	m.viewport.Width = width
	m.viewport.Height = max(3, height-6)
	m.refreshViewport()
}

func (m *Model) dispatch(a view.Action) {
	m.status = ""
	m.apply(m.session.Dispatch(m.ctx, a))
}

// apply stores a snapshot and refreshes everything derived from it.
func (m *Model) apply(snap view.Snapshot) {
	m.snap = snap
	if m.cursor >= len(snap.Results) {
		m.cursor = max(0, len(snap.Results)-1)
	}
	m.refreshViewport()
	m.viewport.GotoTop()
}

func (m *Model) refreshViewport() {
	width := max(20, m.width-2)
	switch {
	case m.focus == focusAbout:
		if m.snap.About.Err != "" {
			m.viewport.SetContent(errorStyle.Render(m.snap.About.Err))
			return
		}
		if m.snap.About.Document == nil {
			m.viewport.SetContent(dimStyle.Render("No About content."))
			return
		}
		m.viewport.SetContent(renderMarkdown(m.snap.About.Document.Markdown, m.opts.GlamourStyle, width))
	case m.snap.Mode == view.ModeDetail && m.snap.Detail != nil:
		m.viewport.SetContent(renderMarkdown(detailMarkdown(*m.snap.Detail, m.link()), m.opts.GlamourStyle, width))
	}
}

// link is the shareable URL of the current view.
func (m *Model) link() string {
	st, err := fragment.Parse(m.snap.Fragment)
	if err != nil {
		return ""
	}
	l, err := st.Link(m.opts.BaseURL)
	if err != nil {
		return ""
	}
	return l
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Retry):
		if m.snap.Error != nil && m.snap.Error.Retryable {
			return m, m.load(func(ctx context.Context) view.Snapshot {
				return m.session.Dispatch(ctx, view.RetryRequested{})
			})
		}
	case m.snap.Error != nil && m.snap.Error.Kind == view.ErrorLoad:
		// Only retry and quit are available until the catalog loads
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = max(0, min(len(m.snap.Results)-1, m.cursor+1))
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.snap.Results) {
			m.dispatch(view.ModelSelected{Name: m.snap.Results[m.cursor].Name})
		}
	case key.Matches(msg, m.keys.Back):
		if m.snap.Query != "" {
			m.dispatch(view.SearchSubmitted{Input: ""})
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Search):
		m.input.Prompt = "Search: "
		m.input.Placeholder = "name, provider, tag or use case"
		m.input.SetValue(m.snap.Query)
		m.focus = focusSearch
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Goto):
		m.input.Prompt = "Open: "
		m.input.Placeholder = "#model=<name> or #search=<text>"
		m.input.SetValue("")
		m.focus = focusGoto
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Filters):
		m.filters = newFilterPanel(m.snap.Facets, m.snap.Settings)
		m.focus = focusFilters
	case key.Matches(msg, m.keys.Sort):
		m.dispatch(view.SortChanged{SortBy: nextSortKey(m.snap.Settings.SortBy)})
		m.status = "Sorted by " + m.snap.Settings.SortBy.String()
	case key.Matches(msg, m.keys.About):
		m.focus = focusAbout
		m.refreshViewport()
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Link):
		m.status = "Link: " + m.link()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.dispatch(view.BackRequested{})
		return m, nil
	case key.Matches(msg, m.keys.Link):
		m.status = "Link: " + m.link()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) updateAbout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.About), key.Matches(msg, m.keys.Quit):
		m.focus = focusList
		m.refreshViewport()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := m.input.Value()
		target := m.focus
		m.closeInput()
		if target == focusSearch {
			m.dispatch(view.SearchSubmitted{Input: value})
			m.cursor = 0
		} else {
			m.dispatch(view.URLChanged{Fragment: value})
		}
		return m, nil
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.focus = focusList
}

func (m *Model) updateFilters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter:
		m.focus = focusList
		m.dispatch(view.FiltersApplied{Settings: m.filters.settings()})
		m.cursor = 0
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Filters):
		m.focus = focusList
	case key.Matches(msg, m.keys.Up):
		m.filters.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.filters.move(1)
	case key.Matches(msg, m.keys.Toggle):
		m.filters.toggle()
	case key.Matches(msg, m.keys.Less):
		m.filters.adjustBudget(-budgetStep)
	case key.Matches(msg, m.keys.More):
		m.filters.adjustBudget(budgetStep)
	}
	return m, nil
}

func nextSortKey(k query.SortKey) query.SortKey {
	keys := query.SortKeys()
	i := slices.Index(keys, k)
	return keys[(i+1)%len(keys)]
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ainything") + dimStyle.Render("  AI model catalog") + "\n\n")

	switch {
	case m.loading && !m.snap.Loaded:
		b.WriteString(dimStyle.Render("Loading catalog...") + "\n")
	case m.focus == focusAbout:
		b.WriteString(m.viewport.View() + "\n")
	case m.snap.Error != nil && m.snap.Error.Kind == view.ErrorLoad:
		b.WriteString(errorStyle.Render(emoji.Error+" "+m.snap.Error.Message) + "\n\n")
		if m.snap.Error.Retryable {
			b.WriteString(dimStyle.Render("Press r to retry or q to quit.") + "\n")
		}
	case m.focus == focusFilters:
		b.WriteString(m.filters.View() + "\n")
	case m.snap.Mode == view.ModeDetail:
		b.WriteString(m.viewport.View() + "\n")
	default:
		b.WriteString(m.listView())
	}

	if m.snap.Notice != "" {
		b.WriteString(noticeStyle.Render(emoji.Warning+" "+m.snap.Notice) + "\n")
	}
	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status) + "\n")
	}
	if m.focus == focusSearch || m.focus == focusGoto {
		b.WriteString(m.input.View() + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) listView() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(m.snap.Summary.Heading) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s • sort: %s • budget: %s",
		m.snap.Summary.Count, m.snap.Settings.SortBy, output.FormatBudget(m.snap.Settings))) + "\n\n")

	if m.snap.Error != nil {
		b.WriteString(errorStyle.Render(m.snap.Error.Message) + "\n")
		return b.String()
	}
	if len(m.snap.Results) == 0 {
		b.WriteString(dimStyle.Render("No models match.") + "\n")
		return b.String()
	}

	height := max(3, m.height-10)
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(len(m.snap.Results), start+height)

	nameWidth := max(12, min(32, m.width/3))
	for i := start; i < end; i++ {
		model := m.snap.Results[i]
		cost := output.FormatCost(model.Pricing.Cost)
		if model.Pricing.Free {
			cost = freeStyle.Render("Free")
		}
		line := fmt.Sprintf("%-*s %-16s %s",
			nameWidth, output.Truncate(model.Name, nameWidth),
			output.Truncate(model.Provider, 16),
			cost)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}
