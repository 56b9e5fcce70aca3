// Package tui implements the terminal catalog browser behind the browse
// command.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/query"
	"github.com/ticuv/showcase/internal/viewer"
)

// filterCycle is the category order tab steps through.
var filterCycle = append([]string{query.FilterAll}, catalog.Categories...)

// sortCycle is the sort order the s key steps through.
var sortCycle = []string{query.SortFeatured, query.SortLatest, query.SortOldest}

// Model is the root Bubble Tea model for the catalog browser. The list view
// runs the same query pipeline the site uses; enter opens the detail view,
// which traverses the result frozen at open time.
type Model struct {
	catalog *catalog.Catalog
	title   string

	state  query.State
	result []catalog.Project
	cursor int

	viewer *viewer.Viewer

	search    textinput.Model
	searching bool

	width  int
	height int
}

// New creates a browser over the given catalog.
func New(c *catalog.Catalog, title string) Model {
	ti := textinput.New()
	ti.Placeholder = "search projects..."
	ti.CharLimit = 120
	ti.Prompt = "/ "

	m := Model{
		catalog: c,
		title:   title,
		state:   query.DefaultState(),
		viewer:  viewer.New(c),
		search:  ti,
	}
	m.refresh()
	return m
}

// Run starts the browser and blocks until the user quits.
func Run(c *catalog.Catalog, title string) error {
	p := tea.NewProgram(New(c, title), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-runs the query and clamps the cursor.
func (m *Model) refresh() {
	m.result = query.Run(m.catalog, m.state)
	if m.cursor >= len(m.result) {
		m.cursor = len(m.result) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.viewer.IsOpen() {
			return m.updateDetail(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.state.Search != m.search.Value() {
		m.state.Search = m.search.Value()
		m.cursor = 0
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.result)-1 {
			m.cursor++
		}

	case "tab":
		m.state.Filter = cycle(filterCycle, m.state.Filter, 1)
		m.cursor = 0
		m.refresh()

	case "shift+tab":
		m.state.Filter = cycle(filterCycle, m.state.Filter, -1)
		m.cursor = 0
		m.refresh()

	case "s":
		m.state.Sort = cycle(sortCycle, m.state.Sort, 1)
		m.cursor = 0
		m.refresh()

	case "enter":
		m.viewer.Open(m.result, m.cursor)
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.viewer.Close()

	case "right", "l", "n":
		m.viewer.Next()

	case "left", "h", "p":
		m.viewer.Prev()
	}

	return m, nil
}

// cycle steps through values from current by delta, wrapping.
func cycle(values []string, current string, delta int) string {
	for i, v := range values {
		if v == current {
			return values[(i+delta+len(values))%len(values)]
		}
	}
	return values[0]
}

// View renders the current screen.
func (m Model) View() string {
	if m.viewer.IsOpen() {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("[%s / %s]", m.state.Filter, m.state.Sort)))
	b.WriteString("\n\n")

	if m.searching || m.state.Search != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.result) == 0 {
		b.WriteString(statusStyle.Render("no projects match"))
		b.WriteString("\n")
	}

	for i, p := range m.result {
		line := fmt.Sprintf("%s  %s %d", p.Title, p.Category, p.Year)
		if p.Featured {
			line += featuredStyle.Render(" *")
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter view · / search · tab category · s sort · q quit"))
	return b.String()
}

func (m Model) detailView() string {
	p, ok := m.viewer.Current()
	if !ok {
		return ""
	}

	width := m.width - 4
	if width < 20 || width > 100 {
		width = 76
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%s · %d", p.Category, p.Year)))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(valueStyle.Render(p.Description), width))
	b.WriteString("\n\n")

	if len(p.Tags) > 0 {
		b.WriteString(labelStyle.Render("tags   "))
		b.WriteString(tagStyle.Render(strings.Join(p.Tags, ", ")))
		b.WriteString("\n")
	}
	if len(p.Tools) > 0 {
		b.WriteString(labelStyle.Render("tools  "))
		b.WriteString(valueStyle.Render(strings.Join(p.Tools, ", ")))
		b.WriteString("\n")
	}
	if p.Client != "" {
		b.WriteString(labelStyle.Render("client "))
		b.WriteString(valueStyle.Render(p.Client))
		b.WriteString("\n")
	}
	if p.Link != "" {
		b.WriteString(labelStyle.Render("link   "))
		b.WriteString(valueStyle.Render(p.Link))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ prev/next · esc back"))

	return detailBorderStyle.Render(b.String())
}
