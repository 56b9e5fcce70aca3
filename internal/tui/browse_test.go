package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/query"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Project{
		{ID: "neon-set", Title: "Neon Set", Category: "visuals", Year: 2021, Tags: []string{"touchdesigner"}, Description: "Club visuals.", Image: "/img/a.jpg"},
		{ID: "orbit-render", Title: "Orbit Render", Category: "3d", Year: 2023, Tags: []string{"blender"}, Description: "Station renders.", Image: "/img/b.jpg"},
		{ID: "mono-poster", Title: "Mono Poster", Category: "branding", Year: 2024, Tags: []string{"print"}, Description: "Poster series.", Image: "/img/c.jpg", Featured: true},
	})
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	panic("unknown key " + s)
}

func step(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestListOrderAndCursor(t *testing.T) {
	m := New(testCatalog(), "test")

	// Featured sort: mono-poster first.
	require.Len(t, m.result, 3)
	assert.Equal(t, "mono-poster", m.result[0].ID)
	assert.Equal(t, 0, m.cursor)

	m = step(t, m, "down", "down")
	assert.Equal(t, 2, m.cursor)

	// Cursor stops at the end.
	m = step(t, m, "down")
	assert.Equal(t, 2, m.cursor)
}

func TestCategoryCycleResetsCursor(t *testing.T) {
	m := New(testCatalog(), "test")
	m = step(t, m, "down", "tab")

	assert.Equal(t, catalog.Categories[0], m.state.Filter)
	assert.Equal(t, 0, m.cursor)
}

func TestSortCycle(t *testing.T) {
	m := New(testCatalog(), "test")

	m = step(t, m, "s")
	assert.Equal(t, query.SortLatest, m.state.Sort)
	assert.Equal(t, "mono-poster", m.result[0].ID)

	m = step(t, m, "s")
	assert.Equal(t, query.SortOldest, m.state.Sort)
	assert.Equal(t, "neon-set", m.result[0].ID)

	m = step(t, m, "s")
	assert.Equal(t, query.SortFeatured, m.state.Sort)
}

func TestDetailTraversalWraps(t *testing.T) {
	m := New(testCatalog(), "test")

	m = step(t, m, "enter")
	require.True(t, m.viewer.IsOpen())
	p, _ := m.viewer.Current()
	assert.Equal(t, "mono-poster", p.ID)

	// Forward through all three wraps back to the start.
	m = step(t, m, "right", "right", "right")
	p, _ = m.viewer.Current()
	assert.Equal(t, "mono-poster", p.ID)

	m = step(t, m, "left")
	p, _ = m.viewer.Current()
	assert.NotEqual(t, "mono-poster", p.ID)

	m = step(t, m, "esc")
	assert.False(t, m.viewer.IsOpen())
}

func TestSearchNarrowsResult(t *testing.T) {
	m := New(testCatalog(), "test")

	m = step(t, m, "/")
	require.True(t, m.searching)

	m = step(t, m, "o", "r", "b", "i", "t")
	require.Len(t, m.result, 1)
	assert.Equal(t, "orbit-render", m.result[0].ID)

	m = step(t, m, "enter")
	assert.False(t, m.searching)
	// Enter while search is focused only closes the input.
	assert.False(t, m.viewer.IsOpen())
}

func TestViewRenders(t *testing.T) {
	m := New(testCatalog(), "portfolio")

	out := m.View()
	assert.Contains(t, out, "portfolio")
	assert.Contains(t, out, "Mono Poster")

	m = step(t, m, "enter")
	out = m.View()
	assert.Contains(t, out, "Poster series.")
}
