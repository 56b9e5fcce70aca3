package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticuv/showcase/internal/catalog"
)

func projects(n int, featured ...int) []catalog.Project {
	isFeatured := make(map[int]bool, len(featured))
	for _, i := range featured {
		isFeatured[i] = true
	}
	out := make([]catalog.Project, n)
	for i := range out {
		out[i] = catalog.Project{
			ID:       string(rune('a' + i)),
			Year:     2020 + i,
			Featured: isFeatured[i],
		}
	}
	return out
}

func TestPartition_GroupsSumToResult(t *testing.T) {
	result := projects(10, 0, 4)
	g := Partition(result, DefaultPageSize)

	assert.Equal(t, len(result), len(g.Featured)+len(g.Recent)+len(g.Archive))
	assert.Len(t, g.Featured, 2)
	assert.Len(t, g.Recent, 3)
	assert.Len(t, g.Archive, 5)

	for _, p := range g.Recent {
		assert.False(t, p.Featured)
	}
	for _, p := range g.Archive {
		assert.False(t, p.Featured)
	}
}

func TestPartition_FiveNonFeatured(t *testing.T) {
	g := Partition(projects(5), DefaultPageSize)
	assert.Empty(t, g.Featured)
	assert.Len(t, g.Recent, 3)
	assert.Len(t, g.Archive, 2)
}

func TestPartition_RecentNeverExceedsThree(t *testing.T) {
	for n := 0; n < 8; n++ {
		g := Partition(projects(n), DefaultPageSize)
		assert.LessOrEqual(t, len(g.Recent), RecentSize, "n=%d", n)
	}
}

func TestPartition_VisibleClamped(t *testing.T) {
	g := Partition(projects(5), 99)
	assert.Equal(t, 2, g.Visible)
	assert.Len(t, g.VisibleArchive(), 2)

	g = Partition(projects(5), -1)
	assert.Equal(t, 0, g.Visible)
}

func TestGroups_Empty(t *testing.T) {
	assert.True(t, Partition(nil, DefaultPageSize).Empty())
	assert.False(t, Partition(projects(1), DefaultPageSize).Empty())
}

func TestGroups_LoadMoreLabel(t *testing.T) {
	g := Partition(projects(15), DefaultPageSize)
	require.Len(t, g.Archive, 12)
	assert.Equal(t, "Load More (6 remaining)", g.LoadMoreLabel())

	g = Partition(projects(15), 12)
	assert.Equal(t, "All Projects Loaded", g.LoadMoreLabel())
}

func TestPager_MonotonicUntilReset(t *testing.T) {
	p := NewPager(6, 6)
	assert.Equal(t, 6, p.Visible())
	assert.Equal(t, 12, p.More())
	assert.Equal(t, 18, p.More())
	assert.Equal(t, 6, p.Reset())
}

func TestPager_ResetUsesPageSizeNotStep(t *testing.T) {
	p := NewPager(4, 6)
	assert.Equal(t, 4, p.Visible())
	assert.Equal(t, 10, p.More())
	assert.Equal(t, 16, p.More())
	assert.Equal(t, 4, p.Reset())
	assert.Equal(t, 4, p.Visible())
}

func TestPager_Defaults(t *testing.T) {
	p := NewPager(0, 0)
	assert.Equal(t, DefaultPageSize, p.Visible())
	assert.Equal(t, DefaultPageSize+DefaultLoadMoreStep, p.More())
}

func TestResultsLabel(t *testing.T) {
	assert.Equal(t, "1 project found", ResultsLabel(1))
	assert.Equal(t, "7 projects found", ResultsLabel(7))
	assert.Equal(t, "0 projects found", ResultsLabel(0))
}
