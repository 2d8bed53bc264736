package profile

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablewise/tablewise/internal/table"
)

func testTable() *table.Table {
	return table.New(
		[]string{"day", "region", "amount"},
		[][]string{
			{"2024-01-01", "north", "100"},
			{"2024-01-02", "south", "200"},
			{"2024-01-03", "north", "300"},
			{"2024-01-04", "east", ""},
		},
	)
}

func TestContextMemoizesDerivations(t *testing.T) {
	ctx := NewContext(testTable())

	types1 := ctx.Types()
	types2 := ctx.Types()
	require.NotEmpty(t, types1)
	// Same backing slice: computed once.
	assert.Same(t, &types1[0], &types2[0])

	stats1 := ctx.Stats()
	stats2 := ctx.Stats()
	assert.Equal(t, fmt.Sprintf("%p", stats1), fmt.Sprintf("%p", stats2))
}

func TestContextIdempotentProfiles(t *testing.T) {
	a := NewContext(testTable())
	b := NewContext(testTable())

	assert.Equal(t, a.Types(), b.Types())
	assert.Equal(t, a.Stats(), b.Stats())
	assert.Equal(t, a.Outliers(), b.Outliers())
	assert.Equal(t, a.Quality(), b.Quality())
	assert.Equal(t, a.Suggestions(), b.Suggestions())
	assert.Equal(t, a.SchemaSummary(), b.SchemaSummary())
}

func TestContextConcurrentFirstAccess(t *testing.T) {
	ctx := NewContext(testTable())

	var wg sync.WaitGroup
	results := make([]QualityScore, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ctx.Quality()
		}(i)
	}
	wg.Wait()

	for _, q := range results {
		assert.Equal(t, results[0], q)
	}
}

func TestContextDerivationChain(t *testing.T) {
	ctx := NewContext(testTable())

	// Requesting outliers pulls stats and types transitively.
	_ = ctx.Outliers()
	types := ctx.Types()
	require.Len(t, types, 3)
	assert.Equal(t, TypeDate, types[0].Type)
	assert.Equal(t, TypeText, types[1].Type)
	assert.Equal(t, TypeNumeric, types[2].Type)
}
