package profile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablewise/tablewise/internal/table"
)

func chartsOf(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Chart
	}
	return out
}

func TestSuggestChartsLineRequiresDateAndNumeric(t *testing.T) {
	both := table.New(
		[]string{"day", "sales"},
		[][]string{
			{"2024-01-01", "10"},
			{"2024-01-02", "20"},
			{"2024-01-03", "30"},
		},
	)
	suggestions := SuggestCharts(both, InferTypes(both))
	require.NotEmpty(t, suggestions)
	assert.Equal(t, ChartLine, suggestions[0].Chart)
	assert.Equal(t, "day", suggestions[0].X)
	assert.Equal(t, "sales", suggestions[0].Y)
	assert.Equal(t, PriorityHigh, suggestions[0].Priority)

	dateOnly := table.New(
		[]string{"day"},
		[][]string{{"2024-01-01"}, {"2024-01-02"}},
	)
	assert.NotContains(t, chartsOf(SuggestCharts(dateOnly, InferTypes(dateOnly))), ChartLine)

	numericOnly := numericTable("1", "2", "3")
	assert.NotContains(t, chartsOf(SuggestCharts(numericOnly, InferTypes(numericOnly))), ChartLine)
}

func TestSuggestChartsHistogramsCappedAtTwo(t *testing.T) {
	tbl := table.New(
		[]string{"a", "b", "c"},
		[][]string{
			{"1", "2", "3"},
			{"4", "5", "6"},
		},
	)
	var histograms int
	for _, s := range SuggestCharts(tbl, InferTypes(tbl)) {
		if s.Chart == ChartHistogram {
			histograms++
		}
	}
	assert.Equal(t, 2, histograms)
}

func TestSuggestChartsCategorical(t *testing.T) {
	rows := [][]string{
		{"north", "10"},
		{"south", "20"},
		{"east", "30"},
		{"west", "40"},
	}
	tbl := table.New([]string{"region", "amount"}, rows)
	charts := chartsOf(SuggestCharts(tbl, InferTypes(tbl)))
	assert.Contains(t, charts, ChartBar)
	assert.Contains(t, charts, ChartPie)

	// More than 8 distinct categories: bar stays, pie drops.
	var wide [][]string
	for i := 0; i < 12; i++ {
		wide = append(wide, []string{fmt.Sprintf("category %d", i), "1"})
	}
	tbl = table.New([]string{"region", "amount"}, wide)
	charts = chartsOf(SuggestCharts(tbl, InferTypes(tbl)))
	assert.Contains(t, charts, ChartBar)
	assert.NotContains(t, charts, ChartPie)

	// More than 15 distinct: neither fires.
	wide = nil
	for i := 0; i < 20; i++ {
		wide = append(wide, []string{fmt.Sprintf("category %d", i), "1"})
	}
	tbl = table.New([]string{"region", "amount"}, wide)
	charts = chartsOf(SuggestCharts(tbl, InferTypes(tbl)))
	assert.NotContains(t, charts, ChartBar)
	assert.NotContains(t, charts, ChartPie)
}

func TestSuggestChartsScatterAndBox(t *testing.T) {
	tbl := table.New(
		[]string{"x", "y"},
		[][]string{{"1", "2"}, {"3", "4"}},
	)
	suggestions := SuggestCharts(tbl, InferTypes(tbl))
	charts := chartsOf(suggestions)
	assert.Contains(t, charts, ChartScatter)
	assert.Contains(t, charts, ChartBox)

	for _, s := range suggestions {
		if s.Chart == ChartBox {
			assert.Equal(t, []string{"x", "y"}, s.Columns)
			assert.Equal(t, PriorityLow, s.Priority)
		}
	}

	single := numericTable("1", "2")
	charts = chartsOf(SuggestCharts(single, InferTypes(single)))
	assert.NotContains(t, charts, ChartScatter)
	assert.Contains(t, charts, ChartBox)
}

func TestSuggestChartsHeatmap(t *testing.T) {
	tbl := table.New(
		[]string{"row", "col", "value"},
		[][]string{
			{"alpha", "left", "1"},
			{"beta", "right", "2"},
		},
	)
	suggestions := SuggestCharts(tbl, InferTypes(tbl))
	var heatmap *Suggestion
	for i := range suggestions {
		if suggestions[i].Chart == ChartHeatmap {
			heatmap = &suggestions[i]
		}
	}
	require.NotNil(t, heatmap)
	assert.Equal(t, "row", heatmap.X)
	assert.Equal(t, "col", heatmap.Y)
	assert.Equal(t, "value", heatmap.Value)
}

func TestSuggestChartsRuleOrderStable(t *testing.T) {
	tbl := table.New(
		[]string{"day", "region", "amount", "count"},
		[][]string{
			{"2024-01-01", "north", "10", "1"},
			{"2024-01-02", "south", "20", "2"},
			{"2024-01-03", "north", "30", "3"},
		},
	)
	charts := chartsOf(SuggestCharts(tbl, InferTypes(tbl)))
	assert.Equal(t, []string{
		ChartLine, ChartHistogram, ChartHistogram, ChartBar, ChartPie,
		ChartScatter, ChartBox,
	}, charts)
}
