package profile

import (
	"fmt"

	"github.com/tablewise/tablewise/internal/table"
)

// Chart kinds a suggestion may propose.
const (
	ChartLine      = "line"
	ChartHistogram = "histogram"
	ChartBar       = "bar"
	ChartPie       = "pie"
	ChartScatter   = "scatter"
	ChartBox       = "box"
	ChartHeatmap   = "heatmap"
)

// Suggestion priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is one proposed chart specification. Column roles vary per
// chart kind: X/Y for positional axes, Columns for multi-column charts,
// Value for the measure of a pie or heatmap.
type Suggestion struct {
	Chart    string
	X        string
	Y        string
	Columns  []string
	Value    string
	Reason   string
	Priority string
}

// vizRule appends zero or one suggestion based on the column type layout.
type vizRule func(in vizInput, out []Suggestion) []Suggestion

type vizInput struct {
	t       *table.Table
	numeric []ColumnType
	date    []ColumnType
	text    []ColumnType
}

// vizRules is the fixed rule cascade; rules are independent and evaluated
// in order, so multiple can fire on one table.
var vizRules = []vizRule{
	ruleTimeSeries,
	ruleHistograms,
	ruleCategorical,
	ruleScatter,
	ruleBoxPlot,
	ruleHeatmap,
}

// SuggestCharts proposes chart specifications for the table's type and
// statistics profile. Suggestions are recommendations only; nothing is
// rendered here.
func SuggestCharts(t *table.Table, types []ColumnType) []Suggestion {
	in := vizInput{t: t}
	for _, ct := range types {
		switch ct.Type {
		case TypeNumeric:
			in.numeric = append(in.numeric, ct)
		case TypeDate:
			in.date = append(in.date, ct)
		case TypeText:
			in.text = append(in.text, ct)
		}
	}

	var out []Suggestion
	for _, rule := range vizRules {
		out = rule(in, out)
	}
	return out
}

func ruleTimeSeries(in vizInput, out []Suggestion) []Suggestion {
	if len(in.date) == 0 || len(in.numeric) == 0 {
		return out
	}
	return append(out, Suggestion{
		Chart:    ChartLine,
		X:        in.date[0].Name,
		Y:        in.numeric[0].Name,
		Reason:   "a time dimension and a numeric column suit a trend view",
		Priority: PriorityHigh,
	})
}

func ruleHistograms(in vizInput, out []Suggestion) []Suggestion {
	for i, ct := range in.numeric {
		if i >= 2 {
			break
		}
		out = append(out, Suggestion{
			Chart:    ChartHistogram,
			Columns:  []string{ct.Name},
			Reason:   fmt.Sprintf("shows the distribution of %s", ct.Name),
			Priority: PriorityMedium,
		})
	}
	return out
}

func ruleCategorical(in vizInput, out []Suggestion) []Suggestion {
	if len(in.text) == 0 || len(in.numeric) == 0 {
		return out
	}
	cat, num := in.text[0], in.numeric[0]
	distinct := distinctInFirstRows(in.t, cat.Index, 100)
	if distinct <= 15 {
		out = append(out, Suggestion{
			Chart:    ChartBar,
			X:        cat.Name,
			Y:        num.Name,
			Reason:   fmt.Sprintf("compares %s grouped by %s", num.Name, cat.Name),
			Priority: PriorityHigh,
		})
	}
	if distinct <= 8 {
		out = append(out, Suggestion{
			Chart:    ChartPie,
			Columns:  []string{cat.Name},
			Value:    num.Name,
			Reason:   fmt.Sprintf("shows each %s category's share of %s", cat.Name, num.Name),
			Priority: PriorityMedium,
		})
	}
	return out
}

func ruleScatter(in vizInput, out []Suggestion) []Suggestion {
	if len(in.numeric) < 2 {
		return out
	}
	return append(out, Suggestion{
		Chart:    ChartScatter,
		X:        in.numeric[0].Name,
		Y:        in.numeric[1].Name,
		Reason:   fmt.Sprintf("explores the correlation of %s and %s", in.numeric[0].Name, in.numeric[1].Name),
		Priority: PriorityMedium,
	})
}

func ruleBoxPlot(in vizInput, out []Suggestion) []Suggestion {
	if len(in.numeric) == 0 {
		return out
	}
	cols := make([]string, 0, 5)
	for i, ct := range in.numeric {
		if i >= 5 {
			break
		}
		cols = append(cols, ct.Name)
	}
	return append(out, Suggestion{
		Chart:    ChartBox,
		Columns:  cols,
		Reason:   "summarizes numeric spread and flags outliers visually",
		Priority: PriorityLow,
	})
}

func ruleHeatmap(in vizInput, out []Suggestion) []Suggestion {
	if len(in.text) < 2 || len(in.numeric) == 0 {
		return out
	}
	return append(out, Suggestion{
		Chart:    ChartHeatmap,
		X:        in.text[0].Name,
		Y:        in.text[1].Name,
		Value:    in.numeric[0].Name,
		Reason:   fmt.Sprintf("maps %s across %s × %s", in.numeric[0].Name, in.text[0].Name, in.text[1].Name),
		Priority: PriorityLow,
	})
}

// distinctInFirstRows counts distinct non-empty values of one column over
// up to maxRows leading rows.
func distinctInFirstRows(t *table.Table, col, maxRows int) int {
	rows := len(t.Rows)
	if rows > maxRows {
		rows = maxRows
	}
	seen := map[string]struct{}{}
	for row := 0; row < rows; row++ {
		if cell, ok := t.Cell(row, col); ok {
			seen[cell] = struct{}{}
		}
	}
	return len(seen)
}
