package profile

import (
	"fmt"
	"strings"

	"github.com/tablewise/tablewise/internal/table"
)

// Preview renders a row-truncated markdown table of the underlying data.
func (c *Context) Preview(maxRows int) string {
	return c.t.Markdown(maxRows)
}

// SchemaSummary renders a per-column schema block: type plus up to five
// sample values drawn from the first 100 rows. The block is sized for a
// text-generation collaborator; the engine never calls one itself.
func (c *Context) SchemaSummary() string {
	var b strings.Builder
	b.WriteString("## Dataset summary\n")
	fmt.Fprintf(&b, "- Rows: %d\n", c.t.NumRows())
	fmt.Fprintf(&b, "- Columns: %d\n\n", c.t.NumColumns())
	b.WriteString("## Columns\n")

	for _, ct := range c.Types() {
		samples := sampleValues(c.t, ct.Index, 5, 100)
		fmt.Fprintf(&b, "- **%s** (type: %s) — sample values: %s\n",
			ct.Name, ct.Type, strings.Join(samples, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// sampleValues collects up to n distinct non-empty values from the first
// maxRows rows, in first-seen order, each bounded at 50 characters.
func sampleValues(t *table.Table, col, n, maxRows int) []string {
	rows := t.NumRows()
	if rows > maxRows {
		rows = maxRows
	}
	seen := map[string]struct{}{}
	var out []string
	for row := 0; row < rows && len(out) < n; row++ {
		cell, ok := t.Cell(row, col)
		if !ok {
			continue
		}
		v := table.Truncate(cell, 50)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// StatsText renders the numeric statistics as a prompt section. Empty when
// no column is numeric.
func (c *Context) StatsText() string {
	stats := c.Stats()
	if len(stats) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Basic statistics\n")
	for _, ct := range c.Types() {
		s, ok := stats[ct.Index]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: count=%d, min=%v, max=%v, mean=%v, median=%v, sum=%v, std_dev=%v\n",
			ct.Name, s.Count, s.Min, s.Max, s.Mean, s.Median, s.Sum, s.StdDev)
	}
	return strings.TrimRight(b.String(), "\n")
}

// OutliersText renders the outlier report as a prompt section. Empty when
// nothing was flagged.
func (c *Context) OutliersText() string {
	outliers := c.Outliers()
	if len(outliers) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Outlier detection (IQR method)\n")
	for _, ct := range c.Types() {
		o, ok := outliers[ct.Index]
		if !ok {
			continue
		}
		sample := o.Values
		if len(sample) > 5 {
			sample = sample[:5]
		}
		fmt.Fprintf(&b, "- **%s**: %d outliers (%v%%), normal range [%v, %v], samples: %v\n",
			ct.Name, o.Count, o.Percentage, o.LowerBound, o.UpperBound, sample)
	}
	return strings.TrimRight(b.String(), "\n")
}

// QualityText renders the quality score as a prompt section.
func (c *Context) QualityText() string {
	q := c.Quality()
	return strings.Join([]string{
		"## Data quality score",
		fmt.Sprintf("- Overall: %v/100", q.Overall),
		fmt.Sprintf("- Completeness: %v/100", q.Completeness),
		fmt.Sprintf("- Consistency: %v/100", q.Consistency),
		fmt.Sprintf("- Validity: %v/100", q.Validity),
	}, "\n")
}
