// Package report assembles a markdown analysis report from a profile.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tablewise/tablewise/internal/profile"
)

// Options shape the generated report.
type Options struct {
	Source      string
	PreviewRows int
	Now         time.Time
}

// Build renders the full markdown report: summary metrics, quality
// breakdown, outliers, schema, statistics, visualization recommendations,
// and a bounded data preview. String assembly only; nothing external is
// invoked.
func Build(ctx *profile.Context, opts Options) string {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = 5
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	t := ctx.Table()
	q := ctx.Quality()

	var b strings.Builder
	fmt.Fprintf(&b, "# Data analysis report: %s\n\n", opts.Source)
	fmt.Fprintf(&b, "_Generated: %s_\n\n", opts.Now.Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Rows | %d |\n", t.NumRows())
	fmt.Fprintf(&b, "| Columns | %d |\n", t.NumColumns())
	fmt.Fprintf(&b, "| Quality score | %v/100 |\n", q.Overall)
	fmt.Fprintf(&b, "| Completeness | %v/100 |\n", q.Completeness)
	fmt.Fprintf(&b, "| Consistency | %v/100 |\n", q.Consistency)
	fmt.Fprintf(&b, "| Validity | %v/100 |\n\n", q.Validity)

	if text := ctx.OutliersText(); text != "" {
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	b.WriteString(ctx.SchemaSummary())
	b.WriteString("\n\n")

	if text := ctx.StatsText(); text != "" {
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	if suggestions := ctx.Suggestions(); len(suggestions) > 0 {
		b.WriteString("## Recommended visualizations\n")
		for i, s := range suggestions {
			fmt.Fprintf(&b, "%d. %s (%s priority) — %s\n", i+1, s.Chart, s.Priority, s.Reason)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Data preview (first %d rows)\n\n", opts.PreviewRows)
	b.WriteString(ctx.Preview(opts.PreviewRows))
	b.WriteString("\n")
	return b.String()
}
