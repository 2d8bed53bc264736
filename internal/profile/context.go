package profile

import (
	"sync"

	"github.com/tablewise/tablewise/internal/table"
)

// Context owns one Table and lazily derives its profile. Every derivation
// is computed at most once per Context, even under concurrent first access;
// a new Context over a different Table is the only way to invalidate.
type Context struct {
	t *table.Table

	typesOnce sync.Once
	types     []ColumnType

	statsOnce sync.Once
	stats     map[int]NumericStats

	outliersOnce sync.Once
	outliers     map[int]OutlierReport

	qualityOnce sync.Once
	quality     QualityScore

	vizOnce sync.Once
	viz     []Suggestion
}

// NewContext wraps a table for profiling. The table must not be mutated
// for the lifetime of the context.
func NewContext(t *table.Table) *Context {
	return &Context{t: t}
}

// Table returns the profiled table.
func (c *Context) Table() *table.Table { return c.t }

// Types returns per-column type information, ordered by column position.
func (c *Context) Types() []ColumnType {
	c.typesOnce.Do(func() {
		c.types = InferTypes(c.t)
	})
	return c.types
}

// Stats returns descriptive statistics keyed by numeric column index.
func (c *Context) Stats() map[int]NumericStats {
	c.statsOnce.Do(func() {
		c.stats = ComputeStats(c.t, c.Types())
	})
	return c.stats
}

// Outliers returns IQR outlier reports keyed by column index.
func (c *Context) Outliers() map[int]OutlierReport {
	c.outliersOnce.Do(func() {
		c.outliers = DetectOutliers(c.t, c.Stats())
	})
	return c.outliers
}

// Quality returns the composite data-quality score.
func (c *Context) Quality() QualityScore {
	c.qualityOnce.Do(func() {
		c.quality = ScoreQuality(c.t, c.Types())
	})
	return c.quality
}

// Suggestions returns the visualization recommendations.
func (c *Context) Suggestions() []Suggestion {
	c.vizOnce.Do(func() {
		c.viz = SuggestCharts(c.t, c.Types())
	})
	return c.viz
}
