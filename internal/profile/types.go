package profile

import (
	"sort"
	"sync"

	"github.com/tablewise/tablewise/internal/table"
)

// Semantic column types assigned by type inference. Pattern-derived types
// reuse the pattern names from the cell parser.
const (
	TypeEmpty   = "empty"
	TypeNumeric = "numeric"
	TypeDate    = "date"
	TypeText    = "text"
)

// Classification thresholds. Empirical constants kept in lockstep with the
// quality and outlier calibration; not configurable at runtime.
const (
	sampleRows       = 50
	numericThreshold = 0.7
	dateThreshold    = 0.5
	patternThreshold = 0.5
)

// Cardinality buckets for a column's distinct-value ratio.
const (
	CardinalityLow    = "low"
	CardinalityMedium = "medium"
	CardinalityHigh   = "high"
)

// ValueCount is one entry of a low-cardinality frequency table.
type ValueCount struct {
	Value string
	Count int
}

// ColumnType describes one column: its dominant semantic type plus
// cardinality and emptiness metadata computed over the full column.
type ColumnType struct {
	Name        string
	Index       int
	Type        string
	Total       int
	NonEmpty    int
	Empty       int
	EmptyPct    float64
	Unique      int
	Cardinality string
	// TopValues is populated only for low-cardinality text columns.
	TopValues []ValueCount
}

// InferTypes assigns one semantic type per column by sampling up to 50 rows,
// then computes cardinality and frequency metadata over the entire column.
// The full-column pass fans out one goroutine per column; each column's
// result lands in its own slot, so output is deterministic.
func InferTypes(t *table.Table) []ColumnType {
	out := make([]ColumnType, len(t.Headers))

	var wg sync.WaitGroup
	for col := range t.Headers {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			out[col] = inferColumn(t, col)
		}(col)
	}
	wg.Wait()
	return out
}

func inferColumn(t *table.Table, col int) ColumnType {
	sample := len(t.Rows)
	if sample > sampleRows {
		sample = sampleRows
	}

	var nums, dates, empties int
	patternCounts := map[string]int{}
	for row := 0; row < sample; row++ {
		cell, ok := t.Cell(row, col)
		if !ok {
			empties++
			continue
		}
		switch v := ParseCell(cell); v.Kind {
		case KindNumber:
			nums++
		case KindDate:
			dates++
		case KindPattern:
			patternCounts[v.Pattern]++
		}
	}

	nonEmpty := sample - empties
	ct := ColumnType{
		Name:  t.Headers[col],
		Index: col,
		Type:  decideType(nonEmpty, nums, dates, patternCounts),
		Total: len(t.Rows),
	}

	// Cardinality and frequency run over the full column, not the sample,
	// so uniqueness is not under-counted on large tables.
	seen := map[string]int{}
	var order []string
	for row := range t.Rows {
		cell, ok := t.Cell(row, col)
		if !ok {
			continue
		}
		if _, dup := seen[cell]; !dup {
			order = append(order, cell)
		}
		seen[cell]++
		ct.NonEmpty++
	}
	ct.Empty = ct.Total - ct.NonEmpty
	if ct.Total > 0 {
		ct.EmptyPct = round1(float64(ct.Empty) / float64(ct.Total) * 100)
	}
	ct.Unique = len(seen)
	ct.Cardinality = cardinalityBucket(ct.Unique, ct.NonEmpty)

	if ct.Cardinality == CardinalityLow && ct.Type == TypeText && ct.Unique <= 20 {
		ct.TopValues = topValues(seen, order, 10)
	}
	return ct
}

func decideType(nonEmpty, nums, dates int, patternCounts map[string]int) string {
	if nonEmpty == 0 {
		return TypeEmpty
	}
	if float64(nums)/float64(nonEmpty) > numericThreshold {
		return TypeNumeric
	}
	if float64(dates)/float64(nonEmpty) > dateThreshold {
		return TypeDate
	}
	best, bestCount := "", 0
	for _, p := range patterns {
		if c := patternCounts[p.name]; c > bestCount {
			best, bestCount = p.name, c
		}
	}
	if best != "" && float64(bestCount)/float64(nonEmpty) > patternThreshold {
		return best
	}
	return TypeText
}

func cardinalityBucket(unique, nonEmpty int) string {
	switch {
	case float64(unique) > float64(nonEmpty)*0.8:
		return CardinalityHigh
	case float64(unique) > float64(nonEmpty)*0.2:
		return CardinalityMedium
	default:
		return CardinalityLow
	}
}

// topValues returns the n most frequent values, ties broken by first
// appearance in the column.
func topValues(counts map[string]int, order []string, n int) []ValueCount {
	firstSeen := make(map[string]int, len(order))
	for i, v := range order {
		firstSeen[v] = i
	}
	vals := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		vals = append(vals, ValueCount{Value: v, Count: c})
	}
	sort.Slice(vals, func(i, j int) bool {
		if vals[i].Count != vals[j].Count {
			return vals[i].Count > vals[j].Count
		}
		return firstSeen[vals[i].Value] < firstSeen[vals[j].Value]
	})
	if len(vals) > n {
		vals = vals[:n]
	}
	return vals
}
