package profile

import "github.com/tablewise/tablewise/internal/table"

// consistencyTolerance is the fraction of unparseable cells a numeric
// column may carry before it counts as inconsistent.
const consistencyTolerance = 0.1

// QualityScore holds the three data-quality sub-scores and their
// unweighted mean, each in [0, 100].
type QualityScore struct {
	Completeness float64
	Consistency  float64
	Validity     float64
	Overall      float64
}

// ScoreQuality combines completeness (non-empty cells), consistency
// (numeric columns that actually parse as numbers), and validity (rows
// matching the header width) into a composite score. Each sub-score
// defaults to 100 when its denominator is zero, so an empty table scores
// as trivially perfect rather than undefined.
func ScoreQuality(t *table.Table, types []ColumnType) QualityScore {
	q := QualityScore{Completeness: 100, Consistency: 100, Validity: 100}

	totalCells := len(t.Headers) * len(t.Rows)
	if totalCells > 0 {
		emptyCells := 0
		for _, ct := range types {
			emptyCells += ct.Empty
		}
		q.Completeness = round1((1 - float64(emptyCells)/float64(totalCells)) * 100)
	}

	if len(t.Headers) > 0 {
		inconsistent := 0
		for _, ct := range types {
			if ct.Type != TypeNumeric {
				continue
			}
			nonNumeric, total := 0, 0
			for row := range t.Rows {
				cell, ok := t.Cell(row, ct.Index)
				if !ok {
					continue
				}
				total++
				if _, ok := ParseNumber(cell); !ok {
					nonNumeric++
				}
			}
			if total > 0 && float64(nonNumeric)/float64(total) > consistencyTolerance {
				inconsistent++
			}
		}
		q.Consistency = round1((1 - float64(inconsistent)/float64(len(t.Headers))) * 100)
	}

	if len(t.Rows) > 0 {
		badRows := 0
		for _, row := range t.Rows {
			if len(row) != len(t.Headers) {
				badRows++
			}
		}
		q.Validity = round1((1 - float64(badRows)/float64(len(t.Rows))) * 100)
	}

	q.Overall = round1((q.Completeness + q.Consistency + q.Validity) / 3)
	return q
}
