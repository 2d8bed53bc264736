package profile

import "github.com/tablewise/tablewise/internal/table"

// maxOutlierSamples caps the reported sample of offending values per column.
const maxOutlierSamples = 10

// OutlierReport flags the values of one numeric column falling outside the
// IQR fences. Rows are 1-indexed counting the header as row 1, so the first
// data row is row 2.
type OutlierReport struct {
	Count      int
	Percentage float64
	LowerBound float64
	UpperBound float64
	Values     []float64
	Rows       []int
}

// DetectOutliers applies the 1.5×IQR rule to every column with computed
// statistics. Columns with a zero IQR are skipped: any fence over a
// degenerate distribution would flag all variation. Values and rows keep
// scan order (first encountered), capped at ten per column.
func DetectOutliers(t *table.Table, stats map[int]NumericStats) map[int]OutlierReport {
	out := make(map[int]OutlierReport)
	for col, s := range stats {
		if s.IQR == 0 {
			continue
		}
		lower := s.Q1 - 1.5*s.IQR
		upper := s.Q3 + 1.5*s.IQR

		var values []float64
		var rows []int
		count := 0
		for row := range t.Rows {
			cell, ok := t.Cell(row, col)
			if !ok {
				continue
			}
			v, ok := ParseNumber(cell)
			if !ok {
				continue
			}
			if v < lower || v > upper {
				count++
				if len(values) < maxOutlierSamples {
					values = append(values, v)
					rows = append(rows, row+2)
				}
			}
		}
		if count == 0 {
			continue
		}
		out[col] = OutlierReport{
			Count:      count,
			Percentage: round1(float64(count) / float64(s.Count) * 100),
			LowerBound: round4(lower),
			UpperBound: round4(upper),
			Values:     values,
			Rows:       rows,
		}
	}
	return out
}
