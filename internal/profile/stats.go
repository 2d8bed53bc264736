package profile

import (
	"math"
	"sort"

	"github.com/tablewise/tablewise/internal/table"
)

// NumericStats holds descriptive statistics for one numeric column.
// Quartiles are index-based selections on the sorted values
// (sorted[n/4] and sorted[3n/4]), not interpolated; downstream outlier
// fences are calibrated against this definition.
type NumericStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Sum    float64
	StdDev float64
	Q1     float64
	Q3     float64
	IQR    float64
}

// ComputeStats derives NumericStats for every column typed numeric,
// collecting every cell across the entire table that parses as a number.
// Cells that fail the numeric parse are skipped, not counted as zero.
// Columns where nothing parses are omitted. Keys are column indexes.
func ComputeStats(t *table.Table, types []ColumnType) map[int]NumericStats {
	stats := make(map[int]NumericStats)
	for _, ct := range types {
		if ct.Type != TypeNumeric {
			continue
		}
		values := collectNumbers(t, ct.Index)
		if len(values) == 0 {
			continue
		}
		stats[ct.Index] = describe(values)
	}
	return stats
}

func collectNumbers(t *table.Table, col int) []float64 {
	var values []float64
	for row := range t.Rows {
		cell, ok := t.Cell(row, col)
		if !ok {
			continue
		}
		if v, ok := ParseNumber(cell); ok {
			values = append(values, v)
		}
	}
	return values
}

func describe(values []float64) NumericStats {
	sort.Float64s(values)
	n := len(values)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, v := range values {
		sqDiff += (v - mean) * (v - mean)
	}
	// Sample variance; the n-1 divisor is clamped to 1 so a single value
	// yields zero deviation instead of dividing by zero.
	div := n - 1
	if div < 1 {
		div = 1
	}
	std := math.Sqrt(sqDiff / float64(div))

	q1, q3 := values[0], values[n-1]
	if n >= 4 {
		q1 = values[n/4]
		q3 = values[3*n/4]
	}

	return NumericStats{
		Count:  n,
		Min:    round4(values[0]),
		Max:    round4(values[n-1]),
		Mean:   round4(mean),
		Median: round4(values[n/2]),
		Sum:    round4(sum),
		StdDev: round4(std),
		Q1:     round4(q1),
		Q3:     round4(q3),
		IQR:    round4(q3 - q1),
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
