package profile

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablewise/tablewise/internal/table"
)

func TestDetectOutliersIQRRule(t *testing.T) {
	tbl := numericTable("10", "11", "12", "13", "10", "12", "11", "100")
	stats := ComputeStats(tbl, InferTypes(tbl))
	outliers := DetectOutliers(tbl, stats)
	require.Contains(t, outliers, 0)

	o := outliers[0]
	assert.Equal(t, 1, o.Count)
	assert.Equal(t, []float64{100}, o.Values)
	// Fences: q1=11, q3=13, iqr=2 → [8, 16].
	assert.Equal(t, 8.0, o.LowerBound)
	assert.Equal(t, 16.0, o.UpperBound)
	// The 100 sits in the 8th data row: 1-indexed with the header as row 1.
	assert.Equal(t, []int{9}, o.Rows)
	assert.InDelta(t, 12.5, o.Percentage, 1e-9)
}

func TestDetectOutliersSkipsConstantColumns(t *testing.T) {
	tbl := numericTable("5", "5", "5", "5", "5", "5")
	stats := ComputeStats(tbl, InferTypes(tbl))
	require.Equal(t, 0.0, stats[0].IQR)

	outliers := DetectOutliers(tbl, stats)
	assert.Empty(t, outliers)
}

func TestDetectOutliersNoFlagsInsideFences(t *testing.T) {
	tbl := numericTable("10", "12", "14", "16", "18", "20", "22", "24")
	stats := ComputeStats(tbl, InferTypes(tbl))
	outliers := DetectOutliers(tbl, stats)
	assert.Empty(t, outliers)
}

func TestDetectOutliersSampleCap(t *testing.T) {
	rows := make([][]string, 0, 91)
	for i := 1; i <= 80; i++ {
		rows = append(rows, []string{strconv.Itoa(i)})
	}
	for i := 0; i < 11; i++ {
		rows = append(rows, []string{"1000"})
	}
	tbl := table.New([]string{"n"}, rows)

	stats := ComputeStats(tbl, InferTypes(tbl))
	require.Greater(t, stats[0].IQR, 0.0)

	outliers := DetectOutliers(tbl, stats)
	require.Contains(t, outliers, 0)
	o := outliers[0]
	assert.Equal(t, 11, o.Count)
	assert.Len(t, o.Values, 10)
	assert.Len(t, o.Rows, 10)
	// First flagged value sits at row index 80, reported as 82.
	assert.Equal(t, 82, o.Rows[0])
}
