package profile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablewise/tablewise/internal/table"
)

func TestInferTypesBasic(t *testing.T) {
	tbl := table.New(
		[]string{"id", "date", "email", "note", "blank"},
		[][]string{
			{"1", "2024-01-01", "a@example.com", "first", ""},
			{"2", "2024-01-02", "b@example.com", "second", ""},
			{"3", "2024-01-03", "c@example.com", "third", ""},
			{"4", "2024-01-04", "d@example.com", "fourth", ""},
		},
	)

	types := InferTypes(tbl)
	require.Len(t, types, 5)

	assert.Equal(t, TypeNumeric, types[0].Type)
	assert.Equal(t, TypeDate, types[1].Type)
	assert.Equal(t, "email", types[2].Type)
	assert.Equal(t, TypeText, types[3].Type)
	assert.Equal(t, TypeEmpty, types[4].Type)
}

func TestInferTypesThresholds(t *testing.T) {
	// 7 of 10 numeric is exactly 70%: not strictly greater, so text wins.
	rows := make([][]string, 10)
	for i := 0; i < 7; i++ {
		rows[i] = []string{"1"}
	}
	for i := 7; i < 10; i++ {
		rows[i] = []string{fmt.Sprintf("word%d", i)}
	}
	types := InferTypes(table.New([]string{"mixed"}, rows))
	assert.Equal(t, TypeText, types[0].Type)

	// 8 of 10 numeric crosses the threshold.
	rows[7] = []string{"8"}
	types = InferTypes(table.New([]string{"mixed"}, rows))
	assert.Equal(t, TypeNumeric, types[0].Type)
}

func TestInferTypesEmptyPlusNonEmptyEqualsTotal(t *testing.T) {
	tbl := table.New(
		[]string{"a", "b"},
		[][]string{
			{"1", "x"},
			{"", "y"},
			{"3"}, // ragged: column b reads as empty
			{" ", "z"},
		},
	)
	for _, ct := range InferTypes(tbl) {
		assert.Equal(t, ct.Total, ct.Empty+ct.NonEmpty, "column %s", ct.Name)
		assert.Equal(t, 4, ct.Total)
	}
}

func TestInferTypesCardinality(t *testing.T) {
	constant := make([][]string, 10)
	for i := range constant {
		constant[i] = []string{"same", fmt.Sprintf("v%d", i)}
	}
	types := InferTypes(table.New([]string{"const", "varied"}, constant))

	assert.Equal(t, CardinalityLow, types[0].Cardinality)
	assert.Equal(t, 1, types[0].Unique)
	assert.Equal(t, CardinalityHigh, types[1].Cardinality)
	assert.Equal(t, 10, types[1].Unique)
}

func TestInferTypesTopValues(t *testing.T) {
	rows := [][]string{
		{"red"}, {"blue"}, {"red"}, {"green"}, {"red"},
		{"blue"}, {"red"}, {"green"}, {"red"}, {"red"},
	}
	types := InferTypes(table.New([]string{"color"}, rows))
	ct := types[0]

	require.Equal(t, TypeText, ct.Type)
	require.Equal(t, CardinalityLow, ct.Cardinality)
	require.NotEmpty(t, ct.TopValues)
	assert.Equal(t, ValueCount{Value: "red", Count: 6}, ct.TopValues[0])
	assert.Equal(t, ValueCount{Value: "blue", Count: 2}, ct.TopValues[1])
	// Tie with blue broken by first appearance: blue precedes green.
	assert.Equal(t, ValueCount{Value: "green", Count: 2}, ct.TopValues[2])
}

func TestInferTypesSampleBound(t *testing.T) {
	// First 50 rows are numeric; later rows are text and must not affect
	// the type decision, only cardinality.
	rows := make([][]string, 80)
	for i := 0; i < 50; i++ {
		rows[i] = []string{fmt.Sprintf("%d", i)}
	}
	for i := 50; i < 80; i++ {
		rows[i] = []string{fmt.Sprintf("word%d", i)}
	}
	types := InferTypes(table.New([]string{"col"}, rows))
	assert.Equal(t, TypeNumeric, types[0].Type)
	assert.Equal(t, 80, types[0].Unique)
}

func TestInferTypesEmptyPct(t *testing.T) {
	tbl := table.New([]string{"a"}, [][]string{{"x"}, {""}, {"y"}})
	types := InferTypes(tbl)
	assert.Equal(t, 1, types[0].Empty)
	assert.InDelta(t, 33.3, types[0].EmptyPct, 1e-9)
}
