package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingRateTable_ShapeAndLabels(t *testing.T) {
	table := ReadingRateTable()

	require.Len(t, table.Values, 3)
	require.Len(t, table.Values[0], 3)
	require.Len(t, table.Values[0][0], 3)
	assert.Equal(t, "pages/hour", table.Unit)
	assert.Equal(t, []string{"No New Concepts", "Some New Concepts", "Many New Concepts"}, table.OuterLabels)
	assert.Equal(t, []string{"Survey", "Learn", "Engage"}, table.MiddleLabels)
	assert.Equal(t, "600 Words (Monograph)", table.InnerLabels[1])
	assert.Equal(t, 47.0, table.Values[0][0][1])
}

func TestWritingRateTable_ShapeAndLabels(t *testing.T) {
	table := WritingRateTable()

	require.Len(t, table.Values, 2)
	require.Len(t, table.Values[1], 3)
	require.Len(t, table.Values[1][2], 3)
	assert.Equal(t, "hours/page", table.Unit)
	assert.Equal(t, []string{"No Drafting", "Minimal Drafting", "Extensive Drafting"}, table.MiddleLabels)
	assert.Equal(t, []string{"Reflection/Narrative", "Argument", "Research"}, table.InnerLabels)
	assert.Equal(t, 8.0, table.Values[1][2][2])
}

func TestRateTable_CopyDoesNotAliasConstants(t *testing.T) {
	table := ReadingRateTable()
	table.Values[0][0][0] = -1

	assert.Equal(t, 67.0, ReadingRateTable().Values[0][0][0])
	assert.Equal(t, 67.0, readingRates[0][0][0])
}
