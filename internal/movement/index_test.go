package movement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIndexesSortsDistinctNames(t *testing.T) {
	records := []Record{
		{ProductName: "b", WarehouseName: "w2", ProductCode: "2"},
		{ProductName: "a", WarehouseName: "w1", ProductCode: "1"},
		{ProductName: "b", WarehouseName: "w1", ProductCode: "2"},
		{ProductName: "c", WarehouseName: "w2", ProductCode: "3"},
	}

	idx := BuildIndexes(records)
	require.Equal(t, []string{"a", "b", "c"}, idx.ProductNames)
	require.Equal(t, []string{"w1", "w2"}, idx.WarehouseNames)
}

func TestBuildIndexesExcludesEmptyNames(t *testing.T) {
	records := []Record{
		{ProductName: "", WarehouseName: "w1", ProductCode: "1"},
		{ProductName: "a", WarehouseName: "", ProductCode: "1"},
	}

	idx := BuildIndexes(records)
	require.Equal(t, []string{"a"}, idx.ProductNames)
	require.Equal(t, []string{"w1"}, idx.WarehouseNames)
}

func TestProductCodeMapFirstSeenWins(t *testing.T) {
	records := []Record{
		{ProductName: "a", WarehouseName: "w", ProductCode: "A"},
		{ProductName: "a", WarehouseName: "w", ProductCode: "B"},
	}

	idx := BuildIndexes(records)
	require.Equal(t, "A", idx.ProductCodes["a"])
}

func TestProductCodeMapSkipsIncompletePairs(t *testing.T) {
	records := []Record{
		{ProductName: "a", WarehouseName: "w", ProductCode: ""},
		{ProductName: "", WarehouseName: "w", ProductCode: "X"},
		{ProductName: "a", WarehouseName: "w", ProductCode: "A"},
	}

	idx := BuildIndexes(records)
	require.Equal(t, "A", idx.ProductCodes["a"])
	require.Len(t, idx.ProductCodes, 1)
}

func TestBuildIndexesEmptyInput(t *testing.T) {
	idx := BuildIndexes(nil)
	require.Empty(t, idx.ProductNames)
	require.Empty(t, idx.WarehouseNames)
	require.NotNil(t, idx.ProductCodes)
	require.Empty(t, idx.ProductCodes)
}
