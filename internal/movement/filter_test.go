package movement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func filterFixture() []Record {
	return []Record{
		{ProductName: "a", WarehouseName: "w1", Quantity: "1", DocumentType: DocTypeInternalPurchase},
		{ProductName: "a", WarehouseName: "w2", Quantity: "2", DocumentType: DocTypeInternalPurchase},
		{ProductName: "b", WarehouseName: "w1", Quantity: "3", DocumentType: DocTypeInternalPurchase},
		{ProductName: "b", WarehouseName: "w2", Quantity: "4", DocumentType: DocTypeInternalPurchase},
	}
}

func TestFilterEmptySelectionReturnsAllRecords(t *testing.T) {
	records := filterFixture()
	matched := Filter(records, Selection{})
	require.Equal(t, records, matched)
}

func TestFilterCombinesDimensionsWithAnd(t *testing.T) {
	matched := Filter(filterFixture(), Selection{Products: []string{"a"}, Warehouses: []string{"w2"}})
	require.Len(t, matched, 1)
	require.Equal(t, "a", matched[0].ProductName)
	require.Equal(t, "w2", matched[0].WarehouseName)
}

func TestFilterMembershipIsOrWithinDimension(t *testing.T) {
	matched := Filter(filterFixture(), Selection{Products: []string{"a", "b"}})
	require.Len(t, matched, 4)
}

func TestFilterIsIdempotent(t *testing.T) {
	sel := Selection{Products: []string{"b"}, Warehouses: []string{"w1"}}
	first := Filter(filterFixture(), sel)
	second := Filter(filterFixture(), sel)
	require.Equal(t, first, second)
	require.Equal(t, NetQuantity(first), NetQuantity(second))
}

func TestFilterUnknownNameMatchesNothing(t *testing.T) {
	matched := Filter(filterFixture(), Selection{Products: []string{"y"}})
	require.Empty(t, matched)
}
