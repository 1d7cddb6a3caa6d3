package movement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stocklens/stocklens/internal/shared"
)

func TestDescribeAllProductsAllWarehouses(t *testing.T) {
	desc := Describe(AppliedFilters{AppliedAt: time.Now()}, map[string]string{"a": "1"})
	require.Equal(t, phraseAllProducts+phraseIn+phraseAllWarehouses, desc.Title)
	require.Empty(t, desc.Items)
}

func TestDescribeSingleSelectionUsesBareNames(t *testing.T) {
	applied := AppliedFilters{
		Products:   []string{"کابل برق"},
		Warehouses: []string{"انبار مرکزی"},
	}
	desc := Describe(applied, map[string]string{"کابل برق": "1001"})

	// The common warehouse prefix is stripped for single-warehouse titles.
	require.Equal(t, "کابل برق"+phraseIn+"مرکزی", desc.Title)
	require.Equal(t, []LineItem{{Name: "کابل برق", Code: "1001"}}, desc.Items)
}

func TestDescribeMultipleSelectionsUseCountPhrases(t *testing.T) {
	applied := AppliedFilters{
		Products:   []string{"a", "b", "c"},
		Warehouses: []string{"w1", "w2"},
	}
	desc := Describe(applied, map[string]string{"a": "1", "b": "2"})

	require.Contains(t, desc.Title, "3")
	require.Contains(t, desc.Title, "2")
	require.Len(t, desc.Items, 3)
}

func TestDescribeMissingCodeFallsBackToMarker(t *testing.T) {
	applied := AppliedFilters{Products: []string{"a", "b"}}
	desc := Describe(applied, map[string]string{"a": "1"})

	require.Equal(t, "1", desc.Items[0].Code)
	require.Equal(t, shared.MsgCodeUnavailable, desc.Items[1].Code)
}

func TestDescribeNilCodeMap(t *testing.T) {
	applied := AppliedFilters{Products: []string{"a"}}
	desc := Describe(applied, nil)
	require.Equal(t, shared.MsgCodeUnavailable, desc.Items[0].Code)
}
