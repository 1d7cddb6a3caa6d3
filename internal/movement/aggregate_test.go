package movement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignTable(t *testing.T) {
	require.Equal(t, 1.0, Sign(DocTypeInternalPurchase))
	require.Equal(t, 1.0, Sign(DocTypeTransferReceipt))
	require.Equal(t, -1.0, Sign(DocTypeTransferDispatch))
	require.Equal(t, 0.0, Sign("برگشت از فروش"))
	require.Equal(t, 0.0, Sign(""))
	// Exact match only: a trailing space is a different label.
	require.Equal(t, 0.0, Sign(DocTypeInternalPurchase+" "))
}

func TestNetQuantitySignsEachRow(t *testing.T) {
	records := []Record{
		{ProductName: "X", WarehouseName: "W1", Quantity: "10", DocumentType: DocTypeInternalPurchase},
		{ProductName: "X", WarehouseName: "W1", Quantity: "3", DocumentType: DocTypeTransferDispatch},
	}
	require.InDelta(t, 7.0, NetQuantity(records), 0.0001)
}

func TestNetQuantityUnrecognizedTypeContributesZero(t *testing.T) {
	records := []Record{
		{Quantity: "500", DocumentType: "رسید موجودی اول دوره"},
		{Quantity: "5", DocumentType: DocTypeInternalPurchase},
	}
	require.InDelta(t, 5.0, NetQuantity(records), 0.0001)
}

func TestNetQuantityMalformedCellsDegradeToZero(t *testing.T) {
	records := []Record{
		{Quantity: "abc", DocumentType: DocTypeInternalPurchase},
		{Quantity: "", DocumentType: DocTypeInternalPurchase},
		{Quantity: "  12.5 ", DocumentType: DocTypeInternalPurchase},
		{Quantity: "1,200", DocumentType: DocTypeTransferReceipt},
		{Quantity: "5", DocumentType: DocTypeTransferDispatch},
	}
	require.InDelta(t, 1207.5, NetQuantity(records), 0.0001)
}

func TestNetQuantityEmptyInput(t *testing.T) {
	require.Zero(t, NetQuantity(nil))
}
