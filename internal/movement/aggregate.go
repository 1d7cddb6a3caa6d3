package movement

import (
	"strconv"
	"strings"
)

// Document type labels that carry aggregation meaning.
const (
	DocTypeInternalPurchase = "خرید داخلی"
	DocTypeTransferReceipt  = "رسید انتقال بین انبار"
	DocTypeTransferDispatch = "حواله انتقال بین انبار"
)

// signByDocumentType is the closed classification table. The label set in
// exports is open-ended; a map miss contributes zero. Matching is exact,
// never partial or case-insensitive.
var signByDocumentType = map[string]float64{
	DocTypeInternalPurchase: 1,
	DocTypeTransferReceipt:  1,
	DocTypeTransferDispatch: -1,
}

// Sign reports the aggregation sign for a document type label.
func Sign(documentType string) float64 {
	return signByDocumentType[documentType]
}

// NetQuantity sums signed quantities over records in their original order.
func NetQuantity(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += Sign(r.DocumentType) * parseQuantity(r.Quantity)
	}
	return total
}

// parseQuantity converts a quantity cell to a float. Malformed or missing
// values contribute zero; a single bad cell must never abort the sum.
func parseQuantity(raw string) float64 {
	s := strings.TrimSpace(raw)
	// Hand-maintained exports carry thousands separators.
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
