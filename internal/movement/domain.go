// Package movement implements the inventory-movement engine: schema
// validation, name/code indexing, selection filtering and signed aggregation
// of stock-document lines decoded from a workbook export.
package movement

import (
	"errors"
	"fmt"
	"time"

	"github.com/stocklens/stocklens/internal/shared"
)

// Source column labels, preserved verbatim from the export format. Matching
// is exact string equality, never case- or whitespace-normalized.
const (
	ColProductName   = "نام کالا"
	ColWarehouseName = "نام انبار"
	ColProductCode   = "کد کالا"
	ColQuantity      = "مقدار"
	ColDocumentType  = "عنوان نوع سند"
)

// RequiredColumns lists the columns an export must carry to be usable.
var RequiredColumns = []string{
	ColProductName,
	ColWarehouseName,
	ColProductCode,
	ColQuantity,
	ColDocumentType,
}

// RawRow is a field-keyed row as produced by the workbook decoder.
type RawRow = map[string]string

// Record is one line of the inventory-movement export. Quantity stays raw;
// parsing happens at aggregation time so a malformed cell degrades to zero
// instead of failing ingestion.
type Record struct {
	ProductName   string `json:"productName"`
	WarehouseName string `json:"warehouseName"`
	ProductCode   string `json:"productCode"`
	Quantity      string `json:"quantity"`
	DocumentType  string `json:"documentType"`
}

// Indexes holds the derived selection data for one record set.
type Indexes struct {
	ProductNames   []string          `json:"productNames"`
	WarehouseNames []string          `json:"warehouseNames"`
	ProductCodes   map[string]string `json:"productCodes"`
}

// Selection restricts aggregation to chosen product and warehouse names. An
// empty set places no restriction on that dimension.
type Selection struct {
	Products   []string `json:"products"`
	Warehouses []string `json:"warehouses"`
}

// AppliedFilters is the Selection snapshot taken when aggregation last ran,
// kept separate from the live selection so the displayed result and its label
// always describe the same computation.
type AppliedFilters struct {
	Products   []string  `json:"products"`
	Warehouses []string  `json:"warehouses"`
	AppliedAt  time.Time `json:"appliedAt"`
}

// Dataset is the atomically-replaced unit of derived state for one decoded
// workbook.
type Dataset struct {
	ID          string          `json:"id"`
	Records     []Record        `json:"records"`
	Indexes     Indexes         `json:"indexes"`
	LastApplied *AppliedFilters `json:"lastApplied,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SchemaError reports a required column missing from the export.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("movement: required column %q missing", e.Column)
}

// UserMessage returns the user-visible message for the missing column.
func (e *SchemaError) UserMessage() string {
	return shared.MsgSchemaColumnMissing + e.Column
}

// ErrNoMatchingRows signals that the applied filters matched zero records.
// It is a user-facing warning, distinct from a computed total of zero.
var ErrNoMatchingRows = errors.New("movement: no rows match the applied filters")

// ErrDatasetNotFound indicates an unknown or expired dataset id.
var ErrDatasetNotFound = errors.New("movement: dataset not found")
