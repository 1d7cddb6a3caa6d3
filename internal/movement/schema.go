package movement

// ValidateSchema checks the first row's field set against RequiredColumns.
// The check is a cheap proxy for "this file matches the expected export
// format", not a per-row guarantee. An empty row set is valid.
func ValidateSchema(rows []RawRow) error {
	if len(rows) == 0 {
		return nil
	}
	first := rows[0]
	for _, col := range RequiredColumns {
		if _, ok := first[col]; !ok {
			return &SchemaError{Column: col}
		}
	}
	return nil
}

// Records converts validated raw rows into typed records, preserving order.
func Records(rows []RawRow) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{
			ProductName:   row[ColProductName],
			WarehouseName: row[ColWarehouseName],
			ProductCode:   row[ColProductCode],
			Quantity:      row[ColQuantity],
			DocumentType:  row[ColDocumentType],
		})
	}
	return records
}
