// Command seed writes a small sample inventory-movement workbook for manual
// testing of the upload flow.
package main

import (
	"flag"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/stocklens/stocklens/internal/movement"
)

func main() {
	out := flag.String("out", "sample.xlsx", "output workbook path")
	flag.Parse()

	rows := [][]any{
		{movement.ColProductCode, movement.ColProductName, movement.ColWarehouseName, movement.ColQuantity, movement.ColDocumentType},
		{"1001", "کابل برق", "انبار مرکزی", 120, movement.DocTypeInternalPurchase},
		{"1001", "کابل برق", "انبار مرکزی", 20, movement.DocTypeTransferDispatch},
		{"1001", "کابل برق", "انبار شعبه غرب", 20, movement.DocTypeTransferReceipt},
		{"2004", "کلید مینیاتوری", "انبار مرکزی", 75, movement.DocTypeInternalPurchase},
		{"2004", "کلید مینیاتوری", "انبار شعبه غرب", 5, "برگشت از فروش"},
		{"3310", "لوله پلیکا", "انبار شعبه غرب", "1,200", movement.DocTypeInternalPurchase},
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			log.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Fatalf("write row %d: %v", i+1, err)
		}
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("save workbook: %v", err)
	}
	log.Printf("wrote %s (%d data rows)", *out, len(rows)-1)
}
