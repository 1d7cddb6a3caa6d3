// Package workbook is the boundary around the spreadsheet library. Callers
// receive the first sheet's rows as field-keyed records whose keys are the
// header-row cell values, preserved verbatim.
package workbook

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidFileType indicates the input is not an xlsx workbook.
var ErrInvalidFileType = errors.New("workbook: not an xlsx workbook")

// ErrDecode indicates the spreadsheet library could not read the input.
var ErrDecode = errors.New("workbook: decode failed")

// xlsx files are ZIP containers; checking the local file header magic rejects
// obviously wrong uploads before excelize runs.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// Decoder reads the first sheet of an xlsx workbook.
type Decoder struct{}

// NewDecoder constructs a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode returns the first sheet's data rows keyed by the header row. A
// workbook with a header row and no data rows decodes to an empty slice.
func (d *Decoder) Decode(content []byte) ([]map[string]string, error) {
	if !bytes.HasPrefix(content, zipMagic) {
		return nil, ErrInvalidFileType
	}
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrDecode)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			// Ragged rows read as empty cells past their length.
			if i < len(row) {
				record[key] = row[i]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}
