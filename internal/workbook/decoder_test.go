package workbook

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecodeKeysRowsByHeader(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"کد کالا", "نام کالا", "مقدار"},
		{"1001", "کابل برق", 10},
		{"2004", "کلید مینیاتوری", 3.5},
	})

	records, err := NewDecoder().Decode(content)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "کابل برق", records[0]["نام کالا"])
	require.Equal(t, "10", records[0]["مقدار"])
	require.Equal(t, "2004", records[1]["کد کالا"])
}

func TestDecodeRaggedRowsReadAsEmptyCells(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"a", "b", "c"},
		{"only-a"},
	})

	records, err := NewDecoder().Decode(content)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "only-a", records[0]["a"])
	require.Equal(t, "", records[0]["b"])
	require.Equal(t, "", records[0]["c"])
}

func TestDecodeHeaderOnlyWorkbook(t *testing.T) {
	content := buildWorkbook(t, [][]any{{"a", "b"}})

	records, err := NewDecoder().Decode(content)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestDecodeReadsFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	first := f.GetSheetName(0)
	row := []any{"col"}
	require.NoError(t, f.SetSheetRow(first, "A1", &row))
	dataRow := []any{"first-sheet"}
	require.NoError(t, f.SetSheetRow(first, "A2", &dataRow))

	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	otherRow := []any{"second-sheet"}
	require.NoError(t, f.SetSheetRow("Second", "A1", &otherRow))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := NewDecoder().Decode(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "first-sheet", records[0]["col"])
}

func TestDecodeRejectsNonWorkbookContent(t *testing.T) {
	_, err := NewDecoder().Decode([]byte("product,warehouse\na,w\n"))
	require.ErrorIs(t, err, ErrInvalidFileType)
}

func TestDecodeCorruptContainerFailsWithDecodeError(t *testing.T) {
	corrupt := append([]byte{'P', 'K', 0x03, 0x04}, []byte("not really a zip")...)
	_, err := NewDecoder().Decode(corrupt)
	require.ErrorIs(t, err, ErrDecode)
}
