package export

import (
	"fmt"

	"github.com/museoabiertos/artcat/internal/scan"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Works"

// WriteXLSX writes the records as a single-sheet XLSX workbook with the
// same columns and cleaning as the CSV output. Curators tend to open the
// run output directly in a spreadsheet, so this is offered alongside CSV.
func WriteXLSX(path string, records []scan.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, r := range records {
		for colIdx, v := range rowValues(r) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", rowIdx+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
