// Package export serializes the current in-memory row set of a resource
// to a downloadable spreadsheet, one sheet per export.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"ferreteria.lasu.pe/internal/flatfile"
)

// WriteXLSX writes rows to w as a workbook with a single sheet. Column
// order follows columns when given; otherwise the union of row keys in
// alphabetical order.
func WriteXLSX(w io.Writer, sheet string, columns []string, rows []flatfile.Row) error {
	if len(columns) == 0 {
		columns = collectColumns(rows)
	}

	f := excelize.NewFile()
	defer f.Close() // nolint

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("error naming export sheet: %w", err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("error addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("error writing header cell: %w", err)
		}
	}

	for i, row := range rows {
		for col, name := range columns {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("error addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, row[name]); err != nil {
				return fmt.Errorf("error writing cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func collectColumns(rows []flatfile.Row) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for name := range row {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
