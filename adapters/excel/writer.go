package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

// WriteCSV writes a table in the format LoadCSV reads
func WriteCSV(w io.Writer, table mat.Matrix) error {
	rows, cols := table.Dims()
	writer := csv.NewWriter(w)

	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(table.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX saves a table to the first sheet of a new workbook
func WriteXLSX(path string, table mat.Matrix) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, cols := table.Dims()
	for i := 0; i < rows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, cols)
		for j := 0; j < cols; j++ {
			values[j] = table.At(i, j)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

// WriteTable writes a table to path, as Excel for .xlsx and CSV otherwise
func WriteTable(path string, table mat.Matrix) error {
	if NewDataReader(path).FileType() == FileTypeXLSX {
		return WriteXLSX(path, table)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := WriteCSV(file, table); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
