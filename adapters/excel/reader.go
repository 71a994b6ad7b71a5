package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inflammation/internal/logging"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

var logger = logging.New("DataReader")

// DataReader loads inflammation tables from CSV or Excel files. Files have no
// header: one row per patient, one column per day.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    SheetConfig
}

// NewDataReader creates a reader, picking the file type from the extension.
// Anything other than .xlsx is read as CSV.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := FileTypeCSV
	if ext == ".xlsx" {
		fileType = FileTypeXLSX
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: DefaultSheetConfig()}
}

// WithSheet sets the worksheet used for Excel files
func (r *DataReader) WithSheet(sheet SheetConfig) *DataReader {
	r.sheet = sheet
	return r
}

// FileType reports whether the reader treats its file as csv or xlsx
func (r *DataReader) FileType() string {
	return r.fileType
}

// LoadCSV loads a comma-delimited numeric table regardless of file extension.
// Errors from opening or parsing the file are returned wrapped, so callers can
// still match fs.ErrNotExist, *csv.ParseError and *strconv.NumError.
func LoadCSV(filename string) (*mat.Dense, error) {
	r := &DataReader{filePath: filename, fileType: FileTypeCSV}
	return r.ReadTable()
}

// LoadTable loads a table from a .csv or .xlsx file
func LoadTable(path string) (*mat.Dense, error) {
	return NewDataReader(path).ReadTable()
}

// ReadTable reads the file into a dense table
func (r *DataReader) ReadTable() (*mat.Dense, error) {
	logger.Debug("Starting to read %s file: %s", r.fileType, r.filePath)

	switch r.fileType {
	case FileTypeCSV:
		return r.readCSVTable()
	case FileTypeXLSX:
		return r.readExcelTable()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readCSVTable reads a CSV file
func (r *DataReader) readCSVTable() (*mat.Dense, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", r.filePath, err)
	}
	logger.Debug("CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// readExcelTable reads the configured worksheet of an Excel workbook
func (r *DataReader) readExcelTable() (*mat.Dense, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.sheet.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", r.filePath, ErrEmptyTable)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	logger.Debug("Sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	// GetRows keeps blank rows that sit between filled ones; CSV reading skips them
	nonEmpty := rows[:0]
	for _, row := range rows {
		if len(row) > 0 {
			nonEmpty = append(nonEmpty, row)
		}
	}

	return r.processRows(nonEmpty)
}

// processRows converts raw string rows into a numeric table
func (r *DataReader) processRows(rows [][]string) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", r.filePath, ErrEmptyTable)
	}

	days := len(rows[0])
	table := mat.NewDense(len(rows), days, nil)
	for i, row := range rows {
		if len(row) != days {
			return nil, fmt.Errorf("%s row %d: expected %d values, found %d", r.filePath, i+1, days, len(row))
		}
		for j, cell := range row {
			value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %d: %w", r.filePath, i+1, j+1, err)
			}
			table.Set(i, j, value)
		}
	}

	logger.Info("%s file processed (%d patients, %d days)",
		strings.ToUpper(r.fileType), len(rows), days)

	return table, nil
}
