package excel

import "errors"

// ErrEmptyTable is returned when a file holds no data rows
var ErrEmptyTable = errors.New("table has no rows")

// File types understood by DataReader
const (
	FileTypeCSV  = "csv"
	FileTypeXLSX = "xlsx"
)
