package excel

// SheetConfig selects where table data lives inside a workbook
type SheetConfig struct {
	// Sheet is the worksheet to read. Empty means the first sheet in the workbook.
	Sheet string
}

// DefaultSheetConfig reads the first worksheet
func DefaultSheetConfig() SheetConfig {
	return SheetConfig{}
}
