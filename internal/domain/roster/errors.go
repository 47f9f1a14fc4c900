package roster

import "errors"

var (
	ErrEmptyWorkbook    = errors.New("workbook has no data rows")
	ErrWorkbookBadShape = errors.New("workbook is missing required columns")
)
