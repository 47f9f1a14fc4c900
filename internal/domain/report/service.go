package report

import (
	"bytes"
	"context"
)

// ReportService reconstructs presence/absence/week-off status over a date
// range from the ledger and roster.
type ReportService interface {
	// Build returns the per-employee-per-date rows for the range, grouped by
	// employee with dates ascending.
	Build(ctx context.Context, req BuildRequest) (BuildResponse, error)

	// Export renders the same matrix as an .xlsx workbook and returns the
	// content plus a suggested filename.
	Export(ctx context.Context, req BuildRequest) (*bytes.Buffer, string, error)
}
