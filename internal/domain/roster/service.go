package roster

import (
	"context"
	"io"
)

// RosterService maintains the employee directory and their assignments.
type RosterService interface {
	// UpsertBatch creates or updates an Employee plus Assignment per row,
	// keyed by badge code.
	UpsertBatch(ctx context.Context, req BatchRequest) (BatchResponse, error)

	// ImportWorkbook parses an .xlsx roster workbook into rows and feeds
	// UpsertBatch.
	ImportWorkbook(ctx context.Context, r io.Reader) (BatchResponse, error)
}
