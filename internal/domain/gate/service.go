package gate

import "context"

// GateService is the decision engine around the attendance ledger.
type GateService interface {
	// Scan resolves a badge scan into exactly one outcome: gate-in, gate-out,
	// duplicate, or week-off confirmation required.
	Scan(ctx context.Context, req ScanRequest) (ScanResponse, error)

	// ListOpenSessions returns everyone currently inside with their elapsed
	// hours so far.
	ListOpenSessions(ctx context.Context) ([]OpenSessionResponse, error)

	// BulkCloseSessions closes each still-open session in the set, skipping
	// unknown or already-closed IDs.
	BulkCloseSessions(ctx context.Context, req BulkCloseRequest) (BulkCloseResponse, error)
}
