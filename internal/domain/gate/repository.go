package gate

import (
	"context"
	"time"
)

// SessionRepository defines data access for attendance sessions.
type SessionRepository interface {
	// GetOpenByEmployee returns the employee's open session, or nil when the
	// employee is not inside.
	GetOpenByEmployee(ctx context.Context, employeeID string) (*Session, error)

	// ListOpen returns all open sessions with employee names joined, ordered
	// by gate-in time.
	ListOpen(ctx context.Context) ([]Session, error)

	// ListByDateRange returns sessions whose calendar date falls inside
	// [from, to]. No department filter: the session's department column is a
	// snapshot taken at gate-in, and report filtering goes through the
	// employee directory so later roster moves never hide past sessions.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Session, error)

	// ListStaleOpenIDs returns the IDs of open sessions whose gate-in is
	// before cutoff.
	ListStaleOpenIDs(ctx context.Context, cutoff time.Time) ([]string, error)

	// Create inserts a new session.
	Create(ctx context.Context, session Session) (Session, error)

	// Close stamps the gate-out timestamp and overtime flag on an open
	// session. Returns ErrSessionNotFound if the row is missing or already
	// closed.
	Close(ctx context.Context, id string, gateOut time.Time, overtime bool) error

	// CloseIfOpen atomically sets the gate-out timestamp on the session only
	// if it is still open, deriving the overtime flag from the stored gate-in
	// in the same statement. Returns false without error when the session
	// does not exist or was already closed, so bulk close composes with
	// concurrent individual gate-outs.
	CloseIfOpen(ctx context.Context, id string, gateOut time.Time) (bool, error)

	// DeleteAll removes every session. Administrative wipe only.
	DeleteAll(ctx context.Context) error
}
