package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/gate"
)

// GateJobs closes sessions whose owner never scanned out. Stale sessions go
// through the same bulk-close path as the manual operation, so the overtime
// rule and the per-session openness re-check apply unchanged.
type GateJobs struct {
	sessionRepo gate.SessionRepository
	gateService gate.GateService
	staleAfter  time.Duration
}

func NewGateJobs(sessionRepo gate.SessionRepository, gateService gate.GateService, staleAfter time.Duration) *GateJobs {
	return &GateJobs{
		sessionRepo: sessionRepo,
		gateService: gateService,
		staleAfter:  staleAfter,
	}
}

func (j *GateJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_sessions", 1*time.Hour, j.AutoCloseStaleSessions)
}

func (j *GateJobs) AutoCloseStaleSessions(ctx context.Context) error {
	cutoff := time.Now().Add(-j.staleAfter)

	staleIDs, err := j.sessionRepo.ListStaleOpenIDs(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale sessions: %w", err)
	}

	if len(staleIDs) == 0 {
		return nil
	}

	result, err := j.gateService.BulkCloseSessions(ctx, gate.BulkCloseRequest{SessionIDs: staleIDs})
	if err != nil {
		return fmt.Errorf("failed to bulk close stale sessions: %w", err)
	}

	slog.Info("Cron: Auto-closed stale sessions", "count", result.ClosedCount)
	return nil
}
