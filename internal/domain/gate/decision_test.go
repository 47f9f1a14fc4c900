package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/roster"
)

func openSessionAt(gateIn time.Time) *Session {
	return &Session{
		ID:         "4e3f0b62-9a61-4a94-a1a0-52cf7b0f7f75",
		EmployeeID: "c0b3f36a-45f8-4a3a-bb34-5f3a1c9f21de",
		GateIn:     gateIn,
	}
}

func TestDecide_NoOpenSession(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 6, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, OutcomeGateIn, Decide(nil, now, false, false))
}

func TestDecide_DuplicateWithinWindow(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 6, 8, 30, 0, 0, time.UTC)

	open := openSessionAt(now.Add(-59 * time.Minute))
	assert.Equal(t, OutcomeDuplicateScan, Decide(open, now, false, false))
}

func TestDecide_GateOutAtWindowBoundary(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 6, 8, 30, 0, 0, time.UTC)

	// Exactly one hour elapsed is no longer a duplicate.
	open := openSessionAt(now.Add(-1 * time.Hour))
	assert.Equal(t, OutcomeGateOut, Decide(open, now, false, false))
}

func TestDecide_WeekOffRequiresConfirmation(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 6, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, OutcomeWeekOffConfirmationRequired, Decide(nil, now, true, false))
	assert.Equal(t, OutcomeGateIn, Decide(nil, now, true, true))
}

func TestDecide_OpenSessionIgnoresWeekOff(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 6, 18, 0, 0, 0, time.UTC)

	// Gating out is always allowed, rest day or not.
	open := openSessionAt(now.Add(-9 * time.Hour))
	assert.Equal(t, OutcomeGateOut, Decide(open, now, true, false))
}

func TestShiftFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, roster.ShiftGeneral, ShiftFor(nil))
	assert.Equal(t, roster.ShiftNight, ShiftFor(&roster.Assignment{Shift: roster.ShiftNight}))
}

func TestIsWeekOff(t *testing.T) {
	t.Parallel()
	sunday := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)

	assignment := &roster.Assignment{WeekOff: roster.Sunday}
	assert.True(t, IsWeekOff(assignment, sunday))
	assert.False(t, IsWeekOff(assignment, monday))
	assert.False(t, IsWeekOff(nil, sunday))
}
