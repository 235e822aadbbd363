package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "in_progress", "completed", "cancelled"} {
		got, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	_, err := ParseStatus("done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanTransition_AllowedPaths(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
	}

	for _, tc := range allowed {
		assert.NoError(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransition_RejectedPaths(t *testing.T) {
	rejected := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusInProgress},
		{StatusCompleted, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusConfirmed, StatusPending},
	}

	for _, tc := range rejected {
		err := CanTransition(tc.from, tc.to)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}

func TestConfirm_StampsTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusPending)}

	assert.NoError(t, Confirm(ap, now))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, now, *ap.ConfirmedAt)
}

func TestCancel_StampsTimestamp(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	assert.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.NotNil(t, ap.CancelledAt)
}

func TestTransition_FullLifecycle(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusPending)}

	assert.NoError(t, Transition(ap, StatusConfirmed, now))
	assert.NoError(t, Transition(ap, StatusInProgress, now))
	assert.NoError(t, Transition(ap, StatusCompleted, now))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.NotNil(t, ap.ConfirmedAt)
	assert.NotNil(t, ap.CompletedAt)
}

func TestTransition_TerminalIsFrozen(t *testing.T) {
	now := time.Now()

	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		for _, to := range []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled} {
			ap := &models.Appointment{Status: string(terminal)}
			err := Transition(ap, to, now)
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s", terminal, to)
		}
	}
}
