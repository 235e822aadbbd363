package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
)

func bookPending(t *testing.T, repo *fakeRepo) uint {
	t.Helper()

	repo.setHours(1, "09:00", "18:00")

	ap, err := newBookUC(repo, &fakeSink{}, false).Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: "c1", ServiceID: 1,
		Date: monday, Time: "10:00",
	})
	require.NoError(t, err)
	return ap.ID
}

func TestUpdateStatus_ConfirmMarksNotificationRead(t *testing.T) {
	repo := newFakeRepo()
	id := bookPending(t, repo)

	uc := NewUpdateStatus(repo, &fakeSink{}, time.UTC)

	ap, err := uc.Execute(context.Background(), 1, id, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.True(t, ap.NotificationRead)

	require.Len(t, repo.notifications, 1)
	assert.True(t, repo.notifications[0].Read)
}

func TestUpdateStatus_FailedUpdateLeavesNotificationUnread(t *testing.T) {
	repo := newFakeRepo()
	id := bookPending(t, repo)

	repo.updateErr = errors.New("connection reset")

	uc := NewUpdateStatus(repo, &fakeSink{}, time.UTC)

	_, err := uc.Execute(context.Background(), 1, id, domain.StatusConfirmed)
	require.Error(t, err)

	// nada ficou pela metade: agendamento segue pendente e a
	// notificação segue não lida
	ap, err := repo.GetAppointment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)

	require.Len(t, repo.notifications, 1)
	assert.False(t, repo.notifications[0].Read)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := newFakeRepo()
	id := bookPending(t, repo)

	uc := NewUpdateStatus(repo, &fakeSink{}, time.UTC)

	// pending não pula direto para completed
	_, err := uc.Execute(context.Background(), 1, id, domain.StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	// o agendamento não mudou
	ap, err := repo.GetAppointment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
}

func TestUpdateStatus_WrongBarber(t *testing.T) {
	repo := newFakeRepo()
	id := bookPending(t, repo)

	uc := NewUpdateStatus(repo, &fakeSink{}, time.UTC)

	_, err := uc.Execute(context.Background(), 2, id, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := newFakeRepo()

	uc := NewUpdateStatus(repo, &fakeSink{}, time.UTC)

	_, err := uc.Execute(context.Background(), 1, 999, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateStatus_CompleteStampsTimestamp(t *testing.T) {
	repo := newFakeRepo()
	id := bookPending(t, repo)

	uc := NewUpdateStatus(repo, &fakeSink{}, time.UTC)

	_, err := uc.Execute(context.Background(), 1, id, domain.StatusConfirmed)
	require.NoError(t, err)

	ap, err := uc.Execute(context.Background(), 1, id, domain.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)
}
