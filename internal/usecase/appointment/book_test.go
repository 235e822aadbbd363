package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/notify"
)

// 2026-03-02 é uma segunda-feira
const monday = "2026-03-02"

func newBookUC(repo *fakeRepo, sink notify.Sink, autoConfirm bool) *Book {
	return NewBook(repo, sink, zap.NewNop(), time.UTC, 30, autoConfirm)
}

func TestBook_Success_AutoConfirm(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")
	sink := &fakeSink{}

	uc := newBookUC(repo, sink, true)

	ap, err := uc.Execute(context.Background(), BookInput{
		BarberID:  1,
		ClientID:  "c1",
		ServiceID: 1,
		Date:      monday,
		Time:      "10:00",
		Notes:     "primeira vez",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, "10:00", ap.Date.Format(domain.TimeLayout))

	// notificação durável + evento ao vivo
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, notify.TypeNewAppointment, repo.notifications[0].Type)
	assert.Contains(t, repo.notifications[0].Message, "João Silva")
	assert.Contains(t, repo.notifications[0].Message, "Corte de Cabelo")

	events := sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, ap.ID, events[0].AppointmentID)
	assert.Equal(t, "10:00", events[0].Time)
}

func TestBook_WithoutAutoConfirm_StaysPending(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")

	uc := newBookUC(repo, &fakeSink{}, false)

	ap, err := uc.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: "c1", ServiceID: 1,
		Date: monday, Time: "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Nil(t, ap.ConfirmedAt)
}

func TestBook_OutsideWorkingHours(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")

	uc := newBookUC(repo, &fakeSink{}, true)

	_, err := uc.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: "c1", ServiceID: 1,
		Date: monday, Time: "08:00",
	})

	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestBook_OffGridTimeIsRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")

	uc := newBookUC(repo, &fakeSink{}, true)

	// 10:10 não é um candidato da grade de 30 min ancorada em 09:00
	_, err := uc.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: "c1", ServiceID: 1,
		Date: monday, Time: "10:10",
	})

	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestBook_ClosedDay(t *testing.T) {
	repo := newFakeRepo() // nenhum expediente cadastrado

	uc := newBookUC(repo, &fakeSink{}, true)

	_, err := uc.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: "c1", ServiceID: 1,
		Date: monday, Time: "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestBook_InvalidDateOrTime(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")

	uc := newBookUC(repo, &fakeSink{}, true)

	for _, tc := range []struct{ date, hour string }{
		{"02/03/2026", "10:00"},
		{monday, "10h00"},
		{"", "10:00"},
	} {
		_, err := uc.Execute(context.Background(), BookInput{
			BarberID: 1, ClientID: "c1", ServiceID: 1,
			Date: tc.date, Time: tc.hour,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"), "%s %s", tc.date, tc.hour)
	}
}

func TestBook_UnknownEntities(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")

	uc := newBookUC(repo, &fakeSink{}, true)

	_, err := uc.Execute(context.Background(), BookInput{
		BarberID: 99, ClientID: "c1", ServiceID: 1, Date: monday, Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	_, err = uc.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: "nope", ServiceID: 1, Date: monday, Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	_, err = uc.Execute(context.Background(), BookInput{
		BarberID: 1, ClientID: "c1", ServiceID: 99, Date: monday, Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestBook_SlotTaken(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")

	uc := newBookUC(repo, &fakeSink{}, true)

	in := BookInput{BarberID: 1, ClientID: "c1", ServiceID: 1, Date: monday, Time: "10:00"}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestBook_ConcurrentSameSlot_OnlyOneWins(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")

	uc := newBookUC(repo, &fakeSink{}, false)

	const attempts = 8

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), BookInput{
				BarberID: 1, ClientID: "c1", ServiceID: 1,
				Date: monday, Time: "14:00",
			})
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, "slot_taken"):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, repo.appointments, 1)
}

func TestBook_CancelledSlotCanBeRebooked(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(1, "09:00", "18:00")

	sink := &fakeSink{}
	bookUC := newBookUC(repo, sink, true)
	statusUC := NewUpdateStatus(repo, sink, time.UTC)

	in := BookInput{BarberID: 1, ClientID: "c1", ServiceID: 1, Date: monday, Time: "11:00"}

	first, err := bookUC.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = statusUC.Execute(context.Background(), 1, first.ID, domain.StatusCancelled)
	require.NoError(t, err)

	// o cancelamento também vai para o canal ao vivo
	events := sink.all()
	require.Len(t, events, 2)
	assert.Equal(t, notify.TypeAppointmentCancelled, events[1].Type)
	assert.Equal(t, first.ID, events[1].AppointmentID)

	// o slot volta a ficar livre na hora
	second, err := bookUC.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
