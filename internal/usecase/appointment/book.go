package appointment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
	"github.com/tiagorodrigues47/barbearia-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	BarberID  uint
	ClientID  string
	ServiceID uint

	Date  string // "2006-01-02"
	Time  string // "15:04"
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo domain.Repository
	sink notify.Sink
	log  *zap.Logger

	loc         *time.Location
	intervalMin int

	// política auto-confirm: o agendamento nasce pending e é
	// confirmado na sequência pela própria criação
	autoConfirm bool
}

func NewBook(
	repo domain.Repository,
	sink notify.Sink,
	log *zap.Logger,
	loc *time.Location,
	intervalMin int,
	autoConfirm bool,
) *Book {
	return &Book{
		repo:        repo,
		sink:        sink,
		log:         log,
		loc:         loc,
		intervalMin: intervalMin,
		autoConfirm: autoConfirm,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Barbeiro / cliente / serviço existem?
	// --------------------------------------------------
	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 2. Data / hora no calendário único do sistema
	// --------------------------------------------------
	start, err := domain.ParseSlotTime(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Re-check no momento da escrita: a visão do cliente
	//    pode estar velha desde que a lista de slots foi buscada
	// --------------------------------------------------
	weekday := int(start.Weekday())
	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	requested := start.Format(domain.TimeLayout)

	if !contains(domain.WindowSlots(wh, uc.intervalMin), requested) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, uc.loc)
	aps, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.BarberID,
		dayStart,
		dayStart.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	if domain.BookedTimes(aps, uc.loc)[requested] {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 4. Check-and-insert atômico no repositório
	// --------------------------------------------------
	ap := &models.Appointment{
		BarberID:  in.BarberID,
		ClientID:  client.ID,
		ServiceID: service.ID,
		Date:      start,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Auto-confirm (flag de política)
	// --------------------------------------------------
	if uc.autoConfirm {
		now := time.Now().In(uc.loc)
		if err := domain.Confirm(ap, now); err == nil {
			if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
				return nil, err
			}
		}
	}

	// --------------------------------------------------
	// 6. Notificação durável + evento ao vivo
	// --------------------------------------------------
	uc.notifyBarber(ctx, ap, client, service, start)

	return ap, nil
}

// notifyBarber grava a notificação durável e publica o evento ao
// vivo. Nenhuma das duas coisas falha o booking: o agendamento já
// está persistido.
func (uc *Book) notifyBarber(
	ctx context.Context,
	ap *models.Appointment,
	client *models.Client,
	service *models.Service,
	start time.Time,
) {
	dateStr := start.Format("02/01/2006")
	timeStr := start.Format(domain.TimeLayout)

	message := fmt.Sprintf(
		"%s marcou %s para %s às %s",
		client.FullName(), service.Name, dateStr, timeStr,
	)

	n := &models.Notification{
		Type:          notify.TypeNewAppointment,
		Title:         "Novo Agendamento",
		Message:       message,
		AppointmentID: &ap.ID,
	}
	if err := uc.repo.CreateNotification(ctx, n); err != nil {
		uc.log.Error("booking: failed to persist notification",
			zap.Uint("appointment_id", ap.ID),
			zap.Error(err),
		)
	}

	uc.sink.Publish(notify.Event{
		Type:          notify.TypeNewAppointment,
		AppointmentID: ap.ID,
		ClientName:    client.FullName(),
		ServiceName:   service.Name,
		Date:          dateStr,
		Time:          timeStr,
		Message:       message,
		Timestamp:     time.Now().In(uc.loc),
	})
}

func contains(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
