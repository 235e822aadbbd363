package appointment

import (
	"context"
	"time"

	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
	"github.com/tiagorodrigues47/barbearia-api/internal/notify"
)

type UpdateStatus struct {
	repo domain.Repository
	sink notify.Sink
	loc  *time.Location
}

func NewUpdateStatus(repo domain.Repository, sink notify.Sink, loc *time.Location) *UpdateStatus {
	return &UpdateStatus{repo: repo, sink: sink, loc: loc}
}

// Execute aplica uma transição da máquina de estados sobre um
// agendamento do barbeiro. Transição inválida é reportada ao
// chamador, nunca repetida. Cancelar libera o slot imediatamente
// (o filtro do ledger olha o status vivo).
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := time.Now().In(uc.loc)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if to == domain.StatusConfirmed {
		ap.NotificationRead = true
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// confirmar um pedido marca a notificação de origem como lida;
	// só depois da transição persistida, para não deixar a notificação
	// lida com o agendamento ainda pendente
	if to == domain.StatusConfirmed {
		if err := uc.repo.MarkNotificationReadByAppointment(ctx, ap.ID); err != nil {
			return nil, err
		}
	}

	// cancelamento vai para o canal ao vivo: o slot reabriu e os
	// painéis abertos precisam recarregar a agenda
	if to == domain.StatusCancelled {
		uc.sink.Publish(notify.Event{
			Type:          notify.TypeAppointmentCancelled,
			AppointmentID: ap.ID,
			Date:          ap.Date.Format("02/01/2006"),
			Time:          ap.Date.Format(domain.TimeLayout),
			Timestamp:     now,
		})
	}

	return ap, nil
}
