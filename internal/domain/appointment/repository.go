package appointment

import (
	"context"
	"time"

	"github.com/tiagorodrigues47/barbearia-api/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListWorkingHours(
		ctx context.Context,
		barberID uint,
	) ([]models.WorkingHours, error)

	ReplaceWorkingHours(
		ctx context.Context,
		barberID uint,
		entries []models.WorkingHours,
	) error

	// -------- Client / Service --------
	GetClient(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment persiste o agendamento de forma atômica:
	// o re-check do slot e o insert acontecem na mesma transação;
	// slot ocupado falha com o erro de negócio "slot_taken".
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Ledger --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Notifications --------
	CreateNotification(
		ctx context.Context,
		n *models.Notification,
	) error

	MarkNotificationReadByAppointment(
		ctx context.Context,
		appointmentID uint,
	) error
}
