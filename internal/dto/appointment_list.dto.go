package dto

import (
	"time"

	"github.com/tiagorodrigues47/barbearia-api/internal/models"
)

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	Date             time.Time `json:"date"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
	NotificationRead bool      `json:"notification_read"`
	ClientName       string    `json:"client_name"`
	ServiceName      string    `json:"service_name"`
	ServicePrice     float64   `json:"service_price"`
}

func ToAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListDTO{
			ID:               ap.ID,
			Date:             ap.Date,
			Status:           ap.Status,
			Notes:            ap.Notes,
			NotificationRead: ap.NotificationRead,
			ClientName:       ap.Client.FullName(),
			ServiceName:      ap.Service.Name,
			ServicePrice:     ap.Service.Price,
		})
	}
	return out
}
