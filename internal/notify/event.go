package notify

import "time"

const (
	TypeNewAppointment       = "new_appointment"
	TypeAppointmentCancelled = "appointment_cancelled"
)

// Event é o payload do canal ao vivo. Entrega é melhor esforço:
// quem precisa de durabilidade lê a tabela de notificações.
type Event struct {
	Type          string    `json:"type"`
	AppointmentID uint      `json:"appointmentId"`
	ClientName    string    `json:"clientName"`
	ServiceName   string    `json:"serviceName"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}
