package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiagorodrigues47/barbearia-api/internal/config"
	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/httpresp"
	"github.com/tiagorodrigues47/barbearia-api/internal/middleware"
	ucAppointment "github.com/tiagorodrigues47/barbearia-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	config *config.Config

	bookUC         *ucAppointment.Book
	updateStatusUC *ucAppointment.UpdateStatus
	listByDateUC   *ucAppointment.ListAppointmentsByDate
	listByRangeUC  *ucAppointment.ListAppointmentsByRange
	getUC          domain.Repository
}

func NewAppointmentHandler(
	cfg *config.Config,
	bookUC *ucAppointment.Book,
	updateStatusUC *ucAppointment.UpdateStatus,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByRangeUC *ucAppointment.ListAppointmentsByRange,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:         cfg,
		bookUC:         bookUC,
		updateStatusUC: updateStatusUC,
		listByDateUC:   listByDateUC,
		listByRangeUC:  listByRangeUC,
		getUC:          repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE (booking do cliente)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		BarberID:  req.BarberID,
		ClientID:  clientID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "Horário indisponível. Escolha outro horário.")
		case httperr.IsBusiness(err, "outside_working_hours"):
			httperr.BadRequest(c, "outside_working_hours", "Fora do horário de atendimento.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(dateStr, h.config.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByRange(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	loc := h.config.Location()

	start, err := parseDate(c.Param("startDate"), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
		return
	}

	end, err := parseDate(c.Param("endDate"), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data final inválida.")
		return
	}

	// intervalo inclusivo na ponta final, como o range do calendário
	out, err := h.listByRangeUC.Execute(c.Request.Context(), barberID, start, end.AddDate(0, 0, 1))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_range") {
			httperr.BadRequest(c, "invalid_range", "Período inválido.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	ap, err := h.getUC.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS (máquina de estados)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	to, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), barberID, uint(id), to)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_transition"):
			httperr.BadRequest(c, "invalid_transition", "Mudança de status não permitida.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}
