package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiagorodrigues47/barbearia-api/internal/config"
	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/middleware"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
	ucAppointment "github.com/tiagorodrigues47/barbearia-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER — expediente + slots
// ======================================================

type ScheduleHandler struct {
	repo         domain.Repository
	config       *config.Config
	availability *ucAppointment.GetAvailability
}

func NewScheduleHandler(
	repo domain.Repository,
	cfg *config.Config,
	availability *ucAppointment.GetAvailability,
) *ScheduleHandler {
	return &ScheduleHandler{
		repo:         repo,
		config:       cfg,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	IsWorking bool   `json:"is_working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// ======================================================
// WORKING HOURS
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID, ok := parseBarberID(c)
	if !ok {
		return
	}

	hours, err := h.repo.ListWorkingHours(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update substitui a agenda semanal inteira do barbeiro.
// Dia com is_working=false não precisa de start/end.
func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID, ok := parseBarberID(c)
	if !ok {
		return
	}

	// só o próprio barbeiro altera a própria agenda
	if c.MustGet(middleware.ContextBarberID).(uint) != barberID {
		httperr.Forbidden(c, "not_your_schedule", "Agenda de outro barbeiro.")
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	entries, errCode := buildScheduleEntries(barberID, req.Days)
	if errCode != "" {
		httperr.BadRequest(c, errCode, scheduleErrorMessage(errCode))
		return
	}

	if err := h.repo.ReplaceWorkingHours(c.Request.Context(), barberID, entries); err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar horários.")
		return
	}

	h.Get(c)
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *ScheduleHandler) AvailableSlots(c *gin.Context) {
	barberID, ok := parseBarberID(c)
	if !ok {
		return
	}

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

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_slots", "Erro ao buscar horários disponíveis.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// ======================================================
// HELPERS
// ======================================================

// buildScheduleEntries valida a agenda inteira antes do replace:
// cada dia da semana aparece no máximo uma vez (duplicata tornaria a
// leitura do expediente ambígua) e dia aberto exige janela HH:MM.
func buildScheduleEntries(barberID uint, days []WorkingDayConfig) ([]models.WorkingHours, string) {
	seen := make(map[int]bool, len(days))

	entries := make([]models.WorkingHours, 0, len(days))
	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, "invalid_weekday"
		}
		if seen[d.Weekday] {
			return nil, "duplicate_weekday"
		}
		seen[d.Weekday] = true

		if d.IsWorking && !validHM(d.StartTime, d.EndTime) {
			return nil, "invalid_time_format"
		}

		entries = append(entries, models.WorkingHours{
			BarberID:  barberID,
			Weekday:   d.Weekday,
			IsWorking: d.IsWorking,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	return entries, ""
}

func scheduleErrorMessage(code string) string {
	switch code {
	case "invalid_weekday":
		return "Dia da semana inválido (0-6)."
	case "duplicate_weekday":
		return "Dia da semana repetido."
	case "invalid_time_format":
		return "Formato de hora inválido (HH:MM)."
	}
	return "Dados inválidos."
}

func parseBarberID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return 0, false
	}
	return uint(id), true
}

func validHM(times ...string) bool {
	for _, t := range times {
		if len(t) != 5 || t[2] != ':' {
			return false
		}
		hh, err1 := strconv.Atoi(t[:2])
		mm, err2 := strconv.Atoi(t[3:])
		if err1 != nil || err2 != nil || hh < 0 || hh > 23 || mm < 0 || mm > 59 {
			return false
		}
	}
	return true
}
