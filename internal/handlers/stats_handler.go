package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tiagorodrigues47/barbearia-api/internal/config"
	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/middleware"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
)

// ======================================================
// HANDLER — painel do barbeiro
// ======================================================

type StatsHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewStatsHandler(db *gorm.DB, cfg *config.Config) *StatsHandler {
	return &StatsHandler{db: db, config: cfg}
}

// Get resume o dia do barbeiro: agenda de hoje, ocupação,
// pendências, faturamento do mês e clientes cadastrados.
func (h *StatsHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	now := time.Now().In(h.config.Location())
	dayStart, dayEnd := dayBounds(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var todayTotal int64
	if err := h.db.Model(&models.Appointment{}).
		Where("barber_id = ? AND date >= ? AND date < ? AND status <> ?",
			barberID, dayStart, dayEnd, domain.StatusCancelled).
		Count(&todayTotal).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar estatísticas.")
		return
	}

	var pending int64
	if err := h.db.Model(&models.Appointment{}).
		Where("barber_id = ? AND status = ?", barberID, domain.StatusPending).
		Count(&pending).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar estatísticas.")
		return
	}

	var monthRevenue float64
	if err := h.db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.barber_id = ? AND appointments.date >= ? AND appointments.status = ?",
			barberID, monthStart, domain.StatusCompleted).
		Scan(&monthRevenue).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar estatísticas.")
		return
	}

	var totalClients int64
	if err := h.db.Model(&models.Client{}).Count(&totalClients).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar estatísticas.")
		return
	}

	// ocupação de hoje: agendados ÷ slots do expediente
	var occupancy float64
	var wh models.WorkingHours
	err := h.db.
		Where("barber_id = ? AND weekday = ?", barberID, int(now.Weekday())).
		First(&wh).Error
	if err == nil {
		if window := len(domain.WindowSlots(&wh, h.config.SlotIntervalMin)); window > 0 {
			occupancy = float64(todayTotal) / float64(window)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"today_appointments": todayTotal,
		"today_occupancy":    occupancy,
		"pending":            pending,
		"month_revenue":      monthRevenue,
		"total_clients":      totalClients,
	})
}

// Detailed quebra o período em contagens por status + faturamento
// dos atendimentos concluídos. ?date= ancora o fim do período num
// dia específico (default: hoje).
func (h *StatsHandler) Detailed(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	loc := h.config.Location()

	anchor := time.Now().In(loc)
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := parseDate(dateStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		anchor = d
	}

	dayStart, dayEnd := dayBounds(anchor)

	var periodStart time.Time
	switch c.DefaultQuery("period", "week") {
	case "day":
		periodStart = dayStart
	case "week":
		periodStart = dayStart.AddDate(0, 0, -7)
	case "month":
		periodStart = dayStart.AddDate(0, -1, 0)
	case "year":
		periodStart = dayStart.AddDate(-1, 0, 0)
	default:
		httperr.BadRequest(c, "invalid_period", "Período inválido (day, week, month, year).")
		return
	}

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	var byStatus []statusCount
	if err := h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Where("barber_id = ? AND date >= ? AND date < ?", barberID, periodStart, dayEnd).
		Group("status").
		Scan(&byStatus).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar estatísticas.")
		return
	}

	var revenue float64
	if err := h.db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.barber_id = ? AND appointments.date >= ? AND appointments.date < ? AND appointments.status = ?",
			barberID, periodStart, dayEnd, domain.StatusCompleted).
		Scan(&revenue).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar estatísticas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period_start": periodStart.Format(domain.DateLayout),
		"period_end":   anchor.Format(domain.DateLayout),
		"by_status":    byStatus,
		"revenue":      revenue,
	})
}
