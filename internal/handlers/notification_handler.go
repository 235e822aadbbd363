package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
	"github.com/tiagorodrigues47/barbearia-api/internal/notify"
)

// ======================================================
// HANDLER — inbox durável + stream ao vivo
// ======================================================

type NotificationHandler struct {
	db  *gorm.DB
	hub *notify.Hub
}

func NewNotificationHandler(db *gorm.DB, hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{db: db, hub: hub}
}

// ======================================================
// INBOX
// ======================================================

func (h *NotificationHandler) List(c *gin.Context) {
	var notifications []models.Notification
	if err := h.db.
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao buscar notificações.")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	var count int64
	if err := h.db.
		Model(&models.Notification{}).
		Where("read = ?", false).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_count_notifications", "Erro ao buscar notificações.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Notificação inválida.")
		return
	}

	res := h.db.
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_notification", "Erro ao atualizar notificação.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.db.
		Model(&models.Notification{}).
		Where("read = ?", false).
		Update("read", true).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notifications", "Erro ao atualizar notificações.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// STREAM (SSE)
// ======================================================

// Stream entrega eventos em tempo real via Server-Sent Events.
// Se o cliente cair, o inbox durável garante que nada se perde.
func (h *NotificationHandler) Stream(c *gin.Context) {
	events, cancel := h.hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("notification", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
