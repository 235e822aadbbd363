package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tiagorodrigues47/barbearia-api/internal/config"
	"github.com/tiagorodrigues47/barbearia-api/internal/handlers"
	infraRepo "github.com/tiagorodrigues47/barbearia-api/internal/infra/repository"
	"github.com/tiagorodrigues47/barbearia-api/internal/middleware"
	"github.com/tiagorodrigues47/barbearia-api/internal/notify"
	ucAppointment "github.com/tiagorodrigues47/barbearia-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	hub := notify.NewHub(log)

	var sink notify.Sink = hub
	if cfg.RedisAddr != "" {
		sink = notify.Multi{hub, notify.NewRedisSink(cfg.RedisAddr, log)}
	}

	loc := cfg.Location()

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.SlotIntervalMin,
	)

	bookUC := ucAppointment.NewBook(
		appointmentRepo,
		sink,
		log,
		loc,
		cfg.SlotIntervalMin,
		cfg.AutoConfirmBookings,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		sink,
		loc,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByRangeUC := ucAppointment.NewListAppointmentsByRange(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	scheduleHandler := handlers.NewScheduleHandler(appointmentRepo, cfg, availabilityUC)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db, hub)
	statsHandler := handlers.NewStatsHandler(db, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		bookUC,
		updateStatusUC,
		listAppointmentsByDateUC,
		listAppointmentsByRangeUC,
		appointmentRepo,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers/:barberId/schedule", scheduleHandler.Get)
		api.GET("/barbers/:barberId/slots", scheduleHandler.AvailableSlots)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/verify-code", authHandler.VerifyCode)

		// ------------------------------
		// 🔐 API PRIVADA (cliente ou barbeiro)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			// booking é feito pelo cliente logado
			secured.POST("/appointments", appointmentHandler.Create)

			// ------------------------------
			// 🔐 SÓ BARBEIRO
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireBarber())
			{
				barber.PUT("/barbers/:barberId/schedule", scheduleHandler.Update)

				barber.GET("/appointments", appointmentHandler.ListByDate)
				barber.GET("/appointments/range/:startDate/:endDate", appointmentHandler.ListByRange)
				barber.GET("/appointments/:id", appointmentHandler.Get)
				barber.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

				barber.POST("/services", serviceHandler.Create)
				barber.PUT("/services/:id", serviceHandler.Update)
				barber.DELETE("/services/:id", serviceHandler.Delete)

				barber.GET("/clients", clientHandler.List)
				barber.GET("/clients/:id", clientHandler.Get)

				barber.GET("/notifications", notificationHandler.List)
				barber.GET("/notifications/unread-count", notificationHandler.UnreadCount)
				barber.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
				barber.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
				barber.GET("/notifications/stream", notificationHandler.Stream)

				barber.POST("/auth/generate-code", authHandler.GenerateCode)
				barber.GET("/auth/confirmation-codes", authHandler.ListUnusedCodes)

				barber.GET("/stats", statsHandler.Get)
				barber.GET("/stats/detailed", statsHandler.Detailed)
			}
		}
	}
}
