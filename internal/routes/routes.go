package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbieri-app/booking-dashboard/internal/audit"
	"github.com/barbieri-app/booking-dashboard/internal/config"
	"github.com/barbieri-app/booking-dashboard/internal/handlers"
	infraRepo "github.com/barbieri-app/booking-dashboard/internal/infra/repository"
	"github.com/barbieri-app/booking-dashboard/internal/realtime"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
	"github.com/barbieri-app/booking-dashboard/internal/staff"
	"github.com/barbieri-app/booking-dashboard/internal/storage"
	ucAppointment "github.com/barbieri-app/booking-dashboard/internal/usecase/appointment"
	ucSchedule "github.com/barbieri-app/booking-dashboard/internal/usecase/schedule"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

// Deps holds the process-wide singletons main builds before the router.
type Deps struct {
	DB       *gorm.DB
	Registry *staff.Registry
	Cache    *viewcache.DayViews
	Feed     *realtime.Feed
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)
	ruleRepo := infraRepo.NewScheduleGormRepository(deps.DB)
	resolver := schedule.NewResolver(ruleRepo)

	auditDispatcher := audit.NewDispatcher(audit.New(deps.DB))
	images := storage.NewImageStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	slotsUC := ucAppointment.NewGetAvailableSlots(resolver, appointmentRepo)
	dayViewUC := ucAppointment.NewDayView(appointmentRepo, deps.Cache, deps.Registry)

	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		resolver,
		deps.Registry,
		deps.Cache,
		auditDispatcher,
		deps.Feed,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		dayViewUC,
		deps.Cache,
		auditDispatcher,
		deps.Feed,
	)

	statusUC := ucAppointment.NewUpdateStatus(appointmentRepo, deps.Cache, auditDispatcher, deps.Feed)
	payUC := ucAppointment.NewRegisterPayment(appointmentRepo, deps.Cache, auditDispatcher, deps.Feed)

	saveWeeklyUC := ucSchedule.NewSaveWeeklyRules(deps.DB)
	saveExceptionsUC := ucSchedule.NewSaveExceptions(deps.DB)
	saveHolidaysUC := ucSchedule.NewSaveHolidays(deps.DB)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		slotsUC,
		dayViewUC,
		createUC,
		rescheduleUC,
		statusUC,
		payUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		deps.DB,
		saveWeeklyUC,
		saveExceptionsUC,
		saveHolidaysUC,
		deps.Cache,
		deps.Feed,
	)

	staffHandler := handlers.NewStaffHandler(deps.DB, deps.Registry, images)
	serviceHandler := handlers.NewServiceHandler(deps.DB)
	clientHandler := handlers.NewClientHandler(deps.DB)
	transactionHandler := handlers.NewTransactionHandler(appointmentRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// STAFF
		// ------------------------------
		api.GET("/barbers", staffHandler.List)
		api.POST("/barbers/:id/image", staffHandler.UploadPortrait)

		api.GET("/barbers/:id/slots", appointmentHandler.Slots)
		api.GET("/barbers/:id/appointments", appointmentHandler.DayView)

		// ------------------------------
		// SCHEDULE CONFIGURATION
		// ------------------------------
		api.GET("/barbers/:id/availability", scheduleHandler.ListAvailability)
		api.PUT("/barbers/:id/availability", scheduleHandler.SaveAvailability)

		api.GET("/barbers/:id/exceptions", scheduleHandler.ListExceptions)
		api.PUT("/barbers/:id/exceptions", scheduleHandler.SaveExceptions)

		api.GET("/barbers/:id/holidays", scheduleHandler.ListHolidays)
		api.PUT("/barbers/:id/holidays", scheduleHandler.SaveHolidays)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.POST("/appointments/:id/pay", appointmentHandler.Pay)

		// ------------------------------
		// CATALOG / CASH REGISTER / RUBRICA
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/transactions", transactionHandler.ListForDay)

		api.GET("/rubrica", clientHandler.List)
		api.POST("/rubrica", clientHandler.Create)
		api.GET("/rubrica/:id", clientHandler.Appointments)

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
