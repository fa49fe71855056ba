package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/httpresp"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/realtime"
	schedulecfg "github.com/barbieri-app/booking-dashboard/internal/usecase/schedule"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

// ======================================================
// HANDLER
// ======================================================

// ScheduleHandler serves the staff configuration pages: weekly availability,
// per-date exceptions and holidays. Saves replace the whole scope, so each PUT
// drops every cached day view.
type ScheduleHandler struct {
	db *gorm.DB

	saveWeekly     *schedulecfg.SaveWeeklyRules
	saveExceptions *schedulecfg.SaveExceptions
	saveHolidays   *schedulecfg.SaveHolidays

	cache *viewcache.DayViews
	feed  *realtime.Feed
}

func NewScheduleHandler(
	db *gorm.DB,
	saveWeekly *schedulecfg.SaveWeeklyRules,
	saveExceptions *schedulecfg.SaveExceptions,
	saveHolidays *schedulecfg.SaveHolidays,
	cache *viewcache.DayViews,
	feed *realtime.Feed,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:             db,
		saveWeekly:     saveWeekly,
		saveExceptions: saveExceptions,
		saveHolidays:   saveHolidays,
		cache:          cache,
		feed:           feed,
	}
}

func barberIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return uuid.Nil, false
	}
	return id, true
}

// ======================================================
// WEEKLY AVAILABILITY
// ======================================================

// GET /barbers/:id/availability
func (h *ScheduleHandler) ListAvailability(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var rules []models.AvailabilityRule
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", barberID).
		Order("weekday ASC, start_time ASC").
		Find(&rules).Error; err != nil {
		httperr.Internal(c, "availability_list_failed", "Errore interno.")
		return
	}

	httpresp.List(c, rules)
}

// PUT /barbers/:id/availability
func (h *ScheduleHandler) SaveAvailability(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Rules []schedulecfg.WeeklyRuleInput `json:"rules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if err := h.saveWeekly.Execute(c.Request.Context(), barberID, req.Rules); err != nil {
		writeError(c, err)
		return
	}

	h.afterRuleChange(c, barberID, realtime.TableAvailability)
	httpresp.OK(c, gin.H{"saved": len(req.Rules)})
}

// ======================================================
// DATE EXCEPTIONS
// ======================================================

// GET /barbers/:id/exceptions?date=YYYY-MM-DD
func (h *ScheduleHandler) ListExceptions(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", barberID)

	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var exceptions []models.DateException
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&exceptions).Error; err != nil {
		httperr.Internal(c, "exceptions_list_failed", "Errore interno.")
		return
	}

	httpresp.List(c, exceptions)
}

// PUT /barbers/:id/exceptions
func (h *ScheduleHandler) SaveExceptions(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Date      string                      `json:"date" binding:"required"`
		Intervals []schedulecfg.IntervalInput `json:"intervals"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if err := h.saveExceptions.Execute(c.Request.Context(), barberID, req.Date, req.Intervals); err != nil {
		writeError(c, err)
		return
	}

	h.afterRuleChange(c, barberID, realtime.TableExceptions)
	httpresp.OK(c, gin.H{"saved": len(req.Intervals)})
}

// ======================================================
// HOLIDAYS
// ======================================================

// GET /barbers/:id/holidays
func (h *ScheduleHandler) ListHolidays(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var holidays []models.Holiday
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&holidays).Error; err != nil {
		httperr.Internal(c, "holidays_list_failed", "Errore interno.")
		return
	}

	httpresp.List(c, holidays)
}

// PUT /barbers/:id/holidays
func (h *ScheduleHandler) SaveHolidays(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Dates []string `json:"dates"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if err := h.saveHolidays.Execute(c.Request.Context(), barberID, req.Dates); err != nil {
		writeError(c, err)
		return
	}

	h.afterRuleChange(c, barberID, realtime.TableHolidays)
	httpresp.OK(c, gin.H{"saved": len(req.Dates)})
}

// afterRuleChange: a rule save can affect any date, so the whole view cache
// goes, and subscribers get an unscoped change event.
func (h *ScheduleHandler) afterRuleChange(c *gin.Context, barberID uuid.UUID, table string) {
	h.cache.Purge()
	h.feed.Publish(c.Request.Context(), realtime.Event{
		Table:    table,
		BarberID: barberID.String(),
	})
}
