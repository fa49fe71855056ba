package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/httpresp"
	"github.com/barbieri-app/booking-dashboard/internal/staff"
	"github.com/barbieri-app/booking-dashboard/internal/usecase/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	slots      *appointment.GetAvailableSlots
	dayView    *appointment.DayView
	create     *appointment.CreateAppointment
	reschedule *appointment.RescheduleAppointment
	status     *appointment.UpdateStatus
	pay        *appointment.RegisterPayment
}

func NewAppointmentHandler(
	slots *appointment.GetAvailableSlots,
	dayView *appointment.DayView,
	create *appointment.CreateAppointment,
	reschedule *appointment.RescheduleAppointment,
	status *appointment.UpdateStatus,
	pay *appointment.RegisterPayment,
) *AppointmentHandler {
	return &AppointmentHandler{
		slots:      slots,
		dayView:    dayView,
		create:     create,
		reschedule: reschedule,
		status:     status,
		pay:        pay,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID      string `json:"barber_id" binding:"required"` // member UUID or "any"
	ServiceID     string `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

type RescheduleRequest struct {
	Date   string  `json:"date"`
	DeltaY float64 `json:"delta_y"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RegisterPaymentRequest struct {
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Price         float64 `json:"price"`
	Discount      float64 `json:"discount"`
}

// ======================================================
// READS
// ======================================================

// GET /barbers/:id/slots?date=YYYY-MM-DD
func (h *AppointmentHandler) Slots(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_date", "Data mancante.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// GET /barbers/:id/appointments?date=YYYY-MM-DD
func (h *AppointmentHandler) DayView(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_date", "Data mancante.")
		return
	}

	views, err := h.dayView.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// CREATE
// ======================================================

// POST /appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	selector, err := staff.ParseSelector(req.BarberID)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbiere non valido.")
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Servizio non valido.")
		return
	}

	if req.CustomerEmail != "" && !validators.IsEmailDomainValid(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email", "Email non valida.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		Staff:         selector,
		ServiceID:     serviceID,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE (DRAG COMMIT)
// ======================================================

// PATCH /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appuntamento non valido.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	view, err := h.reschedule.Execute(c.Request.Context(), appointment.RescheduleInput{
		AppointmentID: id,
		Date:          req.Date,
		DeltaY:        req.DeltaY,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// STATUS
// ======================================================

// PATCH /appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appuntamento non valido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// PAYMENT
// ======================================================

// POST /appointments/:id/pay
func (h *AppointmentHandler) Pay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appuntamento non valido.")
		return
	}

	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	tr, err := h.pay.Execute(c.Request.Context(), appointment.RegisterPaymentInput{
		AppointmentID: id,
		PaymentMethod: req.PaymentMethod,
		Price:         req.Price,
		Discount:      req.Discount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, tr)
}
