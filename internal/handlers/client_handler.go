package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/httpresp"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/timezone"
	"github.com/barbieri-app/booking-dashboard/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

// ClientHandler serves the rubrica, the shop's client directory. Entries are
// keyed by phone; bookings feed the directory automatically and the dashboard
// can add entries by hand.
type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type CreateClientRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

// ======================================================
// LIST / SEARCH
// ======================================================

// GET /rubrica?query=
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(customer_name) LIKE ? OR customer_phone LIKE ? OR LOWER(customer_email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("customer_name ASC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "clients_list_failed", "Errore interno.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE (MANUAL ENTRY)
// ======================================================

// POST /rubrica
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if req.CustomerEmail != "" && !validators.IsEmailDomainValid(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email", "Email non valida.")
		return
	}

	client := models.Client{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		CreatedFrom:   "rubrica",
	}

	if req.CustomerPhone != "" {
		var existing models.Client
		err := h.db.WithContext(c.Request.Context()).
			Where("customer_phone = ?", req.CustomerPhone).
			First(&existing).Error
		if err == nil {
			httperr.Conflict(c, "client_exists", "Cliente già in rubrica.")
			return
		}
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.Internal(c, "client_create_failed", "Errore interno.")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// APPOINTMENT HISTORY
// ======================================================

// GET /rubrica/:id
// The client card: entry plus past and upcoming appointments, split on today.
func (h *ClientHandler) Appointments(c *gin.Context) {
	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		First(&client, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente non trovato.")
		return
	}

	today := timezone.Now().Format("2006-01-02")

	var past, upcoming []models.Appointment

	base := func() *gorm.DB {
		return h.db.WithContext(c.Request.Context()).
			Preload("Service").
			Preload("Barber").
			Where("customer_phone = ?", client.CustomerPhone)
	}

	if err := base().
		Where("appointment_date < ?", today).
		Order("appointment_date DESC, appointment_time DESC").
		Limit(50).
		Find(&past).Error; err != nil {
		httperr.Internal(c, "history_list_failed", "Errore interno.")
		return
	}

	if err := base().
		Where("appointment_date >= ?", today).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&upcoming).Error; err != nil {
		httperr.Internal(c, "history_list_failed", "Errore interno.")
		return
	}

	httpresp.OK(c, gin.H{
		"client":   client,
		"past":     past,
		"upcoming": upcoming,
	})
}
