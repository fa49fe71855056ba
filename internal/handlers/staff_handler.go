package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/httpresp"
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/staff"
	"github.com/barbieri-app/booking-dashboard/internal/storage"
)

const maxPortraitUploadBytes = 5 << 20

// ======================================================
// HANDLER
// ======================================================

type StaffHandler struct {
	db       *gorm.DB
	registry *staff.Registry
	images   *storage.ImageStore
}

func NewStaffHandler(db *gorm.DB, registry *staff.Registry, images *storage.ImageStore) *StaffHandler {
	return &StaffHandler{
		db:       db,
		registry: registry,
		images:   images,
	}
}

// GET /barbers
func (h *StaffHandler) List(c *gin.Context) {
	httpresp.List(c, h.registry.List())
}

// ======================================================
// PORTRAIT UPLOAD
// ======================================================

// POST /barbers/:id/image
func (h *StaffHandler) UploadPortrait(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		First(&barber, "id = ?", barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbiere non trovato.")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Immagine mancante.")
		return
	}
	defer file.Close()

	if header.Size > maxPortraitUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Immagine troppo grande.")
		return
	}

	url, err := h.images.UploadPortrait(c.Request.Context(), barberID.String(), file)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(&barber).
		Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "portrait_save_failed", "Errore interno.")
		return
	}

	if err := h.registry.Reload(c.Request.Context()); err != nil {
		httperr.Internal(c, "registry_reload_failed", "Errore interno.")
		return
	}

	httpresp.OK(c, gin.H{"image_url": url})
}
