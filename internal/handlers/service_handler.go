package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/httpresp"
	"github.com/barbieri-app/booking-dashboard/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// GET /services
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "services_list_failed", "Errore interno.")
		return
	}

	httpresp.List(c, services)
}
