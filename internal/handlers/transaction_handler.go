package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barbieri-app/booking-dashboard/internal/domain/appointment"
	"github.com/barbieri-app/booking-dashboard/internal/httperr"
	"github.com/barbieri-app/booking-dashboard/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

// TransactionHandler serves the cash-register day summary.
type TransactionHandler struct {
	repo domain.Repository
}

func NewTransactionHandler(repo domain.Repository) *TransactionHandler {
	return &TransactionHandler{repo: repo}
}

// GET /transactions?date=YYYY-MM-DD
func (h *TransactionHandler) ListForDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_date", "Data mancante.")
		return
	}

	transactions, err := h.repo.ListTransactionsForDay(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "transactions_list_failed", "Errore interno.")
		return
	}

	total := 0.0
	for _, tr := range transactions {
		total += tr.Price - tr.Discount
	}

	httpresp.OK(c, gin.H{
		"data":  transactions,
		"total": total,
		"count": len(transactions),
	})
}
