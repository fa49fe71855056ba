package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/barbieri-app/booking-dashboard/internal/httperr"
)

// Business error codes and the HTTP status + display message each one maps to.
// Messages are what the dashboard shows, so they stay in Italian.
var businessResponses = map[string]struct {
	write   func(c *gin.Context, code, message string)
	message string
}{
	"invalid_request":       {httperr.BadRequest, "Dati non validi."},
	"invalid_date":          {httperr.BadRequest, "Data non valida."},
	"invalid_time":          {httperr.BadRequest, "Orario non valido."},
	"invalid_weekday":       {httperr.BadRequest, "Giorno della settimana non valido."},
	"invalid_status":        {httperr.BadRequest, "Stato non valido."},
	"invalid_image":         {httperr.BadRequest, "Immagine non valida."},
	"invalid_email":         {httperr.BadRequest, "Email non valida."},
	"appointment_not_found": {httperr.NotFound, "Appuntamento non trovato."},
	"service_not_found":     {httperr.NotFound, "Servizio non trovato."},
	"barber_not_found":      {httperr.NotFound, "Barbiere non trovato."},
	"client_not_found":      {httperr.NotFound, "Cliente non trovato."},
	"time_conflict":         {httperr.Conflict, "Orario non disponibile."},
	"already_paid":          {httperr.Conflict, "Appuntamento già pagato."},
	"invalid_state":         {httperr.Conflict, "Operazione non consentita in questo stato."},
}

// writeError translates a use-case error into the HTTP response. Unknown
// errors are logged and answered as 500 without leaking detail.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		if resp, ok := businessResponses[be.Code]; ok {
			resp.write(c, be.Code, resp.message)
			return
		}
		httperr.BadRequest(c, be.Code, "Richiesta non valida.")
		return
	}

	log.Printf("[handlers] unexpected error: %v", err)
	httperr.Internal(c, "internal_error", "Errore interno.")
}
