package appointment

import "github.com/barbieri-app/booking-dashboard/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// Statuses keep the Italian labels the dashboard displays.
type Status string

const (
	StatusPending   Status = "in attesa"
	StatusConfirmed Status = "confermato"
	StatusNoShow    Status = "assente"
	StatusCancelled Status = "cancellato"
	StatusPaid      Status = "pagato"
)

// IsTerminal: cancelled and paid appointments never change again.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusPaid
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusNoShow, StatusCancelled, StatusPaid:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanTransition guards every status update, including the cash-register's move
// to "pagato".
func CanTransition(current, next Status) error {
	if !IsValidStatus(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule: only live appointments can be dragged to a new time.
func CanReschedule(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
