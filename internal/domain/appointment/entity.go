package appointment

import (
	"github.com/barbieri-app/booking-dashboard/internal/models"
	"github.com/barbieri-app/booking-dashboard/internal/schedule"
)

// ===============================
// Domain Actions
// ===============================

func SetStatus(ap *models.Appointment, next Status) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

// MoveTo applies a committed reschedule to the in-memory record. The end time
// is implied by the frozen duration, so only date and start change.
func MoveTo(ap *models.Appointment, date, start string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.AppointmentDate = date
	ap.AppointmentTime = start
	return nil
}

// OccupiedRange is the booking's claim on the day grid.
func OccupiedRange(ap *models.Appointment) schedule.Booking {
	return schedule.Booking{
		Start:       ap.AppointmentTime,
		DurationMin: ap.DurationMin,
	}
}
