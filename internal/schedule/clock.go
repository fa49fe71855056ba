package schedule

import (
	"fmt"
	"time"
)

// Grid constants shared by slot generation and the drag engine.
const (
	SlotMinutes     = 30
	PixelsPerMinute = 4

	DayStartMinutes = 6 * 60  // 06:00
	DayEndMinutes   = 22 * 60 // 22:00
)

// Clock strings are "HH:MM", 24-hour. Callers own validation: a malformed
// string here is a contract violation, not a recoverable error.

func MinutesOf(clock string) int {
	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')
	return h*60 + m
}

func Clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func EndClock(start string, durationMin int) string {
	return Clock(MinutesOf(start) + durationMin)
}

// SnapToGrid rounds to the nearest 30-minute multiple, half up.
func SnapToGrid(minutes int) int {
	return ((minutes + SlotMinutes/2) / SlotMinutes) * SlotMinutes
}

// ClampToDay pulls an out-of-range minute value to the nearest business-hours
// bound. Never rejects.
func ClampToDay(minutes int) int {
	if minutes < DayStartMinutes {
		return DayStartMinutes
	}
	if minutes > DayEndMinutes {
		return DayEndMinutes
	}
	return minutes
}

// Weekday returns the English day name for a "YYYY-MM-DD" date. time.Weekday
// names are fixed, so the result never depends on the system locale.
func Weekday(date string) string {
	t, _ := time.Parse("2006-01-02", date)
	return t.Weekday().String()
}
