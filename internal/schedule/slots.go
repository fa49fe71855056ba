package schedule

import "sort"

// Booking is the occupied-range view of an appointment: a start clock plus the
// duration frozen onto the row at booking time.
type Booking struct {
	Start       string
	DurationMin int
}

// OccupiedGrid marks every 30-minute grid point covered by each booking's
// [start, start+duration). A booking need not be grid-aligned; its start is
// rounded down to the covering grid point.
func OccupiedGrid(bookings []Booking) map[string]struct{} {
	occupied := make(map[string]struct{})

	for _, b := range bookings {
		start := MinutesOf(b.Start)
		end := start + b.DurationMin

		for t := (start / SlotMinutes) * SlotMinutes; t < end; t += SlotMinutes {
			occupied[Clock(t)] = struct{}{}
		}
	}

	return occupied
}

// OpenSlots walks each working interval in 30-minute steps from its start, end
// exclusive, emitting every grid point not covered by a booking. Overlapping
// intervals may yield the same time twice; duplicates are suppressed and the
// result is sorted.
func OpenSlots(intervals []Interval, bookings []Booking) []string {
	occupied := OccupiedGrid(bookings)
	seen := make(map[string]struct{})

	slots := []string{}
	for _, iv := range intervals {
		end := MinutesOf(iv.End)

		for t := MinutesOf(iv.Start); t < end; t += SlotMinutes {
			clock := Clock(t)
			if _, busy := occupied[clock]; busy {
				continue
			}
			if _, dup := seen[clock]; dup {
				continue
			}
			seen[clock] = struct{}{}
			slots = append(slots, clock)
		}
	}

	sort.Strings(slots)
	return slots
}

// RangeFree is the booking-creation check OpenSlots deliberately does not do:
// the full [start, start+duration) range must lie inside a single working
// interval and cover no occupied grid point.
func RangeFree(intervals []Interval, bookings []Booking, start string, durationMin int) bool {
	s := MinutesOf(start)
	e := s + durationMin

	inside := false
	for _, iv := range intervals {
		if s >= MinutesOf(iv.Start) && e <= MinutesOf(iv.End) {
			inside = true
			break
		}
	}
	if !inside {
		return false
	}

	occupied := OccupiedGrid(bookings)
	for t := (s / SlotMinutes) * SlotMinutes; t < e; t += SlotMinutes {
		if _, busy := occupied[Clock(t)]; busy {
			return false
		}
	}

	return true
}
