package timezone

import "time"

const DefaultTimezone = "Europe/Rome"

var shopLocation = mustLoad(DefaultTimezone)

func mustLoad(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Init pins the shop timezone for the process. Falls back to the default when
// the name is unknown.
func Init(tz string) {
	if IsValid(tz) {
		shopLocation = mustLoad(tz)
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(shopLocation)
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
