package services

import (
	"fmt"
	"time"
)

// LocalTimeToUTC combines a wall-clock date ("2006-01-02") and time ("15:04")
// with a UTC offset in hours east of UTC, and returns the absolute instant.
// Converting local time to UTC subtracts the offset: 09:00 at offset -3
// (e.g. São Paulo) is 12:00 UTC. Fractional offsets (e.g. +5.5) are supported.
func LocalTimeToUTC(date, clock string, offsetHours float64) (time.Time, error) {
	local, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid local date/time %q %q: %w", date, clock, err)
	}
	offset := time.Duration(offsetHours * float64(time.Hour))
	return local.Add(-offset).UTC(), nil
}
