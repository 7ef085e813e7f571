package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AcademicYearOf returns the "YYYY/YYYY+1" label for the school year
// containing t. The year runs September through August.
func AcademicYearOf(t time.Time) string {
	y := t.Year()
	if t.Month() >= time.September {
		return fmt.Sprintf("%d/%d", y, y+1)
	}
	return fmt.Sprintf("%d/%d", y-1, y)
}

// AcademicYearBounds returns the first and last day covered by an academic
// year label. Malformed labels yield zero times, which query layers treat
// as "no bound".
func AcademicYearBounds(year string) (from, to time.Time) {
	parts := strings.SplitN(year, "/", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}
	}
	from = time.Date(start, time.September, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(start+1, time.August, 31, 0, 0, 0, 0, time.UTC)
	return from, to
}
