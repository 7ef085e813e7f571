package ledger

import (
	"fmt"
	"time"
)

// WeekKey identifies one ISO-8601 week: Monday-start, week 1 is the week
// containing the year's first Thursday. Year is the ISO year, which differs
// from the calendar year around January 1st.
type WeekKey struct {
	Year int
	Week int
}

// WeekOf returns the ISO week containing t.
func WeekOf(t time.Time) WeekKey {
	y, w := t.ISOWeek()
	return WeekKey{Year: y, Week: w}
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}
