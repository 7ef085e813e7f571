package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekOf(t *testing.T) {
	cases := []struct {
		date time.Time
		want WeekKey
	}{
		// Mid-year, unambiguous.
		{time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), WeekKey{2025, 25}},
		// Friday Jan 1 2021 still belongs to ISO 2020.
		{time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), WeekKey{2020, 53}},
		// Monday Dec 30 2024 already belongs to ISO 2025.
		{time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), WeekKey{2025, 1}},
		// Jan 4 is always in week 1.
		{time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC), WeekKey{2027, 1}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, WeekOf(c.date), "date %s", c.date.Format("2006-01-02"))
	}
}

func TestWeekKeyString(t *testing.T) {
	assert.Equal(t, "2025-W03", WeekKey{2025, 3}.String())
	assert.Equal(t, "2020-W53", WeekKey{2020, 53}.String())
}

func TestSundayAndMondayStraddleWeeks(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.NotEqual(t, WeekOf(sunday), WeekOf(monday))
	assert.Equal(t, WeekOf(sunday).Week+1, WeekOf(monday).Week)
}
