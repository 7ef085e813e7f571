package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeMonthlyPivot(t *testing.T) {
	jan := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "lesson:1", LessonID: 1, Date: jan, LessonType: "Piano", Charge: money(25), Settled: money(25)},
		{ID: "lesson:2", LessonID: 2, Date: jan, LessonType: "Theory", Charge: money(15), Settled: money(5)},
		{ID: "disc:a", Date: jan, Virtual: true, Description: "Combo", Charge: money(-5)},
		{ID: "lesson:3", LessonID: 3, Date: mar, LessonType: "Piano", Charge: money(25)},
	}
	s := Summarize(entries)

	janCell := s.Months.Month(time.January)
	assert.True(t, janCell.Charged.Equal(money(35)), "25 + 15 - 5")
	assert.True(t, janCell.Settled.Equal(money(30)))

	marCell := s.Months.Month(time.March)
	assert.True(t, marCell.Charged.Equal(money(25)))
	assert.True(t, marCell.Settled.IsZero())

	assert.True(t, s.Months.Month(time.February).Charged.IsZero())

	require.Contains(t, s.ByType, "Piano")
	assert.True(t, s.ByType["Piano"].Charged.Equal(money(50)))
	assert.True(t, s.ByType["Combo"].Charged.Equal(money(-5)))

	assert.True(t, s.TotalCharged.Equal(money(60)))
	assert.True(t, s.TotalSettled.Equal(money(30)))
}

func TestSummarizeMonthsSumToTotal(t *testing.T) {
	entries := []Entry{
		{ID: "lesson:1", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), LessonType: "Violin", Charge: money(30)},
		{ID: "disc:b", Date: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), Virtual: true, Charge: money(-7)},
	}
	s := Summarize(entries)

	sum := money(0)
	for _, cell := range s.Months {
		sum = sum.Add(cell.Charged)
	}
	assert.True(t, sum.Equal(s.TotalCharged))
	assert.True(t, s.ByType[discountLabel].Charged.Equal(money(-7)), "unlabelled credit buckets under the default label")
}
