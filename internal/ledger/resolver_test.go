package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func day(d int) time.Time {
	// March 2025: the 3rd is a Monday.
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func testPrices() PriceList {
	return PriceList{
		"Piano":  money(25),
		"Theory": money(15),
		"Violin": money(30),
	}
}

func lesson(id uint, d time.Time, typ string) Lesson {
	return Lesson{ID: id, StudentID: 1, TeacherID: 10, SchoolID: 1, Date: d, Type: typ, Settled: decimal.Zero}
}

func comboRule() Rule {
	return Rule{TypeA: "Piano", TypeB: "Theory", Amount: money(5), Description: "Combo"}
}

func virtuals(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Virtual {
			out = append(out, e)
		}
	}
	return out
}

func TestResolveEmptyInputs(t *testing.T) {
	entries, err := Resolve(nil, nil, testPrices())
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = Resolve([]Lesson{lesson(1, day(3), "Piano")}, nil, testPrices())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Virtual)
	assert.True(t, entries[0].Charge.Equal(money(25)))
}

func TestResolveComboWeek(t *testing.T) {
	// Piano Monday, Theory Wednesday, same ISO week.
	lessons := []Lesson{
		lesson(1, day(3), "Piano"),
		lesson(2, day(5), "Theory"),
	}
	entries, err := Resolve(lessons, []Rule{comboRule()}, testPrices())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	vs := virtuals(entries)
	require.Len(t, vs, 1)
	v := vs[0]
	assert.True(t, v.Charge.Equal(money(-5)))
	assert.True(t, v.Date.Equal(day(3)), "reference date is the earlier lesson's")
	assert.Nil(t, v.TeacherID)
	assert.Equal(t, [2]uint{1, 2}, v.Paired)
	assert.Equal(t, "disc:2025-W10:1+2", v.ID)
	assert.Equal(t, uint(1), v.StudentID)
}

func TestResolveCrossWeekNoPairing(t *testing.T) {
	// Piano Sunday the 9th, Theory Monday the 10th: adjacent days, different
	// ISO weeks.
	lessons := []Lesson{
		lesson(1, day(9), "Piano"),
		lesson(2, day(10), "Theory"),
	}
	entries, err := Resolve(lessons, []Rule{comboRule()}, testPrices())
	require.NoError(t, err)
	assert.Empty(t, virtuals(entries))
}

func TestResolveSelfMatchExcluded(t *testing.T) {
	// A Piano+Piano rule must not pair a lesson with itself.
	rule := Rule{TypeA: "Piano", TypeB: "Piano", Amount: money(4), Description: "Double piano"}
	entries, err := Resolve([]Lesson{lesson(1, day(3), "Piano")}, []Rule{rule}, testPrices())
	require.NoError(t, err)
	assert.Empty(t, virtuals(entries))

	// Two distinct Piano lessons do pair.
	entries, err = Resolve([]Lesson{lesson(1, day(3), "Piano"), lesson(2, day(4), "Piano")}, []Rule{rule}, testPrices())
	require.NoError(t, err)
	require.Len(t, virtuals(entries), 1)
	assert.Equal(t, [2]uint{1, 2}, virtuals(entries)[0].Paired)
}

func TestResolveMultiplePairsPerWeek(t *testing.T) {
	lessons := []Lesson{
		lesson(1, day(3), "Piano"),
		lesson(2, day(3), "Theory"),
		lesson(3, day(4), "Piano"),
		lesson(4, day(5), "Theory"),
		lesson(5, day(6), "Piano"), // odd one out
	}
	entries, err := Resolve(lessons, []Rule{comboRule()}, testPrices())
	require.NoError(t, err)
	vs := virtuals(entries)
	require.Len(t, vs, 2)
	assert.Equal(t, [2]uint{1, 2}, vs[0].Paired)
	assert.Equal(t, [2]uint{3, 4}, vs[1].Paired)
}

func TestResolveNoDoubleCounting(t *testing.T) {
	// Two rules compete for the same Piano lesson; only the first claims it.
	rules := []Rule{
		comboRule(),
		{TypeA: "Piano", TypeB: "Violin", Amount: money(7), Description: "Strings"},
	}
	lessons := []Lesson{
		lesson(1, day(3), "Piano"),
		lesson(2, day(4), "Theory"),
		lesson(3, day(5), "Violin"),
	}
	entries, err := Resolve(lessons, rules, testPrices())
	require.NoError(t, err)

	seen := map[uint]int{}
	for _, v := range virtuals(entries) {
		seen[v.Paired[0]]++
		seen[v.Paired[1]]++
	}
	for id, n := range seen {
		assert.LessOrEqual(t, n, 1, "lesson %d consumed more than once", id)
	}
	require.Len(t, virtuals(entries), 1)
	assert.Equal(t, "Combo", virtuals(entries)[0].Description)
}

func TestResolveRuleOrderIsPriority(t *testing.T) {
	lessons := []Lesson{
		lesson(1, day(3), "Piano"),
		lesson(2, day(4), "Theory"),
		lesson(3, day(5), "Violin"),
	}
	rules := []Rule{
		{TypeA: "Piano", TypeB: "Violin", Amount: money(7), Description: "Strings"},
		comboRule(),
	}
	entries, err := Resolve(lessons, rules, testPrices())
	require.NoError(t, err)
	vs := virtuals(entries)
	require.Len(t, vs, 1)
	assert.Equal(t, "Strings", vs[0].Description)
}

func TestResolveOrderingLaw(t *testing.T) {
	lessons := []Lesson{
		lesson(1, day(3), "Piano"),
		lesson(2, day(3), "Theory"), // same day as the Piano: discount date collides
		lesson(3, day(6), "Violin"),
	}
	entries, err := Resolve(lessons, []Rule{comboRule()}, testPrices())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Date.Before(entries[i-1].Date), "entries out of date order")
	}
	// Virtual sorts before the real entries it shares a date with.
	assert.True(t, entries[0].Virtual)
	assert.True(t, entries[0].Date.Equal(day(3)))
}

func TestResolveIdempotent(t *testing.T) {
	lessons := []Lesson{
		lesson(1, day(3), "Piano"),
		lesson(2, day(4), "Theory"),
		lesson(3, day(5), "Piano"),
		lesson(4, day(6), "Theory"),
	}
	rules := []Rule{comboRule()}
	first, err := Resolve(lessons, rules, testPrices())
	require.NoError(t, err)
	second, err := Resolve(lessons, rules, testPrices())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveMissingPrice(t *testing.T) {
	lessons := []Lesson{
		lesson(1, day(3), "Harp"), // not in the price list
		lesson(2, day(4), ""),     // malformed row
		lesson(3, day(5), "Piano"),
	}
	entries, err := Resolve(lessons, []Rule{comboRule()}, testPrices())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].MissingPrice)
	assert.True(t, entries[0].Charge.IsZero())
	assert.True(t, entries[1].MissingPrice)
	assert.False(t, entries[2].MissingPrice)
	assert.Empty(t, virtuals(entries), "an untyped lesson matches no rule")
}

func TestResolveRejectsMalformedRules(t *testing.T) {
	_, err := Resolve(nil, []Rule{{TypeA: "Piano", TypeB: "", Amount: money(5)}}, testPrices())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = Resolve(nil, []Rule{{TypeA: "Piano", TypeB: "Theory", Amount: money(0)}}, testPrices())
	require.ErrorAs(t, err, &verr)
}

func TestResolveWeeksSpanStudents(t *testing.T) {
	// Same week, different students: no cross-student pairing.
	a := lesson(1, day(3), "Piano")
	b := lesson(2, day(4), "Theory")
	b.StudentID = 2
	entries, err := Resolve([]Lesson{a, b}, []Rule{comboRule()}, testPrices())
	require.NoError(t, err)
	assert.Empty(t, virtuals(entries))
}
