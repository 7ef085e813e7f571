package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Resolve turns raw lessons plus discount rules into the ordered ledger of
// real charges and virtual discount credits.
//
// Lessons are grouped by (student, ISO week); within each group, rules are
// tried in the order supplied and greedily pair the earliest unused lesson
// of TypeA with the earliest unused lesson of TypeB. A lesson is consumed
// by at most one pairing across the whole call: the used set spans all
// rules and all weeks. Rule order is priority — the first rule to claim a
// lesson wins.
//
// The output is sorted ascending by date with virtual entries before real
// ones at the same instant, so a later allocation pass credits a discount
// before charging the lessons it offsets. For identical inputs the output
// is identical, ids included: nothing here is persisted, and both the UI
// and the allocator re-derive this ledger on every read.
func Resolve(lessons []Lesson, rules []Rule, prices PriceList) ([]Entry, error) {
	for i, r := range rules {
		if r.TypeA == "" || r.TypeB == "" {
			return nil, invalidf("rules", "rule %d has an empty lesson type", i)
		}
		if !r.Amount.GreaterThan(decimal.Zero) {
			return nil, invalidf("rules", "rule %d (%s) has non-positive amount %s", i, r.Description, r.Amount)
		}
	}

	// Chronological order drives "earliest" candidate selection; the id
	// tiebreak keeps same-day pairing deterministic.
	ordered := make([]Lesson, len(lessons))
	copy(ordered, lessons)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID < ordered[j].ID
	})

	entries := make([]Entry, 0, len(ordered))
	for _, l := range ordered {
		entries = append(entries, realEntry(l, prices))
	}

	type groupKey struct {
		student uint
		week    WeekKey
	}
	groups := make(map[groupKey][]Lesson)
	var keys []groupKey
	for _, l := range ordered {
		k := groupKey{student: l.StudentID, week: WeekOf(l.Date)}
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], l)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].student != keys[j].student {
			return keys[i].student < keys[j].student
		}
		if keys[i].week.Year != keys[j].week.Year {
			return keys[i].week.Year < keys[j].week.Year
		}
		return keys[i].week.Week < keys[j].week.Week
	})

	// One used set for the whole call: a lesson never backs two discounts,
	// whichever rule or week tries to claim it second.
	used := make(map[uint]bool)
	for _, k := range keys {
		week := groups[k]
		for _, rule := range rules {
			for {
				a, ok := earliestUnused(week, used, rule.TypeA, 0)
				if !ok {
					break
				}
				b, ok := earliestUnused(week, used, rule.TypeB, a.ID)
				if !ok {
					break
				}
				used[a.ID] = true
				used[b.ID] = true
				entries = append(entries, virtualEntry(k.week, rule, a, b))
			}
		}
	}

	sortEntries(entries)
	return entries, nil
}

func realEntry(l Lesson, prices PriceList) Entry {
	teacher := l.TeacherID
	e := Entry{
		ID:         fmt.Sprintf("lesson:%d", l.ID),
		LessonID:   l.ID,
		StudentID:  l.StudentID,
		TeacherID:  &teacher,
		SchoolID:   l.SchoolID,
		Date:       l.Date,
		LessonType: l.Type,
		Settled:    l.Settled,
	}
	charge, ok := prices[l.Type]
	if l.Type == "" || !ok {
		// Never guess a price: flag the entry and leave the charge at zero.
		e.MissingPrice = true
		e.Charge = decimal.Zero
		return e
	}
	e.Charge = charge.Round(2)
	return e
}

func virtualEntry(week WeekKey, rule Rule, a, b Lesson) Entry {
	first, second := a, b
	if second.Date.Before(first.Date) {
		first, second = second, first
	}
	return Entry{
		ID:          fmt.Sprintf("disc:%s:%d+%d", week, a.ID, b.ID),
		StudentID:   a.StudentID,
		SchoolID:    a.SchoolID,
		Date:        first.Date,
		Description: rule.Description,
		Charge:      rule.Amount.Round(2).Neg(),
		Virtual:     true,
		Paired:      [2]uint{a.ID, b.ID},
	}
}

// earliestUnused returns the earliest lesson in week matching typ that is
// not yet consumed and is not the lesson excluded (the TypeA pick, so a
// lesson never pairs with itself when a rule names the same type twice).
func earliestUnused(week []Lesson, used map[uint]bool, typ string, exclude uint) (Lesson, bool) {
	for _, l := range week {
		if l.Type == "" || l.Type != typ {
			continue
		}
		if used[l.ID] || l.ID == exclude {
			continue
		}
		return l, true
	}
	return Lesson{}, false
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Virtual != b.Virtual {
			return a.Virtual // credits first at the same instant
		}
		return a.ID < b.ID
	})
}
