package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realDebt(lessonID uint, charge, settled float64) Entry {
	return Entry{
		ID:       "lesson:x",
		LessonID: lessonID,
		Charge:   money(charge),
		Settled:  money(settled),
	}
}

func virtualCredit(amount float64, paired [2]uint) Entry {
	return Entry{
		ID:      "disc:x",
		Charge:  money(amount).Neg(),
		Virtual: true,
		Paired:  paired,
	}
}

func cashSum(res *AllocationResult) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range res.CashDetails {
		sum = sum.Add(d.CashAmount)
	}
	return sum
}

func TestAllocateRejectsNegativeCash(t *testing.T) {
	_, err := Allocate(money(-1), nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cash", verr.Field)
}

func TestAllocateEmptyDebts(t *testing.T) {
	res, err := Allocate(money(50), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Settlements)
	assert.Empty(t, res.CashDetails)
	assert.True(t, res.Leftover.Equal(money(50)))
	assert.True(t, res.CashSpent.IsZero())
}

func TestAllocateComboScenario(t *testing.T) {
	// 35 tendered against [credit -5, Piano 25, Theory 15]: the credit adds
	// purchasing power, so both lessons settle in full and exactly 35 of
	// cash is spent.
	debts := []Entry{
		virtualCredit(5, [2]uint{1, 2}),
		realDebt(1, 25, 0),
		realDebt(2, 15, 0),
	}
	res, err := Allocate(money(35), debts)
	require.NoError(t, err)

	require.Len(t, res.Settlements, 2)
	assert.True(t, res.Settlements[0].Applied.Equal(money(25)))
	assert.True(t, res.Settlements[0].NewSettled.Equal(money(25)))
	assert.True(t, res.Settlements[1].Applied.Equal(money(15)))
	assert.True(t, res.Settlements[1].NewSettled.Equal(money(15)))

	require.Len(t, res.CashDetails, 2)
	assert.True(t, res.CashDetails[0].CashAmount.Equal(money(20)), "Piano: 20 cash + 5 discount")
	assert.True(t, res.CashDetails[1].CashAmount.Equal(money(15)))

	assert.True(t, res.CashSpent.Equal(money(35)))
	assert.True(t, res.DiscountConsumed.Equal(money(5)))
	assert.True(t, res.Leftover.IsZero())
}

func TestAllocateZeroCashOnlyVirtuals(t *testing.T) {
	debts := []Entry{virtualCredit(5, [2]uint{1, 2})}
	res, err := Allocate(decimal.Zero, debts)
	require.NoError(t, err)
	assert.Empty(t, res.Settlements)
	assert.Empty(t, res.CashDetails)
}

func TestAllocateCashConservation(t *testing.T) {
	debts := []Entry{
		virtualCredit(3, [2]uint{1, 2}),
		realDebt(1, 25, 10),
		realDebt(2, 15, 0),
		realDebt(3, 30, 0),
	}
	for _, tendered := range []float64{0, 7.5, 20, 42, 100} {
		res, err := Allocate(money(tendered), debts)
		require.NoError(t, err)
		spent := cashSum(res)
		assert.True(t, spent.LessThanOrEqual(money(tendered)),
			"tendered %v: cash details sum %s exceeds tendered", tendered, spent)
		assert.True(t, spent.Equal(res.CashSpent))
		assert.True(t, res.CashSpent.Add(res.Leftover).Equal(money(tendered).Round(2)))
	}
}

func TestAllocatePartial(t *testing.T) {
	debts := []Entry{
		realDebt(1, 25, 0),
		realDebt(2, 15, 0),
	}
	res, err := Allocate(money(30), debts)
	require.NoError(t, err)
	require.Len(t, res.Settlements, 2)
	assert.True(t, res.Settlements[0].Applied.Equal(money(25)))
	assert.True(t, res.Settlements[1].Applied.Equal(money(5)), "second lesson paid partially")
	assert.True(t, res.Leftover.IsZero())
}

func TestAllocateDiscountNeverBecomesCash(t *testing.T) {
	// Cash runs out before the credit does: the remainder settles on
	// discount alone and produces no cash detail row.
	debts := []Entry{
		virtualCredit(10, [2]uint{1, 2}),
		realDebt(1, 5, 0),
		realDebt(2, 8, 0),
	}
	res, err := Allocate(money(3), debts)
	require.NoError(t, err)

	require.Len(t, res.Settlements, 2)
	assert.True(t, res.Settlements[0].Applied.Equal(money(5)))
	assert.True(t, res.Settlements[1].Applied.Equal(money(8)))

	// 13 of debt settled with only 3 of cash.
	assert.True(t, cashSum(res).Equal(money(3)))
	assert.True(t, res.DiscountConsumed.Equal(money(10)))
}

func TestAllocateStopsWhenBudgetsExhausted(t *testing.T) {
	debts := []Entry{
		realDebt(1, 10, 0),
		realDebt(2, 10, 0),
		realDebt(3, 10, 0),
	}
	res, err := Allocate(money(10), debts)
	require.NoError(t, err)
	require.Len(t, res.Settlements, 1)
	assert.Equal(t, uint(1), res.Settlements[0].LessonID)
}

func TestAllocateSkipsSettledDebt(t *testing.T) {
	debts := []Entry{
		realDebt(1, 25, 25), // nothing left to pay
		realDebt(2, 15, 0),
	}
	res, err := Allocate(money(15), debts)
	require.NoError(t, err)
	require.Len(t, res.Settlements, 1)
	assert.Equal(t, uint(2), res.Settlements[0].LessonID)
}

func TestDebtCandidates(t *testing.T) {
	entries := []Entry{
		virtualCredit(5, [2]uint{1, 2}),
		realDebt(1, 25, 25),
		realDebt(2, 15, 0),
		realDebt(3, 30, 30),
	}
	out := DebtCandidates(entries)
	require.Len(t, out, 2)
	assert.True(t, out[0].Virtual, "credit stays while lesson 2 is still open")
	assert.Equal(t, uint(2), out[1].LessonID)
}

func TestDebtCandidatesDropsRedeemedCredit(t *testing.T) {
	// Both paired lessons fully settled by other means: the credit is
	// redeemed and must not be offered again.
	entries := []Entry{
		virtualCredit(5, [2]uint{1, 2}),
		realDebt(1, 25, 25),
		realDebt(2, 15, 15),
		realDebt(3, 30, 0),
	}
	out := DebtCandidates(entries)
	require.Len(t, out, 1)
	assert.Equal(t, uint(3), out[0].LessonID)
}
