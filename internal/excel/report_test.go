package excel

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodia-school/melodia-back/internal/ledger"
	"github.com/melodia-school/melodia-back/internal/models"
)

func TestBuildStudentWorkbook(t *testing.T) {
	student := &models.Student{ID: 7, FirstName: "Anna", LastName: "Rossi"}
	jan := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	entries := []ledger.Entry{
		{ID: "disc:2026-W03:1+2", Date: jan, Virtual: true, Description: "Combo", Charge: decimal.NewFromInt(-5)},
		{ID: "lesson:1", LessonID: 1, Date: jan, LessonType: "Piano", Charge: decimal.NewFromInt(25), Settled: decimal.NewFromInt(10)},
	}

	f, err := BuildStudentWorkbook(student, "2025/2026", entries)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Contains(t, sheets, "7 Rossi")
	require.Contains(t, sheets, "7 Rossi riepilogo")

	v, err := f.GetCellValue("7 Rossi", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Combo", v, "virtual entry comes first on its date")

	charge, err := f.GetCellValue("7 Rossi", "C3")
	require.NoError(t, err)
	assert.Equal(t, "25", charge)

	month, err := f.GetCellValue("7 Rossi riepilogo", "A2")
	require.NoError(t, err)
	assert.Equal(t, "January", month)

	total, err := f.GetCellValue("7 Rossi riepilogo", "B15")
	require.NoError(t, err)
	assert.Equal(t, "20", total, "25 charge - 5 discount")
}

func TestSheetNameTruncated(t *testing.T) {
	s := &models.Student{ID: 12345, LastName: "Averylongfamilynameindeedoverflow"}
	name := sheetName(s, " riepilogo")
	assert.LessOrEqual(t, len(name), 31)
}
