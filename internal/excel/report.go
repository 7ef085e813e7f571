// Package excel renders the invoicing workbooks the front office hands to
// students and accountants.
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/melodia-school/melodia-back/internal/ledger"
	"github.com/melodia-school/melodia-back/internal/models"
)

// StudentLedger bundles one student with their resolved ledger for export.
type StudentLedger struct {
	Student *models.Student
	Entries []ledger.Entry
}

// BuildStudentWorkbook renders one student's resolved ledger and monthly
// summary as a two-sheet workbook.
func BuildStudentWorkbook(student *models.Student, year string, entries []ledger.Entry) (*excelize.File, error) {
	return BuildYearWorkbook(year, []StudentLedger{{Student: student, Entries: entries}})
}

// BuildYearWorkbook renders one ledger sheet and one summary sheet per
// student. Sheet names carry the student id so homonyms stay distinct.
func BuildYearWorkbook(year string, items []StudentLedger) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, item := range items {
		ledgerSheet := sheetName(item.Student, "")
		if i == 0 {
			if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(ledgerSheet); err != nil {
			return nil, err
		}
		if err := writeLedgerSheet(f, ledgerSheet, year, item); err != nil {
			return nil, err
		}

		summarySheet := sheetName(item.Student, " riepilogo")
		if _, err := f.NewSheet(summarySheet); err != nil {
			return nil, err
		}
		if err := writeSummarySheet(f, summarySheet, ledger.Summarize(item.Entries)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func sheetName(s *models.Student, suffix string) string {
	// Excel caps sheet names at 31 chars.
	name := fmt.Sprintf("%d %s%s", s.ID, s.LastName, suffix)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

func writeLedgerSheet(f *excelize.File, sheet, year string, item StudentLedger) error {
	header := []interface{}{"Date", "Description", "Charge", "Settled", "Residual", "Discount"}
	for col, v := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	if err := f.SetCellValue(sheet, "H1", "Academic year"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "I1", year); err != nil {
		return err
	}

	for row, e := range item.Entries {
		desc := e.LessonType
		if e.Virtual {
			desc = e.Description
		}
		values := []interface{}{
			e.Date.Format("2006-01-02"),
			desc,
			e.Charge.InexactFloat64(),
			e.Settled.InexactFloat64(),
			e.Residual().InexactFloat64(),
			e.Virtual,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, sheet string, s ledger.Summary) error {
	for _, v := range []struct {
		cell  string
		value interface{}
	}{
		{"A1", "Month"}, {"B1", "Charged"}, {"C1", "Settled"},
	} {
		if err := f.SetCellValue(sheet, v.cell, v.value); err != nil {
			return err
		}
	}

	for i := 0; i < 12; i++ {
		row := i + 2
		cell := s.Months[i]
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), time.Month(i+1).String()); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), cell.Charged.InexactFloat64()); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), cell.Settled.InexactFloat64()); err != nil {
			return err
		}
	}

	if err := f.SetCellValue(sheet, "A15", "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B15", s.TotalCharged.InexactFloat64()); err != nil {
		return err
	}
	return f.SetCellValue(sheet, "C15", s.TotalSettled.InexactFloat64())
}
