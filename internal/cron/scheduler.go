package cron

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/melodia-school/melodia-back/internal/config"
	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/internal/excel"
	"github.com/melodia-school/melodia-back/internal/ledger"
	"github.com/melodia-school/melodia-back/internal/models"
)

// StartJobs schedules the nightly invoicing export. The job is skipped
// entirely when no export directory is configured.
func StartJobs(cfg *config.Config, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	if cfg.Export.Dir != "" {
		c.AddFunc("@daily", func() {
			exportYearWorkbook(cfg, logger)
		})
	}

	c.Start()
	return c
}

func exportYearWorkbook(cfg *config.Config, logger *zap.Logger) {
	ctx := context.Background()
	year := cfg.Export.AcademicYear
	if year == "" {
		year = models.AcademicYearOf(time.Now())
	}
	from, to := models.AcademicYearBounds(year)

	students, err := db.ListStudents(ctx, 0)
	if err != nil {
		logger.Error("export: list students", zap.Error(err))
		return
	}

	var items []excel.StudentLedger
	for i := range students {
		student := students[i]
		lessons, rules, prices, err := db.LedgerInputs(ctx, student.ID, year, from, to)
		if err != nil {
			logger.Error("export: ledger inputs", zap.Uint("student_id", student.ID), zap.Error(err))
			continue
		}
		if len(lessons) == 0 {
			continue
		}
		entries, err := ledger.Resolve(lessons, rules, prices)
		if err != nil {
			logger.Error("export: resolve", zap.Uint("student_id", student.ID), zap.Error(err))
			continue
		}
		items = append(items, excel.StudentLedger{Student: &student, Entries: entries})
	}
	if len(items) == 0 {
		logger.Info("export: no ledgers to export", zap.String("year", year))
		return
	}

	f, err := excel.BuildYearWorkbook(year, items)
	if err != nil {
		logger.Error("export: build workbook", zap.Error(err))
		return
	}
	defer f.Close()

	path := filepath.Join(cfg.Export.Dir, fmt.Sprintf("invoicing-%s.xlsx", strings.ReplaceAll(year, "/", "-")))
	if err := f.SaveAs(path); err != nil {
		logger.Error("export: save workbook", zap.Error(err))
		return
	}
	logger.Info("export: workbook saved", zap.String("path", path), zap.Int("students", len(items)))
}
