package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/internal/excel"
	"github.com/melodia-school/melodia-back/internal/ledger"
	"github.com/melodia-school/melodia-back/internal/models"
	"github.com/melodia-school/melodia-back/pkg/response"
)

// resolveStudentLedger loads a student's lessons, rules and price list for
// the requested academic year and runs the resolver. Every read derives the
// ledger from scratch: virtual discount entries are never persisted.
func resolveStudentLedger(ctx context.Context, c *gin.Context, studentID uint) ([]ledger.Entry, string, error) {
	year := c.Query("year")
	if year == "" {
		year = models.AcademicYearOf(time.Now())
	}
	from, to := models.AcademicYearBounds(year)

	lessons, rules, prices, err := db.LedgerInputs(ctx, studentID, year, from, to)
	if err != nil {
		return nil, year, err
	}
	entries, err := ledger.Resolve(lessons, rules, prices)
	if err != nil {
		return nil, year, err
	}
	return entries, year, nil
}

func respondLedgerError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *ledger.ValidationError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "student not found")
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Error())
	default:
		logger.Error("resolve ledger", zap.Error(err))
		response.Internal(c, "failed to resolve ledger")
	}
}

// StudentLedger godoc
// @Summary      Resolved ledger for a student
// @Description  Real lesson charges plus virtual discount credits, chronological, credits first on equal dates
// @Tags         ledger
// @Produce      json
// @Param        id    path   int     true   "Student ID"
// @Param        year  query  string  false  "Academic year, e.g. 2025/2026 (default: current)"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Security     BearerAuth
// @Router       /students/{id}/ledger [get]
func StudentLedger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		entries, year, err := resolveStudentLedger(context.Background(), c, id)
		if err != nil {
			respondLedgerError(c, logger, err)
			return
		}
		response.OK(c, gin.H{"year": year, "entries": entries})
	}
}

// StudentLedgerSummary godoc
// @Summary      Monthly and per-type pivot of a student's ledger
// @Tags         ledger
// @Produce      json
// @Param        id    path   int     true   "Student ID"
// @Param        year  query  string  false  "Academic year (default: current)"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /students/{id}/ledger/summary [get]
func StudentLedgerSummary(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		entries, year, err := resolveStudentLedger(context.Background(), c, id)
		if err != nil {
			respondLedgerError(c, logger, err)
			return
		}
		response.OK(c, gin.H{"year": year, "summary": ledger.Summarize(entries)})
	}
}

// ExportStudentWorkbook godoc
// @Summary      Download a student's invoicing workbook
// @Tags         ledger
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id    path   int     true   "Student ID"
// @Param        year  query  string  false  "Academic year (default: current)"
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /students/{id}/export [get]
func ExportStudentWorkbook(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		student, err := db.GetStudent(context.Background(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "student not found")
				return
			}
			response.Internal(c, "failed to fetch student")
			return
		}
		entries, year, err := resolveStudentLedger(context.Background(), c, id)
		if err != nil {
			respondLedgerError(c, logger, err)
			return
		}

		f, err := excel.BuildStudentWorkbook(student, year, entries)
		if err != nil {
			logger.Error("build workbook", zap.Error(err))
			response.Internal(c, "failed to build workbook")
			return
		}
		defer f.Close()

		filename := fmt.Sprintf("ledger-%d-%s.xlsx", student.ID, time.Now().Format("20060102"))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Status(http.StatusOK)
		if err := f.Write(c.Writer); err != nil {
			logger.Error("write workbook", zap.Error(err))
		}
	}
}
