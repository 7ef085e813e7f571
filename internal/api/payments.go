package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/internal/ledger"
	"github.com/melodia-school/melodia-back/internal/models"
	"github.com/melodia-school/melodia-back/pkg/response"
)

// RecordPaymentRequest is the request body for recording a payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Note   string          `json:"note"`
	PaidAt *time.Time      `json:"paid_at,omitempty"`
}

// RecordPayment godoc
// @Summary      Record a payment
// @Description  Allocates the tendered amount across the student's open ledger and persists the result atomically
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path   int                   true   "Student ID"
// @Param        year  query  string                false  "Academic year (default: current)"
// @Param        body  body   RecordPaymentRequest  true   "Payment"
// @Success      201   {object}  response.Body
// @Failure      400   {object}  response.Body
// @Security     BearerAuth
// @Router       /students/{id}/payments [post]
func RecordPayment(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var req RecordPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request")
			return
		}

		ctx := context.Background()
		student, err := db.GetStudent(ctx, id)
		if err != nil {
			respondLedgerError(c, logger, err)
			return
		}

		entries, _, err := resolveStudentLedger(ctx, c, id)
		if err != nil {
			respondLedgerError(c, logger, err)
			return
		}

		res, err := ledger.Allocate(req.Amount, ledger.DebtCandidates(entries))
		if err != nil {
			respondLedgerError(c, logger, err)
			return
		}

		paidAt := time.Now()
		if req.PaidAt != nil {
			paidAt = *req.PaidAt
		}
		payment := models.Payment{
			ID:        uuid.NewString(),
			StudentID: student.ID,
			SchoolID:  student.SchoolID,
			Amount:    req.Amount.Round(2),
			Method:    req.Method,
			Note:      req.Note,
			PaidAt:    paidAt,
		}
		if err := db.ApplyPayment(ctx, &payment, res); err != nil {
			logger.Error("apply payment", zap.Error(err), zap.String("payment_id", payment.ID))
			response.Internal(c, "failed to record payment")
			return
		}

		logger.Info("payment recorded",
			zap.String("payment_id", payment.ID),
			zap.Uint("student_id", student.ID),
			zap.String("amount", payment.Amount.String()),
			zap.String("cash_spent", res.CashSpent.String()),
			zap.String("discount_consumed", res.DiscountConsumed.String()),
		)
		response.Created(c, gin.H{"payment": payment, "allocation": res})
	}
}

// ListStudentPayments godoc
// @Summary      List a student's payments with cash detail rows
// @Tags         payments
// @Produce      json
// @Param        id  path  int  true  "Student ID"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /students/{id}/payments [get]
func ListStudentPayments(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	payments, err := db.ListPayments(context.Background(), id)
	if err != nil {
		response.Internal(c, "failed to fetch payments")
		return
	}
	response.OK(c, payments)
}
