package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/studentms/backend/models"
)

type FeeHandler struct {
	db *gorm.DB
}

func NewFeeHandler(db *gorm.DB) *FeeHandler { return &FeeHandler{db: db} }

// Pointer fields: on an existing (student, month) row only the fields
// present in the request overwrite stored values.
type upsertFeePayload struct {
	StudentID   uint     `json:"student_id" validate:"required"`
	Month       string   `json:"month" validate:"required,max=20"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	PaidAmount  *float64 `json:"paid_amount" validate:"omitempty,gte=0"`
	DueDate     *string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func feeViews(fees []models.Fee) []models.FeeView {
	out := make([]models.FeeView, 0, len(fees))
	for _, f := range fees {
		out = append(out, f.View())
	}
	return out
}

// GET /api/fees
func (h *FeeHandler) List(c echo.Context) error {
	var fees []models.Fee
	if err := h.db.Find(&fees).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load fees")
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"count": len(fees),
		"fees":  feeViews(fees),
	})
}

// GET /api/students/:id/fees
func (h *FeeHandler) ByStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid student id")
	}

	var fees []models.Fee
	if err := h.db.Where("student_id = ?", id).Find(&fees).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load fees")
	}

	var totalPaid, totalDue float64
	for _, f := range fees {
		totalPaid += f.PaidAmount
		totalDue += f.TotalAmount - f.PaidAmount
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"student_id":    id,
		"total_records": len(fees),
		"total_paid":    round2(totalPaid),
		"total_due":     round2(totalDue),
		"fees":          feeViews(fees),
	})
}

// POST /api/fees
//
// Upsert keyed on (student_id, month). Status is recomputed from the
// resulting amounts; payment_date is stamped with today only when the
// write lands the row in Paid.
func (h *FeeHandler) Upsert(c echo.Context) error {
	var p upsertFeePayload
	if err := c.Bind(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	var fee models.Fee
	err := h.db.Where("student_id = ? AND month = ?", p.StudentID, p.Month).First(&fee).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if p.TotalAmount == nil {
			return errJSON(c, http.StatusBadRequest, "total_amount is required")
		}
		fee = models.Fee{
			StudentID:   p.StudentID,
			Month:       p.Month,
			TotalAmount: *p.TotalAmount,
		}
		if p.PaidAmount != nil {
			fee.PaidAmount = *p.PaidAmount
		}
		if p.DueDate != nil {
			fee.DueDate = p.DueDate
		}
	case err != nil:
		return errJSON(c, http.StatusInternalServerError, "failed to load fee record")
	default:
		if p.TotalAmount != nil {
			fee.TotalAmount = *p.TotalAmount
		}
		if p.PaidAmount != nil {
			fee.PaidAmount = *p.PaidAmount
		}
		if p.DueDate != nil {
			fee.DueDate = p.DueDate
		}
	}

	fee.Status = models.DeriveFeeStatus(fee.PaidAmount, fee.TotalAmount)
	if fee.Status == models.FeePaid {
		stamp := today()
		fee.PaymentDate = &stamp
	}

	if err := h.db.Save(&fee).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to save fee record")
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"message": "fee record saved successfully",
		"fee":     fee.View(),
	})
}

// DELETE /api/fees/:id
func (h *FeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid fee id")
	}
	res := h.db.Delete(&models.Fee{}, "id = ?", id)
	if res.Error != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to delete fee record")
	}
	if res.RowsAffected == 0 {
		return errJSON(c, http.StatusNotFound, "fee record not found")
	}
	return okJSON(c, http.StatusOK, map[string]any{"message": "fee record deleted successfully"})
}

type monthlyBucket struct {
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}

// GET /api/fees/stats
func (h *FeeHandler) Stats(c echo.Context) error {
	var fees []models.Fee
	if err := h.db.Find(&fees).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load fees")
	}

	var totalFees, totalPaid float64
	monthly := map[string]monthlyBucket{}
	statusCount := map[string]int{"paid": 0, "partial": 0, "pending": 0}
	for _, f := range fees {
		totalFees += f.TotalAmount
		totalPaid += f.PaidAmount

		b := monthly[f.Month]
		b.Collected = round2(b.Collected + f.PaidAmount)
		b.Pending = round2(b.Pending + (f.TotalAmount - f.PaidAmount))
		monthly[f.Month] = b

		switch f.Status {
		case models.FeePaid:
			statusCount["paid"]++
		case models.FeePartial:
			statusCount["partial"]++
		case models.FeePending:
			statusCount["pending"]++
		}
	}

	rate := 0.0
	if totalFees > 0 {
		rate = round2(totalPaid / totalFees * 100)
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"stats": map[string]any{
			"total_fees":      round2(totalFees),
			"total_paid":      round2(totalPaid),
			"total_due":       round2(totalFees - totalPaid),
			"collection_rate": rate,
			"monthly_data":    monthly,
			"status_count":    statusCount,
		},
	})
}
