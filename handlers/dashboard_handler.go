package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/studentms/backend/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler { return &DashboardHandler{db: db} }

// GET /admin/dashboard?date=YYYY-MM-DD
//
// One-screen overview for the admin frontend: student head count, the
// day's attendance breakdown and the fee ledger rollup.
func (h *DashboardHandler) Daily(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = today()
	}

	var studentCount int64
	if err := h.db.Model(&models.Student{}).Count(&studentCount).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to count students")
	}

	var rows []models.Attendance
	if err := h.db.Where("date = ?", date).Find(&rows).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load attendance")
	}
	breakdown := map[string]int{"present": 0, "absent": 0, "leave": 0}
	for _, r := range rows {
		switch r.Status {
		case models.AttendancePresent:
			breakdown["present"]++
		case models.AttendanceAbsent:
			breakdown["absent"]++
		case models.AttendanceLeave:
			breakdown["leave"]++
		}
	}

	var fees []models.Fee
	if err := h.db.Find(&fees).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load fees")
	}
	var totalFees, totalPaid float64
	for _, f := range fees {
		totalFees += f.TotalAmount
		totalPaid += f.PaidAmount
	}

	return okJSON(c, http.StatusOK, map[string]any{
		"date":     date,
		"students": studentCount,
		"attendance": map[string]any{
			"marked":    len(rows),
			"breakdown": breakdown,
		},
		"fees": map[string]any{
			"total_fees": round2(totalFees),
			"total_paid": round2(totalPaid),
			"total_due":  round2(totalFees - totalPaid),
		},
	})
}
