package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/studentms/backend/models"
)

type AttendanceHandler struct {
	db *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler { return &AttendanceHandler{db: db} }

type attendanceRecord struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Present Absent Leave"`
}

type markAttendancePayload struct {
	Date    string             `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Records []attendanceRecord `json:"records" validate:"dive"`
}

// Attendance row joined with student identity for the by-date read.
type attendanceWithStudent struct {
	ID           uint                    `json:"id"`
	StudentID    uint                    `json:"student_id"`
	StudentName  string                  `json:"student_name"`
	StudentRoll  string                  `json:"student_roll"`
	StudentClass string                  `json:"student_class"`
	Date         string                  `json:"date"`
	Status       models.AttendanceStatus `json:"status"`
}

// GET /api/attendance
func (h *AttendanceHandler) Today(c echo.Context) error {
	date := today()
	var rows []models.Attendance
	if err := h.db.Where("date = ?", date).Order("id ASC").Find(&rows).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load attendance")
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"date":       date,
		"attendance": rows,
	})
}

// POST /api/attendance
//
// Full replacement for the date: every existing row for the date is
// dropped and the given records are inserted verbatim, in one
// transaction so a failure never leaves the date half-cleared.
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var p markAttendancePayload
	if err := c.Bind(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}
	date := p.Date
	if date == "" {
		date = today()
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", date).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if len(p.Records) == 0 {
			return nil
		}
		rows := make([]models.Attendance, 0, len(p.Records))
		for _, r := range p.Records {
			rows = append(rows, models.Attendance{
				StudentID: r.StudentID,
				Date:      date,
				Status:    models.AttendanceStatus(r.Status),
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to save attendance")
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("attendance saved for %d students", len(p.Records)),
		"date":    date,
	})
}

// GET /api/attendance/:date
func (h *AttendanceHandler) ByDate(c echo.Context) error {
	date := c.Param("date")
	var rows []models.Attendance
	if err := h.db.Where("date = ?", date).Order("id ASC").Find(&rows).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load attendance")
	}

	ids := make([]uint, 0, len(rows))
	seen := make(map[uint]bool, len(rows))
	for _, r := range rows {
		if !seen[r.StudentID] {
			seen[r.StudentID] = true
			ids = append(ids, r.StudentID)
		}
	}
	byID := make(map[uint]models.Student, len(ids))
	if len(ids) > 0 {
		var students []models.Student
		if err := h.db.Where("id IN ?", ids).Find(&students).Error; err != nil {
			return errJSON(c, http.StatusInternalServerError, "failed to load students")
		}
		for _, s := range students {
			byID[s.ID] = s
		}
	}

	out := make([]attendanceWithStudent, 0, len(rows))
	for _, r := range rows {
		e := attendanceWithStudent{
			ID:          r.ID,
			StudentID:   r.StudentID,
			StudentName: "Unknown", // student deleted after marking
			Date:        r.Date,
			Status:      r.Status,
		}
		if s, found := byID[r.StudentID]; found {
			e.StudentName = s.Name
			e.StudentRoll = s.RollNo
			e.StudentClass = s.ClassName
		}
		out = append(out, e)
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"date":       date,
		"attendance": out,
	})
}

// GET /api/students/:id/attendance
//
// Trailing window of 31 calendar days ending today, inclusive. Days
// without a row report "Not Marked"; the percentage counts only days
// marked exactly Present.
func (h *AttendanceHandler) Summary(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid student id")
	}

	end := time.Now()
	start := end.AddDate(0, 0, -30)

	var rows []models.Attendance
	if err := h.db.
		Where("student_id = ? AND date >= ? AND date <= ?",
			id, start.Format(dateLayout), end.Format(dateLayout)).
		Find(&rows).Error; err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to load attendance")
	}
	marked := make(map[string]models.AttendanceStatus, len(rows))
	for _, r := range rows {
		marked[r.Date] = r.Status
	}

	type daySummary struct {
		Date   string `json:"date"`
		Status string `json:"status"`
	}
	days := make([]daySummary, 0, 31)
	present := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		ds := d.Format(dateLayout)
		status := models.AttendanceNotMarked
		if s, found := marked[ds]; found {
			status = string(s)
		}
		if status == string(models.AttendancePresent) {
			present++
		}
		days = append(days, daySummary{Date: ds, Status: status})
	}

	total := len(days)
	pct := 0.0
	if total > 0 {
		pct = round2(float64(present) / float64(total) * 100)
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"student_id":            id,
		"total_days":            total,
		"present_days":          present,
		"attendance_percentage": pct,
		"summary":               days,
	})
}
