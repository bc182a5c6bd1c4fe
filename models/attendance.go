package models

// AttendanceStatus is the closed set of daily statuses.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLeave   AttendanceStatus = "Leave"
)

// AttendanceNotMarked is reported for days without a row; it is never stored.
const AttendanceNotMarked = "Not Marked"

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return true
	default:
		return false
	}
}

// One row per (student, date). The pair is not enforced unique at the
// schema level; the bulk write keeps it that way by replacing whole dates.
type Attendance struct {
	ID        uint             `gorm:"primaryKey"             json:"id"`
	StudentID uint             `gorm:"index;not null"         json:"student_id"`
	Date      string           `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Status    AttendanceStatus `gorm:"size:10;not null"       json:"status"`
}
