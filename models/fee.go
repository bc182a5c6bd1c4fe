package models

import "math"

// FeeStatus is derived from paid vs total, never set by clients.
type FeeStatus string

const (
	FeePaid    FeeStatus = "Paid"
	FeePartial FeeStatus = "Partial"
	FeePending FeeStatus = "Pending"
)

// DeriveFeeStatus applies the payment thresholds:
// paid >= total is Paid, 0 < paid < total is Partial, paid = 0 is Pending.
func DeriveFeeStatus(paid, total float64) FeeStatus {
	switch {
	case paid >= total:
		return FeePaid
	case paid > 0:
		return FeePartial
	default:
		return FeePending
	}
}

// One row per (student, month); writes upsert on that pair.
type Fee struct {
	ID          uint      `gorm:"primaryKey"                                          json:"id"`
	StudentID   uint      `gorm:"not null;uniqueIndex:idx_fees_student_month"         json:"student_id"`
	Month       string    `gorm:"size:20;not null;uniqueIndex:idx_fees_student_month" json:"month"` // e.g. "January 2024"
	TotalAmount float64   `gorm:"not null"                                            json:"total_amount"`
	PaidAmount  float64   `gorm:"default:0"                                           json:"paid_amount"`
	DueDate     *string   `gorm:"size:10"                                             json:"due_date"` // YYYY-MM-DD, null when unset
	Status      FeeStatus `gorm:"size:20;default:Pending"                             json:"status"`
	PaymentDate *string   `gorm:"size:10"                                             json:"payment_date"` // null until the row lands in Paid
}

// DueAmount is always total minus paid, computed on read, never stored.
func (f *Fee) DueAmount() float64 {
	return math.Round((f.TotalAmount-f.PaidAmount)*100) / 100
}

// FeeView is the wire shape of a fee row, with the derived due amount.
type FeeView struct {
	Fee
	DueAmount float64 `json:"due_amount"`
}

func (f Fee) View() FeeView {
	return FeeView{Fee: f, DueAmount: f.DueAmount()}
}
