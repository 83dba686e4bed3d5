package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 支払い記録（監査用）。Bookingと1:1
type Payment struct {
	ID            string          `gorm:"type:varchar(64);primaryKey" json:"_id"`
	BookingID     string          `gorm:"type:varchar(64);not null;index" json:"bookingId"`
	TransactionID string          `gorm:"type:varchar(255);not null;index" json:"transactionId"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"amount"`
	Email         string          `gorm:"type:varchar(255)" json:"email"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
}
