package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 購入者の予約（支払い確定でpaidになる）
type Booking struct {
	ID          string `gorm:"type:varchar(64);primaryKey" json:"_id"`
	ProductID   string `gorm:"type:varchar(64);not null;index" json:"productId"`
	ProductName string `gorm:"type:varchar(255)" json:"productName"`
	Email       string `gorm:"type:varchar(255);not null;index" json:"email"`
	BuyerName   string `gorm:"type:varchar(255)" json:"buyerName"`
	Phone       string `gorm:"type:varchar(30)" json:"phone"`
	Location    string `gorm:"type:varchar(255)" json:"location"`

	ItemPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"itemPrice"`

	Paid          bool    `gorm:"not null;default:false" json:"paid"`
	TransactionID *string `gorm:"type:varchar(255)" json:"transactionId"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
