package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// "" が販売中、SOLDが売約済み
type ProductStatus string

const (
	ProductStatusActive ProductStatus = ""
	ProductStatusSold   ProductStatus = "SOLD"
)

type Product struct {
	ID         string `gorm:"type:varchar(64);primaryKey" json:"_id"`
	Name       string `gorm:"type:varchar(255)" json:"name"`
	Image      string `gorm:"type:text" json:"image"`
	CreatedBy  string `gorm:"type:varchar(255);not null;index" json:"createdBy"`
	CategoryID string `gorm:"type:varchar(64);not null;index" json:"categoryId"`

	//再販価格
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	OriginalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"originalPrice"`

	Condition   string `gorm:"type:varchar(50)" json:"condition"`
	Location    string `gorm:"type:varchar(255)" json:"location"`
	Phone       string `gorm:"type:varchar(30)" json:"phone"`
	YearsOfUse  string `gorm:"type:varchar(50)" json:"yearsOfUse"`
	Description string `gorm:"type:text" json:"description"`

	Status          ProductStatus `gorm:"type:varchar(20);not null;default:'';index" json:"status"`
	AdvertiseEnable bool          `gorm:"not null;default:false;index" json:"advertiseEnable"`

	//売約メッセージ（statusは変えない）
	Message string `gorm:"type:text" json:"message,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	ModifyAt  time.Time `gorm:"not null" json:"modifyAt"`
}

// 広告に出せるか（advertiseEnable かつ 販売中）
func (p Product) IsAdvertiseEligible() bool {
	return p.AdvertiseEnable && p.Status == ProductStatusActive
}
