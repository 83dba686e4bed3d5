package model

import "time"

// userCategory（admin / seller / buyer）
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// 管理者が付ける認証状態（ログインとは無関係）
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

type User struct {
	ID       string `gorm:"type:varchar(64);primaryKey" json:"_id"`
	Name     string `gorm:"type:varchar(255)" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhotoURL string `gorm:"type:text" json:"photoURL"`
	Role     Role   `gorm:"type:varchar(20);not null;index" json:"userCategory"`

	Verify VerificationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"verify"`

	//お気に入り商品IDの集合
	Wishlist []string `gorm:"type:text;serializer:json" json:"wishlist"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
