package model

import "time"

type AuditAction string

const (
	//認証状態の更新
	AuditActionUpdateVerification AuditAction = "UPDATE_VERIFICATION"
	//ユーザー削除
	AuditActionDeleteUser AuditAction = "DELETE_USER"
	//商品削除
	AuditActionDeleteProduct AuditAction = "DELETE_PRODUCT"
)

// 何に対する操作か
type AuditResourceType string

const (
	AuditResourceUser    AuditResourceType = "user"
	AuditResourceProduct AuditResourceType = "product"
)

// 監査ログ（管理者側の操作ログ）。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//操作したユーザーのemail（トークンから）
	ActorEmail string `gorm:"type:varchar(255);not null;index" json:"actorEmail"`

	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resourceType"`
	ResourceID   string            `gorm:"type:varchar(64);not null;index" json:"resourceId"`

	//JSON文字列で保存する。
	BeforeJSON string `gorm:"type:text" json:"beforeJson"`
	AfterJSON  string `gorm:"type:text" json:"afterJson"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}
