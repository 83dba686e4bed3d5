package repository

import (
	"context"
	"time"

	"goodwill/internal/domain/model"
)

// 一覧の絞り込み。すべてゼロ値なら全件
type ProductFilter struct {
	CategoryID string
	CreatedBy  string
	//advertiseEnable=true かつ status="" のみ
	AdvertiseOnly bool
}

// フラグの部分更新。nilの項目は触らない
type ProductFlagsUpdate struct {
	Status          *model.ProductStatus
	AdvertiseEnable *bool
	ModifyAt        time.Time
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	Create(ctx context.Context, p *model.Product) error
	UpdateFlags(ctx context.Context, id string, u ProductFlagsUpdate) (WriteResult, error)
	UpdateMessage(ctx context.Context, id string, message string, modifyAt time.Time) (WriteResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
