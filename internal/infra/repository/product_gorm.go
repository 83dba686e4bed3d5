package repository

import (
	"context"
	"errors"
	"time"

	"goodwill/internal/domain/model"
	repo "goodwill/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 絞り込み付き一覧（新しい順）
func (r *ProductGormRepository) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if f.CategoryID != "" {
		tx = tx.Where("category_id = ?", f.CategoryID)
	}
	if f.CreatedBy != "" {
		tx = tx.Where("created_by = ?", f.CreatedBy)
	}
	//広告対象 = advertiseEnable かつ 販売中
	if f.AdvertiseOnly {
		tx = tx.Where("advertise_enable = ? AND status = ?", true, model.ProductStatusActive)
	}

	products := []model.Product{}
	if err := tx.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductGormRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	products := []model.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// status / advertiseEnable の部分更新。modify_atは毎回更新
func (r *ProductGormRepository) UpdateFlags(ctx context.Context, id string, u repo.ProductFlagsUpdate) (repo.WriteResult, error) {
	values := map[string]interface{}{
		"modify_at": u.ModifyAt,
	}
	if u.Status != nil {
		values["status"] = *u.Status
	}
	if u.AdvertiseEnable != nil {
		values["advertise_enable"] = *u.AdvertiseEnable
	}

	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return repo.WriteResult{}, res.Error
	}
	return writeResult(res.RowsAffected), nil
}

// 売約メッセージの更新
func (r *ProductGormRepository) UpdateMessage(ctx context.Context, id string, message string, modifyAt time.Time) (repo.WriteResult, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"message":   message,
		"modify_at": modifyAt,
	})
	if res.Error != nil {
		return repo.WriteResult{}, res.Error
	}
	return writeResult(res.RowsAffected), nil
}

// 商品削除（物理削除。予約は残す）
func (r *ProductGormRepository) Delete(ctx context.Context, id string) (repo.DeleteResult, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return repo.DeleteResult{}, res.Error
	}
	return repo.DeleteResult{DeletedCount: res.RowsAffected}, nil
}
