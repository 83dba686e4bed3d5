package repository

import (
	"context"
	"errors"

	"goodwill/internal/domain/model"
	repo "goodwill/internal/repository"

	"gorm.io/gorm"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Create(ctx context.Context, b *model.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	items := []model.Booking{}
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BookingGormRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) MarkPaid(ctx context.Context, id string, transactionID string) (repo.WriteResult, error) {
	res := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"paid":           true,
			"transaction_id": transactionID,
		})
	if res.Error != nil {
		return repo.WriteResult{}, res.Error
	}
	return writeResult(res.RowsAffected), nil
}
