package repository

import (
	"context"
	"errors"

	"goodwill/internal/domain/model"
	repo "goodwill/internal/repository"

	"gorm.io/gorm"
)

var _ repo.PaymentRepository = (*PaymentGormRepository)(nil)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p *model.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentGormRepository) List(ctx context.Context) ([]model.Payment, error) {
	items := []model.Payment{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// transactionIdだけでは別の予約の記録に当たるので予約IDと組で探す
func (r *PaymentGormRepository) FindByBookingAndTransaction(ctx context.Context, bookingID string, transactionID string) (*model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND transaction_id = ?", bookingID, transactionID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
