package repository

import (
	"context"

	repo "goodwill/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	bookings repo.BookingRepository
	payments repo.PaymentRepository
}

func (r *txReposGorm) Bookings() repo.BookingRepository { return r.bookings }
func (r *txReposGorm) Payments() repo.PaymentRepository { return r.payments }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			bookings: NewBookingGormRepository(tx),
			payments: NewPaymentGormRepository(tx),
		}
		return fn(r)
	})
}
