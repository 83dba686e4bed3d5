package repository

import (
	"context"

	"goodwill/internal/domain/model"
)

type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) error
	ListByEmail(ctx context.Context, email string) ([]model.Booking, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	// paid=true とtransactionIdをセット（何度呼んでも同じ結果）
	MarkPaid(ctx context.Context, id string, transactionID string) (WriteResult, error)
}
