package repository

import (
	"context"

	"goodwill/internal/domain/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	List(ctx context.Context) ([]model.Payment, error)
	//同じ予約・同じtransactionIdの再送チェック用
	FindByBookingAndTransaction(ctx context.Context, bookingID string, transactionID string) (*model.Payment, error)
}
