package usecase

import (
	"context"
	"fmt"

	"goodwill/internal/domain/model"
	repo "goodwill/internal/repository"

	"github.com/shopspring/decimal"
)

// 決済インテントの通貨
const intentCurrency = "usd"

// 外部の決済サービス（Stripe）との窓口
type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

type PaymentUsecase struct {
	tx        repo.TransactionManager
	payments  repo.PaymentRepository
	processor PaymentProcessor
	idGen     IDGenerator
	clock     Clock
}

// processorはnilでもよい（その場合CreateIntentはErrProcessor）
func NewPaymentUsecase(
	tx repo.TransactionManager,
	payments repo.PaymentRepository,
	processor PaymentProcessor,
	idGen IDGenerator,
	clock Clock,
) *PaymentUsecase {
	return &PaymentUsecase{
		tx:        tx,
		payments:  payments,
		processor: processor,
		idGen:     idGen,
		clock:     clock,
	}
}

type CreateIntentOutput struct {
	ClientSecret string `json:"clientSecret"`
}

// 価格×100（最小通貨単位）でインテントを作る
func (u *PaymentUsecase) CreateIntent(ctx context.Context, itemPrice decimal.Decimal) (CreateIntentOutput, error) {
	if u.processor == nil {
		return CreateIntentOutput{}, fmt.Errorf("%w: processor not configured", ErrProcessor)
	}

	secret, err := u.processor.CreatePaymentIntent(ctx, ToMinorUnits(itemPrice), intentCurrency)
	if err != nil {
		return CreateIntentOutput{}, fmt.Errorf("%w: %v", ErrProcessor, err)
	}
	return CreateIntentOutput{ClientSecret: secret}, nil
}

// 20.5 => 2050
func ToMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// POST /payments の入力。Amount/Emailは省略時に予約から補う
type ConfirmPaymentInput struct {
	BookingID     string
	TransactionID string
	Amount        *decimal.Decimal
	Email         string
}

// ConfirmPayment は支払い記録の作成と予約のpaid更新を1つのTxで行う。
// 同じ予約・同じtransactionIdの再送は既存の記録を返す（2件目は作らない）。
// 別の予約で使われたtransactionIdなら普通に記録して支払い済みにする
func (u *PaymentUsecase) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (model.Payment, error) {
	var out model.Payment

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		booking, err := r.Bookings().FindByID(ctx, in.BookingID)
		if err != nil {
			return storeErr(err)
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		//再送チェック（同じ予約への同じtransactionIdだけ）
		if in.TransactionID != "" {
			existing, err := r.Payments().FindByBookingAndTransaction(ctx, booking.ID, in.TransactionID)
			if err != nil {
				return storeErr(err)
			}
			if existing != nil {
				out = *existing
				return nil
			}
		}

		amount := booking.ItemPrice
		if in.Amount != nil {
			amount = *in.Amount
		}
		email := in.Email
		if email == "" {
			email = booking.Email
		}

		p := model.Payment{
			ID:            u.idGen.NewID(),
			BookingID:     booking.ID,
			TransactionID: in.TransactionID,
			Amount:        amount,
			Email:         email,
			CreatedAt:     u.clock.Now(),
		}
		if err := r.Payments().Create(ctx, &p); err != nil {
			return storeErr(err)
		}

		if _, err := r.Bookings().MarkPaid(ctx, booking.ID, in.TransactionID); err != nil {
			return storeErr(err)
		}

		out = p
		return nil
	})
	if err != nil {
		return model.Payment{}, err
	}
	return out, nil
}

func (u *PaymentUsecase) ListPayments(ctx context.Context) ([]model.Payment, error) {
	items, err := u.payments.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}
